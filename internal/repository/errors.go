package repository

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrFlightNotFound  = errors.New("flight not found")
	ErrTaxiNotFound    = errors.New("taxi not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
)
