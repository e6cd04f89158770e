package domain

import "time"

type BookingType string

const (
	BookingTypeHotel  BookingType = "hotel"
	BookingTypeFlight BookingType = "flight"
	BookingTypeTaxi   BookingType = "taxi"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking carries exactly one of HotelID/FlightID/TaxiID, selected by
// BookingType; the type-specific detail fields are nil for the other kinds.
type Booking struct {
	ID              int64         `json:"id"`
	BookingType     BookingType   `json:"bookingType"`
	HotelID         *int64        `json:"hotelId"`
	FlightID        *int64        `json:"flightId"`
	TaxiID          *int64        `json:"taxiId"`
	UserID          string        `json:"userId"`
	CheckIn         *string       `json:"checkIn"`
	CheckOut        *string       `json:"checkOut"`
	Guests          *int          `json:"guests"`
	Passengers      *int          `json:"passengers"`
	PickupLocation  *string       `json:"pickupLocation"`
	DropLocation    *string       `json:"dropLocation"`
	Distance        *int          `json:"distance"`
	FullName        string        `json:"fullName"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	SpecialRequests *string       `json:"specialRequests"`
	Status          BookingStatus `json:"status"`
	Subtotal        float64       `json:"subtotal"`
	Taxes           float64       `json:"taxes"`
	TotalPrice      float64       `json:"totalPrice"`
	CreatedAt       time.Time     `json:"createdAt"`
}
