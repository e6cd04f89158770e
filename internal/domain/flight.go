package domain

import "time"

type Flight struct {
	ID             int64     `json:"id"`
	Airline        string    `json:"airline"`
	FlightNumber   string    `json:"flightNumber"`
	FromLocation   string    `json:"fromLocation"`
	ToLocation     string    `json:"toLocation"`
	Departure      string    `json:"departure"`
	Arrival        string    `json:"arrival"`
	Duration       string    `json:"duration"`
	Stops          string    `json:"stops"`
	Price          int       `json:"price"`
	Class          string    `json:"class"`
	Date           string    `json:"date"`
	AvailableSeats int       `json:"availableSeats"`
	CreatedAt      time.Time `json:"createdAt"`
}
