package domain

import "time"

type Taxi struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Model      string    `json:"model"`
	Capacity   int       `json:"capacity"`
	Luggage    int       `json:"luggage"`
	PricePerKm int       `json:"pricePerKm"`
	Features   []string  `json:"features"`
	Rating     float64   `json:"rating"`
	TotalTrips int       `json:"totalTrips"`
	Available  bool      `json:"available"`
	CreatedAt  time.Time `json:"createdAt"`
}
