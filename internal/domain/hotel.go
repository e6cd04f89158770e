package domain

import "time"

type Hotel struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Address     string    `json:"address"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Price       int       `json:"price"`
	Images      []string  `json:"images"`
	Amenities   []string  `json:"amenities"`
	RoomType    string    `json:"roomType"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}
