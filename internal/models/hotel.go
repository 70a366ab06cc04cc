package models

import "time"

type Hotel struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	Location      string    `json:"location"`
	Address       string    `json:"address"`
	Latitude      *float64  `json:"latitude,omitempty"`
	Longitude     *float64  `json:"longitude,omitempty"`
	StarRating    int       `json:"star_rating"`
	PricePerNight float64   `json:"price_per_night"`
	Currency      string    `json:"currency"`
	Amenities     []string  `json:"amenities,omitempty"`
	Images        []string  `json:"images,omitempty"`
	RoomTypes     any       `json:"room_types,omitempty"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
