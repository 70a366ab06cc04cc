package models

import "time"

type Deal struct {
	ID                 int64     `json:"id"`
	Title              string    `json:"title"`
	Description        *string   `json:"description,omitempty"`
	DealType           string    `json:"deal_type"` // hotel / flight / package
	OriginalPrice      float64   `json:"original_price"`
	DiscountedPrice    float64   `json:"discounted_price"`
	DiscountPercentage *int      `json:"discount_percentage,omitempty"`
	Currency           string    `json:"currency"`
	ValidFrom          time.Time `json:"valid_from"`
	ValidUntil         time.Time `json:"valid_until"`
	ImageURL           *string   `json:"image_url,omitempty"`
	IsFeatured         bool      `json:"is_featured"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
