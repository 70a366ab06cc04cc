package models

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	BookingTypeHotel   = "hotel"
	BookingTypeFlight  = "flight"
	BookingTypePackage = "package"

	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

type Booking struct {
	ID               uuid.UUID  `json:"id"`
	BookingReference string     `json:"booking_reference"`
	UserID           uuid.UUID  `json:"user_id"`
	HotelID          *int64     `json:"hotel_id,omitempty"`
	FlightID         *int64     `json:"flight_id,omitempty"`
	BookingType      string     `json:"booking_type"`
	Status           string     `json:"status"`
	CheckInDate      *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate     *time.Time `json:"check_out_date,omitempty"`
	GuestDetails     any        `json:"guest_details,omitempty"`
	TravelerInfo     any        `json:"traveler_info,omitempty"`
	TotalPrice       float64    `json:"total_price"`
	Currency         string     `json:"currency"`
	PaymentStatus    string     `json:"payment_status"`
	SpecialRequests  *string    `json:"special_requests,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func IsValidBookingType(t string) bool {
	switch t {
	case BookingTypeHotel, BookingTypeFlight, BookingTypePackage:
		return true
	}
	return false
}

// NewBookingReference returns a public reference of the form TRV-XXXXXXXX.
// Collisions are left to the unique index on bookings.booking_reference.
func NewBookingReference() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return "TRV-" + strings.ToUpper(hex.EncodeToString(buf))
}
