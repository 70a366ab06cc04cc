package dto

import (
	"time"

	"github.com/travelhub/backend/internal/models"
	"github.com/travelhub/backend/internal/services"
)

type CreateBookingRequest struct {
	HotelID         *int64     `json:"hotel_id,omitempty"`
	FlightID        *int64     `json:"flight_id,omitempty"`
	BookingType     string     `json:"booking_type"`
	Status          string     `json:"status,omitempty"`
	CheckInDate     *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	GuestDetails    any        `json:"guest_details,omitempty"`
	TravelerInfo    any        `json:"traveler_info,omitempty"`
	TotalPrice      float64    `json:"total_price"`
	Currency        string     `json:"currency,omitempty"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
}

func (r CreateBookingRequest) ToInput() services.CreateBookingInput {
	return services.CreateBookingInput{
		HotelID:         r.HotelID,
		FlightID:        r.FlightID,
		BookingType:     r.BookingType,
		Status:          r.Status,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		GuestDetails:    r.GuestDetails,
		TravelerInfo:    r.TravelerInfo,
		TotalPrice:      r.TotalPrice,
		Currency:        r.Currency,
		SpecialRequests: r.SpecialRequests,
	}
}

// FrontendEventRequest mirrors what the web client's event logger sends.
// Which of the payload fields matter depends on type.
type FrontendEventRequest struct {
	Type      string  `json:"type"`
	Text      string  `json:"text"`
	Timestamp string  `json:"timestamp"`
	UserID    *string `json:"user_id,omitempty"`
	SessionID *string `json:"session_id,omitempty"`

	PageURL           string              `json:"page_url,omitempty"`
	ElementIdentifier string              `json:"element_identifier,omitempty"`
	Coordinates       *models.Coordinates `json:"coordinates,omitempty"`
	ScrollX           int                 `json:"scroll_x,omitempty"`
	ScrollY           int                 `json:"scroll_y,omitempty"`
	Key               string              `json:"key,omitempty"`
	TargetURL         *string             `json:"target_url,omitempty"`
	StorageType       string              `json:"storage_type,omitempty"`
	Value             string              `json:"value,omitempty"`
	CustomAction      string              `json:"custom_action,omitempty"`
	Data              map[string]any      `json:"data,omitempty"`
}

func (r FrontendEventRequest) ToEvent() services.FrontendEvent {
	return services.FrontendEvent{
		Type:              r.Type,
		Text:              r.Text,
		Timestamp:         r.Timestamp,
		UserID:            r.UserID,
		SessionID:         r.SessionID,
		PageURL:           r.PageURL,
		ElementIdentifier: r.ElementIdentifier,
		Coordinates:       r.Coordinates,
		ScrollX:           r.ScrollX,
		ScrollY:           r.ScrollY,
		Key:               r.Key,
		TargetURL:         r.TargetURL,
		StorageType:       r.StorageType,
		Value:             r.Value,
		CustomAction:      r.CustomAction,
		Data:              r.Data,
	}
}
