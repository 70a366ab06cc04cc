package services

import "errors"

// Caller-distinguishable error taxonomy. Handlers map these to HTTP statuses
// with errors.Is.
var (
	ErrInvalidPrice       = errors.New("total_price must be a positive number")
	ErrInvalidBookingType = errors.New("booking_type must be hotel, flight or package")
	ErrInvalidStatus      = errors.New("status must be pending, confirmed or cancelled")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrFlightNotFound     = errors.New("flight not found")

	// ErrReferenceConflict means the generated booking reference collided with
	// an existing one. The operation is safe to retry.
	ErrReferenceConflict = errors.New("booking reference already exists")

	ErrInvalidEventType = errors.New("unknown event type")
	ErrInvalidTimestamp = errors.New("timestamp must be RFC 3339")
)
