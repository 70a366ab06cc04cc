package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/travelhub/backend/internal/models"
	"go.uber.org/zap"
)

type BookingStore interface {
	Create(ctx context.Context, bk *models.Booking) error
}

type HotelFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Hotel, error)
}

type FlightFinder interface {
	GetByID(ctx context.Context, id int64) (*models.Flight, error)
}

// ChangeRecorder is the best-effort audit hook; implementations must not
// propagate failures.
type ChangeRecorder interface {
	RecordChange(ctx context.Context, description, tableName, updateType string, values map[string]any, userID *string)
}

// Owner is the authenticated identity creating a booking, supplied by the
// auth layer and trusted here.
type Owner struct {
	ID    uuid.UUID
	Email string
}

type CreateBookingInput struct {
	HotelID         *int64
	FlightID        *int64
	BookingType     string
	Status          string // empty means pending
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	GuestDetails    any
	TravelerInfo    any
	TotalPrice      float64
	Currency        string // empty means USD
	SpecialRequests *string
}

type BookingService struct {
	bookings BookingStore
	hotels   HotelFinder
	flights  FlightFinder
	audit    ChangeRecorder
	log      *zap.Logger
}

func NewBookingService(bookings BookingStore, hotels HotelFinder, flights FlightFinder, audit ChangeRecorder, log *zap.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		hotels:   hotels,
		flights:  flights,
		audit:    audit,
		log:      log,
	}
}

// Create validates the input, persists the booking under a freshly generated
// reference and records the insert in the audit trail. The audit write is
// best-effort: its failure never rolls back or fails the booking.
func (s *BookingService) Create(ctx context.Context, owner Owner, in CreateBookingInput) (*models.Booking, error) {
	if in.TotalPrice <= 0 {
		return nil, ErrInvalidPrice
	}
	if !models.IsValidBookingType(in.BookingType) {
		return nil, ErrInvalidBookingType
	}

	status := in.Status
	if status == "" {
		status = models.BookingStatusPending
	}
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed, models.BookingStatusCancelled:
	default:
		return nil, ErrInvalidStatus
	}

	if in.HotelID != nil {
		if _, err := s.hotels.GetByID(ctx, *in.HotelID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrHotelNotFound
			}
			return nil, err
		}
	}
	if in.FlightID != nil {
		if _, err := s.flights.GetByID(ctx, *in.FlightID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrFlightNotFound
			}
			return nil, err
		}
	}

	currency := in.Currency
	if currency == "" {
		currency = "USD"
	}

	booking := &models.Booking{
		BookingReference: models.NewBookingReference(),
		UserID:           owner.ID,
		HotelID:          in.HotelID,
		FlightID:         in.FlightID,
		BookingType:      in.BookingType,
		Status:           status,
		CheckInDate:      in.CheckInDate,
		CheckOutDate:     in.CheckOutDate,
		GuestDetails:     in.GuestDetails,
		TravelerInfo:     in.TravelerInfo,
		TotalPrice:       in.TotalPrice,
		Currency:         currency,
		PaymentStatus:    models.PaymentStatusPending,
		SpecialRequests:  in.SpecialRequests,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrReferenceConflict
		}
		return nil, err
	}

	userID := owner.ID.String()
	s.audit.RecordChange(ctx,
		fmt.Sprintf("Created new booking %s for user %s", booking.BookingReference, owner.Email),
		"bookings", "insert",
		map[string]any{
			"booking_reference": booking.BookingReference,
			"user_id":           userID,
			"booking_type":      booking.BookingType,
			"total_price":       booking.TotalPrice,
		},
		&userID)

	return booking, nil
}
