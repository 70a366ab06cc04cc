package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelhub/backend/internal/models"
)

const bookingColumns = `id, booking_reference, user_id, hotel_id, flight_id, booking_type,
	       status, check_in_date, check_out_date, guest_details, traveler_info,
	       total_price, currency, payment_status, special_requests, created_at, updated_at`

type BookingRepo struct {
	pool *pgxpool.Pool
}

func NewBookingRepo(pool *pgxpool.Pool) *BookingRepo {
	return &BookingRepo{pool: pool}
}

// Create persists the booking. The unique index on booking_reference is the
// authoritative guard against reference collisions; a violation comes back as
// a pgconn error with SQLSTATE 23505.
func (r *BookingRepo) Create(ctx context.Context, bk *models.Booking) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO bookings (booking_reference, user_id, hotel_id, flight_id, booking_type,
		                      status, check_in_date, check_out_date, guest_details, traveler_info,
		                      total_price, currency, payment_status, special_requests)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`, bk.BookingReference, bk.UserID, bk.HotelID, bk.FlightID, bk.BookingType,
		bk.Status, bk.CheckInDate, bk.CheckOutDate, bk.GuestDetails, bk.TravelerInfo,
		bk.TotalPrice, bk.Currency, bk.PaymentStatus, bk.SpecialRequests,
	).Scan(&bk.ID, &bk.CreatedAt, &bk.UpdatedAt)
}

func (r *BookingRepo) GetByIDForUser(ctx context.Context, id, userID uuid.UUID) (*models.Booking, error) {
	var bk models.Booking
	err := r.pool.QueryRow(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&bk.ID, &bk.BookingReference, &bk.UserID, &bk.HotelID, &bk.FlightID,
		&bk.BookingType, &bk.Status, &bk.CheckInDate, &bk.CheckOutDate, &bk.GuestDetails,
		&bk.TravelerInfo, &bk.TotalPrice, &bk.Currency, &bk.PaymentStatus, &bk.SpecialRequests,
		&bk.CreatedAt, &bk.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &bk, nil
}

func (r *BookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+bookingColumns+`
		FROM bookings WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []models.Booking{}
	for rows.Next() {
		var bk models.Booking
		if err := rows.Scan(&bk.ID, &bk.BookingReference, &bk.UserID, &bk.HotelID, &bk.FlightID,
			&bk.BookingType, &bk.Status, &bk.CheckInDate, &bk.CheckOutDate, &bk.GuestDetails,
			&bk.TravelerInfo, &bk.TotalPrice, &bk.Currency, &bk.PaymentStatus, &bk.SpecialRequests,
			&bk.CreatedAt, &bk.UpdatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, bk)
	}
	return bookings, rows.Err()
}
