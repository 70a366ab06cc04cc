package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/travelhub/backend/internal/models"
	"go.uber.org/zap"
)

type fakeBookingStore struct {
	created []models.Booking
	failErr error
}

func (f *fakeBookingStore) Create(_ context.Context, bk *models.Booking) error {
	if f.failErr != nil {
		return f.failErr
	}
	bk.ID = uuid.New()
	f.created = append(f.created, *bk)
	return nil
}

type fakeHotelFinder struct{ missing bool }

func (f *fakeHotelFinder) GetByID(_ context.Context, id int64) (*models.Hotel, error) {
	if f.missing {
		return nil, pgx.ErrNoRows
	}
	return &models.Hotel{ID: id, Name: "Grand Palace"}, nil
}

type fakeFlightFinder struct{ missing bool }

func (f *fakeFlightFinder) GetByID(_ context.Context, id int64) (*models.Flight, error) {
	if f.missing {
		return nil, pgx.ErrNoRows
	}
	return &models.Flight{ID: id, Airline: "Air Demo"}, nil
}

type recordedChange struct {
	description string
	tableName   string
	updateType  string
	values      map[string]any
	userID      *string
}

type fakeRecorder struct {
	calls []recordedChange
}

func (f *fakeRecorder) RecordChange(_ context.Context, description, tableName, updateType string, values map[string]any, userID *string) {
	f.calls = append(f.calls, recordedChange{description, tableName, updateType, values, userID})
}

func newTestService(store *fakeBookingStore, recorder ChangeRecorder) *BookingService {
	return NewBookingService(store, &fakeHotelFinder{}, &fakeFlightFinder{}, recorder, zap.NewNop())
}

func testOwner() Owner {
	return Owner{ID: uuid.New(), Email: "traveler@example.com"}
}

func TestCreateBookingDefaults(t *testing.T) {
	store := &fakeBookingStore{}
	recorder := &fakeRecorder{}
	svc := newTestService(store, recorder)

	booking, err := svc.Create(context.Background(), testOwner(), CreateBookingInput{
		BookingType: models.BookingTypeHotel,
		TotalPrice:  299.99,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if booking.Currency != "USD" {
		t.Errorf("currency = %q, want USD", booking.Currency)
	}
	if booking.Status != models.BookingStatusPending {
		t.Errorf("status = %q, want pending", booking.Status)
	}
	if booking.PaymentStatus != models.PaymentStatusPending {
		t.Errorf("payment_status = %q, want pending", booking.PaymentStatus)
	}
	if booking.BookingReference == "" {
		t.Error("booking reference is empty")
	}
	if !regexp.MustCompile(`^TRV-[0-9A-Z]{8}$`).MatchString(booking.BookingReference) {
		t.Errorf("booking reference %q has wrong format", booking.BookingReference)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      CreateBookingInput
		wantErr error
	}{
		{"zero price", CreateBookingInput{BookingType: models.BookingTypeHotel, TotalPrice: 0}, ErrInvalidPrice},
		{"negative price", CreateBookingInput{BookingType: models.BookingTypeHotel, TotalPrice: -10}, ErrInvalidPrice},
		{"unknown type", CreateBookingInput{BookingType: "cruise", TotalPrice: 100}, ErrInvalidBookingType},
		{"empty type", CreateBookingInput{TotalPrice: 100}, ErrInvalidBookingType},
		{"bad status", CreateBookingInput{BookingType: models.BookingTypeFlight, TotalPrice: 100, Status: "done"}, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBookingStore{}
			svc := newTestService(store, &fakeRecorder{})

			_, err := svc.Create(context.Background(), testOwner(), tt.in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
			if len(store.created) != 0 {
				t.Error("booking persisted despite validation error")
			}
		})
	}
}

func TestCreateBookingLinkedInventoryMustExist(t *testing.T) {
	hotelID := int64(10)
	flightID := int64(20)

	store := &fakeBookingStore{}
	svc := NewBookingService(store, &fakeHotelFinder{missing: true}, &fakeFlightFinder{}, &fakeRecorder{}, zap.NewNop())
	_, err := svc.Create(context.Background(), testOwner(), CreateBookingInput{
		BookingType: models.BookingTypeHotel, TotalPrice: 100, HotelID: &hotelID,
	})
	if !errors.Is(err, ErrHotelNotFound) {
		t.Errorf("err = %v, want ErrHotelNotFound", err)
	}

	svc = NewBookingService(store, &fakeHotelFinder{}, &fakeFlightFinder{missing: true}, &fakeRecorder{}, zap.NewNop())
	_, err = svc.Create(context.Background(), testOwner(), CreateBookingInput{
		BookingType: models.BookingTypeFlight, TotalPrice: 100, FlightID: &flightID,
	})
	if !errors.Is(err, ErrFlightNotFound) {
		t.Errorf("err = %v, want ErrFlightNotFound", err)
	}
}

func TestCreateBookingReferenceConflict(t *testing.T) {
	store := &fakeBookingStore{failErr: &pgconn.PgError{Code: "23505"}}
	svc := newTestService(store, &fakeRecorder{})

	_, err := svc.Create(context.Background(), testOwner(), CreateBookingInput{
		BookingType: models.BookingTypeHotel, TotalPrice: 100,
	})
	if !errors.Is(err, ErrReferenceConflict) {
		t.Errorf("err = %v, want ErrReferenceConflict", err)
	}
}

func TestCreateBookingRecordsAuditEntry(t *testing.T) {
	store := &fakeBookingStore{}
	recorder := &fakeRecorder{}
	svc := newTestService(store, recorder)

	owner := testOwner()
	booking, err := svc.Create(context.Background(), owner, CreateBookingInput{
		BookingType: models.BookingTypePackage,
		TotalPrice:  1250.50,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(recorder.calls) != 1 {
		t.Fatalf("audit recorded %d times, want exactly 1", len(recorder.calls))
	}
	call := recorder.calls[0]
	if call.tableName != "bookings" || call.updateType != "insert" {
		t.Errorf("audit call = %q/%q, want bookings/insert", call.tableName, call.updateType)
	}
	if call.values["booking_reference"] != booking.BookingReference {
		t.Errorf("audit values reference = %v", call.values["booking_reference"])
	}
	if call.values["booking_type"] != models.BookingTypePackage {
		t.Errorf("audit values booking_type = %v", call.values["booking_type"])
	}
	if call.values["total_price"] != 1250.50 {
		t.Errorf("audit values total_price = %v", call.values["total_price"])
	}
	if call.userID == nil || *call.userID != owner.ID.String() {
		t.Errorf("audit user id = %v", call.userID)
	}
}

// A failing event store must never fail the booking: the service is wired
// with a real AuditService whose sink always errors.
func TestCreateBookingSurvivesAuditFailure(t *testing.T) {
	store := &fakeBookingStore{}
	audit := NewAuditService(&fakeEventStore{failErr: errors.New("event store down")}, nil, zap.NewNop())
	svc := NewBookingService(store, &fakeHotelFinder{}, &fakeFlightFinder{}, audit, zap.NewNop())

	booking, err := svc.Create(context.Background(), testOwner(), CreateBookingInput{
		BookingType: models.BookingTypeHotel,
		TotalPrice:  299.99,
	})
	if err != nil {
		t.Fatalf("booking failed because of audit failure: %v", err)
	}
	if booking.BookingReference == "" {
		t.Error("booking reference is empty")
	}
	if len(store.created) != 1 {
		t.Errorf("bookings persisted = %d, want 1", len(store.created))
	}
}
