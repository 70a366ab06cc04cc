package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelhub/backend/internal/models"
	"github.com/travelhub/backend/internal/search"
)

const flightColumns = `id, airline, flight_number, departure_airport, arrival_airport,
	       departure_city, arrival_city, departure_time, arrival_time,
	       duration_minutes, stops, aircraft_type, cabin_class, price, currency,
	       seats_available, baggage_info, is_active, created_at, updated_at`

type FlightRepo struct {
	pool *pgxpool.Pool
}

func NewFlightRepo(pool *pgxpool.Pool) *FlightRepo {
	return &FlightRepo{pool: pool}
}

func (r *FlightRepo) GetByID(ctx context.Context, id int64) (*models.Flight, error) {
	var f models.Flight
	err := r.pool.QueryRow(ctx, `
		SELECT `+flightColumns+`
		FROM flights WHERE id = $1
	`, id).Scan(&f.ID, &f.Airline, &f.FlightNumber, &f.DepartureAirport, &f.ArrivalAirport,
		&f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime,
		&f.DurationMinutes, &f.Stops, &f.AircraftType, &f.CabinClass, &f.Price, &f.Currency,
		&f.SeatsAvailable, &f.BaggageInfo, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// Search returns active flights matching the criteria, sorted and bounded.
func (r *FlightRepo) Search(ctx context.Context, c search.FlightCriteria) ([]models.Flight, error) {
	b := search.NewBuilder().
		Active().
		TextContains(c.DepartureCity, "departure_city").
		TextContains(c.ArrivalCity, "arrival_city").
		Equals("cabin_class", c.CabinClass).
		MaxInt("stops", c.MaxStops).
		MinFloat("price", c.MinPrice).
		MaxFloat("price", c.MaxPrice)

	where, args := b.Where()
	orderBy, _ := search.OrderBy(search.FlightSortColumns, c.SortBy)

	query := `SELECT ` + flightColumns + ` FROM flights` + where + orderBy +
		fmt.Sprintf(" LIMIT $%d", b.NextArg())
	args = append(args, search.ClampLimit(c.Limit))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := []models.Flight{}
	for rows.Next() {
		var f models.Flight
		if err := rows.Scan(&f.ID, &f.Airline, &f.FlightNumber, &f.DepartureAirport, &f.ArrivalAirport,
			&f.DepartureCity, &f.ArrivalCity, &f.DepartureTime, &f.ArrivalTime,
			&f.DurationMinutes, &f.Stops, &f.AircraftType, &f.CabinClass, &f.Price, &f.Currency,
			&f.SeatsAvailable, &f.BaggageInfo, &f.IsActive, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}
