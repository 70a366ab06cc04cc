package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelhub/backend/internal/models"
	"github.com/travelhub/backend/internal/search"
)

const hotelColumns = `id, name, description, location, address, latitude, longitude,
	       star_rating, price_per_night, currency, amenities, images, room_types,
	       is_active, created_at, updated_at`

type HotelRepo struct {
	pool *pgxpool.Pool
}

func NewHotelRepo(pool *pgxpool.Pool) *HotelRepo {
	return &HotelRepo{pool: pool}
}

func (r *HotelRepo) GetByID(ctx context.Context, id int64) (*models.Hotel, error) {
	var h models.Hotel
	err := r.pool.QueryRow(ctx, `
		SELECT `+hotelColumns+`
		FROM hotels WHERE id = $1
	`, id).Scan(&h.ID, &h.Name, &h.Description, &h.Location, &h.Address,
		&h.Latitude, &h.Longitude, &h.StarRating, &h.PricePerNight, &h.Currency,
		&h.Amenities, &h.Images, &h.RoomTypes, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// Search returns active hotels matching the criteria, sorted and bounded.
// An empty result is an empty slice, not an error.
func (r *HotelRepo) Search(ctx context.Context, c search.HotelCriteria) ([]models.Hotel, error) {
	b := search.NewBuilder().
		Active().
		TextContains(c.Destination, "location", "name", "address").
		MinFloat("price_per_night", c.MinPrice).
		MaxFloat("price_per_night", c.MaxPrice).
		MinInt("star_rating", c.StarRating)

	where, args := b.Where()
	orderBy, _ := search.OrderBy(search.HotelSortColumns, c.SortBy)

	query := `SELECT ` + hotelColumns + ` FROM hotels` + where + orderBy +
		fmt.Sprintf(" LIMIT $%d", b.NextArg())
	args = append(args, search.ClampLimit(c.Limit))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hotels := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Description, &h.Location, &h.Address,
			&h.Latitude, &h.Longitude, &h.StarRating, &h.PricePerNight, &h.Currency,
			&h.Amenities, &h.Images, &h.RoomTypes, &h.IsActive, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}
