package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelhub/backend/internal/models"
	"github.com/travelhub/backend/internal/search"
)

type DestinationRepo struct {
	pool *pgxpool.Pool
}

func NewDestinationRepo(pool *pgxpool.Pool) *DestinationRepo {
	return &DestinationRepo{pool: pool}
}

// ListPopular returns active destinations by descending popularity.
func (r *DestinationRepo) ListPopular(ctx context.Context, featuredOnly bool, limit int) ([]models.Destination, error) {
	b := search.NewBuilder().
		Active().
		EqualsBool("is_featured", featuredOnly)
	where, args := b.Where()

	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT id, name, country, description, image_url, latitude, longitude,
		       popularity_score, average_rating, is_featured, is_active, created_at, updated_at
		FROM destinations` + where +
		fmt.Sprintf(" ORDER BY popularity_score DESC LIMIT $%d", b.NextArg())
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	destinations := []models.Destination{}
	for rows.Next() {
		var d models.Destination
		if err := rows.Scan(&d.ID, &d.Name, &d.Country, &d.Description, &d.ImageURL,
			&d.Latitude, &d.Longitude, &d.PopularityScore, &d.AverageRating,
			&d.IsFeatured, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		destinations = append(destinations, d)
	}
	return destinations, rows.Err()
}
