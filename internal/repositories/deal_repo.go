package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelhub/backend/internal/models"
	"github.com/travelhub/backend/internal/search"
)

type DealRepo struct {
	pool *pgxpool.Pool
}

func NewDealRepo(pool *pgxpool.Pool) *DealRepo {
	return &DealRepo{pool: pool}
}

// ListActive returns current deals by descending discount.
func (r *DealRepo) ListActive(ctx context.Context, dealType *string, featuredOnly bool, limit int) ([]models.Deal, error) {
	b := search.NewBuilder().
		Active().
		Equals("deal_type", dealType).
		EqualsBool("is_featured", featuredOnly)
	where, args := b.Where()

	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT id, title, description, deal_type, original_price, discounted_price,
		       discount_percentage, currency, valid_from, valid_until, image_url,
		       is_featured, is_active, created_at, updated_at
		FROM deals` + where +
		fmt.Sprintf(" ORDER BY discount_percentage DESC LIMIT $%d", b.NextArg())
	args = append(args, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deals := []models.Deal{}
	for rows.Next() {
		var d models.Deal
		if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.DealType, &d.OriginalPrice,
			&d.DiscountedPrice, &d.DiscountPercentage, &d.Currency, &d.ValidFrom, &d.ValidUntil,
			&d.ImageURL, &d.IsFeatured, &d.IsActive, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		deals = append(deals, d)
	}
	return deals, rows.Err()
}
