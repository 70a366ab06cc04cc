package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/travelhub/backend/internal/models"
	"github.com/travelhub/backend/internal/search"
)

// EventLogRepo is the append-only event sink. Entries are never updated or
// deleted here.
type EventLogRepo struct {
	pool *pgxpool.Pool
}

func NewEventLogRepo(pool *pgxpool.Pool) *EventLogRepo {
	return &EventLogRepo{pool: pool}
}

func (r *EventLogRepo) Insert(ctx context.Context, e *models.EventLog) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO event_logs (event_type, description, user_id, session_id, timestamp, metadata, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`, e.EventType, e.Description, e.UserID, e.SessionID, e.Timestamp, e.Metadata, e.Source,
	).Scan(&e.ID, &e.CreatedAt)
}

// EventFilter narrows retrieval; nil fields match everything. Unlike inventory
// search there is no server-side maximum on Limit.
type EventFilter struct {
	UserID    *string
	SessionID *string
	EventType *string
	Limit     int
	Offset    int
}

// List returns the filtered page ordered by event timestamp descending,
// together with the total count for the filter.
func (r *EventLogRepo) List(ctx context.Context, f EventFilter) ([]models.EventLog, int, error) {
	b := search.NewBuilder().
		Equals("user_id", f.UserID).
		Equals("session_id", f.SessionID).
		Equals("event_type", f.EventType)
	where, args := b.Where()

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM event_logs`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}
	query := `
		SELECT id, event_type, description, user_id, session_id, timestamp, metadata, source, created_at
		FROM event_logs` + where +
		fmt.Sprintf(" ORDER BY timestamp DESC LIMIT $%d OFFSET $%d", b.NextArg(), b.NextArg()+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events := []models.EventLog{}
	for rows.Next() {
		var e models.EventLog
		if err := rows.Scan(&e.ID, &e.EventType, &e.Description, &e.UserID, &e.SessionID,
			&e.Timestamp, &e.Metadata, &e.Source, &e.CreatedAt); err != nil {
			return nil, 0, err
		}
		events = append(events, e)
	}
	return events, total, rows.Err()
}
