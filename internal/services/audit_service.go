package services

import (
	"context"
	"fmt"
	"time"

	"github.com/travelhub/backend/internal/events"
	"github.com/travelhub/backend/internal/models"
	"go.uber.org/zap"
)

// EventStore is the append-only sink the audit logger writes to.
type EventStore interface {
	Insert(ctx context.Context, e *models.EventLog) error
}

// AuditService records user and backend actions to the event log.
//
// RecordFrontendEvent is a primary operation and surfaces failures to its
// caller. RecordChange piggybacks on some other primary operation and is
// best-effort: it never returns an error, so the operation it describes
// cannot be aborted by a logging failure.
type AuditService struct {
	store     EventStore
	publisher events.Publisher
	log       *zap.Logger
}

func NewAuditService(store EventStore, publisher events.Publisher, log *zap.Logger) *AuditService {
	return &AuditService{store: store, publisher: publisher, log: log}
}

// FrontendEvent is a frontend-submitted interaction event. Which payload
// fields are meaningful depends on Type; BuildMetadata picks the variant.
type FrontendEvent struct {
	Type      string
	Text      string
	Timestamp string // RFC 3339, supplied by the client and trusted as-is
	UserID    *string
	SessionID *string

	PageURL           string
	ElementIdentifier string
	Coordinates       *models.Coordinates
	ScrollX           int
	ScrollY           int
	Key               string
	TargetURL         *string
	StorageType       string
	Value             string
	CustomAction      string
	Data              map[string]any
}

// BuildMetadata returns the typed metadata variant for the event's type, or
// an error for types outside the frontend vocabulary. DB_UPDATE is
// backend-only and is rejected here.
func (ev FrontendEvent) BuildMetadata() (any, error) {
	switch ev.Type {
	case models.EventTypeClick:
		var coords models.Coordinates
		if ev.Coordinates != nil {
			coords = *ev.Coordinates
		}
		return models.ClickMetadata{
			PageURL:           ev.PageURL,
			ElementIdentifier: ev.ElementIdentifier,
			Coordinates:       coords,
		}, nil
	case models.EventTypeScroll:
		return models.ScrollMetadata{PageURL: ev.PageURL, ScrollX: ev.ScrollX, ScrollY: ev.ScrollY}, nil
	case models.EventTypeHover:
		return models.HoverMetadata{PageURL: ev.PageURL, ElementIdentifier: ev.ElementIdentifier}, nil
	case models.EventTypeKeyPress:
		return models.KeyPressMetadata{PageURL: ev.PageURL, ElementIdentifier: ev.ElementIdentifier, Key: ev.Key}, nil
	case models.EventTypeGoBack, models.EventTypeGoForward, models.EventTypeGoToURL:
		return models.NavigationMetadata{PageURL: ev.PageURL, TargetURL: ev.TargetURL}, nil
	case models.EventTypeSetStorage:
		return models.StorageMetadata{PageURL: ev.PageURL, StorageType: ev.StorageType, Key: ev.Key, Value: ev.Value}, nil
	case models.EventTypeCustom:
		return models.CustomMetadata{CustomAction: ev.CustomAction, Data: ev.Data}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidEventType, ev.Type)
}

// RecordFrontendEvent appends one frontend-originated entry. This is the one
// audit path where failures reach the caller.
func (s *AuditService) RecordFrontendEvent(ctx context.Context, ev FrontendEvent) (*models.EventLog, error) {
	metadata, err := ev.BuildMetadata()
	if err != nil {
		return nil, err
	}

	ts, err := time.Parse(time.RFC3339, ev.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimestamp, ev.Timestamp)
	}

	entry := &models.EventLog{
		EventType:   ev.Type,
		Description: ev.Text,
		UserID:      ev.UserID,
		SessionID:   ev.SessionID,
		Timestamp:   ts,
		Metadata:    metadata,
		Source:      models.EventSourceFrontend,
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		return nil, err
	}

	s.publish(ctx, entry)
	return entry, nil
}

// RecordChange appends one backend state-change entry with server time.
// It deliberately returns nothing: any failure is reported to the logger and
// discarded, so the primary operation being described is never affected.
func (s *AuditService) RecordChange(ctx context.Context, description, tableName, updateType string, values map[string]any, userID *string) {
	entry := &models.EventLog{
		EventType:   models.EventTypeDBUpdate,
		Description: description,
		UserID:      userID,
		Timestamp:   time.Now().UTC(),
		Metadata: models.DBUpdateMetadata{
			TableName:  tableName,
			UpdateType: updateType,
			Values:     values,
		},
		Source: models.EventSourceBackend,
	}
	if err := s.store.Insert(ctx, entry); err != nil {
		s.log.Error("failed to record change event",
			zap.String("table", tableName),
			zap.String("update_type", updateType),
			zap.Error(err))
		return
	}

	s.publish(ctx, entry)
}

// publish pushes the entry onto the live feed, best-effort.
func (s *AuditService) publish(ctx context.Context, entry *models.EventLog) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, events.StreamAudit, events.Event{
		Type: events.EventLogRecorded,
		Payload: map[string]any{
			"id":          entry.ID.String(),
			"event_type":  entry.EventType,
			"description": entry.Description,
			"source":      entry.Source,
			"timestamp":   entry.Timestamp.Format(time.RFC3339),
		},
	})
	if err != nil {
		s.log.Warn("failed to publish audit event", zap.Error(err))
	}
}
