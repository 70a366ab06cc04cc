package models

import (
	"time"

	"github.com/google/uuid"
)

// Frontend interaction event types plus the backend DB_UPDATE kind.
const (
	EventTypeClick      = "CLICK"
	EventTypeScroll     = "SCROLL"
	EventTypeHover      = "HOVER"
	EventTypeKeyPress   = "KEY_PRESS"
	EventTypeGoBack     = "GO_BACK"
	EventTypeGoForward  = "GO_FORWARD"
	EventTypeGoToURL    = "GO_TO_URL"
	EventTypeSetStorage = "SET_STORAGE"
	EventTypeCustom     = "CUSTOM"
	EventTypeDBUpdate   = "DB_UPDATE"

	EventSourceFrontend = "frontend"
	EventSourceBackend  = "backend"
)

func IsValidEventType(t string) bool {
	switch t {
	case EventTypeClick, EventTypeScroll, EventTypeHover, EventTypeKeyPress,
		EventTypeGoBack, EventTypeGoForward, EventTypeGoToURL,
		EventTypeSetStorage, EventTypeCustom, EventTypeDBUpdate:
		return true
	}
	return false
}

// EventLog is append-only; rows are never mutated or deleted.
type EventLog struct {
	ID          uuid.UUID `json:"id"`
	EventType   string    `json:"event_type"`
	Description string    `json:"description"`
	UserID      *string   `json:"user_id,omitempty"`
	SessionID   *string   `json:"session_id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Metadata    any       `json:"metadata,omitempty"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"created_at"`
}

// Metadata variants, one per event type. Exactly one shape is valid for a
// given event_type; the audit service selects it when building the entry.

type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type ClickMetadata struct {
	PageURL           string      `json:"page_url"`
	ElementIdentifier string      `json:"element_identifier"`
	Coordinates       Coordinates `json:"coordinates"`
}

type ScrollMetadata struct {
	PageURL string `json:"page_url"`
	ScrollX int    `json:"scroll_x"`
	ScrollY int    `json:"scroll_y"`
}

type HoverMetadata struct {
	PageURL           string `json:"page_url"`
	ElementIdentifier string `json:"element_identifier"`
}

type KeyPressMetadata struct {
	PageURL           string `json:"page_url"`
	ElementIdentifier string `json:"element_identifier"`
	Key               string `json:"key"`
}

type NavigationMetadata struct {
	PageURL   string  `json:"page_url"`
	TargetURL *string `json:"target_url,omitempty"`
}

type StorageMetadata struct {
	PageURL     string `json:"page_url"`
	StorageType string `json:"storage_type"` // local / session
	Key         string `json:"key"`
	Value       string `json:"value"`
}

type CustomMetadata struct {
	CustomAction string         `json:"custom_action"`
	Data         map[string]any `json:"data,omitempty"`
}

type DBUpdateMetadata struct {
	TableName  string         `json:"table_name"`
	UpdateType string         `json:"update_type"` // insert / update / delete
	Values     map[string]any `json:"values"`
}
