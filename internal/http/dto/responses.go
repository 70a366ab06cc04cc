package dto

import "github.com/travelhub/backend/internal/models"

type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type EventAcceptedResponse struct {
	Status  string `json:"status"`
	EventID string `json:"event_id"`
}

type EventListResponse struct {
	Events []models.EventLog `json:"events"`
	Total  int               `json:"total"`
}
