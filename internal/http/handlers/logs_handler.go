package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travelhub/backend/internal/http/dto"
	"github.com/travelhub/backend/internal/repositories"
	"github.com/travelhub/backend/internal/services"
	"go.uber.org/zap"
)

type LogsHandler struct {
	auditService *services.AuditService
	events       *repositories.EventLogRepo
	log          *zap.Logger
}

func NewLogsHandler(auditService *services.AuditService, events *repositories.EventLogRepo, log *zap.Logger) *LogsHandler {
	return &LogsHandler{auditService: auditService, events: events, log: log}
}

// RecordEvent accepts one frontend interaction event. Unlike the backend
// change trail, this is a primary operation and failures reach the client.
func (h *LogsHandler) RecordEvent(c *fiber.Ctx) error {
	var req dto.FrontendEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}
	if req.Type == "" || req.Text == "" || req.Timestamp == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "type, text, and timestamp are required"})
	}

	entry, err := h.auditService.RecordFrontendEvent(c.Context(), req.ToEvent())
	if err != nil {
		if errors.Is(err, services.ErrInvalidEventType) || errors.Is(err, services.ErrInvalidTimestamp) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error("record frontend event failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to log event"})
	}

	return c.JSON(dto.EventAcceptedResponse{Status: "success", EventID: entry.ID.String()})
}

// ListEvents returns the filtered audit trail, newest first, with the total
// count for the filter. No maximum is imposed on limit here.
func (h *LogsHandler) ListEvents(c *fiber.Ctx) error {
	filter := repositories.EventFilter{
		UserID:    queryString(c, "user_id"),
		SessionID: queryString(c, "session_id"),
		EventType: queryString(c, "event_type"),
		Limit:     100,
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	events, total, err := h.events.List(c.Context(), filter)
	if err != nil {
		h.log.Error("list events failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "failed to retrieve events"})
	}

	return c.JSON(dto.EventListResponse{Events: events, Total: total})
}
