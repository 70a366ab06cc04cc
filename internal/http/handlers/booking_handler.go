package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/travelhub/backend/internal/http/dto"
	"github.com/travelhub/backend/internal/middleware"
	"github.com/travelhub/backend/internal/repositories"
	"github.com/travelhub/backend/internal/services"
	"go.uber.org/zap"
)

type BookingHandler struct {
	bookingService *services.BookingService
	bookings       *repositories.BookingRepo
	log            *zap.Logger
}

func NewBookingHandler(bookingService *services.BookingService, bookings *repositories.BookingRepo, log *zap.Logger) *BookingHandler {
	return &BookingHandler{bookingService: bookingService, bookings: bookings, log: log}
}

func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid request"})
	}

	booking, err := h.bookingService.Create(c.Context(), middleware.GetOwner(c), req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPrice),
			errors.Is(err, services.ErrInvalidBookingType),
			errors.Is(err, services.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrHotelNotFound),
			errors.Is(err, services.ErrFlightNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: err.Error()})
		case errors.Is(err, services.ErrReferenceConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		h.log.Error("create booking failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{OK: true, Data: booking})
}

func (h *BookingHandler) ListBookings(c *fiber.Ctx) error {
	bookings, err := h.bookings.ListByUser(c.Context(), middleware.GetUserID(c))
	if err != nil {
		h.log.Error("list bookings failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: bookings})
}

func (h *BookingHandler) GetBooking(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid booking id"})
	}

	booking, err := h.bookings.GetByIDForUser(c.Context(), id, middleware.GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "booking not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: booking})
}
