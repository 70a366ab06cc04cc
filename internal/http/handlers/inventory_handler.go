package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travelhub/backend/internal/http/dto"
	"github.com/travelhub/backend/internal/repositories"
	"go.uber.org/zap"
)

// InventoryHandler serves hotel and flight detail lookups.
type InventoryHandler struct {
	hotels  *repositories.HotelRepo
	flights *repositories.FlightRepo
	log     *zap.Logger
}

func NewInventoryHandler(hotels *repositories.HotelRepo, flights *repositories.FlightRepo, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{hotels: hotels, flights: flights, log: log}
}

func (h *InventoryHandler) GetHotel(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid hotel id"})
	}

	hotel, err := h.hotels.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "hotel not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: hotel})
}

func (h *InventoryHandler) GetFlight(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "invalid flight id"})
	}

	flight, err := h.flights.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "flight not found"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: flight})
}
