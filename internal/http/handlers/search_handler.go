package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/travelhub/backend/internal/http/dto"
	"github.com/travelhub/backend/internal/repositories"
	"github.com/travelhub/backend/internal/search"
	"go.uber.org/zap"
)

type SearchHandler struct {
	hotels       *repositories.HotelRepo
	flights      *repositories.FlightRepo
	destinations *repositories.DestinationRepo
	deals        *repositories.DealRepo
	log          *zap.Logger
}

func NewSearchHandler(
	hotels *repositories.HotelRepo,
	flights *repositories.FlightRepo,
	destinations *repositories.DestinationRepo,
	deals *repositories.DealRepo,
	log *zap.Logger,
) *SearchHandler {
	return &SearchHandler{hotels: hotels, flights: flights, destinations: destinations, deals: deals, log: log}
}

func (h *SearchHandler) SearchHotels(c *fiber.Ctx) error {
	limit, ok := parseLimit(c, search.DefaultLimit, search.MaxLimit)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "limit must be at least 1"})
	}

	criteria := search.HotelCriteria{
		Destination: queryString(c, "destination"),
		MinPrice:    queryFloat(c, "min_price"),
		MaxPrice:    queryFloat(c, "max_price"),
		StarRating:  queryInt(c, "star_rating"),
		SortBy:      c.Query("sort_by", "price"),
		Limit:       limit,
	}
	h.warnUnknownSort(c, search.HotelSortColumns, criteria.SortBy)

	hotels, err := h.hotels.Search(c.Context(), criteria)
	if err != nil {
		h.log.Error("hotel search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: hotels})
}

func (h *SearchHandler) SearchFlights(c *fiber.Ctx) error {
	limit, ok := parseLimit(c, search.DefaultLimit, search.MaxLimit)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "limit must be at least 1"})
	}

	criteria := search.FlightCriteria{
		DepartureCity: queryString(c, "departure_city"),
		ArrivalCity:   queryString(c, "arrival_city"),
		CabinClass:    queryString(c, "cabin_class"),
		MaxStops:      queryInt(c, "max_stops"),
		MinPrice:      queryFloat(c, "min_price"),
		MaxPrice:      queryFloat(c, "max_price"),
		SortBy:        c.Query("sort_by", "price"),
		Limit:         limit,
	}
	h.warnUnknownSort(c, search.FlightSortColumns, criteria.SortBy)

	flights, err := h.flights.Search(c.Context(), criteria)
	if err != nil {
		h.log.Error("flight search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: flights})
}

func (h *SearchHandler) GetDestinations(c *fiber.Ctx) error {
	limit, ok := parseLimit(c, 10, 50)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "limit must be at least 1"})
	}

	destinations, err := h.destinations.ListPopular(c.Context(), c.QueryBool("featured_only"), limit)
	if err != nil {
		h.log.Error("destination lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: destinations})
}

func (h *SearchHandler) GetDeals(c *fiber.Ctx) error {
	limit, ok := parseLimit(c, 10, 50)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "limit must be at least 1"})
	}

	deals, err := h.deals.ListActive(c.Context(), queryString(c, "deal_type"), c.QueryBool("featured_only"), limit)
	if err != nil {
		h.log.Error("deal lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "internal error"})
	}
	return c.JSON(dto.SuccessResponse{OK: true, Data: deals})
}

// Unknown sort keys fall back to unordered output; the fallback is logged so
// it is never silent.
func (h *SearchHandler) warnUnknownSort(c *fiber.Ctx, columns map[string]string, key string) {
	if _, ok := columns[key]; !ok {
		h.log.Warn("unknown sort key, results will be unordered",
			zap.String("sort_by", key),
			zap.String("path", c.Path()))
	}
}

// parseLimit returns (value, true) applying the default and clamping to max,
// or (0, false) when the supplied limit is below 1 or unparseable.
func parseLimit(c *fiber.Ctx, def, max int) (int, bool) {
	v := c.Query("limit")
	if v == "" {
		return def, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, false
	}
	if n > max {
		n = max
	}
	return n, true
}

func queryString(c *fiber.Ctx, key string) *string {
	if v := c.Query(key); v != "" {
		return &v
	}
	return nil
}

func queryFloat(c *fiber.Ctx, key string) *float64 {
	if v := c.Query(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return &f
		}
	}
	return nil
}

func queryInt(c *fiber.Ctx, key string) *int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}
