package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"github.com/travelhub/backend/internal/config"
	"github.com/travelhub/backend/internal/http/handlers"
	"github.com/travelhub/backend/internal/middleware"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	searchHandler *handlers.SearchHandler,
	inventoryHandler *handlers.InventoryHandler,
	bookingHandler *handlers.BookingHandler,
	logsHandler *handlers.LogsHandler,
	eventFeed *handlers.EventFeed,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimit, cfg.RateLimitWindow))

	// Event logging (frontend submission is itself a primary operation)
	api.Post("/logs/events", logsHandler.RecordEvent)
	api.Get("/logs/events", logsHandler.ListEvents)

	// Inventory search
	api.Get("/search/hotels", searchHandler.SearchHotels)
	api.Get("/search/flights", searchHandler.SearchFlights)
	api.Get("/search/destinations", searchHandler.GetDestinations)
	api.Get("/search/deals", searchHandler.GetDeals)

	// Inventory details
	api.Get("/hotels/:id", inventoryHandler.GetHotel)
	api.Get("/flights/:id", inventoryHandler.GetFlight)

	// Bookings (authenticated)
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))
	protected.Post("/bookings", bookingHandler.CreateBooking)
	protected.Get("/bookings", bookingHandler.ListBookings)
	protected.Get("/bookings/:id", bookingHandler.GetBooking)

	// Live audit-trail feed
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(eventFeed.HandleWS))
}
