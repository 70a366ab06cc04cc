package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/travelhub/backend/internal/config"
	"github.com/travelhub/backend/internal/db"
	"github.com/travelhub/backend/internal/events"
	apphttp "github.com/travelhub/backend/internal/http"
	"github.com/travelhub/backend/internal/http/handlers"
	"github.com/travelhub/backend/internal/repositories"
	"github.com/travelhub/backend/internal/services"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	hotelRepo := repositories.NewHotelRepo(pool)
	flightRepo := repositories.NewFlightRepo(pool)
	bookingRepo := repositories.NewBookingRepo(pool)
	eventLogRepo := repositories.NewEventLogRepo(pool)
	destinationRepo := repositories.NewDestinationRepo(pool)
	dealRepo := repositories.NewDealRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	auditService := services.NewAuditService(eventLogRepo, publisher, log)
	bookingService := services.NewBookingService(bookingRepo, hotelRepo, flightRepo, auditService, log)

	// Handlers
	searchHandler := handlers.NewSearchHandler(hotelRepo, flightRepo, destinationRepo, dealRepo, log)
	inventoryHandler := handlers.NewInventoryHandler(hotelRepo, flightRepo, log)
	bookingHandler := handlers.NewBookingHandler(bookingService, bookingRepo, log)
	logsHandler := handlers.NewLogsHandler(auditService, eventLogRepo, log)
	eventFeed := handlers.NewEventFeed(cfg, subscriber, log)

	eventFeed.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb, searchHandler, inventoryHandler, bookingHandler, logsHandler, eventFeed)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
