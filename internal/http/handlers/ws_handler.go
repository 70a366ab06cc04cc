package handlers

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/travelhub/backend/internal/auth"
	"github.com/travelhub/backend/internal/config"
	"github.com/travelhub/backend/internal/events"
	"go.uber.org/zap"
)

// EventFeed streams recorded event-log entries to connected clients as they
// are written, via the audit pub/sub stream.
type EventFeed struct {
	cfg        *config.Config
	subscriber events.Subscriber
	log        *zap.Logger
	mu         sync.RWMutex
	conns      map[*websocket.Conn]struct{}
}

func NewEventFeed(cfg *config.Config, subscriber events.Subscriber, log *zap.Logger) *EventFeed {
	return &EventFeed{
		cfg:        cfg,
		subscriber: subscriber,
		log:        log,
		conns:      make(map[*websocket.Conn]struct{}),
	}
}

func (f *EventFeed) Start(ctx context.Context) {
	_ = f.subscriber.Subscribe(ctx, events.StreamAudit, func(event events.Event) {
		f.broadcast(event)
	})
}

func (f *EventFeed) broadcast(event events.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for conn := range f.conns {
		_ = conn.WriteMessage(websocket.TextMessage, data)
	}
}

// WSUpgradeMiddleware rejects plain HTTP requests on the websocket route.
func WSUpgradeMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

func (f *EventFeed) HandleWS(conn *websocket.Conn) {
	tokenStr := conn.Query("token")
	if tokenStr == "" {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"missing token"}`))
		conn.Close()
		return
	}
	if _, err := auth.ParseJWT(f.cfg.JWTSecret, tokenStr); err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid token"}`))
		conn.Close()
		return
	}

	f.mu.Lock()
	f.conns[conn] = struct{}{}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.conns, conn)
		f.mu.Unlock()
		conn.Close()
	}()

	// Read loop keeps the connection alive; the feed is write-only.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
