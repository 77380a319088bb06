package events

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/omnihub/omnihub-api/internal/domain/usage"
)

// usageChannel is the Redis pub/sub channel carrying usage events, so every
// server instance feeds its own websocket subscribers.
const usageChannel = "events:usage"

// Event is one message on the admin usage feed.
type Event struct {
	Type  string       `json:"type"`
	Usage usage.Record `json:"usage"`
}

// Connection represents one subscribed websocket client.
type Connection struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub fans usage events out to connected admin dashboards. With Redis the
// events travel through pub/sub; without it the hub broadcasts locally.
type Hub struct {
	connections map[*Connection]bool
	mu          sync.RWMutex

	redis  *redis.Client
	pubsub *redis.PubSub

	register   chan *Connection
	unregister chan *Connection

	ctx    context.Context
	cancel context.CancelFunc
}

// NewHub creates a new usage event hub
func NewHub(redisClient *redis.Client) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	h := &Hub{
		connections: make(map[*Connection]bool),
		redis:       redisClient,
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		ctx:         ctx,
		cancel:      cancel,
	}

	if redisClient != nil {
		h.pubsub = redisClient.Subscribe(ctx, usageChannel)
	}

	return h
}

// Run starts the hub (call in goroutine)
func (h *Hub) Run() {
	if h.pubsub != nil {
		go h.runRedisSubscriber()
	}

	for {
		select {
		case <-h.ctx.Done():
			return

		case conn := <-h.register:
			h.mu.Lock()
			h.connections[conn] = true
			h.mu.Unlock()
			log.Debug().Msg("Admin connected to usage feed")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.connections[conn]; ok {
				delete(h.connections, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			log.Debug().Msg("Admin disconnected from usage feed")
		}
	}
}

// Stop shuts the hub down and closes the pub/sub subscription.
func (h *Hub) Stop() {
	h.cancel()
	if h.pubsub != nil {
		_ = h.pubsub.Close()
	}
}

// Register adds a connection to the hub.
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection from the hub.
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// PublishUsage implements gate.Publisher. Best effort: failures are logged
// and never affect the charge that produced the event.
func (h *Hub) PublishUsage(ctx context.Context, rec usage.Record) {
	payload, err := json.Marshal(Event{Type: "usage", Usage: rec})
	if err != nil {
		log.Error().Err(err).Msg("Failed to encode usage event")
		return
	}

	if h.redis != nil {
		if err := h.redis.Publish(ctx, usageChannel, payload).Err(); err != nil {
			log.Error().Err(err).Msg("Failed to publish usage event")
		}
		return
	}

	h.broadcastLocal(payload)
}

func (h *Hub) runRedisSubscriber() {
	ch := h.pubsub.Channel()

	for {
		select {
		case <-h.ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			h.broadcastLocal([]byte(msg.Payload))
		}
	}
}

// broadcastLocal sends a payload to clients connected to THIS server.
// Slow clients are dropped rather than blocking the feed.
func (h *Hub) broadcastLocal(payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for conn := range h.connections {
		select {
		case conn.Send <- payload:
		default:
		}
	}
}
