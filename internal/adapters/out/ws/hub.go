// Package ws implements the notification fan-out over websockets. Subscribers
// attach to one of the fixed audience groups; every lifecycle event is pushed
// to all groups. Delivery is best-effort: no persistence, no retry, and a
// subscriber that cannot keep up loses messages rather than slowing anyone
// down.
package ws

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"

	"github.com/gorilla/websocket"
)

const (
	// writeWait is the deadline for a single websocket write.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent before it is
	// considered dead; pings go out well inside that window.
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// sendBuffer is the per-subscriber message queue. Publish drops for a
	// subscriber whose buffer is full, it never blocks.
	sendBuffer = 16
)

// Hub fans lifecycle events out to websocket subscribers grouped by audience.
// Implements ports.Notifier.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[ports.Audience]map[*subscriber]struct{}
}

// NewHub creates an empty hub. Audience groups exist from the start so
// subscribing and publishing never race on map creation.
func NewHub(logger *slog.Logger) *Hub {
	subscribers := make(map[ports.Audience]map[*subscriber]struct{})
	for _, audience := range ports.Audiences() {
		subscribers[audience] = make(map[*subscriber]struct{})
	}

	return &Hub{
		logger:      logger,
		subscribers: subscribers,
	}
}

// subscriber is one attached websocket connection.
type subscriber struct {
	audience ports.Audience
	conn     *websocket.Conn
	send     chan []byte
}

// Publish renders the order once and queues it for every subscriber of every
// audience group. Subscribers with a full queue are skipped.
func (h *Hub) Publish(event ports.Event, snapshot order.Snapshot) {
	message, err := json.Marshal(envelope{
		Event: event,
		Order: payloadFromSnapshot(snapshot),
	})
	if err != nil {
		h.logger.Error("encode notification", "event", string(event), "error", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for audience, subs := range h.subscribers {
		for sub := range subs {
			select {
			case sub.send <- message:
			default:
				h.logger.Warn("subscriber queue full, dropping notification",
					"audience", string(audience), "event", string(event))
			}
		}
	}
}

// Subscribe attaches an upgraded connection to an audience group and starts
// its read and write pumps. Returns immediately; the connection is owned by
// the hub from this point on.
func (h *Hub) Subscribe(audience ports.Audience, conn *websocket.Conn) {
	sub := &subscriber{
		audience: audience,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	h.subscribers[audience][sub] = struct{}{}
	h.mu.Unlock()

	h.logger.Info("subscriber attached", "audience", string(audience))

	go h.writePump(sub)
	go h.readPump(sub)
}

// SubscriberCount reports how many connections are attached to an audience.
func (h *Hub) SubscriberCount(audience ports.Audience) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[audience])
}

func (h *Hub) unsubscribe(sub *subscriber) {
	h.mu.Lock()
	if _, ok := h.subscribers[sub.audience][sub]; ok {
		delete(h.subscribers[sub.audience], sub)
		close(sub.send)
	}
	h.mu.Unlock()
}

// writePump drains the subscriber's queue onto the wire and keeps the
// connection alive with pings. Exits when the queue closes or a write fails.
func (h *Hub) writePump(sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = sub.conn.Close()
	}()

	for {
		select {
		case message, ok := <-sub.send:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = sub.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := sub.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = sub.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := sub.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump discards inbound frames; subscribers only listen. Its real job is
// detecting a closed or dead connection and unregistering the subscriber.
func (h *Hub) readPump(sub *subscriber) {
	defer func() {
		h.unsubscribe(sub)
		_ = sub.conn.Close()
		h.logger.Info("subscriber detached", "audience", string(sub.audience))
	}()

	_ = sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	sub.conn.SetPongHandler(func(string) error {
		return sub.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := sub.conn.ReadMessage(); err != nil {
			return
		}
	}
}
