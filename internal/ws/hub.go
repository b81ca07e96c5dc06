package ws

import (
	"encoding/json"
	"sync"

	"eaglehub/internal/events"
)

// Client represents a single WebSocket connection.
type Client struct {
	Send   chan []byte
	hub    *Hub
	mu     sync.Mutex
	closed bool
}

func (c *Client) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.Send)
	c.mu.Unlock()
	if c.hub != nil {
		c.hub.unregister(c)
	}
}

// trySend drops the message if the client is closed or its buffer is full.
func (c *Client) trySend(data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

// Hub fans bus events out to every connected view. It replaces the
// ambient browser events the frontend used to listen for: each open page
// holds one connection and refreshes on settings.updated / chat.updated.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.hub = h
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
}

func (h *Hub) BroadcastAll(payload interface{}) {
	data, _ := json.Marshal(payload)
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()
	for _, c := range clients {
		c.trySend(data)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run subscribes to the bus and forwards every event until the bus
// subscription is cancelled. Start it on its own goroutine.
func (h *Hub) Run(bus *events.Bus) {
	ch, cancel := bus.Subscribe()
	defer cancel()
	for ev := range ch {
		h.BroadcastAll(ev)
	}
}
