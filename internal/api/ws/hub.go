package ws

import (
	"sync"
	"time"
)

// Event is a message broadcast to connected inventory clients.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp int64       `json:"timestamp"`
}

// Event types published by the product handlers
const (
	EventProductCreated = "product_created"
	EventProductUpdated = "product_updated"
	EventProductDeleted = "product_deleted"
	EventStockAdjusted  = "stock_adjusted"
)

// Hub fans events out to subscribers. Each subscriber has a buffered
// channel; a slow consumer has events dropped rather than blocking the
// publisher.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[int64]chan Event
	nextID      int64
	buffer      int
}

// NewHub creates an event hub
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[int64]chan Event),
		buffer:      100,
	}
}

// Subscribe registers a new consumer and returns its id and event channel.
// The caller must Unsubscribe when done.
func (h *Hub) Subscribe() (int64, <-chan Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	id := h.nextID
	ch := make(chan Event, h.buffer)
	h.subscribers[id] = ch
	return id, ch
}

// Unsubscribe removes a consumer and closes its channel
func (h *Hub) Unsubscribe(id int64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ch, ok := h.subscribers[id]; ok {
		delete(h.subscribers, id)
		close(ch)
	}
}

// Publish broadcasts an event to all current subscribers
func (h *Hub) Publish(eventType string, data interface{}) {
	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().Unix(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
			// Channel full, client is slow; drop the event
		}
	}
}

// SubscriberCount returns the number of active subscribers
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Close unsubscribes everyone. Called during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, ch := range h.subscribers {
		delete(h.subscribers, id)
		close(ch)
	}
}
