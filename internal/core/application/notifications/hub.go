// Package notifications fans shipment change events out to live subscribers.
package notifications

import (
	"context"
	"log/slog"
	"sync"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

// DefaultBufferSize is the per-subscriber queue capacity used when none is configured.
const DefaultBufferSize = 64

// Subscription is one registered observer. Updates yields shipment identifiers
// in broadcast order until the subscription is removed.
type Subscription struct {
	id      kernel.UUID
	updates chan string
	closed  bool
}

// ID returns the subscription identifier.
func (s *Subscription) ID() kernel.UUID {
	return s.id
}

// Updates returns the receive side of the subscription queue.
// The channel is closed when the subscriber is removed.
func (s *Subscription) Updates() <-chan string {
	return s.updates
}

// Hub is a process-scoped registry of subscriptions.
//
// Broadcast never blocks: a subscriber whose queue is full is dropped and its
// channel closed. Sends happen under the hub lock, so every subscriber observes
// broadcasts in the order they were issued and no identifier is delivered twice.
type Hub struct {
	mu          sync.Mutex
	subscribers map[kernel.UUID]*Subscription
	bufferSize  int
	closed      bool
	metrics     ports.TrackingMetrics
	logger      *slog.Logger
}

var _ ports.ShipmentNotifier = (*Hub)(nil)

// NewHub creates an empty hub. A non-positive bufferSize falls back to DefaultBufferSize.
// metrics may be nil.
func NewHub(bufferSize int, metrics ports.TrackingMetrics, logger *slog.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Hub{
		subscribers: make(map[kernel.UUID]*Subscription),
		bufferSize:  bufferSize,
		metrics:     metrics,
		logger:      logger.With("component", "notification_hub"),
	}
}

// Subscribe registers a new subscription. After Close it returns a subscription
// whose channel is already closed.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:      kernel.NewUUID(),
		updates: make(chan string, h.bufferSize),
	}

	h.mu.Lock()
	if h.closed {
		sub.closed = true
		close(sub.updates)
		h.mu.Unlock()
		return sub
	}
	h.subscribers[sub.id] = sub
	n := len(h.subscribers)
	h.mu.Unlock()

	h.logger.Debug("Subscriber registered", "subscription_id", sub.id.String(), "subscribers", n)
	h.reportActive(n)
	return sub
}

// Unsubscribe removes sub and closes its channel. Calling it more than once,
// or after the hub dropped the subscriber, is a no-op.
func (h *Hub) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}

	h.mu.Lock()
	removed := h.remove(sub)
	n := len(h.subscribers)
	h.mu.Unlock()

	if removed {
		h.logger.Debug("Subscriber removed", "subscription_id", sub.id.String(), "subscribers", n)
		h.reportActive(n)
	}
}

// Broadcast delivers shipmentID to every registered subscriber.
func (h *Hub) Broadcast(shipmentID string) {
	h.mu.Lock()

	delivered := 0
	var dropped []kernel.UUID
	for id, sub := range h.subscribers {
		select {
		case sub.updates <- shipmentID:
			delivered++
		default:
			h.remove(sub)
			dropped = append(dropped, id)
		}
	}
	n := len(h.subscribers)

	h.mu.Unlock()

	for _, id := range dropped {
		h.logger.Warn("Subscriber queue full, dropping subscriber",
			"subscription_id", id.String(), "shipment_id", shipmentID)
		if h.metrics != nil {
			h.metrics.SubscriberDropped()
		}
	}
	if h.metrics != nil {
		h.metrics.BroadcastSent(delivered)
	}
	if len(dropped) > 0 {
		h.reportActive(n)
	}
}

// Len returns the number of registered subscribers.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subscribers)
}

// Close removes every subscriber and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	h.closed = true
	for _, sub := range h.subscribers {
		h.remove(sub)
	}
	h.mu.Unlock()

	h.logger.InfoContext(context.Background(), "Notification hub closed")
	h.reportActive(0)
}

// remove must be called with h.mu held.
func (h *Hub) remove(sub *Subscription) bool {
	if sub.closed {
		return false
	}
	delete(h.subscribers, sub.id)
	sub.closed = true
	close(sub.updates)
	return true
}

func (h *Hub) reportActive(n int) {
	if h.metrics != nil {
		h.metrics.SubscribersActive(n)
	}
}
