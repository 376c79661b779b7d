package service

import (
	"sync"

	"griddesk/internal/services/datasets/domain"
)

// Hub is a fire and forget fan-out of dataset update events
// sends never block: a subscriber with a full channel misses the event
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan domain.UpdateEvent
	next int
}

// NewHub constructs an empty Hub
func NewHub() *Hub {
	return &Hub{subs: map[int]chan domain.UpdateEvent{}}
}

// Subscribe registers a listener and returns its channel plus a cancel func
func (h *Hub) Subscribe() (<-chan domain.UpdateEvent, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	id := h.next
	h.next++
	ch := make(chan domain.UpdateEvent, 8)
	h.subs[id] = ch
	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}
}

// Notify delivers ev to every subscriber without blocking
func (h *Hub) Notify(ev domain.UpdateEvent) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
