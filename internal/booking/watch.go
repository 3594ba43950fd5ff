package booking

import "sync"

// Hub broadcasts the full, freshly ordered booking list to live
// subscribers after every mutation. It replaces the hosted store's
// real-time subscription: each subscriber owns a channel that receives
// the complete current list, never deltas.
type Hub struct {
	mu     sync.Mutex
	subs   map[uint64]chan []*Booking
	nextID uint64
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uint64]chan []*Booking)}
}

// Subscribe registers a new subscriber and returns its channel together
// with an unsubscribe func. The unsubscribe func must be called when the
// consumer goes away; it closes the channel and is safe to call twice.
func (h *Hub) Subscribe() (<-chan []*Booking, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.nextID
	h.nextID++

	ch := make(chan []*Booking, 1)
	h.subs[id] = ch

	unsubscribe := func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		if c, ok := h.subs[id]; ok {
			delete(h.subs, id)
			close(c)
		}
	}

	return ch, unsubscribe
}

// Broadcast delivers list to every subscriber. A subscriber that has not
// consumed the previous snapshot gets it replaced rather than queued;
// only the newest list matters.
func (h *Hub) Broadcast(list []*Booking) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, ch := range h.subs {
		select {
		case ch <- list:
		default:
			// Drop the stale snapshot, then push the new one.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- list:
			default:
			}
		}
	}
}

// SubscriberCount returns the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
