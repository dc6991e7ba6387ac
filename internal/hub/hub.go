// Package hub fans a per-frame time step out to animated objects.
package hub

// Animator is anything that advances with time.
type Animator interface {
	Advance(dt float64)
}

// Hub is an ordered set of animators. It is driven from the render loop and
// is not safe for concurrent use.
type Hub struct {
	subs []Animator
}

// New returns an empty hub.
func New() *Hub {
	return &Hub{}
}

// Register adds a. Registering an animator twice has no further effect.
func (h *Hub) Register(a Animator) {
	if h.Registered(a) {
		return
	}
	h.subs = append(h.subs, a)
}

// Unregister removes a; it is a no-op if a is not registered.
func (h *Hub) Unregister(a Animator) {
	for i, s := range h.subs {
		if s == a {
			h.subs = append(h.subs[:i], h.subs[i+1:]...)
			return
		}
	}
}

// Registered reports whether a is subscribed.
func (h *Hub) Registered(a Animator) bool {
	for _, s := range h.subs {
		if s == a {
			return true
		}
	}
	return false
}

// Len returns the number of subscribers.
func (h *Hub) Len() int { return len(h.subs) }

// Notify calls Advance(dt) on every subscriber in registration order.
func (h *Hub) Notify(dt float64) {
	for _, s := range h.subs {
		s.Advance(dt)
	}
}
