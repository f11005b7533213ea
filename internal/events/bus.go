// Package events carries the health-change broadcast between the engines
// that mutate a character and anything watching the same character.
package events

import "sync"

// HealthChange is published whenever a character's hit points move, whether
// from consumables, leveling, or triggered events.
type HealthChange struct {
	Current int
	Max     int
}

// Listener receives published health changes.
type Listener func(HealthChange)

// Bus is a synchronous fan-out broadcaster. Publish delivers to listeners in
// subscription order and does not wait for acknowledgment; there is no
// cancellation. Safe for concurrent use.
type Bus struct {
	mu        sync.Mutex
	nextID    int
	listeners []subscription
}

type subscription struct {
	id int
	fn Listener
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers a listener and returns the function that removes it.
func (b *Bus) Subscribe(fn Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, subscription{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.listeners {
			if sub.id == id {
				b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the change to every listener, in subscription order.
func (b *Bus) Publish(change HealthChange) {
	b.mu.Lock()
	listeners := make([]subscription, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.Unlock()

	for _, sub := range listeners {
		sub.fn(change)
	}
}
