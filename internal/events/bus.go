package events

import (
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener processes events
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus manages event distribution
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// Subscribe adds a listener for specific event types
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], listener)
	b.sortLocked(eventType)

	log.Printf("EventBus: Subscribed listener %s to event %s with priority %d",
		listener.ID(), eventType, listener.Priority())
}

// SubscribeAll adds listener for every type in eventTypes
func (b *Bus) SubscribeAll(eventTypes []EventType, listener EventListener) {
	for _, t := range eventTypes {
		b.Subscribe(t, listener)
	}
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	listeners := b.listeners[eventType]
	for i, l := range listeners {
		if l.ID() != listenerID {
			continue
		}
		// Remove by swapping with last and truncating
		listeners[i] = listeners[len(listeners)-1]
		b.listeners[eventType] = listeners[:len(listeners)-1]
		b.sortLocked(eventType)

		log.Printf("EventBus: Unsubscribed listener %s from event %s", listenerID, eventType)
		return
	}
}

// Emit sends an event to all registered listeners in priority order. A failing
// listener does not stop the ones after it; their errors are joined.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	b.mu.RUnlock()

	if len(listeners) == 0 {
		return nil
	}

	log.Printf("EventBus: Emitting event %s for %s with %d listeners", event.GetType(), event.GetKey(), len(listeners))

	var errs []error
	for _, listener := range listeners {
		if err := listener.HandleEvent(event); err != nil {
			errs = append(errs, fmt.Errorf("listener %s failed: %w", listener.ID(), err))
		}
	}

	return errors.Join(errs...)
}

// Clear removes all listeners
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners = make(map[EventType][]EventListener)
	log.Printf("EventBus: Cleared all listeners")
}

// sortLocked keeps listeners ordered by priority. Caller holds b.mu.
func (b *Bus) sortLocked(eventType EventType) {
	sort.SliceStable(b.listeners[eventType], func(i, j int) bool {
		return b.listeners[eventType][i].Priority() < b.listeners[eventType][j].Priority()
	})
}
