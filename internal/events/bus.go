package events

import (
	"fmt"
	"log"
	"sort"
	"sync"
)

// EventListener reacts to events. Listeners run in ascending Priority.
type EventListener interface {
	HandleEvent(event Event) error
	Priority() int
	ID() string
}

// Bus is a synchronous event bus. Emit returns only after every listener ran.
type Bus struct {
	listeners map[EventType][]EventListener
	mu        sync.RWMutex
	verbose   bool
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[EventType][]EventListener),
	}
}

// SetVerbose turns on per-emit logging
func (b *Bus) SetVerbose(verbose bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.verbose = verbose
}

// Subscribe registers listener for eventType. A listener with the same ID
// already registered for the type is replaced.
func (b *Bus) Subscribe(eventType EventType, listener EventListener) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.listeners[eventType]
	for i, l := range current {
		if l.ID() == listener.ID() {
			current = append(current[:i], current[i+1:]...)
			break
		}
	}
	current = append(current, listener)

	sort.SliceStable(current, func(i, j int) bool {
		return current[i].Priority() < current[j].Priority()
	})
	b.listeners[eventType] = current

	if b.verbose {
		log.Printf("EventBus: Subscribed %s to %s with priority %d", listener.ID(), eventType, listener.Priority())
	}
}

// SubscribeAll registers listener for every known event type
func (b *Bus) SubscribeAll(listener EventListener) {
	for _, t := range AllEventTypes {
		b.Subscribe(t, listener)
	}
}

// Unsubscribe removes the listener with listenerID from eventType
func (b *Bus) Unsubscribe(eventType EventType, listenerID string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.listeners[eventType]
	for i, l := range current {
		if l.ID() != listenerID {
			continue
		}
		b.listeners[eventType] = append(current[:i:i], current[i+1:]...)
		return
	}
}

// ListenerCount returns how many listeners are registered for eventType
func (b *Bus) ListenerCount(eventType EventType) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.listeners[eventType])
}

// Emit delivers event to its listeners in priority order. A cancelled event
// stops propagating; a listener error aborts the emit.
func (b *Bus) Emit(event Event) error {
	b.mu.RLock()
	listeners := make([]EventListener, len(b.listeners[event.GetType()]))
	copy(listeners, b.listeners[event.GetType()])
	verbose := b.verbose
	b.mu.RUnlock()

	if verbose {
		log.Printf("EventBus: Emitting %s to %d listeners", event.GetType(), len(listeners))
	}

	for _, listener := range listeners {
		if event.IsCancelled() {
			break
		}
		if err := listener.HandleEvent(event); err != nil {
			return fmt.Errorf("listener %s failed on %s: %w", listener.ID(), event.GetType(), err)
		}
	}

	return nil
}

// Clear removes every listener
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = make(map[EventType][]EventListener)
}
