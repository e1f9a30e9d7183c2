package events

import (
	"fmt"
	"sync"
)

// Bus is a simple event bus for UI services. Handlers run synchronously on
// the publishing goroutine: every publish happens inside a single key
// handler, so listeners must not re-trigger the operation that fired them.
type Bus struct {
	mu        sync.RWMutex
	listeners map[string][]func(interface{})
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make(map[string][]func(interface{})),
	}
}

// Subscribe registers a listener for an event type
func (b *Bus) Subscribe(eventType string, handler func(interface{})) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.listeners[eventType] = append(b.listeners[eventType], handler)
}

// Publish sends an event to all listeners
func (b *Bus) Publish(event interface{}) {
	b.mu.RLock()
	handlers := b.listeners[TypeName(event)]
	b.mu.RUnlock()

	for _, handler := range handlers {
		handler(event)
	}
}

// TypeName returns the subscription key for an event value
func TypeName(event interface{}) string {
	return fmt.Sprintf("%T", event)
}
