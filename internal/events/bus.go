package events

import (
	"log"
	"sync"
)

const (
	EventWelcomeEmail     = "welcome-email"
	EventSendVerification = "send-verification"
	EventSendResetToken   = "send-reset-token"
)

type Event struct {
	Name      string
	Recipient string
	Data      map[string]string
}

type Handler func(Event)

// Bus is a fire-and-forget event dispatcher. Emit never blocks the caller;
// delivery order is preserved but delivery itself is not acknowledged.
type Bus struct {
	ch       chan Event
	mu       sync.RWMutex
	handlers []Handler
	wg       sync.WaitGroup
}

func NewBus(buffer int) *Bus {
	b := &Bus{
		ch: make(chan Event, buffer),
	}
	b.wg.Add(1)
	go b.dispatch()
	return b
}

func (b *Bus) dispatch() {
	defer b.wg.Done()
	for event := range b.ch {
		b.mu.RLock()
		handlers := b.handlers
		b.mu.RUnlock()
		for _, h := range handlers {
			h(event)
		}
	}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}

func (b *Bus) Emit(event Event) {
	select {
	case b.ch <- event:
	default:
		log.Printf("event bus full, dropping %s for %s", event.Name, event.Recipient)
	}
}

// Close stops the dispatch goroutine after draining buffered events.
func (b *Bus) Close() {
	close(b.ch)
	b.wg.Wait()
}
