package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"multiselect/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSelectionChanged  = domain.EventSelectionChanged
	EventItemAdded         = domain.EventItemAdded
	EventListToggled       = domain.EventListToggled
	EventSelectorCleared   = domain.EventSelectorCleared
	EventSearchChanged     = domain.EventSearchChanged
	EventItemsLoaded       = domain.EventItemsLoaded
	EventSelectionAccepted = domain.EventSelectionAccepted
	EventError             = domain.EventError
	EventConfigLoaded      = domain.EventConfigLoaded
	EventConfigSaved       = domain.EventConfigSaved
)

// Re-export domain event types
type SelectionChangedEvent = domain.SelectionChangedEvent
type ItemAddedEvent = domain.ItemAddedEvent
type ListToggledEvent = domain.ListToggledEvent
type SelectorClearedEvent = domain.SelectorClearedEvent
type SearchChangedEvent = domain.SearchChangedEvent
type ItemsLoadedEvent = domain.ItemsLoadedEvent
type SelectionAcceptedEvent = domain.SelectionAcceptedEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

type subscription struct {
	id      uint64
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    uint64
	eventChan chan DomainEvent
	wg        sync.WaitGroup // dispatcher and in-flight handlers
	quit      chan struct{}
	closeOnce sync.Once
}

// New creates a new event bus
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	switch event.Type() {
	case EventSearchChanged:
		// one per keystroke, too noisy to log
	default:
		log.Printf("EventBus: Publishing event %s", event.Type())
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		log.Printf("Event bus channel full, dropping event: %v", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops the dispatcher after delivering queued events and waits for
// running handlers to return
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
	})
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.deliver(event)

		case <-b.quit:
			// Deliver what is already queued, then stop
			for {
				select {
				case event := <-b.eventChan:
					b.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (b *bus) deliver(event DomainEvent) {
	b.mu.RLock()
	subs := b.handlers[event.Type()]
	// Copy so handlers run without the lock held
	handlersCopy := make([]EventHandler, len(subs))
	for i, s := range subs {
		handlersCopy[i] = s.handler
	}
	b.mu.RUnlock()

	for _, handler := range handlersCopy {
		b.wg.Add(1)
		go func(h EventHandler, eventType EventType) {
			defer b.wg.Done()
			defer func() {
				if r := recover(); r != nil {
					log.Printf("Event handler panic for %s: %v\nStack: %s", eventType, r, debug.Stack())
				}
			}()
			h(event)
		}(handler, event.Type())
	}
}
