package eventbus

import (
	"runtime/debug"
	"sync"

	"go.uber.org/zap"

	"maidadmin/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventSearchTermChanged = domain.EventSearchTermChanged
	EventAdminDataLoaded   = domain.EventAdminDataLoaded
	EventUserBlocked       = domain.EventUserBlocked
	EventUserUnblocked     = domain.EventUserUnblocked
	EventAdminCreated      = domain.EventAdminCreated
	EventRecordDeleted     = domain.EventRecordDeleted
	EventLoggedIn          = domain.EventLoggedIn
	EventLoggedOut         = domain.EventLoggedOut
	EventThemeChanged      = domain.EventThemeChanged
	EventLanguageChanged   = domain.EventLanguageChanged
	EventError             = domain.EventError
)

// Re-export domain event types
type SearchTermChangedEvent = domain.SearchTermChangedEvent
type AdminDataLoadedEvent = domain.AdminDataLoadedEvent
type UserBlockedEvent = domain.UserBlockedEvent
type UserUnblockedEvent = domain.UserUnblockedEvent
type AdminCreatedEvent = domain.AdminCreatedEvent
type RecordDeletedEvent = domain.RecordDeletedEvent
type LoggedInEvent = domain.LoggedInEvent
type LoggedOutEvent = domain.LoggedOutEvent
type ThemeChangedEvent = domain.ThemeChangedEvent
type LanguageChangedEvent = domain.LanguageChangedEvent
type ErrorEvent = domain.ErrorEvent

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
	wg        sync.WaitGroup
	quit      chan struct{}
	closeOnce sync.Once
	logger    *zap.Logger
}

// New creates a new event bus and starts its dispatcher
func New(logger *zap.Logger) EventBus {
	if logger == nil {
		logger = zap.NewNop()
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
		logger:    logger.Named("eventbus"),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish queues an event for all subscribers. It never blocks; when the
// queue is full the event is dropped and logged.
func (b *bus) Publish(event DomainEvent) {
	// Search term changes fire on every keystroke
	if event.Type() != EventSearchTermChanged {
		b.logger.Debug("publishing event", zap.String("type", string(event.Type())))
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.logger.Warn("event channel full, dropping event", zap.String("type", string(event.Type())))
	}
}

// Subscribe subscribes to events of a specific type.
// Returns an unsubscribe function.
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

// Close stops the dispatcher. Queued events are discarded.
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
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			// Copy so handlers run without holding the lock
			handlersCopy := make([]EventHandler, len(subs))
			for i, s := range subs {
				handlersCopy[i] = s.handler
			}
			b.mu.RUnlock()

			for _, handler := range handlersCopy {
				b.call(handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panic",
				zap.String("type", string(event.Type())),
				zap.Any("panic", r),
				zap.ByteString("stack", debug.Stack()))
		}
	}()
	h(event)
}
