package event_bus

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type EventType string

// Event is the envelope passed to subscribers. Data carries the payload.
type Event struct {
	ctx       context.Context
	Type      EventType
	Timestamp time.Time
	Data      any
}

func NewEvent(ctx context.Context, eventType EventType, data any) Event {
	return Event{
		ctx:       ctx,
		Type:      eventType,
		Timestamp: time.Now(),
		Data:      data,
	}
}

func (e Event) Context() context.Context {
	if e.ctx == nil {
		return context.Background()
	}
	return e.ctx
}

// EventT is an Event whose payload has already been asserted to T.
type EventT[T any] struct {
	Event
	Data T
}

type handler func(Event) error

// EventBus dispatches events synchronously, in subscription order, on the
// publishing goroutine. It is safe for concurrent use.
type EventBus struct {
	mu          sync.RWMutex
	subscribers map[EventType]map[uint64]handler
	nextID      uint64
}

func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[EventType]map[uint64]handler),
	}
}

// Subscribe registers h for eventType and returns a function removing it again.
func (eb *EventBus) Subscribe(eventType EventType, h func(Event) error) (unsubscribe func()) {
	eb.mu.Lock()
	eb.nextID++
	id := eb.nextID
	if eb.subscribers[eventType] == nil {
		eb.subscribers[eventType] = make(map[uint64]handler)
	}
	eb.subscribers[eventType][id] = h
	eb.mu.Unlock()

	return func() {
		eb.mu.Lock()
		defer eb.mu.Unlock()
		if handlers := eb.subscribers[eventType]; handlers != nil {
			delete(handlers, id)
			if len(handlers) == 0 {
				delete(eb.subscribers, eventType)
			}
		}
	}
}

// SubscribeTyped registers a handler for payloads of type T. Events carrying
// any other payload type are ignored by this handler.
func SubscribeTyped[T any](eb *EventBus, eventType EventType, h func(EventT[T]) error) (unsubscribe func()) {
	return eb.Subscribe(eventType, func(e Event) error {
		payload, ok := e.Data.(T)
		if !ok {
			log.Debugf("EventBus: type mismatch for event %s: expected %T, got %T", eventType, *new(T), e.Data)
			return nil
		}
		return h(EventT[T]{Event: e, Data: payload})
	})
}

// Publish runs every handler subscribed to e.Type. Handler errors and panics
// are collected; remaining handlers still run unless the context is done.
func (eb *EventBus) Publish(e Event) error {
	if err := e.Context().Err(); err != nil {
		return fmt.Errorf("event %s: context cancelled before publish: %w", e.Type, err)
	}

	eb.mu.RLock()
	ids := make([]uint64, 0, len(eb.subscribers[e.Type]))
	handlers := make(map[uint64]handler, len(eb.subscribers[e.Type]))
	for id, h := range eb.subscribers[e.Type] {
		ids = append(ids, id)
		handlers[id] = h
	}
	eb.mu.RUnlock()
	slices.Sort(ids)

	var errs []error
	for _, id := range ids {
		if err := e.Context().Err(); err != nil {
			errs = append(errs, fmt.Errorf("context cancelled during event processing: %w", err))
			break
		}
		if err := invoke(id, handlers[id], e); err != nil {
			log.Errorf("EventBus: handler error (ID %d) for event %s: %v", id, e.Type, err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("event %s: %d handler(s) failed: %w", e.Type, len(errs), errors.Join(errs...))
	}
	return nil
}

func invoke(id uint64, h handler, e Event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic (ID %d) for event %s: %v", id, e.Type, r)
		}
	}()
	return h(e)
}
