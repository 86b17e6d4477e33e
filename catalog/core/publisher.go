package core

import (
	"errors"
	"sync"
)

// EventPublisher is what aggregates need from a publisher.
type EventPublisher interface {
	Publish(event DomainEvent) error
}

// Publisher is an in-process, per-use-case event hub.
//
// It starts open: handlers can be subscribed. The first Publish, or an explicit Seal, closes
// the subscription phase for good. Publish calls every handler synchronously in subscription
// order. A failing handler does not stop the others; all failures are joined into the
// returned error.
type Publisher struct {
	mu       sync.RWMutex
	handlers []EventHandler
	sealed   bool
}

// NewPublisher creates an open Publisher without handlers.
func NewPublisher() *Publisher {
	return &Publisher{handlers: make([]EventHandler, 0)}
}

// Subscribe appends a handler. It fails once the Publisher is sealed.
func (p *Publisher) Subscribe(handler EventHandler) error {
	if handler == nil {
		return ErrNilEventHandler
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.sealed {
		return ErrPublisherSealed
	}

	p.handlers = append(p.handlers, handler)

	return nil
}

// Seal ends the subscription phase without publishing.
func (p *Publisher) Seal() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sealed = true
}

// IsSealed reports whether handlers can still be subscribed.
func (p *Publisher) IsSealed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.sealed
}

// HandlerCount returns the number of subscribed handlers.
func (p *Publisher) HandlerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.handlers)
}

// Publish seals the Publisher and hands the event to every handler in subscription order.
// Handlers run without the lock held, so a handler may safely read the Publisher.
func (p *Publisher) Publish(event DomainEvent) error {
	p.mu.Lock()
	p.sealed = true
	handlers := make([]EventHandler, len(p.handlers))
	copy(handlers, p.handlers)
	p.mu.Unlock()

	var handlerErrs []error

	for _, handler := range handlers {
		if err := handler(event); err != nil {
			handlerErrs = append(handlerErrs, err)
		}
	}

	if len(handlerErrs) > 0 {
		return errors.Join(append([]error{ErrPublishingFailed}, handlerErrs...)...)
	}

	return nil
}
