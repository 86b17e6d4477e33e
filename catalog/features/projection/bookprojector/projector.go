package bookprojector

import (
	"maps"
	"sync"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
)

const (
	logMsgBookProjected = "book projected"
	logAttrEventName    = "event_name"
	logAttrBookID       = "book_id"
	logAttrName         = "name"
)

// Projector keeps BookTitles up to date from published events.
//
// The read model is updated when the event is published, which is before the Unit of Work
// commits. A failed commit therefore leaves the projection ahead of the database.
type Projector struct {
	mu     sync.RWMutex
	titles BookTitles
	logger shell.Logger
}

// NewProjector creates a Projector starting from the given titles. The logger may be nil.
func NewProjector(logger shell.Logger, base ...BookTitles) *Projector {
	titles := make(BookTitles)
	if len(base) > 0 {
		maps.Copy(titles, base[0])
	}

	return &Projector{titles: titles, logger: logger}
}

// Handle is the core.EventHandler to subscribe to a publisher.
func (p *Projector) Handle(event core.DomainEvent) error {
	p.mu.Lock()
	err := apply(p.titles, event)
	p.mu.Unlock()

	if err != nil {
		return err
	}

	switch e := event.(type) {
	case core.BookCreated:
		p.log(e.EventName(), e.BookID, e.Name)
	case core.BookRenamed:
		p.log(e.EventName(), e.BookID, e.Name)
	}

	return nil
}

// Titles returns a copy of the current read model.
func (p *Projector) Titles() BookTitles {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return maps.Clone(p.titles)
}

func (p *Projector) log(eventName string, bookID core.BookID, name string) {
	if p.logger == nil {
		return
	}

	p.logger.Info(logMsgBookProjected, logAttrEventName, eventName, logAttrBookID, bookID, logAttrName, name)
}
