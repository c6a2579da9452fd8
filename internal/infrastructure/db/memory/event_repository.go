package memory

import (
	"context"
	"sync"

	"github.com/daybook/events-api/internal/core/domain"
	"github.com/daybook/events-api/internal/core/ports"
)

// EventRepository is a mutex-guarded in-memory event store. Events are kept
// in insertion order; List hands out copies so callers can reorder freely.
type EventRepository struct {
	mu     sync.RWMutex
	events []*domain.Event
	nextID int64
}

func NewEventRepository() *EventRepository {
	return &EventRepository{}
}

func (r *EventRepository) Create(_ context.Context, event *domain.Event) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	stored := cloneEvent(event)
	stored.ID = r.nextID

	r.events = append(r.events, stored)
	return cloneEvent(stored), nil
}

func (r *EventRepository) List(_ context.Context, filter ports.ListEventsFilter) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Event, 0)
	for _, e := range r.events {
		if e.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		out = append(out, cloneEvent(e))
	}
	return out, nil
}

func cloneEvent(e *domain.Event) *domain.Event {
	clone := *e
	return &clone
}
