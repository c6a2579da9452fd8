package ports

import (
	"context"

	"github.com/daybook/events-api/internal/core/domain"
)

// ListEventsFilter carries the query parameters for listing events.
// OwnerID is always enforced by the service layer.
type ListEventsFilter struct {
	OwnerID  int64  // required: events are only ever visible to their owner
	Category string // optional: exact match on category
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	// Create persists a new event, assigning the next sequential id.
	Create(ctx context.Context, event *domain.Event) (*domain.Event, error)

	// List returns the events matching filter in insertion order. The returned
	// slice is a copy; callers may reorder it freely.
	List(ctx context.Context, filter ListEventsFilter) ([]*domain.Event, error)
}
