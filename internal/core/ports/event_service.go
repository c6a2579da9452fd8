package ports

import (
	"context"

	"github.com/daybook/events-api/internal/core/domain"
)

// Sort orders accepted by ListEvents. Any other value leaves insertion order.
const (
	SortByDate     = "date"
	SortByCategory = "category"
)

// CreateEventInput is the DTO passed from the transport layer to EventService.
type CreateEventInput struct {
	OwnerID     int64
	Name        string
	Description string
	Date        string
	Time        string
	Category    string
}

// ListEventsInput carries all parameters for the list endpoint.
type ListEventsInput struct {
	OwnerID  int64
	Category string // optional: exact match
	Sort     string // optional: "date" or "category"
}

// EventService defines use-case operations for events.
type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	// ListEvents returns the caller's events, filtered and ordered per input.
	// The underlying store is never mutated; ordering is applied to a copy.
	ListEvents(ctx context.Context, input ListEventsInput) ([]*domain.Event, error)
}
