package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daybook/events-api/internal/core/domain"
	"github.com/daybook/events-api/internal/core/ports"
)

// dateLayouts are tried in order when parsing event dates for sorting.
var dateLayouts = []string{"2006-01-02", time.RFC3339}

type eventService struct {
	repo ports.EventRepository
	log  zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(repo ports.EventRepository, log zerolog.Logger) ports.EventService {
	return &eventService{repo: repo, log: log}
}

func (s *eventService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	event := &domain.Event{
		OwnerID:     in.OwnerID,
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Category:    in.Category,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		s.log.Error().Err(err).Int64("owner_id", in.OwnerID).Msg("failed to create event")
		return nil, err
	}

	s.log.Info().
		Int64("event_id", created.ID).
		Int64("owner_id", created.OwnerID).
		Str("category", created.Category).
		Msg("event created")

	return created, nil
}

// ListEvents returns the caller's events. The repository hands back a copy in
// insertion order; filtering happened there, ordering happens here.
func (s *eventService) ListEvents(ctx context.Context, in ports.ListEventsInput) ([]*domain.Event, error) {
	events, err := s.repo.List(ctx, ports.ListEventsFilter{
		OwnerID:  in.OwnerID,
		Category: in.Category,
	})
	if err != nil {
		return nil, err
	}

	switch in.Sort {
	case ports.SortByDate:
		sortByDate(events)
	case ports.SortByCategory:
		sortByCategory(events)
	}
	// Unknown sort values leave insertion order untouched.

	return events, nil
}

// sortByDate orders ascending by parsed calendar date. Unparseable dates sort
// after all parseable ones. The sort is stable: equal dates keep insertion order.
func sortByDate(events []*domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		ti, iok := parseDate(events[i].Date)
		tj, jok := parseDate(events[j].Date)
		if iok && jok {
			return ti.Before(tj)
		}
		return iok && !jok
	})
}

// sortByCategory orders ascending by locale-aware comparison of category
// strings, stable on ties.
func sortByCategory(events []*domain.Event) {
	// collate.Collator is not safe for concurrent use; build one per call.
	c := collate.New(language.English)
	sort.SliceStable(events, func(i, j int) bool {
		return c.CompareString(events[i].Category, events[j].Category) < 0
	})
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
