package memory

import (
	"context"
	"testing"

	"github.com/daybook/events-api/internal/core/domain"
	"github.com/daybook/events-api/internal/core/ports"
)

func seedEvents(t *testing.T, repo *EventRepository, events ...*domain.Event) {
	t.Helper()
	for _, e := range events {
		if _, err := repo.Create(context.Background(), e); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}
}

func TestEventRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewEventRepository()

	first, _ := repo.Create(context.Background(), &domain.Event{OwnerID: 1, Name: "a"})
	second, _ := repo.Create(context.Background(), &domain.Event{OwnerID: 1, Name: "b"})

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestEventRepository_List_FiltersByOwner(t *testing.T) {
	repo := NewEventRepository()
	seedEvents(t, repo,
		&domain.Event{OwnerID: 1, Name: "mine"},
		&domain.Event{OwnerID: 2, Name: "theirs"},
		&domain.Event{OwnerID: 1, Name: "also mine"},
	)

	events, err := repo.List(context.Background(), ports.ListEventsFilter{OwnerID: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	for _, e := range events {
		if e.OwnerID != 1 {
			t.Fatalf("leaked event owned by %d", e.OwnerID)
		}
	}
}

func TestEventRepository_List_FiltersByCategory(t *testing.T) {
	repo := NewEventRepository()
	seedEvents(t, repo,
		&domain.Event{OwnerID: 1, Name: "a", Category: "work"},
		&domain.Event{OwnerID: 1, Name: "b", Category: "home"},
	)

	events, err := repo.List(context.Background(), ports.ListEventsFilter{OwnerID: 1, Category: "work"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(events) != 1 || events[0].Category != "work" {
		t.Fatalf("unexpected result: %+v", events)
	}
}

func TestEventRepository_List_InsertionOrder(t *testing.T) {
	repo := NewEventRepository()
	seedEvents(t, repo,
		&domain.Event{OwnerID: 1, Name: "first"},
		&domain.Event{OwnerID: 1, Name: "second"},
		&domain.Event{OwnerID: 1, Name: "third"},
	)

	events, _ := repo.List(context.Background(), ports.ListEventsFilter{OwnerID: 1})
	for i, name := range []string{"first", "second", "third"} {
		if events[i].Name != name {
			t.Fatalf("expected %q at position %d, got %q", name, i, events[i].Name)
		}
	}
}

func TestEventRepository_List_ReturnsCopies(t *testing.T) {
	repo := NewEventRepository()
	seedEvents(t, repo, &domain.Event{OwnerID: 1, Name: "original"})

	events, _ := repo.List(context.Background(), ports.ListEventsFilter{OwnerID: 1})
	events[0].Name = "mutated"

	again, _ := repo.List(context.Background(), ports.ListEventsFilter{OwnerID: 1})
	if again[0].Name != "original" {
		t.Fatalf("store mutated through listed event")
	}
}

func TestTokenDenylist(t *testing.T) {
	d := NewTokenDenylist()

	revoked, err := d.IsRevoked(context.Background(), "tok")
	if err != nil || revoked {
		t.Fatalf("expected fresh token not revoked, got %v %v", revoked, err)
	}

	if err := d.Revoke(context.Background(), "tok"); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	revoked, err = d.IsRevoked(context.Background(), "tok")
	if err != nil || !revoked {
		t.Fatalf("expected token revoked, got %v %v", revoked, err)
	}
}
