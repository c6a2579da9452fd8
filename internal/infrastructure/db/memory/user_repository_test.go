package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/daybook/events-api/internal/core/domain"
)

func TestUserRepository_CreateAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository()

	first, err := repo.Create(context.Background(), &domain.User{Username: "alice"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := repo.Create(context.Background(), &domain.User{Username: "bob"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", first.ID, second.ID)
	}
}

func TestUserRepository_DuplicateUsername(t *testing.T) {
	repo := NewUserRepository()

	if _, err := repo.Create(context.Background(), &domain.User{Username: "alice"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := repo.Create(context.Background(), &domain.User{Username: "alice"}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	// Only one record exists afterward.
	if _, err := repo.FindByUsername(context.Background(), "alice"); err != nil {
		t.Fatalf("find failed: %v", err)
	}
}

func TestUserRepository_FindByUsername_CaseSensitive(t *testing.T) {
	repo := NewUserRepository()

	_, _ = repo.Create(context.Background(), &domain.User{Username: "Alice"})

	if _, err := repo.FindByUsername(context.Background(), "alice"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound for different case, got %v", err)
	}
	if _, err := repo.FindByUsername(context.Background(), "Alice"); err != nil {
		t.Fatalf("expected exact match to succeed, got %v", err)
	}
}

func TestUserRepository_ConcurrentCreates(t *testing.T) {
	repo := NewUserRepository()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user, err := repo.Create(context.Background(), &domain.User{Username: string(rune('a' + i%26)) + string(rune('0' + i/26))})
			if err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- user.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id assigned: %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewUserRepository()

	created, _ := repo.Create(context.Background(), &domain.User{Username: "alice", PasswordHash: "h"})
	created.PasswordHash = "mutated"

	found, err := repo.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.PasswordHash != "h" {
		t.Fatalf("store mutated through returned pointer")
	}
}
