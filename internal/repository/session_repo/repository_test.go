package session_repo

import (
	"context"
	"errors"
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository"
	"quantum_slots/internal/service/game"
	"quantum_slots/pkg/rng"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func newSession() *game.Session {
	return game.New(game.Deps{Catalog: catalog.Default(), Rules: model.DefaultRules(), NewRNG: rng.Seeded(7)}, false)
}

func TestCreateAndAcquire(t *testing.T) {
	r := NewSessionRepository()
	ctx := context.Background()

	s := newSession()
	id, err := r.Create(ctx, s)
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("id %q is not a uuid: %v", id, err)
	}

	got, unlock, err := r.Acquire(ctx, id)
	if err != nil {
		t.Fatalf("acquire returned error: %v", err)
	}
	unlock()
	if got != s {
		t.Fatalf("acquired a different session")
	}
	if r.Count() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Count())
	}
}

func TestAcquireUnknown(t *testing.T) {
	r := NewSessionRepository()
	if _, _, err := r.Acquire(context.Background(), "missing"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAcquireCanceledContext(t *testing.T) {
	r := NewSessionRepository()
	id, _ := r.Create(context.Background(), newSession())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := r.Acquire(ctx, id); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	// блокировка не должна остаться занятой
	_, unlock, err := r.Acquire(context.Background(), id)
	if err != nil {
		t.Fatalf("acquire after cancel: %v", err)
	}
	unlock()
}

func TestAcquireSerializesSession(t *testing.T) {
	r := NewSessionRepository()
	ctx := context.Background()
	id, _ := r.Create(ctx, newSession())

	var (
		wg      sync.WaitGroup
		inside  int
		maxSeen int
		mtx     sync.Mutex
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, unlock, err := r.Acquire(ctx, id)
			if err != nil {
				t.Errorf("acquire: %v", err)
				return
			}
			mtx.Lock()
			inside++
			if inside > maxSeen {
				maxSeen = inside
			}
			mtx.Unlock()

			mtx.Lock()
			inside--
			mtx.Unlock()
			unlock()
		}()
	}
	wg.Wait()
	if maxSeen != 1 {
		t.Fatalf("expected exclusive access, saw %d holders", maxSeen)
	}
}
