package session_repo

import (
	"context"
	"quantum_slots/internal/repository"
	"quantum_slots/internal/service/game"
	"sync"

	"github.com/google/uuid"
)

// entry сессия и ее собственный мьютекс
type entry struct {
	mtx     sync.Mutex
	session *game.Session
}

// Хранилище живых сессий в памяти процесса
type repo struct {
	mtx      sync.RWMutex
	sessions map[string]*entry
}

func NewSessionRepository() repository.SessionRepository {
	return &repo{
		sessions: make(map[string]*entry),
	}
}

// Create сохраняет сессию под новым uuid
func (r *repo) Create(_ context.Context, s *game.Session) (string, error) {
	id := uuid.NewString()

	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.sessions[id] = &entry{session: s}
	return id, nil
}

// Acquire блокирует сессию до вызова unlock.
// Операции над разными сессиями не мешают друг другу.
func (r *repo) Acquire(ctx context.Context, id string) (*game.Session, func(), error) {
	r.mtx.RLock()
	e, ok := r.sessions[id]
	r.mtx.RUnlock()
	if !ok {
		return nil, nil, repository.ErrNotFound
	}

	e.mtx.Lock()
	if err := ctx.Err(); err != nil {
		e.mtx.Unlock()
		return nil, nil, err
	}
	return e.session, e.mtx.Unlock, nil
}

// Count количество сессий
func (r *repo) Count() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.sessions)
}
