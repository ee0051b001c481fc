package repository

import (
	"context"
	"errors"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service/game"
)

var ErrNotFound = errors.New("record not found")

// SessionRepository хранилище живых сессий.
// Acquire выдает сессию под эксклюзивной блокировкой, unlock обязателен.
type SessionRepository interface {
	Create(ctx context.Context, s *game.Session) (id string, err error)
	Acquire(ctx context.Context, id string) (s *game.Session, unlock func(), err error)
	Count() int
}

type SettlementRepository interface {
	// Save идемпотентна по (session_id, kind, level), created=false для повтора
	Save(ctx context.Context, st *model.Settlement) (created bool, err error)
	ListBySession(ctx context.Context, sessionID string) ([]model.Settlement, error)
}

type SettlementFeed interface {
	Publish(ctx context.Context, st model.Settlement) error
}

type StatsRepository interface {
	RecordTurn(spent float64)
	RecordSpin(earned float64)
	RecordLevel(passed bool)
	Stats() model.Stats
}
