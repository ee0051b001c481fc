package session

import (
	"context"
	"errors"
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository"
	"quantum_slots/internal/service"
	"quantum_slots/internal/service/game"

	"go.uber.org/zap"
)

type serv struct {
	deps      game.Deps
	sessions  repository.SessionRepository
	statsRepo repository.StatsRepository
	settler   service.SettlementService
	logger    *zap.Logger
}

// NewGameService сервис игровых сессий
func NewGameService(
	deps game.Deps,
	sessions repository.SessionRepository,
	statsRepo repository.StatsRepository,
	settler service.SettlementService,
	logger *zap.Logger,
) service.GameService {
	return &serv{
		deps:      deps,
		sessions:  sessions,
		statsRepo: statsRepo,
		settler:   settler,
		logger:    logger,
	}
}

//---------- ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ----------

// withSession выполняет fn под блокировкой сессии
func (s *serv) withSession(ctx context.Context, id string, fn func(sess *game.Session) error) error {
	sess, unlock, err := s.sessions.Acquire(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return service.ErrSessionNotFound
		}
		return err
	}
	defer unlock()
	return fn(sess)
}

// mutate общий путь операций, возвращающих только состояние
func (s *serv) mutate(ctx context.Context, id, op string, fn func(sess *game.Session) ([]model.Transition, error)) (*model.SessionView, error) {
	var res model.SessionView
	err := s.withSession(ctx, id, func(sess *game.Session) error {
		tr, err := fn(sess)
		if err != nil {
			return err
		}
		res = view(id, sess, tr)
		return nil
	})
	if err != nil {
		s.logFailure(op, id, err)
		return nil, err
	}
	return &res, nil
}

func view(id string, sess *game.Session, tr []model.Transition) model.SessionView {
	if tr == nil {
		tr = []model.Transition{}
	}
	return model.SessionView{
		SessionID:     id,
		State:         sess.State(),
		Probabilities: sess.Probabilities(),
		Transitions:   tr,
	}
}

// settle отправляет факт платной сессии. Ошибки расчета игру не ломают
func (s *serv) settle(ctx context.Context, fact model.SettlementFact) *model.Settlement {
	st, err := s.settler.Settle(ctx, fact)
	if err != nil {
		s.logger.Error("settle",
			zap.Error(err),
			zap.String("session_id", fact.SessionID),
			zap.String("kind", string(fact.Kind)),
			zap.Int("level", fact.Level))
		return nil
	}
	return st
}

// logFailure ошибки клиента пишутся в debug, остальные в error
func (s *serv) logFailure(op, id string, err error) {
	if errors.Is(err, service.ErrInvalidArgument) || errors.Is(err, service.ErrPreconditionFailed) || errors.Is(err, service.ErrNotFound) {
		s.logger.Debug(op+" rejected", zap.String("session_id", id), zap.Error(err))
		return
	}
	s.logger.Error(op, zap.String("session_id", id), zap.Error(err))
}
