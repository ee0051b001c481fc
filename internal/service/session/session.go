package session

import (
	"context"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service/game"

	"go.uber.org/zap"
)

// CreateSession новая сессия: уровень 1, раунд 0, магазин заполнен
func (s *serv) CreateSession(ctx context.Context, req model.NewSession) (*model.SessionView, error) {
	sess := game.New(s.deps, req.EntryMode)

	id, err := s.sessions.Create(ctx, sess)
	if err != nil {
		s.logger.Error("create session", zap.Error(err))
		return nil, err
	}
	s.logger.Info("session created", zap.String("session_id", id), zap.Bool("entry_mode", req.EntryMode))

	// сессия еще никому не видна, блокировка не нужна
	res := view(id, sess, nil)
	return &res, nil
}

func (s *serv) GetState(ctx context.Context, id string) (*model.SessionView, error) {
	return s.mutate(ctx, id, "get state", func(*game.Session) ([]model.Transition, error) {
		return nil, nil
	})
}

func (s *serv) GetReport(ctx context.Context, id string) (*model.Report, error) {
	var res model.Report
	err := s.withSession(ctx, id, func(sess *game.Session) error {
		res = sess.Report()
		return nil
	})
	if err != nil {
		s.logFailure("get report", id, err)
		return nil, err
	}
	return &res, nil
}

// Settlements расчеты сессии. Неизвестная сессия - ErrSessionNotFound
func (s *serv) Settlements(ctx context.Context, id string) ([]model.Settlement, error) {
	if err := s.withSession(ctx, id, func(*game.Session) error { return nil }); err != nil {
		return nil, err
	}
	return s.settler.List(ctx, id)
}

func (s *serv) Stats(_ context.Context) model.Stats {
	return s.statsRepo.Stats()
}
