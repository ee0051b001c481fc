package session

import (
	"context"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service/game"

	"go.uber.org/zap"
)

func (s *serv) StartLevel(ctx context.Context, id string) (*model.SessionView, error) {
	return s.mutate(ctx, id, "start level", func(sess *game.Session) ([]model.Transition, error) {
		return sess.StartNewLevel()
	})
}

func (s *serv) SelectEvent(ctx context.Context, id string, index int) (*model.SessionView, error) {
	return s.mutate(ctx, id, "select event", func(sess *game.Session) ([]model.Transition, error) {
		return sess.SelectEvent(index)
	})
}

// CompleteLevel проверка цели. Для платной сессии факт уходит в расчет после снятия блокировки
func (s *serv) CompleteLevel(ctx context.Context, id string) (*model.LevelView, error) {
	var (
		res   model.LevelView
		entry bool
	)
	err := s.withSession(ctx, id, func(sess *game.Session) error {
		result, tr, err := sess.CompleteLevel()
		if err != nil {
			return err
		}
		res = model.LevelView{SessionView: view(id, sess, tr), Result: result}
		entry = sess.EntryMode()
		return nil
	})
	if err != nil {
		s.logFailure("complete level", id, err)
		return nil, err
	}

	s.statsRepo.RecordLevel(res.Result.Passed)
	s.logger.Info("level completed",
		zap.String("session_id", id),
		zap.Int("level", res.Result.Level),
		zap.Bool("passed", res.Result.Passed),
		zap.Float64("quantum", res.Result.Quantum),
		zap.Float64("target", res.Result.Target))

	if entry {
		kind := model.SettlementLevelPassed
		if !res.Result.Passed {
			kind = model.SettlementLevelFailed
		}
		res.Settlement = s.settle(ctx, model.SettlementFact{
			SessionID:    id,
			Kind:         kind,
			Level:        res.Result.Level,
			FinalQuantum: res.Result.Quantum,
		})
	}
	return &res, nil
}
