package session

import (
	"context"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service/game"

	"go.uber.org/zap"
)

func (s *serv) StartRound(ctx context.Context, id string) (*model.SessionView, error) {
	return s.mutate(ctx, id, "start round", func(sess *game.Session) ([]model.Transition, error) {
		return sess.StartNewRound()
	})
}

func (s *serv) SelectTurn(ctx context.Context, id string, option model.TurnOption) (*model.SessionView, error) {
	return s.mutate(ctx, id, "select turn", func(sess *game.Session) ([]model.Transition, error) {
		level := sess.State().Level
		tr, err := sess.SelectTurnOption(option)
		if err != nil {
			return nil, err
		}
		if cost, ok := s.deps.Rules.TurnCost(option, level); ok {
			s.statsRepo.RecordTurn(cost)
		}
		return tr, nil
	})
}

// Spin спин и проверка конца игры.
// Конец игры платной сессии уходит в расчет как game_failed.
func (s *serv) Spin(ctx context.Context, id string) (*model.SpinView, error) {
	var (
		res        model.SpinView
		entry      bool
		finalLevel int
		finalQ     float64
	)
	err := s.withSession(ctx, id, func(sess *game.Session) error {
		spin, tr, err := sess.Spin()
		if err != nil {
			return err
		}
		over, overTr := sess.CheckGameOver()
		tr = append(tr, overTr...)

		res = model.SpinView{SessionView: view(id, sess, tr), Spin: spin, IsGameOver: over}
		entry = sess.EntryMode()
		finalLevel = res.State.Level
		finalQ = res.State.Quantum
		return nil
	})
	if err != nil {
		s.logFailure("spin", id, err)
		return nil, err
	}

	s.statsRepo.RecordSpin(res.Spin.Outcome.Reward)

	// спин возможен только в живой сессии, значит конец игры наступил этим спином
	if res.IsGameOver {
		s.logger.Info("game over",
			zap.String("session_id", id),
			zap.Int("level", finalLevel),
			zap.Float64("quantum", finalQ))
		if entry {
			s.settle(ctx, model.SettlementFact{
				SessionID:    id,
				Kind:         model.SettlementGameFailed,
				Level:        finalLevel,
				FinalQuantum: finalQ,
			})
		}
	}
	return &res, nil
}
