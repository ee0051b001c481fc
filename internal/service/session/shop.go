package session

import (
	"context"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service/game"
)

func (s *serv) BuyServant(ctx context.Context, id, servantID string) (*model.SessionView, error) {
	return s.mutate(ctx, id, "buy servant", func(sess *game.Session) ([]model.Transition, error) {
		return sess.BuyServant(servantID)
	})
}

func (s *serv) RefreshShop(ctx context.Context, id string) (*model.SessionView, error) {
	return s.mutate(ctx, id, "refresh shop", func(sess *game.Session) ([]model.Transition, error) {
		return sess.RefreshShopWithQuartz()
	})
}

func (s *serv) ActivateServant(ctx context.Context, id, servantID string) (*model.SessionView, error) {
	return s.mutate(ctx, id, "activate servant", func(sess *game.Session) ([]model.Transition, error) {
		return sess.ActivateServant(servantID)
	})
}
