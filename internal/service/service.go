package service

import (
	"context"
	"quantum_slots/internal/model"
)

// GameService операции игровой сессии для транспорта
type GameService interface {
	CreateSession(ctx context.Context, req model.NewSession) (*model.SessionView, error)
	GetState(ctx context.Context, sessionID string) (*model.SessionView, error)
	StartLevel(ctx context.Context, sessionID string) (*model.SessionView, error)
	SelectEvent(ctx context.Context, sessionID string, index int) (*model.SessionView, error)
	StartRound(ctx context.Context, sessionID string) (*model.SessionView, error)
	SelectTurn(ctx context.Context, sessionID string, option model.TurnOption) (*model.SessionView, error)
	Spin(ctx context.Context, sessionID string) (*model.SpinView, error)
	BuyServant(ctx context.Context, sessionID, servantID string) (*model.SessionView, error)
	RefreshShop(ctx context.Context, sessionID string) (*model.SessionView, error)
	ActivateServant(ctx context.Context, sessionID, servantID string) (*model.SessionView, error)
	CompleteLevel(ctx context.Context, sessionID string) (*model.LevelView, error)
	GetReport(ctx context.Context, sessionID string) (*model.Report, error)

	Settlements(ctx context.Context, sessionID string) ([]model.Settlement, error)
	Stats(ctx context.Context) model.Stats
}

// SettlementService запись и публикация фактов завершения уровней платных сессий
type SettlementService interface {
	// Settle возвращает nil без ошибки, если расчет выключен
	Settle(ctx context.Context, fact model.SettlementFact) (*model.Settlement, error)
	List(ctx context.Context, sessionID string) ([]model.Settlement, error)
}
