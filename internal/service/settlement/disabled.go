package settlement

import (
	"context"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
)

// disabled расчет выключен: факты не записываются
type disabled struct{}

func NewDisabledService() service.SettlementService {
	return disabled{}
}

func (disabled) Settle(context.Context, model.SettlementFact) (*model.Settlement, error) {
	return nil, nil
}

func (disabled) List(context.Context, string) ([]model.Settlement, error) {
	return []model.Settlement{}, nil
}
