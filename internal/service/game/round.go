package game

import (
	"math"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
	"quantum_slots/internal/service/effect"
	"quantum_slots/internal/service/slot"
)

// StartNewRound следующий раунд уровня
func (s *Session) StartNewRound() ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	s.begin()
	s.startNewRound()
	return s.flush(), nil
}

func (s *Session) startNewRound() {
	s.round++
	s.resetTurnState()
	s.oberonApplied = false
	s.isLevelComplete = false
	// Авто-фигуры только ставятся в очередь, расчет при выборе хода
	s.autoPatterns = effect.AutoPatterns(s.active)
	s.fire(EventStartRound)
}

// SelectTurnOption покупка хода: списание, спины, кварц, эффекты слуг, авто-фигуры
func (s *Session) SelectTurnOption(opt model.TurnOption) ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	rule, ok := s.rules.Turns[opt]
	if !ok {
		return nil, service.ErrInvalidTurnOption
	}
	if s.currentTurn != "" {
		return nil, service.ErrTurnAlreadySelected
	}
	cost := rule.CostPerLevel * float64(s.level)
	if s.quantum < cost {
		return nil, service.ErrInsufficientQuantum
	}
	s.begin()

	s.quantum -= cost
	s.currentTurn = opt
	s.spinsRemaining = rule.Spins
	s.saintQuartz += rule.SaintQuartz

	bonus := effect.Turn(s.active, rule)
	s.saintQuartz += bonus.SaintQuartz
	s.spinsRemaining += bonus.Spins

	// Оберон: срез в начале раунда, один раз за раунд
	if s.flags.Oberon && !s.oberonApplied {
		ob, ok := effect.OberonOf(s.active)
		if !ok {
			ob = model.Oberon{StartMult: -0.5}
		}
		s.quantum = math.Floor(s.quantum * (1 + ob.StartMult))
		s.oberonApplied = true
	}

	s.settleAutoPatterns()
	s.fire(EventSelectTurn)
	return s.flush(), nil
}

// settleAutoPatterns начисляет авто-фигуры очереди по лучшему символу
func (s *Session) settleAutoPatterns() float64 {
	mods := s.spinModifiers()
	var total float64
	for _, ap := range s.autoPatterns {
		total += slot.AutoPatternReward(s.symbols, ap, mods)
	}
	if total <= 0 {
		return 0
	}
	total = mods.Double(total)
	s.quantum += total
	s.turnQuantum += total
	return total
}

// Spin один спин: генерация поля, расчет, применение награды
func (s *Session) Spin() (model.SpinResult, []model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return model.SpinResult{}, nil, err
	}
	if s.spinsRemaining <= 0 {
		return model.SpinResult{}, nil, service.ErrNoSpinsRemaining
	}
	s.begin()

	grid := slot.GenerateGrid(s.rng, s.Probabilities())
	out := s.resolve(grid)

	// При отрицательном совпадении награда = -turnQuantum, квантум хода обнуляется
	s.quantum += out.Reward
	s.turnQuantum += out.Reward
	if out.HasNegative {
		s.turnQuantum = 0
	}
	for id := range out.ConsumedFullBoardCredits {
		delete(s.fullPatternRewards, id)
	}

	s.spinsRemaining--
	s.slotResults = &grid
	if s.spinsRemaining == 0 {
		s.fire(EventSettleRound)
	}

	return model.SpinResult{Outcome: out, SpinsRemaining: s.spinsRemaining}, s.flush(), nil
}

func (s *Session) resolve(grid model.Grid) model.SpinOutcome {
	return slot.Resolve(slot.Input{
		Grid:             grid,
		Symbols:          s.symbols,
		FullBoardCredits: s.fullPatternRewards,
		TurnQuantum:      s.turnQuantum,
		Mods:             s.spinModifiers(),
	})
}

// CheckGameOver квантума не хватает на самый дешевый ход и спинов не осталось
func (s *Session) CheckGameOver() (bool, []model.Transition) {
	if s.isGameOver {
		return true, []model.Transition{}
	}
	s.begin()
	if s.quantum < s.rules.MinTurnCost(s.level) && s.spinsRemaining == 0 {
		s.isGameOver = true
		s.fire(EventExhaust)
		return true, s.flush()
	}
	return false, s.flush()
}

func (s *Session) spinModifiers() slot.Modifiers {
	return effect.SpinModifiers(s.active, s.flags)
}
