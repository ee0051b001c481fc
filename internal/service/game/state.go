package game

import (
	"maps"
	"quantum_slots/internal/model"
)

// Probabilities нормированные веса символов, отрицательные веса считаются нулем
func (s *Session) Probabilities() []model.Probability {
	var total float64
	for _, st := range s.symbols {
		if st.CurrentWeight > 0 {
			total += st.CurrentWeight
		}
	}

	res := make([]model.Probability, 0, len(s.symbols))
	for _, st := range s.symbols {
		p := model.Probability{
			SymbolID:   st.ID,
			Value:      st.CurrentValue,
			Weight:     st.CurrentWeight,
			IsNegative: st.IsNegative,
		}
		if total > 0 && st.CurrentWeight > 0 {
			p.Probability = st.CurrentWeight / total
		}
		res = append(res, p)
	}
	return res
}

// State снимок состояния, не разделяющий память с сессией
func (s *Session) State() model.GameState {
	st := model.GameState{
		Quantum:            s.quantum,
		SaintQuartz:        s.saintQuartz,
		Level:              s.level,
		Round:              s.round,
		MaxRounds:          s.maxRounds,
		LevelTarget:        s.levelTarget(),
		CurrentTurn:        s.currentTurn,
		SpinsRemaining:     s.spinsRemaining,
		TurnQuantum:        s.turnQuantum,
		ActiveServants:     append([]model.Servant{}, s.active...),
		InventoryServants:  append([]model.Servant{}, s.inventory...),
		ShopServants:       make([]model.ShopEntry, 0, len(s.shop)),
		PriceReduction:     s.priceReduction,
		Flags:              s.flags,
		OberonApplied:      s.oberonApplied,
		AutoPatterns:       make([]model.QueuedAutoPattern, 0, len(s.autoPatterns)),
		SymbolStates:       append([]model.SymbolState{}, s.symbols...),
		Events:             append([]model.Event{}, s.pendingEvents...),
		EventChoices:       append([]model.Event{}, s.eventChoices...),
		FullPatternRewards: maps.Clone(s.fullPatternRewards),
		IsGameOver:         s.isGameOver,
		IsLevelComplete:    s.isLevelComplete,
		Phase:              s.Phase(),
		EntryMode:          s.entryMode,
	}
	if s.slotResults != nil {
		grid := *s.slotResults
		st.SlotResults = &grid
	}
	for _, sv := range s.shop {
		st.ShopServants = append(st.ShopServants, model.ShopEntry{Servant: sv, Price: s.price(sv)})
	}
	for _, ap := range s.autoPatterns {
		ap.Patterns = append([]model.PatternType(nil), ap.Patterns...)
		st.AutoPatterns = append(st.AutoPatterns, ap)
	}
	return st
}

// Report итог сессии
func (s *Session) Report() model.Report {
	return model.Report{
		Level:             s.level,
		Round:             s.round,
		LevelTarget:       s.levelTarget(),
		FinalQuantum:      s.quantum,
		TotalSaintQuartz:  s.saintQuartz,
		ActiveServants:    names(s.active),
		InventoryServants: names(s.inventory),
		EventsChosen:      len(s.eventChoices),
		Phase:             s.Phase(),
		EntryMode:         s.entryMode,
		IsGameOver:        s.isGameOver,
		IsLevelComplete:   s.isLevelComplete,
	}
}

func names(list []model.Servant) []string {
	res := make([]string, 0, len(list))
	for _, sv := range list {
		res = append(res, sv.Name)
	}
	return res
}
