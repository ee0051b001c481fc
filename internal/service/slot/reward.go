package slot

import "quantum_slots/internal/model"

// Modifiers влияние активных слуг на расчет спина
type Modifiers struct {
	// PatternBoost прибавка к множителю: mult*(1+boost)
	PatternBoost    map[model.PatternType]float64
	QuantumDouble   bool
	ImmuneNegative  bool
	DisableNegative bool
}

// PatternMultiplier множитель фигуры с учетом усилений
func (m Modifiers) PatternMultiplier(p model.PatternType) float64 {
	return Multiplier(p) * (1 + m.PatternBoost[p])
}

// Double удвоение положительной награды при активном quantum_double
func (m Modifiers) Double(reward float64) float64 {
	if m.QuantumDouble && reward > 0 {
		return reward * 2
	}
	return reward
}

// Input данные для разрешения спина
type Input struct {
	Grid             model.Grid
	Symbols          []model.SymbolState
	FullBoardCredits map[string]int
	TurnQuantum      float64
	Mods             Modifiers
}

// Resolve считает награду за поле.
// Отрицательное совпадение без иммунитета забирает весь квантум хода (reward = -TurnQuantum),
// остальные совпадения и кредиты полного поля при этом не начисляются.
func Resolve(in Input) model.SpinOutcome {
	states := make(map[string]model.SymbolState, len(in.Symbols))
	ids := make([]string, 0, len(in.Symbols))
	for _, s := range in.Symbols {
		states[s.ID] = s
		ids = append(ids, s.ID)
	}

	all := DetectPatterns(in.Grid, ids)
	matches := make([]model.Match, 0, len(all))
	negative := false
	fullBoard := make(map[string]bool)
	for _, m := range all {
		// при отключении отрицательное совпадение остается в отчете с нулевой выплатой
		if states[m.SymbolID].IsNegative && !in.Mods.DisableNegative {
			negative = true
		}
		if m.Pattern == model.PatternFull {
			fullBoard[m.SymbolID] = true
		}
		matches = append(matches, m)
	}

	out := model.SpinOutcome{
		Grid:                     in.Grid,
		Patterns:                 matches,
		ConsumedFullBoardCredits: map[string]int{},
	}

	if negative && !in.Mods.ImmuneNegative {
		out.HasNegative = true
		out.Reward = -in.TurnQuantum
		return out
	}

	var total float64
	for i := range out.Patterns {
		m := &out.Patterns[i]
		st := states[m.SymbolID]
		if st.IsNegative {
			continue
		}
		// полное поле поглощает остальные фигуры своего символа
		if fullBoard[m.SymbolID] && m.Pattern != model.PatternFull {
			continue
		}
		m.Payout = st.CurrentValue * in.Mods.PatternMultiplier(m.Pattern)
		total += m.Payout
	}

	// Отложенные кредиты полного поля
	for _, id := range ids {
		count := in.FullBoardCredits[id]
		if count <= 0 || states[id].IsNegative || !isFullBoard(in.Grid, id) {
			continue
		}
		total += states[id].CurrentValue * Multiplier(model.PatternFull) * float64(count)
		out.ConsumedFullBoardCredits[id] = count
	}

	out.Reward = in.Mods.Double(total)
	return out
}

// AutoPatternReward награда авто-фигуры по самому дорогому неотрицательному символу.
// Удвоение не применяется, его делает вызывающий по сумме всех авто-фигур.
func AutoPatternReward(symbols []model.SymbolState, ap model.QueuedAutoPattern, mods Modifiers) float64 {
	best, ok := bestSymbol(symbols)
	if !ok {
		return 0
	}
	var total float64
	for _, p := range ap.Patterns {
		total += best.CurrentValue * mods.PatternMultiplier(p) * float64(ap.Count)
	}
	return total
}

// bestSymbol первый по порядку среди символов с максимальным значением > 0
func bestSymbol(symbols []model.SymbolState) (model.SymbolState, bool) {
	var best model.SymbolState
	found := false
	for _, s := range symbols {
		if s.IsNegative || s.CurrentValue <= 0 {
			continue
		}
		if !found || s.CurrentValue > best.CurrentValue {
			best = s
			found = true
		}
	}
	return best, found
}
