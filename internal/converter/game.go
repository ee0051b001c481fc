package converter

import (
	dto "quantum_slots/internal/api/dto/game"
	"quantum_slots/internal/model"
	"time"

	"github.com/shopspring/decimal"
)

// quantumPlaces знаков после запятой в ответах
const quantumPlaces = 2

// roundQ округление квантума и значений символов на границе API
func roundQ(v float64) float64 {
	return decimal.NewFromFloat(v).Round(quantumPlaces).InexactFloat64()
}

func ToStateResponse(v model.SessionView) dto.StateResponse {
	return dto.StateResponse{
		SessionID:     v.SessionID,
		State:         toGameState(v.State),
		Probabilities: toProbabilities(v.Probabilities),
		Transitions:   toTransitions(v.Transitions),
	}
}

func ToSpinResponse(v model.SpinView) dto.SpinResponse {
	return dto.SpinResponse{
		StateResponse:  ToStateResponse(v.SessionView),
		SpinResult:     toSpinResult(v.Spin.Outcome),
		SpinsRemaining: v.Spin.SpinsRemaining,
		IsGameOver:     v.IsGameOver,
	}
}

func ToLevelResponse(v model.LevelView) dto.LevelResponse {
	res := dto.LevelResponse{
		StateResponse: ToStateResponse(v.SessionView),
		LevelResult: dto.LevelResult{
			Level:   v.Result.Level,
			Target:  roundQ(v.Result.Target),
			Quantum: roundQ(v.Result.Quantum),
			Passed:  v.Result.Passed,
		},
		IsGameOver:      v.State.IsGameOver,
		IsLevelComplete: v.State.IsLevelComplete,
		Events:          toEvents(v.State.Events),
	}
	if v.Settlement != nil {
		st := ToSettlement(*v.Settlement)
		res.Settlement = &st
	}
	return res
}

func ToReportResponse(r model.Report) dto.ReportResponse {
	return dto.ReportResponse{
		Level:             r.Level,
		Round:             r.Round,
		LevelTarget:       roundQ(r.LevelTarget),
		FinalQuantum:      roundQ(r.FinalQuantum),
		TotalSaintQuartz:  r.TotalSaintQuartz,
		ActiveServants:    r.ActiveServants,
		InventoryServants: r.InventoryServants,
		EventsChosen:      r.EventsChosen,
		Phase:             r.Phase,
		EntryMode:         r.EntryMode,
		IsGameOver:        r.IsGameOver,
		IsLevelComplete:   r.IsLevelComplete,
	}
}

func ToSettlement(st model.Settlement) dto.Settlement {
	return dto.Settlement{
		ID:           st.ID,
		SessionKey:   st.SessionKey,
		Kind:         string(st.Kind),
		Level:        st.Level,
		PostLevel5:   st.PostLevel5,
		FinalQuantum: st.FinalQuantum,
		EntryFeeWei:  st.EntryFeeWei,
		Receipt:      st.Receipt,
		CreatedAt:    st.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToSettlementsResponse(sessionID string, list []model.Settlement) dto.SettlementsResponse {
	res := dto.SettlementsResponse{
		SessionID:   sessionID,
		Settlements: make([]dto.Settlement, len(list)),
	}
	for i, st := range list {
		res.Settlements[i] = ToSettlement(st)
	}
	return res
}

func ToStatsResponse(st model.Stats) dto.StatsResponse {
	return dto.StatsResponse{
		TotalTurns:   st.TotalTurns,
		TotalSpins:   st.TotalSpins,
		TotalSpent:   roundQ(st.TotalSpent),
		TotalEarned:  roundQ(st.TotalEarned),
		ReturnRatio:  decimal.NewFromFloat(st.ReturnRatio).Round(4).InexactFloat64(),
		WindowRatio:  decimal.NewFromFloat(st.WindowRatio).Round(4).InexactFloat64(),
		WindowSize:   st.WindowSize,
		LevelsPassed: st.LevelsPassed,
		LevelsFailed: st.LevelsFailed,
	}
}

//---------- ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ----------

func toGameState(s model.GameState) dto.GameState {
	res := dto.GameState{
		Quantum:            roundQ(s.Quantum),
		SaintQuartz:        s.SaintQuartz,
		Level:              s.Level,
		Round:              s.Round,
		MaxRounds:          s.MaxRounds,
		LevelTarget:        roundQ(s.LevelTarget),
		SpinsRemaining:     s.SpinsRemaining,
		TurnQuantum:        roundQ(s.TurnQuantum),
		ActiveServants:     toServants(s.ActiveServants),
		InventoryServants:  toServants(s.InventoryServants),
		ShopServants:       make([]dto.ShopEntry, len(s.ShopServants)),
		PriceReduction:     s.PriceReduction,
		Flags:              dto.Flags(s.Flags),
		OberonApplied:      s.OberonApplied,
		AutoPatterns:       make([]dto.AutoPattern, len(s.AutoPatterns)),
		SymbolStates:       make([]dto.SymbolState, len(s.SymbolStates)),
		Events:             toEvents(s.Events),
		EventChoices:       toEvents(s.EventChoices),
		FullPatternRewards: s.FullPatternRewards,
		IsGameOver:         s.IsGameOver,
		IsLevelComplete:    s.IsLevelComplete,
		Phase:              s.Phase,
		EntryMode:          s.EntryMode,
	}
	if s.CurrentTurn != "" {
		turn := string(s.CurrentTurn)
		res.CurrentTurn = &turn
	}
	if s.SlotResults != nil {
		res.SlotResults = toGrid(*s.SlotResults)
	}
	if res.FullPatternRewards == nil {
		res.FullPatternRewards = map[string]int{}
	}
	for i, e := range s.ShopServants {
		res.ShopServants[i] = dto.ShopEntry{Servant: toServant(e.Servant), CurrentPrice: e.Price}
	}
	for i, ap := range s.AutoPatterns {
		patterns := make([]string, len(ap.Patterns))
		for j, p := range ap.Patterns {
			patterns[j] = string(p)
		}
		res.AutoPatterns[i] = dto.AutoPattern{ServantID: ap.ServantID, Patterns: patterns, Count: ap.Count}
	}
	for i, st := range s.SymbolStates {
		res.SymbolStates[i] = dto.SymbolState{
			ID:            st.ID,
			BaseValue:     st.BaseValue,
			BaseWeight:    st.BaseWeight,
			CurrentValue:  roundQ(st.CurrentValue),
			CurrentWeight: st.CurrentWeight,
			IsNegative:    st.IsNegative,
		}
	}
	return res
}

func toServants(list []model.Servant) []dto.Servant {
	res := make([]dto.Servant, len(list))
	for i, sv := range list {
		res[i] = toServant(sv)
	}
	return res
}

func toServant(sv model.Servant) dto.Servant {
	res := dto.Servant{
		ID:          sv.ID,
		Name:        sv.Name,
		Price:       sv.BasePrice,
		Description: sv.Description,
		OneTime:     sv.OneTime(),
	}
	if sv.Effect != nil {
		res.EffectType = string(sv.Effect.Kind())
	}
	return res
}

func toEvents(list []model.Event) []dto.Event {
	res := make([]dto.Event, len(list))
	for i, e := range list {
		res[i] = dto.Event{
			Type:           string(e.Kind),
			SymbolID:       e.SymbolID,
			SymbolName:     e.SymbolName,
			Description:    e.Description,
			WeightIncrease: e.WeightIncrease,
			ValueIncrease:  e.ValueIncrease,
			Count:          e.Count,
		}
	}
	return res
}

func toProbabilities(list []model.Probability) []dto.Probability {
	res := make([]dto.Probability, len(list))
	for i, p := range list {
		res[i] = dto.Probability{
			SymbolID:    p.SymbolID,
			Probability: decimal.NewFromFloat(p.Probability).Round(6).InexactFloat64(),
			Value:       roundQ(p.Value),
			Weight:      p.Weight,
			IsNegative:  p.IsNegative,
		}
	}
	return res
}

func toTransitions(list []model.Transition) []dto.Transition {
	res := make([]dto.Transition, len(list))
	for i, t := range list {
		res[i] = dto.Transition{Event: t.Event, From: t.From, To: t.To}
	}
	return res
}

func toGrid(g model.Grid) [][]string {
	res := make([][]string, model.Rows)
	for r := range g {
		res[r] = append([]string(nil), g[r][:]...)
	}
	return res
}

func toSpinResult(o model.SpinOutcome) dto.SpinResult {
	res := dto.SpinResult{
		Grid:        toGrid(o.Grid),
		Reward:      roundQ(o.Reward),
		HasNegative: o.HasNegative,
		Patterns:    make([]dto.Match, len(o.Patterns)),
	}
	for i, m := range o.Patterns {
		positions := make([][2]int, len(m.Positions))
		for j, p := range m.Positions {
			positions[j] = [2]int{p.Row, p.Col}
		}
		res.Patterns[i] = dto.Match{
			Pattern:   string(m.Pattern),
			SymbolID:  m.SymbolID,
			Positions: positions,
			Payout:    roundQ(m.Payout),
		}
	}
	return res
}
