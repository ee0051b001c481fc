package converter

import (
	"quantum_slots/internal/model"
	"testing"
)

func TestToStateResponseRoundsAndCopies(t *testing.T) {
	grid := model.Grid{}
	grid[1][4] = "nero"
	v := model.SessionView{
		SessionID: "id",
		State: model.GameState{
			Quantum:     1234.5678,
			CurrentTurn: model.TurnCheap,
			SlotResults: &grid,
			Flags:       model.Flags{QuantumDouble: true},
			ShopServants: []model.ShopEntry{{
				Servant: model.Servant{ID: "bb", Name: "BB", BasePrice: 6, Effect: model.QuantumDouble{}},
				Price:   3,
			}},
		},
		Probabilities: []model.Probability{{SymbolID: "nero", Probability: 1.0 / 3}},
	}

	res := ToStateResponse(v)
	if res.State.Quantum != 1234.57 {
		t.Fatalf("quantum = %v", res.State.Quantum)
	}
	if res.State.CurrentTurn == nil || *res.State.CurrentTurn != "cheap" {
		t.Fatalf("current turn = %v", res.State.CurrentTurn)
	}
	if res.State.SlotResults[1][4] != "nero" || len(res.State.SlotResults) != 3 || len(res.State.SlotResults[0]) != 5 {
		t.Fatalf("grid = %v", res.State.SlotResults)
	}
	if !res.State.Flags.QuantumDouble {
		t.Fatalf("flags lost")
	}
	shop := res.State.ShopServants[0]
	if shop.Price != 6 || shop.CurrentPrice != 3 || shop.EffectType != "quantum_double" {
		t.Fatalf("shop entry = %+v", shop)
	}
	if res.Probabilities[0].Probability != 0.333333 {
		t.Fatalf("probability = %v", res.Probabilities[0].Probability)
	}
	if res.Transitions == nil || res.State.FullPatternRewards == nil {
		t.Fatalf("collections must encode as empty, not null")
	}
}

func TestToStateResponseNoTurn(t *testing.T) {
	res := ToStateResponse(model.SessionView{})
	if res.State.CurrentTurn != nil || res.State.SlotResults != nil {
		t.Fatalf("expected null turn and grid")
	}
}

func TestToStateResponseSymbolBase(t *testing.T) {
	v := model.SessionView{State: model.GameState{SymbolStates: []model.SymbolState{{
		ID:            "nero",
		BaseValue:     1000,
		BaseWeight:    1,
		CurrentValue:  2500.256,
		CurrentWeight: 3,
	}}}}

	res := ToStateResponse(v)
	st := res.State.SymbolStates[0]
	if st.BaseValue != 1000 || st.BaseWeight != 1 || st.CurrentValue != 2500.26 || st.CurrentWeight != 3 {
		t.Fatalf("symbol state = %+v", st)
	}
}
