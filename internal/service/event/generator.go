package event

import (
	"fmt"
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/model"
	"quantum_slots/pkg/rng"
)

const (
	// weightIncrease прибавка веса от события, в долях базового веса
	weightIncrease = 1.0
	// valueIncrease прибавка значения от события, в долях базового значения
	valueIncrease = 1.0
	// fullPatternCount сколько полных полей дает событие
	fullPatternCount = 1
)

// Generator генерирует и применяет события начала уровня
type Generator struct {
	cat *catalog.Catalog
	rng rng.Source
}

func NewGenerator(cat *catalog.Catalog, src rng.Source) *Generator {
	return &Generator{cat: cat, rng: src}
}

// Generate n событий: вид равновероятно из трех, символ равновероятно среди неотрицательных
func (g *Generator) Generate(n int) []model.Event {
	symbols := g.cat.NonNegativeSymbols()
	if n <= 0 || len(symbols) == 0 {
		return []model.Event{}
	}

	events := make([]model.Event, 0, n)
	for i := 0; i < n; i++ {
		kind := model.EventKinds[g.rng.IntN(len(model.EventKinds))]
		sym := symbols[g.rng.IntN(len(symbols))]
		events = append(events, newEvent(kind, sym))
	}
	return events
}

func newEvent(kind model.EventKind, sym model.Symbol) model.Event {
	ev := model.Event{Kind: kind, SymbolID: sym.ID, SymbolName: sym.Name}
	switch kind {
	case model.EventIncreaseWeight:
		ev.WeightIncrease = weightIncrease
		ev.Description = fmt.Sprintf("%s weight +%.0f%%", sym.Name, weightIncrease*100)
	case model.EventIncreaseValue:
		ev.ValueIncrease = valueIncrease
		ev.Description = fmt.Sprintf("%s value +%.0f%%", sym.Name, valueIncrease*100)
	case model.EventFullPatternReward:
		ev.Count = fullPatternCount
		ev.Description = fmt.Sprintf("%s full board x%d", sym.Name, fullPatternCount)
	}
	return ev
}

// Target состояние, к которому применяется событие
type Target struct {
	State   *model.SymbolState
	Base    model.Symbol
	Credits map[string]int
}

// Apply применяет событие. Для полного поля в режиме immediate
// возвращает квантум к начислению (без удвоения), в режиме deferred копит кредит.
func Apply(ev model.Event, t Target, mode model.FullBoardMode) float64 {
	switch ev.Kind {
	case model.EventIncreaseWeight:
		t.State.CurrentWeight += t.Base.BaseWeight * ev.WeightIncrease
	case model.EventIncreaseValue:
		t.State.CurrentValue += t.Base.BaseValue * ev.ValueIncrease
	case model.EventFullPatternReward:
		if mode == model.FullBoardDeferred {
			t.Credits[ev.SymbolID] += ev.Count
			return 0
		}
		return t.State.CurrentValue * fullBoardMultiplier * float64(ev.Count)
	}
	return 0
}

// fullBoardMultiplier совпадает с множителем фигуры full
const fullBoardMultiplier = 225
