package slot

import (
	"quantum_slots/internal/model"
	"quantum_slots/pkg/rng"
)

// GenerateGrid генерирует поле 3x5, каждая клетка выбирается независимо по весам
func GenerateGrid(src rng.Source, probs []model.Probability) model.Grid {
	var grid model.Grid
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			grid[r][c] = pickSymbol(src, probs)
		}
	}
	return grid
}

// Выбор символа по накопленному весу.
// Символы с нулевым весом никогда не выпадают, при нулевой сумме весов - равномерно.
func pickSymbol(src rng.Source, probs []model.Probability) string {
	if len(probs) == 0 {
		return ""
	}

	var total float64
	for _, p := range probs {
		if p.Weight > 0 {
			total += p.Weight
		}
	}
	if total <= 0 {
		return probs[src.IntN(len(probs))].SymbolID
	}

	num := src.Float64() * total
	var cumulative float64
	last := ""
	for _, p := range probs {
		if p.Weight <= 0 {
			continue
		}
		cumulative += p.Weight
		last = p.SymbolID
		if num < cumulative {
			return p.SymbolID
		}
	}
	// погрешность округления
	return last
}
