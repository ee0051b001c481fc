package slot

import "quantum_slots/internal/model"

// Multipliers базовые множители фигур
var Multipliers = map[model.PatternType]float64{
	model.PatternHorizontal3: 9,
	model.PatternVertical3:   9,
	model.PatternHorizontal5: 25,
	model.PatternTopV:        35,
	model.PatternBottomV:     35,
	model.PatternFull:        225,
}

var (
	topV = []model.Position{
		{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 2, Col: 2},
	}
	bottomV = []model.Position{
		{Row: 2, Col: 0}, {Row: 2, Col: 4}, {Row: 1, Col: 1}, {Row: 1, Col: 3}, {Row: 0, Col: 2},
	}
)

// Multiplier множитель фигуры, 0 для неизвестной
func Multiplier(p model.PatternType) float64 {
	return Multipliers[p]
}
