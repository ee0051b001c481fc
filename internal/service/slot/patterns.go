package slot

import "quantum_slots/internal/model"

// DetectPatterns находит все совпадения фигур для каждого символа.
// Возвращаются все совпадения, а не только самое дорогое.
func DetectPatterns(grid model.Grid, symbolIDs []string) []model.Match {
	var matches []model.Match
	for _, id := range symbolIDs {
		matches = append(matches, detectForSymbol(grid, id)...)
	}
	return matches
}

func detectForSymbol(grid model.Grid, id string) []model.Match {
	var matches []model.Match
	is := func(r, c int) bool { return grid[r][c] == id }

	// Горизонтальные тройки: 3 стартовые позиции на строку
	for r := 0; r < model.Rows; r++ {
		for start := 0; start <= model.Cols-3; start++ {
			if is(r, start) && is(r, start+1) && is(r, start+2) {
				matches = append(matches, model.Match{
					Pattern:   model.PatternHorizontal3,
					SymbolID:  id,
					Positions: []model.Position{{Row: r, Col: start}, {Row: r, Col: start + 1}, {Row: r, Col: start + 2}},
				})
			}
		}
	}

	// Вертикальные тройки: по одной на колонку
	for c := 0; c < model.Cols; c++ {
		if is(0, c) && is(1, c) && is(2, c) {
			matches = append(matches, model.Match{
				Pattern:   model.PatternVertical3,
				SymbolID:  id,
				Positions: []model.Position{{Row: 0, Col: c}, {Row: 1, Col: c}, {Row: 2, Col: c}},
			})
		}
	}

	// Полные строки
	for r := 0; r < model.Rows; r++ {
		full := true
		for c := 0; c < model.Cols; c++ {
			if !is(r, c) {
				full = false
				break
			}
		}
		if full {
			pos := make([]model.Position, 0, model.Cols)
			for c := 0; c < model.Cols; c++ {
				pos = append(pos, model.Position{Row: r, Col: c})
			}
			matches = append(matches, model.Match{Pattern: model.PatternHorizontal5, SymbolID: id, Positions: pos})
		}
	}

	if shapeMatches(grid, id, topV) {
		matches = append(matches, model.Match{Pattern: model.PatternTopV, SymbolID: id, Positions: clonePositions(topV)})
	}
	if shapeMatches(grid, id, bottomV) {
		matches = append(matches, model.Match{Pattern: model.PatternBottomV, SymbolID: id, Positions: clonePositions(bottomV)})
	}

	if isFullBoard(grid, id) {
		pos := make([]model.Position, 0, model.Rows*model.Cols)
		for r := 0; r < model.Rows; r++ {
			for c := 0; c < model.Cols; c++ {
				pos = append(pos, model.Position{Row: r, Col: c})
			}
		}
		matches = append(matches, model.Match{Pattern: model.PatternFull, SymbolID: id, Positions: pos})
	}

	return matches
}

//---------- ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ----------

func shapeMatches(grid model.Grid, id string, shape []model.Position) bool {
	for _, p := range shape {
		if grid[p.Row][p.Col] != id {
			return false
		}
	}
	return true
}

func isFullBoard(grid model.Grid, id string) bool {
	for r := 0; r < model.Rows; r++ {
		for c := 0; c < model.Cols; c++ {
			if grid[r][c] != id {
				return false
			}
		}
	}
	return true
}

func clonePositions(p []model.Position) []model.Position {
	return append([]model.Position(nil), p...)
}
