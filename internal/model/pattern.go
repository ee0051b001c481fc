package model

const (
	// Rows строки поля
	Rows = 3
	// Cols барабаны
	Cols = 5
)

type PatternType string

const (
	PatternHorizontal3 PatternType = "horizontal_3"
	PatternVertical3   PatternType = "vertical_3"
	PatternHorizontal5 PatternType = "horizontal_5"
	PatternTopV        PatternType = "top_v"
	PatternBottomV     PatternType = "bottom_v"
	PatternFull        PatternType = "full"
)

// Grid поле 3x5, grid[row][col] - id символа
type Grid [Rows][Cols]string

type Position struct {
	Row int
	Col int
}

// Match одно совпадение фигуры. Payout - выплата до удвоения.
type Match struct {
	Pattern   PatternType
	SymbolID  string
	Positions []Position
	Payout    float64
}

// SpinOutcome результат разрешения одного спина
type SpinOutcome struct {
	Grid                     Grid
	Reward                   float64
	HasNegative              bool
	Patterns                 []Match
	ConsumedFullBoardCredits map[string]int
}
