package model

type EventKind string

const (
	EventIncreaseWeight    EventKind = "increase_weight"
	EventIncreaseValue     EventKind = "increase_value"
	EventFullPatternReward EventKind = "full_pattern_reward"
)

// EventKinds порядок важен: генератор выбирает вид по индексу
var EventKinds = []EventKind{EventIncreaseWeight, EventIncreaseValue, EventFullPatternReward}

type Event struct {
	Kind           EventKind
	SymbolID       string
	SymbolName     string
	Description    string
	WeightIncrease float64
	ValueIncrease  float64
	Count          int
}

// FullBoardMode способ начисления события полного поля
type FullBoardMode string

const (
	// FullBoardImmediate квантум начисляется сразу при выборе события
	FullBoardImmediate FullBoardMode = "immediate"
	// FullBoardDeferred кредит ждет спина с полным полем этого символа
	FullBoardDeferred FullBoardMode = "deferred"
)
