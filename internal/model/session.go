package model

// NewSession параметры создания сессии
type NewSession struct {
	// EntryMode платный вход, завершения уровней уходят в расчет
	EntryMode bool
}

// SessionView состояние сессии, возвращаемое операциями
type SessionView struct {
	SessionID     string
	State         GameState
	Probabilities []Probability
	Transitions   []Transition
}

type SpinView struct {
	SessionView
	Spin       SpinResult
	IsGameOver bool
}

type LevelView struct {
	SessionView
	Result     LevelResult
	Settlement *Settlement
}
