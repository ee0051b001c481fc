package model

// Состояние движка
type EngineState struct {
	TotalTurns  int     // Сколько куплено ходов
	TotalSpins  int     // Сколько сделано спинов
	TotalSpent  float64 // Квантум, потраченный на ходы
	TotalEarned float64 // Квантум, полученный со спинов (с учетом отъема)

	ReturnRatio float64 // TotalEarned/TotalSpent

	LevelsPassed int
	LevelsFailed int

	Window      []WindowEntry // Окно последних операций
	WindowRatio float64       // Отдача в окне
	WindowSize  int           // Размер окна
}

// Запись окна: ход (Spent) или спин (Earned)
type WindowEntry struct {
	Spent  float64
	Earned float64
}
