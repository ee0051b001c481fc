package stats_repo

import (
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository"
	repoModel "quantum_slots/internal/repository/stats_repo/model"
	"sync"
)

// defaultWindowSize Размер окна для расчета отдачи
const defaultWindowSize = 500

// Реализация репозитория для хранения статистики движка
type StateRepo struct {
	mtx   sync.RWMutex
	state repoModel.EngineState
}

// NewStatsRepository Конструктор с начальным состоянием. windowSize <= 0 значит размер по умолчанию
func NewStatsRepository(windowSize int) repository.StatsRepository {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StateRepo{
		state: repoModel.EngineState{
			Window:     make([]repoModel.WindowEntry, 0),
			WindowSize: windowSize,
		},
	}
}

// RecordTurn учитывает купленный ход
func (r *StateRepo) RecordTurn(spent float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalTurns++
	r.state.TotalSpent += spent
	r.push(repoModel.WindowEntry{Spent: spent})
}

// RecordSpin учитывает результат спина, отрицательный при отъеме квантума хода
func (r *StateRepo) RecordSpin(earned float64) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.state.TotalSpins++
	r.state.TotalEarned += earned
	r.push(repoModel.WindowEntry{Earned: earned})
}

func (r *StateRepo) RecordLevel(passed bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	if passed {
		r.state.LevelsPassed++
	} else {
		r.state.LevelsFailed++
	}
}

// Stats Получение копии текущей статистики
func (r *StateRepo) Stats() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	return model.Stats{
		TotalTurns:   r.state.TotalTurns,
		TotalSpins:   r.state.TotalSpins,
		TotalSpent:   r.state.TotalSpent,
		TotalEarned:  r.state.TotalEarned,
		ReturnRatio:  r.state.ReturnRatio,
		WindowRatio:  r.state.WindowRatio,
		WindowSize:   len(r.state.Window),
		LevelsPassed: r.state.LevelsPassed,
		LevelsFailed: r.state.LevelsFailed,
	}
}

// push добавляет запись в окно и пересчитывает отдачу. Вызывать под r.mtx
func (r *StateRepo) push(e repoModel.WindowEntry) {
	if r.state.TotalSpent > 0 {
		r.state.ReturnRatio = r.state.TotalEarned / r.state.TotalSpent
	}

	r.state.Window = append(r.state.Window, e)
	// Поддерживаем размер окна
	if len(r.state.Window) > r.state.WindowSize {
		r.state.Window = r.state.Window[1:]
	}

	var spent, earned float64
	for _, w := range r.state.Window {
		spent += w.Spent
		earned += w.Earned
	}
	if spent > 0 {
		r.state.WindowRatio = earned / spent
	} else {
		r.state.WindowRatio = 0
	}
}
