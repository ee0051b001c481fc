package model

import "math"

type TurnOption string

const (
	TurnCheap     TurnOption = "cheap"
	TurnExpensive TurnOption = "expensive"
)

// TurnRule стоимость хода = CostPerLevel * level
type TurnRule struct {
	CostPerLevel float64
	Spins        int
	SaintQuartz  int
}

// Rules настраиваемые константы игры
type Rules struct {
	StartingQuantum    float64
	BaseRounds         int
	EventsPerLevel     int
	Turns              map[TurnOption]TurnRule
	LevelTargets       []float64
	TargetGrowth       float64
	MaxActiveServants  int
	ShopSize           int
	RefreshCost        int
	PriceTiers         []int
	FullBoardEventMode FullBoardMode
	SymbolOverrides    map[string]SymbolOverride
}

type SymbolOverride struct {
	BaseValue  *float64
	BaseWeight *float64
}

func DefaultRules() Rules {
	return Rules{
		StartingQuantum: 10000,
		BaseRounds:      7,
		EventsPerLevel:  3,
		Turns: map[TurnOption]TurnRule{
			TurnCheap:     {CostPerLevel: 3000, Spins: 3, SaintQuartz: 2},
			TurnExpensive: {CostPerLevel: 7000, Spins: 7, SaintQuartz: 1},
		},
		LevelTargets:       []float64{100000, 500000, 1500000, 4000000, 7500000},
		TargetGrowth:       1.5,
		MaxActiveServants:  5,
		ShopSize:           3,
		RefreshCost:        1,
		PriceTiers:         []int{0, 3, 6, 9},
		FullBoardEventMode: FullBoardImmediate,
	}
}

// LevelTarget цель уровня без учета скидок
func (r Rules) LevelTarget(level int) float64 {
	if level < 1 {
		level = 1
	}
	n := len(r.LevelTargets)
	if n == 0 {
		return 0
	}
	if level <= n {
		return r.LevelTargets[level-1]
	}
	return math.Floor(r.LevelTargets[n-1] * math.Pow(r.TargetGrowth, float64(level-n)))
}

// TurnCost стоимость хода на уровне
func (r Rules) TurnCost(opt TurnOption, level int) (float64, bool) {
	rule, ok := r.Turns[opt]
	if !ok {
		return 0, false
	}
	return rule.CostPerLevel * float64(level), true
}

// MinTurnCost самый дешевый ход на уровне, порог окончания игры
func (r Rules) MinTurnCost(level int) float64 {
	lowest := math.Inf(1)
	for _, rule := range r.Turns {
		if c := rule.CostPerLevel * float64(level); c < lowest {
			lowest = c
		}
	}
	if math.IsInf(lowest, 1) {
		return 0
	}
	return lowest
}

// Flags пассивные флаги, выставленные активацией слуг
type Flags struct {
	QuantumDouble   bool
	ImmuneNegative  bool
	DisableNegative bool
	Oberon          bool
}

// Transition переход фазы сессии
type Transition struct {
	Event string
	From  string
	To    string
}

// GameState снимок сессии, не разделяет память с сессией
type GameState struct {
	Quantum            float64
	SaintQuartz        int
	Level              int
	Round              int
	MaxRounds          int
	LevelTarget        float64
	CurrentTurn        TurnOption
	SpinsRemaining     int
	SlotResults        *Grid
	TurnQuantum        float64
	ActiveServants     []Servant
	InventoryServants  []Servant
	ShopServants       []ShopEntry
	PriceReduction     int
	Flags              Flags
	OberonApplied      bool
	AutoPatterns       []QueuedAutoPattern
	SymbolStates       []SymbolState
	Events             []Event
	EventChoices       []Event
	FullPatternRewards map[string]int
	IsGameOver         bool
	IsLevelComplete    bool
	Phase              string
	EntryMode          bool
}

// SpinResult результат операции spin
type SpinResult struct {
	Outcome        SpinOutcome
	SpinsRemaining int
}

// LevelResult результат завершения уровня
type LevelResult struct {
	Level    int
	Target   float64
	Quantum  float64
	Passed   bool
	GameOver bool
}

// Report итог сессии
type Report struct {
	Level             int
	Round             int
	LevelTarget       float64
	FinalQuantum      float64
	TotalSaintQuartz  int
	ActiveServants    []string
	InventoryServants []string
	EventsChosen      int
	Phase             string
	EntryMode         bool
	IsGameOver        bool
	IsLevelComplete   bool
}
