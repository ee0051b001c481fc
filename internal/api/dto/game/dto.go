package game

type NewSessionRequest struct {
	EntryMode bool `json:"entry_mode"` // Платный вход
}

type SelectEventRequest struct {
	EventIndex *int `json:"event_index"` // Индекс в списке событий уровня
}

type SelectTurnRequest struct {
	Option string `json:"option"` // cheap | expensive
}

type ServantRequest struct {
	ServantID string `json:"servant_id"`
}

type StateResponse struct {
	SessionID     string        `json:"session_id"`
	State         GameState     `json:"state"`
	Probabilities []Probability `json:"probabilities"`
	Transitions   []Transition  `json:"transitions"`
}

type SpinResponse struct {
	StateResponse
	SpinResult     SpinResult `json:"spin_result"`
	SpinsRemaining int        `json:"spins_remaining"`
	IsGameOver     bool       `json:"is_game_over"`
}

type LevelResponse struct {
	StateResponse
	LevelResult     LevelResult `json:"level_result"`
	IsGameOver      bool        `json:"is_game_over"`
	IsLevelComplete bool        `json:"is_level_complete"`
	Events          []Event     `json:"events"`     // События следующего уровня
	Settlement      *Settlement `json:"settlement"` // Только для платной сессии
}

type GameState struct {
	Quantum            float64        `json:"quantum"`
	SaintQuartz        int            `json:"saint_quartz"`
	Level              int            `json:"level"`
	Round              int            `json:"round"`
	MaxRounds          int            `json:"max_rounds"`
	LevelTarget        float64        `json:"level_target"`
	CurrentTurn        *string        `json:"current_turn"`
	SpinsRemaining     int            `json:"spins_remaining"`
	SlotResults        [][]string     `json:"slot_results"`
	TurnQuantum        float64        `json:"turn_quantum"`
	ActiveServants     []Servant      `json:"active_servants"`
	InventoryServants  []Servant      `json:"inventory_servants"`
	ShopServants       []ShopEntry    `json:"shop_servants"`
	PriceReduction     int            `json:"price_reduction"`
	Flags              Flags          `json:"flags"`
	OberonApplied      bool           `json:"oberon_applied"`
	AutoPatterns       []AutoPattern  `json:"auto_patterns"`
	SymbolStates       []SymbolState  `json:"symbol_states"`
	Events             []Event        `json:"events"`
	EventChoices       []Event        `json:"event_choices"`
	FullPatternRewards map[string]int `json:"full_pattern_rewards"`
	IsGameOver         bool           `json:"is_game_over"`
	IsLevelComplete    bool           `json:"is_level_complete"`
	Phase              string         `json:"phase"`
	EntryMode          bool           `json:"entry_mode"`
}

type Flags struct {
	QuantumDouble   bool `json:"quantum_double"`
	ImmuneNegative  bool `json:"immune_negative"`
	DisableNegative bool `json:"disable_negative"`
	Oberon          bool `json:"oberon"`
}

type Servant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // Базовая цена
	Description string `json:"description"`
	EffectType  string `json:"effect_type"`
	OneTime     bool   `json:"one_time"`
}

type ShopEntry struct {
	Servant
	CurrentPrice int `json:"current_price"` // Цена с учетом скидок
}

type AutoPattern struct {
	ServantID string   `json:"servant_id"`
	Patterns  []string `json:"patterns"`
	Count     int      `json:"count"`
}

type SymbolState struct {
	ID            string  `json:"id"`
	BaseValue     float64 `json:"base_value"`
	BaseWeight    float64 `json:"base_weight"`
	CurrentValue  float64 `json:"current_value"`
	CurrentWeight float64 `json:"current_weight"`
	IsNegative    bool    `json:"is_negative"`
}

type Probability struct {
	SymbolID    string  `json:"symbol_id"`
	Probability float64 `json:"probability"`
	Value       float64 `json:"value"`
	Weight      float64 `json:"weight"`
	IsNegative  bool    `json:"is_negative"`
}

type Event struct {
	Type           string  `json:"type"`
	SymbolID       string  `json:"symbol_id"`
	SymbolName     string  `json:"symbol_name"`
	Description    string  `json:"description"`
	WeightIncrease float64 `json:"weight_increase,omitempty"`
	ValueIncrease  float64 `json:"value_increase,omitempty"`
	Count          int     `json:"count,omitempty"`
}

type Transition struct {
	Event string `json:"event"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type SpinResult struct {
	Grid        [][]string `json:"grid"`
	Reward      float64    `json:"reward"`
	HasNegative bool       `json:"has_negative"`
	Patterns    []Match    `json:"patterns"`
}

type Match struct {
	Pattern   string   `json:"pattern"`
	SymbolID  string   `json:"symbol_id"`
	Positions [][2]int `json:"positions"` // [row, col]
	Payout    float64  `json:"payout"`
}

type LevelResult struct {
	Level   int     `json:"level"`
	Target  float64 `json:"target"`
	Quantum float64 `json:"quantum"`
	Passed  bool    `json:"passed"`
}

type ReportResponse struct {
	Level             int      `json:"level"`
	Round             int      `json:"round"`
	LevelTarget       float64  `json:"level_target"`
	FinalQuantum      float64  `json:"final_quantum"`
	TotalSaintQuartz  int      `json:"total_saint_quartz"`
	ActiveServants    []string `json:"active_servants"`
	InventoryServants []string `json:"inventory_servants"`
	EventsChosen      int      `json:"events_chosen"`
	Phase             string   `json:"phase"`
	EntryMode         bool     `json:"entry_mode"`
	IsGameOver        bool     `json:"is_game_over"`
	IsLevelComplete   bool     `json:"is_level_complete"`
}

type Settlement struct {
	ID           int64  `json:"id"`
	SessionKey   string `json:"session_key"`
	Kind         string `json:"kind"`
	Level        int    `json:"level"`
	PostLevel5   bool   `json:"post_level5"`
	FinalQuantum int64  `json:"final_quantum"`
	EntryFeeWei  string `json:"entry_fee_wei"`
	Receipt      string `json:"receipt"`
	CreatedAt    string `json:"created_at"`
}

type SettlementsResponse struct {
	SessionID   string       `json:"session_id"`
	Settlements []Settlement `json:"settlements"`
}

type StatsResponse struct {
	TotalTurns   int     `json:"total_turns"`
	TotalSpins   int     `json:"total_spins"`
	TotalSpent   float64 `json:"total_spent"`
	TotalEarned  float64 `json:"total_earned"`
	ReturnRatio  float64 `json:"return_ratio"`
	WindowRatio  float64 `json:"window_ratio"`
	WindowSize   int     `json:"window_size"`
	LevelsPassed int     `json:"levels_passed"`
	LevelsFailed int     `json:"levels_failed"`
}
