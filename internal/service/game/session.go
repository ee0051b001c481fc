package game

import (
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
	"quantum_slots/internal/service/effect"
	"quantum_slots/internal/service/event"
	"quantum_slots/pkg/rng"

	"github.com/looplab/fsm"
)

// Deps общие для всех сессий зависимости
type Deps struct {
	Catalog *catalog.Catalog
	Rules   model.Rules
	// NewRNG источник случайности на каждую сессию, nil означает rng.NewDefault.
	// Один Source нельзя делить между сессиями: он не потокобезопасен.
	NewRNG  func() rng.Source
}

// Session агрегат одной игровой сессии.
// Не потокобезопасен: вызывающий сериализует операции над сессией.
type Session struct {
	cat     *catalog.Catalog
	rules   model.Rules
	rng     rng.Source
	effects *effect.Processor
	events  *event.Generator
	machine *fsm.FSM
	pending []model.Transition

	quantum     float64
	saintQuartz int
	level       int
	round       int
	maxRounds   int

	currentTurn    model.TurnOption
	spinsRemaining int
	slotResults    *model.Grid
	turnQuantum    float64

	active         []model.Servant
	inventory      []model.Servant
	shop           []model.Servant
	priceReduction int

	flags         model.Flags
	oberonApplied bool
	autoPatterns  []model.QueuedAutoPattern

	symbols   []model.SymbolState
	symbolIdx map[string]int

	pendingEvents      []model.Event
	eventChoices       []model.Event
	fullPatternRewards map[string]int

	isGameOver      bool
	isLevelComplete bool
	entryMode       bool
}

// New сессия уровня 1, раунд 0, магазин уже заполнен
func New(deps Deps, entryMode bool) *Session {
	newRNG := deps.NewRNG
	if newRNG == nil {
		newRNG = rng.NewDefault
	}
	src := newRNG()

	s := &Session{
		cat:                deps.Catalog,
		rules:              deps.Rules,
		rng:                src,
		effects:            effect.NewProcessor(deps.Catalog, src),
		events:             event.NewGenerator(deps.Catalog, src),
		quantum:            deps.Rules.StartingQuantum,
		level:              1,
		maxRounds:          deps.Rules.BaseRounds,
		fullPatternRewards: make(map[string]int),
		entryMode:          entryMode,
	}
	s.machine = newMachine(func(t model.Transition) {
		s.pending = append(s.pending, t)
	})

	symbols := deps.Catalog.Symbols()
	s.symbols = make([]model.SymbolState, 0, len(symbols))
	s.symbolIdx = make(map[string]int, len(symbols))
	for i, sym := range symbols {
		s.symbols = append(s.symbols, model.SymbolState{
			ID:            sym.ID,
			BaseValue:     sym.BaseValue,
			BaseWeight:    sym.BaseWeight,
			CurrentValue:  sym.BaseValue,
			CurrentWeight: sym.BaseWeight,
			IsNegative:    sym.IsNegative,
		})
		s.symbolIdx[sym.ID] = i
	}

	s.refreshShop()
	return s
}

// EntryMode платная сессия
func (s *Session) EntryMode() bool {
	return s.entryMode
}

func (s *Session) ensureLive() error {
	if s.isGameOver || s.machine.Current() == PhaseGameOver {
		return service.ErrGameOver
	}
	return nil
}

func (s *Session) symbolState(id string) *model.SymbolState {
	i, ok := s.symbolIdx[id]
	if !ok {
		return nil
	}
	return &s.symbols[i]
}

func (s *Session) resetTurnState() {
	s.currentTurn = ""
	s.spinsRemaining = 0
	s.slotResults = nil
	s.turnQuantum = 0
	s.autoPatterns = nil
}

// levelTarget цель текущего уровня с учетом снижения
func (s *Session) levelTarget() float64 {
	target := s.rules.LevelTarget(s.level)
	if red := effect.Level(s.active).TargetReduction; red > 0 {
		target *= 1 - red
	}
	return target
}

// effectTarget доступ эффектов к сессии без расширения ее публичного API
type effectTarget struct {
	s *Session
}

func (t effectTarget) SymbolState(id string) *model.SymbolState { return t.s.symbolState(id) }
func (t effectTarget) Flags() *model.Flags                      { return &t.s.flags }
func (t effectTarget) AddPriceReduction(n int)                  { t.s.priceReduction += n }
func (t effectTarget) RefreshShop()                             { t.s.refreshShop() }
func (t effectTarget) AddToInventory(sv model.Servant)          { t.s.inventory = append(t.s.inventory, sv) }

// RemoveFromActive убирает последнее вхождение: только что активированного слугу
func (t effectTarget) RemoveFromActive(id string) {
	for i := len(t.s.active) - 1; i >= 0; i-- {
		if t.s.active[i].ID == id {
			t.s.active = append(t.s.active[:i], t.s.active[i+1:]...)
			return
		}
	}
}
