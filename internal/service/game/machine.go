package game

import (
	"context"
	"errors"
	"quantum_slots/internal/model"

	"github.com/looplab/fsm"
)

// Фазы сессии
const (
	PhaseLevelStart    = "level_start"
	PhaseEventSelect   = "event_select"
	PhaseTurnSelect    = "turn_select"
	PhaseSpinning      = "spinning"
	PhaseRoundSettled  = "round_settled"
	PhaseLevelComplete = "level_complete"
	PhaseGameOver      = "game_over"
)

// События переходов
const (
	EventStartLevel  = "start_level"
	EventStartRound  = "start_round"
	EventSelectTurn  = "select_turn"
	EventSettleRound = "settle_round"
	EventPassLevel   = "pass_level"
	EventFailLevel   = "fail_level"
	EventExhaust     = "exhaust"
)

// живые фазы: из game_over переходов нет
var livePhases = []string{
	PhaseLevelStart, PhaseEventSelect, PhaseTurnSelect, PhaseSpinning, PhaseRoundSettled, PhaseLevelComplete,
}

func newMachine(onEnter func(model.Transition)) *fsm.FSM {
	return fsm.NewFSM(
		PhaseLevelStart,
		fsm.Events{
			{Name: EventStartLevel, Src: livePhases, Dst: PhaseEventSelect},
			{Name: EventStartRound, Src: livePhases, Dst: PhaseTurnSelect},
			{Name: EventSelectTurn, Src: livePhases, Dst: PhaseSpinning},
			{Name: EventSettleRound, Src: livePhases, Dst: PhaseRoundSettled},
			{Name: EventPassLevel, Src: livePhases, Dst: PhaseLevelComplete},
			{Name: EventFailLevel, Src: livePhases, Dst: PhaseGameOver},
			{Name: EventExhaust, Src: livePhases, Dst: PhaseGameOver},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				onEnter(model.Transition{Event: e.Event, From: e.Src, To: e.Dst})
			},
		},
	)
}

// fire переход фазы. Переход в ту же фазу не ошибка.
func (s *Session) fire(event string) {
	err := s.machine.Event(context.Background(), event)
	if err == nil {
		return
	}
	var same fsm.NoTransitionError
	if errors.As(err, &same) {
		return
	}
	// остальные ошибки - нарушение таблицы переходов, живость фазы проверяется до вызова
	panic("session phase machine: " + err.Error())
}

// Phase текущая фаза
func (s *Session) Phase() string {
	return s.machine.Current()
}

func (s *Session) begin() {
	s.pending = nil
}

func (s *Session) flush() []model.Transition {
	res := s.pending
	s.pending = nil
	if res == nil {
		res = []model.Transition{}
	}
	return res
}
