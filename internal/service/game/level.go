package game

import (
	"math"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
	"quantum_slots/internal/service/effect"
	"quantum_slots/internal/service/event"
)

// StartNewLevel начинает уровень: магазин, события, сброс хода
func (s *Session) StartNewLevel() ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	s.begin()
	s.startNewLevel()
	return s.flush(), nil
}

// startNewLevel возвращает false, если сработала защита от повторного вызова
func (s *Session) startNewLevel() bool {
	// Повторный вызов на уже начатом уровне > 1 ничего не делает
	if s.round == 0 && s.level > 1 {
		return false
	}
	// Первый вызов на уровне 1 уровень не увеличивает
	if !(s.level == 1 && s.round == 0) {
		s.level++
	}

	mods := effect.Level(s.active)
	s.round = 0
	s.maxRounds = s.rules.BaseRounds + mods.ExtraRounds
	s.refreshShop()
	s.pendingEvents = s.events.Generate(s.rules.EventsPerLevel + mods.ExtraEvents)
	s.resetTurnState()

	s.fire(EventStartLevel)
	return true
}

// SelectEvent применяет выбранное событие и очищает список.
// На раунде 0 сразу начинает первый раунд.
func (s *Session) SelectEvent(index int) ([]model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(s.pendingEvents) {
		return nil, service.ErrInvalidEventIndex
	}
	s.begin()

	ev := s.pendingEvents[index]
	if st := s.symbolState(ev.SymbolID); st != nil {
		base, _ := s.cat.Symbol(ev.SymbolID)
		grant := event.Apply(ev, event.Target{State: st, Base: base, Credits: s.fullPatternRewards}, s.rules.FullBoardEventMode)
		if grant > 0 {
			s.quantum += s.spinModifiers().Double(grant)
		}
	}

	s.eventChoices = append(s.eventChoices, ev)
	s.pendingEvents = nil

	if s.round == 0 {
		s.startNewRound()
	}
	return s.flush(), nil
}

// CompleteLevel проверка цели уровня.
// При успехе сразу начинается следующий уровень, при провале сессия завершается.
func (s *Session) CompleteLevel() (model.LevelResult, []model.Transition, error) {
	if err := s.ensureLive(); err != nil {
		return model.LevelResult{}, nil, err
	}
	s.begin()

	// Оберон: множитель конца уровня до проверки цели
	if s.flags.Oberon {
		ob, ok := effect.OberonOf(s.active)
		if !ok {
			ob = model.Oberon{EndMult: 2.0}
		}
		s.quantum = math.Floor(s.quantum * (1 + ob.EndMult))
	}

	target := s.levelTarget()
	res := model.LevelResult{
		Level:   s.level,
		Target:  target,
		Quantum: s.quantum,
		Passed:  s.quantum >= target,
	}

	if res.Passed {
		s.isLevelComplete = true
		s.fire(EventPassLevel)
		s.startNewLevel()
	} else {
		s.isGameOver = true
		s.isLevelComplete = false
		s.fire(EventFailLevel)
		res.GameOver = true
	}
	return res, s.flush(), nil
}
