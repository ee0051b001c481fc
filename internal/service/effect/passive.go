package effect

import (
	"quantum_slots/internal/model"
	"quantum_slots/internal/service/slot"
	"sort"
)

// TurnBonus прибавки при выборе хода
type TurnBonus struct {
	SaintQuartz int
	Spins       int
}

// LevelModifiers прибавки, влияющие на уровень
type LevelModifiers struct {
	ExtraRounds     int
	ExtraEvents     int
	TargetReduction float64
}

// SpinModifiers модификаторы расчета спина и авто-фигур
func SpinModifiers(active []model.Servant, flags model.Flags) slot.Modifiers {
	mods := slot.Modifiers{
		QuantumDouble:   flags.QuantumDouble,
		ImmuneNegative:  flags.ImmuneNegative,
		DisableNegative: flags.DisableNegative,
	}
	for _, sv := range active {
		boost, ok := sv.Effect.(model.PatternBoost)
		if !ok {
			continue
		}
		if mods.PatternBoost == nil {
			mods.PatternBoost = make(map[model.PatternType]float64)
		}
		for _, p := range boost.Patterns {
			mods.PatternBoost[p] += boost.Multiplier
		}
	}
	return mods
}

// Turn прибавки кварца и спинов к выбранному ходу
func Turn(active []model.Servant, rule model.TurnRule) TurnBonus {
	var bonus TurnBonus
	for _, sv := range active {
		switch eff := sv.Effect.(type) {
		case model.SaintQuartzDouble:
			bonus.SaintQuartz += int(float64(rule.SaintQuartz) * eff.Multiplier)
		case model.ExtraSpin:
			bonus.Spins += eff.Spins
		}
	}
	return bonus
}

// Level прибавки раундов, событий и снижение цели
func Level(active []model.Servant) LevelModifiers {
	var mods LevelModifiers
	for _, sv := range active {
		switch eff := sv.Effect.(type) {
		case model.ExtraRound:
			mods.ExtraRounds += eff.Rounds
		case model.ExtraEvent:
			mods.ExtraEvents += eff.Events
		case model.TargetReduction:
			mods.TargetReduction += eff.Fraction
		}
	}
	if mods.TargetReduction > 1 {
		mods.TargetReduction = 1
	}
	return mods
}

// OberonOf параметры Оберона из активного состава
func OberonOf(active []model.Servant) (model.Oberon, bool) {
	for _, sv := range active {
		if eff, ok := sv.Effect.(model.Oberon); ok {
			return eff, true
		}
	}
	return model.Oberon{}, false
}

// AutoPatterns очередь авто-фигур раунда в порядке состава
func AutoPatterns(active []model.Servant) []model.QueuedAutoPattern {
	var res []model.QueuedAutoPattern
	for _, sv := range active {
		if eff, ok := sv.Effect.(model.AutoPattern); ok {
			res = append(res, model.QueuedAutoPattern{
				ServantID: sv.ID,
				Patterns:  append([]model.PatternType(nil), eff.Patterns...),
				Count:     eff.Count,
			})
		}
	}
	return res
}

// Price цена найма: ступень вниз за каждый tier-down эффект, затем плоская скидка, не ниже 0.
// Цена вне списка ступеней ступенью не понижается.
func Price(base int, active []model.Servant, flatReduction int, tiers []int) int {
	down := 0
	for _, sv := range active {
		if eff, ok := sv.Effect.(model.PriceReduction); ok {
			down += eff.Tiers
		}
	}

	price := base
	if down > 0 && len(tiers) > 0 {
		sorted := append([]int(nil), tiers...)
		sort.Ints(sorted)
		if idx := sort.SearchInts(sorted, price); idx < len(sorted) && sorted[idx] == price {
			idx -= down
			if idx < 0 {
				idx = 0
			}
			price = sorted[idx]
		}
	}

	price -= flatReduction
	if price < 0 {
		price = 0
	}
	return price
}
