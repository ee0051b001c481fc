package effect

import (
	"math"
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/model"
	"quantum_slots/pkg/rng"
)

// Target состояние сессии, которое меняют эффекты при активации
type Target interface {
	SymbolState(id string) *model.SymbolState
	Flags() *model.Flags
	AddPriceReduction(n int)
	RefreshShop()
	AddToInventory(sv model.Servant)
	RemoveFromActive(id string)
}

// Activation итог активации слуги
type Activation struct {
	// Consumed одноразовый слуга убран из активного состава
	Consumed bool
	// Drawn слуги, добавленные в инвентарь
	Drawn []model.Servant
	// AutoPattern авто-фигура для очереди текущего раунда
	AutoPattern *model.QueuedAutoPattern
}

type handler func(t Target, sv model.Servant) Activation

// Processor диспетчер эффектов по виду
type Processor struct {
	cat      *catalog.Catalog
	rng      rng.Source
	handlers map[model.EffectKind]handler
}

func NewProcessor(cat *catalog.Catalog, src rng.Source) *Processor {
	p := &Processor{cat: cat, rng: src}

	// Пассивные эффекты читаются в момент срабатывания, при активации ничего не делают
	passive := func(Target, model.Servant) Activation { return Activation{} }

	p.handlers = map[model.EffectKind]handler{
		model.EffectQuantumDouble:           p.setFlag(func(f *model.Flags) { f.QuantumDouble = true }),
		model.EffectImmuneNegative:          p.setFlag(func(f *model.Flags) { f.ImmuneNegative = true }),
		model.EffectDisableNegative:         p.setFlag(func(f *model.Flags) { f.DisableNegative = true }),
		model.EffectOberon:                  p.setFlag(func(f *model.Flags) { f.Oberon = true }),
		model.EffectSymbolBoost:             p.symbolBoost,
		model.EffectNegativeSymbolReduce:    p.negativeReduce,
		model.EffectPermanentPriceReduction: p.permanentDiscount,
		model.EffectAutoPattern:             p.queueAutoPattern,
		model.EffectRefreshShop:             p.refreshShop,
		model.EffectRandomServant:           p.drawAny,
		model.EffectRandomServantPrice:      p.drawByPrice,
		model.EffectRandomServants:          p.drawMany,
		model.EffectExtraSpin:               passive,
		model.EffectSaintQuartzDouble:       passive,
		model.EffectPatternBoost:            passive,
		model.EffectExtraRound:              passive,
		model.EffectExtraEvent:              passive,
		model.EffectPriceReduction:          passive,
		model.EffectTargetReduction:         passive,
	}
	return p
}

// Handles есть ли обработчик для вида эффекта
func (p *Processor) Handles(kind model.EffectKind) bool {
	_, ok := p.handlers[kind]
	return ok
}

// Activate применяет эффект активации. Слуга уже должен быть в активном составе.
func (p *Processor) Activate(t Target, sv model.Servant) Activation {
	if sv.Effect == nil {
		return Activation{}
	}
	h, ok := p.handlers[sv.Effect.Kind()]
	if !ok {
		return Activation{}
	}
	return h(t, sv)
}

//---------- ОБРАБОТЧИКИ ----------

func (p *Processor) setFlag(set func(*model.Flags)) handler {
	return func(t Target, _ model.Servant) Activation {
		set(t.Flags())
		return Activation{}
	}
}

func (p *Processor) symbolBoost(t Target, sv model.Servant) Activation {
	eff := sv.Effect.(model.SymbolBoost)
	st := t.SymbolState(eff.Symbol)
	base, ok := p.cat.Symbol(eff.Symbol)
	if st == nil || !ok {
		return Activation{}
	}
	st.CurrentValue += base.BaseValue * eff.ValueMult
	st.CurrentWeight += base.BaseWeight * eff.WeightMult
	return Activation{}
}

// negativeReduce масштабирует текущие значения отрицательных символов, не ниже нуля
func (p *Processor) negativeReduce(t Target, sv model.Servant) Activation {
	eff := sv.Effect.(model.NegativeSymbolReduce)
	for _, sym := range p.cat.Symbols() {
		if !sym.IsNegative {
			continue
		}
		st := t.SymbolState(sym.ID)
		if st == nil {
			continue
		}
		st.CurrentValue = math.Max(0, st.CurrentValue*(1+eff.ValueMult))
		st.CurrentWeight = math.Max(0, st.CurrentWeight*(1+eff.WeightMult))
	}
	return Activation{}
}

func (p *Processor) permanentDiscount(t Target, sv model.Servant) Activation {
	eff := sv.Effect.(model.PermanentPriceReduction)
	t.AddPriceReduction(eff.Amount)
	return Activation{}
}

func (p *Processor) queueAutoPattern(_ Target, sv model.Servant) Activation {
	eff := sv.Effect.(model.AutoPattern)
	return Activation{AutoPattern: &model.QueuedAutoPattern{
		ServantID: sv.ID,
		Patterns:  append([]model.PatternType(nil), eff.Patterns...),
		Count:     eff.Count,
	}}
}

func (p *Processor) refreshShop(t Target, sv model.Servant) Activation {
	t.RefreshShop()
	t.RemoveFromActive(sv.ID)
	return Activation{Consumed: true}
}

func (p *Processor) drawAny(t Target, sv model.Servant) Activation {
	return p.draw(t, sv, p.cat.Servants(), 1)
}

func (p *Processor) drawByPrice(t Target, sv model.Servant) Activation {
	eff := sv.Effect.(model.RandomServantPrice)
	return p.draw(t, sv, p.cat.ServantsByPrice(eff.TargetPrice), 1)
}

func (p *Processor) drawMany(t Target, sv model.Servant) Activation {
	eff := sv.Effect.(model.RandomServants)
	return p.draw(t, sv, p.cat.Servants(), eff.Count)
}

// draw случайные слуги из пула в инвентарь, затем одноразовый слуга уходит из состава
func (p *Processor) draw(t Target, sv model.Servant, pool []model.Servant, n int) Activation {
	res := Activation{Consumed: true}
	if len(pool) > 0 {
		for i := 0; i < n; i++ {
			drawn := pool[p.rng.IntN(len(pool))]
			t.AddToInventory(drawn)
			res.Drawn = append(res.Drawn, drawn)
		}
	}
	t.RemoveFromActive(sv.ID)
	return res
}
