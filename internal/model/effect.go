package model

type EffectKind string

const (
	EffectQuantumDouble           EffectKind = "quantum_double"
	EffectSymbolBoost             EffectKind = "symbol_boost"
	EffectExtraSpin               EffectKind = "extra_spin"
	EffectAutoPattern             EffectKind = "auto_pattern"
	EffectNegativeSymbolReduce    EffectKind = "negative_symbol_reduce"
	EffectSaintQuartzDouble       EffectKind = "saint_quartz_double"
	EffectPatternBoost            EffectKind = "pattern_boost"
	EffectOberon                  EffectKind = "oberon_effect"
	EffectExtraRound              EffectKind = "extra_round"
	EffectExtraEvent              EffectKind = "extra_event"
	EffectPriceReduction          EffectKind = "price_reduction"
	EffectTargetReduction         EffectKind = "target_reduction"
	EffectRefreshShop             EffectKind = "refresh_shop"
	EffectPermanentPriceReduction EffectKind = "permanent_price_reduction"
	EffectRandomServant           EffectKind = "random_servant"
	EffectRandomServantPrice      EffectKind = "random_servant_price"
	EffectRandomServants          EffectKind = "random_servants"
	EffectImmuneNegative          EffectKind = "immune_negative"
	EffectDisableNegative         EffectKind = "disable_negative"
)

// EffectKinds все известные виды эффектов
var EffectKinds = []EffectKind{
	EffectQuantumDouble, EffectSymbolBoost, EffectExtraSpin, EffectAutoPattern,
	EffectNegativeSymbolReduce, EffectSaintQuartzDouble, EffectPatternBoost, EffectOberon,
	EffectExtraRound, EffectExtraEvent, EffectPriceReduction, EffectTargetReduction,
	EffectRefreshShop, EffectPermanentPriceReduction, EffectRandomServant,
	EffectRandomServantPrice, EffectRandomServants, EffectImmuneNegative, EffectDisableNegative,
}

// OneTime одноразовые эффекты расходуются при активации
func (k EffectKind) OneTime() bool {
	switch k {
	case EffectRefreshShop, EffectRandomServant, EffectRandomServantPrice, EffectRandomServants:
		return true
	}
	return false
}

// Effect закрытый набор вариантов эффекта слуги
type Effect interface {
	Kind() EffectKind
}

type QuantumDouble struct{}

// SymbolBoost множители - прибавки к базе: value += base*ValueMult
type SymbolBoost struct {
	Symbol     string
	ValueMult  float64
	WeightMult float64
}

type ExtraSpin struct {
	Spins int
}

type AutoPattern struct {
	Patterns []PatternType
	Count    int
}

// NegativeSymbolReduce применяется ко всем отрицательным символам
type NegativeSymbolReduce struct {
	ValueMult  float64
	WeightMult float64
}

type SaintQuartzDouble struct {
	Multiplier float64
}

// PatternBoost множитель фигуры становится mult*(1+Multiplier)
type PatternBoost struct {
	Patterns   []PatternType
	Multiplier float64
}

// Oberon квантум *(1+StartMult) в начале раунда, *(1+EndMult) при завершении уровня
type Oberon struct {
	StartMult float64
	EndMult   float64
}

type ExtraRound struct {
	Rounds int
}

type ExtraEvent struct {
	Events int
}

// PriceReduction понижает ступень цены
type PriceReduction struct {
	Tiers int
}

type TargetReduction struct {
	Fraction float64
}

type RefreshShop struct{}

type PermanentPriceReduction struct {
	Amount int
}

type RandomServant struct{}

type RandomServantPrice struct {
	TargetPrice int
}

type RandomServants struct {
	Count int
}

type ImmuneNegative struct{}

type DisableNegative struct{}

func (QuantumDouble) Kind() EffectKind           { return EffectQuantumDouble }
func (SymbolBoost) Kind() EffectKind             { return EffectSymbolBoost }
func (ExtraSpin) Kind() EffectKind               { return EffectExtraSpin }
func (AutoPattern) Kind() EffectKind             { return EffectAutoPattern }
func (NegativeSymbolReduce) Kind() EffectKind    { return EffectNegativeSymbolReduce }
func (SaintQuartzDouble) Kind() EffectKind       { return EffectSaintQuartzDouble }
func (PatternBoost) Kind() EffectKind            { return EffectPatternBoost }
func (Oberon) Kind() EffectKind                  { return EffectOberon }
func (ExtraRound) Kind() EffectKind              { return EffectExtraRound }
func (ExtraEvent) Kind() EffectKind              { return EffectExtraEvent }
func (PriceReduction) Kind() EffectKind          { return EffectPriceReduction }
func (TargetReduction) Kind() EffectKind         { return EffectTargetReduction }
func (RefreshShop) Kind() EffectKind             { return EffectRefreshShop }
func (PermanentPriceReduction) Kind() EffectKind { return EffectPermanentPriceReduction }
func (RandomServant) Kind() EffectKind           { return EffectRandomServant }
func (RandomServantPrice) Kind() EffectKind      { return EffectRandomServantPrice }
func (RandomServants) Kind() EffectKind          { return EffectRandomServants }
func (ImmuneNegative) Kind() EffectKind          { return EffectImmuneNegative }
func (DisableNegative) Kind() EffectKind         { return EffectDisableNegative }
