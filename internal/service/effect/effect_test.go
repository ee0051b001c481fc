package effect

import (
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/model"
	"quantum_slots/pkg/rng"
	"testing"
)

type fakeTarget struct {
	states    map[string]*model.SymbolState
	flags     model.Flags
	discount  int
	refreshes int
	inventory []model.Servant
	removed   []string
}

func newFakeTarget(cat *catalog.Catalog) *fakeTarget {
	t := &fakeTarget{states: map[string]*model.SymbolState{}}
	for _, s := range cat.Symbols() {
		t.states[s.ID] = &model.SymbolState{ID: s.ID, CurrentValue: s.BaseValue, CurrentWeight: s.BaseWeight, IsNegative: s.IsNegative}
	}
	return t
}

func (f *fakeTarget) SymbolState(id string) *model.SymbolState { return f.states[id] }
func (f *fakeTarget) Flags() *model.Flags                      { return &f.flags }
func (f *fakeTarget) AddPriceReduction(n int)                  { f.discount += n }
func (f *fakeTarget) RefreshShop()                             { f.refreshes++ }
func (f *fakeTarget) AddToInventory(sv model.Servant)          { f.inventory = append(f.inventory, sv) }
func (f *fakeTarget) RemoveFromActive(id string)               { f.removed = append(f.removed, id) }

func servant(t *testing.T, cat *catalog.Catalog, id string) model.Servant {
	t.Helper()
	sv, ok := cat.Servant(id)
	if !ok {
		t.Fatalf("servant %s not in catalog", id)
	}
	return sv
}

func TestEveryEffectKindHasHandler(t *testing.T) {
	p := NewProcessor(catalog.Default(), rng.NewSeeded(1))
	for _, k := range model.EffectKinds {
		if !p.Handles(k) {
			t.Fatalf("no handler for %s", k)
		}
	}
	for _, sv := range catalog.Default().Servants() {
		if !p.Handles(sv.Effect.Kind()) {
			t.Fatalf("servant %s has unhandled kind %s", sv.ID, sv.Effect.Kind())
		}
	}
}

func TestActivateFlagsAndBoosts(t *testing.T) {
	cat := catalog.Default()
	p := NewProcessor(cat, rng.NewSeeded(1))
	target := newFakeTarget(cat)

	p.Activate(target, servant(t, cat, "bb"))
	p.Activate(target, servant(t, cat, "king_hassan"))
	p.Activate(target, servant(t, cat, "arthur"))
	p.Activate(target, servant(t, cat, "oberon"))
	if !target.flags.QuantumDouble || !target.flags.ImmuneNegative || !target.flags.DisableNegative || !target.flags.Oberon {
		t.Fatalf("flags not set: %+v", target.flags)
	}

	p.Activate(target, servant(t, cat, "enkidu"))
	gil := target.states[catalog.SymbolGilgamesh]
	if gil.CurrentValue != 2000 || gil.CurrentWeight != 2 {
		t.Fatalf("enkidu boost: %+v", gil)
	}

	p.Activate(target, servant(t, cat, "barvan"))
	sol := target.states[catalog.SymbolSolomon]
	if sol.CurrentValue != 500 || sol.CurrentWeight != 0.5 {
		t.Fatalf("barvan reduce: %+v", sol)
	}

	p.Activate(target, servant(t, cat, "reines"))
	if target.discount != 1 {
		t.Fatalf("reines discount: %d", target.discount)
	}

	res := p.Activate(target, servant(t, cat, "karen"))
	if res.AutoPattern == nil || res.AutoPattern.Count != 2 || len(res.AutoPattern.Patterns) != 2 {
		t.Fatalf("karen should queue auto pattern: %+v", res.AutoPattern)
	}
	if res.Consumed {
		t.Fatalf("karen is not one-time")
	}
}

func TestActivateOneShot(t *testing.T) {
	cat := catalog.Default()
	p := NewProcessor(cat, rng.NewSeeded(5))
	target := newFakeTarget(cat)

	res := p.Activate(target, servant(t, cat, "sei_shonagon"))
	if !res.Consumed || target.refreshes != 1 || len(target.removed) != 1 {
		t.Fatalf("sei shonagon: %+v refreshes=%d removed=%v", res, target.refreshes, target.removed)
	}

	res = p.Activate(target, servant(t, cat, "tezcatlipoca"))
	if !res.Consumed || len(res.Drawn) != 1 || res.Drawn[0].BasePrice != 9 {
		t.Fatalf("tezcatlipoca should draw a 9 quartz servant: %+v", res)
	}

	res = p.Activate(target, servant(t, cat, "elizabeth"))
	if len(res.Drawn) != 2 {
		t.Fatalf("elizabeth should draw two servants, got %d", len(res.Drawn))
	}
	if len(target.inventory) != 3 {
		t.Fatalf("expected 3 drawn servants in inventory, got %d", len(target.inventory))
	}
	if target.removed[len(target.removed)-1] != "elizabeth" {
		t.Fatalf("elizabeth should leave the roster")
	}
}

func TestPrice(t *testing.T) {
	cat := catalog.Default()
	tiers := []int{0, 3, 6, 9}
	melusine := []model.Servant{servant(t, cat, "melusine")}

	cases := []struct {
		base     int
		active   []model.Servant
		discount int
		want     int
	}{
		{9, nil, 0, 9},
		{9, melusine, 0, 6},
		{6, melusine, 0, 3},
		{3, melusine, 0, 0},
		{0, melusine, 0, 0},
		{9, melusine, 1, 5},
		{3, nil, 5, 0},
	}
	for _, c := range cases {
		if got := Price(c.base, c.active, c.discount, tiers); got != c.want {
			t.Fatalf("Price(%d, melusine=%v, -%d) = %d, want %d", c.base, len(c.active) > 0, c.discount, got, c.want)
		}
	}
}

func TestPassiveQueries(t *testing.T) {
	cat := catalog.Default()
	active := []model.Servant{
		servant(t, cat, "caster"),
		servant(t, cat, "hokusai"),
		servant(t, cat, "aozaki"),
		servant(t, cat, "lilith"),
		servant(t, cat, "qin_shi_huang"),
		servant(t, cat, "ere"),
		servant(t, cat, "scathach"),
	}

	bonus := Turn(active, model.TurnRule{SaintQuartz: 2, Spins: 3})
	if bonus.SaintQuartz != 2 || bonus.Spins != 1 {
		t.Fatalf("turn bonus %+v", bonus)
	}

	lvl := Level(active)
	if lvl.ExtraRounds != 1 || lvl.ExtraEvents != 1 || lvl.TargetReduction != 0.25 {
		t.Fatalf("level modifiers %+v", lvl)
	}

	mods := SpinModifiers(active, model.Flags{QuantumDouble: true})
	if mods.PatternMultiplier(model.PatternTopV) != 70 || mods.PatternMultiplier(model.PatternHorizontal3) != 9 {
		t.Fatalf("pattern boost not applied: %+v", mods.PatternBoost)
	}
	if !mods.QuantumDouble {
		t.Fatalf("flags not copied")
	}

	aps := AutoPatterns(active)
	if len(aps) != 1 || aps[0].ServantID != "scathach" {
		t.Fatalf("auto patterns %+v", aps)
	}

	if _, ok := OberonOf(active); ok {
		t.Fatalf("no oberon expected")
	}
	ob, ok := OberonOf([]model.Servant{servant(t, cat, "oberon")})
	if !ok || ob.StartMult != -0.5 || ob.EndMult != 2.0 {
		t.Fatalf("oberon params %+v", ob)
	}
}
