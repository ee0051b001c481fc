package catalog

import (
	"errors"
	"fmt"
	"quantum_slots/internal/model"
)

var (
	ErrEmptyCatalog      = errors.New("catalog: no symbols or servants")
	ErrDuplicateID       = errors.New("catalog: duplicate id")
	ErrUnknownSymbol     = errors.New("catalog: unknown symbol")
	ErrMissingEffect     = errors.New("catalog: servant without effect")
	ErrNoPositiveSymbols = errors.New("catalog: no non-negative symbols")
)

// Catalog неизменяемые таблицы символов и слуг.
// Создается один раз при старте и передается явно.
type Catalog struct {
	symbols   []model.Symbol
	symbolIdx map[string]int
	servants  []model.Servant
	servIdx   map[string]int
}

// New проверяет таблицы и строит индексы
func New(symbols []model.Symbol, servants []model.Servant) (*Catalog, error) {
	if len(symbols) == 0 || len(servants) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		symbols:   append([]model.Symbol(nil), symbols...),
		symbolIdx: make(map[string]int, len(symbols)),
		servants:  append([]model.Servant(nil), servants...),
		servIdx:   make(map[string]int, len(servants)),
	}

	positive := 0
	for i, s := range c.symbols {
		if _, ok := c.symbolIdx[s.ID]; ok {
			return nil, fmt.Errorf("%w: symbol %q", ErrDuplicateID, s.ID)
		}
		c.symbolIdx[s.ID] = i
		if !s.IsNegative {
			positive++
		}
	}
	if positive == 0 {
		return nil, ErrNoPositiveSymbols
	}

	for i, sv := range c.servants {
		if _, ok := c.servIdx[sv.ID]; ok {
			return nil, fmt.Errorf("%w: servant %q", ErrDuplicateID, sv.ID)
		}
		if sv.Effect == nil {
			return nil, fmt.Errorf("%w: %q", ErrMissingEffect, sv.ID)
		}
		if boost, ok := sv.Effect.(model.SymbolBoost); ok {
			if _, known := c.symbolIdx[boost.Symbol]; !known {
				return nil, fmt.Errorf("%w: %q boosts %q", ErrUnknownSymbol, sv.ID, boost.Symbol)
			}
		}
		c.servIdx[sv.ID] = i
	}

	return c, nil
}

// Default встроенные таблицы
func Default() *Catalog {
	c, err := New(DefaultSymbols(), DefaultServants())
	if err != nil {
		panic("default catalog is invalid: " + err.Error())
	}
	return c
}

// WithOverrides копия каталога с переопределенными базовыми значениями символов
func (c *Catalog) WithOverrides(overrides map[string]model.SymbolOverride) (*Catalog, error) {
	if len(overrides) == 0 {
		return c, nil
	}
	symbols := c.Symbols()
	for id, o := range overrides {
		i, ok := c.symbolIdx[id]
		if !ok {
			return nil, fmt.Errorf("%w: override %q", ErrUnknownSymbol, id)
		}
		if o.BaseValue != nil {
			symbols[i].BaseValue = *o.BaseValue
		}
		if o.BaseWeight != nil {
			symbols[i].BaseWeight = *o.BaseWeight
		}
	}
	return New(symbols, c.servants)
}

// Symbols копия таблицы символов в порядке объявления
func (c *Catalog) Symbols() []model.Symbol {
	return append([]model.Symbol(nil), c.symbols...)
}

func (c *Catalog) Symbol(id string) (model.Symbol, bool) {
	i, ok := c.symbolIdx[id]
	if !ok {
		return model.Symbol{}, false
	}
	return c.symbols[i], true
}

// NonNegativeSymbols символы, участвующие в событиях
func (c *Catalog) NonNegativeSymbols() []model.Symbol {
	res := make([]model.Symbol, 0, len(c.symbols))
	for _, s := range c.symbols {
		if !s.IsNegative {
			res = append(res, s)
		}
	}
	return res
}

func (c *Catalog) Servants() []model.Servant {
	return append([]model.Servant(nil), c.servants...)
}

func (c *Catalog) Servant(id string) (model.Servant, bool) {
	i, ok := c.servIdx[id]
	if !ok {
		return model.Servant{}, false
	}
	return c.servants[i], true
}

// ServantsByPrice слуги с заданной базовой ценой
func (c *Catalog) ServantsByPrice(price int) []model.Servant {
	var res []model.Servant
	for _, sv := range c.servants {
		if sv.BasePrice == price {
			res = append(res, sv)
		}
	}
	return res
}
