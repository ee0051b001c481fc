package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"quantum_slots/internal/config"
	"quantum_slots/internal/model"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

type gamePath struct {
	Path string `env:"GAME_CONFIG_PATH" envDefault:"config.yaml"`
}

// rawTurn ход в файле настройки
type rawTurn struct {
	CostPerLevel *float64 `yaml:"cost_per_level"`
	Spins        *int     `yaml:"spins"`
	SaintQuartz  *int     `yaml:"saint_quartz"`
}

type rawSymbol struct {
	BaseValue  *float64 `yaml:"base_value"`
	BaseWeight *float64 `yaml:"base_weight"`
}

// rawGame файл настройки: отсутствующие поля берутся из правил по умолчанию
type rawGame struct {
	StartingQuantum    *float64             `yaml:"starting_quantum"`
	BaseRounds         *int                 `yaml:"base_rounds"`
	EventsPerLevel     *int                 `yaml:"events_per_level"`
	Turns              map[string]rawTurn   `yaml:"turns"`
	LevelTargets       []float64            `yaml:"level_targets"`
	TargetGrowth       *float64             `yaml:"target_growth"`
	MaxActiveServants  *int                 `yaml:"max_active_servants"`
	ShopSize           *int                 `yaml:"shop_size"`
	RefreshCost        *int                 `yaml:"refresh_cost"`
	PriceTiers         []int                `yaml:"price_tiers"`
	FullBoardEventMode *string              `yaml:"full_board_event_mode"`
	Symbols            map[string]rawSymbol `yaml:"symbols"`
}

type gameConfig struct {
	rules model.Rules
}

// NewGameConfig правила из файла GAME_CONFIG_PATH
func NewGameConfig() (config.GameConfig, error) {
	var p gamePath
	if err := env.Parse(&p); err != nil {
		return nil, err
	}
	return NewGameConfigFromYAML(p.Path)
}

// NewGameConfigFromYAML читает правила из YAML. Нет файла - правила по умолчанию
func NewGameConfigFromYAML(path string) (config.GameConfig, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &gameConfig{rules: model.DefaultRules()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read game config: %w", err)
	}
	return parseGameConfig(data)
}

func parseGameConfig(data []byte) (config.GameConfig, error) {
	var raw rawGame
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse game config: %w", err)
	}

	rules := mergeRules(model.DefaultRules(), raw)
	if err := validateRules(rules); err != nil {
		return nil, err
	}
	return &gameConfig{rules: rules}, nil
}

func (cfg *gameConfig) Rules() model.Rules {
	return cfg.rules
}

//---------- ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ----------

func mergeRules(r model.Rules, raw rawGame) model.Rules {
	setFloat(&r.StartingQuantum, raw.StartingQuantum)
	setInt(&r.BaseRounds, raw.BaseRounds)
	setInt(&r.EventsPerLevel, raw.EventsPerLevel)
	setFloat(&r.TargetGrowth, raw.TargetGrowth)
	setInt(&r.MaxActiveServants, raw.MaxActiveServants)
	setInt(&r.ShopSize, raw.ShopSize)
	setInt(&r.RefreshCost, raw.RefreshCost)
	if len(raw.LevelTargets) > 0 {
		r.LevelTargets = raw.LevelTargets
	}
	if len(raw.PriceTiers) > 0 {
		r.PriceTiers = raw.PriceTiers
	}
	if raw.FullBoardEventMode != nil {
		r.FullBoardEventMode = model.FullBoardMode(*raw.FullBoardEventMode)
	}

	for name, t := range raw.Turns {
		opt := model.TurnOption(name)
		rule := r.Turns[opt]
		setFloat(&rule.CostPerLevel, t.CostPerLevel)
		setInt(&rule.Spins, t.Spins)
		setInt(&rule.SaintQuartz, t.SaintQuartz)
		r.Turns[opt] = rule
	}

	if len(raw.Symbols) > 0 {
		r.SymbolOverrides = make(map[string]model.SymbolOverride, len(raw.Symbols))
		for id, s := range raw.Symbols {
			r.SymbolOverrides[id] = model.SymbolOverride{BaseValue: s.BaseValue, BaseWeight: s.BaseWeight}
		}
	}
	return r
}

func validateRules(r model.Rules) error {
	switch {
	case r.StartingQuantum < 0:
		return errors.New("starting_quantum must not be negative")
	case r.BaseRounds <= 0:
		return errors.New("base_rounds must be positive")
	case r.EventsPerLevel < 0:
		return errors.New("events_per_level must not be negative")
	case len(r.LevelTargets) == 0:
		return errors.New("level_targets must not be empty")
	case r.TargetGrowth <= 0:
		return errors.New("target_growth must be positive")
	case r.MaxActiveServants <= 0:
		return errors.New("max_active_servants must be positive")
	case r.ShopSize <= 0:
		return errors.New("shop_size must be positive")
	case r.RefreshCost < 0:
		return errors.New("refresh_cost must not be negative")
	}
	if r.FullBoardEventMode != model.FullBoardImmediate && r.FullBoardEventMode != model.FullBoardDeferred {
		return fmt.Errorf("unknown full_board_event_mode %q", r.FullBoardEventMode)
	}
	for opt, t := range r.Turns {
		if t.CostPerLevel < 0 || t.Spins <= 0 || t.SaintQuartz < 0 {
			return fmt.Errorf("invalid turn option %q", opt)
		}
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
