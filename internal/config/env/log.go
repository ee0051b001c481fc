package env

import (
	"quantum_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type logConfig struct {
	LevelValue       string `env:"LOG_LEVEL" envDefault:"info"`
	DevelopmentValue bool   `env:"LOG_DEVELOPMENT" envDefault:"false"`
}

func NewLogConfig() (config.LogConfig, error) {
	var cfg logConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (cfg *logConfig) Level() string {
	return cfg.LevelValue
}

func (cfg *logConfig) Development() bool {
	return cfg.DevelopmentValue
}
