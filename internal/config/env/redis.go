package env

import (
	"errors"
	"quantum_slots/internal/config"

	"github.com/caarlos0/env/v11"
)

type redisConfig struct {
	AddrValue    string `env:"REDIS_ADDR"`
	ChannelValue string `env:"REDIS_CHANNEL" envDefault:"quantum_slots.settlements"`
}

func NewRedisConfig() (config.RedisConfig, error) {
	var cfg redisConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if len(cfg.AddrValue) == 0 {
		return nil, errors.New("redis addr not found")
	}
	return &cfg, nil
}

func (cfg *redisConfig) Addr() string {
	return cfg.AddrValue
}

func (cfg *redisConfig) Channel() string {
	return cfg.ChannelValue
}
