package config

import (
	"quantum_slots/internal/model"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type LogConfig interface {
	Level() string
	Development() bool
}

// GameConfig правила игры из файла настройки
type GameConfig interface {
	Rules() model.Rules
}

type SettlementConfig interface {
	Enabled() bool
	Secret() []byte
	ReceiptTTL() time.Duration
	EntryFeeETH() decimal.Decimal
}

type RedisConfig interface {
	Addr() string
	Channel() string
}
