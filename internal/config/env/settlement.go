package env

import (
	"errors"
	"fmt"
	"quantum_slots/internal/config"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

type settlementConfig struct {
	EnabledValue bool          `env:"SETTLEMENT_ENABLED" envDefault:"false"`
	SecretValue  string        `env:"SETTLEMENT_SECRET"`
	TTL          time.Duration `env:"SETTLEMENT_RECEIPT_TTL" envDefault:"720h"`
	EntryFee     string        `env:"ENTRY_FEE_ETH" envDefault:"0.05"`

	fee decimal.Decimal
}

func NewSettlementConfig() (config.SettlementConfig, error) {
	var cfg settlementConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	fee, err := decimal.NewFromString(cfg.EntryFee)
	if err != nil {
		return nil, fmt.Errorf("invalid entry fee: %w", err)
	}
	if fee.IsNegative() {
		return nil, errors.New("entry fee must not be negative")
	}
	cfg.fee = fee

	if cfg.EnabledValue && len(cfg.SecretValue) == 0 {
		return nil, errors.New("settlement secret not found")
	}

	return &cfg, nil
}

func (cfg *settlementConfig) Enabled() bool {
	return cfg.EnabledValue
}

func (cfg *settlementConfig) Secret() []byte {
	return []byte(cfg.SecretValue)
}

func (cfg *settlementConfig) ReceiptTTL() time.Duration {
	return cfg.TTL
}

func (cfg *settlementConfig) EntryFeeETH() decimal.Decimal {
	return cfg.fee
}
