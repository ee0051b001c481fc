package model

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type SettlementKind string

const (
	SettlementLevelPassed SettlementKind = "level_passed"
	SettlementLevelFailed SettlementKind = "level_failed"
	SettlementGameFailed  SettlementKind = "game_failed"
)

// SettlementFact факт для внешнего расчета, отправляется только для платных сессий
type SettlementFact struct {
	SessionID    string
	Kind         SettlementKind
	Level        int
	FinalQuantum float64
}

// PostLevel5 уровни после пятого расчитываются контрактом по-другому
func (f SettlementFact) PostLevel5() bool {
	return f.Level > 5
}

type Settlement struct {
	ID           int64
	SessionID    string
	SessionKey   string
	Kind         SettlementKind
	Level        int
	PostLevel5   bool
	FinalQuantum int64
	EntryFeeWei  string
	Receipt      string
	CreatedAt    time.Time
}

// SettlementClaims содержимое подписанной квитанции
type SettlementClaims struct {
	jwt.RegisteredClaims
	SessionKey string         `json:"session_key"`
	Kind       SettlementKind `json:"kind"`
	Level      int            `json:"level"`
	PostLevel5 bool           `json:"post_level5"`
}

// Stats агрегированная статистика движка
type Stats struct {
	TotalTurns   int
	TotalSpins   int
	TotalSpent   float64
	TotalEarned  float64
	ReturnRatio  float64
	WindowRatio  float64
	WindowSize   int
	LevelsPassed int
	LevelsFailed int
}
