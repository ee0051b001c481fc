package settlement_feed_repo

import (
	"context"
	"fmt"
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// message формат сообщения в канале расчетов
type message struct {
	ID           int64  `json:"id"`
	SessionID    string `json:"session_id"`
	SessionKey   string `json:"session_key"`
	Kind         string `json:"kind"`
	Level        int    `json:"level"`
	PostLevel5   bool   `json:"post_level5"`
	FinalQuantum int64  `json:"final_quantum"`
	EntryFeeWei  string `json:"entry_fee_wei"`
	Receipt      string `json:"receipt"`
	CreatedAt    string `json:"created_at"`
}

type repo struct {
	rdb     redis.UniversalClient
	channel string
}

func NewSettlementFeed(rdb redis.UniversalClient, channel string) repository.SettlementFeed {
	return &repo{
		rdb:     rdb,
		channel: channel,
	}
}

// Publish - отправляет запись расчета подписчикам канала
func (r *repo) Publish(ctx context.Context, st model.Settlement) error {
	payload, err := json.Marshal(toMessage(st))
	if err != nil {
		return err
	}
	if err := r.rdb.Publish(ctx, r.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", r.channel, err)
	}
	return nil
}

func toMessage(st model.Settlement) message {
	return message{
		ID:           st.ID,
		SessionID:    st.SessionID,
		SessionKey:   st.SessionKey,
		Kind:         string(st.Kind),
		Level:        st.Level,
		PostLevel5:   st.PostLevel5,
		FinalQuantum: st.FinalQuantum,
		EntryFeeWei:  st.EntryFeeWei,
		Receipt:      st.Receipt,
		CreatedAt:    st.CreatedAt.UTC().Format(time.RFC3339),
	}
}
