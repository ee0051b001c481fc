package settlement_feed_repo

import (
	"quantum_slots/internal/model"
	"testing"
	"time"
)

func TestMessageEncoding(t *testing.T) {
	st := model.Settlement{
		ID:           4,
		SessionID:    "abc",
		SessionKey:   "0x01",
		Kind:         model.SettlementLevelPassed,
		Level:        6,
		PostLevel5:   true,
		FinalQuantum: 12000000,
		EntryFeeWei:  "50000000000000000",
		Receipt:      "token",
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	payload, err := json.Marshal(toMessage(st))
	if err != nil {
		t.Fatalf("marshal returned error: %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("unmarshal returned error: %v", err)
	}
	if got["kind"] != "level_passed" || got["post_level5"] != true || got["created_at"] != "2026-01-02T03:04:05Z" {
		t.Fatalf("unexpected message: %s", payload)
	}
	if got["entry_fee_wei"] != "50000000000000000" {
		t.Fatalf("fee must stay a decimal string: %v", got["entry_fee_wei"])
	}
}
