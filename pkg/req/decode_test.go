package req

import (
	"strings"
	"testing"
)

type payload struct {
	Index int `json:"event_index"`
}

func TestDecode(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(`{"event_index": 2}`))
	if err != nil {
		t.Fatalf("decode returned error: %v", err)
	}
	if got.Index != 2 {
		t.Fatalf("expected 2, got %d", got.Index)
	}
}

func TestDecodeEmptyBody(t *testing.T) {
	got, err := Decode[payload](strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty body returned error: %v", err)
	}
	if got.Index != 0 {
		t.Fatalf("expected zero value, got %+v", got)
	}
}

func TestDecodeMalformed(t *testing.T) {
	if _, err := Decode[payload](strings.NewReader(`{"event_index": "x"`)); err == nil {
		t.Fatalf("expected error for malformed body")
	}
}
