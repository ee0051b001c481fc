package stats_repo

import (
	"math"
	"testing"
)

func TestRecordAndRatios(t *testing.T) {
	r := NewStatsRepository(0)

	r.RecordTurn(3000)
	r.RecordSpin(9000)
	r.RecordSpin(-1500)
	r.RecordLevel(true)
	r.RecordLevel(false)

	st := r.Stats()
	if st.TotalTurns != 1 || st.TotalSpins != 2 {
		t.Fatalf("turns=%d spins=%d", st.TotalTurns, st.TotalSpins)
	}
	if st.TotalSpent != 3000 || st.TotalEarned != 7500 {
		t.Fatalf("spent=%v earned=%v", st.TotalSpent, st.TotalEarned)
	}
	if math.Abs(st.ReturnRatio-2.5) > 1e-9 || math.Abs(st.WindowRatio-2.5) > 1e-9 {
		t.Fatalf("ratio=%v window=%v", st.ReturnRatio, st.WindowRatio)
	}
	if st.LevelsPassed != 1 || st.LevelsFailed != 1 {
		t.Fatalf("passed=%d failed=%d", st.LevelsPassed, st.LevelsFailed)
	}
}

func TestWindowSlides(t *testing.T) {
	r := NewStatsRepository(2)

	r.RecordTurn(1000)
	r.RecordSpin(500)
	r.RecordTurn(1000)

	st := r.Stats()
	if st.WindowSize != 2 {
		t.Fatalf("window should hold 2 entries, got %d", st.WindowSize)
	}
	// в окне: спин 500 и ход 1000
	if math.Abs(st.WindowRatio-0.5) > 1e-9 {
		t.Fatalf("window ratio = %v", st.WindowRatio)
	}
	if math.Abs(st.ReturnRatio-0.25) > 1e-9 {
		t.Fatalf("return ratio = %v", st.ReturnRatio)
	}
}
