package session

import (
	"context"
	"fmt"
	"quantum_slots/internal/model"
	"quantum_slots/internal/service"
	"strings"
	"sync"
	"testing"
)

// playLevel проходит один уровень и возвращает след всех наблюдаемых состояний
func playLevel(ctx context.Context, s service.GameService) string {
	var b strings.Builder
	record := func(step string, v *model.SessionView, err error) {
		if err != nil {
			fmt.Fprintf(&b, "%s: err=%v\n", step, err)
			return
		}
		st := v.State
		var grid model.Grid
		if st.SlotResults != nil {
			grid = *st.SlotResults
		}
		fmt.Fprintf(&b, "%s: q=%v sq=%d round=%d spins=%d grid=%v shop=%d events=%d\n",
			step, st.Quantum, st.SaintQuartz, st.Round, st.SpinsRemaining, grid, len(st.ShopServants), len(st.Events))
		for _, e := range st.ShopServants {
			fmt.Fprintf(&b, "  shop %s %d\n", e.Servant.ID, e.Price)
		}
		for _, e := range st.Events {
			fmt.Fprintf(&b, "  event %s %s\n", e.Kind, e.SymbolID)
		}
	}

	created, err := s.CreateSession(ctx, model.NewSession{})
	if err != nil {
		return "create: " + err.Error()
	}
	id := created.SessionID
	record("create", created, nil)

	v, err := s.StartLevel(ctx, id)
	record("start", v, err)
	v, err = s.SelectEvent(ctx, id, 0)
	record("event", v, err)
	v, err = s.SelectTurn(ctx, id, model.TurnCheap)
	record("turn", v, err)
	for i := 0; i < 3; i++ {
		sv, err := s.Spin(ctx, id)
		if err != nil {
			record("spin", nil, err)
			continue
		}
		record("spin", &sv.SessionView, nil)
		fmt.Fprintf(&b, "  reward=%v over=%v\n", sv.Spin.Outcome.Reward, sv.IsGameOver)
	}
	lv, err := s.CompleteLevel(ctx, id)
	if err != nil {
		record("complete", nil, err)
	} else {
		record("complete", &lv.SessionView, nil)
		fmt.Fprintf(&b, "  passed=%v\n", lv.Result.Passed)
	}
	return b.String()
}

func TestParallelSessionsAreIndependent(t *testing.T) {
	ctx := context.Background()

	// эталон: одиночный прогон с тем же seed
	want := playLevel(ctx, newService(t, defaultDeps(), &fakeSettler{}))

	const players = 16
	s := newService(t, defaultDeps(), &fakeSettler{})
	got := make([]string, players)

	var wg sync.WaitGroup
	for i := 0; i < players; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = playLevel(ctx, s)
		}(i)
	}
	wg.Wait()

	for i, trace := range got {
		if trace != want {
			t.Fatalf("session %d diverged from solo run:\n got:\n%s\nwant:\n%s", i, trace, want)
		}
	}
	if st := s.Stats(ctx); st.TotalTurns != players {
		t.Fatalf("expected %d turns in stats, got %d", players, st.TotalTurns)
	}
}
