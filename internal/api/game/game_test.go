package game

import (
	"errors"
	"net/http"
	"net/http/httptest"
	dto "quantum_slots/internal/api/dto/game"
	"quantum_slots/internal/catalog"
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository/session_repo"
	"quantum_slots/internal/repository/stats_repo"
	servGame "quantum_slots/internal/service/game"
	"quantum_slots/internal/service/session"
	"quantum_slots/internal/service/settlement"
	"quantum_slots/pkg/rng"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	serv := session.NewGameService(
		servGame.Deps{Catalog: catalog.Default(), Rules: model.DefaultRules(), NewRNG: rng.Seeded(11)},
		session_repo.NewSessionRepository(),
		stats_repo.NewStatsRepository(0),
		settlement.NewDisabledService(),
		zap.NewNop(),
	)
	h := NewHandler(HandlerDeps{Serv: serv})
	r := chi.NewRouter()
	r.Route("/api", h.Routes)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, path, nil)
	} else {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return v
}

func newSession(t *testing.T, h http.Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/game/new", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("new session: %d %s", rec.Code, rec.Body.String())
	}
	res := decode[dto.StateResponse](t, rec)
	if res.SessionID == "" {
		t.Fatalf("empty session id")
	}
	return res.SessionID
}

func TestNewSessionAndState(t *testing.T) {
	h := newRouter(t)
	id := newSession(t, h)

	rec := do(t, h, http.MethodGet, "/api/game/"+id, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get state: %d %s", rec.Code, rec.Body.String())
	}
	res := decode[dto.StateResponse](t, rec)
	if res.State.Quantum != 10000 || res.State.Level != 1 || len(res.State.ShopServants) != 3 {
		t.Fatalf("unexpected state: %+v", res.State)
	}
	if !strings.Contains(rec.Body.String(), `"saint_quartz":0`) {
		t.Fatalf("expected snake_case keys: %s", rec.Body.String())
	}
}

func TestUnknownSessionIs404(t *testing.T) {
	h := newRouter(t)
	rec := do(t, h, http.MethodPost, "/api/game/missing/slot/spin", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if res := decode[map[string]string](t, rec); res["error"] == "" {
		t.Fatalf("expected error message")
	}
}

func TestBadRequests(t *testing.T) {
	h := newRouter(t)
	id := newSession(t, h)

	cases := []struct {
		path string
		body string
	}{
		{"/api/game/" + id + "/event/select", ""},
		{"/api/game/" + id + "/event/select", `{"event_index": 0}`},
		{"/api/game/" + id + "/turn/select", `{"option": "deluxe"}`},
		{"/api/game/" + id + "/turn/select", `{"option":`},
		{"/api/game/" + id + "/slot/spin", ""},
		{"/api/game/" + id + "/servant/buy", `{"servant_id": "nobody"}`},
		{"/api/game/" + id + "/servant/activate", `{"servant_id": "bb"}`},
		{"/api/game/" + id + "/shop/refresh", ""},
	}
	for _, c := range cases {
		rec := do(t, h, http.MethodPost, c.path, c.body)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s %s: expected 400, got %d %s", c.path, c.body, rec.Code, rec.Body.String())
		}
	}
}

func TestRoundFlow(t *testing.T) {
	h := newRouter(t)
	id := newSession(t, h)
	base := "/api/game/" + id

	rec := do(t, h, http.MethodPost, base+"/level/start", "")
	started := decode[dto.StateResponse](t, rec)
	if rec.Code != http.StatusOK || len(started.State.Events) != 3 {
		t.Fatalf("level start: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, base+"/event/select", `{"event_index": 0}`)
	selected := decode[dto.StateResponse](t, rec)
	if rec.Code != http.StatusOK || selected.State.Round != 1 {
		t.Fatalf("event select: %d %s", rec.Code, rec.Body.String())
	}
	if len(selected.Transitions) != 1 || selected.Transitions[0].To != servGame.PhaseTurnSelect {
		t.Fatalf("transitions: %+v", selected.Transitions)
	}

	rec = do(t, h, http.MethodPost, base+"/turn/select", `{"option": "cheap"}`)
	turn := decode[dto.StateResponse](t, rec)
	if rec.Code != http.StatusOK || turn.State.SpinsRemaining != 3 || turn.State.CurrentTurn == nil {
		t.Fatalf("turn select: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, base+"/slot/spin", "")
	spin := decode[dto.SpinResponse](t, rec)
	if rec.Code != http.StatusOK || spin.SpinsRemaining != 2 || len(spin.SpinResult.Grid) != 3 {
		t.Fatalf("spin: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/api/stats", "")
	stats := decode[dto.StatsResponse](t, rec)
	if stats.TotalTurns != 1 || stats.TotalSpins != 1 {
		t.Fatalf("stats: %+v", stats)
	}
}

func TestCompleteLevelReportAndSettlements(t *testing.T) {
	h := newRouter(t)
	id := newSession(t, h)
	base := "/api/game/" + id

	rec := do(t, h, http.MethodPost, base+"/level/complete", "")
	res := decode[dto.LevelResponse](t, rec)
	if rec.Code != http.StatusOK || !res.IsGameOver || res.LevelResult.Passed || res.Settlement != nil {
		t.Fatalf("complete level: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, base+"/report", "")
	report := decode[dto.ReportResponse](t, rec)
	if rec.Code != http.StatusOK || !report.IsGameOver || report.FinalQuantum != 10000 {
		t.Fatalf("report: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, base+"/settlements", "")
	list := decode[dto.SettlementsResponse](t, rec)
	if rec.Code != http.StatusOK || list.SessionID != id || len(list.Settlements) != 0 {
		t.Fatalf("settlements: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodPost, base+"/level/start", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("finished game must reject level start, got %d", rec.Code)
	}
}

func TestUnexpectedErrorIs500(t *testing.T) {
	h := NewHandler(HandlerDeps{})
	rec := httptest.NewRecorder()
	h.writeError(rec, errors.New("db down"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "db down") {
		t.Fatalf("internal error details leaked")
	}
}
