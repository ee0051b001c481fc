package settlement

import (
	"context"
	"errors"
	"quantum_slots/internal/model"
	"quantum_slots/pkg/token"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type fakeConfig struct{}

func (fakeConfig) Enabled() bool                { return true }
func (fakeConfig) Secret() []byte               { return []byte("secret") }
func (fakeConfig) ReceiptTTL() time.Duration    { return time.Hour }
func (fakeConfig) EntryFeeETH() decimal.Decimal { return decimal.RequireFromString("0.05") }

type key struct {
	session string
	kind    model.SettlementKind
	level   int
}

type fakeRepo struct {
	rows    map[key]model.Settlement
	nextID  int64
	saveErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: make(map[key]model.Settlement)}
}

func (r *fakeRepo) Save(_ context.Context, st *model.Settlement) (bool, error) {
	if r.saveErr != nil {
		return false, r.saveErr
	}
	k := key{st.SessionID, st.Kind, st.Level}
	if existing, ok := r.rows[k]; ok {
		*st = existing
		return false, nil
	}
	r.nextID++
	st.ID = r.nextID
	st.CreatedAt = time.Unix(1700000000, 0)
	r.rows[k] = *st
	return true, nil
}

func (r *fakeRepo) ListBySession(_ context.Context, id string) ([]model.Settlement, error) {
	var res []model.Settlement
	for k, st := range r.rows {
		if k.session == id {
			res = append(res, st)
		}
	}
	return res, nil
}

type fakeFeed struct {
	published []model.Settlement
	err       error
}

func (f *fakeFeed) Publish(_ context.Context, st model.Settlement) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, st)
	return nil
}

type fakeTx struct {
	calls int
}

func (m *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

func (m *fakeTx) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func TestSessionKey(t *testing.T) {
	got := SessionKey("hello")
	want := "0x1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8"
	if got != want {
		t.Fatalf("SessionKey(hello) = %s", got)
	}
}

func TestEntryFeeWei(t *testing.T) {
	if got := EntryFeeWei(decimal.RequireFromString("0.05")); got != "50000000000000000" {
		t.Fatalf("0.05 ETH = %s wei", got)
	}
	if got := EntryFeeWei(decimal.RequireFromString("1.0000000000000000005")); got != "1000000000000000000" {
		t.Fatalf("sub-wei part must be dropped, got %s", got)
	}
}

func TestSettleRecordsAndPublishes(t *testing.T) {
	repo := newFakeRepo()
	feed := &fakeFeed{}
	tx := &fakeTx{}
	s := NewSettlementService(fakeConfig{}, repo, feed, tx, zap.NewNop())

	st, err := s.Settle(context.Background(), model.SettlementFact{
		SessionID:    "abc",
		Kind:         model.SettlementLevelPassed,
		Level:        6,
		FinalQuantum: 12345678.9,
	})
	if err != nil {
		t.Fatalf("settle returned error: %v", err)
	}
	if st.ID != 1 || !st.PostLevel5 || st.FinalQuantum != 12345678 || st.EntryFeeWei != "50000000000000000" {
		t.Fatalf("unexpected settlement: %+v", st)
	}
	if st.SessionKey != SessionKey("abc") {
		t.Fatalf("session key = %s", st.SessionKey)
	}
	if tx.calls != 1 || len(feed.published) != 1 {
		t.Fatalf("tx calls=%d published=%d", tx.calls, len(feed.published))
	}

	claims, err := token.VerifySettlementReceipt(st.Receipt, []byte("secret"))
	if err != nil {
		t.Fatalf("receipt does not verify: %v", err)
	}
	if claims.SessionKey != st.SessionKey || claims.Level != 6 {
		t.Fatalf("receipt claims: %+v", claims)
	}
}

func TestSettleIsIdempotent(t *testing.T) {
	repo := newFakeRepo()
	feed := &fakeFeed{}
	s := NewSettlementService(fakeConfig{}, repo, feed, &fakeTx{}, zap.NewNop())
	fact := model.SettlementFact{SessionID: "abc", Kind: model.SettlementGameFailed, Level: 2}

	first, err := s.Settle(context.Background(), fact)
	if err != nil {
		t.Fatalf("first settle: %v", err)
	}
	second, err := s.Settle(context.Background(), fact)
	if err != nil {
		t.Fatalf("second settle: %v", err)
	}
	if first.ID != second.ID || len(repo.rows) != 1 {
		t.Fatalf("duplicate settlement stored")
	}
	if len(feed.published) != 1 {
		t.Fatalf("duplicate must not be published again, got %d", len(feed.published))
	}
}

func TestSettlePublishFailureIsNotFatal(t *testing.T) {
	feed := &fakeFeed{err: errors.New("redis down")}
	s := NewSettlementService(fakeConfig{}, newFakeRepo(), feed, &fakeTx{}, zap.NewNop())

	st, err := s.Settle(context.Background(), model.SettlementFact{SessionID: "x", Kind: model.SettlementLevelFailed, Level: 1})
	if err != nil || st == nil {
		t.Fatalf("publish failure must not fail settle: st=%v err=%v", st, err)
	}
}

func TestSettleSaveFailure(t *testing.T) {
	repo := newFakeRepo()
	repo.saveErr = errors.New("db down")
	s := NewSettlementService(fakeConfig{}, repo, nil, &fakeTx{}, zap.NewNop())

	if _, err := s.Settle(context.Background(), model.SettlementFact{SessionID: "x", Kind: model.SettlementLevelFailed, Level: 1}); err == nil {
		t.Fatalf("expected save error")
	}
}

func TestDisabledService(t *testing.T) {
	s := NewDisabledService()
	st, err := s.Settle(context.Background(), model.SettlementFact{SessionID: "x"})
	if st != nil || err != nil {
		t.Fatalf("disabled settle: %v %v", st, err)
	}
	list, err := s.List(context.Background(), "x")
	if err != nil || len(list) != 0 {
		t.Fatalf("disabled list: %v %v", list, err)
	}
}
