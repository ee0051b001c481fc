package settlement_repo

import (
	"context"
	"errors"
	"quantum_slots/internal/model"
	"quantum_slots/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table          = "settlements"
	colID          = "id"
	colSessionID   = "session_id"
	colSessionKey  = "session_key"
	colKind        = "kind"
	colLevel       = "level"
	colPostLevel5  = "post_level5"
	colFinal       = "final_quantum"
	colEntryFeeWei = "entry_fee_wei"
	colReceipt     = "receipt"
	colCreatedAt   = "created_at"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewSettlementRepository(dbc *pgxpool.Pool) repository.SettlementRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// Save - записывает факт расчета.
// Повторная запись того же (session_id, kind, level) ничего не меняет, st заполняется сохраненными данными
func (r *repo) Save(ctx context.Context, st *model.Settlement) (bool, error) {
	// Формируем запрос
	query := psql.Insert(table).
		Columns(colSessionID, colSessionKey, colKind, colLevel, colPostLevel5, colFinal, colEntryFeeWei, colReceipt).
		Values(st.SessionID, st.SessionKey, string(st.Kind), st.Level, st.PostLevel5, st.FinalQuantum, st.EntryFeeWei, st.Receipt).
		Suffix("ON CONFLICT (" + colSessionID + ", " + colKind + ", " + colLevel + ") DO NOTHING RETURNING " + colID + ", " + colCreatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	db := r.getter.DefaultTrOrDB(ctx, r.dbc)
	err = db.QueryRow(ctx, sqlStr, args...).Scan(&st.ID, &st.CreatedAt)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, err
	}

	// Конфликт: возвращаем уже сохраненную запись
	existing, err := r.get(ctx, st.SessionID, st.Kind, st.Level)
	if err != nil {
		return false, err
	}
	*st = *existing
	return false, nil
}

// ListBySession - все расчеты сессии в порядке записи
func (r *repo) ListBySession(ctx context.Context, sessionID string) ([]model.Settlement, error) {
	query := selectSettlements().
		Where(sq.Eq{colSessionID: sessionID}).
		OrderBy(colID)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]model.Settlement, 0)
	for rows.Next() {
		st, err := scanSettlement(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *st)
	}
	return res, rows.Err()
}

//---------- ВСПОМОГАТЕЛЬНЫЕ МЕТОДЫ ----------

func (r *repo) get(ctx context.Context, sessionID string, kind model.SettlementKind, level int) (*model.Settlement, error) {
	query := selectSettlements().
		Where(sq.Eq{colSessionID: sessionID, colKind: string(kind), colLevel: level})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	st, err := scanSettlement(r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return st, err
}

func selectSettlements() sq.SelectBuilder {
	return psql.Select(colID, colSessionID, colSessionKey, colKind, colLevel, colPostLevel5,
		colFinal, colEntryFeeWei, colReceipt, colCreatedAt).
		From(table)
}

func scanSettlement(row pgx.Row) (*model.Settlement, error) {
	var (
		st   model.Settlement
		kind string
	)
	err := row.Scan(&st.ID, &st.SessionID, &st.SessionKey, &kind, &st.Level, &st.PostLevel5,
		&st.FinalQuantum, &st.EntryFeeWei, &st.Receipt, &st.CreatedAt)
	if err != nil {
		return nil, err
	}
	st.Kind = model.SettlementKind(kind)
	return &st, nil
}
