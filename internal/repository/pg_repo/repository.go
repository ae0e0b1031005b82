package pg_repo

import (
	"context"
	"errors"
	"fmt"
	"lucky_spinner/internal/repository"
	"time"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "spinner_state"
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"
)

const schema = `
CREATE TABLE IF NOT EXISTS spinner_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewStateRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.StateRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// CreateSchema создаёт таблицу состояния, повторный вызов безопасен
func CreateSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	if _, err := dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// Load - значение по ключу, nil если записи нет
func (r *repo) Load(ctx context.Context, key string) ([]byte, error) {
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var value string
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return []byte(value), nil
}

// Save - upsert значения по ключу
func (r *repo) Save(ctx context.Context, key string, value []byte) error {
	query := sq.Insert(table).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, string(value), time.Now()).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " +
			colValue + " = EXCLUDED." + colValue + ", " +
			colUpdatedAt + " = EXCLUDED." + colUpdatedAt).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// SaveMany - все ключи в одной транзакции
func (r *repo) SaveMany(ctx context.Context, values map[string][]byte) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		for key, value := range values {
			if err := r.Save(txCtx, key, value); err != nil {
				return fmt.Errorf("save %s: %w", key, err)
			}
		}
		return nil
	})
}

func (r *repo) Close() error {
	r.dbc.Close()
	return nil
}
