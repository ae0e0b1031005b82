package sqlite_repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"lucky_spinner/internal/repository"
	"path/filepath"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "modernc.org/sqlite"
)

const (
	table        = "spinner_state"
	colKey       = "key"
	colValue     = "value"
	colUpdatedAt = "updated_at"

	timeFormat = time.RFC3339Nano
)

const schema = `
CREATE TABLE IF NOT EXISTS spinner_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// Store локальное хранилище в одном файле SQLite
type Store struct {
	sqlDB *sql.DB
}

var _ repository.StateRepository = (*Store)(nil)

// Open открывает (или создаёт) файл базы и таблицу состояния
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// один писатель, чтобы не ловить SQLITE_BUSY
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) Load(ctx context.Context, key string) ([]byte, error) {
	query := sq.Select(colValue).
		From(table).
		Where(sq.Eq{colKey: key})

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var value string
	err = s.sqlDB.QueryRowContext(ctx, sqlStr, args...).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(value), nil
}

func (s *Store) Save(ctx context.Context, key string, value []byte) error {
	return save(ctx, s.sqlDB, key, value)
}

func (s *Store) SaveMany(ctx context.Context, values map[string][]byte) error {
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	for key, value := range values {
		if err := save(ctx, tx, key, value); err != nil {
			return fmt.Errorf("save %s: %w", key, err)
		}
	}
	return tx.Commit()
}

func save(ctx context.Context, db execer, key string, value []byte) error {
	query := sq.Insert(table).
		Columns(colKey, colValue, colUpdatedAt).
		Values(key, string(value), time.Now().UTC().Format(timeFormat)).
		Suffix("ON CONFLICT (" + colKey + ") DO UPDATE SET " +
			colValue + " = excluded." + colValue + ", " +
			colUpdatedAt + " = excluded." + colUpdatedAt)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, sqlStr, args...)
	return err
}
