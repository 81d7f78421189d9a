// Package postgres is implementation of storage interface.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "postgres")

type pg struct {
	ext sqlx.ExtContext
}

type kvDTO struct {
	Key   string `db:"key"`
	Value []byte `db:"value"`
}

// New creates new instance of pg.
func New(db *sql.DB) storage.Storage {
	return pg{
		ext: sqlx.NewDb(db, "postgres"),
	}
}

func (s pg) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return storage.ErrTxNested
	}

	tx, err := db.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return fmt.Errorf("failed to create tx: %w", err)
	}

	if err := f(pg{ext: tx}); err != nil {
		if err := tx.Rollback(); err != nil {
			log.WithError(err).Error("failed to rollback tx")
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit tx: %w", err)
	}

	return nil
}

func (s pg) Get(ctx context.Context, key string) ([]byte, error) {
	var v kvDTO

	if err := sqlx.GetContext(ctx, s.ext, &v, `SELECT key, value FROM kv WHERE key = $1`, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", err)
	}

	return v.Value, nil
}

func (s pg) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO kv(key, value) VALUES(:key, :value)
			ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=now()
		`, kvDTO{Key: key, Value: value},
	); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Delete(ctx context.Context, key string) error {
	if _, err := s.ext.ExecContext(ctx, `DELETE FROM kv WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to exec: %w", err)
	}

	return nil
}

func (s pg) Ping(ctx context.Context) error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return nil
	}

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping postgres: %w", err)
	}

	return nil
}

func (s pg) Close() error {
	db, ok := s.ext.(*sqlx.DB)
	if !ok {
		return nil
	}

	return db.Close()
}
