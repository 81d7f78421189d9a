// Package pebbledb is a local on-disk implementation of storage interface.
package pebbledb

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/cockroachdb/pebble"
	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/storage"
)

var log = logrus.WithField("layer", "storage").WithField("package", "pebbledb")

const pingKey = "__ping__"

type db struct {
	db *pebble.DB
}

// Open opens (or creates) a pebble database in the given directory.
func Open(path string) (storage.Storage, error) {
	p, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble at %s: %w", path, err)
	}

	log.WithField("path", path).Info("pebble opened")

	return db{db: p}, nil
}

func (s db) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	b := s.db.NewIndexedBatch()
	defer func() {
		if err := b.Close(); err != nil {
			log.WithError(err).Error("failed to close batch")
		}
	}()

	if err := f(batch{b: b}); err != nil {
		return err
	}

	if err := b.Commit(pebble.Sync); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}

	return nil
}

func (s db) Get(_ context.Context, key string) ([]byte, error) {
	return get(s.db.Get, key)
}

func (s db) Set(_ context.Context, key string, value []byte) error {
	if err := s.db.Set([]byte(key), value, pebble.Sync); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (s db) Delete(_ context.Context, key string) error {
	if err := s.db.Delete([]byte(key), pebble.Sync); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (s db) Ping(ctx context.Context) error {
	if _, err := s.Get(ctx, pingKey); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	return nil
}

func (s db) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("failed to close pebble: %w", err)
	}

	log.Info("pebble closed")

	return nil
}

type batch struct {
	b *pebble.Batch
}

func (s batch) InTx(_ context.Context, _ func(s storage.Storage) error) error {
	return storage.ErrTxNested
}

func (s batch) Get(_ context.Context, key string) ([]byte, error) {
	return get(s.b.Get, key)
}

func (s batch) Set(_ context.Context, key string, value []byte) error {
	if err := s.b.Set([]byte(key), value, nil); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (s batch) Delete(_ context.Context, key string) error {
	if err := s.b.Delete([]byte(key), nil); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	return nil
}

func (s batch) Ping(_ context.Context) error {
	return nil
}

func (s batch) Close() error {
	return nil
}

type getter func(key []byte) ([]byte, io.Closer, error)

func get(f getter, key string) ([]byte, error) {
	v, closer, err := f([]byte(key))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer closer.Close()

	// value is only valid until closer is closed
	return append([]byte(nil), v...), nil
}
