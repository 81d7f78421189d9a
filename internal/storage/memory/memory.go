// Package memory is an in-memory implementation of storage interface.
// It is not persistent and is meant for tests and ephemeral runs.
package memory

import (
	"context"
	"sync"

	"github.com/gorodgovorit/board/internal/storage"
)

type mem struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New creates new instance of in-memory storage.
func New() storage.Storage {
	return &mem{
		data: make(map[string][]byte),
	}
}

func (s *mem) InTx(ctx context.Context, f func(s storage.Storage) error) error {
	t := &tx{
		parent: s,
		writes: make(map[string][]byte),
	}

	if err := f(t); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for k, v := range t.writes {
		if v == nil {
			delete(s.data, k)
			continue
		}
		s.data[k] = v
	}

	return nil
}

func (s *mem) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return append([]byte(nil), v...), nil
}

func (s *mem) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte{}, value...)

	return nil
}

func (s *mem) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *mem) Ping(_ context.Context) error {
	return nil
}

func (s *mem) Close() error {
	return nil
}

// tx stages writes; a nil value marks a deletion.
type tx struct {
	parent *mem
	writes map[string][]byte
}

func (t *tx) InTx(_ context.Context, _ func(s storage.Storage) error) error {
	return storage.ErrTxNested
}

func (t *tx) Get(ctx context.Context, key string) ([]byte, error) {
	if v, ok := t.writes[key]; ok {
		if v == nil {
			return nil, storage.ErrNotFound
		}
		return append([]byte(nil), v...), nil
	}

	return t.parent.Get(ctx, key)
}

func (t *tx) Set(_ context.Context, key string, value []byte) error {
	t.writes[key] = append([]byte{}, value...)
	return nil
}

func (t *tx) Delete(_ context.Context, key string) error {
	t.writes[key] = nil
	return nil
}

func (t *tx) Ping(ctx context.Context) error {
	return t.parent.Ping(ctx)
}

func (t *tx) Close() error {
	return nil
}
