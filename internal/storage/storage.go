// Package storage contains a key-value storage interface.
package storage

import (
	"context"
	"fmt"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = fmt.Errorf("not found")

// ErrTxNested is returned when InTx is called on a transactional storage.
var ErrTxNested = fmt.Errorf("can not run InTx in tx")

// Storage is a persistent key-value substrate.
type Storage interface {
	// InTx runs f against a transactional storage. Writes made through it are committed together
	// when f returns nil and are discarded otherwise.
	InTx(ctx context.Context, f func(s Storage) error) error

	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
	Close() error
}
