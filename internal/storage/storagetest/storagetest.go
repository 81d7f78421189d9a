// Package storagetest contains a conformance suite shared by storage implementations.
package storagetest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorodgovorit/board/internal/storage"
)

var errAbort = errors.New("abort")

var keys = []string{"a", "b", "key", "missing"}

// Run checks that s satisfies the storage contract.
func Run(t *testing.T, s storage.Storage) {
	ctx := context.Background()

	tt := []struct {
		name string
		f    func(t *testing.T)
	}{
		{"get_missing", func(t *testing.T) {
			_, err := s.Get(ctx, "missing")
			require.True(t, errors.Is(err, storage.ErrNotFound))
		}},
		{"set_get", func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "key", []byte("value")))
			v, err := s.Get(ctx, "key")
			require.NoError(t, err)
			require.Equal(t, []byte("value"), v)

			require.NoError(t, s.Set(ctx, "key", []byte("Яма на дороге")))
			v, err = s.Get(ctx, "key")
			require.NoError(t, err)
			require.Equal(t, "Яма на дороге", string(v))
		}},
		{"delete", func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "key", []byte("value")))
			require.NoError(t, s.Delete(ctx, "key"))
			_, err := s.Get(ctx, "key")
			require.True(t, errors.Is(err, storage.ErrNotFound))

			require.NoError(t, s.Delete(ctx, "key"))
		}},
		{"tx_commit", func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "b", []byte("old")))

			require.NoError(t, s.InTx(ctx, func(tx storage.Storage) error {
				if err := tx.Set(ctx, "a", []byte("1")); err != nil {
					return err
				}
				if err := tx.Delete(ctx, "b"); err != nil {
					return err
				}

				v, err := tx.Get(ctx, "a")
				require.NoError(t, err)
				require.Equal(t, []byte("1"), v)

				return nil
			}))

			v, err := s.Get(ctx, "a")
			require.NoError(t, err)
			require.Equal(t, []byte("1"), v)

			_, err = s.Get(ctx, "b")
			require.True(t, errors.Is(err, storage.ErrNotFound))
		}},
		{"tx_rollback", func(t *testing.T) {
			require.NoError(t, s.Set(ctx, "b", []byte("old")))

			err := s.InTx(ctx, func(tx storage.Storage) error {
				require.NoError(t, tx.Set(ctx, "a", []byte("1")))
				require.NoError(t, tx.Set(ctx, "b", []byte("new")))
				return errAbort
			})
			require.True(t, errors.Is(err, errAbort))

			_, err = s.Get(ctx, "a")
			require.True(t, errors.Is(err, storage.ErrNotFound))

			v, err := s.Get(ctx, "b")
			require.NoError(t, err)
			require.Equal(t, []byte("old"), v)
		}},
		{"tx_nested", func(t *testing.T) {
			err := s.InTx(ctx, func(tx storage.Storage) error {
				return tx.InTx(ctx, func(storage.Storage) error { return nil })
			})
			require.True(t, errors.Is(err, storage.ErrTxNested))
		}},
		{"ping", func(t *testing.T) {
			require.NoError(t, s.Ping(ctx))
		}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			for _, k := range keys {
				require.NoError(t, s.Delete(ctx, k))
			}
			tc.f(t)
		})
	}
}
