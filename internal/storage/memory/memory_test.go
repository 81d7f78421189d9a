package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gorodgovorit/board/internal/storage/storagetest"
)

func TestMem(t *testing.T) {
	storagetest.Run(t, New())
}

func TestMem_GetReturnsCopy(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("abc")))
	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(v))
}
