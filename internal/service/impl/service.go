// Package impl is implementation of service interface.
package impl

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/codec"
	"github.com/gorodgovorit/board/internal/service"
	"github.com/gorodgovorit/board/internal/storage"
)

var log = logrus.WithField("layer", "service")

// srv keeps the whole board state in memory and writes every change through the codec.
// Mutations build the next snapshot from copies of the touched collections and swap it in
// only after it has been saved.
type srv struct {
	mu    sync.Mutex
	c     *codec.Codec
	state *codec.Snapshot

	now   func() time.Time
	newID func() string
}

// New loads the state from s and creates new instance of service.
func New(ctx context.Context, s storage.Storage) (service.Service, error) {
	c := codec.New(s)

	snap, err := c.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	log.WithFields(logrus.Fields{
		"posts":         len(snap.Posts),
		"conversations": len(snap.Conversations),
		"ads":           len(snap.Ads),
	}).Debug("state loaded")

	return newSrv(c, snap), nil
}

func newSrv(c *codec.Codec, snap *codec.Snapshot) *srv {
	return &srv{
		c:     c,
		state: snap,
		now: func() time.Time {
			return time.Now().Truncate(time.Millisecond)
		},
		newID: uuid.NewString,
	}
}

func (s *srv) fork() *codec.Snapshot {
	next := *s.state
	return &next
}

func (s *srv) commit(ctx context.Context, next *codec.Snapshot, partitions ...codec.Partition) error {
	if err := s.c.Save(ctx, next, partitions...); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}

	s.state = next

	return nil
}
