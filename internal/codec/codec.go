// Package codec maps the board state to partitions of the key-value storage and back.
package codec

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/storage"
)

var log = logrus.WithField("layer", "codec")

// Partition is a storage key holding one collection of the state.
type Partition string

// Partition keys are shared with the browser build of the board, so a localStorage dump
// can be copied into the storage as is.
const (
	CurrentIdentityPartition Partition = "og_username"
	ThemePartition           Partition = "og_theme"
	PostsPartition           Partition = "og_posts"
	ReactionsPartition       Partition = "og_reactions"
	ConversationsPartition   Partition = "og_conversations"
	RetiredPartition         Partition = "og_used_names"
	ModeratorPartition       Partition = "og_admin_logged_in"
	AdsPartition             Partition = "og_ads"
)

// Partitions lists every partition.
var Partitions = []Partition{
	CurrentIdentityPartition,
	ThemePartition,
	PostsPartition,
	ReactionsPartition,
	ConversationsPartition,
	RetiredPartition,
	ModeratorPartition,
	AdsPartition,
}

// Snapshot is the whole state of the board.
type Snapshot struct {
	// CurrentIdentity is empty when nobody is logged in.
	CurrentIdentity string
	Theme           entities.Theme
	Posts           []*entities.Post
	Reactions       map[string]*entities.ReactionSet
	Conversations   map[string]*entities.Conversation
	Retired         entities.IdentitySet
	Moderator       bool
	Ads             []*entities.AdBlock
}

// NewSnapshot returns a snapshot with every partition at its default.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Theme:         entities.DefaultTheme,
		Posts:         []*entities.Post{},
		Reactions:     map[string]*entities.ReactionSet{},
		Conversations: map[string]*entities.Conversation{},
		Retired:       entities.IdentitySet{},
		Ads:           []*entities.AdBlock{},
	}
}

// Codec loads and saves snapshots.
type Codec struct {
	s storage.Storage
}

// New creates new instance of Codec.
func New(s storage.Storage) *Codec {
	return &Codec{s: s}
}

// Load reads every partition. A missing or malformed partition leaves its default in place;
// only storage failures are returned.
func (c *Codec) Load(ctx context.Context) (*Snapshot, error) {
	snap := NewSnapshot()

	for _, p := range Partitions {
		data, err := c.s.Get(ctx, string(p))
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load %s: %w", p, err)
		}

		if err := decode(p, data, snap); err != nil {
			log.WithField("partition", p).WithError(err).Warn("malformed partition, using default")
		}
	}

	return snap, nil
}

// Save writes the given partitions of snap. Several partitions are written in one transaction.
func (c *Codec) Save(ctx context.Context, snap *Snapshot, partitions ...Partition) error {
	switch len(partitions) {
	case 0:
		return nil
	case 1:
		return write(ctx, c.s, snap, partitions[0])
	}

	return c.s.InTx(ctx, func(s storage.Storage) error {
		for _, p := range partitions {
			if err := write(ctx, s, snap, p); err != nil {
				return err
			}
		}
		return nil
	})
}

func write(ctx context.Context, s storage.Storage, snap *Snapshot, p Partition) error {
	data, err := encode(p, snap)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", p, err)
	}

	if data == nil {
		if err := s.Delete(ctx, string(p)); err != nil {
			return fmt.Errorf("failed to delete %s: %w", p, err)
		}
		return nil
	}

	if err := s.Set(ctx, string(p), data); err != nil {
		return fmt.Errorf("failed to save %s: %w", p, err)
	}

	return nil
}

// encode returns nil data for partitions which are absent in the storage.
func encode(p Partition, snap *Snapshot) ([]byte, error) {
	switch p {
	case CurrentIdentityPartition:
		if snap.CurrentIdentity == "" {
			return nil, nil
		}
		return []byte(snap.CurrentIdentity), nil
	case ThemePartition:
		return []byte(snap.Theme), nil
	case PostsPartition:
		return EncodePosts(snap.Posts)
	case ReactionsPartition:
		return EncodeReactions(snap.Reactions)
	case ConversationsPartition:
		return EncodeConversations(snap.Conversations)
	case RetiredPartition:
		return EncodeIdentitySet(snap.Retired)
	case ModeratorPartition:
		if !snap.Moderator {
			return nil, nil
		}
		return []byte("true"), nil
	case AdsPartition:
		return EncodeAds(snap.Ads)
	}

	return nil, fmt.Errorf("unknown partition %s", p)
}

func decode(p Partition, data []byte, snap *Snapshot) error {
	var err error

	switch p {
	case CurrentIdentityPartition:
		snap.CurrentIdentity = string(data)
	case ThemePartition:
		if t := entities.Theme(data); t.Valid() {
			snap.Theme = t
		} else {
			err = fmt.Errorf("unknown theme %q", data)
		}
	case PostsPartition:
		var v []*entities.Post
		if v, err = DecodePosts(data); err == nil {
			snap.Posts = v
		}
	case ReactionsPartition:
		var v map[string]*entities.ReactionSet
		if v, err = DecodeReactions(data); err == nil {
			snap.Reactions = v
		}
	case ConversationsPartition:
		var v map[string]*entities.Conversation
		if v, err = DecodeConversations(data); err == nil {
			snap.Conversations = v
		}
	case RetiredPartition:
		var v entities.IdentitySet
		if v, err = DecodeIdentitySet(data); err == nil {
			snap.Retired = v
		}
	case ModeratorPartition:
		snap.Moderator = string(data) == "true"
	case AdsPartition:
		var v []*entities.AdBlock
		if v, err = DecodeAds(data); err == nil {
			snap.Ads = v
		}
	default:
		err = fmt.Errorf("unknown partition %s", p)
	}

	return err
}
