package impl

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/codec"
	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/service"
)

func (s *srv) Adopt(ctx context.Context, name string) error {
	name = entities.NormalizeName(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", service.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Retired.Has(name) {
		return fmt.Errorf("%w: %s", service.ErrNameUnavailable, name)
	}

	next := s.fork()
	next.CurrentIdentity = name

	return s.commit(ctx, next, codec.CurrentIdentityPartition)
}

func (s *srv) Retire(ctx context.Context, name string) error {
	name = entities.NormalizeName(name)
	if name == "" {
		return fmt.Errorf("%w: empty name", service.ErrInvalidArgument)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Retired.Has(name) {
		return nil
	}

	next := s.fork()
	next.Retired = s.state.Retired.Clone()
	next.Retired.Add(name)

	return s.commit(ctx, next, codec.RetiredPartition)
}

func (s *srv) Rename(ctx context.Context, oldName, newName string) error {
	oldName, newName = entities.NormalizeName(oldName), entities.NormalizeName(newName)
	if oldName == "" || newName == "" {
		return fmt.Errorf("%w: empty name", service.ErrInvalidArgument)
	}

	if oldName == newName {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Retired.Has(newName) {
		return fmt.Errorf("%w: %s", service.ErrNameUnavailable, newName)
	}

	next := s.fork()
	next.Posts = renamePosts(s.state.Posts, oldName, newName)
	next.Conversations = renameConversations(s.state.Conversations, oldName, newName)
	next.Reactions = renameReactions(s.state.Reactions, oldName, newName)
	next.Retired = s.state.Retired.Clone()
	next.Retired.Add(oldName)
	next.CurrentIdentity = newName

	if err := s.commit(ctx, next,
		codec.PostsPartition,
		codec.ConversationsPartition,
		codec.ReactionsPartition,
		codec.RetiredPartition,
		codec.CurrentIdentityPartition,
	); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"from": oldName, "to": newName}).Info("identity renamed")

	return nil
}

func (s *srv) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.CurrentIdentity == "" {
		return nil
	}

	next := s.fork()
	next.Retired = s.state.Retired.Clone()
	next.Retired.Add(s.state.CurrentIdentity)
	next.CurrentIdentity = ""

	return s.commit(ctx, next, codec.RetiredPartition, codec.CurrentIdentityPartition)
}

func (s *srv) CurrentIdentity(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.CurrentIdentity
}

func (s *srv) IsRetired(_ context.Context, name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Retired.Has(entities.NormalizeName(name))
}

func (s *srv) Theme(_ context.Context) entities.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Theme
}

func (s *srv) SetTheme(ctx context.Context, t entities.Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: unknown theme %q", service.ErrInvalidArgument, t)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.fork()
	next.Theme = t

	return s.commit(ctx, next, codec.ThemePartition)
}

func renamePosts(posts []*entities.Post, oldName, newName string) []*entities.Post {
	out := make([]*entities.Post, len(posts))

	for i, p := range posts {
		if !postMentions(p, oldName) {
			out[i] = p
			continue
		}

		c := p.Clone()
		if c.Author == oldName {
			c.Author = newName
		}
		for _, v := range c.Comments {
			if v.Author == oldName {
				v.Author = newName
			}
		}

		out[i] = c
	}

	return out
}

func postMentions(p *entities.Post, name string) bool {
	if p.Author == name {
		return true
	}
	for _, v := range p.Comments {
		if v.Author == name {
			return true
		}
	}
	return false
}

// renameConversations rewrites participants and senders and re-keys the touched conversations.
// A conversation whose new key is already taken is merged into it by message time.
// A conversation between oldName and newName is kept as is since it would turn into a self-conversation.
func renameConversations(convs map[string]*entities.Conversation, oldName, newName string) map[string]*entities.Conversation {
	ids := make([]string, 0, len(convs))
	for id := range convs {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make(map[string]*entities.Conversation, len(convs))

	for _, id := range ids {
		v := convs[id]

		if !conversationMentions(v, oldName) || (v.HasParticipant(oldName) && v.HasParticipant(newName)) {
			out[id] = mergeConversation(out[id], v)
			continue
		}

		c := v.Clone()
		for i := range c.Participants {
			if c.Participants[i] == oldName {
				c.Participants[i] = newName
			}
		}
		for _, m := range c.Messages {
			if m.From == oldName {
				m.From = newName
			}
		}
		c.ID = entities.ConversationKey(c.Participants[0], c.Participants[1])

		out[c.ID] = mergeConversation(out[c.ID], c)
	}

	return out
}

func conversationMentions(c *entities.Conversation, name string) bool {
	if c.HasParticipant(name) {
		return true
	}
	for _, m := range c.Messages {
		if m.From == name {
			return true
		}
	}
	return false
}

func mergeConversation(dst, src *entities.Conversation) *entities.Conversation {
	if dst == nil {
		return src
	}

	out := dst.Clone()
	out.Messages = append(out.Messages, src.Clone().Messages...)
	sort.SliceStable(out.Messages, func(i, j int) bool {
		return out.Messages[i].CreatedAt.Before(out.Messages[j].CreatedAt)
	})

	return out
}

// renameReactions moves votes of oldName to newName unless newName has already voted on the post.
func renameReactions(reactions map[string]*entities.ReactionSet, oldName, newName string) map[string]*entities.ReactionSet {
	out := make(map[string]*entities.ReactionSet, len(reactions))

	for id, r := range reactions {
		kind := r.Vote(oldName)
		if kind == "" {
			out[id] = r
			continue
		}

		c := r.Clone()
		c.Likes.Remove(oldName)
		c.Dislikes.Remove(oldName)
		if c.Vote(newName) == "" {
			c.Toggle(newName, kind)
		}

		out[id] = c
	}

	return out
}
