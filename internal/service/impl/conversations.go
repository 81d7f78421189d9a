package impl

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/gorodgovorit/board/internal/codec"
	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/service"
)

func (s *srv) EnsureConversation(ctx context.Context, a, b string) (*entities.Conversation, error) {
	a, b = entities.NormalizeName(a), entities.NormalizeName(b)
	if a == "" || b == "" || a == b {
		return nil, fmt.Errorf("%w: %q and %q", service.ErrInvalidPair, a, b)
	}

	id := entities.ConversationKey(a, b)

	s.mu.Lock()
	defer s.mu.Unlock()

	if c, ok := s.state.Conversations[id]; ok {
		return c.Clone(), nil
	}

	c := &entities.Conversation{
		ID:           id,
		Participants: [2]string{a, b},
		Messages:     []*entities.Message{},
	}

	next := s.fork()
	next.Conversations = copyConversations(s.state.Conversations)
	next.Conversations[id] = c

	if err := s.commit(ctx, next, codec.ConversationsPartition); err != nil {
		return nil, err
	}

	return c.Clone(), nil
}

// SendMessage does not check that from is a participant of the conversation.
func (s *srv) SendMessage(ctx context.Context, conversationID, from, text string) (*entities.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conv, ok := s.state.Conversations[conversationID]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", service.ErrNotFound, conversationID)
	}

	from = entities.NormalizeName(from)
	if from == "" {
		return nil, service.ErrUnauthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", service.ErrInvalidArgument)
	}

	m := &entities.Message{
		ID:        s.newID(),
		From:      from,
		Text:      text,
		CreatedAt: s.now(),
	}

	c := conv.Clone()
	c.Messages = append(c.Messages, m)

	next := s.fork()
	next.Conversations = copyConversations(s.state.Conversations)
	next.Conversations[conversationID] = c

	if err := s.commit(ctx, next, codec.ConversationsPartition); err != nil {
		return nil, err
	}

	mm := *m
	return &mm, nil
}

func (s *srv) GetConversation(_ context.Context, conversationID string) (*entities.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.state.Conversations[conversationID]
	if !ok {
		return nil, fmt.Errorf("%w: conversation %s", service.ErrNotFound, conversationID)
	}

	return c.Clone(), nil
}

// ListConversationsFor returns conversations of identity, most recently active first.
// Conversations without messages go last.
func (s *srv) ListConversationsFor(_ context.Context, identity string) []*entities.Conversation {
	identity = entities.NormalizeName(identity)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.Conversation, 0)
	for _, c := range s.state.Conversations {
		if c.HasParticipant(identity) {
			out = append(out, c.Clone())
		}
	}

	sort.Slice(out, func(i, j int) bool {
		li, lj := out[i].LastMessage(), out[j].LastMessage()

		switch {
		case li == nil && lj == nil:
			return out[i].ID < out[j].ID
		case li == nil:
			return false
		case lj == nil:
			return true
		case li.CreatedAt.Equal(lj.CreatedAt):
			return out[i].ID < out[j].ID
		}

		return li.CreatedAt.After(lj.CreatedAt)
	})

	return out
}

func copyConversations(in map[string]*entities.Conversation) map[string]*entities.Conversation {
	out := make(map[string]*entities.Conversation, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	return out
}
