// Package entities contains main entities of the board.
package entities

import (
	"sort"
	"strings"
	"time"
)

// City is stamped on every post.
const City = "Чебоксары"

// Category ...
type Category string

const (
	// ProblemCategory ...
	ProblemCategory Category = "problem"
	// IdeaCategory ...
	IdeaCategory Category = "idea"
	// PraiseCategory ...
	PraiseCategory Category = "praise"
	// OtherCategory ...
	OtherCategory Category = "other"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case ProblemCategory, IdeaCategory, PraiseCategory, OtherCategory:
		return true
	}
	return false
}

// Label returns the human readable category name.
func (c Category) Label() string {
	switch c {
	case ProblemCategory:
		return "Проблема"
	case IdeaCategory:
		return "Идея / предложение"
	case PraiseCategory:
		return "Благодарность"
	default:
		return "Другое"
	}
}

// PostStatus is a moderation status of a post.
type PostStatus string

const (
	// OpenStatus ...
	OpenStatus PostStatus = "open"
	// DoneStatus ...
	DoneStatus PostStatus = "done"
)

// Valid ...
func (s PostStatus) Valid() bool {
	return s == OpenStatus || s == DoneStatus
}

// Theme is a UI color theme preference.
type Theme string

const (
	// LightTheme ...
	LightTheme Theme = "light"
	// DarkTheme ...
	DarkTheme Theme = "dark"
)

// DefaultTheme is used when nothing is stored.
const DefaultTheme = DarkTheme

// Valid ...
func (t Theme) Valid() bool {
	return t == LightTheme || t == DarkTheme
}

// Post ...
type Post struct {
	ID        string
	Author    string
	Text      string
	Category  Category
	ImageRef  string
	City      string
	Status    PostStatus
	CreatedAt time.Time
	Comments  []*Comment
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	c := *p
	c.Comments = make([]*Comment, len(p.Comments))
	for i, v := range p.Comments {
		cc := *v
		c.Comments[i] = &cc
	}
	return &c
}

// Comment ...
type Comment struct {
	ID        string
	Author    string
	Text      string
	CreatedAt time.Time
}

// FeedPost is a post with calculated reaction counters.
type FeedPost struct {
	*Post
	Likes    int
	Dislikes int
}

// Score is likes minus dislikes.
func (p FeedPost) Score() int {
	return p.Likes - p.Dislikes
}

// Conversation is a direct-message thread between two identities.
type Conversation struct {
	ID           string
	Participants [2]string
	Messages     []*Message
}

// Clone returns a deep copy of the conversation.
func (c *Conversation) Clone() *Conversation {
	out := *c
	out.Messages = make([]*Message, len(c.Messages))
	for i, v := range c.Messages {
		m := *v
		out.Messages[i] = &m
	}
	return &out
}

// HasParticipant ...
func (c *Conversation) HasParticipant(identity string) bool {
	return c.Participants[0] == identity || c.Participants[1] == identity
}

// Peer returns the participant who is not identity.
func (c *Conversation) Peer(identity string) string {
	if c.Participants[0] == identity {
		return c.Participants[1]
	}
	return c.Participants[0]
}

// LastMessage returns the most recent message or nil.
func (c *Conversation) LastMessage() *Message {
	if len(c.Messages) == 0 {
		return nil
	}
	return c.Messages[len(c.Messages)-1]
}

// Message ...
type Message struct {
	ID        string
	From      string
	Text      string
	CreatedAt time.Time
}

// AdBlock is an advertisement managed by the moderator.
type AdBlock struct {
	ID        string
	Title     string
	Text      string
	Link      string
	CreatedAt time.Time
}

// ConversationKey returns the id of the conversation between a and b.
// The result does not depend on the argument order.
func ConversationKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "__" + b
}

// IdentitySet is a set of identities.
type IdentitySet map[string]struct{}

// NewIdentitySet ...
func NewIdentitySet(ids ...string) IdentitySet {
	s := make(IdentitySet, len(ids))
	for _, v := range ids {
		s[v] = struct{}{}
	}
	return s
}

// Has ...
func (s IdentitySet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Add ...
func (s IdentitySet) Add(id string) {
	s[id] = struct{}{}
}

// Remove ...
func (s IdentitySet) Remove(id string) {
	delete(s, id)
}

// Slice returns set members in ascending order.
func (s IdentitySet) Slice() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Clone ...
func (s IdentitySet) Clone() IdentitySet {
	out := make(IdentitySet, len(s))
	for k := range s {
		out[k] = struct{}{}
	}
	return out
}

// NormalizeName trims surrounding whitespace of a display name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}
