package server

import (
	"time"

	"github.com/gorodgovorit/board/internal/entities"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// IdentityRequest ...
// swagger:model
type IdentityRequest struct {
	Name string `json:"name"`
}

// IdentityResponse ...
// swagger:model
type IdentityResponse struct {
	// Name is empty when nobody is logged in.
	Name string `json:"name"`
}

// ThemeRequest ...
// swagger:model
type ThemeRequest struct {
	Theme entities.Theme `json:"theme"`
}

// ThemeResponse ...
// swagger:model
type ThemeResponse struct {
	Theme entities.Theme `json:"theme"`
}

// CreatePostRequest ...
// swagger:model
type CreatePostRequest struct {
	Text         string            `json:"text"`
	Category     entities.Category `json:"category"`
	ImageDataURL string            `json:"imageDataUrl"`
}

// SetStatusRequest ...
// swagger:model
type SetStatusRequest struct {
	Status entities.PostStatus `json:"status"`
}

// TextRequest is used for comments and messages.
// swagger:model
type TextRequest struct {
	Text string `json:"text"`
}

// ReactionRequest ...
// swagger:model
type ReactionRequest struct {
	Kind entities.ReactionKind `json:"kind"`
}

// ConversationRequest ...
// swagger:model
type ConversationRequest struct {
	With string `json:"with"`
}

// LoginRequest ...
// swagger:model
type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// ModeratorResponse ...
// swagger:model
type ModeratorResponse struct {
	Moderator bool `json:"moderator"`
}

// CreateAdRequest ...
// swagger:model
type CreateAdRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Link  string `json:"link"`
}

// Post ...
// swagger:model
type Post struct {
	ID            string              `json:"id"`
	Author        string              `json:"author"`
	Text          string              `json:"text"`
	Category      entities.Category   `json:"category"`
	CategoryLabel string              `json:"categoryLabel"`
	ImageDataURL  string              `json:"imageDataUrl,omitempty"`
	City          string              `json:"city"`
	Status        entities.PostStatus `json:"status"`
	Likes         int                 `json:"likes"`
	Dislikes      int                 `json:"dislikes"`
	// CreatedAt is unix time in milliseconds.
	CreatedAt int64     `json:"createdAt"`
	Comments  []Comment `json:"comments"`
}

// Comment ...
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Reactions ...
// swagger:model
type Reactions struct {
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}

// Conversation ...
// swagger:model
type Conversation struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	Messages     []Message `json:"messages"`
}

// Message ...
type Message struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

// Ad ...
// swagger:model
type Ad struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Link      string `json:"link,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

func toMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func newPost(p *entities.FeedPost) Post {
	out := Post{
		ID:            p.ID,
		Author:        p.Author,
		Text:          p.Text,
		Category:      p.Category,
		CategoryLabel: p.Category.Label(),
		ImageDataURL:  p.ImageRef,
		City:          p.City,
		Status:        p.Status,
		Likes:         p.Likes,
		Dislikes:      p.Dislikes,
		CreatedAt:     toMillis(p.CreatedAt),
		Comments:      make([]Comment, len(p.Comments)),
	}

	for i, c := range p.Comments {
		out.Comments[i] = newComment(c)
	}

	return out
}

func newPosts(posts []*entities.FeedPost) []Post {
	out := make([]Post, len(posts))
	for i, p := range posts {
		out[i] = newPost(p)
	}
	return out
}

func newComment(c *entities.Comment) Comment {
	return Comment{
		ID:        c.ID,
		Author:    c.Author,
		Text:      c.Text,
		CreatedAt: toMillis(c.CreatedAt),
	}
}

func newReactions(r *entities.ReactionSet) Reactions {
	return Reactions{
		Likes:    r.Likes.Slice(),
		Dislikes: r.Dislikes.Slice(),
	}
}

func newConversation(c *entities.Conversation) Conversation {
	out := Conversation{
		ID:           c.ID,
		Participants: []string{c.Participants[0], c.Participants[1]},
		Messages:     make([]Message, len(c.Messages)),
	}

	for i, m := range c.Messages {
		out.Messages[i] = newMessage(m)
	}

	return out
}

func newConversations(cc []*entities.Conversation) []Conversation {
	out := make([]Conversation, len(cc))
	for i, c := range cc {
		out[i] = newConversation(c)
	}
	return out
}

func newMessage(m *entities.Message) Message {
	return Message{
		ID:        m.ID,
		From:      m.From,
		Text:      m.Text,
		CreatedAt: toMillis(m.CreatedAt),
	}
}

func newAd(a *entities.AdBlock) Ad {
	return Ad{
		ID:        a.ID,
		Title:     a.Title,
		Text:      a.Text,
		Link:      a.Link,
		CreatedAt: toMillis(a.CreatedAt),
	}
}

func newAds(ads []*entities.AdBlock) []Ad {
	out := make([]Ad, len(ads))
	for i, a := range ads {
		out[i] = newAd(a)
	}
	return out
}
