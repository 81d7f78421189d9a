// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"

	"github.com/gorodgovorit/board/internal/entities"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNameUnavailable returned when the identity has been retired.
	ErrNameUnavailable = errors.New("name unavailable")
	// ErrUnauthenticated returned when an operation requires an identity but none was given.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrNotFound returned when the referenced post or conversation does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden returned when a moderator operation is called without a moderator session.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidCredentials returned when moderator login fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidPair returned when a conversation is requested for equal or empty identities.
	ErrInvalidPair = errors.New("invalid pair")
	// ErrInvalidArgument returned when an argument is malformed.
	ErrInvalidArgument = errors.New("invalid argument")
)

// SortMode is a feed ordering.
type SortMode string

const (
	// NewSortMode orders by creation time, newest first.
	NewSortMode SortMode = "new"
	// TopSortMode orders by likes minus dislikes.
	TopSortMode SortMode = "top"
	// DiscussedSortMode orders by comments count.
	DiscussedSortMode SortMode = "discussed"
)

// Valid ...
func (m SortMode) Valid() bool {
	switch m {
	case NewSortMode, TopSortMode, DiscussedSortMode:
		return true
	}
	return false
}

// AllCategories disables the feed category filter.
const AllCategories entities.Category = "all"

// Service ...
type Service interface {
	Adopt(ctx context.Context, name string) error
	Retire(ctx context.Context, name string) error
	Rename(ctx context.Context, oldName, newName string) error
	Logout(ctx context.Context) error
	CurrentIdentity(ctx context.Context) string
	IsRetired(ctx context.Context, name string) bool

	Theme(ctx context.Context) entities.Theme
	SetTheme(ctx context.Context, t entities.Theme) error

	CreatePost(ctx context.Context, author, text string, category entities.Category, imageRef string) (*entities.Post, error)
	AddComment(ctx context.Context, postID, author, text string) (*entities.Comment, error)
	ToggleReaction(ctx context.Context, postID, identity string, kind entities.ReactionKind) (*entities.FeedPost, error)
	DeletePost(ctx context.Context, postID string) error
	SetPostStatus(ctx context.Context, postID string, status entities.PostStatus) error
	ExportPost(ctx context.Context, postID string) (string, error)
	GetPost(ctx context.Context, postID string) (*entities.FeedPost, error)
	Reactions(ctx context.Context, postID string) (*entities.ReactionSet, error)
	ListFeed(ctx context.Context, category entities.Category, sort SortMode) ([]*entities.FeedPost, error)
	ListPostsByAuthor(ctx context.Context, author string) []*entities.FeedPost

	EnsureConversation(ctx context.Context, a, b string) (*entities.Conversation, error)
	SendMessage(ctx context.Context, conversationID, from, text string) (*entities.Message, error)
	GetConversation(ctx context.Context, conversationID string) (*entities.Conversation, error)
	ListConversationsFor(ctx context.Context, identity string) []*entities.Conversation

	ModeratorLogin(ctx context.Context, name, password string) error
	ModeratorLogout(ctx context.Context) error
	IsModerator(ctx context.Context) bool
	CreateAd(ctx context.Context, title, text, link string) (*entities.AdBlock, error)
	DeleteAd(ctx context.Context, id string) error
	ListAds(ctx context.Context) []*entities.AdBlock
}
