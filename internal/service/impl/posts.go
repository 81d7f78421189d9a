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

const reportTimeLayout = "02.01, 15:04"

func (s *srv) CreatePost(ctx context.Context, author, text string, category entities.Category, imageRef string) (*entities.Post, error) {
	author = entities.NormalizeName(author)
	if author == "" {
		return nil, service.ErrUnauthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", service.ErrInvalidArgument)
	}

	if !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", service.ErrInvalidArgument, category)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p := &entities.Post{
		ID:        s.newID(),
		Author:    author,
		Text:      text,
		Category:  category,
		ImageRef:  imageRef,
		City:      entities.City,
		Status:    entities.OpenStatus,
		CreatedAt: s.now(),
		Comments:  []*entities.Comment{},
	}

	next := s.fork()
	next.Posts = make([]*entities.Post, 0, len(s.state.Posts)+1)
	next.Posts = append(next.Posts, s.state.Posts...)
	next.Posts = append(next.Posts, p)

	if err := s.commit(ctx, next, codec.PostsPartition); err != nil {
		return nil, err
	}

	return p.Clone(), nil
}

func (s *srv) AddComment(ctx context.Context, postID, author, text string) (*entities.Comment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(postID)
	if i < 0 {
		return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
	}

	author = entities.NormalizeName(author)
	if author == "" {
		return nil, service.ErrUnauthenticated
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("%w: empty text", service.ErrInvalidArgument)
	}

	c := &entities.Comment{
		ID:        s.newID(),
		Author:    author,
		Text:      text,
		CreatedAt: s.now(),
	}

	p := s.state.Posts[i].Clone()
	p.Comments = append(p.Comments, c)

	next := s.fork()
	next.Posts = replacePost(s.state.Posts, i, p)

	if err := s.commit(ctx, next, codec.PostsPartition); err != nil {
		return nil, err
	}

	cc := *c
	return &cc, nil
}

func (s *srv) ToggleReaction(ctx context.Context, postID, identity string, kind entities.ReactionKind) (*entities.FeedPost, error) {
	identity = entities.NormalizeName(identity)
	if identity == "" {
		return nil, service.ErrUnauthenticated
	}

	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown reaction %q", service.ErrInvalidArgument, kind)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(postID)
	if i < 0 {
		return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
	}

	r, ok := s.state.Reactions[postID]
	if ok {
		r = r.Clone()
	} else {
		r = entities.NewReactionSet()
	}
	r.Toggle(identity, kind)

	next := s.fork()
	next.Reactions = make(map[string]*entities.ReactionSet, len(s.state.Reactions)+1)
	for k, v := range s.state.Reactions {
		next.Reactions[k] = v
	}
	next.Reactions[postID] = r

	if err := s.commit(ctx, next, codec.ReactionsPartition); err != nil {
		return nil, err
	}

	return s.feedPost(s.state.Posts[i]), nil
}

func (s *srv) DeletePost(ctx context.Context, postID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Moderator {
		return service.ErrForbidden
	}

	i := s.postIndex(postID)
	if i < 0 {
		return nil
	}

	next := s.fork()
	next.Posts = make([]*entities.Post, 0, len(s.state.Posts)-1)
	next.Posts = append(next.Posts, s.state.Posts[:i]...)
	next.Posts = append(next.Posts, s.state.Posts[i+1:]...)

	next.Reactions = make(map[string]*entities.ReactionSet, len(s.state.Reactions))
	for k, v := range s.state.Reactions {
		if k != postID {
			next.Reactions[k] = v
		}
	}

	return s.commit(ctx, next, codec.PostsPartition, codec.ReactionsPartition)
}

func (s *srv) SetPostStatus(ctx context.Context, postID string, status entities.PostStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", service.ErrInvalidArgument, status)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Moderator {
		return service.ErrForbidden
	}

	i := s.postIndex(postID)
	if i < 0 {
		return fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
	}

	if s.state.Posts[i].Status == status {
		return nil
	}

	p := s.state.Posts[i].Clone()
	p.Status = status

	next := s.fork()
	next.Posts = replacePost(s.state.Posts, i, p)

	return s.commit(ctx, next, codec.PostsPartition)
}

func (s *srv) ExportPost(_ context.Context, postID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Moderator {
		return "", service.ErrForbidden
	}

	i := s.postIndex(postID)
	if i < 0 {
		return "", fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
	}

	p := s.state.Posts[i]

	var b strings.Builder
	b.WriteString("Город говорит — обращение\n")
	fmt.Fprintf(&b, "Автор: %s\n", p.Author)
	fmt.Fprintf(&b, "Категория: %s\n", p.Category.Label())
	fmt.Fprintf(&b, "Время: %s\n", p.CreatedAt.Format(reportTimeLayout))
	b.WriteString("\nТекст:\n")
	b.WriteString(p.Text)

	return b.String(), nil
}

func (s *srv) GetPost(_ context.Context, postID string) (*entities.FeedPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.postIndex(postID)
	if i < 0 {
		return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
	}

	return s.feedPost(s.state.Posts[i]), nil
}

func (s *srv) Reactions(_ context.Context, postID string) (*entities.ReactionSet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.postIndex(postID) < 0 {
		return nil, fmt.Errorf("%w: post %s", service.ErrNotFound, postID)
	}

	if r, ok := s.state.Reactions[postID]; ok {
		return r.Clone(), nil
	}

	return entities.NewReactionSet(), nil
}

func (s *srv) ListFeed(_ context.Context, category entities.Category, mode service.SortMode) ([]*entities.FeedPost, error) {
	if category == "" {
		category = service.AllCategories
	}
	if category != service.AllCategories && !category.Valid() {
		return nil, fmt.Errorf("%w: unknown category %q", service.ErrInvalidArgument, category)
	}

	if mode == "" {
		mode = service.NewSortMode
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: unknown sort %q", service.ErrInvalidArgument, mode)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.FeedPost, 0, len(s.state.Posts))
	for _, p := range s.state.Posts {
		if category == service.AllCategories || p.Category == category {
			out = append(out, s.feedPost(p))
		}
	}

	sortNewest(out)

	switch mode {
	case service.TopSortMode:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Score() > out[j].Score()
		})
	case service.DiscussedSortMode:
		sort.SliceStable(out, func(i, j int) bool {
			return len(out[i].Comments) > len(out[j].Comments)
		})
	}

	return out, nil
}

func (s *srv) ListPostsByAuthor(_ context.Context, author string) []*entities.FeedPost {
	author = entities.NormalizeName(author)

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.FeedPost, 0)
	for _, p := range s.state.Posts {
		if p.Author == author {
			out = append(out, s.feedPost(p))
		}
	}

	sortNewest(out)

	return out
}

func (s *srv) postIndex(id string) int {
	for i, p := range s.state.Posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// feedPost returns a copy of p with reaction counters. Must be called under lock.
func (s *srv) feedPost(p *entities.Post) *entities.FeedPost {
	fp := &entities.FeedPost{Post: p.Clone()}

	if r, ok := s.state.Reactions[p.ID]; ok {
		fp.Likes = len(r.Likes)
		fp.Dislikes = len(r.Dislikes)
	}

	return fp
}

func replacePost(posts []*entities.Post, i int, p *entities.Post) []*entities.Post {
	out := make([]*entities.Post, len(posts))
	copy(out, posts)
	out[i] = p
	return out
}

func sortNewest(posts []*entities.FeedPost) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
}
