package impl

import (
	"context"
	"crypto/subtle"
	"fmt"
	"sort"
	"strings"

	"github.com/gorodgovorit/board/internal/codec"
	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/service"
)

const (
	moderatorName     = "Admin"
	moderatorPassword = "Bruk12345678"
)

func (s *srv) ModeratorLogin(ctx context.Context, name, password string) error {
	nameOK := subtle.ConstantTimeCompare([]byte(name), []byte(moderatorName))
	passwordOK := subtle.ConstantTimeCompare([]byte(password), []byte(moderatorPassword))
	if nameOK&passwordOK != 1 {
		log.WithField("name", name).Warn("moderator login failed")
		return service.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Moderator {
		return nil
	}

	next := s.fork()
	next.Moderator = true

	return s.commit(ctx, next, codec.ModeratorPartition)
}

func (s *srv) ModeratorLogout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Moderator {
		return nil
	}

	next := s.fork()
	next.Moderator = false

	return s.commit(ctx, next, codec.ModeratorPartition)
}

func (s *srv) IsModerator(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.Moderator
}

func (s *srv) CreateAd(ctx context.Context, title, text, link string) (*entities.AdBlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Moderator {
		return nil, service.ErrForbidden
	}

	title, text = strings.TrimSpace(title), strings.TrimSpace(text)
	if title == "" || text == "" {
		return nil, fmt.Errorf("%w: title and text are required", service.ErrInvalidArgument)
	}

	ad := &entities.AdBlock{
		ID:        s.newID(),
		Title:     title,
		Text:      text,
		Link:      strings.TrimSpace(link),
		CreatedAt: s.now(),
	}

	next := s.fork()
	next.Ads = make([]*entities.AdBlock, 0, len(s.state.Ads)+1)
	next.Ads = append(next.Ads, s.state.Ads...)
	next.Ads = append(next.Ads, ad)

	if err := s.commit(ctx, next, codec.AdsPartition); err != nil {
		return nil, err
	}

	out := *ad
	return &out, nil
}

func (s *srv) DeleteAd(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Moderator {
		return service.ErrForbidden
	}

	next := s.fork()
	next.Ads = make([]*entities.AdBlock, 0, len(s.state.Ads))
	for _, v := range s.state.Ads {
		if v.ID != id {
			next.Ads = append(next.Ads, v)
		}
	}

	if len(next.Ads) == len(s.state.Ads) {
		return nil
	}

	return s.commit(ctx, next, codec.AdsPartition)
}

// ListAds returns ads newest first.
func (s *srv) ListAds(_ context.Context) []*entities.AdBlock {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*entities.AdBlock, len(s.state.Ads))
	for i, v := range s.state.Ads {
		ad := *v
		out[i] = &ad
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return out
}
