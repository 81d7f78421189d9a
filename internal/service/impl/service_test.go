package impl

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorodgovorit/board/internal/codec"
	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/service"
	storageinterface "github.com/gorodgovorit/board/internal/storage"
	"github.com/gorodgovorit/board/internal/storage/memory"
	storage "github.com/gorodgovorit/board/internal/storage/mock"
)

var (
	ctx     = context.Background()
	errTest = errors.New("test")
)

func withClock(s *srv) *srv {
	ts := time.Unix(1700000000, 0)
	id := 0

	s.now = func() time.Time {
		ts = ts.Add(time.Minute)
		return ts
	}
	s.newID = func() string {
		id++
		return fmt.Sprintf("id%d", id)
	}

	return s
}

func newTestSrv(t *testing.T, st storageinterface.Storage) *srv {
	svc, err := New(ctx, st)
	require.NoError(t, err)

	return withClock(svc.(*srv))
}

func newMockSrv(t *testing.T) (*srv, *storage.MockStorage) {
	ctrl := gomock.NewController(t)
	st := storage.NewMockStorage(ctrl)

	return withClock(newSrv(codec.New(st), codec.NewSnapshot())), st
}

func passTx(st *storage.MockStorage) {
	st.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(s storageinterface.Storage) error) error {
		return f(st)
	})
}

func TestNew_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := storage.NewMockStorage(ctrl)

	st.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errTest)

	_, err := New(ctx, st)
	require.True(t, errors.Is(err, errTest))
}

func TestSrv_AdoptRetire(t *testing.T) {
	st := memory.New()
	s := newTestSrv(t, st)

	require.NoError(t, s.Adopt(ctx, "  Anna "))
	require.Equal(t, "Anna", s.CurrentIdentity(ctx))

	require.NoError(t, s.Retire(ctx, "Anna"))
	require.NoError(t, s.Retire(ctx, "Anna"))
	require.True(t, s.IsRetired(ctx, "Anna"))

	require.True(t, errors.Is(s.Adopt(ctx, "Anna"), service.ErrNameUnavailable))

	// retirement survives reload
	reloaded := newTestSrv(t, st)
	require.True(t, errors.Is(reloaded.Adopt(ctx, "Anna"), service.ErrNameUnavailable))
	require.Equal(t, "Anna", reloaded.CurrentIdentity(ctx))

	require.True(t, errors.Is(s.Adopt(ctx, " "), service.ErrInvalidArgument))
	require.True(t, errors.Is(s.Retire(ctx, ""), service.ErrInvalidArgument))
}

func TestSrv_Logout(t *testing.T) {
	s := newTestSrv(t, memory.New())

	require.NoError(t, s.Logout(ctx))
	require.Empty(t, s.state.Retired)

	require.NoError(t, s.Adopt(ctx, "Anna"))
	require.NoError(t, s.Logout(ctx))

	require.Empty(t, s.CurrentIdentity(ctx))
	require.True(t, s.IsRetired(ctx, "Anna"))
	require.True(t, errors.Is(s.Adopt(ctx, "Anna"), service.ErrNameUnavailable))
}

func TestSrv_Rename(t *testing.T) {
	st := memory.New()
	s := newTestSrv(t, st)

	require.NoError(t, s.Adopt(ctx, "Anna"))

	p, err := s.CreatePost(ctx, "Anna", "Яма на дороге", entities.ProblemCategory, "")
	require.NoError(t, err)
	other, err := s.CreatePost(ctx, "Boris", "Спасибо", entities.PraiseCategory, "")
	require.NoError(t, err)
	_, err = s.AddComment(ctx, other.ID, "Anna", "+1")
	require.NoError(t, err)

	_, err = s.ToggleReaction(ctx, other.ID, "Anna", entities.DislikeReaction)
	require.NoError(t, err)

	conv, err := s.EnsureConversation(ctx, "Anna", "Boris")
	require.NoError(t, err)
	_, err = s.SendMessage(ctx, conv.ID, "Anna", "Привет")
	require.NoError(t, err)

	require.NoError(t, s.Rename(ctx, "Anna", "Anya"))

	check := func(t *testing.T, s *srv) {
		require.Equal(t, "Anya", s.CurrentIdentity(ctx))
		require.True(t, s.IsRetired(ctx, "Anna"))

		got, err := s.GetPost(ctx, p.ID)
		require.NoError(t, err)
		require.Equal(t, "Anya", got.Author)

		got, err = s.GetPost(ctx, other.ID)
		require.NoError(t, err)
		require.Equal(t, "Boris", got.Author)
		require.Equal(t, "Anya", got.Comments[0].Author)
		require.Equal(t, 1, got.Dislikes)

		r, err := s.Reactions(ctx, other.ID)
		require.NoError(t, err)
		require.Equal(t, entities.DislikeReaction, r.Vote("Anya"))
		require.Empty(t, r.Vote("Anna"))

		_, err = s.GetConversation(ctx, "Anna__Boris")
		require.True(t, errors.Is(err, service.ErrNotFound))

		c, err := s.GetConversation(ctx, entities.ConversationKey("Anya", "Boris"))
		require.NoError(t, err)
		require.Equal(t, [2]string{"Anya", "Boris"}, c.Participants)
		require.Len(t, c.Messages, 1)
		require.Equal(t, "Anya", c.Messages[0].From)

		ensured, err := s.EnsureConversation(ctx, "Boris", "Anya")
		require.NoError(t, err)
		require.Equal(t, c.ID, ensured.ID)
	}

	check(t, s)
	check(t, newTestSrv(t, st))

	require.True(t, errors.Is(s.Adopt(ctx, "Anna"), service.ErrNameUnavailable))
}

func TestSrv_RenameMergesConversations(t *testing.T) {
	s := newTestSrv(t, memory.New())

	c1, err := s.EnsureConversation(ctx, "Anna", "Boris")
	require.NoError(t, err)
	c2, err := s.EnsureConversation(ctx, "Anya", "Boris")
	require.NoError(t, err)

	m1, err := s.SendMessage(ctx, c1.ID, "Anna", "first")
	require.NoError(t, err)
	m2, err := s.SendMessage(ctx, c2.ID, "Boris", "second")
	require.NoError(t, err)
	m3, err := s.SendMessage(ctx, c1.ID, "Boris", "third")
	require.NoError(t, err)

	require.NoError(t, s.Rename(ctx, "Anna", "Anya"))

	list := s.ListConversationsFor(ctx, "Anya")
	require.Len(t, list, 1)

	var texts []string
	for _, m := range list[0].Messages {
		texts = append(texts, m.Text)
	}
	require.Equal(t, []string{m1.Text, m2.Text, m3.Text}, texts)
}

func TestSrv_RenameIntoPeer(t *testing.T) {
	s := newTestSrv(t, memory.New())

	c, err := s.EnsureConversation(ctx, "Anna", "Boris")
	require.NoError(t, err)
	_, err = s.SendMessage(ctx, c.ID, "Anna", "hi")
	require.NoError(t, err)

	require.NoError(t, s.Adopt(ctx, "Anna"))
	require.NoError(t, s.Rename(ctx, "Anna", "Boris"))

	_, err = s.GetConversation(ctx, "Boris__Boris")
	require.True(t, errors.Is(err, service.ErrNotFound))

	got, err := s.GetConversation(ctx, c.ID)
	require.NoError(t, err)
	require.Equal(t, [2]string{"Anna", "Boris"}, got.Participants)
	require.Len(t, got.Messages, 1)
	require.Equal(t, "Anna", got.Messages[0].From)

	require.Len(t, s.ListConversationsFor(ctx, "Boris"), 1)
}

func TestSrv_RenameKeepsExistingVote(t *testing.T) {
	s := newTestSrv(t, memory.New())

	p, err := s.CreatePost(ctx, "Boris", "text", entities.IdeaCategory, "")
	require.NoError(t, err)

	_, err = s.ToggleReaction(ctx, p.ID, "Anna", entities.LikeReaction)
	require.NoError(t, err)
	_, err = s.ToggleReaction(ctx, p.ID, "Anya", entities.DislikeReaction)
	require.NoError(t, err)

	require.NoError(t, s.Rename(ctx, "Anna", "Anya"))

	r, err := s.Reactions(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, r.Likes)
	require.Equal(t, entities.NewIdentitySet("Anya"), r.Dislikes)
}

func TestSrv_RenameErrors(t *testing.T) {
	s := newTestSrv(t, memory.New())

	require.NoError(t, s.Adopt(ctx, "Anna"))
	require.NoError(t, s.Retire(ctx, "Old"))

	require.True(t, errors.Is(s.Rename(ctx, "Anna", "Old"), service.ErrNameUnavailable))
	require.Equal(t, "Anna", s.CurrentIdentity(ctx))
	require.False(t, s.IsRetired(ctx, "Anna"))

	require.True(t, errors.Is(s.Rename(ctx, "Anna", " "), service.ErrInvalidArgument))

	require.NoError(t, s.Rename(ctx, "Anna", "Anna"))
	require.False(t, s.IsRetired(ctx, "Anna"))
}

func TestSrv_RenameSaveFailure(t *testing.T) {
	s, st := newMockSrv(t)

	st.EXPECT().Set(gomock.Any(), string(codec.CurrentIdentityPartition), []byte("Anna")).Return(nil)
	require.NoError(t, s.Adopt(ctx, "Anna"))

	st.EXPECT().Set(gomock.Any(), string(codec.PostsPartition), gomock.Any()).Return(nil)
	_, err := s.CreatePost(ctx, "Anna", "text", entities.OtherCategory, "")
	require.NoError(t, err)

	st.EXPECT().InTx(gomock.Any(), gomock.Any()).Return(errTest)
	require.True(t, errors.Is(s.Rename(ctx, "Anna", "Anya"), errTest))

	require.Equal(t, "Anna", s.CurrentIdentity(ctx))
	require.False(t, s.IsRetired(ctx, "Anna"))
	require.Len(t, s.ListPostsByAuthor(ctx, "Anna"), 1)
	require.Empty(t, s.ListPostsByAuthor(ctx, "Anya"))
}

func TestSrv_RenameSingleTransaction(t *testing.T) {
	s, st := newMockSrv(t)

	passTx(st)
	for _, p := range []codec.Partition{
		codec.PostsPartition,
		codec.ConversationsPartition,
		codec.ReactionsPartition,
		codec.RetiredPartition,
		codec.CurrentIdentityPartition,
	} {
		st.EXPECT().Set(gomock.Any(), string(p), gomock.Any()).Return(nil)
	}

	require.NoError(t, s.Rename(ctx, "Anna", "Anya"))
}

func TestSrv_SaveFailureKeepsState(t *testing.T) {
	s, st := newMockSrv(t)

	st.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errTest).Times(4)

	require.True(t, errors.Is(s.Adopt(ctx, "Anna"), errTest))
	require.Empty(t, s.CurrentIdentity(ctx))

	_, err := s.CreatePost(ctx, "Anna", "text", entities.OtherCategory, "")
	require.True(t, errors.Is(err, errTest))
	feed, err := s.ListFeed(ctx, service.AllCategories, service.NewSortMode)
	require.NoError(t, err)
	require.Empty(t, feed)

	require.True(t, errors.Is(s.SetTheme(ctx, entities.LightTheme), errTest))
	require.Equal(t, entities.DarkTheme, s.Theme(ctx))

	require.True(t, errors.Is(s.ModeratorLogin(ctx, "Admin", "Bruk12345678"), errTest))
	require.False(t, s.IsModerator(ctx))
}

func TestSrv_PartitionDiscipline(t *testing.T) {
	s, st := newMockSrv(t)

	st.EXPECT().Set(gomock.Any(), string(codec.PostsPartition), gomock.Any()).Return(nil)
	p, err := s.CreatePost(ctx, "Anna", "text", entities.OtherCategory, "")
	require.NoError(t, err)

	st.EXPECT().Set(gomock.Any(), string(codec.ReactionsPartition), gomock.Any()).Return(nil)
	_, err = s.ToggleReaction(ctx, p.ID, "Boris", entities.LikeReaction)
	require.NoError(t, err)

	st.EXPECT().Set(gomock.Any(), string(codec.PostsPartition), gomock.Any()).Return(nil)
	_, err = s.AddComment(ctx, p.ID, "Boris", "comment")
	require.NoError(t, err)

	st.EXPECT().Set(gomock.Any(), string(codec.ConversationsPartition), gomock.Any()).Return(nil)
	c, err := s.EnsureConversation(ctx, "Anna", "Boris")
	require.NoError(t, err)

	// existing conversation is not written again
	_, err = s.EnsureConversation(ctx, "Boris", "Anna")
	require.NoError(t, err)

	st.EXPECT().Set(gomock.Any(), string(codec.ConversationsPartition), gomock.Any()).Return(nil)
	_, err = s.SendMessage(ctx, c.ID, "Anna", "hi")
	require.NoError(t, err)

	st.EXPECT().Set(gomock.Any(), string(codec.ModeratorPartition), []byte("true")).Return(nil)
	require.NoError(t, s.ModeratorLogin(ctx, "Admin", "Bruk12345678"))

	passTx(st)
	st.EXPECT().Set(gomock.Any(), string(codec.PostsPartition), gomock.Any()).Return(nil)
	st.EXPECT().Set(gomock.Any(), string(codec.ReactionsPartition), gomock.Any()).Return(nil)
	require.NoError(t, s.DeletePost(ctx, p.ID))

	st.EXPECT().Delete(gomock.Any(), string(codec.ModeratorPartition)).Return(nil)
	require.NoError(t, s.ModeratorLogout(ctx))
}

func TestSrv_CreatePost(t *testing.T) {
	s := newTestSrv(t, memory.New())

	_, err := s.CreatePost(ctx, "", "text", entities.ProblemCategory, "")
	require.True(t, errors.Is(err, service.ErrUnauthenticated))

	_, err = s.CreatePost(ctx, "Anna", "  ", entities.ProblemCategory, "")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	_, err = s.CreatePost(ctx, "Anna", "text", "weather", "")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	p, err := s.CreatePost(ctx, "Anna", " text ", entities.IdeaCategory, "data:image/png;base64,AA")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "text", p.Text)
	assert.Equal(t, entities.City, p.City)
	assert.Equal(t, entities.OpenStatus, p.Status)
	assert.Equal(t, "data:image/png;base64,AA", p.ImageRef)
	assert.NotNil(t, p.Comments)
	assert.Empty(t, p.Comments)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestSrv_AddComment(t *testing.T) {
	s := newTestSrv(t, memory.New())

	_, err := s.AddComment(ctx, "missing", "Anna", "text")
	require.True(t, errors.Is(err, service.ErrNotFound))

	p, err := s.CreatePost(ctx, "Anna", "text", entities.OtherCategory, "")
	require.NoError(t, err)

	_, err = s.AddComment(ctx, p.ID, "", "text")
	require.True(t, errors.Is(err, service.ErrUnauthenticated))

	_, err = s.AddComment(ctx, p.ID, "Boris", "")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	c, err := s.AddComment(ctx, p.ID, "Boris", "agree")
	require.NoError(t, err)

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	require.Equal(t, c.ID, got.Comments[0].ID)

	// returned values are copies
	got.Comments[0].Text = "changed"
	got, err = s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "agree", got.Comments[0].Text)
}

func TestSrv_TopScoreScenario(t *testing.T) {
	s := newTestSrv(t, memory.New())

	require.NoError(t, s.Adopt(ctx, "Anna"))
	p, err := s.CreatePost(ctx, "Anna", "Яма на дороге", entities.ProblemCategory, "")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	require.NoError(t, s.Adopt(ctx, "Boris"))

	fp, err := s.ToggleReaction(ctx, p.ID, "Boris", entities.LikeReaction)
	require.NoError(t, err)
	require.Equal(t, 1, fp.Score())

	feed, err := s.ListFeed(ctx, service.AllCategories, service.TopSortMode)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, "Anna", feed[0].Author)
	require.Equal(t, 1, feed[0].Score())

	_, err = s.ToggleReaction(ctx, p.ID, "Boris", entities.LikeReaction)
	require.NoError(t, err)

	feed, err = s.ListFeed(ctx, service.AllCategories, service.TopSortMode)
	require.NoError(t, err)
	require.Equal(t, 0, feed[0].Score())
}

func TestSrv_ToggleReaction(t *testing.T) {
	s := newTestSrv(t, memory.New())

	_, err := s.ToggleReaction(ctx, "missing", "Anna", entities.LikeReaction)
	require.True(t, errors.Is(err, service.ErrNotFound))
	require.Empty(t, s.state.Reactions)

	p, err := s.CreatePost(ctx, "Anna", "text", entities.OtherCategory, "")
	require.NoError(t, err)

	_, err = s.ToggleReaction(ctx, p.ID, "", entities.LikeReaction)
	require.True(t, errors.Is(err, service.ErrUnauthenticated))

	_, err = s.ToggleReaction(ctx, p.ID, "Boris", "love")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	fp, err := s.ToggleReaction(ctx, p.ID, "Boris", entities.LikeReaction)
	require.NoError(t, err)
	require.Equal(t, 1, fp.Likes)

	fp, err = s.ToggleReaction(ctx, p.ID, "Boris", entities.DislikeReaction)
	require.NoError(t, err)
	require.Equal(t, 0, fp.Likes)
	require.Equal(t, 1, fp.Dislikes)

	r, err := s.Reactions(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DislikeReaction, r.Vote("Boris"))
}

func TestSrv_ListFeed(t *testing.T) {
	s := newTestSrv(t, memory.New())

	oldest, err := s.CreatePost(ctx, "Anna", "1", entities.ProblemCategory, "")
	require.NoError(t, err)
	middle, err := s.CreatePost(ctx, "Boris", "2", entities.IdeaCategory, "")
	require.NoError(t, err)
	newest, err := s.CreatePost(ctx, "Vera", "3", entities.ProblemCategory, "")
	require.NoError(t, err)

	_, err = s.ToggleReaction(ctx, oldest.ID, "Boris", entities.LikeReaction)
	require.NoError(t, err)
	_, err = s.ToggleReaction(ctx, newest.ID, "Boris", entities.DislikeReaction)
	require.NoError(t, err)

	_, err = s.AddComment(ctx, middle.ID, "Anna", "a")
	require.NoError(t, err)
	_, err = s.AddComment(ctx, middle.ID, "Vera", "b")
	require.NoError(t, err)
	_, err = s.AddComment(ctx, newest.ID, "Anna", "c")
	require.NoError(t, err)

	ids := func(feed []*entities.FeedPost) []string {
		out := make([]string, len(feed))
		for i, v := range feed {
			out[i] = v.ID
		}
		return out
	}

	tt := []struct {
		name     string
		category entities.Category
		mode     service.SortMode
		want     []string
	}{
		{name: "default", want: []string{newest.ID, middle.ID, oldest.ID}},
		{name: "new", category: service.AllCategories, mode: service.NewSortMode, want: []string{newest.ID, middle.ID, oldest.ID}},
		{name: "top", category: service.AllCategories, mode: service.TopSortMode, want: []string{oldest.ID, middle.ID, newest.ID}},
		{name: "discussed", category: service.AllCategories, mode: service.DiscussedSortMode, want: []string{middle.ID, newest.ID, oldest.ID}},
		{name: "category", category: entities.ProblemCategory, mode: service.NewSortMode, want: []string{newest.ID, oldest.ID}},
		{name: "empty_category", category: entities.PraiseCategory, mode: service.TopSortMode, want: []string{}},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			feed, err := s.ListFeed(ctx, tc.category, tc.mode)
			require.NoError(t, err)
			require.Equal(t, tc.want, ids(feed))
		})
	}

	_, err = s.ListFeed(ctx, "weather", service.NewSortMode)
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	_, err = s.ListFeed(ctx, service.AllCategories, "random")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	mine := s.ListPostsByAuthor(ctx, "Anna")
	require.Len(t, mine, 1)
	require.Equal(t, 1, mine[0].Likes)
}

func TestSrv_Moderation(t *testing.T) {
	s := newTestSrv(t, memory.New())

	p, err := s.CreatePost(ctx, "Anna", "Яма на дороге", entities.ProblemCategory, "")
	require.NoError(t, err)
	_, err = s.ToggleReaction(ctx, p.ID, "Boris", entities.LikeReaction)
	require.NoError(t, err)

	require.True(t, errors.Is(s.DeletePost(ctx, p.ID), service.ErrForbidden))
	require.True(t, errors.Is(s.SetPostStatus(ctx, p.ID, entities.DoneStatus), service.ErrForbidden))
	_, err = s.ExportPost(ctx, p.ID)
	require.True(t, errors.Is(err, service.ErrForbidden))

	require.True(t, errors.Is(s.ModeratorLogin(ctx, "admin", "Bruk12345678"), service.ErrInvalidCredentials))
	require.True(t, errors.Is(s.ModeratorLogin(ctx, "Admin", "bruk12345678"), service.ErrInvalidCredentials))
	require.False(t, s.IsModerator(ctx))

	require.NoError(t, s.ModeratorLogin(ctx, "Admin", "Bruk12345678"))
	require.True(t, s.IsModerator(ctx))

	require.True(t, errors.Is(s.SetPostStatus(ctx, p.ID, "closed"), service.ErrInvalidArgument))
	require.True(t, errors.Is(s.SetPostStatus(ctx, "missing", entities.DoneStatus), service.ErrNotFound))
	require.NoError(t, s.SetPostStatus(ctx, p.ID, entities.DoneStatus))

	got, err := s.GetPost(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entities.DoneStatus, got.Status)

	report, err := s.ExportPost(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Город говорит — обращение\n"+
		"Автор: Anna\n"+
		"Категория: Проблема\n"+
		"Время: "+p.CreatedAt.Format("02.01, 15:04")+"\n"+
		"\n"+
		"Текст:\n"+
		"Яма на дороге", report)

	require.NoError(t, s.DeletePost(ctx, "missing"))
	require.NoError(t, s.DeletePost(ctx, p.ID))

	_, err = s.GetPost(ctx, p.ID)
	require.True(t, errors.Is(err, service.ErrNotFound))
	require.NotContains(t, s.state.Reactions, p.ID)

	require.NoError(t, s.ModeratorLogout(ctx))
	require.False(t, s.IsModerator(ctx))
}

func TestSrv_Conversations(t *testing.T) {
	s := newTestSrv(t, memory.New())

	for _, pair := range [][2]string{{"Anna", "Anna"}, {"", "Boris"}, {"Anna", ""}} {
		_, err := s.EnsureConversation(ctx, pair[0], pair[1])
		require.True(t, errors.Is(err, service.ErrInvalidPair))
	}

	ab, err := s.EnsureConversation(ctx, "Anna", "Boris")
	require.NoError(t, err)
	ba, err := s.EnsureConversation(ctx, "Boris", "Anna")
	require.NoError(t, err)
	require.Equal(t, ab.ID, ba.ID)

	_, err = s.SendMessage(ctx, "missing", "Anna", "hi")
	require.True(t, errors.Is(err, service.ErrNotFound))
	_, err = s.SendMessage(ctx, ab.ID, "", "hi")
	require.True(t, errors.Is(err, service.ErrUnauthenticated))
	_, err = s.SendMessage(ctx, ab.ID, "Anna", " ")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	_, err = s.SendMessage(ctx, ab.ID, "Anna", "Привет")
	require.NoError(t, err)

	c, err := s.GetConversation(ctx, ab.ID)
	require.NoError(t, err)
	require.Len(t, c.Messages, 1)

	av, err := s.EnsureConversation(ctx, "Anna", "Vera")
	require.NoError(t, err)
	ag, err := s.EnsureConversation(ctx, "Anna", "Gleb")
	require.NoError(t, err)

	_, err = s.SendMessage(ctx, av.ID, "Vera", "later")
	require.NoError(t, err)

	list := s.ListConversationsFor(ctx, "Anna")
	require.Len(t, list, 3)
	require.Equal(t, av.ID, list[0].ID)
	require.Equal(t, ab.ID, list[1].ID)
	require.Equal(t, ag.ID, list[2].ID)

	require.Len(t, s.ListConversationsFor(ctx, "Boris"), 1)
	require.Empty(t, s.ListConversationsFor(ctx, "Dmitry"))
}

func TestSrv_TrimsIdentities(t *testing.T) {
	s := newTestSrv(t, memory.New())

	_, err := s.CreatePost(ctx, "   ", "text", entities.IdeaCategory, "")
	require.True(t, errors.Is(err, service.ErrUnauthenticated))

	p, err := s.CreatePost(ctx, " Anna ", "text", entities.IdeaCategory, "")
	require.NoError(t, err)
	require.Equal(t, "Anna", p.Author)
	require.Len(t, s.ListPostsByAuthor(ctx, "Anna"), 1)

	_, err = s.AddComment(ctx, p.ID, "\t", "text")
	require.True(t, errors.Is(err, service.ErrUnauthenticated))
	cm, err := s.AddComment(ctx, p.ID, "Boris ", "text")
	require.NoError(t, err)
	require.Equal(t, "Boris", cm.Author)

	_, err = s.ToggleReaction(ctx, p.ID, " ", entities.LikeReaction)
	require.True(t, errors.Is(err, service.ErrUnauthenticated))
	_, err = s.ToggleReaction(ctx, p.ID, " Boris", entities.LikeReaction)
	require.NoError(t, err)
	r, err := s.Reactions(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, entities.LikeReaction, r.Vote("Boris"))

	_, err = s.EnsureConversation(ctx, "Anna", " Anna")
	require.True(t, errors.Is(err, service.ErrInvalidPair))
	_, err = s.EnsureConversation(ctx, " ", "Anna")
	require.True(t, errors.Is(err, service.ErrInvalidPair))

	c, err := s.EnsureConversation(ctx, " Anna", "Boris ")
	require.NoError(t, err)
	require.Equal(t, "Anna__Boris", c.ID)
	require.Equal(t, [2]string{"Anna", "Boris"}, c.Participants)

	_, err = s.SendMessage(ctx, c.ID, "  ", "hi")
	require.True(t, errors.Is(err, service.ErrUnauthenticated))
	m, err := s.SendMessage(ctx, c.ID, " Anna", "hi")
	require.NoError(t, err)
	require.Equal(t, "Anna", m.From)

	require.Len(t, s.ListConversationsFor(ctx, " Boris"), 1)
}

func TestSrv_Ads(t *testing.T) {
	s := newTestSrv(t, memory.New())

	_, err := s.CreateAd(ctx, "title", "text", "")
	require.True(t, errors.Is(err, service.ErrForbidden))
	require.True(t, errors.Is(s.DeleteAd(ctx, "id"), service.ErrForbidden))

	require.NoError(t, s.ModeratorLogin(ctx, "Admin", "Bruk12345678"))

	_, err = s.CreateAd(ctx, "", "text", "")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))
	_, err = s.CreateAd(ctx, "title", " ", "")
	require.True(t, errors.Is(err, service.ErrInvalidArgument))

	first, err := s.CreateAd(ctx, "first", "text", "https://example.org")
	require.NoError(t, err)
	second, err := s.CreateAd(ctx, "second", "text", "")
	require.NoError(t, err)

	ads := s.ListAds(ctx)
	require.Len(t, ads, 2)
	require.Equal(t, second.ID, ads[0].ID)
	require.Equal(t, first.ID, ads[1].ID)

	require.NoError(t, s.DeleteAd(ctx, "missing"))
	require.NoError(t, s.DeleteAd(ctx, first.ID))
	require.Len(t, s.ListAds(ctx), 1)
}

func TestSrv_Theme(t *testing.T) {
	st := memory.New()
	s := newTestSrv(t, st)

	require.Equal(t, entities.DarkTheme, s.Theme(ctx))
	require.True(t, errors.Is(s.SetTheme(ctx, "sepia"), service.ErrInvalidArgument))
	require.NoError(t, s.SetTheme(ctx, entities.LightTheme))

	require.Equal(t, entities.LightTheme, newTestSrv(t, st).Theme(ctx))
}
