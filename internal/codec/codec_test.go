package codec

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/storage"
	"github.com/gorodgovorit/board/internal/storage/memory"
	"github.com/gorodgovorit/board/internal/storage/mock"
)

var errTest = errors.New("test")

func TestCodec_LoadEmpty(t *testing.T) {
	snap, err := New(memory.New()).Load(context.Background())
	require.NoError(t, err)

	require.Equal(t, NewSnapshot(), snap)
	require.Equal(t, entities.DarkTheme, snap.Theme)
	require.Empty(t, snap.CurrentIdentity)
	require.False(t, snap.Moderator)
}

func TestCodec_LoadMalformed(t *testing.T) {
	ctx := context.Background()
	s := memory.New()

	require.NoError(t, s.Set(ctx, string(PostsPartition), []byte("{broken")))
	require.NoError(t, s.Set(ctx, string(ReactionsPartition), []byte("[]")))
	require.NoError(t, s.Set(ctx, string(ThemePartition), []byte("sepia")))
	require.NoError(t, s.Set(ctx, string(RetiredPartition), []byte(`["Anna"]`)))
	require.NoError(t, s.Set(ctx, string(ModeratorPartition), []byte("yes")))

	snap, err := New(s).Load(ctx)
	require.NoError(t, err)

	assert.Empty(t, snap.Posts)
	assert.NotNil(t, snap.Posts)
	assert.Empty(t, snap.Reactions)
	assert.NotNil(t, snap.Reactions)
	assert.Equal(t, entities.DarkTheme, snap.Theme)
	assert.False(t, snap.Moderator)
	assert.True(t, snap.Retired.Has("Anna"))
}

func TestCodec_LoadStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)

	s.EXPECT().Get(gomock.Any(), string(CurrentIdentityPartition)).Return(nil, errTest)

	_, err := New(s).Load(context.Background())
	require.True(t, errors.Is(err, errTest))
}

func TestCodec_SaveLoad(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	c := New(s)

	ts := time.Unix(1700000000, 123000000)

	snap := NewSnapshot()
	snap.CurrentIdentity = "Anna"
	snap.Theme = entities.LightTheme
	snap.Moderator = true
	snap.Retired = entities.NewIdentitySet("Old", "Older")
	snap.Posts = []*entities.Post{
		{
			ID:        "p1",
			Author:    "Anna",
			Text:      "Яма на дороге",
			Category:  entities.ProblemCategory,
			ImageRef:  "data:image/png;base64,AAAA",
			City:      entities.City,
			Status:    entities.DoneStatus,
			CreatedAt: ts,
			Comments: []*entities.Comment{
				{ID: "c1", Author: "Boris", Text: "+1", CreatedAt: ts.Add(time.Second)},
			},
		},
		{
			ID:        "p2",
			Author:    "Boris",
			Text:      "Спасибо",
			Category:  entities.PraiseCategory,
			Status:    entities.OpenStatus,
			CreatedAt: ts,
			Comments:  []*entities.Comment{},
		},
	}
	snap.Reactions = map[string]*entities.ReactionSet{
		"p1": {Likes: entities.NewIdentitySet("Boris", "Anna"), Dislikes: entities.NewIdentitySet("Vera")},
	}
	snap.Conversations = map[string]*entities.Conversation{
		"Anna__Boris": {
			ID:           "Anna__Boris",
			Participants: [2]string{"Anna", "Boris"},
			Messages:     []*entities.Message{{ID: "m1", From: "Anna", Text: "Привет", CreatedAt: ts}},
		},
	}
	snap.Ads = []*entities.AdBlock{{ID: "a1", Title: "t", Text: "x", Link: "https://example.org", CreatedAt: ts}}

	require.NoError(t, c.Save(ctx, snap, Partitions...))

	loaded, err := c.Load(ctx)
	require.NoError(t, err)

	require.Equal(t, snap.CurrentIdentity, loaded.CurrentIdentity)
	require.Equal(t, snap.Theme, loaded.Theme)
	require.True(t, loaded.Moderator)
	require.Equal(t, snap.Retired, loaded.Retired)
	require.Equal(t, snap.Reactions, loaded.Reactions)

	require.Len(t, loaded.Posts, 2)
	p := loaded.Posts[0]
	require.Equal(t, "p1", p.ID)
	require.Equal(t, "Яма на дороге", p.Text)
	require.Equal(t, entities.ProblemCategory, p.Category)
	require.Equal(t, "data:image/png;base64,AAAA", p.ImageRef)
	require.Equal(t, entities.City, p.City)
	require.Equal(t, entities.DoneStatus, p.Status)
	require.True(t, ts.Equal(p.CreatedAt))
	require.Len(t, p.Comments, 1)
	require.Equal(t, "Boris", p.Comments[0].Author)
	require.True(t, ts.Add(time.Second).Equal(p.Comments[0].CreatedAt))
	require.Empty(t, loaded.Posts[1].ImageRef)

	conv := loaded.Conversations["Anna__Boris"]
	require.NotNil(t, conv)
	require.Equal(t, [2]string{"Anna", "Boris"}, conv.Participants)
	require.Len(t, conv.Messages, 1)
	require.Equal(t, "Привет", conv.Messages[0].Text)

	require.Len(t, loaded.Ads, 1)
	require.Equal(t, "https://example.org", loaded.Ads[0].Link)
	require.True(t, ts.Equal(loaded.Ads[0].CreatedAt))
}

func TestCodec_SaveAbsentDeletes(t *testing.T) {
	ctx := context.Background()
	s := memory.New()
	c := New(s)

	snap := NewSnapshot()
	snap.CurrentIdentity = "Anna"
	snap.Moderator = true
	require.NoError(t, c.Save(ctx, snap, CurrentIdentityPartition, ModeratorPartition))

	snap.CurrentIdentity = ""
	snap.Moderator = false
	require.NoError(t, c.Save(ctx, snap, CurrentIdentityPartition, ModeratorPartition))

	_, err := s.Get(ctx, string(CurrentIdentityPartition))
	require.True(t, errors.Is(err, storage.ErrNotFound))
	_, err = s.Get(ctx, string(ModeratorPartition))
	require.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestCodec_SaveWritesOnlyNamedPartitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)
	c := New(s)

	snap := NewSnapshot()

	s.EXPECT().Set(gomock.Any(), string(ReactionsPartition), []byte("{}")).Return(nil)
	require.NoError(t, c.Save(context.Background(), snap, ReactionsPartition))

	s.EXPECT().InTx(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f func(storage.Storage) error) error {
		return f(s)
	})
	s.EXPECT().Set(gomock.Any(), string(PostsPartition), []byte("[]")).Return(nil)
	s.EXPECT().Set(gomock.Any(), string(ReactionsPartition), []byte("{}")).Return(nil)
	require.NoError(t, c.Save(context.Background(), snap, PostsPartition, ReactionsPartition))

	require.NoError(t, c.Save(context.Background(), snap))
}

func TestCodec_SaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mock.NewMockStorage(ctrl)

	s.EXPECT().Set(gomock.Any(), string(ThemePartition), []byte("dark")).Return(errTest)

	err := New(s).Save(context.Background(), NewSnapshot(), ThemePartition)
	require.True(t, errors.Is(err, errTest))
}

func TestReactions_RoundTrip(t *testing.T) {
	tt := []struct {
		name string
		in   map[string]*entities.ReactionSet
	}{
		{
			name: "empty",
			in:   map[string]*entities.ReactionSet{},
		},
		{
			name: "ordered",
			in: map[string]*entities.ReactionSet{
				"1": {Likes: entities.NewIdentitySet("a", "b", "c"), Dislikes: entities.NewIdentitySet()},
			},
		},
		{
			name: "unordered",
			in: map[string]*entities.ReactionSet{
				"1": {Likes: entities.NewIdentitySet("c", "a", "b"), Dislikes: entities.NewIdentitySet("z", "y")},
				"2": {Likes: entities.NewIdentitySet(), Dislikes: entities.NewIdentitySet("Борис")},
			},
		},
	}

	for i := range tt {
		tc := tt[i]

		t.Run(tc.name, func(t *testing.T) {
			b, err := EncodeReactions(tc.in)
			require.NoError(t, err)

			out, err := DecodeReactions(b)
			require.NoError(t, err)
			require.Equal(t, tc.in, out)
		})
	}
}

func TestDecodeReactions_MissingFields(t *testing.T) {
	out, err := DecodeReactions([]byte(`{"1":{"likes":["a","a"]},"2":{}}`))
	require.NoError(t, err)

	require.Equal(t, entities.NewIdentitySet("a"), out["1"].Likes)
	require.NotNil(t, out["1"].Dislikes)
	require.Empty(t, out["1"].Dislikes)
	require.NotNil(t, out["2"].Likes)
	require.NotNil(t, out["2"].Dislikes)
}

func TestDecodeReactions_ConflictingVote(t *testing.T) {
	out, err := DecodeReactions([]byte(`{"1":{"likes":["a"],"dislikes":["a","b"]},"2":{"likes":["c"],"dislikes":["c"]}}`))
	require.NoError(t, err)

	require.Equal(t, entities.NewIdentitySet("a"), out["1"].Likes)
	require.Equal(t, entities.NewIdentitySet("b"), out["1"].Dislikes)
	require.Equal(t, entities.LikeReaction, out["1"].Vote("a"))

	require.Equal(t, entities.NewIdentitySet("c"), out["2"].Likes)
	require.Empty(t, out["2"].Dislikes)
}

func TestDecodePosts_BrowserFormat(t *testing.T) {
	data := []byte(`[{"id":"lq1x2abc","author":"Anna","text":"Яма на дороге","category":"problem",` +
		`"imageDataUrl":null,"createdAt":1700000000000,"city":"Чебоксары","comments":[]}]`)

	posts, err := DecodePosts(data)
	require.NoError(t, err)
	require.Len(t, posts, 1)

	require.Equal(t, entities.OpenStatus, posts[0].Status)
	require.Empty(t, posts[0].ImageRef)
	require.Equal(t, int64(1700000000000), posts[0].CreatedAt.UnixNano()/int64(time.Millisecond))
	require.NotNil(t, posts[0].Comments)
}
