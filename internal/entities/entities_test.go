package entities

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConversationKey(t *testing.T) {
	tt := []struct {
		a, b string
		key  string
	}{
		{"Anna", "Boris", "Anna__Boris"},
		{"Boris", "Anna", "Anna__Boris"},
		{"я", "a", "a__я"},
		{"x", "x", "x__x"},
	}

	for _, tc := range tt {
		require.Equal(t, tc.key, ConversationKey(tc.a, tc.b))
		require.Equal(t, ConversationKey(tc.a, tc.b), ConversationKey(tc.b, tc.a))
	}
}

func TestCategory(t *testing.T) {
	for _, c := range []Category{ProblemCategory, IdeaCategory, PraiseCategory, OtherCategory} {
		require.True(t, c.Valid())
	}
	require.False(t, Category("all").Valid())
	require.False(t, Category("").Valid())

	require.Equal(t, "Проблема", ProblemCategory.Label())
	require.Equal(t, "Идея / предложение", IdeaCategory.Label())
	require.Equal(t, "Благодарность", PraiseCategory.Label())
	require.Equal(t, "Другое", OtherCategory.Label())
	require.Equal(t, "Другое", Category("unknown").Label())
}

func TestIdentitySet(t *testing.T) {
	s := NewIdentitySet("b", "a", "b")
	require.Len(t, s, 2)
	require.True(t, s.Has("a"))
	require.Equal(t, []string{"a", "b"}, s.Slice())

	c := s.Clone()
	c.Remove("a")
	require.True(t, s.Has("a"))
	require.False(t, c.Has("a"))

	require.Equal(t, []string{}, IdentitySet{}.Slice())
}

func TestReactionSet_Toggle(t *testing.T) {
	r := NewReactionSet()

	r.Toggle("Boris", LikeReaction)
	require.Equal(t, 1, r.Score())
	require.Equal(t, LikeReaction, r.Vote("Boris"))

	r.Toggle("Boris", DislikeReaction)
	require.Equal(t, -1, r.Score())
	require.False(t, r.Likes.Has("Boris"))
	require.Equal(t, DislikeReaction, r.Vote("Boris"))

	r.Toggle("Boris", DislikeReaction)
	require.Equal(t, 0, r.Score())
	require.Equal(t, ReactionKind(""), r.Vote("Boris"))
}

func TestReactionSet_MutualExclusion(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	voters := []string{"a", "b", "c", "d"}
	kinds := []ReactionKind{LikeReaction, DislikeReaction}

	r := NewReactionSet()
	for i := 0; i < 1000; i++ {
		r.Toggle(voters[rnd.Intn(len(voters))], kinds[rnd.Intn(len(kinds))])

		for v := range r.Likes {
			require.False(t, r.Dislikes.Has(v), "%s is in both sets", v)
		}
	}
}

func TestPost_Clone(t *testing.T) {
	p := &Post{ID: "1", Comments: []*Comment{{ID: "c", Author: "a"}}}
	c := p.Clone()
	c.Comments[0].Author = "b"
	c.Comments = append(c.Comments, &Comment{ID: "d"})

	require.Equal(t, "a", p.Comments[0].Author)
	require.Len(t, p.Comments, 1)
}

func TestConversation(t *testing.T) {
	c := &Conversation{ID: ConversationKey("a", "b"), Participants: [2]string{"a", "b"}}
	require.Nil(t, c.LastMessage())
	require.True(t, c.HasParticipant("b"))
	require.False(t, c.HasParticipant("c"))
	require.Equal(t, "b", c.Peer("a"))
	require.Equal(t, "a", c.Peer("b"))

	c.Messages = append(c.Messages, &Message{ID: "1"}, &Message{ID: "2"})
	require.Equal(t, "2", c.LastMessage().ID)

	cc := c.Clone()
	cc.Messages[0].Text = "changed"
	require.Empty(t, c.Messages[0].Text)
}
