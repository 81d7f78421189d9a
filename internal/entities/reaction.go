package entities

// ReactionKind ...
type ReactionKind string

const (
	// LikeReaction ...
	LikeReaction ReactionKind = "like"
	// DislikeReaction ...
	DislikeReaction ReactionKind = "dislike"
)

// Valid ...
func (k ReactionKind) Valid() bool {
	return k == LikeReaction || k == DislikeReaction
}

// ReactionSet holds voters of a single post.
// An identity is never a member of both sets.
type ReactionSet struct {
	Likes    IdentitySet
	Dislikes IdentitySet
}

// NewReactionSet ...
func NewReactionSet() *ReactionSet {
	return &ReactionSet{
		Likes:    IdentitySet{},
		Dislikes: IdentitySet{},
	}
}

// Clone ...
func (r *ReactionSet) Clone() *ReactionSet {
	return &ReactionSet{
		Likes:    r.Likes.Clone(),
		Dislikes: r.Dislikes.Clone(),
	}
}

// Toggle applies a vote of identity.
// Voting twice with the same kind removes the vote, voting with the opposite kind moves it.
func (r *ReactionSet) Toggle(identity string, kind ReactionKind) {
	same, other := r.Likes, r.Dislikes
	if kind == DislikeReaction {
		same, other = r.Dislikes, r.Likes
	}

	if same.Has(identity) {
		same.Remove(identity)
		return
	}

	same.Add(identity)
	other.Remove(identity)
}

// Vote returns the kind identity voted with, or empty string.
func (r *ReactionSet) Vote(identity string) ReactionKind {
	switch {
	case r.Likes.Has(identity):
		return LikeReaction
	case r.Dislikes.Has(identity):
		return DislikeReaction
	}
	return ""
}

// Score is likes minus dislikes.
func (r *ReactionSet) Score() int {
	if r == nil {
		return 0
	}
	return len(r.Likes) - len(r.Dislikes)
}
