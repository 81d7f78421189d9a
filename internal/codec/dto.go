package codec

import (
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/entities"
)

type commentDTO struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

type postDTO struct {
	ID           string       `json:"id"`
	Author       string       `json:"author"`
	Text         string       `json:"text"`
	Category     string       `json:"category"`
	ImageDataURL *string      `json:"imageDataUrl"`
	CreatedAt    int64        `json:"createdAt"`
	City         string       `json:"city,omitempty"`
	Status       string       `json:"status,omitempty"`
	Comments     []commentDTO `json:"comments"`
}

type reactionDTO struct {
	Likes    []string `json:"likes"`
	Dislikes []string `json:"dislikes"`
}

type messageDTO struct {
	ID        string `json:"id"`
	From      string `json:"from"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
}

type conversationDTO struct {
	ID           string       `json:"id"`
	Participants []string     `json:"participants"`
	Messages     []messageDTO `json:"messages"`
}

type adDTO struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Text      string `json:"text"`
	Link      string `json:"link"`
	CreatedAt int64  `json:"createdAt"`
}

func toMillis(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano() / int64(time.Millisecond)
}

func fromMillis(ms int64) time.Time {
	return time.Unix(0, ms*int64(time.Millisecond))
}

// EncodePosts ...
func EncodePosts(posts []*entities.Post) ([]byte, error) {
	out := make([]postDTO, len(posts))

	for i, p := range posts {
		v := postDTO{
			ID:        p.ID,
			Author:    p.Author,
			Text:      p.Text,
			Category:  string(p.Category),
			CreatedAt: toMillis(p.CreatedAt),
			City:      p.City,
			Status:    string(p.Status),
			Comments:  make([]commentDTO, len(p.Comments)),
		}

		if p.ImageRef != "" {
			img := p.ImageRef
			v.ImageDataURL = &img
		}

		for j, c := range p.Comments {
			v.Comments[j] = commentDTO{
				ID:        c.ID,
				Author:    c.Author,
				Text:      c.Text,
				CreatedAt: toMillis(c.CreatedAt),
			}
		}

		out[i] = v
	}

	return json.Marshal(out)
}

// DecodePosts ...
func DecodePosts(data []byte) ([]*entities.Post, error) {
	var in []postDTO
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	out := make([]*entities.Post, len(in))

	for i, v := range in {
		p := &entities.Post{
			ID:        v.ID,
			Author:    v.Author,
			Text:      v.Text,
			Category:  entities.Category(v.Category),
			City:      v.City,
			Status:    entities.PostStatus(v.Status),
			CreatedAt: fromMillis(v.CreatedAt),
			Comments:  make([]*entities.Comment, len(v.Comments)),
		}

		if v.ImageDataURL != nil {
			p.ImageRef = *v.ImageDataURL
		}

		if !p.Status.Valid() {
			p.Status = entities.OpenStatus
		}

		for j, c := range v.Comments {
			p.Comments[j] = &entities.Comment{
				ID:        c.ID,
				Author:    c.Author,
				Text:      c.Text,
				CreatedAt: fromMillis(c.CreatedAt),
			}
		}

		out[i] = p
	}

	return out, nil
}

// EncodeReactions materializes voter sets to arrays.
func EncodeReactions(r map[string]*entities.ReactionSet) ([]byte, error) {
	out := make(map[string]reactionDTO, len(r))

	for id, v := range r {
		out[id] = reactionDTO{
			Likes:    v.Likes.Slice(),
			Dislikes: v.Dislikes.Slice(),
		}
	}

	return json.Marshal(out)
}

// DecodeReactions rehydrates voter arrays into sets. Missing arrays become empty sets.
func DecodeReactions(data []byte) (map[string]*entities.ReactionSet, error) {
	var in map[string]reactionDTO
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	out := make(map[string]*entities.ReactionSet, len(in))

	for id, v := range in {
		r := &entities.ReactionSet{
			Likes:    entities.NewIdentitySet(v.Likes...),
			Dislikes: entities.NewIdentitySet(v.Dislikes...),
		}

		// a voter holds one reaction per post, the like wins
		for voter := range r.Likes {
			if r.Dislikes.Has(voter) {
				log.WithFields(logrus.Fields{"post": id, "identity": voter}).Warn("dropped conflicting dislike")
				r.Dislikes.Remove(voter)
			}
		}

		out[id] = r
	}

	return out, nil
}

// EncodeConversations ...
func EncodeConversations(c map[string]*entities.Conversation) ([]byte, error) {
	out := make(map[string]conversationDTO, len(c))

	for id, v := range c {
		d := conversationDTO{
			ID:           v.ID,
			Participants: []string{v.Participants[0], v.Participants[1]},
			Messages:     make([]messageDTO, len(v.Messages)),
		}

		for i, m := range v.Messages {
			d.Messages[i] = messageDTO{
				ID:        m.ID,
				From:      m.From,
				Text:      m.Text,
				CreatedAt: toMillis(m.CreatedAt),
			}
		}

		out[id] = d
	}

	return json.Marshal(out)
}

// DecodeConversations ...
func DecodeConversations(data []byte) (map[string]*entities.Conversation, error) {
	var in map[string]conversationDTO
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	out := make(map[string]*entities.Conversation, len(in))

	for id, v := range in {
		c := &entities.Conversation{
			ID:       id,
			Messages: make([]*entities.Message, len(v.Messages)),
		}
		copy(c.Participants[:], v.Participants)

		for i, m := range v.Messages {
			c.Messages[i] = &entities.Message{
				ID:        m.ID,
				From:      m.From,
				Text:      m.Text,
				CreatedAt: fromMillis(m.CreatedAt),
			}
		}

		out[id] = c
	}

	return out, nil
}

// EncodeIdentitySet ...
func EncodeIdentitySet(s entities.IdentitySet) ([]byte, error) {
	return json.Marshal(s.Slice())
}

// DecodeIdentitySet ...
func DecodeIdentitySet(data []byte) (entities.IdentitySet, error) {
	var in []string
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	return entities.NewIdentitySet(in...), nil
}

// EncodeAds ...
func EncodeAds(ads []*entities.AdBlock) ([]byte, error) {
	out := make([]adDTO, len(ads))

	for i, v := range ads {
		out[i] = adDTO{
			ID:        v.ID,
			Title:     v.Title,
			Text:      v.Text,
			Link:      v.Link,
			CreatedAt: toMillis(v.CreatedAt),
		}
	}

	return json.Marshal(out)
}

// DecodeAds ...
func DecodeAds(data []byte) ([]*entities.AdBlock, error) {
	var in []adDTO
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, err
	}

	out := make([]*entities.AdBlock, len(in))

	for i, v := range in {
		out[i] = &entities.AdBlock{
			ID:        v.ID,
			Title:     v.Title,
			Text:      v.Text,
			Link:      v.Link,
			CreatedAt: fromMillis(v.CreatedAt),
		}
	}

	return out, nil
}
