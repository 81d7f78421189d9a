package server

import (
	"net/http"

	"github.com/go-chi/chi"

	"github.com/gorodgovorit/board/internal/entities"
	"github.com/gorodgovorit/board/internal/service"
)

func (s server) getIdentity(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /identity Identity GetIdentity
	//
	// Returns current identity.
	//
	// ---
	// produces:
	// - application/json
	// responses:
	//   '200':
	//     description: Identity
	//     schema:
	//       "$ref": "#/definitions/IdentityResponse"

	writeOK(w, http.StatusOK, IdentityResponse{Name: s.s.CurrentIdentity(r.Context())})
}

func (s server) adopt(w http.ResponseWriter, r *http.Request) {
	// swagger:operation PUT /identity Identity Adopt
	//
	// Sets current identity.
	//
	// ---
	// consumes:
	// - application/json
	// produces:
	// - application/json
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/IdentityRequest"
	// responses:
	//   '200':
	//     description: Identity
	//     schema:
	//       "$ref": "#/definitions/IdentityResponse"
	//   '400':
	//     description: empty name
	//     schema:
	//       "$ref": "#/definitions/Error"
	//   '409':
	//     description: name was used before
	//     schema:
	//       "$ref": "#/definitions/Error"

	var req IdentityRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.s.Adopt(r.Context(), req.Name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, IdentityResponse{Name: s.s.CurrentIdentity(r.Context())})
}

func (s server) rename(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /identity/rename Identity Rename
	//
	// Renames current identity. The old name is retired.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/IdentityRequest"
	// responses:
	//   '200':
	//     description: Identity
	//     schema:
	//       "$ref": "#/definitions/IdentityResponse"
	//   '401':
	//     description: nobody is logged in
	//   '409':
	//     description: name was used before

	var req IdentityRequest
	if !decode(w, r, &req) {
		return
	}

	current := s.s.CurrentIdentity(r.Context())
	if current == "" {
		writeServiceError(w, r, service.ErrUnauthenticated)
		return
	}

	if err := s.s.Rename(r.Context(), current, req.Name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, IdentityResponse{Name: s.s.CurrentIdentity(r.Context())})
}

func (s server) logout(w http.ResponseWriter, r *http.Request) {
	if err := s.s.Logout(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) getTheme(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, ThemeResponse{Theme: s.s.Theme(r.Context())})
}

func (s server) setTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.s.SetTheme(r.Context(), req.Theme); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, ThemeResponse{Theme: req.Theme})
}

func (s server) listFeed(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts Posts ListFeed
	//
	// Returns the feed. It is recalculated on every request.
	//
	// ---
	// produces:
	// - application/json
	// parameters:
	// - name: category
	//   in: query
	//   required: false
	//   default: all
	//   type: string
	//   enum: [all, problem, idea, praise, other]
	// - name: sort
	//   in: query
	//   required: false
	//   default: new
	//   type: string
	//   enum: [new, top, discussed]
	// responses:
	//   '200':
	//     description: Posts
	//     schema:
	//       type: array
	//       items:
	//         "$ref": "#/definitions/Post"
	//   '400':
	//     description: bad request
	//     schema:
	//       "$ref": "#/definitions/Error"

	q := r.URL.Query()

	posts, err := s.s.ListFeed(r.Context(), entities.Category(q.Get("category")), service.SortMode(q.Get("sort")))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPosts(posts))
}

func (s server) listMyPosts(w http.ResponseWriter, r *http.Request) {
	current := s.s.CurrentIdentity(r.Context())
	if current == "" {
		writeServiceError(w, r, service.ErrUnauthenticated)
		return
	}

	writeOK(w, http.StatusOK, newPosts(s.s.ListPostsByAuthor(r.Context(), current)))
}

func (s server) createPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts Posts CreatePost
	//
	// Creates a post on behalf of current identity.
	//
	// ---
	// parameters:
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/CreatePostRequest"
	// responses:
	//   '201':
	//     description: Post
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '400':
	//     description: empty text or unknown category
	//   '401':
	//     description: nobody is logged in

	var req CreatePostRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := s.s.CreatePost(r.Context(), s.s.CurrentIdentity(r.Context()), req.Text, req.Category, req.ImageDataURL)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newPost(&entities.FeedPost{Post: p}))
}

func (s server) getPost(w http.ResponseWriter, r *http.Request) {
	p, err := s.s.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPost(p))
}

func (s server) deletePost(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s server) setPostStatus(w http.ResponseWriter, r *http.Request) {
	var req SetStatusRequest
	if !decode(w, r, &req) {
		return
	}

	id := chi.URLParam(r, "id")

	if err := s.s.SetPostStatus(r.Context(), id, req.Status); err != nil {
		writeServiceError(w, r, err)
		return
	}

	p, err := s.s.GetPost(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPost(p))
}

func (s server) exportPost(w http.ResponseWriter, r *http.Request) {
	// swagger:operation GET /posts/{id}/report Moderation ExportPost
	//
	// Returns plain text report of the post for city services.
	//
	// ---
	// produces:
	// - text/plain
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// responses:
	//   '200':
	//     description: Report
	//   '403':
	//     description: moderator session is required
	//   '404':
	//     description: post not found

	report, err := s.s.ExportPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report))
}

func (s server) addComment(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decode(w, r, &req) {
		return
	}

	c, err := s.s.AddComment(r.Context(), chi.URLParam(r, "id"), s.s.CurrentIdentity(r.Context()), req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newComment(c))
}

func (s server) getReactions(w http.ResponseWriter, r *http.Request) {
	rs, err := s.s.Reactions(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newReactions(rs))
}

func (s server) toggleReaction(w http.ResponseWriter, r *http.Request) {
	// swagger:operation POST /posts/{id}/reactions Posts ToggleReaction
	//
	// Toggles a vote of current identity. Same kind twice removes the vote.
	//
	// ---
	// parameters:
	// - name: id
	//   in: path
	//   required: true
	//   type: string
	// - name: request
	//   in: body
	//   required: true
	//   schema:
	//     "$ref": "#/definitions/ReactionRequest"
	// responses:
	//   '200':
	//     description: Post with updated counters
	//     schema:
	//       "$ref": "#/definitions/Post"
	//   '401':
	//     description: nobody is logged in
	//   '404':
	//     description: post not found

	var req ReactionRequest
	if !decode(w, r, &req) {
		return
	}

	p, err := s.s.ToggleReaction(r.Context(), chi.URLParam(r, "id"), s.s.CurrentIdentity(r.Context()), req.Kind)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newPost(p))
}

func (s server) listConversations(w http.ResponseWriter, r *http.Request) {
	current := s.s.CurrentIdentity(r.Context())
	if current == "" {
		writeServiceError(w, r, service.ErrUnauthenticated)
		return
	}

	writeOK(w, http.StatusOK, newConversations(s.s.ListConversationsFor(r.Context(), current)))
}

func (s server) ensureConversation(w http.ResponseWriter, r *http.Request) {
	var req ConversationRequest
	if !decode(w, r, &req) {
		return
	}

	current := s.s.CurrentIdentity(r.Context())
	if current == "" {
		writeServiceError(w, r, service.ErrUnauthenticated)
		return
	}

	c, err := s.s.EnsureConversation(r.Context(), current, req.With)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newConversation(c))
}

func (s server) getConversation(w http.ResponseWriter, r *http.Request) {
	c, err := s.s.GetConversation(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, newConversation(c))
}

func (s server) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req TextRequest
	if !decode(w, r, &req) {
		return
	}

	m, err := s.s.SendMessage(r.Context(), chi.URLParam(r, "id"), s.s.CurrentIdentity(r.Context()), req.Text)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newMessage(m))
}

func (s server) getModerator(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, ModeratorResponse{Moderator: s.s.IsModerator(r.Context())})
}

func (s server) moderatorLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decode(w, r, &req) {
		return
	}

	if err := s.s.ModeratorLogin(r.Context(), req.Name, req.Password); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, ModeratorResponse{Moderator: true})
}

func (s server) moderatorLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.s.ModeratorLogout(r.Context()); err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, ModeratorResponse{Moderator: false})
}

func (s server) listAds(w http.ResponseWriter, r *http.Request) {
	writeOK(w, http.StatusOK, newAds(s.s.ListAds(r.Context())))
}

func (s server) createAd(w http.ResponseWriter, r *http.Request) {
	var req CreateAdRequest
	if !decode(w, r, &req) {
		return
	}

	ad, err := s.s.CreateAd(r.Context(), req.Title, req.Text, req.Link)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeOK(w, http.StatusCreated, newAd(ad))
}

func (s server) deleteAd(w http.ResponseWriter, r *http.Request) {
	if err := s.s.DeleteAd(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
