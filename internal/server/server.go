// Package server Город говорит
//
// The local API of the board. It is served on the loopback interface only and is used by the UI.
//
//     Schemes: http
//     BasePath: /v1
//     Version: 1.0.0
//
//     Produces:
//     - application/json
//     Consumes:
//     - application/json
//
// swagger:meta
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"

	mm "github.com/gorodgovorit/board/internal/middleware"
	"github.com/gorodgovorit/board/internal/service"
)

var log = logrus.WithField("layer", "server")

// Posts carry images as data URLs.
const maxBodySize = 8 << 20

type server struct {
	s service.Service
}

// SetupRouter setups handlers to chi router.
func SetupRouter(s service.Service, r chi.Router, timeout time.Duration) {
	r.Use(
		mm.Logger,
		middleware.StripSlashes,
		middleware.RequestID,
		middleware.Recoverer,
		mm.LoopbackOnly,
		middleware.Timeout(timeout),
		mm.BodyLimiter(maxBodySize),
	)

	srv := server{
		s: s,
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/identity", srv.getIdentity)
		r.Put("/identity", srv.adopt)
		r.Post("/identity/rename", srv.rename)
		r.Post("/identity/logout", srv.logout)

		r.Get("/theme", srv.getTheme)
		r.Put("/theme", srv.setTheme)

		r.Get("/posts", srv.listFeed)
		r.Post("/posts", srv.createPost)
		r.Get("/posts/mine", srv.listMyPosts)
		r.Get("/posts/{id}", srv.getPost)
		r.Delete("/posts/{id}", srv.deletePost)
		r.Put("/posts/{id}/status", srv.setPostStatus)
		r.Get("/posts/{id}/report", srv.exportPost)
		r.Post("/posts/{id}/comments", srv.addComment)
		r.Get("/posts/{id}/reactions", srv.getReactions)
		r.Post("/posts/{id}/reactions", srv.toggleReaction)

		r.Get("/conversations", srv.listConversations)
		r.Post("/conversations", srv.ensureConversation)
		r.Get("/conversations/{id}", srv.getConversation)
		r.Post("/conversations/{id}/messages", srv.sendMessage)

		r.Get("/moderator", srv.getModerator)
		r.Post("/moderator/login", srv.moderatorLogin)
		r.Post("/moderator/logout", srv.moderatorLogout)

		r.Get("/ads", srv.listAds)
		r.Post("/ads", srv.createAd)
		r.Delete("/ads/{id}", srv.deleteAd)
	})
}

func writeOK(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Error("failed to write response")
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeOK(w, code, Error{Error: msg})
}

// writeServiceError maps service errors to http statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument), errors.Is(err, service.ErrInvalidPair):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNameUnavailable):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.WithField("request_id", middleware.GetReqID(r.Context())).WithError(err).Error("internal error")
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
