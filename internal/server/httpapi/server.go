// Package httpapi exposes the devserver's REST surface, mirroring the
// production gym service contract the client is written against:
//
//	POST  /sessions       {email,password}            -> {user, token}
//	POST  /users          {name,email,password}       -> 201
//	PUT   /users          {name,email,old_password,password} -> {user}
//	PATCH /users/avatar   multipart field "avatar"    -> {avatar}
//
// Every error the service acknowledges answers {"message": "..."} with a
// 4xx status; unexpected failures answer a bare 500.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/gymtrack/internal/logging"
	"github.com/dmitrijs2005/gymtrack/internal/server/auth"
	"github.com/dmitrijs2005/gymtrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/gymtrack/internal/server/storage"
)

// Server holds the handler dependencies.
type Server struct {
	users     users.Repository
	tokens    *auth.TokenIssuer
	avatars   *storage.AvatarStore
	log       logging.Logger
	maxUpload int64
	bcrypt    int
}

func NewServer(repo users.Repository, tokens *auth.TokenIssuer, avatars *storage.AvatarStore,
	maxUpload int64, bcryptCost int, log logging.Logger) *Server {
	return &Server{
		users:     repo,
		tokens:    tokens,
		avatars:   avatars,
		log:       log,
		maxUpload: maxUpload,
		bcrypt:    bcryptCost,
	}
}

// Router builds the chi router with the public and authenticated routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Post("/sessions", s.createSession)
	r.Post("/users", s.createUser)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Put("/users", s.updateUser)
		r.Patch("/users/avatar", s.updateAvatar)
	})

	return r
}
