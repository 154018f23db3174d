package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/gymtrack/internal/server/models"
)

// userDTO is the wire shape of an account; the password hash never leaves
// the server.
type userDTO struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

func toDTO(u *models.User) userDTO {
	return userDTO{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.Error(context.Background(), "encode response", "err", err)
	}
}

// writeMessage answers the service's domain-error contract: a JSON body
// with a single user-presentable message.
func (s *Server) writeMessage(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"message": message})
}

// internalError answers a bare 500 with no message body, which clients
// treat as an unknown failure.
func (s *Server) internalError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	s.log.Error(ctx, "internal error", "op", op, "err", err)
	w.WriteHeader(http.StatusInternalServerError)
}
