package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/gymtrack/internal/server/auth"
	"github.com/dmitrijs2005/gymtrack/internal/server/models"
	"github.com/dmitrijs2005/gymtrack/internal/server/repositories/users"
)

type createSessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := s.users.GetByEmail(r.Context(), strings.ToLower(req.Email))
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			s.writeMessage(w, http.StatusUnauthorized, "Invalid e-mail or password.")
			return
		}
		s.internalError(r.Context(), w, "create session", err)
		return
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.writeMessage(w, http.StatusUnauthorized, "Invalid e-mail or password.")
		return
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.internalError(r.Context(), w, "issue token", err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]any{
		"user":  toDTO(user),
		"token": token,
	})
}

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		s.writeMessage(w, http.StatusBadRequest, "Name, e-mail and password are required.")
		return
	}

	hash, err := auth.HashPassword(req.Password, s.bcrypt)
	if err != nil {
		s.internalError(r.Context(), w, "create user", err)
		return
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := s.users.Create(r.Context(), user); err != nil {
		if errors.Is(err, users.ErrEmailExists) {
			s.writeMessage(w, http.StatusConflict, "This e-mail is already in use.")
			return
		}
		s.internalError(r.Context(), w, "create user", err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

type updateUserRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	OldPassword string `json:"old_password"`
	Password    string `json:"password"`
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request) {
	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	user, err := s.users.GetByID(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.internalError(r.Context(), w, "update user", err)
		return
	}

	if name := strings.TrimSpace(req.Name); name != "" {
		user.Name = name
	}
	if email := strings.ToLower(strings.TrimSpace(req.Email)); email != "" {
		user.Email = email
	}

	if req.Password != "" {
		if !auth.CheckPassword(user.PasswordHash, req.OldPassword) {
			s.writeMessage(w, http.StatusUnauthorized, "The current password is wrong.")
			return
		}
		hash, err := auth.HashPassword(req.Password, s.bcrypt)
		if err != nil {
			s.internalError(r.Context(), w, "update user", err)
			return
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(r.Context(), user); err != nil {
		if errors.Is(err, users.ErrEmailExists) {
			s.writeMessage(w, http.StatusConflict, "This e-mail is already in use.")
			return
		}
		s.internalError(r.Context(), w, "update user", err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"user": toDTO(user)})
}

func (s *Server) updateAvatar(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload+4096)

	file, header, err := r.FormFile("avatar")
	if err != nil {
		s.writeMessage(w, http.StatusBadRequest, "Send the image in the 'avatar' field.")
		return
	}
	defer file.Close()

	if header.Size > s.maxUpload {
		s.writeMessage(w, http.StatusRequestEntityTooLarge, "This image is too big. Choose one up to 5 MB.")
		return
	}

	user, err := s.users.GetByID(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		s.internalError(r.Context(), w, "update avatar", err)
		return
	}

	name, err := s.avatars.Save(header.Filename, file)
	if err != nil {
		s.internalError(r.Context(), w, "update avatar", err)
		return
	}

	previous := user.Avatar
	user.Avatar = name
	if err := s.users.Update(r.Context(), user); err != nil {
		s.internalError(r.Context(), w, "update avatar", err)
		return
	}
	if err := s.avatars.Remove(previous); err != nil {
		s.log.Warn(r.Context(), "stale avatar not removed", "file", previous, "err", err)
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"avatar": name})
}
