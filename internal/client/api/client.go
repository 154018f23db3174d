// Package api implements the remote boundary of the gymtrack client: a
// small HTTP/JSON client for the gym service. The Client interface is what
// the rest of the client programs against; the HTTP implementation lives
// in http.go.
package api

import (
	"context"

	"github.com/dmitrijs2005/gymtrack/internal/client/device"
	"github.com/dmitrijs2005/gymtrack/internal/client/models"
)

// Session is the response of a successful sign-in: the account profile and
// a bearer token to present on authenticated calls.
type Session struct {
	User  models.User `json:"user"`
	Token string      `json:"token"`
}

// ProfileUpdate carries the mutable profile fields for PUT /users.
// Empty password fields mean "keep the current password".
type ProfileUpdate struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	OldPassword string `json:"old_password,omitempty"`
	Password    string `json:"password,omitempty"`
}

// Client defines the remote operations the session layer needs.
//
// Contract:
//   - SignIn: exchange credentials for a Session.
//   - CreateUser: register a new account.
//   - UpdateProfile: persist profile changes, returning the updated user.
//   - UploadAvatar: multipart-upload a picked image, returning the new
//     avatar reference.
//
// Failures the service acknowledged come back as *DomainError; transport
// and decoding failures come back as plain wrapped errors. All methods
// honor context cancellation.
type Client interface {
	SignIn(ctx context.Context, email, password string) (*Session, error)
	CreateUser(ctx context.Context, name, email, password string) error
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error)
	UploadAvatar(ctx context.Context, ref device.FileRef) (string, error)
}

// TokenSource supplies the current bearer token, or "" when no session is
// open. The session store is the usual implementation.
type TokenSource func() string
