// Package users persists devserver accounts.
package users

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/gymtrack/internal/server/models"
)

var (
	ErrNotFound    = errors.New("user not found")
	ErrEmailExists = errors.New("e-mail already registered")
)

// Repository is the storage contract for accounts. Implementations map
// storage-level failures onto the sentinel errors above.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}
