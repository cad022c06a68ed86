package repositories

import (
	"context"

	"github.com/ghuser/blooprint/services/identity/domain/models"
)

// UserRepository is the persistence interface for the User aggregate.
// Implementations return ErrUserAlreadyExists on a username collision and
// ErrUserNotFound when no row matches.
type UserRepository interface {
	// Create persists a new User. The store assigns the ID and the assigned
	// value is written back into user.ID.
	Create(ctx context.Context, user *models.User) error

	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
