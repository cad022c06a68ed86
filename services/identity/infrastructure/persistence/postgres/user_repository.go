package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/blooprint/pkg/database"
	userdomain "github.com/ghuser/blooprint/services/identity/domain"
	"github.com/ghuser/blooprint/services/identity/domain/models"
)

const pgUniqueViolation = "23505"

// UserRepository implements repositories.UserRepository against PostgreSQL.
type UserRepository struct {
	db *database.Database
}

// NewUserRepository returns a UserRepository backed by the given connection pool.
func NewUserRepository(db *database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new User. The store-assigned ID is written back into
// user.ID. Returns ErrUserAlreadyExists on a username collision.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	err := r.db.DB().QueryRowContext(ctx,
		`INSERT INTO users (username, password_hash, created_at)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		user.Username, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return userdomain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a User by username. Returns ErrUserNotFound if no
// row matches.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.DB().QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at
		 FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, userdomain.ErrUserNotFound
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &user, nil
}
