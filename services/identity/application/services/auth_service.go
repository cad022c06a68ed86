package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	userdomain "github.com/ghuser/blooprint/services/identity/domain"
	"github.com/ghuser/blooprint/services/identity/domain/models"
	"github.com/ghuser/blooprint/services/identity/domain/repositories"
)

const minPasswordLength = 8

// TokenIssuer creates bearer access tokens for authenticated users.
// Satisfied by pkg/auth.TokenStore.
type TokenIssuer interface {
	Issue(ctx context.Context, userID int64) (string, error)
}

// AuthService handles user registration and login. Passwords are hashed with
// bcrypt; successful logins yield an opaque bearer access token.
type AuthService struct {
	repo   repositories.UserRepository
	tokens TokenIssuer
}

// NewAuthService returns an AuthService wired with the given repository and
// token issuer.
func NewAuthService(repo repositories.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{repo: repo, tokens: tokens}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, error) {
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters",
			userdomain.ErrInvalidCredentials, minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := models.NewUser(username, string(hash))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", userdomain.ErrInvalidCredentials, err)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer access token.
// An unknown username and a wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			return "", userdomain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", userdomain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
