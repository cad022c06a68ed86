package models

import (
	"fmt"
	"strings"
	"time"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 150
)

// User is the aggregate for the identity bounded context. PasswordHash is a
// bcrypt hash; the plaintext password never leaves the application service.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// NewUser constructs a valid User. The ID is zero until the repository
// persists the user.
func NewUser(username, passwordHash string) (*User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLength {
		return nil, fmt.Errorf("username must be at least %d characters", minUsernameLength)
	}
	if len(username) > maxUsernameLength {
		return nil, fmt.Errorf("username must not exceed %d characters", maxUsernameLength)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash must be set")
	}
	return &User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
