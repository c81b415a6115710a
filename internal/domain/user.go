package domain

import (
	"context"
	"time"
)

// Role is an application role.
type Role string

// Roles.
const (
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
)

// UserStatus is the account status.
type UserStatus string

// User statuses.
const (
	UserActive   UserStatus = "ACTIVE"
	UserDisabled UserStatus = "DISABLED"
)

// User represents a registered club member or administrator.
// swagger:model User
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Salt         string     `json:"-"`
	Role         Role       `json:"role"`
	Status       UserStatus `json:"status"`
	Email        *string    `json:"email"`
	PhotoURL     *string    `json:"photo_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(userID, username string, role Role, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user's
// identity and role claim.
type TokenVerifier interface {
	Verify(token string) (userID string, role Role, err error)
}

// UserRepository defines the interface for user storage.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

// AuthService defines signup, login, and the "who am I" check.
type AuthService interface {
	SignUp(ctx context.Context, username, password string, email *string) (*User, error)
	Login(ctx context.Context, username, password string) (token string, user *User, err error)
	// Me returns the current user. A DISABLED user is rejected with
	// ErrUserDisabled even when the token is still valid.
	Me(ctx context.Context, userID string) (*User, error)
}
