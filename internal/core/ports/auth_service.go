package ports

import (
	"context"

	"github.com/recordkeep/records-api/internal/core/domain"
)

// RegisterInput carries a registration request. Email is case-normalized by
// the service; Password arrives in plaintext and is hashed before persistence.
type RegisterInput struct {
	Email    string
	FullName string
	Password string
}

// UpdateProfileInput carries an own-profile update. Nil fields are left
// untouched; a non-nil Password is re-hashed.
type UpdateProfileInput struct {
	FullName *string
	Password *string
}

// LoginResult is returned after a successful credential check.
type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // seconds
}

// AuthService covers credential verification, token issuance, and per-request
// identity resolution.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// Resolve decodes a bearer token and re-fetches the corresponding live
	// user from the store. Token validity alone is not sufficient proof: a
	// user deleted after issuance fails resolution.
	Resolve(ctx context.Context, tokenString string) (*domain.User, error)
	UpdateProfile(ctx context.Context, user *domain.User, input UpdateProfileInput) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
