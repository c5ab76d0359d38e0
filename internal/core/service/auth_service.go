package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/ports"
	"github.com/recordkeep/records-api/internal/password"
	"github.com/recordkeep/records-api/internal/token"
)

const tokenType = "bearer"

// AuthService implements registration, login, and per-request token
// resolution against the user store.
type AuthService struct {
	repo       ports.UserRepository
	codec      *token.Codec
	tokenTTL   time.Duration
	bcryptCost int
	logger     zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, tokenTTL time.Duration, bcryptCost int, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 30 * time.Minute
	}
	return &AuthService{
		repo:       repo,
		codec:      codec,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          email,
		FullName:       input.FullName,
		HashedPassword: hash,
		IsActive:       true,
		IsSuperuser:    false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// authenticate verifies a credential pair. Unknown email and wrong password
// fail identically so callers cannot distinguish the two (no account
// enumeration through error shape or message).
func (s *AuthService) authenticate(ctx context.Context, email, plain string) (*domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || plain == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plain, user.HashedPassword) {
		return nil, domain.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, plain string) (*ports.LoginResult, error) {
	user, err := s.authenticate(ctx, email, plain)
	if err != nil {
		return nil, err
	}

	signed, err := s.codec.Issue(user.ID, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("login succeeded")
	return &ports.LoginResult{
		AccessToken: signed,
		TokenType:   tokenType,
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
	}, nil
}

// Resolve maps a bearer token back to a live user. The codec failure reason
// is logged for operators but collapsed into ErrTokenInvalid for the caller.
// A token whose subject no longer exists in the store fails resolution: the
// store is re-checked on every request.
func (s *AuthService) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		s.logger.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrTokenInvalid
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Debug().Str("user_id", claims.Subject).Msg("token subject no longer exists")
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, user *domain.User, input ports.UpdateProfileInput) (*domain.User, error) {
	updated := *user
	if input.FullName != nil {
		updated.FullName = *input.FullName
	}
	if input.Password != nil {
		hash, err := password.Hash(*input.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		updated.HashedPassword = hash
	}
	updated.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, &updated)
}

func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
