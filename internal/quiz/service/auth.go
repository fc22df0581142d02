package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Cau1809/quiz-programming/internal/quiz/domain"
	"github.com/Cau1809/quiz-programming/internal/quiz/store"
	"github.com/Cau1809/quiz-programming/pkg/cryptox"
	"github.com/Cau1809/quiz-programming/pkg/idx"
	"github.com/Cau1809/quiz-programming/pkg/jwtx"
)

var (
	ErrInvalidInput       = errors.New("service: missing required field")
	ErrUserTaken          = errors.New("service: username already registered")
	ErrUserNotFound       = errors.New("service: user not found")
	ErrInvalidCredentials = errors.New("service: incorrect password")
)

// AuthService orchestrates registration and login. It owns no state beyond
// its injected collaborators: the credential store and the token signer.
type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
}

// Register creates a new account with a bcrypt-hashed password.
//
// The username lookup is only an optimization for a friendly error: the
// UNIQUE constraint on users.username is the authority, so two concurrent
// registrations for the same name race down to exactly one inserted row and
// one ErrUserTaken.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	_, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err == nil {
		return ErrUserTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup username: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrUserTaken
		}
		return fmt.Errorf("create user: %w", err)
	}

	return nil
}

// Login verifies the credentials and issues a signed session token valid for
// TokenTTL (one hour by default). Nothing is persisted; the token is the
// whole session.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", ErrInvalidInput
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("lookup username: %w", err)
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("verify password: %w", err)
	}

	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}

	claims := jwtx.NewSessionClaims(user.ID, user.Username, s.Issuer, ttl, time.Now().UTC())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}

	return token, nil
}
