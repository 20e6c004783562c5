// Package identity provides email/password accounts and signed access
// tokens. It is injected into the server and the CLI, never shared as a
// package-level singleton.
package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/stealthwork/kanjistudy/internal/config"
	"github.com/stealthwork/kanjistudy/internal/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// Service signs users up and in and verifies their tokens.
type Service struct {
	users    store.UserRepository
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

// NewService creates a Service from the configured signing secret and TTL.
func NewService(cfg config.AuthConfig, users store.UserRepository) (*Service, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is not configured")
	}
	return &Service{
		users:    users,
		secret:   []byte(cfg.JWTSecret),
		tokenTTL: time.Duration(cfg.TokenTTLHours) * time.Hour,
		now:      time.Now,
	}, nil
}

// SignUp creates an account and returns it with a fresh token.
func (s *Service) SignUp(ctx context.Context, email, password, displayName string) (*store.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("bcrypt.GenerateFromPassword > %w", err)
	}

	user := &store.User{
		ID:           uuid.NewString(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", fmt.Errorf("users.Create > %w", err)
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn checks the password and returns the account with a fresh token.
// Unknown emails and wrong passwords produce the same error.
func (s *Service) SignIn(ctx context.Context, email, password string) (*store.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", fmt.Errorf("users.FindByEmail > %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Verify parses a token and returns the account it identifies.
func (s *Service) Verify(ctx context.Context, tokenString string) (*store.User, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, claims.Subject)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("users.FindByID > %w", err)
	}
	return user, nil
}

func (s *Service) issueToken(user *store.User) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token.SignedString > %w", err)
	}
	return token, nil
}
