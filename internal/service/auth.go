package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/files-manager/internal/model"
	"github.com/iliyamo/files-manager/internal/repository"
)

// AuthService validates credentials and manages session tokens.  Tokens
// are opaque random UUIDs stored server-side, so logout revokes them
// immediately and expiry is enforced by the session store's TTL.
type AuthService struct {
	Users    UserStore
	Sessions SessionStore
}

func NewAuthService(users UserStore, sessions SessionStore) *AuthService {
	return &AuthService{Users: users, Sessions: sessions}
}

// Login exchanges a Basic Authorization header value for a fresh
// session token.  The header carries base64("email:password"); the
// credential pair must match a stored user exactly.
func (s *AuthService) Login(ctx context.Context, authHeader string) (string, error) {
	email, password, ok := decodeBasic(authHeader)
	if !ok {
		return "", ErrUnauthorized
	}
	u, err := s.Users.GetByCredentials(ctx, email, password)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrUnauthorized
	}
	if err != nil {
		return "", err
	}
	token := uuid.NewString()
	if err := s.Sessions.Create(ctx, token, u.ID); err != nil {
		return "", err
	}
	return token, nil
}

// Logout destroys the session behind token.  An unknown or already
// expired token reports ErrUnauthorized, same as any other use of a
// dead token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return ErrUnauthorized
	}
	err := s.Sessions.Delete(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUnauthorized
	}
	return err
}

// Resolve looks up the user id behind a session token.  It is a pure
// read: the session's remaining lifetime is never extended.
func (s *AuthService) Resolve(ctx context.Context, token string) (uint64, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}
	id, err := s.Sessions.Get(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return 0, ErrUnauthorized
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// Register creates a user with the given credentials and returns its id.
func (s *AuthService) Register(ctx context.Context, email, password string) (uint64, error) {
	if strings.TrimSpace(email) == "" {
		return 0, ErrMissingEmail
	}
	if password == "" {
		return 0, ErrMissingPassword
	}
	id, err := s.Users.Create(ctx, email, password)
	if errors.Is(err, repository.ErrEmailExists) {
		return 0, ErrAlreadyExists
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CurrentUser loads the user record for an already resolved identity.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint64) (model.User, error) {
	u, err := s.Users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return model.User{}, ErrUnauthorized
	}
	return u, err
}

// decodeBasic extracts the email/password pair from an
// "Authorization: Basic <base64>" header value.  The password may
// itself contain colons; only the first one separates the pair.
func decodeBasic(header string) (email, password string, ok bool) {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return "", "", false
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return "", "", false
	}
	email, password, ok = strings.Cut(string(raw), ":")
	if !ok || email == "" {
		return "", "", false
	}
	return email, password, true
}
