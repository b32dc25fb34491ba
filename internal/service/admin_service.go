package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

var ErrInvalidPassword = errors.New("invalid admin password")

// StaticAuthenticator is the shared-password backend: an exact string match
// against the configured password.
type StaticAuthenticator struct {
	Password string
}

func (a StaticAuthenticator) Authenticate(password string) bool {
	return password == a.Password
}

var _ Authenticator = StaticAuthenticator{}

type AdminService struct {
	auth     Authenticator
	sessions SessionStore
}

func NewAdminService(auth Authenticator, sessions SessionStore) *AdminService {
	return &AdminService{auth: auth, sessions: sessions}
}

func (s *AdminService) Login(ctx context.Context, password string) (string, error) {
	if !s.auth.Authenticate(password) {
		return "", ErrInvalidPassword
	}
	token, err := newSessionToken()
	if err != nil {
		return "", err
	}
	if err := s.sessions.Set(ctx, token); err != nil {
		return "", err
	}
	return token, nil
}

func (s *AdminService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

func (s *AdminService) IsAuthenticated(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	ok, err := s.sessions.Exists(ctx, token)
	return err == nil && ok
}

func newSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

var _ AdminServiceInterface = (*AdminService)(nil)
