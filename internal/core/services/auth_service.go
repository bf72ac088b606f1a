package services

import (
	"context"
	"errors"

	"systemgp/internal/adapters/persistence/repositories"
	"systemgp/internal/core/domain"
	"systemgp/internal/core/session"

	"github.com/rs/zerolog"
)

// AuthService gates access to the system. A successful login stores the
// user in the injected session; everything else yields
// ErrInvalidCredentials without revealing whether the login exists.
type AuthService struct {
	users repositories.UserRepository
	sess  *session.Session
	log   zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository, sess *session.Session, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, sess: sess, log: log}
}

// Login authenticates the credentials and records the user as the
// current actor.
func (s *AuthService) Login(ctx context.Context, login, plain string) (*domain.User, error) {
	user, err := s.users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Warn().Str("login", login).Msg("invalid login attempt")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.users.CheckPassword(user, plain) {
		s.log.Warn().Str("login", login).Msg("invalid login attempt")
		return nil, domain.ErrInvalidCredentials
	}

	s.sess.Set(user)
	s.log.Info().Str("login", login).Msg("login successful")
	return user, nil
}

// Logout clears the current session
func (s *AuthService) Logout() {
	if user := s.sess.Current(); user != nil {
		s.log.Info().Str("login", user.Login).Msg("logout")
	}
	s.sess.Clear()
}

// CurrentUser returns the authenticated user, or nil
func (s *AuthService) CurrentUser() *domain.User {
	return s.sess.Current()
}
