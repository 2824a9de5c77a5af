package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
	"github.com/collectif-avenir/campaign-api/internal/pkg/password"
)

// AuthService implements login, logout and session-to-principal resolution.
type AuthService struct {
	users    ports.UserRepository
	sessions ports.SessionStore
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionStore, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, sessions: sessions, logger: logger}
}

func (s *AuthService) Login(ctx context.Context, username, pass string) (*domain.PublicUser, *ports.Session, error) {
	if username == "" || pass == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	all, err := s.users.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	if len(all) == 0 {
		return nil, nil, domain.ErrNoUsersConfigured
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, domain.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !password.Verify(pass, user.Password) {
		s.logger.Info().Str("username", username).Msg("login rejected")
		return nil, nil, domain.ErrInvalidCredentials
	}

	sess, err := s.sessions.Issue(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("login succeeded")
	pub := user.Public()
	return &pub, sess, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}

// Authenticate resolves the session token and re-reads the user record, so
// a session cannot outlive the deletion of its account.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	userID, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidSession) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, err
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidSession
		}
		return nil, err
	}

	return &domain.Principal{ID: user.ID, Username: user.Username, Role: user.Role}, nil
}
