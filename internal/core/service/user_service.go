package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
	"github.com/collectif-avenir/campaign-api/internal/pkg/password"
)

// UserService implements account management. Role checks happen at the API
// layer; the last-admin and self-deletion rules live here so they run inside
// the repository's critical section.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]domain.PublicUser, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	return out, nil
}

func (s *UserService) Create(ctx context.Context, username, pass, role string) (*domain.PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || pass == "" {
		return nil, domain.ErrValidation
	}
	if role != domain.RoleAdmin {
		role = domain.RoleEditor
	}

	rec, err := password.Hash(pass)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:        domain.NewID("usr"),
		Username:  username,
		Password:  rec,
		Role:      role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("username", user.Username).Str("role", user.Role).Msg("user created")
	pub := user.Public()
	return &pub, nil
}

func (s *UserService) Delete(ctx context.Context, principal domain.Principal, id string) error {
	err := s.users.Delete(ctx, id, func(target domain.User, all []domain.User) error {
		return CanDeleteUser(principal, target, all)
	})
	if err != nil {
		return err
	}
	s.logger.Info().Str("user_id", id).Str("deleted_by", principal.ID).Msg("user deleted")
	return nil
}
