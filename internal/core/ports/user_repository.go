package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
//
// Uniqueness of usernames is case-insensitive and enforced by Create inside
// the same critical section that performs the write, so two concurrent
// creations cannot both pass the scan.
type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByUsername matches case-insensitively.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// Create persists a new user. Returns domain.ErrUsernameTaken when
	// another user already holds the username (case-insensitive).
	Create(ctx context.Context, user *domain.User) error
	// Delete removes the user with the given id. The guard is invoked with
	// the target and the full collection as read inside the write lock;
	// returning an error from it aborts the deletion. Returns
	// domain.ErrUserNotFound when no user has the id.
	Delete(ctx context.Context, id string, guard func(target domain.User, all []domain.User) error) error
}
