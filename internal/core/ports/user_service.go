package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]domain.PublicUser, error)
	// Create adds an account. Role defaults to editor; only "admin" is
	// promoted. Returns domain.ErrValidation on missing fields,
	// domain.ErrWeakPassword on short passwords and domain.ErrUsernameTaken
	// on duplicates.
	Create(ctx context.Context, username, password, role string) (*domain.PublicUser, error)
	// Delete removes the account with the given id on behalf of principal.
	// Returns domain.ErrSelfDeletion, domain.ErrLastAdmin or
	// domain.ErrUserNotFound.
	Delete(ctx context.Context, principal domain.Principal, id string) error
}
