package ports

import (
	"context"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies credentials and issues a session. Returns
	// domain.ErrNoUsersConfigured when the user collection is empty and
	// domain.ErrInvalidCredentials on unknown username or wrong password.
	Login(ctx context.Context, username, password string) (*domain.PublicUser, *Session, error)
	// Logout revokes the session bound to token; idempotent.
	Logout(ctx context.Context, token string) error
	// Authenticate resolves a session token to a Principal, re-reading the
	// user record so sessions do not outlive deleted accounts. Returns
	// domain.ErrUnauthenticated for absent/expired tokens and
	// domain.ErrInvalidSession when the user no longer exists.
	Authenticate(ctx context.Context, token string) (*domain.Principal, error)
}
