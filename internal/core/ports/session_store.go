package ports

import (
	"context"
	"time"
)

// Session is an issued authentication session. The token is the only
// credential: an opaque, unguessable string delivered to the client as an
// http-only cookie.
type Session struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// SessionStore maps opaque tokens to user ids with a fixed TTL.
//
// Expiry is lazy: expired entries are evicted on Resolve, not by a
// background sweep. The TTL is fixed at issuance and never extended by
// activity.
type SessionStore interface {
	// Issue creates a session for userID and returns it with its token.
	Issue(ctx context.Context, userID string) (*Session, error)
	// Resolve returns the user id bound to token, or
	// domain.ErrInvalidSession when the token is unknown or expired.
	Resolve(ctx context.Context, token string) (string, error)
	// Revoke removes the session unconditionally; unknown tokens are a no-op.
	Revoke(ctx context.Context, token string) error
}
