package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "sid"

const principalKey = "principal"

// SessionAuth resolves the session cookie to a Principal and injects it into
// the request context. The principal lookup re-reads the user record, so
// requests with a session for a deleted account are rejected.
func SessionAuth(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				return domain.ErrUnauthenticated
			}

			principal, err := auth.Authenticate(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}

			c.Set(principalKey, *principal)
			return next(c)
		}
	}
}

// Principal extracts the principal injected by SessionAuth. The boolean is
// false when the middleware did not run on this route.
func Principal(c echo.Context) (domain.Principal, bool) {
	p, ok := c.Get(principalKey).(domain.Principal)
	return p, ok
}
