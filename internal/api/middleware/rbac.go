package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
)

// RBAC enforces role-based access control on routes behind SessionAuth.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := Principal(c)
			if !ok {
				return domain.ErrUnauthenticated
			}
			if _, ok := allowed[p.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
