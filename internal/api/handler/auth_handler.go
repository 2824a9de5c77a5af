package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/api/metrics"
	"github.com/collectif-avenir/campaign-api/internal/api/middleware"
	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

// CookieConfig controls the session cookie attributes. TTL doubles as the
// cookie max-age so the cookie and the server-side session expire together.
type CookieConfig struct {
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	authService ports.AuthService
	cookie      CookieConfig
}

func NewAuthHandler(authService ports.AuthService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cookie: cookie}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	User any `json:"user"`
}

// Login authenticates an editor or admin and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/admin/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, sess, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	c.SetCookie(h.sessionCookie(sess.Token, int(h.cookie.TTL.Seconds())))
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Logout revokes the current session and clears the cookie. Always 200,
// even without a valid session.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /api/admin/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	c.SetCookie(h.sessionCookie("", -1))
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// Me returns the authenticated principal.
//
// @Summary      Current principal
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/admin/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	p, ok := middleware.Principal(c)
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, userResponse{User: p})
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
