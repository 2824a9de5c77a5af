package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/api/middleware"
	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

type stubAuthService struct {
	user     *domain.PublicUser
	session  *ports.Session
	loginErr error

	revokedToken string
}

func (s *stubAuthService) Login(_ context.Context, username, password string) (*domain.PublicUser, *ports.Session, error) {
	if s.loginErr != nil {
		return nil, nil, s.loginErr
	}
	return s.user, s.session, nil
}

func (s *stubAuthService) Logout(_ context.Context, token string) error {
	s.revokedToken = token
	return nil
}

func (s *stubAuthService) Authenticate(_ context.Context, _ string) (*domain.Principal, error) {
	return nil, domain.ErrUnauthenticated
}

func newHandlerContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	return nil
}

func TestAuthHandlerLogin_SetsCookie(t *testing.T) {
	svc := &stubAuthService{
		user:    &domain.PublicUser{ID: "usr_1", Username: "martine", Role: domain.RoleAdmin},
		session: &ports.Session{Token: "tok-abc", UserID: "usr_1"},
	}
	h := NewAuthHandler(svc, CookieConfig{Secure: false, TTL: 8 * time.Hour})

	c, rec := newHandlerContext(http.MethodPost, "/api/admin/auth/login", `{"username":"martine","password":"s3cretpass"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	ck := sessionCookieFrom(rec)
	if ck == nil {
		t.Fatalf("session cookie not set")
	}
	if ck.Value != "tok-abc" {
		t.Fatalf("unexpected cookie value %q", ck.Value)
	}
	if !ck.HttpOnly {
		t.Fatalf("cookie must be HttpOnly")
	}
	if ck.SameSite != http.SameSiteLaxMode {
		t.Fatalf("cookie must be SameSite=Lax")
	}
	if ck.MaxAge != int((8 * time.Hour).Seconds()) {
		t.Fatalf("unexpected cookie max-age %d", ck.MaxAge)
	}
	if !strings.Contains(rec.Body.String(), `"martine"`) {
		t.Fatalf("response should include the user, got %s", rec.Body.String())
	}
}

func TestAuthHandlerLogin_InvalidCredentials(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, CookieConfig{TTL: time.Hour})

	c, rec := newHandlerContext(http.MethodPost, "/api/admin/auth/login", `{"username":"martine","password":"wrong"}`)
	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if ck := sessionCookieFrom(rec); ck != nil {
		t.Fatalf("no cookie should be set on failure")
	}
}

func TestAuthHandlerLogin_MissingFields(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, CookieConfig{TTL: time.Hour})

	c, _ := newHandlerContext(http.MethodPost, "/api/admin/auth/login", `{"username":"martine"}`)
	err := h.Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandlerLogout_RevokesAndClearsCookie(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, CookieConfig{TTL: time.Hour})

	c, rec := newHandlerContext(http.MethodPost, "/api/admin/auth/logout", "")
	c.Request().AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok-xyz"})

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.revokedToken != "tok-xyz" {
		t.Fatalf("token not revoked, got %q", svc.revokedToken)
	}

	ck := sessionCookieFrom(rec)
	if ck == nil || ck.MaxAge != -1 || ck.Value != "" {
		t.Fatalf("cookie should be cleared, got %+v", ck)
	}
}

func TestAuthHandlerLogout_WithoutSession(t *testing.T) {
	svc := &stubAuthService{}
	h := NewAuthHandler(svc, CookieConfig{TTL: time.Hour})

	c, rec := newHandlerContext(http.MethodPost, "/api/admin/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout without session should succeed, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandlerMe(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, CookieConfig{TTL: time.Hour})

	c, rec := newHandlerContext(http.MethodGet, "/api/admin/auth/me", "")
	c.Set("principal", domain.Principal{ID: "usr_1", Username: "martine", Role: domain.RoleAdmin})

	if err := h.Me(c); err != nil {
		t.Fatalf("me error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"usr_1"`) {
		t.Fatalf("response should include the principal, got %s", rec.Body.String())
	}
}
