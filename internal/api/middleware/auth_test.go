package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/collectif-avenir/campaign-api/internal/core/domain"
	"github.com/collectif-avenir/campaign-api/internal/core/ports"
)

type stubAuthService struct {
	principal *domain.Principal
	err       error
	lastToken string
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.PublicUser, *ports.Session, error) {
	return nil, nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error { return nil }

func (s *stubAuthService) Authenticate(_ context.Context, token string) (*domain.Principal, error) {
	s.lastToken = token
	if s.err != nil {
		return nil, s.err
	}
	return s.principal, nil
}

func newAuthContext(withCookie string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if withCookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: withCookie})
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSessionAuth_InjectsPrincipal(t *testing.T) {
	svc := &stubAuthService{principal: &domain.Principal{ID: "usr_1", Username: "ed1", Role: "editor"}}
	c, _ := newAuthContext("tok123")

	called := false
	handler := SessionAuth(svc)(func(c echo.Context) error {
		called = true
		p, ok := Principal(c)
		if !ok {
			t.Fatalf("principal not injected")
		}
		if p.ID != "usr_1" || p.Role != "editor" {
			t.Fatalf("unexpected principal: %+v", p)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if svc.lastToken != "tok123" {
		t.Fatalf("token not forwarded, got %q", svc.lastToken)
	}
}

func TestSessionAuth_MissingCookie(t *testing.T) {
	svc := &stubAuthService{}
	c, _ := newAuthContext("")

	handler := SessionAuth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestSessionAuth_InvalidSession(t *testing.T) {
	svc := &stubAuthService{err: domain.ErrInvalidSession}
	c, _ := newAuthContext("tokstale")

	handler := SessionAuth(svc)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != domain.ErrInvalidSession {
		t.Fatalf("expected ErrInvalidSession, got %v", err)
	}
}
