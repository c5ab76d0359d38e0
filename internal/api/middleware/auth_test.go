package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/core/domain"
)

type stubResolver struct {
	resolveFn func(ctx context.Context, tokenString string) (*domain.User, error)
}

func (s *stubResolver) Resolve(ctx context.Context, tokenString string) (*domain.User, error) {
	return s.resolveFn(ctx, tokenString)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	alice := &domain.User{ID: "user-1", Email: "alice@example.com", IsActive: true}
	resolver := &stubResolver{
		resolveFn: func(_ context.Context, tokenString string) (*domain.User, error) {
			if tokenString != "good-token" {
				t.Fatalf("unexpected token: %q", tokenString)
			}
			return alice, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(resolver)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserContextKey).(*domain.User)
		if !ok || user.ID != "user-1" {
			t.Fatalf("user not injected: %+v", c.Get(UserContextKey))
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func failClosed(t *testing.T, resolver IdentityResolver, header string, wantCode int) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(resolver)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != wantCode {
		t.Fatalf("expected %d, got %d", wantCode, rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	resolver := &stubResolver{resolveFn: func(context.Context, string) (*domain.User, error) {
		t.Fatalf("resolver should not be called")
		return nil, nil
	}}
	failClosed(t, resolver, "", http.StatusUnauthorized)
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	resolver := &stubResolver{resolveFn: func(context.Context, string) (*domain.User, error) {
		t.Fatalf("resolver should not be called")
		return nil, nil
	}}
	failClosed(t, resolver, "Token abc", http.StatusUnauthorized)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	resolver := &stubResolver{resolveFn: func(context.Context, string) (*domain.User, error) {
		return nil, domain.ErrTokenInvalid
	}}
	failClosed(t, resolver, "Bearer bad-token", http.StatusUnauthorized)
}

func TestAuthMiddleware_DeletedUser(t *testing.T) {
	resolver := &stubResolver{resolveFn: func(context.Context, string) (*domain.User, error) {
		return nil, domain.ErrUserNotFound
	}}
	failClosed(t, resolver, "Bearer orphan-token", http.StatusUnauthorized)
}

func TestActiveOnly_InactiveUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, &domain.User{ID: "user-1", IsActive: false})

	err := ActiveOnly()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if err != domain.ErrAccountInactive {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

// An inactive superuser must hit the active check first when both
// middlewares are chained; the privilege check never runs.
func TestSuperuserChain_InactiveShortCircuits(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, &domain.User{ID: "user-1", IsActive: false, IsSuperuser: true})

	chained := ActiveOnly()(SuperuserOnly()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	}))

	if err := chained(c); err != domain.ErrAccountInactive {
		t.Fatalf("expected ErrAccountInactive, got %v", err)
	}
}

func TestSuperuserOnly_NonSuperuser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(UserContextKey, &domain.User{ID: "user-1", IsActive: true, IsSuperuser: false})

	err := SuperuserOnly()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})(c)

	if err != domain.ErrInsufficientPrivilege {
		t.Fatalf("expected ErrInsufficientPrivilege, got %v", err)
	}
}
