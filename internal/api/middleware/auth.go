package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/metrics"
	"github.com/recordkeep/records-api/internal/core/domain"
	"github.com/recordkeep/records-api/internal/core/service"
)

// UserContextKey is where Auth stores the resolved user in the echo context.
const UserContextKey = "user"

// IdentityResolver is the slice of the auth service the middleware depends on.
type IdentityResolver interface {
	Resolve(ctx context.Context, tokenString string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves it to a live user, and injects the
// user into the request context. The concrete token failure reason never
// reaches the client.
func Auth(resolver IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				metrics.TokenResolutionsTotal.WithLabelValues("rejected").Inc()
				switch {
				case errors.Is(err, domain.ErrTokenInvalid):
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrTokenInvalid.Error())
				case errors.Is(err, domain.ErrUserNotFound):
					return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUserNotFound.Error())
				}
				return err
			}

			metrics.TokenResolutionsTotal.WithLabelValues("ok").Inc()
			c.Set(UserContextKey, user)

			return next(c)
		}
	}
}

// ActiveOnly gates the request on the resolved user's active flag. It must
// run after Auth and before any privilege middleware.
func ActiveOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if err := service.RequireActive(user); err != nil {
				return err
			}
			return next(c)
		}
	}
}

// SuperuserOnly gates the request on the superuser flag. Chain it after
// ActiveOnly so the active check short-circuits first.
func SuperuserOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(UserContextKey).(*domain.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if err := service.RequireSuperuser(user); err != nil {
				return err
			}
			return next(c)
		}
	}
}
