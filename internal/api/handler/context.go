package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordkeep/records-api/internal/api/middleware"
	"github.com/recordkeep/records-api/internal/core/domain"
)

// ctxUser extracts the user injected by the Auth middleware. Its presence
// proves the middleware ran; a protected handler reached without it is a
// wiring fault and fails closed with 401.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserContextKey).(*domain.User)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
