package auth

import (
	"context"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"kronos/internal/errors"
)

// ContextKey is the echo context key under which validated Claims are stored.
const ContextKey = "user"

// AdminChecker reports whether a user holds the admin role. A lookup failure
// must read as false: write authorization fails closed.
type AdminChecker interface {
	IsAdmin(ctx context.Context, userID string) bool
}

// Middleware returns the echo-jwt middleware configured to validate bearer
// tokens through the identity service. Requests without a valid token are
// rejected with 401 before any role lookup happens.
func Middleware(identity *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: ContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return identity.ValidateToken(token)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			httpErr := errors.MapErrorToHTTP(errors.ErrUnauthenticated)
			return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
		},
	})
}

// RequireAdmin gates mutating routes on the admin role. It must run after
// Middleware so Claims are present; a missing or non-admin role, or a failed
// role lookup, all yield 403.
func RequireAdmin(roles AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ContextKey).(*Claims)
			if !ok {
				httpErr := errors.MapErrorToHTTP(errors.ErrUnauthenticated)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !roles.IsAdmin(c.Request().Context(), claims.UserID) {
				httpErr := errors.MapErrorToHTTP(errors.ErrForbidden)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// ClaimsFromContext returns the validated claims set by Middleware.
func ClaimsFromContext(c echo.Context) (*Claims, error) {
	claims, ok := c.Get(ContextKey).(*Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
			Error: errors.ErrUnauthenticated.Error(),
			Code:  "UNAUTHENTICATED",
		})
	}
	return claims, nil
}
