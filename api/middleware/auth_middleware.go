package middleware

import (
	"net/http"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const AccessTokenCookie = "accessToken"

// AuthMiddleware is the shared auth guard: it reads the access-token cookie,
// verifies signature and expiry, and stashes the caller's identity in the
// request context. Cookies are the only session carrier.
type AuthMiddleware struct {
	JWT *utils.JWTManager
}

func (m AuthMiddleware) RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.JWT == nil {
			return unauthorized(c)
		}
		cookie, err := c.Cookie(AccessTokenCookie)
		if err != nil || cookie.Value == "" {
			return unauthorized(c)
		}
		claims, err := m.JWT.ParseAccessToken(cookie.Value)
		if err != nil {
			return unauthorized(c)
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return unauthorized(c)
		}
		SetAuthContext(c, userID, claims.Email, claims.Role)
		return next(c)
	}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}
