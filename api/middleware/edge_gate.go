package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// EdgeGate redirects requests to protected page prefixes when no
// access-token cookie is present. It checks presence only, never signature
// or expiry: an expired-but-present cookie passes through and is rejected
// downstream by the auth guard, which always re-verifies.
func EdgeGate(protectedPrefixes ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range protectedPrefixes {
				if !strings.HasPrefix(path, prefix) {
					continue
				}
				cookie, err := c.Cookie(AccessTokenCookie)
				if err != nil || cookie.Value == "" {
					return c.Redirect(http.StatusFound, "/")
				}
				break
			}
			return next(c)
		}
	}
}
