package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuardedEcho(t *testing.T) (*echo.Echo, *utils.JWTManager) {
	t.Helper()
	jwt := &utils.JWTManager{
		Secret:          []byte("test-secret"),
		Issuer:          "buy-sell",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}
	e := echo.New()
	guard := AuthMiddleware{JWT: jwt}
	e.GET("/me", func(c echo.Context) error {
		userID, ok := UserIDFromContext(c)
		require.True(t, ok)
		email, _ := EmailFromContext(c)
		role, _ := RoleFromContext(c)
		return c.JSON(http.StatusOK, map[string]string{
			"id":    userID.String(),
			"email": email,
			"role":  role,
		})
	}, guard.RequireAuth)
	return e, jwt
}

func TestRequireAuthAcceptsValidCookie(t *testing.T) {
	e, jwt := newGuardedEcho(t)

	userID := uuid.New()
	token, _, err := jwt.IssueAccessToken(userID.String(), "ana@example.com", "user")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	e, _ := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	e, _ := newGuardedEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsWrongSecret(t *testing.T) {
	e, _ := newGuardedEcho(t)

	other := &utils.JWTManager{Secret: []byte("other-secret"), Issuer: "buy-sell", AccessTokenTTL: 15 * time.Minute}
	token, _, err := other.IssueAccessToken(uuid.NewString(), "ana@example.com", "user")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
