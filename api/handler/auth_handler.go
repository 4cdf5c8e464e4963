package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/middleware"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/dto"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/service"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	accessTokenCookie  = middleware.AccessTokenCookie
	refreshTokenCookie = "refreshToken"
)

type AuthHandler struct {
	Service       *service.AuthService
	JWT           *utils.JWTManager
	Validate      *validator.Validate
	CookieDomain  string
	SecureCookies bool
	SameSite      http.SameSite
}

func NewAuthHandler(svc *service.AuthService, jwt *utils.JWTManager, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		Service:       svc,
		JWT:           jwt,
		Validate:      validate,
		SecureCookies: true,
		SameSite:      http.SameSiteStrictMode,
	}
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	}
	if err := h.Service.Signup(c.Request().Context(), input); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Verification code sent to your email"})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		IPAddress: stringPtr(c.RealIP()),
	}
	result, err := h.Service.Login(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	h.setTokenCookies(c, result.TokenPair)
	return c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Logged in successfully",
		User:    dto.UserResponseFromEntity(result.User),
	})
}

func (h *AuthHandler) CheckGoogleUser(c echo.Context) error {
	var req dto.CheckUserRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	exists, err := h.Service.CheckUserExists(c.Request().Context(), req.Email)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.CheckUserResponse{Exists: exists})
}

func (h *AuthHandler) VerifyEmail(c echo.Context) error {
	var req dto.VerifyEmailRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.VerifyEmail(c.Request().Context(), req.Email, req.OTP); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Email verified successfully"})
}

func (h *AuthHandler) ResendOTP(c echo.Context) error {
	var req dto.ResendOTPRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	purpose := entity.OTPPurpose(req.Type)
	if err := h.Service.GenerateAndSendOTP(c.Request().Context(), req.Email, purpose); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "If the email is registered, a code has been sent"})
}

func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req dto.ForgotPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "If the email is registered, a code has been sent"})
}

func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req dto.ResetPasswordRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ResetPassword(c.Request().Context(), req.Email, req.OTP, req.NewPassword); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password reset successfully"})
}

func (h *AuthHandler) RefreshToken(c echo.Context) error {
	refreshToken := readCookie(c, refreshTokenCookie)
	if refreshToken == "" {
		return writeError(c, http.StatusUnauthorized, errors.New("Refresh token required"))
	}
	pair, err := h.Service.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		return writeServiceError(c, err)
	}
	h.setTokenCookies(c, *pair)
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Token refreshed"})
}

// Logout never fails outward: a missing or invalid access token just means
// there is no server-side state to revoke, and the cookies are cleared
// either way.
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := readCookie(c, accessTokenCookie); token != "" && h.JWT != nil {
		if claims, err := h.JWT.ParseAccessToken(token); err == nil {
			if userID, err := uuid.Parse(claims.UserID); err == nil {
				_ = h.Service.Logout(c.Request().Context(), userID)
			}
		}
	}
	h.clearTokenCookies(c)
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out successfully"})
}

func (h *AuthHandler) Profile(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	user, err := h.Service.Profile(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]dto.UserResponse{"user": dto.UserResponseFromEntity(user)})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

func (h *AuthHandler) setTokenCookies(c echo.Context, pair service.TokenPair) {
	h.setCookie(c, accessTokenCookie, pair.AccessToken, int(pair.ExpiresIn))
	h.setCookie(c, refreshTokenCookie, pair.RefreshToken, int(pair.RefreshExpiresIn))
}

func (h *AuthHandler) clearTokenCookies(c echo.Context) {
	h.setCookie(c, accessTokenCookie, "", -1)
	h.setCookie(c, refreshTokenCookie, "", -1)
}

func (h *AuthHandler) setCookie(c echo.Context, name string, value string, maxAge int) {
	cookie := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	}
	if maxAge > 0 {
		cookie.Expires = time.Now().Add(time.Duration(maxAge) * time.Second)
	}
	c.SetCookie(cookie)
}

func readCookie(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func decodeJSON(c echo.Context, target any) error {
	decoder := json.NewDecoder(c.Request().Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeError(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrInvalidOTP),
		errors.Is(err, service.ErrWeakPassword),
		errors.Is(err, service.ErrEmailAlreadyVerified):
		return writeError(c, http.StatusBadRequest, err)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken),
		errors.Is(err, service.ErrEmailNotVerified):
		return writeError(c, http.StatusUnauthorized, err)
	case errors.Is(err, service.ErrNotProductOwner),
		errors.Is(err, service.ErrNotParticipant):
		return writeError(c, http.StatusForbidden, err)
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound):
		return writeError(c, http.StatusNotFound, err)
	case errors.Is(err, service.ErrEmailAlreadyRegistered):
		return writeError(c, http.StatusConflict, err)
	default:
		return writeError(c, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func stringPtr(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}
