package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

const minPasswordLength = 6

// AuthService is the single orchestration point for identity-state
// transitions: signup, verification, login, token refresh, logout and
// password reset.
type AuthService struct {
	users        repository.UserRepository
	otps         repository.OTPRepository
	securityLogs repository.SecurityLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	tokens       TokenIssuer
	clock        Clock
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	otps repository.OTPRepository,
	securityLogs repository.SecurityLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	tokens TokenIssuer,
	clock Clock,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		otps:         otps,
		securityLogs: securityLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		tokens:       tokens,
		clock:        clock,
		config:       config,
	}
}

func (s *AuthService) CheckUserExists(ctx context.Context, email string) (bool, error) {
	if strings.TrimSpace(email) == "" {
		return false, ErrInvalidInput
	}
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) error {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return ErrInvalidInput
	}
	if len(input.Password) < minPasswordLength {
		return ErrWeakPassword
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user != nil {
		if user.Verified() {
			return ErrEmailAlreadyRegistered
		}
		// Unverified re-signup just gets a fresh code.
		return s.issueAndSendOTP(ctx, email, entity.EmailVerification)
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return err
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: &hash,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		Role:         entity.UserRoleUser,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, newUser); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &newUser.ID, nil, entity.Signup, nil)
	return s.issueAndSendOTP(ctx, email, entity.EmailVerification)
}

// GenerateAndSendOTP issues a fresh code for (email, purpose), overwriting
// any outstanding one. It reports success even when no matching account
// exists so the endpoint cannot be used to enumerate registered emails.
func (s *AuthService) GenerateAndSendOTP(ctx context.Context, email string, purpose entity.OTPPurpose) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}
	if purpose != entity.EmailVerification && purpose != entity.PasswordReset {
		return ErrInvalidInput
	}

	normalized := utils.NormalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}
	if purpose == entity.EmailVerification && user.Verified() {
		return nil
	}
	return s.issueAndSendOTP(ctx, normalized, purpose)
}

func (s *AuthService) VerifyEmail(ctx context.Context, email string, code string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" {
		return ErrInvalidInput
	}

	normalized := utils.NormalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOTP
	}
	if user.Verified() {
		return ErrEmailAlreadyVerified
	}

	if err := s.consumeOTP(ctx, normalized, entity.EmailVerification, code); err != nil {
		return err
	}

	if err := s.users.VerifyEmail(ctx, user.ID); err != nil {
		return err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.EmailVerified, nil)
	return nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	return s.GenerateAndSendOTP(ctx, email, entity.PasswordReset)
}

func (s *AuthService) ResetPassword(ctx context.Context, email string, code string, newPassword string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(code) == "" {
		return ErrInvalidInput
	}
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}

	normalized := utils.NormalizeEmail(email)
	user, err := s.users.FindByEmail(ctx, normalized)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidOTP
	}

	if err := s.consumeOTP(ctx, normalized, entity.PasswordReset, code); err != nil {
		return err
	}

	hash, err := s.passwordHash.Hash(newPassword)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	// Outstanding refresh tokens die with the old password.
	_ = s.users.BumpTokenGeneration(ctx, user.ID)
	_ = s.logSecurity(ctx, &user.ID, nil, entity.Reset, nil)
	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(*user.PasswordHash, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !user.Verified() {
		return nil, ErrEmailNotVerified
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, nil)
	return &LoginResult{TokenPair: *pair, User: user}, nil
}

// Refresh rotates a valid refresh token into a brand-new pair. The token's
// embedded generation must match the user's current one; logout or a
// password reset bumps the generation and strands older tokens. Rotation
// itself keeps the generation, so two racing refreshes may both succeed.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidToken
	}

	userIDValue, generation, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	userID, err := uuid.Parse(userIDValue)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	if generation != user.TokenGeneration {
		return nil, ErrInvalidToken
	}

	pair, err := s.issueTokenPair(user)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.TokenRefresh, nil)
	return pair, nil
}

// Logout revokes the user's outstanding refresh tokens. Callers treat it as
// best-effort: the route clears cookies and reports success regardless.
func (s *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.users.BumpTokenGeneration(ctx, userID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, &userID, nil, entity.Logout, nil)
	return nil
}

func (s *AuthService) Profile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) issueTokenPair(user *entity.User) (*TokenPair, error) {
	accessToken, accessTTL, err := s.tokens.IssueAccessToken(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	refreshToken, refreshTTL, err := s.tokens.IssueRefreshToken(user.ID.String(), user.TokenGeneration)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		AccessToken:      accessToken,
		ExpiresIn:        int64(accessTTL.Seconds()),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshTTL.Seconds()),
	}, nil
}

func (s *AuthService) issueAndSendOTP(ctx context.Context, email string, purpose entity.OTPPurpose) error {
	code, err := GenerateOTPCode()
	if err != nil {
		return err
	}

	otp := &entity.OTP{
		Email:     email,
		Purpose:   purpose,
		CodeHash:  utils.HashToken(code),
		ExpiresAt: s.now().Add(s.otpTTL()),
		CreatedAt: s.now(),
	}
	if err := s.otps.Upsert(ctx, otp); err != nil {
		return err
	}

	if s.emailSender == nil {
		return nil
	}
	if purpose == entity.PasswordReset {
		return s.emailSender.SendPasswordResetOTP(ctx, email, code)
	}
	return s.emailSender.SendVerificationOTP(ctx, email, code)
}

// consumeOTP validates a submitted code and deletes it on success. Missing,
// mismatched and expired codes all fail the same way so callers cannot tell
// which check tripped.
func (s *AuthService) consumeOTP(ctx context.Context, email string, purpose entity.OTPPurpose, code string) error {
	otp, err := s.otps.Find(ctx, email, purpose)
	if err != nil {
		return err
	}
	if otp == nil {
		return ErrInvalidOTP
	}
	if s.now().After(otp.ExpiresAt) {
		return ErrInvalidOTP
	}
	if !utils.TokenHashMatches(otp.CodeHash, code) {
		return ErrInvalidOTP
	}
	return s.otps.Consume(ctx, email, purpose)
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 10 * time.Minute
}
