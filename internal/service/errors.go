package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrEmailAlreadyVerified   = errors.New("email already verified")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotVerified       = errors.New("email not verified")
	ErrInvalidOTP             = errors.New("invalid or expired OTP")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrWeakPassword           = errors.New("password must be at least 6 characters")
	ErrUserNotFound           = errors.New("user not found")
	ErrProductNotFound        = errors.New("product not found")
	ErrNotProductOwner        = errors.New("not the product owner")
	ErrNotParticipant         = errors.New("not a participant of this conversation")
)
