package entity

import (
	"time"

	"github.com/google/uuid"
)

type OTPPurpose string

const (
	EmailVerification OTPPurpose = "EMAIL_VERIFICATION"
	PasswordReset     OTPPurpose = "PASSWORD_RESET"
)

// OTP holds the single outstanding code for an (email, purpose) pair.
// Issuing a new code for the same pair overwrites the previous row.
type OTP struct {
	ID      uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email   string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_otp_email_purpose"`
	Purpose OTPPurpose `gorm:"type:otp_purpose;not null;uniqueIndex:idx_otp_email_purpose"`

	CodeHash string `gorm:"type:text;not null"`

	ExpiresAt time.Time
	CreatedAt time.Time
}
