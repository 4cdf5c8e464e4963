package repository

import (
	"context"
	"errors"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OTPRepository interface {
	// Upsert replaces whatever code is outstanding for (email, purpose).
	Upsert(ctx context.Context, otp *entity.OTP) error
	Find(ctx context.Context, email string, purpose entity.OTPPurpose) (*entity.OTP, error)
	// Consume deletes the row so the code cannot be replayed.
	Consume(ctx context.Context, email string, purpose entity.OTPPurpose) error
}

type otpRepository struct {
	db *gorm.DB
}

func NewOTPRepository(db *gorm.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Upsert(ctx context.Context, otp *entity.OTP) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "purpose"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "created_at"}),
		}).
		Create(otp).Error
}

func (r *otpRepository) Find(ctx context.Context, email string, purpose entity.OTPPurpose) (*entity.OTP, error) {
	var otp entity.OTP
	err := r.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose).
		First(&otp).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &otp, err
}

func (r *otpRepository) Consume(ctx context.Context, email string, purpose entity.OTPPurpose) error {
	return r.db.WithContext(ctx).
		Where("email = ? AND purpose = ?", email, purpose).
		Delete(&entity.OTP{}).
		Error
}
