package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Name         string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(30)"`
	Role         UserRole  `gorm:"type:user_role;default:'user';not null"`

	EmailVerifiedAt *time.Time
	IsActive        bool `gorm:"default:true"`

	// Embedded in refresh tokens; bumping it invalidates every refresh
	// token issued before the bump.
	TokenGeneration int64 `gorm:"default:0;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Products  []Product  `gorm:"foreignKey:SellerID"`
	Favorites []Favorite `gorm:"foreignKey:UserID"`
}

func (u *User) Verified() bool {
	return u.EmailVerifiedAt != nil
}
