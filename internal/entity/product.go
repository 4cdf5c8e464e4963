package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProductStatus string

const (
	ProductActive  ProductStatus = "active"
	ProductSold    ProductStatus = "sold"
	ProductDeleted ProductStatus = "deleted"
)

type Product struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	SellerID uuid.UUID `gorm:"type:uuid;not null;index"`
	Seller   User      `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`

	Title       string `gorm:"type:varchar(255);not null"`
	Description string `gorm:"type:text"`
	Price       int64  `gorm:"not null"`
	Currency    string `gorm:"type:varchar(3);default:'USD';not null"`
	Category    string `gorm:"type:varchar(100);index"`
	Condition   string `gorm:"type:varchar(50)"`

	Images datatypes.JSON

	Status ProductStatus `gorm:"type:product_status;default:'active';not null;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
