package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one chat message inside a product-scoped room. RoomID is
// derived from the product id and the two sorted participant ids, so the
// same pair of users always lands in the same room for a given listing.
type Message struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	RoomID string    `gorm:"type:varchar(255);not null;index"`

	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null"`

	Body string `gorm:"type:text;not null"`

	CreatedAt time.Time
}
