package repository

import (
	"context"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	ListByRoom(ctx context.Context, roomID string, limit int) ([]entity.Message, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, m *entity.Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *messageRepository) ListByRoom(ctx context.Context, roomID string, limit int) ([]entity.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var messages []entity.Message
	err := r.db.WithContext(ctx).
		Where("room_id = ?", roomID).
		Order("created_at ASC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}
