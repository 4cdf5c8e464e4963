package service

import (
	"context"
	"strings"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/repository"

	"github.com/google/uuid"
)

type ChatService struct {
	messages repository.MessageRepository
	products repository.ProductRepository
}

func NewChatService(messages repository.MessageRepository, products repository.ProductRepository) *ChatService {
	return &ChatService{messages: messages, products: products}
}

// DeriveRoomID builds the deterministic id for a two-party conversation
// about a listing. Participant ids are sorted so both sides derive the same
// room.
func DeriveRoomID(productID, userA, userB uuid.UUID) string {
	first, second := userA.String(), userB.String()
	if second < first {
		first, second = second, first
	}
	return productID.String() + "_" + first + "_" + second
}

// ParticipantOfRoom reports whether userID is one of the two parties encoded
// in roomID. UUIDs never contain underscores, so the room id always splits
// into exactly three parts.
func ParticipantOfRoom(roomID string, userID uuid.UUID) bool {
	parts := strings.Split(roomID, "_")
	if len(parts) != 3 {
		return false
	}
	id := userID.String()
	return parts[1] == id || parts[2] == id
}

func (s *ChatService) OpenRoom(ctx context.Context, productID, userID, peerID uuid.UUID) (string, error) {
	if userID == peerID {
		return "", ErrInvalidInput
	}
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return "", err
	}
	if product == nil {
		return "", ErrProductNotFound
	}
	// A conversation is always buyer <-> seller for the listing.
	if product.SellerID != userID && product.SellerID != peerID {
		return "", ErrNotParticipant
	}
	return DeriveRoomID(productID, userID, peerID), nil
}

func (s *ChatService) SaveMessage(ctx context.Context, roomID string, productID, senderID, recipientID uuid.UUID, body string) (*entity.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrInvalidInput
	}
	if !ParticipantOfRoom(roomID, senderID) || !ParticipantOfRoom(roomID, recipientID) {
		return nil, ErrNotParticipant
	}

	message := &entity.Message{
		RoomID:      roomID,
		ProductID:   productID,
		SenderID:    senderID,
		RecipientID: recipientID,
		Body:        body,
	}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ChatService) History(ctx context.Context, roomID string, userID uuid.UUID, limit int) ([]entity.Message, error) {
	if !ParticipantOfRoom(roomID, userID) {
		return nil, ErrNotParticipant
	}
	return s.messages.ListByRoom(ctx, roomID, limit)
}
