package dto

import (
	"encoding/json"
	"time"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/entity"
)

// Socket event names shared by client and server.
const (
	EventMessage           = "message"
	EventPresenceUpdate    = "presence:update"
	EventPresenceList      = "presence:list"
	EventUserOnline        = "user:online"
	EventPresenceSubscribe = "presence:subscribe"
)

// SocketFrame is the envelope every websocket frame uses: an event name
// plus an event-specific payload.
type SocketFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

func NewSocketFrame(event string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(SocketFrame{Event: event, Data: payload})
}

type ChatMessagePayload struct {
	Body string `json:"body"`
}

type ChatMessageResponse struct {
	ID          string    `json:"id"`
	RoomID      string    `json:"room_id"`
	ProductID   string    `json:"product_id"`
	SenderID    string    `json:"sender_id"`
	RecipientID string    `json:"recipient_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type PresenceUpdatePayload struct {
	UserID string `json:"user_id"`
	Online bool   `json:"online"`
}

type PresenceListPayload struct {
	Users []string `json:"users"`
}

func ChatMessageResponseFromEntity(m *entity.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:          m.ID.String(),
		RoomID:      m.RoomID,
		ProductID:   m.ProductID.String(),
		SenderID:    m.SenderID.String(),
		RecipientID: m.RecipientID.String(),
		Body:        m.Body,
		CreatedAt:   m.CreatedAt,
	}
}

func ChatMessageResponsesFromEntities(messages []entity.Message) []ChatMessageResponse {
	responses := make([]ChatMessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ChatMessageResponseFromEntity(&messages[i]))
	}
	return responses
}
