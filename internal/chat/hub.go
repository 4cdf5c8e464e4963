package chat

import (
	"context"
	"sync"
)

// Envelope is a payload addressed to every client currently in a room.
type Envelope struct {
	RoomID string
	Data   []byte
}

// Hub multiplexes websocket clients into product-scoped rooms. All map
// mutation happens on the Run goroutine; Broadcast and counts go through
// channels or the read lock.
type Hub struct {
	rooms map[string]map[*Client]bool

	register   chan *Client
	unregister chan *Client
	broadcast  chan Envelope

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Envelope, 64),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-h.register:
			h.mu.Lock()
			room, ok := h.rooms[client.RoomID]
			if !ok {
				room = make(map[*Client]bool)
				h.rooms[client.RoomID] = room
			}
			room[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if room, ok := h.rooms[client.RoomID]; ok {
				if _, registered := room[client]; registered {
					delete(room, client)
					close(client.send)
					if len(room) == 0 {
						delete(h.rooms, client.RoomID)
					}
				}
			}
			h.mu.Unlock()

		case envelope := <-h.broadcast:
			h.mu.RLock()
			for client := range h.rooms[envelope.RoomID] {
				select {
				case client.send <- envelope.Data:
				default:
					// Slow consumer; drop the frame rather than block the hub.
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) Broadcast(roomID string, data []byte) {
	h.broadcast <- Envelope{RoomID: roomID, Data: data}
}

func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}
