package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/BinaryBrain010/buy-sell-liberia-sub002/api/middleware"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/chat"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/dto"
	"github.com/BinaryBrain010/buy-sell-liberia-sub002/internal/service"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

type ChatHandler struct {
	Service  *service.ChatService
	Hub      *chat.Hub
	Presence *chat.PresenceTracker
	Logger   *logrus.Logger
	Upgrader websocket.Upgrader
}

func NewChatHandler(svc *service.ChatService, hub *chat.Hub, presence *chat.PresenceTracker, logger *logrus.Logger) *ChatHandler {
	return &ChatHandler{
		Service:  svc,
		Hub:      hub,
		Presence: presence,
		Logger:   logger,
		Upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// Connect upgrades to a websocket scoped to the conversation between the
// authenticated user and peerId about productId. The handler blocks on the
// read pump for the lifetime of the connection.
func (h *ChatHandler) Connect(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	productID, err := uuid.Parse(c.QueryParam("productId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid product id"))
	}
	peerID, err := uuid.Parse(c.QueryParam("peerId"))
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("invalid peer id"))
	}

	ctx := c.Request().Context()
	roomID, err := h.Service.OpenRoom(ctx, productID, userID, peerID)
	if err != nil {
		return writeServiceError(c, err)
	}

	conn, err := h.Upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	client := chat.NewClient(h.Hub, conn, userID, roomID)
	h.Hub.Register(client)

	if err := h.Presence.MarkOnline(ctx, userID.String()); err != nil {
		h.Logger.WithError(err).Warn("presence mark online failed")
	}
	h.broadcastPresence(roomID, userID, true)

	go client.WritePump()
	client.ReadPump(func(data []byte) {
		h.handleFrame(c, client, productID, peerID, data)
	})

	// Read pump returned: the connection is gone.
	if err := h.Presence.MarkOffline(ctx, userID.String()); err != nil {
		h.Logger.WithError(err).Warn("presence mark offline failed")
	}
	h.broadcastPresence(roomID, userID, false)
	return nil
}

func (h *ChatHandler) History(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	roomID := c.Param("roomId")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	messages, err := h.Service.History(c.Request().Context(), roomID, userID, limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, map[string][]dto.ChatMessageResponse{
		"messages": dto.ChatMessageResponsesFromEntities(messages),
	})
}

func (h *ChatHandler) handleFrame(c echo.Context, client *chat.Client, productID, peerID uuid.UUID, data []byte) {
	var frame dto.SocketFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		return
	}

	ctx := c.Request().Context()
	_ = h.Presence.Heartbeat(ctx, client.UserID.String())

	switch frame.Event {
	case dto.EventMessage:
		var payload dto.ChatMessagePayload
		if err := json.Unmarshal(frame.Data, &payload); err != nil {
			return
		}
		message, err := h.Service.SaveMessage(ctx, client.RoomID, productID, client.UserID, peerID, payload.Body)
		if err != nil {
			h.Logger.WithError(err).Warn("chat message rejected")
			return
		}
		out, err := dto.NewSocketFrame(dto.EventMessage, dto.ChatMessageResponseFromEntity(message))
		if err != nil {
			return
		}
		h.Hub.Broadcast(client.RoomID, out)

	case dto.EventPresenceSubscribe:
		users, err := h.Presence.OnlineUsers(ctx)
		if err != nil {
			h.Logger.WithError(err).Warn("presence list failed")
			return
		}
		out, err := dto.NewSocketFrame(dto.EventPresenceList, dto.PresenceListPayload{Users: users})
		if err != nil {
			return
		}
		client.Send(out)
	}
}

func (h *ChatHandler) broadcastPresence(roomID string, userID uuid.UUID, online bool) {
	event := dto.EventPresenceUpdate
	if online {
		event = dto.EventUserOnline
	}
	out, err := dto.NewSocketFrame(event, dto.PresenceUpdatePayload{UserID: userID.String(), Online: online})
	if err != nil {
		return
	}
	h.Hub.Broadcast(roomID, out)
}
