package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/chat"
)

// ChatHandler handles HTTP requests for the local user's conversations
type ChatHandler struct {
	chatUC chat.ChatUC
}

// NewChatHandler creates a new chat HTTP handler
func NewChatHandler(chatUC chat.ChatUC) *ChatHandler {
	return &ChatHandler{chatUC: chatUC}
}

type sendMessageRequest struct {
	RecipientID string             `json:"recipient_id"`
	Body        string             `json:"body"`
	Type        models.MessageType `json:"type"`
}

type roomResponse struct {
	Room        models.ChatRoom `json:"room"`
	TypingUsers []string        `json:"typing_users"`
	Online      []string        `json:"online"`
}

// ListRooms returns every room, most recent first
func (h *ChatHandler) ListRooms(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", map[string]interface{}{
		"rooms":        h.chatUC.GetRooms(),
		"total_unread": h.chatUC.TotalUnread(),
	})
}

// OpenRoom makes the room with a peer the active one
func (h *ChatHandler) OpenRoom(c echo.Context) error {
	room, err := h.chatUC.OpenRoom(c.Param("peerId"))
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.roomView(room))
}

// CloseRoom clears the active room
func (h *ChatHandler) CloseRoom(c echo.Context) error {
	h.chatUC.CloseRoom()
	return c.NoContent(http.StatusNoContent)
}

// GetRoom returns one room with its typing and presence state
func (h *ChatHandler) GetRoom(c echo.Context) error {
	room, ok := h.chatUC.GetRoom(c.Param("roomId"))
	if !ok {
		return utils.ErrorFromDomain(c, models.ErrRoomNotFound)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.roomView(room))
}

// GetMessages returns the message log of a room
func (h *ChatHandler) GetMessages(c echo.Context) error {
	roomID := c.Param("roomId")
	if _, ok := h.chatUC.GetRoom(roomID); !ok {
		return utils.ErrorFromDomain(c, models.ErrRoomNotFound)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", h.chatUC.GetMessages(roomID))
}

// SendMessage sends a message to a peer
func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	msg, err := h.chatUC.SendMessage(c.Request().Context(), req.RecipientID, req.Body, req.Type)
	if err != nil {
		if msg.ID != "" {
			logger.Error("Failed to forward chat message",
				logger.String("message_id", msg.ID),
				logger.Err(err))
		}
		return utils.ErrorFromDomain(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Message sent", msg)
}

// MarkAsRead resets the unread counter of a room
func (h *ChatHandler) MarkAsRead(c echo.Context) error {
	if err := h.chatUC.MarkAsRead(c.Request().Context(), c.Param("roomId")); err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Typing starts or stops the local typing indicator in a room
func (h *ChatHandler) Typing(c echo.Context) error {
	var req struct {
		IsTyping bool `json:"is_typing"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	roomID := c.Param("roomId")
	var err error
	if req.IsTyping {
		err = h.chatUC.StartTyping(roomID)
	} else {
		err = h.chatUC.StopTyping(roomID)
	}
	if err != nil {
		return utils.ErrorFromDomain(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// OnlineUsers returns the last presence snapshot
func (h *ChatHandler) OnlineUsers(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "", h.chatUC.GetOnlineUsers())
}

func (h *ChatHandler) roomView(room models.ChatRoom) roomResponse {
	view := roomResponse{
		Room:        room,
		TypingUsers: h.chatUC.GetTypingUsers(room.ID),
		Online:      []string{},
	}
	for _, p := range room.Participants {
		if h.chatUC.IsUserOnline(p) {
			view.Online = append(view.Online, p)
		}
	}
	return view
}
