package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/services/chat"
	httpHandler "github.com/piresc/crowdpulse/services/chat/handler/http"
)

// HTTPHandler exposes the messaging store over HTTP
type HTTPHandler struct {
	chatHTTP *httpHandler.ChatHandler
}

// NewHTTPHandler creates a new chat HTTP handler set
func NewHTTPHandler(chatUC chat.ChatUC) *HTTPHandler {
	return &HTTPHandler{chatHTTP: httpHandler.NewChatHandler(chatUC)}
}

// RegisterRoutes registers the chat routes on g
func (h *HTTPHandler) RegisterRoutes(g *echo.Group) {
	r := g.Group("/chat")
	r.GET("/rooms", h.chatHTTP.ListRooms)
	r.GET("/rooms/:roomId", h.chatHTTP.GetRoom)
	r.GET("/rooms/:roomId/messages", h.chatHTTP.GetMessages)
	r.POST("/rooms/:roomId/read", h.chatHTTP.MarkAsRead)
	r.POST("/rooms/:roomId/typing", h.chatHTTP.Typing)
	r.POST("/peers/:peerId/open", h.chatHTTP.OpenRoom)
	r.DELETE("/active", h.chatHTTP.CloseRoom)
	r.POST("/messages", h.chatHTTP.SendMessage)
	r.GET("/online", h.chatHTTP.OnlineUsers)
}
