package chat

import (
	"context"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/crowdpulse/services/chat ChatUC

// ChatUC defines the presence and messaging store
type ChatUC interface {
	// Rooms
	CreateOrGetRoom(a, b string) models.ChatRoom
	OpenRoom(peerID string) (models.ChatRoom, error)
	CloseRoom()
	GetRoom(roomID string) (models.ChatRoom, bool)
	GetRooms() []models.ChatRoom
	GetMessages(roomID string) []models.ChatMessage
	TotalUnread() int

	// Messages
	SendMessage(ctx context.Context, recipientID, body string, msgType models.MessageType) (models.ChatMessage, error)
	ReceiveMessage(ctx context.Context, msg models.ChatMessage)
	MarkAsRead(ctx context.Context, roomID string) error
	ApplyPeerRead(read models.MarkRead)
	UpdateMessageStatus(update models.MessageStatusUpdate) bool

	// Typing
	StartTyping(roomID string) error
	StopTyping(roomID string) error
	ApplyTyping(signal models.TypingSignal)
	GetTypingUsers(roomID string) []string

	// Presence
	SetOnlineUsers(userIDs []string)
	IsUserOnline(userID string) bool
	GetOnlineUsers() []string
}
