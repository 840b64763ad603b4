package chat

import "github.com/piresc/crowdpulse/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/crowdpulse/services/chat ChatGW

// ChatGW defines the outbound events of the messaging store
type ChatGW interface {
	JoinChat(join models.JoinChat) error
	SendMessage(msg models.ChatMessage) error
	SendTyping(signal models.TypingSignal) error
	MarkMessagesRead(read models.MarkRead) error
}
