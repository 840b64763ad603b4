package gateway

import (
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// ChatGW implements chat.ChatGW over the push channel
type ChatGW struct {
	emitter connection.Emitter
}

// NewChatGW creates the chat gateway
func NewChatGW(emitter connection.Emitter) *ChatGW {
	return &ChatGW{emitter: emitter}
}

// JoinChat emits join-chat
func (g *ChatGW) JoinChat(join models.JoinChat) error {
	return g.emitter.Emit(constants.EventJoinChat, join)
}

// SendMessage emits send-message
func (g *ChatGW) SendMessage(msg models.ChatMessage) error {
	return g.emitter.Emit(constants.EventSendMessage, msg)
}

// SendTyping emits typing-start or typing-stop depending on the signal
func (g *ChatGW) SendTyping(signal models.TypingSignal) error {
	event := constants.EventTypingStop
	if signal.IsTyping {
		event = constants.EventTypingStart
	}
	return g.emitter.Emit(event, signal)
}

// MarkMessagesRead emits mark-messages-read
func (g *ChatGW) MarkMessagesRead(read models.MarkRead) error {
	return g.emitter.Emit(constants.EventMarkMessagesRead, read)
}
