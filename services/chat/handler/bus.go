package handler

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/chat"
)

// ChatBusHandler feeds inbound chat events into the messaging store
type ChatBusHandler struct {
	chatUC chat.ChatUC
	bus    connection.Subscriber
	subs   []*connection.Subscription
}

// NewChatBusHandler creates a new chat bus handler
func NewChatBusHandler(chatUC chat.ChatUC, bus connection.Subscriber) *ChatBusHandler {
	return &ChatBusHandler{
		chatUC: chatUC,
		bus:    bus,
	}
}

// Init subscribes to the chat events
func (h *ChatBusHandler) Init() error {
	h.subs = append(h.subs,
		h.bus.Subscribe(constants.EventMessageReceived, h.handleMessageReceived),
		h.bus.Subscribe(constants.EventUserTyping, h.handleUserTyping),
		h.bus.Subscribe(constants.EventOnlineUsersUpdate, h.handleOnlineUsers),
		h.bus.Subscribe(constants.EventMessageStatusUpdate, h.handleStatusUpdate),
		h.bus.Subscribe(constants.EventMarkMessagesRead, h.handlePeerRead),
	)
	logger.Info("Chat bus handler initialized")
	return nil
}

// Dispose cancels every subscription made by Init
func (h *ChatBusHandler) Dispose() {
	for _, sub := range h.subs {
		sub.Cancel()
	}
	h.subs = nil
}

func (h *ChatBusHandler) handleMessageReceived(payload []byte) error {
	var msg models.ChatMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return fmt.Errorf("failed to unmarshal chat message: %w", err)
	}
	h.chatUC.ReceiveMessage(context.Background(), msg)
	return nil
}

func (h *ChatBusHandler) handleUserTyping(payload []byte) error {
	var signal models.TypingSignal
	if err := json.Unmarshal(payload, &signal); err != nil {
		return fmt.Errorf("failed to unmarshal typing signal: %w", err)
	}
	h.chatUC.ApplyTyping(signal)
	return nil
}

func (h *ChatBusHandler) handleOnlineUsers(payload []byte) error {
	var online models.OnlineUsers
	if err := json.Unmarshal(payload, &online); err != nil {
		return fmt.Errorf("failed to unmarshal online users: %w", err)
	}
	h.chatUC.SetOnlineUsers(online.UserIDs)
	return nil
}

func (h *ChatBusHandler) handleStatusUpdate(payload []byte) error {
	var update models.MessageStatusUpdate
	if err := json.Unmarshal(payload, &update); err != nil {
		return fmt.Errorf("failed to unmarshal message status update: %w", err)
	}
	if !h.chatUC.UpdateMessageStatus(update) {
		logger.Debug("Ignoring message status update",
			logger.String("message_id", update.MessageID),
			logger.String("status", string(update.Status)))
	}
	return nil
}

func (h *ChatBusHandler) handlePeerRead(payload []byte) error {
	var read models.MarkRead
	if err := json.Unmarshal(payload, &read); err != nil {
		return fmt.Errorf("failed to unmarshal read receipt: %w", err)
	}
	h.chatUC.ApplyPeerRead(read)
	return nil
}
