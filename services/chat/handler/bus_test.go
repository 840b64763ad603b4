package handler

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/chat/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupChatBus(t *testing.T) (*ChatBusHandler, *mocks.MockChatUC, *connection.Manager, *connection.MemoryTransport) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockChatUC(ctrl)

	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })
	require.NoError(t, manager.Connect(context.Background()))

	h := NewChatBusHandler(uc, manager)
	require.NoError(t, h.Init())
	return h, uc, manager, transport
}

func TestChatBusHandler_Routes(t *testing.T) {
	tests := []struct {
		name    string
		event   string
		payload string
		expect  func(uc *mocks.MockChatUC)
	}{
		{
			name:    "message received",
			event:   constants.EventMessageReceived,
			payload: `{"id":"m1","sender_id":"bob","body":"hi"}`,
			expect: func(uc *mocks.MockChatUC) {
				uc.EXPECT().ReceiveMessage(gomock.Any(), models.ChatMessage{ID: "m1", SenderID: "bob", Body: "hi"})
			},
		},
		{
			name:    "user typing",
			event:   constants.EventUserTyping,
			payload: `{"room_id":"alice_bob","user_id":"bob","is_typing":true}`,
			expect: func(uc *mocks.MockChatUC) {
				uc.EXPECT().ApplyTyping(models.TypingSignal{RoomID: "alice_bob", UserID: "bob", IsTyping: true})
			},
		},
		{
			name:    "online users",
			event:   constants.EventOnlineUsersUpdate,
			payload: `{"user_ids":["bob","carol"]}`,
			expect: func(uc *mocks.MockChatUC) {
				uc.EXPECT().SetOnlineUsers([]string{"bob", "carol"})
			},
		},
		{
			name:    "status update",
			event:   constants.EventMessageStatusUpdate,
			payload: `{"message_id":"m1","room_id":"alice_bob","status":"delivered"}`,
			expect: func(uc *mocks.MockChatUC) {
				uc.EXPECT().
					UpdateMessageStatus(models.MessageStatusUpdate{MessageID: "m1", RoomID: "alice_bob", Status: models.DeliveryDelivered}).
					Return(false)
			},
		},
		{
			name:    "peer read",
			event:   constants.EventMarkMessagesRead,
			payload: `{"room_id":"alice_bob","user_id":"bob"}`,
			expect: func(uc *mocks.MockChatUC) {
				uc.EXPECT().ApplyPeerRead(models.MarkRead{RoomID: "alice_bob", UserID: "bob"})
			},
		},
		{
			name:    "malformed payload",
			event:   constants.EventMessageReceived,
			payload: `{"id":`,
			expect:  func(uc *mocks.MockChatUC) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, uc, _, transport := setupChatBus(t)
			tt.expect(uc)

			transport.Inject(tt.event, []byte(tt.payload))
		})
	}
}

func TestChatBusHandler_Dispose(t *testing.T) {
	h, _, manager, transport := setupChatBus(t)

	h.Dispose()

	for _, event := range []string{
		constants.EventMessageReceived,
		constants.EventUserTyping,
		constants.EventOnlineUsersUpdate,
		constants.EventMessageStatusUpdate,
		constants.EventMarkMessagesRead,
	} {
		assert.Equal(t, 0, manager.HandlerCount(event), event)
	}
	transport.Inject(constants.EventMessageReceived, []byte(`{"id":"m1","sender_id":"bob"}`))
}
