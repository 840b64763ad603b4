package gateway

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatGW_EventNames(t *testing.T) {
	transport := connection.NewMemoryTransport(false)
	manager := connection.NewManager(transport, models.ConnectionConfig{})
	t.Cleanup(func() { _ = manager.Close() })
	require.NoError(t, manager.Connect(context.Background()))

	gw := NewChatGW(manager)

	require.NoError(t, gw.JoinChat(models.JoinChat{RoomID: "alice_bob", UserID: "alice"}))
	require.NoError(t, gw.SendMessage(models.ChatMessage{ID: "m1", RoomID: "alice_bob", Body: "hi"}))
	require.NoError(t, gw.SendTyping(models.TypingSignal{RoomID: "alice_bob", UserID: "alice", IsTyping: true}))
	require.NoError(t, gw.SendTyping(models.TypingSignal{RoomID: "alice_bob", UserID: "alice"}))
	require.NoError(t, gw.MarkMessagesRead(models.MarkRead{RoomID: "alice_bob", UserID: "alice"}))

	var events []string
	for _, p := range transport.Published() {
		events = append(events, p.Event)
	}
	assert.Equal(t, []string{
		constants.EventJoinChat,
		constants.EventSendMessage,
		constants.EventTypingStart,
		constants.EventTypingStop,
		constants.EventMarkMessagesRead,
	}, events)

	var msg models.ChatMessage
	require.NoError(t, json.Unmarshal(transport.PublishedFor(constants.EventSendMessage)[0], &msg))
	assert.Equal(t, "hi", msg.Body)
}

func TestChatGW_Disconnected(t *testing.T) {
	manager := connection.NewManager(connection.NewMemoryTransport(false), models.ConnectionConfig{})
	gw := NewChatGW(manager)

	assert.ErrorIs(t, gw.SendMessage(models.ChatMessage{ID: "m1"}), models.ErrTransportUnavailable)
}
