package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/chat"
)

// MaxMessageLength caps a message body, in runes
const MaxMessageLength = 2000

// RoomID returns the canonical id of the room between a and b. The order of
// the arguments does not matter.
func RoomID(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "_" + b
}

type room struct {
	info     models.ChatRoom
	messages []models.ChatMessage
	typing   map[string]struct{}
}

// ChatUC implements chat.ChatUC for one local user
type ChatUC struct {
	gw     chat.ChatGW
	userID string
	now    models.Clock

	mu     sync.RWMutex
	rooms  map[string]*room
	active string
	online map[string]struct{}
}

// Option configures a ChatUC
type Option func(*ChatUC)

// WithClock overrides the clock used for message and room stamps
func WithClock(now models.Clock) Option {
	return func(uc *ChatUC) { uc.now = now }
}

// NewChatUC creates the messaging store of userID
func NewChatUC(gw chat.ChatGW, userID string, opts ...Option) *ChatUC {
	uc := &ChatUC{
		gw:     gw,
		userID: userID,
		now:    models.Now,
		rooms:  make(map[string]*room),
		online: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CreateOrGetRoom returns the room between a and b, creating it if needed
func (uc *ChatUC) CreateOrGetRoom(a, b string) models.ChatRoom {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.roomLocked(a, b).info
}

func (uc *ChatUC) roomLocked(a, b string) *room {
	id := RoomID(a, b)
	if r, ok := uc.rooms[id]; ok {
		return r
	}

	participants := [2]string{a, b}
	if b < a {
		participants = [2]string{b, a}
	}
	r := &room{
		info: models.ChatRoom{
			ID:           id,
			Participants: participants,
			UpdatedAt:    uc.now(),
		},
		typing: make(map[string]struct{}),
	}
	uc.rooms[id] = r
	return r
}

// OpenRoom makes the room with peerID the active one, emits join-chat and
// marks it read
func (uc *ChatUC) OpenRoom(peerID string) (models.ChatRoom, error) {
	if peerID == "" || peerID == uc.userID {
		return models.ChatRoom{}, models.ErrSelfRequest
	}

	uc.mu.Lock()
	r := uc.roomLocked(uc.userID, peerID)
	uc.active = r.info.ID
	uc.mu.Unlock()

	if err := uc.emit(uc.gw.JoinChat(models.JoinChat{RoomID: r.info.ID, UserID: uc.userID})); err != nil {
		return models.ChatRoom{}, err
	}
	if err := uc.MarkAsRead(context.Background(), r.info.ID); err != nil {
		return models.ChatRoom{}, err
	}

	info, _ := uc.GetRoom(r.info.ID)
	return info, nil
}

// CloseRoom clears the active room
func (uc *ChatUC) CloseRoom() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.active = ""
}

// GetRoom returns a copy of one room
func (uc *ChatUC) GetRoom(roomID string) (models.ChatRoom, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.rooms[roomID]
	if !ok {
		return models.ChatRoom{}, false
	}
	return copyRoom(r.info), true
}

// GetRooms returns every room, most recently updated first
func (uc *ChatUC) GetRooms() []models.ChatRoom {
	uc.mu.RLock()
	rooms := make([]models.ChatRoom, 0, len(uc.rooms))
	for _, r := range uc.rooms {
		rooms = append(rooms, copyRoom(r.info))
	}
	uc.mu.RUnlock()

	sort.Slice(rooms, func(i, j int) bool {
		if rooms[i].UpdatedAt.Equal(rooms[j].UpdatedAt) {
			return rooms[i].ID < rooms[j].ID
		}
		return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt)
	})
	return rooms
}

// GetMessages returns the message log of a room in append order
func (uc *ChatUC) GetMessages(roomID string) []models.ChatMessage {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.rooms[roomID]
	if !ok {
		return nil
	}
	return append([]models.ChatMessage(nil), r.messages...)
}

// TotalUnread sums the unread counters of every room
func (uc *ChatUC) TotalUnread() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	total := 0
	for _, r := range uc.rooms {
		total += r.info.UnreadCount
	}
	return total
}

// SendMessage appends a message with status sent and forwards it. When the
// transport is down the message stays in the log marked failed.
func (uc *ChatUC) SendMessage(ctx context.Context, recipientID, body string, msgType models.MessageType) (models.ChatMessage, error) {
	body = utils.Truncate(strings.TrimSpace(body), MaxMessageLength)
	if body == "" {
		return models.ChatMessage{}, models.ErrEmptyMessage
	}
	if recipientID == "" || recipientID == uc.userID {
		return models.ChatMessage{}, models.ErrSelfRequest
	}
	if msgType == "" {
		msgType = models.MessageText
	}

	uc.mu.Lock()
	r := uc.roomLocked(uc.userID, recipientID)
	msg := models.ChatMessage{
		ID:             uuid.New().String(),
		RoomID:         r.info.ID,
		SenderID:       uc.userID,
		RecipientID:    recipientID,
		Body:           body,
		Timestamp:      uc.now(),
		Type:           msgType,
		DeliveryStatus: models.DeliverySent,
	}
	uc.appendLocked(r, msg)
	uc.mu.Unlock()

	err := uc.gw.SendMessage(msg)
	if err == nil {
		return msg, nil
	}

	uc.markFailed(msg.RoomID, msg.ID)
	msg.DeliveryStatus = models.DeliveryFailed
	if errors.Is(err, models.ErrTransportUnavailable) {
		return msg, nil
	}
	return msg, fmt.Errorf("failed to send message: %w", err)
}

// ReceiveMessage appends an inbound message. The unread counter grows
// unless the room is the active one, in which case the message is read at
// once.
func (uc *ChatUC) ReceiveMessage(ctx context.Context, msg models.ChatMessage) {
	if msg.ID == "" || msg.SenderID == "" {
		logger.Warn("Dropping chat message without id or sender")
		return
	}
	if msg.RecipientID == "" {
		msg.RecipientID = uc.userID
	}
	if msg.Timestamp.IsZero() {
		msg.Timestamp = uc.now()
	}
	if msg.Type == "" {
		msg.Type = models.MessageText
	}

	uc.mu.Lock()
	r := uc.roomLocked(msg.SenderID, msg.RecipientID)
	msg.RoomID = r.info.ID
	if r.has(msg.ID) {
		uc.mu.Unlock()
		return
	}
	delete(r.typing, msg.SenderID)

	fromPeer := msg.SenderID != uc.userID
	autoRead := fromPeer && uc.active == r.info.ID
	switch {
	case autoRead:
		msg.DeliveryStatus = models.DeliveryRead
	case fromPeer:
		msg.DeliveryStatus = models.DeliveryDelivered
		r.info.UnreadCount++
	}
	uc.appendLocked(r, msg)
	uc.mu.Unlock()

	if autoRead {
		err := uc.emit(uc.gw.MarkMessagesRead(models.MarkRead{RoomID: msg.RoomID, UserID: uc.userID, ReadAt: uc.now()}))
		if err != nil {
			logger.Warn("Failed to auto-read message",
				logger.String("room_id", msg.RoomID),
				logger.Err(err))
		}
	}
}

// MarkAsRead resets the unread counter of a room and notifies the peer
func (uc *ChatUC) MarkAsRead(ctx context.Context, roomID string) error {
	uc.mu.Lock()
	r, ok := uc.rooms[roomID]
	if !ok {
		uc.mu.Unlock()
		return models.ErrRoomNotFound
	}
	r.info.UnreadCount = 0
	for i := range r.messages {
		m := &r.messages[i]
		if m.SenderID != uc.userID && m.DeliveryStatus.Advances(models.DeliveryRead) {
			m.DeliveryStatus = models.DeliveryRead
		}
	}
	uc.syncLastLocked(r)
	uc.mu.Unlock()

	return uc.emit(uc.gw.MarkMessagesRead(models.MarkRead{RoomID: roomID, UserID: uc.userID, ReadAt: uc.now()}))
}

// ApplyPeerRead marks the local user's messages in a room as read by the peer
func (uc *ChatUC) ApplyPeerRead(read models.MarkRead) {
	if read.UserID == uc.userID {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.rooms[read.RoomID]
	if !ok {
		return
	}
	for i := range r.messages {
		m := &r.messages[i]
		if m.SenderID == uc.userID && m.DeliveryStatus.Advances(models.DeliveryRead) {
			m.DeliveryStatus = models.DeliveryRead
		}
	}
	uc.syncLastLocked(r)
}

// UpdateMessageStatus moves a message forward along sent, delivered, read.
// A failure report only applies to messages not yet delivered. It reports
// whether the status changed.
func (uc *ChatUC) UpdateMessageStatus(update models.MessageStatusUpdate) bool {
	if update.Status == models.DeliveryFailed {
		return uc.markFailed(update.RoomID, update.MessageID)
	}
	return uc.setStatus(update.RoomID, update.MessageID, update.Status, func(current models.DeliveryStatus) bool {
		return current.Advances(update.Status)
	})
}

func (uc *ChatUC) markFailed(roomID, messageID string) bool {
	return uc.setStatus(roomID, messageID, models.DeliveryFailed, models.DeliveryStatus.CanFail)
}

func (uc *ChatUC) setStatus(roomID, messageID string, status models.DeliveryStatus, allowed func(models.DeliveryStatus) bool) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for _, r := range uc.candidateRoomsLocked(roomID) {
		for i := range r.messages {
			m := &r.messages[i]
			if m.ID != messageID {
				continue
			}
			if !allowed(m.DeliveryStatus) {
				return false
			}
			m.DeliveryStatus = status
			uc.syncLastLocked(r)
			return true
		}
	}
	return false
}

func (uc *ChatUC) candidateRoomsLocked(roomID string) []*room {
	if r, ok := uc.rooms[roomID]; ok {
		return []*room{r}
	}
	all := make([]*room, 0, len(uc.rooms))
	for _, r := range uc.rooms {
		all = append(all, r)
	}
	return all
}

// StartTyping emits typing-start for the local user
func (uc *ChatUC) StartTyping(roomID string) error {
	return uc.sendTyping(roomID, true)
}

// StopTyping emits typing-stop for the local user
func (uc *ChatUC) StopTyping(roomID string) error {
	return uc.sendTyping(roomID, false)
}

func (uc *ChatUC) sendTyping(roomID string, typing bool) error {
	if _, ok := uc.GetRoom(roomID); !ok {
		return models.ErrRoomNotFound
	}
	return uc.emit(uc.gw.SendTyping(models.TypingSignal{RoomID: roomID, UserID: uc.userID, IsTyping: typing}))
}

// ApplyTyping toggles a peer in the typing set of a room. Signals about the
// local user are ignored.
func (uc *ChatUC) ApplyTyping(signal models.TypingSignal) {
	if signal.UserID == "" || signal.UserID == uc.userID {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	r, ok := uc.rooms[signal.RoomID]
	if !ok {
		if !signal.IsTyping || RoomID(uc.userID, signal.UserID) != signal.RoomID {
			return
		}
		r = uc.roomLocked(uc.userID, signal.UserID)
	}
	if signal.IsTyping {
		r.typing[signal.UserID] = struct{}{}
	} else {
		delete(r.typing, signal.UserID)
	}
}

// GetTypingUsers returns the peers currently typing in a room
func (uc *ChatUC) GetTypingUsers(roomID string) []string {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	r, ok := uc.rooms[roomID]
	if !ok {
		return nil
	}
	users := make([]string, 0, len(r.typing))
	for id := range r.typing {
		if id != uc.userID {
			users = append(users, id)
		}
	}
	sort.Strings(users)
	return users
}

// SetOnlineUsers replaces the online set
func (uc *ChatUC) SetOnlineUsers(userIDs []string) {
	online := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		online[id] = struct{}{}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.online = online
}

// IsUserOnline reports whether userID is in the last presence snapshot
func (uc *ChatUC) IsUserOnline(userID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	_, ok := uc.online[userID]
	return ok
}

// GetOnlineUsers returns the online set sorted
func (uc *ChatUC) GetOnlineUsers() []string {
	uc.mu.RLock()
	users := make([]string, 0, len(uc.online))
	for id := range uc.online {
		users = append(users, id)
	}
	uc.mu.RUnlock()

	sort.Strings(users)
	return users
}

func (uc *ChatUC) appendLocked(r *room, msg models.ChatMessage) {
	r.messages = append(r.messages, msg)
	r.info.UpdatedAt = msg.Timestamp
	uc.syncLastLocked(r)
}

func (uc *ChatUC) syncLastLocked(r *room) {
	if len(r.messages) == 0 {
		return
	}
	last := r.messages[len(r.messages)-1]
	r.info.LastMessage = &last
}

// emit swallows a dropped emit; the manager has already logged it
func (uc *ChatUC) emit(err error) error {
	if err == nil || errors.Is(err, models.ErrTransportUnavailable) {
		return nil
	}
	return fmt.Errorf("failed to emit chat event: %w", err)
}

func (r *room) has(messageID string) bool {
	for _, m := range r.messages {
		if m.ID == messageID {
			return true
		}
	}
	return false
}

func copyRoom(info models.ChatRoom) models.ChatRoom {
	if info.LastMessage != nil {
		last := *info.LastMessage
		info.LastMessage = &last
	}
	return info
}
