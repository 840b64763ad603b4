package models

import "time"

// MessageType classifies chat message bodies
type MessageType string

const (
	MessageText     MessageType = "text"
	MessageImage    MessageType = "image"
	MessageLocation MessageType = "location"
	MessageSystem   MessageType = "system"
)

// DeliveryStatus of a chat message. It only moves forward.
type DeliveryStatus string

const (
	DeliverySending   DeliveryStatus = "sending"
	DeliverySent      DeliveryStatus = "sent"
	DeliveryDelivered DeliveryStatus = "delivered"
	DeliveryRead      DeliveryStatus = "read"
	DeliveryFailed    DeliveryStatus = "failed"
)

var deliveryRank = map[DeliveryStatus]int{
	DeliveryFailed:    0,
	DeliverySending:   1,
	DeliverySent:      2,
	DeliveryDelivered: 3,
	DeliveryRead:      4,
}

// Advances reports whether moving from s to next is a forward transition
func (s DeliveryStatus) Advances(next DeliveryStatus) bool {
	return deliveryRank[next] > deliveryRank[s]
}

// CanFail reports whether a message in status s may still be marked failed.
// Once delivered or read it never fails.
func (s DeliveryStatus) CanFail() bool {
	return s == DeliverySending || s == DeliverySent
}

// ChatMessage is a single message in a two-party room
type ChatMessage struct {
	ID             string         `json:"id"`
	RoomID         string         `json:"room_id"`
	SenderID       string         `json:"sender_id"`
	RecipientID    string         `json:"recipient_id"`
	Body           string         `json:"body"`
	Timestamp      time.Time      `json:"timestamp"`
	Type           MessageType    `json:"type"`
	DeliveryStatus DeliveryStatus `json:"delivery_status"`
}

// ChatRoom is the canonical conversation between two participants
type ChatRoom struct {
	ID           string       `json:"id"`
	Participants [2]string    `json:"participants"`
	UnreadCount  int          `json:"unread_count"`
	LastMessage  *ChatMessage `json:"last_message,omitempty"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// JoinChat is emitted when the local user opens a room
type JoinChat struct {
	RoomID string `json:"room_id"`
	UserID string `json:"user_id"`
}

// TypingSignal is carried by typing-start, typing-stop and user-typing
type TypingSignal struct {
	RoomID   string `json:"room_id"`
	UserID   string `json:"user_id"`
	IsTyping bool   `json:"is_typing"`
}

// MarkRead is emitted when the local user reads a room
type MarkRead struct {
	RoomID string    `json:"room_id"`
	UserID string    `json:"user_id"`
	ReadAt time.Time `json:"read_at"`
}

// MessageStatusUpdate advances the delivery status of a sent message
type MessageStatusUpdate struct {
	MessageID string         `json:"message_id"`
	RoomID    string         `json:"room_id"`
	Status    DeliveryStatus `json:"status"`
}

// OnlineUsers is the presence snapshot pushed by the server
type OnlineUsers struct {
	UserIDs []string `json:"user_ids"`
}
