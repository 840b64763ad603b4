package models

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v4"
	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient is an authenticated relay client
type WebSocketClient struct {
	UserID string
	Conn   *websocket.Conn
}

// WebSocketClaims are the JWT claims accepted by the relay
type WebSocketClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}
