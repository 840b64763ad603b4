package models

import "time"

// ConnectionStatus is the lifecycle state of the transport connection
type ConnectionStatus string

const (
	StatusDisconnected ConnectionStatus = "disconnected"
	StatusConnecting   ConnectionStatus = "connecting"
	StatusConnected    ConnectionStatus = "connected"
	StatusReconnecting ConnectionStatus = "reconnecting"
)

// ConnectionState is a point-in-time view of the connection manager
type ConnectionState struct {
	Status            ConnectionStatus `json:"status"`
	ReconnectAttempts int              `json:"reconnect_attempts"`
	LastReconnectTime time.Time        `json:"last_reconnect_time,omitempty"`
}

// IsConnected reports whether emits will be forwarded to the transport
func (s ConnectionState) IsConnected() bool {
	return s.Status == StatusConnected
}
