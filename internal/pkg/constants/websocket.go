package constants

// WebSocket control events
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"
)

// WebSocket error codes
const (
	ErrorInvalidFormat    = "invalid_format"
	ErrorUnauthorized     = "unauthorized"
	ErrorForbidden        = "forbidden"
	ErrorInternalError    = "internal_error"
	ErrorUnknownEvent     = "unknown_event"
	ErrorTransportOffline = "transport_offline"
)
