package websocket

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/crowdpulse/internal/pkg/connection"
	"github.com/piresc/crowdpulse/internal/pkg/constants"
	jwtpkg "github.com/piresc/crowdpulse/internal/pkg/jwt"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
)

const writeWait = 10 * time.Second

// Bus is the part of the connection manager the relay needs
type Bus interface {
	Emit(event string, payload interface{}) error
	SubscribeAll(handler connection.WildcardHandler) *connection.Subscription
}

type session struct {
	client  *models.WebSocketClient
	writeMu sync.Mutex
}

func (s *session) write(msg interface{}) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	_ = s.client.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.client.Conn.WriteJSON(msg)
}

// Manager relays bus events to authenticated browser clients and forwards
// the events clients are allowed to send back onto the bus
type Manager struct {
	sync.RWMutex
	sessions map[string]*session
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
	bus      Bus
	outbound map[string]bool
	sub      *connection.Subscription
}

// NewManager creates a relay. Only events listed in outbound may be sent by
// clients.
func NewManager(jwtConfig models.JWTConfig, bus Bus, outbound []string) *Manager {
	m := &Manager{
		sessions: make(map[string]*session),
		cfg:      jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		bus:      bus,
		outbound: make(map[string]bool, len(outbound)),
	}
	for _, e := range outbound {
		m.outbound[e] = true
	}
	return m
}

// Init starts relaying inbound bus events. Events addressed to one user
// only reach that user's client; the rest go to every client.
func (m *Manager) Init() {
	m.Lock()
	defer m.Unlock()
	if m.sub != nil {
		return
	}
	m.sub = m.bus.SubscribeAll(m.relay)
}

func (m *Manager) relay(event string, payload []byte) error {
	userID, addressed := recipientOf(event, payload)
	switch {
	case !addressed:
		m.Broadcast(event, json.RawMessage(payload))
	case userID == "":
		logger.Debug("Dropping addressed event without recipient", logger.String("event", event))
	default:
		m.NotifyClient(userID, event, json.RawMessage(payload))
	}
	return nil
}

// Dispose stops relaying and closes every client connection
func (m *Manager) Dispose() {
	m.Lock()
	sub := m.sub
	m.sub = nil
	sessions := m.sessions
	m.sessions = make(map[string]*session)
	m.Unlock()

	sub.Cancel()
	for _, s := range sessions {
		_ = s.client.Conn.Close()
	}
}

// HandleConnection authenticates, upgrades and serves one client
func (m *Manager) HandleConnection(c echo.Context) error {
	userID, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	s := &session{client: &models.WebSocketClient{UserID: userID, Conn: ws}}
	m.addSession(s)
	defer m.removeSession(s)
	defer ws.Close()

	logger.Info("WebSocket client connected", logger.String("user_id", userID))
	m.readLoop(s)
	logger.Info("WebSocket client disconnected", logger.String("user_id", userID))
	return nil
}

func (m *Manager) readLoop(s *session) {
	for {
		var msg models.WSMessage
		if err := s.client.Conn.ReadJSON(&msg); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				logger.Debug("WebSocket read failed",
					logger.String("user_id", s.client.UserID),
					logger.Err(err))
			}
			return
		}
		m.handleMessage(s, msg)
	}
}

func (m *Manager) handleMessage(s *session, msg models.WSMessage) {
	switch {
	case msg.Event == constants.EventPing:
		m.send(s, constants.EventPong, struct{}{})
	case msg.Event == "":
		m.sendError(s, constants.ErrorInvalidFormat, "event is required")
	case !m.outbound[msg.Event]:
		m.sendError(s, constants.ErrorUnknownEvent, fmt.Sprintf("event %q is not accepted", msg.Event))
	default:
		data, err := stampActor(msg.Event, s.client.UserID, msg.Data)
		if errors.Is(err, errImpersonation) {
			logger.Warn("Rejected client event acting as another user",
				logger.String("user_id", s.client.UserID),
				logger.String("event", msg.Event))
			m.sendError(s, constants.ErrorForbidden, "cannot act as another user")
			return
		}
		if err != nil {
			m.sendError(s, constants.ErrorInvalidFormat, "data must be an object")
			return
		}
		if err := m.bus.Emit(msg.Event, data); err != nil {
			if errors.Is(err, models.ErrTransportUnavailable) {
				m.sendError(s, constants.ErrorTransportOffline, "realtime channel is offline")
				return
			}
			logger.Warn("Failed to relay client event",
				logger.String("user_id", s.client.UserID),
				logger.String("event", msg.Event),
				logger.Err(err))
			m.sendError(s, constants.ErrorInternalError, "Operation failed")
		}
	}
}

func (m *Manager) authenticate(c echo.Context) (string, error) {
	token := c.QueryParam("token")
	if token == "" {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "Authorization header is required")
		}
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return claims.UserID, nil
}

func (m *Manager) addSession(s *session) {
	m.Lock()
	old := m.sessions[s.client.UserID]
	m.sessions[s.client.UserID] = s
	m.Unlock()

	if old != nil {
		_ = old.client.Conn.Close()
	}
}

func (m *Manager) removeSession(s *session) {
	m.Lock()
	defer m.Unlock()
	if m.sessions[s.client.UserID] == s {
		delete(m.sessions, s.client.UserID)
	}
}

// ClientCount returns the number of connected clients
func (m *Manager) ClientCount() int {
	m.RLock()
	defer m.RUnlock()
	return len(m.sessions)
}

// Broadcast sends an event to every connected client
func (m *Manager) Broadcast(event string, data interface{}) {
	m.RLock()
	sessions := make([]*session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.RUnlock()

	for _, s := range sessions {
		m.send(s, event, data)
	}
}

// NotifyClient sends an event to a specific client
func (m *Manager) NotifyClient(userID string, event string, data interface{}) {
	m.RLock()
	s, ok := m.sessions[userID]
	m.RUnlock()
	if ok {
		m.send(s, event, data)
	}
}

func (m *Manager) send(s *session, event string, data interface{}) {
	raw, err := json.Marshal(data)
	if err != nil {
		logger.Warn("Error marshaling websocket payload",
			logger.String("event", event),
			logger.Err(err))
		return
	}
	if err := s.write(models.WSMessage{Event: event, Data: raw}); err != nil {
		logger.Warn("Error sending message to client",
			logger.String("user_id", s.client.UserID),
			logger.Err(err))
	}
}

func (m *Manager) sendError(s *session, code, message string) {
	m.send(s, constants.EventError, models.WSErrorMessage{Code: code, Message: message})
}
