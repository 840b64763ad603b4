package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/crowdpulse/internal/pkg/logger"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
	"github.com/piresc/crowdpulse/services/sharing"
)

// DefaultRequestTTL is how long a location request stays answerable
const DefaultRequestTTL = 5 * time.Minute

// SharingUC implements sharing.SharingUC for one local user
type SharingUC struct {
	gw      sharing.SharingGW
	geo     sharing.Geolocator
	friends sharing.FriendProvider
	userID  string
	ttl     time.Duration
	now     models.Clock

	mu       sync.RWMutex
	sharing  bool
	session  uint64
	watchID  int
	watching bool
	expiry   *time.Timer
	privacy  models.PrivacySettings
	mine     *models.SharedLocation
	peers    map[string]models.SharedLocation
	requests map[string]models.LocationShareRequest
}

// Option configures a SharingUC
type Option func(*SharingUC)

// WithClock overrides the clock used for stamps and expiry checks
func WithClock(now models.Clock) Option {
	return func(uc *SharingUC) { uc.now = now }
}

// WithFriendProvider enables the friends privacy scope
func WithFriendProvider(friends sharing.FriendProvider) Option {
	return func(uc *SharingUC) { uc.friends = friends }
}

// WithPrivacySettings replaces the default privacy settings
func WithPrivacySettings(settings models.PrivacySettings) Option {
	return func(uc *SharingUC) { uc.privacy = settings }
}

// NewSharingUC creates the sharing store of userID
func NewSharingUC(gw sharing.SharingGW, geo sharing.Geolocator, userID string, cfg models.SharingConfig, opts ...Option) *SharingUC {
	ttl := cfg.RequestTTL
	if ttl <= 0 {
		ttl = DefaultRequestTTL
	}

	uc := &SharingUC{
		gw:       gw,
		geo:      geo,
		userID:   userID,
		ttl:      ttl,
		now:      models.Now,
		privacy:  models.DefaultPrivacySettings(),
		peers:    make(map[string]models.SharedLocation),
		requests: make(map[string]models.LocationShareRequest),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// StartLocationSharing takes an initial fix, broadcasts it and opens one
// continuous watch. It is a no-op while already sharing.
func (uc *SharingUC) StartLocationSharing(ctx context.Context) error {
	uc.mu.Lock()
	if uc.sharing {
		uc.mu.Unlock()
		return nil
	}
	uc.sharing = true
	uc.session++
	session := uc.session
	autoExpire := uc.privacy.AutoExpireAfter
	uc.mu.Unlock()

	pos, err := uc.geo.CurrentPosition(ctx)
	if err != nil {
		uc.abortStart(session)
		return fmt.Errorf("failed to acquire initial position: %w", err)
	}
	if err := uc.UpdateMyLocation(pos); err != nil {
		uc.abortStart(session)
		return err
	}

	watchID, err := uc.geo.WatchPosition(
		func(p models.Position) {
			if err := uc.UpdateMyLocation(p); err != nil {
				logger.Warn("Failed to broadcast position", logger.Err(err))
			}
		},
		func(err error) {
			logger.Warn("Geolocation watch error", logger.Err(err))
			if errors.Is(err, models.ErrPermissionDenied) {
				_ = uc.StopLocationSharing()
			}
		},
	)
	if err != nil {
		uc.abortStart(session)
		return fmt.Errorf("failed to watch position: %w", err)
	}

	uc.mu.Lock()
	if !uc.sharing || uc.session != session {
		uc.mu.Unlock()
		uc.geo.ClearWatch(watchID)
		return nil
	}
	uc.watchID = watchID
	uc.watching = true
	if autoExpire > 0 {
		uc.expiry = time.AfterFunc(autoExpire, func() { uc.expire(session) })
	}
	uc.mu.Unlock()

	logger.Info("Location sharing started",
		logger.String("user_id", uc.userID),
		logger.Duration("auto_expire_after", autoExpire))
	return nil
}

func (uc *SharingUC) abortStart(session uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.session == session {
		uc.sharing = false
		uc.mine = nil
	}
}

func (uc *SharingUC) expire(session uint64) {
	uc.mu.RLock()
	current := uc.sharing && uc.session == session
	uc.mu.RUnlock()

	if current {
		logger.Info("Location sharing expired", logger.String("user_id", uc.userID))
		_ = uc.StopLocationSharing()
	}
}

// StopLocationSharing clears the watch and tells peers to evict the local
// user. It is a no-op when not sharing.
func (uc *SharingUC) StopLocationSharing() error {
	uc.mu.Lock()
	if !uc.sharing {
		uc.mu.Unlock()
		return nil
	}
	uc.sharing = false
	uc.mine = nil
	watchID, watching := uc.watchID, uc.watching
	uc.watching = false
	if uc.expiry != nil {
		uc.expiry.Stop()
		uc.expiry = nil
	}
	uc.mu.Unlock()

	if watching {
		uc.geo.ClearWatch(watchID)
	}

	logger.Info("Location sharing stopped", logger.String("user_id", uc.userID))
	return uc.emit(uc.gw.StopSharing(models.SharingStopped{UserID: uc.userID, Timestamp: uc.now()}))
}

// IsSharing reports whether the local user is broadcasting
func (uc *SharingUC) IsSharing() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.sharing
}

// UpdateMyLocation builds the redacted SharedLocation for a fix and
// broadcasts it. Fixes arriving while not sharing are ignored.
func (uc *SharingUC) UpdateMyLocation(pos models.Position) error {
	if !pos.Coordinates.Valid() {
		return models.ErrInvalidLocation
	}

	uc.mu.Lock()
	if !uc.sharing {
		uc.mu.Unlock()
		return nil
	}
	loc := redact(uc.userID, pos, uc.privacy, uc.now())
	uc.mine = &loc
	uc.mu.Unlock()

	return uc.emit(uc.gw.ShareLocation(loc))
}

func redact(userID string, pos models.Position, privacy models.PrivacySettings, now time.Time) models.SharedLocation {
	loc := models.SharedLocation{
		UserID:      userID,
		Coordinates: pos.Coordinates,
		Timestamp:   pos.Timestamp,
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = now
	}
	if !privacy.PreciseLocation {
		loc.Coordinates = utils.CoarsenLocation(pos.Coordinates, utils.DefaultGeohashPrecision)
		loc.Approximate = true
	}
	if privacy.ShareAccuracy && pos.Accuracy > 0 {
		accuracy := pos.Accuracy
		loc.Accuracy = &accuracy
	}
	if privacy.ShareHeading && pos.Heading != nil {
		heading := *pos.Heading
		loc.Heading = &heading
	}
	if privacy.ShareSpeed && pos.Speed != nil {
		speed := *pos.Speed
		loc.Speed = &speed
	}
	return loc
}

// MyLocation returns the last broadcast of the local user
func (uc *SharingUC) MyLocation() (models.SharedLocation, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.mine == nil {
		return models.SharedLocation{}, false
	}
	return *uc.mine, true
}

// ApplyPeerLocation replaces the cached location of a peer. Broadcasts
// from blocked users are ignored.
func (uc *SharingUC) ApplyPeerLocation(loc models.SharedLocation) {
	if loc.UserID == "" || loc.UserID == uc.userID {
		return
	}
	if !loc.Coordinates.Valid() {
		logger.Warn("Dropping peer location with invalid coordinates", logger.String("user_id", loc.UserID))
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if contains(uc.privacy.BlockList, loc.UserID) {
		return
	}
	if loc.Timestamp.IsZero() {
		loc.Timestamp = uc.now()
	}
	uc.peers[loc.UserID] = loc
}

// ApplySharingStopped evicts a peer from the cache
func (uc *SharingUC) ApplySharingStopped(stopped models.SharingStopped) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.peers, stopped.UserID)
}

// GetPeerLocation returns the cached location of one peer
func (uc *SharingUC) GetPeerLocation(userID string) (models.SharedLocation, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	loc, ok := uc.peers[userID]
	return loc, ok
}

// GetPeerLocations returns every cached peer location, by user id
func (uc *SharingUC) GetPeerLocations() []models.SharedLocation {
	uc.mu.RLock()
	out := make([]models.SharedLocation, 0, len(uc.peers))
	for _, loc := range uc.peers {
		out = append(out, loc)
	}
	uc.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].UserID < out[j].UserID })
	return out
}

// SendLocationRequest asks a peer to share their location
func (uc *SharingUC) SendLocationRequest(toUserID, message string) (models.LocationShareRequest, error) {
	if toUserID == "" || toUserID == uc.userID {
		return models.LocationShareRequest{}, models.ErrSelfRequest
	}

	now := uc.now()
	req := models.LocationShareRequest{
		ID:         uuid.New().String(),
		FromUserID: uc.userID,
		ToUserID:   toUserID,
		Message:    utils.Truncate(utils.SanitizeString(message), 200),
		Timestamp:  now,
		ExpiresAt:  now.Add(uc.ttl),
		Status:     models.RequestPending,
	}

	uc.mu.Lock()
	uc.requests[req.ID] = req
	uc.mu.Unlock()

	if err := uc.emit(uc.gw.SendLocationRequest(req)); err != nil {
		return req, err
	}
	return req, nil
}

// ReceiveLocationRequest stores an inbound request addressed to the local
// user. Requests from blocked users and repeated ids are ignored.
func (uc *SharingUC) ReceiveLocationRequest(req models.LocationShareRequest) {
	if req.ID == "" || req.FromUserID == "" || req.FromUserID == uc.userID {
		return
	}
	if req.ToUserID != "" && req.ToUserID != uc.userID {
		return
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if contains(uc.privacy.BlockList, req.FromUserID) {
		logger.Debug("Ignoring location request from blocked user", logger.String("from_user_id", req.FromUserID))
		return
	}
	if _, ok := uc.requests[req.ID]; ok {
		return
	}

	req.ToUserID = uc.userID
	if req.Timestamp.IsZero() {
		req.Timestamp = uc.now()
	}
	if req.ExpiresAt.IsZero() {
		req.ExpiresAt = req.Timestamp.Add(uc.ttl)
	}
	req.Status = models.RequestPending
	uc.requests[req.ID] = req
}

// AcceptLocationRequest answers an inbound pending request. Sharing starts
// first when needed. Accepting adds the requester to the allow list; a
// blocked requester is refused.
func (uc *SharingUC) AcceptLocationRequest(ctx context.Context, requestID string) error {
	req, err := uc.answerable(requestID)
	if err != nil {
		return err
	}
	if uc.isBlocked(req.FromUserID) {
		return models.ErrPermissionDenied
	}

	if err := uc.StartLocationSharing(ctx); err != nil {
		return err
	}
	uc.allow(req.FromUserID)
	return uc.resolve(req, true)
}

func (uc *SharingUC) isBlocked(userID string) bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return contains(uc.privacy.BlockList, userID)
}

func (uc *SharingUC) allow(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if !contains(uc.privacy.AllowList, userID) {
		uc.privacy.AllowList = append(uc.privacy.AllowList, userID)
	}
}

// DeclineLocationRequest answers an inbound pending request with a refusal
func (uc *SharingUC) DeclineLocationRequest(requestID string) error {
	req, err := uc.answerable(requestID)
	if err != nil {
		return err
	}
	return uc.resolve(req, false)
}

func (uc *SharingUC) answerable(requestID string) (models.LocationShareRequest, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	req, ok := uc.requests[requestID]
	if !ok || req.ToUserID != uc.userID {
		return models.LocationShareRequest{}, models.ErrRequestNotFound
	}
	switch req.Status {
	case models.RequestExpired:
		return req, models.ErrRequestExpired
	case models.RequestAccepted, models.RequestDeclined:
		return req, models.ErrRequestResolved
	}
	if uc.now().After(req.ExpiresAt) {
		req.Status = models.RequestExpired
		uc.requests[requestID] = req
		return req, models.ErrRequestExpired
	}
	return req, nil
}

func (uc *SharingUC) resolve(req models.LocationShareRequest, accepted bool) error {
	status := models.RequestDeclined
	if accepted {
		status = models.RequestAccepted
	}

	uc.mu.Lock()
	current := uc.requests[req.ID]
	if current.Status != models.RequestPending {
		uc.mu.Unlock()
		return models.ErrRequestResolved
	}
	current.Status = status
	uc.requests[req.ID] = current
	uc.mu.Unlock()

	return uc.emit(uc.gw.RespondLocationRequest(models.LocationRequestResponse{
		RequestID:  req.ID,
		FromUserID: uc.userID,
		ToUserID:   req.FromUserID,
		Accepted:   accepted,
		Timestamp:  uc.now(),
	}))
}

// ApplyRequestResponse records the peer's answer to an outgoing request.
// Only pending requests change.
func (uc *SharingUC) ApplyRequestResponse(resp models.LocationRequestResponse) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	req, ok := uc.requests[resp.RequestID]
	if !ok || req.FromUserID != uc.userID || req.Status != models.RequestPending {
		return
	}
	if resp.Accepted {
		req.Status = models.RequestAccepted
	} else {
		req.Status = models.RequestDeclined
	}
	uc.requests[req.ID] = req
}

// CleanupExpiredRequests moves pending requests past expiresAt to expired.
// Resolved requests are never touched.
func (uc *SharingUC) CleanupExpiredRequests(ctx context.Context) error {
	now := uc.now()

	uc.mu.Lock()
	expired := 0
	for id, req := range uc.requests {
		if req.Status == models.RequestPending && now.After(req.ExpiresAt) {
			req.Status = models.RequestExpired
			uc.requests[id] = req
			expired++
		}
	}
	uc.mu.Unlock()

	if expired > 0 {
		logger.Debug("Expired location requests", logger.Int("count", expired))
	}
	return nil
}

// GetRequests returns every known request, newest first
func (uc *SharingUC) GetRequests() []models.LocationShareRequest {
	uc.mu.RLock()
	out := make([]models.LocationShareRequest, 0, len(uc.requests))
	for _, req := range uc.requests {
		out = append(out, req)
	}
	uc.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp.Equal(out[j].Timestamp) {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out
}

// GetPrivacySettings returns a copy of the privacy settings
func (uc *SharingUC) GetPrivacySettings() models.PrivacySettings {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	settings := uc.privacy
	settings.AllowList = append([]string(nil), uc.privacy.AllowList...)
	settings.BlockList = append([]string(nil), uc.privacy.BlockList...)
	return settings
}

// UpdatePrivacySettings replaces the privacy settings. Newly blocked peers
// are evicted from the cache.
func (uc *SharingUC) UpdatePrivacySettings(settings models.PrivacySettings) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.privacy = settings
	for _, blocked := range settings.BlockList {
		delete(uc.peers, blocked)
	}
}

// CanShareWith evaluates the privacy settings for userID. Precedence:
// block list, scope none, scope all, allow list, then friends.
func (uc *SharingUC) CanShareWith(userID string) bool {
	uc.mu.RLock()
	privacy := uc.privacy
	uc.mu.RUnlock()

	if contains(privacy.BlockList, userID) {
		return false
	}
	switch privacy.Scope {
	case models.ShareWithNone:
		return false
	case models.ShareWithAll:
		return true
	}
	if contains(privacy.AllowList, userID) {
		return true
	}
	if privacy.Scope == models.ShareWithFriends {
		return uc.friends != nil && uc.friends.IsFriend(userID)
	}
	return false
}

// GetDistanceToUser returns the distance in km between the local user's last
// broadcast and a cached peer
func (uc *SharingUC) GetDistanceToUser(userID string) (float64, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	peer, ok := uc.peers[userID]
	if !ok || uc.mine == nil {
		return 0, false
	}
	return utils.CalculateDistance(uc.mine.Coordinates, peer.Coordinates), true
}

// GetNearbyUsers returns the cached peers within radiusKm of origin,
// nearest first
func (uc *SharingUC) GetNearbyUsers(origin models.Coordinates, radiusKm float64) []models.NearbyUser {
	var out []models.NearbyUser
	for _, loc := range uc.GetPeerLocations() {
		d := utils.CalculateDistance(origin, loc.Coordinates)
		if d <= radiusKm {
			out = append(out, models.NearbyUser{Location: loc, DistanceKm: d})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out
}

// emit swallows a dropped emit; the manager has already logged it
func (uc *SharingUC) emit(err error) error {
	if err == nil || errors.Is(err, models.ErrTransportUnavailable) {
		return nil
	}
	return fmt.Errorf("failed to emit sharing event: %w", err)
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
