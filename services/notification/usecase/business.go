package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
)

// AddBusinessNotification stores a venue campaign and mirrors it into the
// queue as a business notification, subject to admission
func (uc *NotificationUC) AddBusinessNotification(ctx context.Context, bn models.BusinessNotification) (models.BusinessNotification, error) {
	if bn.Geofence != nil {
		if !bn.Geofence.Center.Valid() {
			return bn, models.ErrInvalidLocation
		}
		geofence := *bn.Geofence
		bn.Geofence = &geofence
	}
	if bn.ID == "" {
		bn.ID = uuid.New().String()
	}
	if bn.Timestamp.IsZero() {
		bn.Timestamp = uc.now()
	}
	bn.Type = models.NotificationBusiness
	bn.PushNotification = copyNotification(bn.PushNotification)

	uc.mu.Lock()
	if bn.Geofence != nil && bn.Geofence.RadiusKm <= 0 {
		bn.Geofence.RadiusKm = uc.settings.DefaultRadiusKm
	}
	uc.businesses[bn.ID] = bn
	uc.mu.Unlock()

	mirror := copyNotification(bn.PushNotification)
	if mirror.Data == nil {
		mirror.Data = make(map[string]string, 1)
	}
	mirror.Data["business_id"] = bn.BusinessID
	if !bn.ValidUntil.IsZero() && mirror.ExpiresAt == nil {
		validUntil := bn.ValidUntil
		mirror.ExpiresAt = &validUntil
	}
	uc.AddNotification(ctx, mirror)

	return bn, nil
}

// GetBusinessNotifications returns every stored business notification,
// newest first
func (uc *NotificationUC) GetBusinessNotifications() []models.BusinessNotification {
	uc.mu.RLock()
	out := make([]models.BusinessNotification, 0, len(uc.businesses))
	for _, bn := range uc.businesses {
		out = append(out, copyBusiness(bn))
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

// GetNearbyBusinessNotifications returns the active geofenced notifications
// within min(radiusKm, geofence radius) of origin, nearest first. A
// non-positive radiusKm falls back to the default radius of the settings.
func (uc *NotificationUC) GetNearbyBusinessNotifications(origin models.Coordinates, radiusKm float64) []models.NearbyBusinessNotification {
	now := uc.now()

	uc.mu.RLock()
	if radiusKm <= 0 {
		radiusKm = uc.settings.DefaultRadiusKm
	}
	var out []models.NearbyBusinessNotification
	for _, bn := range uc.businesses {
		if !bn.IsActive || businessExpired(bn, now) || bn.Geofence == nil {
			continue
		}
		limit := radiusKm
		if bn.Geofence.RadiusKm > 0 && bn.Geofence.RadiusKm < limit {
			limit = bn.Geofence.RadiusKm
		}
		distance := utils.CalculateDistance(origin, bn.Geofence.Center)
		if distance > limit {
			continue
		}
		out = append(out, models.NearbyBusinessNotification{
			Notification: copyBusiness(bn),
			DistanceKm:   distance,
		})
	}
	uc.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].DistanceKm == out[j].DistanceKm {
			return out[i].Notification.ID < out[j].Notification.ID
		}
		return out[i].DistanceKm < out[j].DistanceKm
	})
	return out
}

func businessExpired(bn models.BusinessNotification, now time.Time) bool {
	return !bn.ValidUntil.IsZero() && now.After(bn.ValidUntil)
}

func copyBusiness(bn models.BusinessNotification) models.BusinessNotification {
	bn.PushNotification = copyNotification(bn.PushNotification)
	if bn.Geofence != nil {
		geofence := *bn.Geofence
		bn.Geofence = &geofence
	}
	return bn
}
