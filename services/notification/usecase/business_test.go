package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func campaign(id string, lat float64, radiusKm float64) models.BusinessNotification {
	return models.BusinessNotification{
		PushNotification: models.PushNotification{ID: id, Title: "Happy hour " + id},
		BusinessID:       "biz-" + id,
		Geofence: &models.Geofence{
			Center:   models.Coordinates{Latitude: lat, Longitude: monas.Longitude},
			RadiusKm: radiusKm,
		},
		IsActive: true,
	}
}

func TestAddBusinessNotification_MirrorsIntoQueue(t *testing.T) {
	f := setup(t)
	validUntil := t0.Add(2 * time.Hour)
	bn := campaign("cafe", -6.1709, 1)
	bn.ValidUntil = validUntil

	stored, err := f.uc.AddBusinessNotification(context.Background(), bn)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationBusiness, stored.Type)
	assert.Equal(t, t0, stored.Timestamp)

	queue := f.uc.GetNotifications()
	require.Len(t, queue, 1)
	assert.Equal(t, "cafe", queue[0].ID)
	assert.Equal(t, models.NotificationBusiness, queue[0].Type)
	assert.Equal(t, "biz-cafe", queue[0].Data["business_id"])
	require.NotNil(t, queue[0].ExpiresAt)
	assert.Equal(t, validUntil, *queue[0].ExpiresAt)

	assert.Len(t, f.uc.GetBusinessNotifications(), 1)
}

func TestAddBusinessNotification_MirrorGoesThroughAdmission(t *testing.T) {
	f := setup(t)
	f.gw.EXPECT().SyncSettings(gomock.Any()).Return(nil)
	settings := models.DefaultNotificationSettings()
	settings.Types[models.NotificationBusiness] = false
	require.NoError(t, f.uc.UpdateSettings(settings))

	_, err := f.uc.AddBusinessNotification(context.Background(), campaign("cafe", -6.1709, 1))

	require.NoError(t, err)
	assert.Empty(t, f.uc.GetNotifications())
	assert.Len(t, f.uc.GetBusinessNotifications(), 1, "the campaign is still stored")
}

func TestAddBusinessNotification_Validation(t *testing.T) {
	f := setup(t)

	_, err := f.uc.AddBusinessNotification(context.Background(), campaign("bad", 123, 1))

	assert.ErrorIs(t, err, models.ErrInvalidLocation)
	assert.Empty(t, f.uc.GetBusinessNotifications())
}

func TestAddBusinessNotification_DefaultRadius(t *testing.T) {
	f := setup(t)

	stored, err := f.uc.AddBusinessNotification(context.Background(), campaign("cafe", -6.1709, 0))

	require.NoError(t, err)
	assert.Equal(t, 5.0, stored.Geofence.RadiusKm)
}

func TestGetNearbyBusinessNotifications(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	// about 0.5 km, 1.1 km and 3.3 km north of the origin
	_, err := f.uc.AddBusinessNotification(ctx, campaign("near", -6.1709, 10))
	require.NoError(t, err)
	_, err = f.uc.AddBusinessNotification(ctx, campaign("mid", -6.1654, 1))
	require.NoError(t, err)
	_, err = f.uc.AddBusinessNotification(ctx, campaign("far", -6.1454, 10))
	require.NoError(t, err)

	inactive := campaign("inactive", -6.1709, 10)
	inactive.IsActive = false
	_, err = f.uc.AddBusinessNotification(ctx, inactive)
	require.NoError(t, err)

	stale := campaign("stale", -6.1709, 10)
	stale.ValidUntil = t0.Add(-time.Minute)
	_, err = f.uc.AddBusinessNotification(ctx, stale)
	require.NoError(t, err)

	unfenced := campaign("unfenced", 0, 0)
	unfenced.Geofence = nil
	_, err = f.uc.AddBusinessNotification(ctx, unfenced)
	require.NoError(t, err)

	ids := func(list []models.NearbyBusinessNotification) []string {
		var out []string
		for _, n := range list {
			out = append(out, n.Notification.ID)
		}
		return out
	}

	t.Run("requested radius bounds the search", func(t *testing.T) {
		assert.Equal(t, []string{"near"}, ids(f.uc.GetNearbyBusinessNotifications(monas, 0.8)))
	})

	t.Run("notification radius bounds the search", func(t *testing.T) {
		// mid is 1.1 km away but only reaches 1 km
		assert.Equal(t, []string{"near"}, ids(f.uc.GetNearbyBusinessNotifications(monas, 2)))
	})

	t.Run("default radius", func(t *testing.T) {
		got := f.uc.GetNearbyBusinessNotifications(monas, 0)
		assert.Equal(t, []string{"near", "far"}, ids(got))
		assert.InDelta(t, 0.5, got[0].DistanceKm, 0.05)
		assert.InDelta(t, 3.3, got[1].DistanceKm, 0.1)
	})
}

func TestClearExpiredNotifications_RetiresBusinesses(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	bn := campaign("cafe", -6.1709, 1)
	bn.ValidUntil = t0.Add(time.Hour)
	_, err := f.uc.AddBusinessNotification(ctx, bn)
	require.NoError(t, err)

	f.clock.Set(t0.Add(time.Hour + time.Second))
	require.NoError(t, f.uc.ClearExpiredNotifications(ctx))

	assert.Empty(t, f.uc.GetBusinessNotifications())
	assert.Empty(t, f.uc.GetNotifications())
}
