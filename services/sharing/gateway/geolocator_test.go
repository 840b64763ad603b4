package gateway

import (
	"context"
	"testing"

	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionFeed_CurrentPosition(t *testing.T) {
	feed := NewPositionFeed()

	_, err := feed.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, models.ErrNoPositionFix)

	fix := models.Position{Coordinates: models.Coordinates{Latitude: -6.1754, Longitude: 106.8272}, Accuracy: 5}
	require.NoError(t, feed.Push(fix))

	got, err := feed.CurrentPosition(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fix, got)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = feed.CurrentPosition(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPositionFeed_PushValidates(t *testing.T) {
	feed := NewPositionFeed()

	err := feed.Push(models.Position{Coordinates: models.Coordinates{Latitude: 91}})

	assert.ErrorIs(t, err, models.ErrInvalidLocation)
	_, err = feed.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, models.ErrNoPositionFix)
}

func TestPositionFeed_Watches(t *testing.T) {
	feed := NewPositionFeed()

	var first, second []models.Position
	id1, err := feed.WatchPosition(func(p models.Position) { first = append(first, p) }, nil)
	require.NoError(t, err)
	id2, err := feed.WatchPosition(func(p models.Position) { second = append(second, p) }, nil)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id2)
	assert.Equal(t, 2, feed.ActiveWatches())

	a := models.Position{Coordinates: models.Coordinates{Latitude: 1, Longitude: 1}}
	b := models.Position{Coordinates: models.Coordinates{Latitude: 2, Longitude: 2}}
	require.NoError(t, feed.Push(a))
	feed.ClearWatch(id1)
	feed.ClearWatch(id1)
	require.NoError(t, feed.Push(b))

	assert.Equal(t, []models.Position{a}, first)
	assert.Equal(t, []models.Position{a, b}, second)
	assert.Equal(t, 1, feed.ActiveWatches())
}

func TestPositionFeed_Deny(t *testing.T) {
	feed := NewPositionFeed()
	require.NoError(t, feed.Push(models.Position{Coordinates: models.Coordinates{Latitude: 1, Longitude: 1}}))

	var errs []error
	id, err := feed.WatchPosition(nil, func(err error) { errs = append(errs, err) })
	require.NoError(t, err)

	feed.Deny()

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], models.ErrPermissionDenied)
	_, err = feed.CurrentPosition(context.Background())
	assert.ErrorIs(t, err, models.ErrPermissionDenied)
	_, err = feed.WatchPosition(nil, nil)
	assert.ErrorIs(t, err, models.ErrPermissionDenied)

	// a fresh fix grants the permission again
	feed.ClearWatch(id)
	require.NoError(t, feed.Push(models.Position{Coordinates: models.Coordinates{Latitude: 2, Longitude: 2}}))
	_, err = feed.CurrentPosition(context.Background())
	assert.NoError(t, err)
}
