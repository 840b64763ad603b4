package usecase

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/services/crowd"
	"github.com/piresc/crowdpulse/services/crowd/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestUC(t *testing.T, repo *mocks.MockCrowdRepo) (*CrowdUC, *mocks.MockCrowdGW, *fakeClock) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockCrowdGW(ctrl)
	clock := &fakeClock{now: time.Date(2024, 3, 4, 8, 15, 0, 0, time.UTC)}

	// a nil *MockCrowdRepo must not become a non-nil interface
	var store crowd.CrowdRepo
	if repo != nil {
		store = repo
	}

	uc := NewCrowdUC(gw, store, models.CrowdConfig{PollInterval: 30 * time.Second, StaleFactor: 2},
		WithClock(clock.Now),
		WithLocation(time.UTC),
		WithClassifier(NewClassifier(rand.New(rand.NewSource(3)))),
	)
	return uc, gw, clock
}

func TestUpdateCrowdData_ReceiptOrderWins(t *testing.T) {
	// Arrange
	uc, _, clock := newTestUC(t, nil)
	ctx := context.Background()

	x := models.CrowdRecord{
		LocationID:  "cafe-1",
		Level:       models.CrowdHigh,
		RawCount:    40,
		LastUpdated: time.UnixMilli(100),
	}
	y := models.CrowdRecord{
		LocationID:  "cafe-1",
		Level:       models.CrowdLow,
		RawCount:    2,
		Trend:       models.TrendDecreasing,
		LastUpdated: time.UnixMilli(50),
	}

	// Act
	uc.UpdateCrowdData(ctx, []models.CrowdRecord{x})
	clock.Advance(time.Second)
	secondMerge := clock.Now()
	uc.UpdateCrowdData(ctx, []models.CrowdRecord{y})

	// Assert
	got, ok := uc.GetCrowdData("cafe-1")
	require.True(t, ok)
	assert.Equal(t, models.CrowdLow, got.Level)
	assert.Equal(t, 2, got.RawCount)
	assert.Equal(t, models.TrendDecreasing, got.Trend)
	assert.False(t, got.LastUpdated.Before(secondMerge))
}

func TestUpdateCrowdData_LastMergeInBatchWins(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)

	uc.UpdateCrowdData(context.Background(), []models.CrowdRecord{
		{LocationID: "bank-1", RawCount: 1},
		{LocationID: "", RawCount: 99},
		{LocationID: "bank-1", RawCount: 7},
	})

	got, ok := uc.GetCrowdData("bank-1")
	require.True(t, ok)
	assert.Equal(t, 7, got.RawCount)
	assert.Len(t, uc.GetAllCrowdData(), 1)
}

func TestUpdateCrowdData_PersistsSnapshots(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCrowdRepo(ctrl)
	uc, _, clock := newTestUC(t, repo)

	repo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.CrowdRecord) error {
			assert.Equal(t, "cafe-1", record.LocationID)
			assert.Equal(t, clock.Now(), record.LastUpdated)
			return errors.New("redis down")
		})

	// a failed save keeps the in-memory record
	uc.UpdateCrowdData(context.Background(), []models.CrowdRecord{{LocationID: "cafe-1", RawCount: 3}})

	_, ok := uc.GetCrowdData("cafe-1")
	assert.True(t, ok)
}

func TestUpdateCrowdData_SnapshotWritesFollowMergeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCrowdRepo(ctrl)
	uc, _, _ := newTestUC(t, repo)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	var (
		mu    sync.Mutex
		saved []int
	)
	repo.EXPECT().
		SaveSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record models.CrowdRecord) error {
			if record.RawCount == 1 {
				close(entered)
				<-release
			}
			mu.Lock()
			saved = append(saved, record.RawCount)
			mu.Unlock()
			return nil
		}).
		Times(2)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		uc.UpdateCrowdData(ctx, []models.CrowdRecord{{LocationID: "cafe-1", RawCount: 1}})
	}()
	<-entered
	go func() {
		defer wg.Done()
		uc.UpdateCrowdData(ctx, []models.CrowdRecord{{LocationID: "cafe-1", RawCount: 2}})
	}()

	// the second merge waits for the first write
	assert.Never(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(saved) > 0
	}, 50*time.Millisecond, 5*time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, []int{1, 2}, saved)
	record, ok := uc.GetCrowdData("cafe-1")
	require.True(t, ok)
	assert.Equal(t, 2, record.RawCount)
}

func TestAnalyzeOpenLocations(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)

	candidates := []models.LocationCandidate{
		{ID: "cafe-1", Category: "cafe", IsOpen: true},
		{ID: "closed-bar", Category: "bar", IsOpen: false},
		{ID: "gym-1", Category: "gym", IsOpen: true, IsLive: true, SensorCount: 17, SensorBucket: "moderate"},
	}

	records := uc.AnalyzeOpenLocations(context.Background(), candidates)

	require.Len(t, records, 2)
	ids := []string{records[0].LocationID, records[1].LocationID}
	assert.ElementsMatch(t, []string{"cafe-1", "gym-1"}, ids)

	_, ok := uc.GetCrowdData("closed-bar")
	assert.False(t, ok)

	cafe, _ := uc.GetCrowdData("cafe-1")
	assert.Equal(t, models.CrowdHigh, cafe.Level)
	assert.GreaterOrEqual(t, cafe.WaitTimeMinutes, 5)
	assert.Less(t, cafe.WaitTimeMinutes, 15)
	assert.True(t, cafe.IsEstimate)

	gym, _ := uc.GetCrowdData("gym-1")
	assert.Equal(t, 17, gym.RawCount)
	assert.Equal(t, models.CrowdMedium, gym.Level)
	assert.Equal(t, 8, gym.WaitTimeMinutes)
	assert.False(t, gym.IsEstimate)
}

func TestAnalyzeOpenLocations_NeverInventsLocations(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)

	for i := 0; i < 20; i++ {
		records := uc.AnalyzeOpenLocations(context.Background(), []models.LocationCandidate{
			{ID: "only", Category: "restaurant", IsOpen: true, IsLive: i%2 == 0, SensorCount: i},
		})
		require.Len(t, records, 1)
		assert.Equal(t, "only", records[0].LocationID)
		if i%2 == 0 {
			assert.Equal(t, i, records[0].RawCount)
		}
	}
	assert.Len(t, uc.GetAllCrowdData(), 1)
}

func TestAnalyzeRegistered(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)

	uc.RegisterCandidates([]models.LocationCandidate{
		{ID: "market-1", Category: "market", IsOpen: true},
		{ID: "bank-1", Category: "bank", IsOpen: false},
	})
	require.NoError(t, uc.AnalyzeRegistered(context.Background()))

	all := uc.GetAllCrowdData()
	require.Len(t, all, 1)
	assert.Equal(t, "market-1", all[0].LocationID)
	assert.Equal(t, models.CrowdMedium, all[0].Level)
}

func TestSubscribe(t *testing.T) {
	tests := []struct {
		name    string
		gwErr   error
		wantErr bool
	}{
		{name: "emitted"},
		{name: "dropped while offline", gwErr: models.ErrTransportUnavailable},
		{name: "publish failure", gwErr: errors.New("nats: connection closed"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, gw, _ := newTestUC(t, nil)
			gw.EXPECT().
				RequestCrowdData(models.CrowdDataRequest{LocationIDs: []string{"a", "b"}, Subscribe: true}).
				Return(tt.gwErr)

			err := uc.Subscribe(context.Background(), []string{"a", "b"})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, []string{"a", "b"}, uc.subscribedIDs())
		})
	}
}

func TestUnsubscribeAndPoll(t *testing.T) {
	uc, gw, _ := newTestUC(t, nil)
	ctx := context.Background()

	gomock.InOrder(
		gw.EXPECT().RequestCrowdData(models.CrowdDataRequest{LocationIDs: []string{"c", "a", "b"}, Subscribe: true}).Return(nil),
		gw.EXPECT().RequestCrowdData(models.CrowdDataRequest{LocationIDs: []string{"b"}, Subscribe: false}).Return(nil),
		gw.EXPECT().RequestCrowdData(models.CrowdDataRequest{LocationIDs: []string{"a", "c"}}).Return(nil),
	)

	require.NoError(t, uc.Subscribe(ctx, []string{"c", "a", "b"}))
	require.NoError(t, uc.Unsubscribe(ctx, []string{"b"}))
	require.NoError(t, uc.PollSubscribed(ctx))
}

func TestPollSubscribed_NothingSubscribed(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)
	assert.NoError(t, uc.PollSubscribed(context.Background()))
}

func TestRefreshAnalytics(t *testing.T) {
	uc, gw, _ := newTestUC(t, nil)
	ctx := context.Background()

	gw.EXPECT().RequestCrowdData(gomock.Any()).Return(nil)
	require.NoError(t, uc.Subscribe(ctx, []string{"hall-1", "hall-2", "hall-3"}))

	uc.UpdateCrowdData(ctx, []models.CrowdRecord{
		{LocationID: "hall-1", RawCount: 1, Coordinates: models.Coordinates{Latitude: 1, Longitude: 2}},
		{LocationID: "hall-3", RawCount: 5},
	})

	gw.EXPECT().FetchAnalytics(gomock.Any(), "hall-1").Return(&models.AnalyticsResponse{
		Success: true,
		Summary: &models.AnalyticsSummary{CurrentCount: 12, CrowdLevel: "busy"},
	}, nil)
	gw.EXPECT().FetchAnalytics(gomock.Any(), "hall-2").Return(nil, errors.New("circuit breaker is open"))
	gw.EXPECT().FetchAnalytics(gomock.Any(), "hall-3").Return(&models.AnalyticsResponse{Success: true}, nil)

	err := uc.RefreshAnalytics(ctx)

	assert.ErrorContains(t, err, "1 of 3")
	hall1, _ := uc.GetCrowdData("hall-1")
	assert.Equal(t, 12, hall1.RawCount)
	assert.Equal(t, models.CrowdHigh, hall1.Level)
	assert.Equal(t, models.SourceAnalytics, hall1.Source)
	assert.Equal(t, models.Coordinates{Latitude: 1, Longitude: 2}, hall1.Coordinates)

	_, ok := uc.GetCrowdData("hall-2")
	assert.False(t, ok)

	// unusable payload keeps the last known value
	hall3, _ := uc.GetCrowdData("hall-3")
	assert.Equal(t, 5, hall3.RawCount)
}

func TestWarmStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCrowdRepo(ctrl)
	uc, _, _ := newTestUC(t, repo)
	ctx := context.Background()
	old := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().SaveSnapshot(gomock.Any(), gomock.Any()).Return(nil)
	uc.UpdateCrowdData(ctx, []models.CrowdRecord{{LocationID: "fresh", RawCount: 9}})

	repo.EXPECT().LoadSnapshots(gomock.Any()).Return([]models.CrowdRecord{
		{LocationID: "fresh", RawCount: 1, LastUpdated: old},
		{LocationID: "restored", RawCount: 4, LastUpdated: old},
	}, nil)

	require.NoError(t, uc.WarmStart(ctx))

	fresh, _ := uc.GetCrowdData("fresh")
	assert.Equal(t, 9, fresh.RawCount)
	restored, ok := uc.GetCrowdData("restored")
	require.True(t, ok)
	assert.Equal(t, old, restored.LastUpdated)
	assert.True(t, uc.IsStale(restored))
}

func TestWarmStart_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCrowdRepo(ctrl)
	uc, _, _ := newTestUC(t, repo)

	repo.EXPECT().LoadSnapshots(gomock.Any()).Return(nil, errors.New("connection refused"))

	assert.Error(t, uc.WarmStart(context.Background()))

	noRepo, _, _ := newTestUC(t, nil)
	assert.NoError(t, noRepo.WarmStart(context.Background()))
}

func TestLookups(t *testing.T) {
	uc, _, _ := newTestUC(t, nil)
	monas := models.Coordinates{Latitude: -6.1754, Longitude: 106.8272}

	uc.UpdateCrowdData(context.Background(), []models.CrowdRecord{
		{LocationID: "c", Level: models.CrowdHigh, Coordinates: models.Coordinates{Latitude: -6.1944, Longitude: 106.8229}},
		{LocationID: "a", Level: models.CrowdHigh, Coordinates: monas},
		{LocationID: "b", Level: models.CrowdLow, Coordinates: models.Coordinates{Latitude: -6.9175, Longitude: 107.6191}},
	})

	high := uc.GetLocationsByLevel(models.CrowdHigh)
	require.Len(t, high, 2)
	assert.Equal(t, "a", high[0].LocationID)
	assert.Equal(t, "c", high[1].LocationID)

	assert.Len(t, uc.GetAllCrowdData(), 3)

	nearby := uc.GetNearbyCrowd(monas, 5)
	require.Len(t, nearby, 2)
	assert.Equal(t, "a", nearby[0].LocationID)
	assert.Equal(t, "c", nearby[1].LocationID)

	_, ok := uc.GetCrowdData("missing")
	assert.False(t, ok)
}

func TestIsStale(t *testing.T) {
	uc, _, clock := newTestUC(t, nil)

	uc.UpdateCrowdData(context.Background(), []models.CrowdRecord{{LocationID: "a"}})
	record, _ := uc.GetCrowdData("a")
	assert.False(t, uc.IsStale(record))

	clock.Advance(60 * time.Second)
	assert.False(t, uc.IsStale(record))

	clock.Advance(time.Millisecond)
	assert.True(t, uc.IsStale(record))

	assert.True(t, uc.IsStale(models.CrowdRecord{}))
}
