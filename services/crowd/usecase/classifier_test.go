package usecase

import (
	"math/rand"
	"testing"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

// 2024-03-04 is a Monday
func localTime(day, hour int) time.Time {
	return time.Date(2024, 3, day, hour, 30, 0, 0, time.UTC)
}

func TestClassify_CafeMorningIsHigh(t *testing.T) {
	classifier := NewClassifier(rand.New(rand.NewSource(1)))
	candidate := models.LocationCandidate{ID: "cafe-1", Category: "cafe", IsOpen: true}

	for seed := int64(0); seed < 50; seed++ {
		classifier.rng = rand.New(rand.NewSource(seed))
		record := classifier.Classify(candidate, localTime(4, 8), nil)

		assert.Equal(t, models.CrowdHigh, record.Level)
		assert.GreaterOrEqual(t, record.WaitTimeMinutes, 5)
		assert.Less(t, record.WaitTimeMinutes, 15)
		assert.GreaterOrEqual(t, record.RawCount, 30)
		assert.Less(t, record.RawCount, 60)
		assert.Equal(t, models.SourceHeuristic, record.Source)
		assert.True(t, record.IsEstimate)
	}
}

func TestClassify_LiveCountPassesThrough(t *testing.T) {
	classifier := NewClassifier(rand.New(rand.NewSource(7)))

	for _, count := range []int{0, 1, 5, 6, 11, 21, 57, 1000} {
		record := classifier.Classify(models.LocationCandidate{
			ID:           "gym-1",
			Category:     "cafe",
			IsOpen:       true,
			IsLive:       true,
			SensorCount:  count,
			SensorBucket: "busy",
		}, localTime(4, 8), nil)

		assert.Equal(t, count, record.RawCount)
		assert.Equal(t, models.CrowdHigh, record.Level)
		assert.Equal(t, LiveWaitTime(count), record.WaitTimeMinutes)
		assert.Equal(t, models.SourceSensor, record.Source)
		assert.False(t, record.IsEstimate)
	}
}

func TestClassify_LiveTrend(t *testing.T) {
	classifier := NewClassifier(nil)
	previous := &models.CrowdRecord{LocationID: "gym-1", RawCount: 10}

	tests := []struct {
		name      string
		candidate models.LocationCandidate
		previous  *models.CrowdRecord
		want      models.CrowdTrend
	}{
		{"sensor trend wins", models.LocationCandidate{IsLive: true, SensorCount: 3, SensorTrend: models.TrendIncreasing}, previous, models.TrendIncreasing},
		{"rising count", models.LocationCandidate{IsLive: true, SensorCount: 12}, previous, models.TrendIncreasing},
		{"falling count", models.LocationCandidate{IsLive: true, SensorCount: 4}, previous, models.TrendDecreasing},
		{"no history", models.LocationCandidate{IsLive: true, SensorCount: 4}, nil, models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.candidate, localTime(4, 12), tt.previous)
			assert.Equal(t, tt.want, got.Trend)
		})
	}
}

func TestLevelFromBucket(t *testing.T) {
	tests := []struct {
		bucket string
		count  int
		want   models.CrowdLevel
	}{
		{"empty", 50, models.CrowdLow},
		{"Moderate", 0, models.CrowdMedium},
		{"busy", 0, models.CrowdHigh},
		{"very_busy", 0, models.CrowdVeryHigh},
		{"crowded", 0, models.CrowdVeryHigh},
		{"", 25, models.CrowdVeryHigh},
		{"unknown", 15, models.CrowdHigh},
		{"unknown", 6, models.CrowdMedium},
		{"", 5, models.CrowdLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromBucket(tt.bucket, tt.count), "bucket=%q count=%d", tt.bucket, tt.count)
	}
}

func TestLiveWaitTime(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0}, {5, 0}, {6, 3}, {10, 3}, {11, 8}, {20, 8}, {21, 15}, {400, 15},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LiveWaitTime(tt.count), "count=%d", tt.count)
	}
}

func TestHeuristicLevel(t *testing.T) {
	tests := []struct {
		name     string
		category string
		at       time.Time
		want     models.CrowdLevel
	}{
		{"cafe lunch", "Coffee Shop", localTime(4, 13), models.CrowdHigh},
		{"cafe afternoon", "cafe", localTime(4, 15), models.CrowdMedium},
		{"cafe night", "cafe", localTime(4, 23), models.CrowdLow},
		{"restaurant dinner", "restaurant", localTime(4, 20), models.CrowdVeryHigh},
		{"restaurant early evening", "restaurant", localTime(4, 17), models.CrowdMedium},
		{"restaurant morning", "restaurant", localTime(4, 9), models.CrowdLow},
		{"bank weekday lunch", "bank", localTime(4, 12), models.CrowdHigh},
		{"bank weekday morning", "bank", localTime(4, 9), models.CrowdMedium},
		{"bank saturday", "bank", localTime(9, 12), models.CrowdLow},
		{"market sunday", "supermarket", localTime(10, 9), models.CrowdHigh},
		{"market weekday evening", "market", localTime(4, 18), models.CrowdHigh},
		{"market weekday morning", "market", localTime(4, 9), models.CrowdMedium},
		{"park lunch", "park", localTime(4, 13), models.CrowdMedium},
		{"park morning", "park", localTime(4, 9), models.CrowdLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeuristicLevel(tt.category, tt.at))
		})
	}
}

func TestHeuristicTrendBias(t *testing.T) {
	classifier := NewClassifier(rand.New(rand.NewSource(42)))

	count := func(hour int, want models.CrowdTrend) int {
		n := 0
		for i := 0; i < 1000; i++ {
			if classifier.heuristicTrend(hour) == want {
				n++
			}
		}
		return n
	}

	assert.Greater(t, count(8, models.TrendIncreasing), 600)
	assert.Zero(t, count(8, models.TrendDecreasing))
	assert.Greater(t, count(23, models.TrendDecreasing), 600)
	assert.Zero(t, count(23, models.TrendIncreasing))
	assert.Greater(t, count(14, models.TrendDecreasing), 150)
}
