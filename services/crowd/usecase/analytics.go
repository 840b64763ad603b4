package usecase

import (
	"fmt"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

// NormalizeAnalytics folds one of the heterogeneous analytics shapes into a
// CrowdRecord. Missing parts default to zero values. A response carrying no
// usable part at all is reported as ErrDataShapeMismatch so the caller keeps
// its last known value.
func NormalizeAnalytics(locationID string, resp *models.AnalyticsResponse) (models.CrowdRecord, error) {
	if resp == nil || (resp.Summary == nil && resp.Stats == nil && len(resp.HistoricalData) == 0) {
		return models.CrowdRecord{}, fmt.Errorf("analytics for %s: %w", locationID, models.ErrDataShapeMismatch)
	}

	count := analyticsCount(resp)
	bucket := ""
	trend := models.CrowdTrend("")
	if resp.Summary != nil {
		bucket = resp.Summary.CrowdLevel
		trend = resp.Summary.Trend
	}
	if trend != models.TrendIncreasing && trend != models.TrendDecreasing && trend != models.TrendStable {
		trend = historicalTrend(resp.HistoricalData)
	}

	return models.CrowdRecord{
		LocationID:      locationID,
		Level:           LevelFromBucket(bucket, count),
		RawCount:        count,
		Trend:           trend,
		WaitTimeMinutes: LiveWaitTime(count),
		Source:          models.SourceAnalytics,
	}, nil
}

func analyticsCount(resp *models.AnalyticsResponse) int {
	if resp.Summary != nil {
		return resp.Summary.CurrentCount
	}
	if s := resp.Stats; s != nil {
		switch {
		case s.TotalPeople > 0:
			return s.TotalPeople
		case s.OccupiedSeats > 0:
			return s.OccupiedSeats
		default:
			return s.DetectionCount
		}
	}
	if n := len(resp.HistoricalData); n > 0 {
		return resp.HistoricalData[n-1].Count
	}
	return 0
}

func historicalTrend(history []models.AnalyticsSnapshot) models.CrowdTrend {
	n := len(history)
	if n < 2 {
		return models.TrendStable
	}
	switch last, prev := history[n-1].Count, history[n-2].Count; {
	case last > prev:
		return models.TrendIncreasing
	case last < prev:
		return models.TrendDecreasing
	}
	return models.TrendStable
}
