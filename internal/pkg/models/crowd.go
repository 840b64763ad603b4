package models

import "time"

// CrowdLevel is the internal four-step occupancy scale
type CrowdLevel string

const (
	CrowdLow      CrowdLevel = "low"
	CrowdMedium   CrowdLevel = "medium"
	CrowdHigh     CrowdLevel = "high"
	CrowdVeryHigh CrowdLevel = "very_high"
)

// Valid reports whether l is one of the four known levels
func (l CrowdLevel) Valid() bool {
	switch l {
	case CrowdLow, CrowdMedium, CrowdHigh, CrowdVeryHigh:
		return true
	}
	return false
}

// CrowdTrend is the short-term direction of occupancy
type CrowdTrend string

const (
	TrendIncreasing CrowdTrend = "increasing"
	TrendDecreasing CrowdTrend = "decreasing"
	TrendStable     CrowdTrend = "stable"
)

// CrowdSource tells where a record's numbers came from
type CrowdSource string

const (
	SourceSensor    CrowdSource = "sensor"
	SourceHeuristic CrowdSource = "heuristic"
	SourceAnalytics CrowdSource = "analytics"
)

// CrowdRecord is the latest known crowd state of one location.
// LastUpdated is stamped when the record is merged locally.
type CrowdRecord struct {
	LocationID      string      `json:"location_id"`
	Level           CrowdLevel  `json:"level"`
	RawCount        int         `json:"raw_count"`
	Trend           CrowdTrend  `json:"trend"`
	WaitTimeMinutes int         `json:"wait_time_minutes"`
	Coordinates     Coordinates `json:"coordinates"`
	Source          CrowdSource `json:"source"`
	IsEstimate      bool        `json:"is_estimate"`
	LastUpdated     time.Time   `json:"last_updated"`
}

// LocationCandidate is a venue handed to the classifier
type LocationCandidate struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	IsOpen      bool        `json:"is_open"`
	// Sensor fields are only meaningful when IsLive is set
	IsLive       bool       `json:"is_live"`
	SensorCount  int        `json:"sensor_count"`
	SensorBucket string     `json:"sensor_bucket"`
	SensorTrend  CrowdTrend `json:"sensor_trend,omitempty"`
}

// CrowdDataRequest asks the remote side for a snapshot of the given locations
type CrowdDataRequest struct {
	LocationIDs []string `json:"location_ids"`
	Subscribe   bool     `json:"subscribe"`
}

// AnalyticsResponse is the union of the analytics endpoint shapes
// (camera, IoT, heatmap, seating, AI detection). Any part may be missing.
type AnalyticsResponse struct {
	Success        bool                `json:"success"`
	LocationID     string              `json:"location_id,omitempty"`
	Summary        *AnalyticsSummary   `json:"summary,omitempty"`
	Stats          *AnalyticsStats     `json:"stats,omitempty"`
	HistoricalData []AnalyticsSnapshot `json:"historicalData,omitempty"`
}

// AnalyticsSummary is returned by camera and IoT endpoints
type AnalyticsSummary struct {
	CurrentCount int        `json:"currentCount"`
	PeakCount    int        `json:"peakCount"`
	AverageCount float64    `json:"averageCount"`
	CrowdLevel   string     `json:"crowdLevel"`
	Trend        CrowdTrend `json:"trend"`
}

// AnalyticsStats is returned by heatmap, seating and detection endpoints
type AnalyticsStats struct {
	TotalPeople    int     `json:"totalPeople"`
	OccupiedSeats  int     `json:"occupiedSeats"`
	TotalSeats     int     `json:"totalSeats"`
	OccupancyRate  float64 `json:"occupancyRate"`
	DetectionCount int     `json:"detectionCount"`
}

// AnalyticsSnapshot is one historical sample
type AnalyticsSnapshot struct {
	Timestamp time.Time `json:"timestamp"`
	Count     int       `json:"count"`
}
