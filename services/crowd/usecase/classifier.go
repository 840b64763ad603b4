package usecase

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/piresc/crowdpulse/internal/pkg/models"
)

type levelRange struct {
	min, max int // [min, max)
}

var (
	heuristicCounts = map[models.CrowdLevel]levelRange{
		models.CrowdLow:      {0, 10},
		models.CrowdMedium:   {10, 30},
		models.CrowdHigh:     {30, 60},
		models.CrowdVeryHigh: {60, 100},
	}
	heuristicWaits = map[models.CrowdLevel]levelRange{
		models.CrowdLow:      {0, 2},
		models.CrowdMedium:   {2, 5},
		models.CrowdHigh:     {5, 15},
		models.CrowdVeryHigh: {15, 30},
	}
)

// Classifier turns a location candidate into a CrowdRecord. Live candidates
// pass their sensor count through untouched; the rest get a heuristic
// estimate that is always labeled as such.
type Classifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewClassifier creates a classifier. A nil rng seeds one from the clock.
func NewClassifier(rng *rand.Rand) *Classifier {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Classifier{rng: rng}
}

// Classify produces the record for one candidate at the given local time.
// previous is the cached record of the same location, if any.
func (c *Classifier) Classify(candidate models.LocationCandidate, at time.Time, previous *models.CrowdRecord) models.CrowdRecord {
	if candidate.IsLive {
		return classifyLive(candidate, previous)
	}
	return c.classifyHeuristic(candidate, at)
}

func classifyLive(candidate models.LocationCandidate, previous *models.CrowdRecord) models.CrowdRecord {
	trend := candidate.SensorTrend
	if trend == "" {
		trend = trendFromCounts(previous, candidate.SensorCount)
	}

	return models.CrowdRecord{
		LocationID:      candidate.ID,
		Level:           LevelFromBucket(candidate.SensorBucket, candidate.SensorCount),
		RawCount:        candidate.SensorCount,
		Trend:           trend,
		WaitTimeMinutes: LiveWaitTime(candidate.SensorCount),
		Coordinates:     candidate.Coordinates,
		Source:          models.SourceSensor,
	}
}

func (c *Classifier) classifyHeuristic(candidate models.LocationCandidate, at time.Time) models.CrowdRecord {
	level := HeuristicLevel(candidate.Category, at)

	c.mu.Lock()
	count := c.within(heuristicCounts[level])
	wait := c.within(heuristicWaits[level])
	trend := c.heuristicTrend(at.Hour())
	c.mu.Unlock()

	return models.CrowdRecord{
		LocationID:      candidate.ID,
		Level:           level,
		RawCount:        count,
		Trend:           trend,
		WaitTimeMinutes: wait,
		Coordinates:     candidate.Coordinates,
		Source:          models.SourceHeuristic,
		IsEstimate:      true,
	}
}

func (c *Classifier) within(r levelRange) int {
	return r.min + c.rng.Intn(r.max-r.min)
}

// heuristicTrend biases the trend by time of day
func (c *Classifier) heuristicTrend(hour int) models.CrowdTrend {
	roll := c.rng.Float64()

	switch {
	case hour >= 6 && hour < 11:
		if roll < 0.7 {
			return models.TrendIncreasing
		}
		return models.TrendStable
	case hour >= 17 && hour < 21:
		if roll < 0.6 {
			return models.TrendIncreasing
		}
		return models.TrendStable
	case hour >= 22 || hour < 6:
		if roll < 0.7 {
			return models.TrendDecreasing
		}
		return models.TrendStable
	}

	switch {
	case roll < 0.5:
		return models.TrendStable
	case roll < 0.75:
		return models.TrendIncreasing
	default:
		return models.TrendDecreasing
	}
}

// LevelFromBucket maps an external qualitative bucket onto the four-level
// scale. Unknown buckets fall back to thresholds on the raw count.
func LevelFromBucket(bucket string, count int) models.CrowdLevel {
	switch strings.ToLower(strings.TrimSpace(bucket)) {
	case "empty", "low", "quiet":
		return models.CrowdLow
	case "moderate", "medium":
		return models.CrowdMedium
	case "high", "busy":
		return models.CrowdHigh
	case "very_high", "very high", "very_busy", "crowded", "full":
		return models.CrowdVeryHigh
	}
	return LevelFromCount(count)
}

// LevelFromCount classifies a raw people count
func LevelFromCount(count int) models.CrowdLevel {
	switch {
	case count > 20:
		return models.CrowdVeryHigh
	case count > 10:
		return models.CrowdHigh
	case count > 5:
		return models.CrowdMedium
	default:
		return models.CrowdLow
	}
}

// LiveWaitTime derives the wait in minutes from a sensor count
func LiveWaitTime(count int) int {
	switch {
	case count > 20:
		return 15
	case count > 10:
		return 8
	case count > 5:
		return 3
	default:
		return 0
	}
}

// HeuristicLevel classifies a venue category at a local time
func HeuristicLevel(category string, at time.Time) models.CrowdLevel {
	hour := at.Hour()
	weekend := at.Weekday() == time.Saturday || at.Weekday() == time.Sunday

	switch categoryKind(category) {
	case kindCafe:
		switch {
		case inHours(hour, 7, 10), inHours(hour, 12, 14), inHours(hour, 17, 19):
			return models.CrowdHigh
		case inHours(hour, 10, 17):
			return models.CrowdMedium
		}
		return models.CrowdLow
	case kindRestaurant:
		switch {
		case inHours(hour, 11, 14), inHours(hour, 19, 22):
			return models.CrowdVeryHigh
		case inHours(hour, 17, 19):
			return models.CrowdMedium
		}
		return models.CrowdLow
	case kindBank:
		if weekend {
			return models.CrowdLow
		}
		if inHours(hour, 12, 14) {
			return models.CrowdHigh
		}
		return models.CrowdMedium
	case kindMarket:
		if weekend || inHours(hour, 17, 20) {
			return models.CrowdHigh
		}
		return models.CrowdMedium
	}

	if inHours(hour, 12, 14) || inHours(hour, 18, 21) {
		return models.CrowdMedium
	}
	return models.CrowdLow
}

type kind int

const (
	kindOther kind = iota
	kindCafe
	kindRestaurant
	kindBank
	kindMarket
)

func categoryKind(category string) kind {
	c := strings.ToLower(category)
	switch {
	case strings.Contains(c, "cafe"), strings.Contains(c, "café"), strings.Contains(c, "coffee"):
		return kindCafe
	case strings.Contains(c, "restaurant"):
		return kindRestaurant
	case strings.Contains(c, "bank"):
		return kindBank
	case strings.Contains(c, "market"), strings.Contains(c, "grocery"):
		return kindMarket
	}
	return kindOther
}

// inHours reports whether hour lies in [from, to)
func inHours(hour, from, to int) bool {
	return hour >= from && hour < to
}

func trendFromCounts(previous *models.CrowdRecord, count int) models.CrowdTrend {
	if previous == nil {
		return models.TrendStable
	}
	switch {
	case count > previous.RawCount:
		return models.TrendIncreasing
	case count < previous.RawCount:
		return models.TrendDecreasing
	}
	return models.TrendStable
}
