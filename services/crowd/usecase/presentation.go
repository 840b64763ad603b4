package usecase

import "github.com/piresc/crowdpulse/internal/pkg/models"

// LevelColor returns the display color of a level
func LevelColor(level models.CrowdLevel) string {
	switch level {
	case models.CrowdLow:
		return "#22c55e"
	case models.CrowdMedium:
		return "#eab308"
	case models.CrowdHigh:
		return "#f97316"
	case models.CrowdVeryHigh:
		return "#ef4444"
	}
	return "#6b7280"
}

// LevelText returns the display label of a level
func LevelText(level models.CrowdLevel) string {
	switch level {
	case models.CrowdLow:
		return "Not busy"
	case models.CrowdMedium:
		return "Moderately busy"
	case models.CrowdHigh:
		return "Busy"
	case models.CrowdVeryHigh:
		return "Very busy"
	}
	return "Unknown"
}

// LevelIcon returns the display icon of a level
func LevelIcon(level models.CrowdLevel) string {
	switch level {
	case models.CrowdLow:
		return "🟢"
	case models.CrowdMedium:
		return "🟡"
	case models.CrowdHigh:
		return "🟠"
	case models.CrowdVeryHigh:
		return "🔴"
	}
	return "⚪"
}

// TrendIcon returns the display icon of a trend
func TrendIcon(trend models.CrowdTrend) string {
	switch trend {
	case models.TrendIncreasing:
		return "↗"
	case models.TrendDecreasing:
		return "↘"
	}
	return "→"
}
