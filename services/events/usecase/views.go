package usecase

import (
	"sort"
	"strings"

	"github.com/piresc/crowdpulse/internal/pkg/models"
	"github.com/piresc/crowdpulse/internal/utils"
)

// FilterEvents narrows the cache in a fixed order: category, status,
// start-time bounds, radius, price, crowd level. Events without pricing
// pass the price stage. The result is ascending by start time.
func (uc *EventsUC) FilterEvents(filters models.EventFilters) []models.LiveEvent {
	stages := []func(models.LiveEvent) bool{
		func(e models.LiveEvent) bool {
			return len(filters.Categories) == 0 || containsFold(filters.Categories, e.Category)
		},
		func(e models.LiveEvent) bool {
			return len(filters.Statuses) == 0 || containsStatus(filters.Statuses, e.Status)
		},
		func(e models.LiveEvent) bool {
			if !filters.From.IsZero() && e.StartTime.Before(filters.From) {
				return false
			}
			return filters.To.IsZero() || !e.StartTime.After(filters.To)
		},
		func(e models.LiveEvent) bool {
			if filters.Origin == nil || filters.RadiusKm <= 0 {
				return true
			}
			return utils.WithinRadius(*filters.Origin, e.Coordinates, filters.RadiusKm)
		},
		func(e models.LiveEvent) bool {
			if e.Pricing == nil {
				return true
			}
			if filters.MinPrice != nil && e.Pricing.Max < *filters.MinPrice {
				return false
			}
			return filters.MaxPrice == nil || e.Pricing.Min <= *filters.MaxPrice
		},
		func(e models.LiveEvent) bool {
			return len(filters.CrowdLevels) == 0 || containsLevel(filters.CrowdLevels, e.CrowdLevel)
		},
	}

	list := uc.snapshot()
	for _, keep := range stages {
		list = filter(list, keep)
	}
	sortByStart(list)
	return list
}

// GetUpcomingEvents returns upcoming events that have not started, soonest
// first, capped at limit
func (uc *EventsUC) GetUpcomingEvents(limit int) []models.LiveEvent {
	now := uc.now()
	list := filter(uc.snapshot(), func(e models.LiveEvent) bool {
		return e.Status == models.EventUpcoming && e.StartTime.After(now)
	})
	sortByStart(list)
	return capped(list, limit)
}

// GetLiveEvents returns live events, highest attendance first
func (uc *EventsUC) GetLiveEvents() []models.LiveEvent {
	list := filter(uc.snapshot(), func(e models.LiveEvent) bool { return e.Status == models.EventLive })
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Attendance == list[j].Attendance {
			return list[i].ID < list[j].ID
		}
		return list[i].Attendance > list[j].Attendance
	})
	return list
}

// GetPopularEvents ranks events that have not ended or been cancelled by
// checkins plus shares, capped at limit
func (uc *EventsUC) GetPopularEvents(limit int) []models.LiveEvent {
	list := filter(uc.snapshot(), func(e models.LiveEvent) bool {
		return e.Status != models.EventEnded && e.Status != models.EventCancelled
	})
	score := func(e models.LiveEvent) int { return e.Social.Checkins + e.Social.Shares }
	sort.SliceStable(list, func(i, j int) bool {
		if score(list[i]) == score(list[j]) {
			return list[i].ID < list[j].ID
		}
		return score(list[i]) > score(list[j])
	})
	return capped(list, limit)
}

// SearchEvents matches query case-insensitively against title, description,
// venue, organizer and tags
func (uc *EventsUC) SearchEvents(query string) []models.LiveEvent {
	if query == "" {
		return nil
	}
	list := filter(uc.snapshot(), func(e models.LiveEvent) bool {
		for _, field := range []string{e.Title, e.Description, e.Venue, e.Organizer} {
			if utils.ContainsFold(field, query) {
				return true
			}
		}
		for _, tag := range e.Tags {
			if utils.ContainsFold(tag, query) {
				return true
			}
		}
		return false
	})
	sortByStart(list)
	return list
}

func filter(list []models.LiveEvent, keep func(models.LiveEvent) bool) []models.LiveEvent {
	out := list[:0]
	for _, e := range list {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func capped(list []models.LiveEvent, limit int) []models.LiveEvent {
	if limit <= 0 {
		limit = defaultViewLimit
	}
	if len(list) > limit {
		return list[:limit]
	}
	return list
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(item, v) {
			return true
		}
	}
	return false
}

func containsStatus(list []models.EventStatus, v models.EventStatus) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func containsLevel(list []models.CrowdLevel, v models.CrowdLevel) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
