package dto

import (
	"time"

	scheduledto "focusflow-api/modules/schedule/dto"
)

// ===================== Request DTOs =====================

// AddFeedRequest registers an ICS subscription URL.
type AddFeedRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	URL  string `json:"url" validate:"required,url"`
}

// SuggestFromFeedsRequest asks the planner to run over the user's
// subscribed feeds instead of client-supplied events.
type SuggestFromFeedsRequest struct {
	Day             string                           `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02"`
	UserPreferences *scheduledto.SchedulePreferences `json:"user_preferences,omitempty"`
}

// ===================== Response DTOs =====================

// FeedResponse is a stored feed without internal bookkeeping.
type FeedResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	URL           string     `json:"url"`
	IsActive      bool       `json:"is_active"`
	LastFetchedAt *time.Time `json:"last_fetched_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DayEventsResponse lists the events found across all active feeds for one
// day. Feeds that failed to fetch are reported, not fatal.
type DayEventsResponse struct {
	Day         string                  `json:"day"`
	Events      []scheduledto.RawEvent  `json:"events"`
	FailedFeeds []string                `json:"failed_feeds,omitempty"`
}
