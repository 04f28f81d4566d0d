package dto

import "time"

// ===================== Request DTOs =====================

// RawEvent is a calendar event as supplied by any provider. Timestamps are
// RFC3339 date-times, or 10-character YYYY-MM-DD strings for all-day
// entries. Every field may be missing or malformed; the planner sanitizes.
type RawEvent struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
}

// SchedulePreferences is a sparse preference object. Zero values fall back
// to the configured defaults inside the planner.
type SchedulePreferences struct {
	PreferredTime   string `json:"preferred_time,omitempty"`   // morning|afternoon|evening
	MinimumDuration int    `json:"minimum_duration,omitempty"` // minutes
	BufferTime      int    `json:"buffer_time,omitempty"`      // minutes
}

// SuggestRequest is the wire payload for POST /schedule/suggest.
// calendar_events may be null; absent preferences mean all defaults.
type SuggestRequest struct {
	CalendarEvents  []RawEvent           `json:"calendar_events"`
	UserPreferences *SchedulePreferences `json:"user_preferences,omitempty"`
	Day             string               `json:"day,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

// ===================== Response DTOs =====================

// FocusWindowDTO is a suggested focus slot.
type FocusWindowDTO struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Score           int       `json:"score"`
	Reasoning       string    `json:"reasoning"`
}

// SuggestResponse carries the planner outcome. Window is null when no slot
// qualifies; Message always explains the result.
type SuggestResponse struct {
	Window  *FocusWindowDTO `json:"window"`
	Message string          `json:"message"`
}

// SuggestionHistoryItem is one stored suggestion for GET /schedule/history.
type SuggestionHistoryItem struct {
	ID              string     `json:"id"`
	Day             string     `json:"day"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
	DurationMinutes int        `json:"duration_minutes,omitempty"`
	Score           int        `json:"score,omitempty"`
	Message         string     `json:"message"`
	CreatedAt       time.Time  `json:"created_at"`
}
