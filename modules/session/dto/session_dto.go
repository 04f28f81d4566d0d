package dto

import (
	"time"

	"focusflow-api/modules/session/entity"
)

// ===================== Request DTOs =====================

// StartSessionRequest starts a focus session, typically from a suggested
// window.
type StartSessionRequest struct {
	Title       string `json:"title"`
	WindowStart string `json:"window_start" validate:"required"` // RFC3339
	WindowEnd   string `json:"window_end" validate:"required"`   // RFC3339
}

// CompleteSessionRequest finishes a session with its distraction tally.
type CompleteSessionRequest struct {
	DistractionCount int `json:"distraction_count" validate:"min=0"`
}

// ===================== Response DTOs =====================

// SessionResponse for session details
type SessionResponse struct {
	ID               string     `json:"id"`
	Title            string     `json:"title,omitempty"`
	WindowStart      time.Time  `json:"window_start"`
	WindowEnd        time.Time  `json:"window_end"`
	Status           string     `json:"status"`
	DistractionCount int        `json:"distraction_count"`
	StartedAt        time.Time  `json:"started_at"`
	EndedAt          *time.Time `json:"ended_at,omitempty"`
}

// SessionSummary is the heuristic read-out for a completed session.
type SessionSummary struct {
	SessionID    string `json:"session_id"`
	FocusScore   int    `json:"focus_score"` // 0-100
	Label        string `json:"label"`       // deep | steady | fragmented
	CoveragePct  int    `json:"coverage_pct"`
	Distractions int    `json:"distractions"`
	PlannedMin   int    `json:"planned_minutes"`
	ActualMin    int    `json:"actual_minutes"`
	NextStepHint string `json:"next_step_hint"`
}

// ToSessionResponse maps entity to DTO
func ToSessionResponse(s *entity.FocusSession) *SessionResponse {
	resp := &SessionResponse{
		ID:               s.ID.String(),
		WindowStart:      s.WindowStart,
		WindowEnd:        s.WindowEnd,
		Status:           string(s.Status),
		DistractionCount: s.DistractionCount,
		StartedAt:        s.StartedAt,
		EndedAt:          s.EndedAt,
	}
	if s.Title != nil {
		resp.Title = *s.Title
	}
	return resp
}
