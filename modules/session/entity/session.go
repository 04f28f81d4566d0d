package entity

import (
	"time"

	"github.com/google/uuid"
)

// SessionStatus represents the lifecycle state of a focus session
type SessionStatus string

const (
	SessionStatusInProgress SessionStatus = "in_progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusAbandoned  SessionStatus = "abandoned"
)

// FocusSession is one tracked focus block (focus_sessions table)
type FocusSession struct {
	ID               uuid.UUID     `db:"id" json:"id"`
	UserID           uuid.UUID     `db:"user_id" json:"user_id"`
	Title            *string       `db:"title" json:"title,omitempty"`
	WindowStart      time.Time     `db:"window_start" json:"window_start"`
	WindowEnd        time.Time     `db:"window_end" json:"window_end"`
	Status           SessionStatus `db:"status" json:"status"`
	DistractionCount int           `db:"distraction_count" json:"distraction_count"`
	StartedAt        time.Time     `db:"started_at" json:"started_at"`
	EndedAt          *time.Time    `db:"ended_at" json:"ended_at,omitempty"`
	CreatedAt        time.Time     `db:"created_at" json:"created_at"`
}

// PlannedMinutes is the length of the window the session was started for.
func (s *FocusSession) PlannedMinutes() int {
	return int(s.WindowEnd.Sub(s.WindowStart).Minutes())
}

// ActualMinutes is the time between start and end; zero while in progress.
func (s *FocusSession) ActualMinutes() int {
	if s.EndedAt == nil {
		return 0
	}
	return int(s.EndedAt.Sub(s.StartedAt).Minutes())
}
