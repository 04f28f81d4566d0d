package entity

import (
	"time"

	"github.com/google/uuid"
)

// FocusSuggestion is one stored planner outcome. No-window results are
// stored too, with null times and the explanatory message.
type FocusSuggestion struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          *uuid.UUID `db:"user_id" json:"user_id,omitempty"`
	Day             time.Time  `db:"day" json:"day"`
	StartTime       *time.Time `db:"start_time" json:"start_time,omitempty"`
	EndTime         *time.Time `db:"end_time" json:"end_time,omitempty"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	Score           int        `db:"score" json:"score"`
	Message         string     `db:"message" json:"message"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}
