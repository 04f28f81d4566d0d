package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarFeed is a read-only ICS subscription owned by a user. Feeds are
// fetched on demand when the user asks for a day's events or a suggestion.
type CalendarFeed struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	UserID        uuid.UUID  `db:"user_id" json:"user_id"`
	Name          string     `db:"name" json:"name"`
	URL           string     `db:"url" json:"url"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	LastFetchedAt *time.Time `db:"last_fetched_at" json:"last_fetched_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}
