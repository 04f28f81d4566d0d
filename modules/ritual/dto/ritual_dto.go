package dto

// CalendarDensity buckets
const (
	DensityClear    = "clear"
	DensityModerate = "moderate"
	DensityBusy     = "busy"
)

// GenerateRitualRequest asks for a pre-focus ritual tuned to how busy the
// day looks.
type GenerateRitualRequest struct {
	CalendarDensity string `json:"calendar_density,omitempty"` // clear|moderate|busy
	PreferredTime   string `json:"preferred_time,omitempty"`   // morning|afternoon|evening
	MinimumDuration int    `json:"minimum_duration,omitempty"` // minutes
}

// RitualStep is one ordered step of the generated ritual.
type RitualStep struct {
	Key             string `json:"key"` // stable slug of the template step
	Order           int    `json:"order"`
	Title           string `json:"title"`
	DurationMinutes int    `json:"duration_minutes"`
}

// RitualResponse is the generated ritual.
type RitualResponse struct {
	ID              string       `json:"id"`
	CalendarDensity string       `json:"calendar_density"`
	TotalMinutes    int          `json:"total_minutes"`
	Steps           []RitualStep `json:"steps"`
}
