package service

import (
	"focusflow-api/core/constants"
	"focusflow-api/core/utils"
	"focusflow-api/modules/ritual/dto"

	"github.com/gosimple/slug"
)

// stepTemplate is one building block of a ritual. Weight distributes the
// available prep time across the chosen steps.
type stepTemplate struct {
	title  string
	weight int
}

// Templates per density bucket. A clear day affords a longer wind-up; a
// busy day gets the bare minimum to start fast.
var ritualTemplates = map[string][]stepTemplate{
	dto.DensityClear: {
		{"Review today's goals", 2},
		{"Tidy your workspace", 2},
		{"Silence notifications", 1},
		{"Write down the single task for this block", 2},
		{"Two minutes of slow breathing", 1},
	},
	dto.DensityModerate: {
		{"Silence notifications", 1},
		{"Write down the single task for this block", 2},
		{"Close unrelated tabs and apps", 1},
	},
	dto.DensityBusy: {
		{"Silence notifications", 1},
		{"Write down the single task for this block", 1},
	},
}

// ritualShare is the fraction of the focus block's minimum duration spent
// on the ritual, bounded so short blocks still get a ritual and long ones
// don't over-prepare.
const (
	ritualSharePct    = 10
	ritualMinMinutes  = 3
	ritualMaxMinutes  = 15
	ritualStepMinimum = 1
)

// RitualService generates pre-focus rituals. Pure heuristic, no storage.
type RitualService struct{}

// RitualServiceInterface defines the service contract
type RitualServiceInterface interface {
	Generate(req *dto.GenerateRitualRequest) *dto.RitualResponse
}

func NewRitualService() RitualServiceInterface {
	return &RitualService{}
}

// Generate builds the ritual for the given density. Unknown density values
// fall back to moderate; a missing minimum duration uses the planner
// default. Deterministic apart from the response ID.
func (s *RitualService) Generate(req *dto.GenerateRitualRequest) *dto.RitualResponse {
	density := req.CalendarDensity
	if _, ok := ritualTemplates[density]; !ok {
		density = dto.DensityModerate
	}

	minimumDuration := req.MinimumDuration
	if minimumDuration <= 0 {
		minimumDuration = constants.DefaultMinimumDurationMin
	}

	budget := minimumDuration * ritualSharePct / 100
	if budget < ritualMinMinutes {
		budget = ritualMinMinutes
	}
	if budget > ritualMaxMinutes {
		budget = ritualMaxMinutes
	}

	template := ritualTemplates[density]
	totalWeight := 0
	for _, st := range template {
		totalWeight += st.weight
	}

	steps := make([]dto.RitualStep, 0, len(template))
	total := 0
	for i, st := range template {
		minutes := budget * st.weight / totalWeight
		if minutes < ritualStepMinimum {
			minutes = ritualStepMinimum
		}
		total += minutes

		steps = append(steps, dto.RitualStep{
			Key:             slug.Make(st.title),
			Order:           i + 1,
			Title:           st.title,
			DurationMinutes: minutes,
		})
	}

	return &dto.RitualResponse{
		ID:              utils.GenerateID(),
		CalendarDensity: density,
		TotalMinutes:    total,
		Steps:           steps,
	}
}
