package service

import (
	"fmt"

	"focusflow-api/modules/session/dto"
	"focusflow-api/modules/session/entity"
)

// summary labels
const (
	LabelDeep       = "deep"
	LabelSteady     = "steady"
	LabelFragmented = "fragmented"
)

const distractionPenalty = 8 // score points per distraction

// ComputeSummary derives the heuristic read-out for a finished session.
// Deterministic: the same session always yields the same summary.
//
// Focus score = planned-window coverage (0-100) minus a per-distraction
// penalty, clamped to 0. Coverage above 100% (running long) does not add
// score.
func ComputeSummary(session *entity.FocusSession) *dto.SessionSummary {
	planned := session.PlannedMinutes()
	actual := session.ActualMinutes()

	coverage := 0
	if planned > 0 {
		coverage = actual * 100 / planned
		if coverage > 100 {
			coverage = 100
		}
	}

	score := coverage - session.DistractionCount*distractionPenalty
	if score < 0 {
		score = 0
	}

	label := LabelFragmented
	switch {
	case score >= 80 && session.DistractionCount <= 1:
		label = LabelDeep
	case score >= 50:
		label = LabelSteady
	}

	return &dto.SessionSummary{
		SessionID:    session.ID.String(),
		FocusScore:   score,
		Label:        label,
		CoveragePct:  coverage,
		Distractions: session.DistractionCount,
		PlannedMin:   planned,
		ActualMin:    actual,
		NextStepHint: hintFor(label, session.DistractionCount),
	}
}

func hintFor(label string, distractions int) string {
	switch label {
	case LabelDeep:
		return "Great session. Schedule your next block at the same time tomorrow."
	case LabelSteady:
		if distractions > 2 {
			return fmt.Sprintf("You logged %d distractions; try silencing notifications next time.", distractions)
		}
		return "Solid progress. A slightly longer window could deepen your focus."
	default:
		return "Consider a shorter window with a clear single task to rebuild momentum."
	}
}
