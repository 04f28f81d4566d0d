package service

import (
	"testing"
	"time"

	"focusflow-api/modules/session/entity"

	"github.com/google/uuid"
)

func sessionWith(plannedMin, actualMin, distractions int) *entity.FocusSession {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ended := start.Add(time.Duration(actualMin) * time.Minute)
	return &entity.FocusSession{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		WindowStart:      start,
		WindowEnd:        start.Add(time.Duration(plannedMin) * time.Minute),
		Status:           entity.SessionStatusCompleted,
		DistractionCount: distractions,
		StartedAt:        start,
		EndedAt:          &ended,
	}
}

func TestComputeSummary(t *testing.T) {
	tests := []struct {
		name         string
		planned      int
		actual       int
		distractions int
		wantScore    int
		wantLabel    string
	}{
		{"full coverage no distractions", 90, 90, 0, 100, LabelDeep},
		{"full coverage one distraction", 90, 90, 1, 92, LabelDeep},
		{"overrun does not add score", 60, 120, 0, 100, LabelDeep},
		{"half coverage", 90, 45, 0, 50, LabelSteady},
		{"distractions drag a deep score down", 90, 90, 4, 68, LabelSteady},
		{"short fragmented session", 90, 20, 3, 0, LabelFragmented},
		{"score never negative", 60, 10, 10, 0, LabelFragmented},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := ComputeSummary(sessionWith(tt.planned, tt.actual, tt.distractions))

			if summary.FocusScore != tt.wantScore {
				t.Errorf("score = %d, want %d", summary.FocusScore, tt.wantScore)
			}
			if summary.Label != tt.wantLabel {
				t.Errorf("label = %s, want %s", summary.Label, tt.wantLabel)
			}
			if summary.NextStepHint == "" {
				t.Error("expected a next step hint")
			}
		})
	}
}

func TestComputeSummaryDeterministic(t *testing.T) {
	session := sessionWith(90, 75, 2)

	first := ComputeSummary(session)
	second := ComputeSummary(session)

	if *first != *second {
		t.Errorf("summary not deterministic:\nfirst: %+v\nsecond: %+v", first, second)
	}
}
