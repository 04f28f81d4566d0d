package service

import (
	"testing"

	"focusflow-api/modules/ritual/dto"
)

func TestGenerateDensityFallback(t *testing.T) {
	svc := NewRitualService()

	for _, density := range []string{"", "frantic", "CLEAR"} {
		resp := svc.Generate(&dto.GenerateRitualRequest{CalendarDensity: density})
		if resp.CalendarDensity != dto.DensityModerate {
			t.Errorf("density %q: expected fallback to moderate, got %s", density, resp.CalendarDensity)
		}
	}
}

func TestGenerateStepsPerDensity(t *testing.T) {
	svc := NewRitualService()

	clear := svc.Generate(&dto.GenerateRitualRequest{CalendarDensity: dto.DensityClear})
	busy := svc.Generate(&dto.GenerateRitualRequest{CalendarDensity: dto.DensityBusy})

	if len(clear.Steps) <= len(busy.Steps) {
		t.Errorf("a clear day should afford more ritual steps: clear=%d busy=%d",
			len(clear.Steps), len(busy.Steps))
	}

	for _, step := range clear.Steps {
		if step.Key == "" {
			t.Errorf("step %q missing slug key", step.Title)
		}
		if step.DurationMinutes < 1 {
			t.Errorf("step %q has zero duration", step.Title)
		}
	}
}

func TestGenerateDurationScaling(t *testing.T) {
	svc := NewRitualService()

	short := svc.Generate(&dto.GenerateRitualRequest{CalendarDensity: dto.DensityClear, MinimumDuration: 30})
	long := svc.Generate(&dto.GenerateRitualRequest{CalendarDensity: dto.DensityClear, MinimumDuration: 120})

	if long.TotalMinutes < short.TotalMinutes {
		t.Errorf("longer focus blocks should not get shorter rituals: short=%d long=%d",
			short.TotalMinutes, long.TotalMinutes)
	}
}

func TestGenerateDeterministicSteps(t *testing.T) {
	svc := NewRitualService()
	req := &dto.GenerateRitualRequest{CalendarDensity: dto.DensityBusy, MinimumDuration: 90}

	first := svc.Generate(req)
	second := svc.Generate(req)

	if len(first.Steps) != len(second.Steps) {
		t.Fatalf("step counts differ: %d vs %d", len(first.Steps), len(second.Steps))
	}
	for i := range first.Steps {
		if first.Steps[i] != second.Steps[i] {
			t.Errorf("step %d differs: %+v vs %+v", i, first.Steps[i], second.Steps[i])
		}
	}
}
