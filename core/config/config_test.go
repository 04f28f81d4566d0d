package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("expected default port 7070, got %d", cfg.Server.Port)
	}
	if cfg.Planner.WorkdayStartHour != 9 || cfg.Planner.WorkdayEndHour != 17 {
		t.Errorf("expected 9-17 workday, got %d-%d", cfg.Planner.WorkdayStartHour, cfg.Planner.WorkdayEndHour)
	}
	if cfg.Planner.MinimumDurationMinutes != 75 {
		t.Errorf("expected default minimum duration 75, got %d", cfg.Planner.MinimumDurationMinutes)
	}
	if cfg.Planner.BufferTimeMinutes != 15 {
		t.Errorf("expected default buffer 15, got %d", cfg.Planner.BufferTimeMinutes)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("PLANNER_WORKDAY_START_HOUR", "8")
	t.Setenv("PLANNER_WORKDAY_END_HOUR", "18")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Planner.WorkdayStartHour != 8 || cfg.Planner.WorkdayEndHour != 18 {
		t.Errorf("env override not applied, got %d-%d", cfg.Planner.WorkdayStartHour, cfg.Planner.WorkdayEndHour)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}

	if _, err := GetSafe(); err != nil {
		t.Errorf("GetSafe should succeed after Load: %v", err)
	}
}
