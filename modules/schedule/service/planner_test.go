package service

import (
	"reflect"
	"testing"
	"time"

	"focusflow-api/modules/schedule/dto"
)

var testDay = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

func dayTime(hour, minute int) string {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC).Format(time.RFC3339)
}

func TestSuggestFreeDay(t *testing.T) {
	p := NewPlanner()

	for name, events := range map[string][]dto.RawEvent{
		"nil":   nil,
		"empty": {},
	} {
		result := p.SuggestFocusWindow(events, nil, testDay)
		if result.Window == nil {
			t.Fatalf("%s events: expected a window on a free day, got message %q", name, result.Message)
		}
		if result.Window.DurationMinutes < 75 {
			t.Errorf("%s events: window shorter than default minimum: %d", name, result.Window.DurationMinutes)
		}
		if result.Message == "" {
			t.Errorf("%s events: expected a non-empty message", name)
		}
	}
}

func TestSuggestMalformedEventsIgnored(t *testing.T) {
	p := NewPlanner()

	base := []dto.RawEvent{
		{ID: "a", StartTime: dayTime(10, 0), EndTime: dayTime(11, 0)},
	}
	withJunk := append([]dto.RawEvent{
		{ID: "no-end", StartTime: dayTime(13, 0)},
		{ID: "no-start", EndTime: dayTime(14, 0)},
		{ID: "garbage", StartTime: "not-a-date", EndTime: "also-not"},
		{ID: "inverted", StartTime: dayTime(15, 0), EndTime: dayTime(14, 0)},
	}, base...)

	clean := p.SuggestFocusWindow(base, nil, testDay)
	dirty := p.SuggestFocusWindow(withJunk, nil, testDay)

	if !reflect.DeepEqual(clean, dirty) {
		t.Errorf("malformed events changed the result:\nclean: %+v\ndirty: %+v", clean, dirty)
	}
}

func TestSuggestOverlappingEventsMerge(t *testing.T) {
	p := NewPlanner()

	events := []dto.RawEvent{
		{StartTime: dayTime(9, 0), EndTime: dayTime(10, 0)},
		{StartTime: dayTime(9, 30), EndTime: dayTime(10, 30)},
	}
	prefs := &dto.SchedulePreferences{MinimumDuration: 90}

	result := p.SuggestFocusWindow(events, prefs, testDay)
	if result.Window == nil {
		t.Fatalf("expected a window after the merged block, got %q", result.Message)
	}

	blockEnd := time.Date(2026, 3, 10, 10, 30, 0, 0, time.UTC)
	if result.Window.StartTime.Before(blockEnd) {
		t.Errorf("window starts inside the merged busy block: %s", result.Window.StartTime)
	}
}

func TestSuggestAllDayEventBlocksWorkday(t *testing.T) {
	p := NewPlanner()

	events := []dto.RawEvent{
		{Title: "offsite", StartTime: "2026-03-10", EndTime: "2026-03-11"},
	}

	result := p.SuggestFocusWindow(events, nil, testDay)
	if result.Window != nil {
		t.Fatalf("all-day event should block the whole workday, got window %+v", result.Window)
	}
	if result.Message == "" {
		t.Error("expected an explanatory message for the blocked day")
	}
}

func TestSuggestIdempotent(t *testing.T) {
	p := NewPlanner()

	events := []dto.RawEvent{
		{StartTime: dayTime(9, 0), EndTime: dayTime(10, 15)},
		{StartTime: dayTime(13, 0), EndTime: dayTime(14, 0)},
	}
	prefs := &dto.SchedulePreferences{PreferredTime: "afternoon", MinimumDuration: 60}

	first := p.SuggestFocusWindow(events, prefs, testDay)
	second := p.SuggestFocusWindow(events, prefs, testDay)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("planner is not idempotent:\nfirst: %+v\nsecond: %+v", first, second)
	}
}

func TestSuggestBusyDayShortGaps(t *testing.T) {
	p := NewPlanner()

	// Gaps of 30 minutes at 12:00 and 17:00; nothing fits 90 minutes.
	events := []dto.RawEvent{
		{StartTime: dayTime(8, 0), EndTime: dayTime(12, 0)},
		{StartTime: dayTime(12, 30), EndTime: dayTime(17, 0)},
		{StartTime: dayTime(17, 30), EndTime: dayTime(20, 0)},
	}
	prefs := &dto.SchedulePreferences{MinimumDuration: 90}

	result := p.SuggestFocusWindow(events, prefs, testDay)
	if result.Window != nil {
		t.Fatalf("expected no window on a packed day, got %+v", result.Window)
	}
	if result.Message == "" {
		t.Error("no-window result must carry a message")
	}
}

func TestSuggestMorningPreferencePlacement(t *testing.T) {
	p := NewPlanner()

	prefs := &dto.SchedulePreferences{PreferredTime: "morning"}
	result := p.SuggestFocusWindow([]dto.RawEvent{}, prefs, testDay)
	if result.Window == nil {
		t.Fatalf("expected a window, got %q", result.Message)
	}

	hour := result.Window.StartTime.Hour()
	if hour < 6 || hour >= 12 {
		t.Errorf("expected a morning start, got hour %d", hour)
	}
}

func TestSuggestPreferredBucketWins(t *testing.T) {
	p := NewPlanner()

	// One morning gap and one afternoon gap, both long enough.
	events := []dto.RawEvent{
		{StartTime: dayTime(11, 0), EndTime: dayTime(13, 0)},
	}
	prefs := &dto.SchedulePreferences{PreferredTime: "afternoon", MinimumDuration: 60, BufferTime: 15}

	result := p.SuggestFocusWindow(events, prefs, testDay)
	if result.Window == nil {
		t.Fatalf("expected a window, got %q", result.Message)
	}
	if bucket := bucketForHour(result.Window.StartTime.Hour()); bucket != "afternoon" {
		t.Errorf("expected the afternoon gap to win, got start %s (%s)", result.Window.StartTime, bucket)
	}
}

func TestSuggestInvalidPreferencesFallBack(t *testing.T) {
	p := NewPlanner()

	prefs := &dto.SchedulePreferences{
		PreferredTime:   "midnight",
		MinimumDuration: -5,
		BufferTime:      -1,
	}
	resolved := p.resolvePreferences(prefs)

	if resolved.preferredTime != "morning" {
		t.Errorf("invalid preferred_time should default to morning, got %s", resolved.preferredTime)
	}
	if resolved.minimumDuration != 75 {
		t.Errorf("invalid minimum_duration should default to 75, got %d", resolved.minimumDuration)
	}
	if resolved.bufferTime != 15 {
		t.Errorf("invalid buffer_time should default to 15, got %d", resolved.bufferTime)
	}
}

func TestSuggestBufferShrinksGaps(t *testing.T) {
	p := NewPlanner()

	events := []dto.RawEvent{
		{StartTime: dayTime(10, 0), EndTime: dayTime(11, 0)},
	}
	prefs := &dto.SchedulePreferences{MinimumDuration: 30, BufferTime: 30}

	result := p.SuggestFocusWindow(events, prefs, testDay)
	if result.Window == nil {
		t.Fatalf("expected a window, got %q", result.Message)
	}

	// The buffered busy region is 09:30-11:30; the suggestion must stay
	// clear of it, not just of the raw 10:00-11:00 event.
	paddedStart := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	paddedEnd := time.Date(2026, 3, 10, 11, 30, 0, 0, time.UTC)
	if result.Window.StartTime.Before(paddedEnd) && result.Window.EndTime.After(paddedStart) {
		t.Errorf("window %s - %s overlaps the buffered region %s - %s",
			result.Window.StartTime, result.Window.EndTime, paddedStart, paddedEnd)
	}
}

func TestScoreGapLengthPlateau(t *testing.T) {
	p := NewPlanner()
	prefs := resolvedPreferences{preferredTime: "evening", minimumDuration: 60, bufferTime: 0}

	gapAt := func(minutes int) busyInterval {
		start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		return busyInterval{start: start, end: start.Add(time.Duration(minutes) * time.Minute)}
	}

	short := p.scoreGap(gapAt(60), prefs)
	medium := p.scoreGap(gapAt(90), prefs)
	long := p.scoreGap(gapAt(120), prefs)
	huge := p.scoreGap(gapAt(400), prefs)

	if !(short < medium && medium < long) {
		t.Errorf("length score not monotonic: %d, %d, %d", short, medium, long)
	}
	if long != huge {
		t.Errorf("length score should plateau at 2x minimum: %d vs %d", long, huge)
	}
	for _, s := range []int{short, medium, long, huge} {
		if s < 0 || s > 100 {
			t.Errorf("score out of range: %d", s)
		}
	}
}

func TestMergeOverlappingExact(t *testing.T) {
	p := NewPlanner()

	at := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
	}

	merged := p.mergeOverlapping([]busyInterval{
		{start: at(9, 0), end: at(10, 0)},
		{start: at(9, 30), end: at(10, 30)},
		{start: at(11, 0), end: at(11, 30)},
		{start: at(11, 30), end: at(12, 0)}, // touching intervals merge too
	})

	if len(merged) != 2 {
		t.Fatalf("expected 2 merged blocks, got %d", len(merged))
	}
	if !merged[0].start.Equal(at(9, 0)) || !merged[0].end.Equal(at(10, 30)) {
		t.Errorf("first block wrong: %s - %s", merged[0].start, merged[0].end)
	}
	if !merged[1].start.Equal(at(11, 0)) || !merged[1].end.Equal(at(12, 0)) {
		t.Errorf("second block wrong: %s - %s", merged[1].start, merged[1].end)
	}
}
