package service

import (
	"fmt"
	"sort"
	"time"

	"focusflow-api/core/config"
	"focusflow-api/core/constants"
	"focusflow-api/modules/schedule/dto"
)

// Planner implements the focus-window selection algorithm: normalize a raw
// event list, expand all-day entries, merge overlaps, derive buffered gaps
// inside the workday and score them. It is a pure function of its inputs;
// the reference day is always passed in, never read from the clock.
type Planner struct {
	// WorkdayStartHour / WorkdayEndHour bound the planning window, default 9-17
	WorkdayStartHour int
	WorkdayEndHour   int
	// DefaultMinimumDuration minutes, applied when preferences omit one
	DefaultMinimumDuration int
	// DefaultBufferTime minutes padded around busy intervals
	DefaultBufferTime int
}

// NewPlanner creates a planner with the compiled-in defaults.
func NewPlanner() *Planner {
	return &Planner{
		WorkdayStartHour:       constants.DefaultWorkdayStartHour,
		WorkdayEndHour:         constants.DefaultWorkdayEndHour,
		DefaultMinimumDuration: constants.DefaultMinimumDurationMin,
		DefaultBufferTime:      constants.DefaultBufferTimeMin,
	}
}

// NewPlannerFromConfig creates a planner bound to the deployment config.
func NewPlannerFromConfig(cfg config.PlannerConfig) *Planner {
	p := NewPlanner()
	if cfg.WorkdayStartHour > 0 && cfg.WorkdayEndHour > cfg.WorkdayStartHour {
		p.WorkdayStartHour = cfg.WorkdayStartHour
		p.WorkdayEndHour = cfg.WorkdayEndHour
	}
	if cfg.MinimumDurationMinutes > 0 {
		p.DefaultMinimumDuration = cfg.MinimumDurationMinutes
	}
	if cfg.BufferTimeMinutes >= 0 {
		p.DefaultBufferTime = cfg.BufferTimeMinutes
	}
	return p
}

// PlanResult is the planner outcome. Window is nil when no slot qualifies;
// Message is always set and explains the result either way.
type PlanResult struct {
	Window  *dto.FocusWindowDTO
	Message string
}

// busyInterval is a sanitized, concrete busy range within the day.
type busyInterval struct {
	start    time.Time
	end      time.Time
	isAllDay bool
}

// resolvedPreferences has every preference field filled in.
type resolvedPreferences struct {
	preferredTime   string
	minimumDuration int
	bufferTime      int
}

// SuggestFocusWindow runs the full pipeline for a single day.
//
// Malformed input never produces an error: a nil or empty event list means a
// free day, individual bad events are dropped, and invalid preference values
// fall back to defaults.
func (p *Planner) SuggestFocusWindow(events []dto.RawEvent, prefs *dto.SchedulePreferences, day time.Time) PlanResult {
	resolved := p.resolvePreferences(prefs)

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), p.WorkdayStartHour, 0, 0, 0, day.Location())
	dayEnd := time.Date(day.Year(), day.Month(), day.Day(), p.WorkdayEndHour, 0, 0, 0, day.Location())

	busy := p.normalizeEvents(events, day)
	merged := p.mergeOverlapping(busy)
	gaps := p.findGaps(merged, dayStart, dayEnd, resolved.bufferTime)

	var qualifying []busyInterval
	for _, gap := range gaps {
		if int(gap.end.Sub(gap.start).Minutes()) >= resolved.minimumDuration {
			qualifying = append(qualifying, gap)
		}
	}

	if len(qualifying) == 0 {
		if len(gaps) == 0 {
			return PlanResult{
				Message: fmt.Sprintf("Your calendar is fully booked between %02d:00 and %02d:00; no focus window is available.",
					p.WorkdayStartHour, p.WorkdayEndHour),
			}
		}
		return PlanResult{
			Message: fmt.Sprintf("No free slot meets the minimum duration of %d minutes; the longest gap today is %d minutes.",
				resolved.minimumDuration, p.longestGapMinutes(gaps)),
		}
	}

	best := qualifying[0]
	bestScore := p.scoreGap(best, resolved)
	for _, gap := range qualifying[1:] {
		// Strict greater keeps the earlier gap on ties.
		if score := p.scoreGap(gap, resolved); score > bestScore {
			best = gap
			bestScore = score
		}
	}

	window := p.buildWindow(best, bestScore, resolved)
	return PlanResult{Window: window, Message: window.Reasoning}
}

// resolvePreferences fills defaults for missing or invalid fields.
func (p *Planner) resolvePreferences(prefs *dto.SchedulePreferences) resolvedPreferences {
	out := resolvedPreferences{
		preferredTime:   constants.DefaultPreferredTime,
		minimumDuration: p.DefaultMinimumDuration,
		bufferTime:      p.DefaultBufferTime,
	}
	if prefs == nil {
		return out
	}

	switch prefs.PreferredTime {
	case "morning", "afternoon", "evening":
		out.preferredTime = prefs.PreferredTime
	}
	if prefs.MinimumDuration > 0 {
		out.minimumDuration = prefs.MinimumDuration
	}
	if prefs.BufferTime > 0 {
		out.bufferTime = prefs.BufferTime
	}
	return out
}

// normalizeEvents sanitizes the raw list: entries missing either timestamp,
// with unparsable timestamps, or with end <= start are dropped. Date-only
// timestamps mark the event all-day and expand it to the workday window on
// that date.
func (p *Planner) normalizeEvents(events []dto.RawEvent, day time.Time) []busyInterval {
	out := make([]busyInterval, 0, len(events))

	for _, ev := range events {
		if ev.StartTime == "" || ev.EndTime == "" {
			continue
		}

		start, startDateOnly, err := parseEventTime(ev.StartTime, day.Location())
		if err != nil {
			continue
		}
		end, endDateOnly, err := parseEventTime(ev.EndTime, day.Location())
		if err != nil {
			continue
		}

		if startDateOnly || endDateOnly {
			// All-day entry blocks the workday on its date.
			out = append(out, busyInterval{
				start:    time.Date(start.Year(), start.Month(), start.Day(), p.WorkdayStartHour, 0, 0, 0, day.Location()),
				end:      time.Date(start.Year(), start.Month(), start.Day(), p.WorkdayEndHour, 0, 0, 0, day.Location()),
				isAllDay: true,
			})
			continue
		}

		if !end.After(start) {
			continue
		}

		out = append(out, busyInterval{start: start, end: end})
	}

	return out
}

// parseEventTime accepts RFC3339 date-times and 10-character YYYY-MM-DD
// date-only strings (the all-day marker). The bool reports date-only.
func parseEventTime(value string, loc *time.Location) (time.Time, bool, error) {
	if len(value) == 10 {
		t, err := time.ParseInLocation("2006-01-02", value, loc)
		return t, true, err
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), false, nil
	}
	// Zone-less date-time, interpreted in the planning location.
	t, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	return t, false, err
}

// mergeOverlapping collapses touching or overlapping intervals into a
// minimal ordered busy set. Stable sort keeps input order for equal starts.
func (p *Planner) mergeOverlapping(intervals []busyInterval) []busyInterval {
	if len(intervals) == 0 {
		return intervals
	}

	sorted := make([]busyInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})

	merged := []busyInterval{sorted[0]}
	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]
		if !current.start.After(last.end) {
			if current.end.After(last.end) {
				last.end = current.end
			}
			last.isAllDay = last.isAllDay || current.isAllDay
		} else {
			merged = append(merged, current)
		}
	}

	return merged
}

// findGaps returns the free complement of the merged busy set within
// [dayStart, dayEnd], after padding each busy interval by bufferTime minutes
// on both sides. Padding shrinks gaps but never widens the day bounds.
func (p *Planner) findGaps(merged []busyInterval, dayStart, dayEnd time.Time, bufferTime int) []busyInterval {
	buffer := time.Duration(bufferTime) * time.Minute

	var gaps []busyInterval
	cursor := dayStart

	for _, b := range merged {
		paddedStart := b.start.Add(-buffer)
		paddedEnd := b.end.Add(buffer)

		if paddedEnd.Before(dayStart) || !paddedStart.Before(dayEnd) {
			continue
		}

		if paddedStart.After(cursor) {
			gapEnd := paddedStart
			if gapEnd.After(dayEnd) {
				gapEnd = dayEnd
			}
			gaps = append(gaps, busyInterval{start: cursor, end: gapEnd})
		}
		if paddedEnd.After(cursor) {
			cursor = paddedEnd
		}
	}

	if cursor.Before(dayEnd) {
		gaps = append(gaps, busyInterval{start: cursor, end: dayEnd})
	}

	return gaps
}

// scoreGap assigns a 0-100 score: 40 base, +35 when the gap starts in the
// preferred bucket, and up to +25 for length, linear from zero at the
// minimum duration to the full bonus at twice the minimum (then flat).
func (p *Planner) scoreGap(gap busyInterval, prefs resolvedPreferences) int {
	score := 40

	if bucketForHour(gap.start.Hour()) == prefs.preferredTime {
		score += 35
	}

	gapMinutes := int(gap.end.Sub(gap.start).Minutes())
	extra := gapMinutes - prefs.minimumDuration
	if extra > prefs.minimumDuration {
		extra = prefs.minimumDuration
	}
	if extra > 0 {
		score += extra * 25 / prefs.minimumDuration
	}

	if score > 100 {
		score = 100
	}
	return score
}

// bucketForHour maps an hour of day to its preference bucket; hours outside
// every bucket return "".
func bucketForHour(hour int) string {
	switch {
	case hour >= constants.MorningStartHour && hour < constants.MorningEndHour:
		return "morning"
	case hour >= constants.AfternoonStartHour && hour < constants.AfternoonEndHour:
		return "afternoon"
	case hour >= constants.EveningStartHour && hour < constants.EveningEndHour:
		return "evening"
	}
	return ""
}

// buildWindow sizes the suggestion inside the winning gap: at least the
// minimum duration, at most twice it, never beyond the gap itself.
func (p *Planner) buildWindow(gap busyInterval, score int, prefs resolvedPreferences) *dto.FocusWindowDTO {
	gapMinutes := int(gap.end.Sub(gap.start).Minutes())

	duration := 2 * prefs.minimumDuration
	if duration > gapMinutes {
		duration = gapMinutes
	}
	if duration < prefs.minimumDuration {
		duration = prefs.minimumDuration
	}

	start := gap.start
	end := start.Add(time.Duration(duration) * time.Minute)

	reasoning := fmt.Sprintf("Found a %d-minute gap starting at %s", gapMinutes, start.Format("15:04"))
	if bucket := bucketForHour(start.Hour()); bucket == prefs.preferredTime {
		reasoning += fmt.Sprintf(", matching your %s preference", prefs.preferredTime)
	} else if bucket != "" {
		reasoning += fmt.Sprintf(" in the %s", bucket)
	}

	return &dto.FocusWindowDTO{
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: duration,
		Score:           score,
		Reasoning:       reasoning,
	}
}

func (p *Planner) longestGapMinutes(gaps []busyInterval) int {
	longest := 0
	for _, g := range gaps {
		if m := int(g.end.Sub(g.start).Minutes()); m > longest {
			longest = m
		}
	}
	return longest
}
