package service

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"focusflow-api/core/logger"
	scheduledto "focusflow-api/modules/schedule/dto"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"
)

const (
	maxFeedBodyBytes       = 4 << 20 // refuse feeds larger than 4 MiB
	maxOccurrencesPerEvent = 366
)

// FetchFeed downloads an ICS feed body. The caller owns timeout policy via
// the supplied client.
func FetchFeed(client *http.Client, url string) ([]byte, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBodyBytes))
	if err != nil {
		return nil, err
	}
	return body, nil
}

// ParseFeedEvents parses an ICS body and returns the events that intersect
// the given day as raw planner events. Recurring events are expanded with
// their RRULE; individual events that fail to parse are skipped so one bad
// VEVENT cannot poison the whole feed.
//
// All-day entries come out with 10-character date strings; the planner
// recognizes that shape and blocks the workday.
func ParseFeedEvents(body []byte, day time.Time) ([]scheduledto.RawEvent, error) {
	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	events := make([]scheduledto.RawEvent, 0)
	for _, ve := range cal.Events() {
		parsed, ok := parseVEvent(ve)
		if !ok {
			continue
		}

		for _, occ := range occurrencesInRange(parsed, dayStart, dayEnd) {
			events = append(events, toRawEvent(parsed, occ))
		}
	}

	return events, nil
}

type parsedEvent struct {
	UID      string
	Summary  string
	Start    time.Time
	End      time.Time
	AllDay   bool
	RawRRule string
	ExDates  []time.Time
}

type occurrence struct {
	Start time.Time
	End   time.Time
}

func parseVEvent(ve *ical.VEvent) (parsedEvent, bool) {
	var out parsedEvent

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	start, err := ve.GetStartAt()
	if err != nil {
		logger.Warn("ics: event has no usable DTSTART", "uid", out.UID)
		return out, false
	}
	end, err := ve.GetEndAt()
	if err != nil {
		// DTEND is optional; a missing end means a point event we cannot
		// block time for.
		return out, false
	}
	out.Start = start
	out.End = end

	// All-day when DTSTART carries VALUE=DATE or a bare date value.
	if p := ve.GetProperty(ical.ComponentPropertyDtStart); p != nil {
		if params := p.ICalParameters; params != nil {
			if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
				out.AllDay = true
			}
		}
		if !strings.Contains(p.Value, "T") {
			out.AllDay = true
		}
	}

	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		out.RawRRule = p.Value
	}

	for _, p := range ve.GetProperties(ical.ComponentPropertyExdate) {
		for _, part := range strings.Split(p.Value, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if t, perr := parseICSTime(part); perr == nil {
				out.ExDates = append(out.ExDates, t)
			}
		}
	}

	return out, true
}

// occurrencesInRange expands a parsed event into the concrete instances
// that intersect [rangeStart, rangeEnd).
func occurrencesInRange(ev parsedEvent, rangeStart, rangeEnd time.Time) []occurrence {
	if ev.RawRRule == "" {
		if ev.Start.Before(rangeEnd) && ev.End.After(rangeStart) {
			return []occurrence{{Start: ev.Start, End: ev.End}}
		}
		return nil
	}

	r, err := rrule.StrToRRule(ev.RawRRule)
	if err != nil {
		logger.Warn("ics: unparsable RRULE, treating event as single", "uid", ev.UID, "rrule", ev.RawRRule)
		if ev.Start.Before(rangeEnd) && ev.End.After(rangeStart) {
			return []occurrence{{Start: ev.Start, End: ev.End}}
		}
		return nil
	}
	r.DTStart(ev.Start)

	var set rrule.Set
	set.RRule(r)
	for _, ex := range ev.ExDates {
		set.ExDate(ex.In(ev.Start.Location()))
	}

	duration := ev.End.Sub(ev.Start)
	starts := set.Between(rangeStart.In(ev.Start.Location()), rangeEnd.In(ev.Start.Location()), true)
	if len(starts) > maxOccurrencesPerEvent {
		starts = starts[:maxOccurrencesPerEvent]
	}

	occs := make([]occurrence, 0, len(starts))
	for _, s := range starts {
		occs = append(occs, occurrence{Start: s, End: s.Add(duration)})
	}
	return occs
}

func toRawEvent(ev parsedEvent, occ occurrence) scheduledto.RawEvent {
	raw := scheduledto.RawEvent{
		ID:    ev.UID,
		Title: ev.Summary,
	}
	if ev.AllDay {
		raw.StartTime = occ.Start.Format("2006-01-02")
		raw.EndTime = occ.Start.Format("2006-01-02")
		return raw
	}
	raw.StartTime = occ.Start.Format(time.RFC3339)
	raw.EndTime = occ.End.Format(time.RFC3339)
	return raw
}

// parseICSTime handles the basic EXDATE value shapes.
func parseICSTime(v string) (time.Time, error) {
	if strings.HasSuffix(v, "Z") {
		return time.Parse("20060102T150405Z", v)
	}
	if strings.Contains(v, "T") {
		return time.ParseInLocation("20060102T150405", v, time.Local)
	}
	return time.ParseInLocation("20060102", v, time.Local)
}
