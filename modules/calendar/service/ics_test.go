package service

import (
	"strings"
	"testing"
	"time"
)

const feedFixture = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//focusflow//test//EN
BEGIN:VEVENT
UID:standup
SUMMARY:Standup
DTSTART:20260115T100000Z
DTEND:20260115T103000Z
END:VEVENT
BEGIN:VEVENT
UID:offsite
SUMMARY:Offsite
DTSTART;VALUE=DATE:20260115
DTEND;VALUE=DATE:20260116
END:VEVENT
BEGIN:VEVENT
UID:weekly
SUMMARY:Weekly sync
DTSTART:20260101T140000Z
DTEND:20260101T150000Z
RRULE:FREQ=WEEKLY;BYDAY=TH
END:VEVENT
BEGIN:VEVENT
UID:tomorrow
SUMMARY:Tomorrow only
DTSTART:20260116T100000Z
DTEND:20260116T110000Z
END:VEVENT
END:VCALENDAR
`

func TestParseFeedEventsForDay(t *testing.T) {
	// 2026-01-15 is a Thursday, so the weekly rule lands on it.
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	events, err := ParseFeedEvents([]byte(feedFixture), day)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	byID := make(map[string]int)
	for _, ev := range events {
		byID[ev.ID]++
	}

	if byID["standup"] != 1 {
		t.Errorf("expected one standup occurrence, got %d", byID["standup"])
	}
	if byID["offsite"] != 1 {
		t.Errorf("expected one offsite occurrence, got %d", byID["offsite"])
	}
	if byID["weekly"] != 1 {
		t.Errorf("expected one weekly occurrence on the day, got %d", byID["weekly"])
	}
	if byID["tomorrow"] != 0 {
		t.Errorf("next-day event leaked into the range, got %d", byID["tomorrow"])
	}
}

func TestParseFeedEventsAllDayShape(t *testing.T) {
	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	events, err := ParseFeedEvents([]byte(feedFixture), day)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	for _, ev := range events {
		if ev.ID != "offsite" {
			continue
		}
		if ev.StartTime != "2026-01-15" {
			t.Errorf("all-day start should be a bare date, got %q", ev.StartTime)
		}
		if len(ev.EndTime) != 10 {
			t.Errorf("all-day end should be a bare date, got %q", ev.EndTime)
		}
		return
	}
	t.Fatal("offsite event not found")
}

func TestParseFeedEventsRecurringExpansion(t *testing.T) {
	// A different Thursday: the weekly rule must follow, the single
	// events must not.
	day := time.Date(2026, 1, 22, 0, 0, 0, 0, time.UTC)

	events, err := ParseFeedEvents([]byte(feedFixture), day)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected only the weekly occurrence, got %d events", len(events))
	}
	ev := events[0]
	if ev.ID != "weekly" {
		t.Fatalf("expected weekly event, got %s", ev.ID)
	}
	if !strings.HasPrefix(ev.StartTime, "2026-01-22T14:00:00") {
		t.Errorf("occurrence start not shifted to the queried day: %s", ev.StartTime)
	}
}

func TestParseFeedEventsBadBody(t *testing.T) {
	if _, err := ParseFeedEvents([]byte("not an ics feed"), time.Now()); err == nil {
		t.Error("expected an error for a non-ICS body")
	}
}
