package service

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"event-rsvp-api/modules/event/entity"
)

func mustParseQuery(t *testing.T, raw string) url.Values {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("URL does not parse: %v", err)
	}
	return u.Query()
}

func TestBuildCalendarURLIsDeterministic(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	opts := CalendarLinkOptions{
		Title:       "Summer Gala",
		DateText:    "June 18, 20:00",
		Location:    "1 Main St",
		Description: "details",
		Now:         now,
	}

	first := BuildCalendarURL(opts)
	second := BuildCalendarURL(opts)
	if first != second {
		t.Fatalf("same input produced different URLs:\n%s\n%s", first, second)
	}
}

func TestBuildCalendarURLShape(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 18, 20, 0, 0, 0, time.UTC)
	raw := BuildCalendarURL(CalendarLinkOptions{
		Title:     "Summer Gala",
		StartDate: &start,
		Location:  "1 Main St",
		Now:       now,
	})

	if !strings.HasPrefix(raw, "https://calendar.google.com/calendar/render?action=TEMPLATE") {
		t.Fatalf("unexpected base: %s", raw)
	}

	q := mustParseQuery(t, raw)
	if q.Get("text") != "Summer Gala" {
		t.Errorf("text = %q", q.Get("text"))
	}
	if q.Get("location") != "1 Main St" {
		t.Errorf("location = %q", q.Get("location"))
	}
	// Default duration is 4 hours.
	if q.Get("dates") != "20240618T200000Z/20240619T000000Z" {
		t.Errorf("dates = %q", q.Get("dates"))
	}
}

func TestBuildCalendarURLAcceptsDatetimeLocalText(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	raw := BuildCalendarURL(CalendarLinkOptions{
		Title:    "Summer Gala",
		DateText: "2024-06-18T20:00",
		Now:      now,
	})

	q := mustParseQuery(t, raw)
	if q.Get("dates") != "20240618T200000Z/20240619T000000Z" {
		t.Errorf("form-field date text should set the start, got %q", q.Get("dates"))
	}
}

func TestBuildCalendarURLNeverCarriesAttendees(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	raw := BuildCalendarURL(CalendarLinkOptions{
		Title:       "Gala",
		DateText:    "June 18, 20:00",
		Description: "contact host@example.com for questions",
		Now:         now,
	})

	q := mustParseQuery(t, raw)
	for _, banned := range []string{"add", "src", "attendees"} {
		if q.Has(banned) {
			t.Errorf("URL must not carry %q", banned)
		}
	}
	// An address inside the free-text details is fine; anywhere else is not.
	withoutDetails := strings.Replace(raw, "details="+url.QueryEscape("contact host@example.com for questions"), "", 1)
	if strings.Contains(withoutDetails, url.QueryEscape("host@example.com")) {
		t.Errorf("email leaked outside details: %s", raw)
	}
}

func TestBuildCalendarURLExplicitEndWins(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	start := time.Date(2024, 6, 18, 20, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 18, 21, 30, 0, 0, time.UTC)

	raw := BuildCalendarURL(CalendarLinkOptions{
		Title:           "Gala",
		StartDate:       &start,
		EndDate:         &end,
		DurationMinutes: 600,
		Now:             now,
	})
	q := mustParseQuery(t, raw)
	if q.Get("dates") != "20240618T200000Z/20240618T213000Z" {
		t.Errorf("explicit end date should win over duration: %q", q.Get("dates"))
	}
}

func TestBuildCalendarURLFallbackOnGarbage(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	raw := BuildCalendarURL(CalendarLinkOptions{DateText: "not a date at all", Now: now})

	q := mustParseQuery(t, raw)
	// Start falls back to Now+15m, title to a placeholder; it must not fail.
	if q.Get("text") != "Event" {
		t.Errorf("fallback title = %q", q.Get("text"))
	}
	if !strings.HasPrefix(q.Get("dates"), "20240601T121500Z/") {
		t.Errorf("fallback start should be now+15m: %q", q.Get("dates"))
	}
}

func TestParseLooseDateRollsPastDatesIntoNextYear(t *testing.T) {
	now := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)

	dt, ok := parseLooseDate("January 5, 10:00", now)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if dt.Year() != 2025 {
		t.Errorf("date more than six months past should roll to next year, got %v", dt)
	}

	// A recent date stays in the current year.
	dt, ok = parseLooseDate("October 5, 10:00", now)
	if !ok {
		t.Fatal("expected parse to succeed")
	}
	if dt.Year() != 2024 {
		t.Errorf("recent date should keep the current year, got %v", dt)
	}
}

func TestParseLooseDateAcceptsAbbreviatedMonths(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{"jun 18, 20:00", "JUNE 18, 20:00", "Jun 18,20:00"} {
		dt, ok := parseLooseDate(text, now)
		if !ok {
			t.Fatalf("expected %q to parse", text)
		}
		if dt.Month() != time.June || dt.Day() != 18 || dt.Hour() != 20 {
			t.Errorf("%q parsed to %v", text, dt)
		}
	}
}

func TestParseLooseDateRejectsOutOfRange(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	for _, text := range []string{"June 32, 20:00", "June 18, 25:00", "June 18, 20:75", "Nonmonth 18, 20:00"} {
		if _, ok := parseLooseDate(text, now); ok {
			t.Errorf("expected %q to be rejected", text)
		}
	}
}

func TestBuildEventDescriptionComposition(t *testing.T) {
	agenda := entity.AgendaItems{
		{Time: "20:00", Title: "Doors open"},
		{Time: "21:00", Title: "Dinner", Subtitle: "main hall"},
	}

	got := BuildEventDescription("Summer Gala", "June 18, 2024, 20:00", "Black tie", "1 Main St", "Bring your invite", agenda, DescriptionLabels{})
	lines := strings.Split(got, "\n")

	want := []string{
		"EXPECT THE UNEXPECTED",
		"June 18, 2024, 20:00",
		"Summer Gala",
		"\u00a0",
		"Event Agenda:",
		"20:00 Doors open",
		"21:00 Dinner (main hall)",
		"\u00a0",
		"Dress Code: Black tie",
		"Address: 1 Main St",
		"Bring your invite",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), got)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestBuildEventDescriptionDropsBlankPieces(t *testing.T) {
	got := BuildEventDescription("Gala", "", "", "", "", nil, DescriptionLabels{
		Heading: "WELCOME", DressCodeLabel: "Attire", AddressLabel: "Where",
	})

	if strings.Contains(got, "Attire") || strings.Contains(got, "Where") {
		t.Errorf("empty fields should drop their labels:\n%s", got)
	}
	if strings.Contains(got, "\n\n") {
		t.Errorf("blank lines should be filtered:\n%s", got)
	}
	if !strings.HasPrefix(got, "WELCOME") {
		t.Errorf("custom heading missing:\n%s", got)
	}
}
