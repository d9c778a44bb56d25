package service

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"event-rsvp-api/modules/event/entity"
)

// Builds a Google Calendar template URL without inviting attendees. No
// email address is ever placed in the URL, so opening it can never send an
// invitation to anyone.

const (
	calendarBaseURL        = "https://calendar.google.com/calendar/render"
	defaultDurationMinutes = 240
	fallbackStartDelay     = 15 * time.Minute
	gcalTimeLayout         = "20060102T150405Z"
)

// sixMonths matches the rollover window: a loosely written date more than
// this far in the past is assumed to mean next year.
const sixMonths = 6 * 30 * 24 * time.Hour

// CalendarLinkOptions describes the invite. StartDate wins when set;
// otherwise DateText is parsed, first as a standard date/time string and
// then as the loose "June 18, 20:00" form.
type CalendarLinkOptions struct {
	Title           string
	StartDate       *time.Time
	DateText        string
	EndDate         *time.Time
	DurationMinutes int
	Location        string
	Description     string

	// Now anchors the loose-date year heuristic and the fallback start;
	// zero means the wall clock. Fixing it makes the output reproducible.
	Now time.Time
}

var looseDateRe = regexp.MustCompile(`^(\p{L}+)\s+(\d{1,2}),\s*(\d{1,2}):(\d{2})$`)

// Layouts a typical stored or hand-entered date/time string may use.
var standardLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // datetime-local form fields
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123,
	time.ANSIC,
}

// BuildCalendarURL derives the calendar-service URL for an event. It is
// pure, deterministic for a fixed Now, and never fails: unparseable input
// degrades to a start of Now+15m rather than an error.
func BuildCalendarURL(opts CalendarLinkOptions) string {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	start := resolveStart(opts, now)

	duration := opts.DurationMinutes
	if duration <= 0 {
		duration = defaultDurationMinutes
	}
	end := start.Add(time.Duration(duration) * time.Minute)
	if opts.EndDate != nil {
		end = *opts.EndDate
	}

	title := opts.Title
	if title == "" {
		title = "Event"
	}

	dates := start.UTC().Format(gcalTimeLayout) + "/" + end.UTC().Format(gcalTimeLayout)

	// Parameter order is fixed by hand so identical inputs produce
	// byte-identical URLs.
	var b strings.Builder
	b.WriteString(calendarBaseURL)
	b.WriteString("?action=TEMPLATE")
	b.WriteString("&text=" + url.QueryEscape(title))
	b.WriteString("&details=" + url.QueryEscape(opts.Description))
	b.WriteString("&location=" + url.QueryEscape(opts.Location))
	b.WriteString("&dates=" + url.QueryEscape(dates))
	return b.String()
}

func resolveStart(opts CalendarLinkOptions, now time.Time) time.Time {
	if opts.StartDate != nil {
		return *opts.StartDate
	}

	text := strings.TrimSpace(opts.DateText)
	if text != "" {
		for _, layout := range standardLayouts {
			if t, err := time.Parse(layout, text); err == nil {
				return t
			}
		}
		if t, ok := parseLooseDate(text, now); ok {
			return t
		}
	}

	return now.Add(fallbackStartDelay)
}

// parseLooseDate handles "June 18, 20:00" style input (month name is case
// insensitive, three-letter abbreviations accepted). A date that already
// passed by more than six months is rolled into next year, covering annual
// events written without a year.
func parseLooseDate(text string, now time.Time) (time.Time, bool) {
	m := looseDateRe.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := monthByName(m[1])
	if !ok {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])
	if day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}, false
	}

	dt := time.Date(now.Year(), month, day, hour, minute, 0, 0, now.Location())
	if dt.Before(now.Add(-sixMonths)) {
		dt = dt.AddDate(1, 0, 0)
	}
	return dt, true
}

func monthByName(name string) (time.Month, bool) {
	name = strings.ToLower(name)
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m, true
		}
	}
	return 0, false
}

// DescriptionLabels are the site-settings strings woven into the invite
// description.
type DescriptionLabels struct {
	Heading        string
	DressCodeLabel string
	AddressLabel   string
}

// BuildEventDescription composes the free-text details block the same way
// the landing page does: heading, date line, title, agenda, labeled dress
// code and address, then guest info. Blank pieces are dropped; the
// separator lines use a non-breaking space so they survive the filter.
func BuildEventDescription(title, dateLine, dressCode, address, guestInfo string, agenda entity.AgendaItems, labels DescriptionLabels) string {
	heading := labels.Heading
	if heading == "" {
		heading = "EXPECT THE UNEXPECTED"
	}
	dressCodeLabel := labels.DressCodeLabel
	if dressCodeLabel == "" {
		dressCodeLabel = "Dress Code"
	}
	addressLabel := labels.AddressLabel
	if addressLabel == "" {
		addressLabel = "Address"
	}

	lines := []string{heading, dateLine, title, "\u00a0", "Event Agenda:"}
	for _, a := range agenda {
		line := a.Time + " " + a.Title
		if a.Subtitle != "" {
			line += fmt.Sprintf(" (%s)", a.Subtitle)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "\u00a0")
	if dressCode != "" {
		lines = append(lines, dressCodeLabel+": "+dressCode)
	}
	if address != "" {
		lines = append(lines, addressLabel+": "+address)
	}
	lines = append(lines, guestInfo)

	var kept []string
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, "\n")
}
