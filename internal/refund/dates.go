package refund

import (
	"strings"
	"time"
)

// PlaceholderInitDate is rendered when a record has no initiation date.
const PlaceholderInitDate = "[Refund Initiated Date and Time]"

// Display layouts used by the order-tracking UI this tool's input is
// copied from, e.g. "28 Dec 25, 02:44 am" or "03 Feb 26, 08:47 AM".
var displayLayoutsWithTime = []string{
	"2 Jan 06, 3:04 pm",
	"2 Jan 06, 3:04 PM",
	"2 Jan 2006, 3:04 pm",
	"2 Jan 2006, 3:04 PM",
}

var displayLayoutsDateOnly = []string{
	"2 Jan 06",
	"2 Jan 2006",
}

// ParseDisplayDate parses a display-format date/time string. The second
// return reports whether the input carried a time component.
func ParseDisplayDate(s string) (t time.Time, hasTime bool, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false
	}
	for _, layout := range displayLayoutsWithTime {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true, true
		}
	}
	for _, layout := range displayLayoutsDateOnly {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, false, true
		}
	}
	return time.Time{}, false, false
}

// FormatInputDate renders a display-format date long form: "28 Dec 25,
// 02:44 am" becomes "December 28, 2025 2:44 am". Inputs without a time
// component render as the date alone. Text that does not parse is echoed
// back verbatim; empty input yields the bracketed placeholder.
func FormatInputDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return PlaceholderInitDate
	}
	t, hasTime, ok := ParseDisplayDate(s)
	if !ok {
		return s
	}
	if hasTime {
		return t.Format("January 2, 2006 3:04 pm")
	}
	return t.Format("January 2, 2006")
}

// TodayLongForm renders now as a long-form date, "December 28, 2025".
func TodayLongForm(now time.Time) string {
	return now.Format("January 2, 2006")
}

// wallClock strips the zone from now so comparisons against the zoneless
// display timestamps work on wall-clock values.
func wallClock(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), 0, time.UTC)
}

// PromoteStatus upgrades CompletedWithinSLA to CompletedPostSLA when the
// record's SLA deadline parses to a timestamp already behind now. Every
// other case leaves the status unchanged. The clock is a parameter so the
// caller decides what "now" means.
func PromoteStatus(rec Record, now time.Time) Status {
	if rec.Status != StatusCompletedWithinSLA {
		return rec.Status
	}
	deadline, _, ok := ParseDisplayDate(rec.SLA)
	if !ok {
		return rec.Status
	}
	if deadline.Before(wallClock(now)) {
		return StatusCompletedPostSLA
	}
	return rec.Status
}

// TrimSLA shortens an extracted SLA for display. The time component is
// kept only while the deadline is less than three hours away; otherwise
// the date part alone is returned. Unparseable input passes through.
func TrimSLA(sla string, now time.Time) string {
	sla = strings.TrimSpace(sla)
	deadline, hasTime, ok := ParseDisplayDate(sla)
	if !ok || !hasTime {
		return sla
	}
	diff := deadline.Sub(wallClock(now))
	if diff > 0 && diff <= 3*time.Hour {
		return sla
	}
	if i := strings.Index(sla, ","); i >= 0 {
		return strings.TrimSpace(sla[:i])
	}
	return sla
}
