// Package snippet holds the quick-reply catalog shown beside the form:
// fixed common responses, a time-of-day SMS suggestion, and the SMS
// preview derived from a generated message.
package snippet

import (
	"fmt"
	"strings"
	"time"
)

// Snippet is one copyable quick reply.
type Snippet struct {
	Category string
	Label    string
	Text     string
}

// IST is the civil zone the support desk operates in.
var IST = time.FixedZone("IST", 5*3600+30*60)

const (
	lateHoursText = "Could you please confirm if I can share the refund details with you via SMS?"
	dayHoursText  = "Let me share the refund details over SMS too."
)

// Catalog returns the built-in snippets in sidebar order.
func Catalog() []Snippet {
	return []Snippet{
		{Category: "Common Responses", Label: "WITH RRN", Text: "We've sent an SMS with the refund reference number."},
		{Category: "Common Responses", Label: "W/O RRN", Text: "We've sent an SMS with the refund details."},
		{Category: "Closing", Label: "Empathy", Text: "I really appreciate you being so patient while I helped."},
	}
}

// LateHours reports whether now falls outside SMS hours in IST, i.e. at
// or after 9 PM and before 9 AM.
func LateHours(now time.Time) bool {
	return LateHoursIn(now, IST)
}

// LateHoursIn is LateHours against an arbitrary zone.
func LateHoursIn(now time.Time, loc *time.Location) bool {
	h := now.In(loc).Hour()
	return h >= 21 || h < 9
}

// TimeSuggestion returns the hour-conditional SMS snippet: after 9 PM the
// agent asks for consent first, during the day the SMS is offered
// directly.
func TimeSuggestion(now time.Time) Snippet {
	return TimeSuggestionIn(now, IST)
}

// TimeSuggestionIn is TimeSuggestion against an arbitrary zone.
func TimeSuggestionIn(now time.Time, loc *time.Location) Snippet {
	if LateHoursIn(now, loc) {
		return Snippet{Category: "Smart Context", Label: "SMS after 9 PM", Text: lateHoursText}
	}
	return Snippet{Category: "Smart Context", Label: "SMS before 9 PM", Text: dayHoursText}
}

// SMSPreview wraps the first line of a generated message in the outbound
// SMS template. Empty input yields an empty preview.
func SMSPreview(message string) string {
	first := strings.TrimSpace(message)
	if first == "" {
		return ""
	}
	if i := strings.Index(first, "\n"); i >= 0 {
		first = strings.TrimSpace(first[:i])
	}
	return fmt.Sprintf("Flipkart Update: Thanks for reaching us. %s For more details, click here: https://www.flipkart.com/helpcentre", first)
}
