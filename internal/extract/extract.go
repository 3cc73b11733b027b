// Package extract recovers refund record fields from raw text pasted out
// of an order-tracking UI. Recognition is anchor-based: each field has a
// fixed label phrase, and the value is taken from the text immediately
// around it. There is no schema assumption beyond those anchors, and a
// missing anchor simply leaves the field absent.
package extract

import (
	"regexp"
	"strings"

	"refundly/internal/refund"
)

var (
	amountRe = regexp.MustCompile(`(?i)Amount\s*\(Rs\)\s*(\d+)`)

	// Transaction-level mode appears under the "Payments and Refunds"
	// section; a summary-level Mode can occur earlier in the dump.
	scopedModeRe   = regexp.MustCompile(`(?i)Payments and Refunds(?s:.*?)Mode\n(.+)`)
	unscopedModeRe = regexp.MustCompile(`(?i)Mode\n(.+)`)

	slaRe = regexp.MustCompile(`(?i)\bSLA\b[ \t]*:?\s*(.+)`)

	initRe           = regexp.MustCompile(`(?im)^Init(.+)`)
	processingInitRe = regexp.MustCompile(`(?im)^Processing(\d.*)`)

	// The only accepted reference-number anchor. "Payment reference no."
	// and similar labels in the same dump must not match.
	rrnRe = regexp.MustCompile(`(?i)Bank reference no\s*(\w+)`)
)

// Result is a partial refund record. String fields are absent when empty;
// the enum fields carry an explicit presence flag because their zero
// values are real members.
type Result struct {
	Amount      string
	Mode        refund.Mode
	HasMode     bool
	SLA         string
	Status      refund.Status
	HasStatus   bool
	InitiatedAt string
	RRN         string
}

// Extract scans raw pasted text and recovers whatever fields it can. The
// five field rules run independently; when a label repeats, the first
// qualifying match in document order wins, so extraction is idempotent.
// Extract never fails: malformed or empty input yields an empty Result.
func Extract(raw string) Result {
	var res Result
	if strings.TrimSpace(raw) == "" {
		return res
	}

	if m := amountRe.FindStringSubmatch(raw); m != nil {
		res.Amount = m[1]
	}

	modeText := ""
	if m := scopedModeRe.FindStringSubmatch(raw); m != nil {
		modeText = m[1]
	} else if m := unscopedModeRe.FindStringSubmatch(raw); m != nil {
		modeText = m[1]
	}
	if mode, ok := refund.ParseMode(modeText); ok {
		res.Mode = mode
		res.HasMode = true
	}

	if m := slaRe.FindStringSubmatch(raw); m != nil {
		res.SLA = strings.TrimSpace(m[1])
	}

	if strings.Contains(raw, "Processing") {
		res.Status = refund.StatusProcessing
		res.HasStatus = true
		if m := initRe.FindStringSubmatch(raw); m != nil {
			res.InitiatedAt = strings.TrimSpace(m[1])
		} else if m := processingInitRe.FindStringSubmatch(raw); m != nil {
			res.InitiatedAt = strings.TrimSpace(m[1])
		}
	} else if strings.Contains(raw, "Completed") {
		// Within-SLA is the deliberate default; a clock-based rule may
		// promote it later.
		res.Status = refund.StatusCompletedWithinSLA
		res.HasStatus = true
	}

	if m := rrnRe.FindStringSubmatch(raw); m != nil {
		res.RRN = m[1]
	}

	return res
}

// Apply copies every recovered field onto rec, leaving absent fields
// untouched so the caller's defaults survive.
func (r Result) Apply(rec *refund.Record) {
	if r.Amount != "" {
		rec.Amount = r.Amount
	}
	if r.HasMode {
		rec.Mode = r.Mode
	}
	if r.SLA != "" {
		rec.SLA = r.SLA
	}
	if r.HasStatus {
		rec.Status = r.Status
	}
	if r.InitiatedAt != "" {
		rec.InitiatedAt = r.InitiatedAt
	}
	if r.RRN != "" {
		rec.RRN = r.RRN
	}
}

// Empty reports whether nothing was recovered.
func (r Result) Empty() bool {
	return r.Amount == "" && !r.HasMode && r.SLA == "" &&
		!r.HasStatus && r.InitiatedAt == "" && r.RRN == ""
}
