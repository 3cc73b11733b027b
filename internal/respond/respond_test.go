package respond

import (
	"strings"
	"testing"
	"time"

	"refundly/internal/refund"
)

var testNow = time.Date(2026, time.January, 28, 10, 30, 0, 0, time.UTC)

func TestGenerateSuperCoins(t *testing.T) {
	rec := refund.Record{
		Amount:            "100",
		Mode:              refund.ModeSuperCoins,
		Status:            refund.StatusCompletedPostSLA,
		SuperCoinsBalance: "50",
	}

	msg := Generate(rec, testNow)

	if !strings.Contains(msg, "100 SuperCoins have been credited") {
		t.Errorf("missing credited phrase:\n%s", msg)
	}
	if !strings.Contains(msg, "balance of SuperCoins is 50") {
		t.Errorf("missing balance phrase:\n%s", msg)
	}
}

func TestGenerateSuperCoinsPending(t *testing.T) {
	rec := refund.Record{
		Amount: "75",
		Mode:   refund.ModeSuperCoins,
		Status: refund.StatusProcessing,
	}

	msg := Generate(rec, testNow)

	if !strings.Contains(msg, "75 SuperCoins will be credited") {
		t.Errorf("missing pending phrase:\n%s", msg)
	}
	if !strings.Contains(msg, "by 2-4 hours") {
		t.Errorf("missing SLA fallback:\n%s", msg)
	}
	if !strings.Contains(msg, "balance of SuperCoins is XX") {
		t.Errorf("missing XX balance placeholder:\n%s", msg)
	}
}

func TestGenerateSuperCoinsUsesRecordSLA(t *testing.T) {
	rec := refund.Record{
		Amount: "75",
		Mode:   refund.ModeSuperCoins,
		Status: refund.StatusCompletedWithinSLA,
		SLA:    "05 Feb 26",
	}

	msg := Generate(rec, testNow)
	if !strings.Contains(msg, "by 05 Feb 26") {
		t.Errorf("record SLA not used:\n%s", msg)
	}
}

func TestGenerateProcessing(t *testing.T) {
	rec := refund.Record{
		Amount:      "500",
		Mode:        refund.ModeCreditCard,
		Status:      refund.StatusProcessing,
		InitiatedAt: "28 Dec 25, 02:44 am",
	}

	msg := Generate(rec, testNow)

	if !strings.Contains(msg, "Rs 500") {
		t.Errorf("missing amount:\n%s", msg)
	}
	if !strings.Contains(msg, "initiated to Credit Card") {
		t.Errorf("missing mode:\n%s", msg)
	}
	if !strings.Contains(msg, "December 28, 2025") || !strings.Contains(msg, "2:44 am") {
		t.Errorf("initiation date not long-formatted:\n%s", msg)
	}
	if !strings.Contains(msg, "still pending") {
		t.Errorf("missing pending wording:\n%s", msg)
	}
}

func TestGenerateProcessingWithoutDate(t *testing.T) {
	rec := refund.Record{
		Amount: "500",
		Mode:   refund.ModeUPI,
		Status: refund.StatusProcessing,
	}

	msg := Generate(rec, testNow)
	if !strings.Contains(msg, refund.PlaceholderInitDate) {
		t.Errorf("missing date placeholder:\n%s", msg)
	}
}

func TestGenerateCompletedWithinRRNClause(t *testing.T) {
	base := refund.Record{
		Amount: "144",
		Mode:   refund.ModeUPI,
		Status: refund.StatusCompletedWithinSLA,
	}

	withoutRRN := Generate(base, testNow)
	if strings.Contains(withoutRRN, "bank reference number") {
		t.Errorf("empty RRN must omit the reference clause:\n%s", withoutRRN)
	}

	base.RRN = "622085790286"
	withRRN := Generate(base, testNow)
	if !strings.Contains(withRRN, "with your bank reference number 622085790286") {
		t.Errorf("missing reference clause:\n%s", withRRN)
	}
}

func TestGenerateCompletedWithinGroups(t *testing.T) {
	tests := []struct {
		name     string
		mode     refund.Mode
		contains []string
		excludes []string
	}{
		{
			name:     "bank statement group",
			mode:     refund.ModeNetBanking,
			contains: []string{"bank account statement", "keyword 'Flipkart'"},
			excludes: []string{"billed and unbilled", "For any UPI transaction"},
		},
		{
			name:     "debit card belongs to bank group",
			mode:     refund.ModeDebitCard,
			contains: []string{"bank account statement"},
			excludes: []string{"billed and unbilled"},
		},
		{
			name:     "upi group gets the upi sentence",
			mode:     refund.ModeFlipkartUPI,
			contains: []string{"For any UPI transaction"},
		},
		{
			name:     "credit card group checks billed sections",
			mode:     refund.ModeCreditCard,
			contains: []string{"credit card statement", "billed and unbilled"},
		},
		{
			name:     "credit card emi follows credit card wording",
			mode:     refund.ModeCreditCardEMI,
			contains: []string{"credit card statement", "billed and unbilled"},
		},
		{
			name:     "gift card wallet",
			mode:     refund.ModeGiftCardWallet,
			contains: []string{"Gift Card refund", "valid for one year"},
		},
		{
			name:     "gift card qc",
			mode:     refund.ModeGiftCardQC,
			contains: []string{"added to the Gift Card", "Resend Gift Card"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := refund.Record{Amount: "953", Mode: tt.mode, Status: refund.StatusCompletedWithinSLA}
			msg := Generate(rec, testNow)
			for _, want := range tt.contains {
				if !strings.Contains(msg, want) {
					t.Errorf("missing %q:\n%s", want, msg)
				}
			}
			for _, bad := range tt.excludes {
				if strings.Contains(msg, bad) {
					t.Errorf("unexpected %q:\n%s", bad, msg)
				}
			}
		})
	}
}

func TestGenerateCompletedWithinSLAText(t *testing.T) {
	rec := refund.Record{Amount: "953", Mode: refund.ModeUPI, Status: refund.StatusCompletedWithinSLA}

	msg := Generate(rec, testNow)
	if !strings.Contains(msg, "in the next 2-4 hours") {
		t.Errorf("missing default SLA text:\n%s", msg)
	}

	rec.SLA = "05 Feb 26"
	msg = Generate(rec, testNow)
	if !strings.Contains(msg, "in the next 05 Feb 26") {
		t.Errorf("record SLA not used:\n%s", msg)
	}
}

func TestGenerateCompletedPost(t *testing.T) {
	rec := refund.Record{
		Amount: "953",
		Mode:   refund.ModeUPI,
		RRN:    "999888777666",
		Status: refund.StatusCompletedPostSLA,
	}

	msg := Generate(rec, testNow)

	if !strings.Contains(msg, "latest by January 28, 2026") {
		t.Errorf("missing today's date:\n%s", msg)
	}
	if !strings.Contains(msg, "refund reference number 999888777666") {
		t.Errorf("missing literal RRN:\n%s", msg)
	}
	if !strings.Contains(msg, "For any UPI transaction") {
		t.Errorf("missing UPI sentence:\n%s", msg)
	}
	if !strings.Contains(msg, "grievance cell") {
		t.Errorf("missing escalation boilerplate:\n%s", msg)
	}
}

func TestGenerateCompletedPostCreditCard(t *testing.T) {
	rec := refund.Record{
		Amount: "953",
		Mode:   refund.ModeCreditCard,
		Status: refund.StatusCompletedPostSLA,
	}

	msg := Generate(rec, testNow)

	if !strings.Contains(msg, "billed and unbilled") {
		t.Errorf("credit card post template must mention both statement sections:\n%s", msg)
	}
	if strings.Contains(msg, "For any UPI transaction") {
		t.Errorf("unexpected UPI sentence:\n%s", msg)
	}
}

func TestGenerateIsTotalOverClosedSets(t *testing.T) {
	for _, mode := range refund.Modes {
		for _, status := range refund.Statuses {
			rec := refund.Record{Amount: "1", Mode: mode, Status: status}
			msg := Generate(rec, testNow)
			if msg == "" {
				t.Errorf("Generate returned empty for mode=%v status=%v", mode, status)
			}
			if strings.HasSuffix(msg, "\n") {
				t.Errorf("trailing newline for mode=%v status=%v", mode, status)
			}
		}
	}
}

func TestLinesDropsBlanks(t *testing.T) {
	rec := refund.Record{Amount: "953", Mode: refund.ModeGiftCardWallet, Status: refund.StatusCompletedWithinSLA}
	msg := Generate(rec, testNow)

	for _, line := range Lines(msg) {
		if strings.TrimSpace(line) == "" {
			t.Error("Lines returned a blank segment")
		}
	}
	if len(Lines(msg)) == 0 {
		t.Error("Lines returned nothing")
	}
}
