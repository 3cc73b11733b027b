// Package respond renders the canned customer-support message for a
// refund record. Generation is a pure function of the record and the
// injected clock: the clock only feeds date formatting inside the
// templates, never branching.
package respond

import (
	"fmt"
	"strings"
	"time"

	"refundly/internal/refund"
)

// DefaultSLAText is used wherever a template needs an SLA and the record
// carries none.
const DefaultSLAText = "2-4 hours"

const (
	keywordLine = "Search for a refund with the keyword 'Flipkart'."
	upiLine     = "For any UPI transaction, I request you to check the bank account statement for a refund. " + keywordLine
	billedLine  = "For the credit card transaction, verify both the billed and unbilled sections of the bank statement to view the refund amount. " + keywordLine
)

func bankStatementLine(today string) string {
	return fmt.Sprintf("Check the bank account statement from %s date to the present date (use the bank's app/website/ or contact customer care/bank statement or passbook).", today)
}

func cardStatementLine(today string) string {
	return fmt.Sprintf("Check the credit card statement from %s date to the present date (use the bank's app/website/ or contact customer care/bank statement or passbook).", today)
}

// Generate maps a record to its message text. Lines are joined with a
// single "\n" and the result carries no trailing terminator. A status
// outside the closed set returns "" (defensive; unreachable through the
// form).
func Generate(rec refund.Record, now time.Time) string {
	if rec.Mode == refund.ModeSuperCoins {
		return superCoins(rec)
	}

	switch rec.Status {
	case refund.StatusProcessing:
		return processing(rec)
	case refund.StatusCompletedWithinSLA:
		return completedWithin(rec, now)
	case refund.StatusCompletedPostSLA:
		return completedPost(rec, now)
	}
	return ""
}

func slaOrDefault(rec refund.Record) string {
	if s := strings.TrimSpace(rec.SLA); s != "" {
		return s
	}
	return DefaultSLAText
}

func superCoins(rec refund.Record) string {
	balance := rec.SuperCoinsBalance
	if balance == "" {
		balance = "XX"
	}

	var first string
	if rec.Status == refund.StatusCompletedPostSLA {
		first = fmt.Sprintf("%s SuperCoins have been credited for your Minutes order, and the balance of SuperCoins is %s.", rec.Amount, balance)
	} else {
		first = fmt.Sprintf("%s SuperCoins will be credited for your Minutes order by %s, and the balance of SuperCoins is %s.", rec.Amount, slaOrDefault(rec), balance)
	}

	return strings.Join([]string{
		first,
		"You can see the balance here: 1. Log in to the app and tap 'Accounts,' and the balance is available on the top right corner of the page. 2. SuperCoins balance is also available on the 'Orders' page.",
	}, "\n")
}

func processing(rec refund.Record) string {
	return strings.Join([]string{
		fmt.Sprintf("The refund of Rs %s for the order, although it was initiated to %s on %s, is still pending.", rec.Amount, rec.Mode, refund.FormatInputDate(rec.InitiatedAt)),
		"Usually refund should be completed or update will be shared within 2-4 hours.",
		"Once the refund process is completed, you'll receive an SMS. Meanwhile, you can also track it here: https://www.flipkart.com/account/orders.",
	}, "\n")
}

func completedWithin(rec refund.Record, now time.Time) string {
	today := refund.TodayLongForm(now)
	rrn := strings.TrimSpace(rec.RRN)
	sla := slaOrDefault(rec)

	firstLine := fmt.Sprintf("Rs %s for your Minutes order will be refunded to your %s in the next %s.", rec.Amount, rec.Mode, sla)
	if rrn != "" {
		firstLine = fmt.Sprintf("Rs %s for your Minutes order will be refunded to your %s in the next %s with your bank reference number %s.", rec.Amount, rec.Mode, sla, rrn)
	}

	switch rec.Mode {
	case refund.ModeNetBanking, refund.ModeNEFT, refund.ModeIMPS, refund.ModeDebitCard:
		return strings.Join([]string{firstLine, bankStatementLine(today), keywordLine}, "\n")

	case refund.ModeFlipkartUPI, refund.ModeUPI:
		return strings.Join([]string{firstLine, bankStatementLine(today), upiLine}, "\n")

	case refund.ModeCreditCard, refund.ModeCreditCardEMI:
		return strings.Join([]string{firstLine, cardStatementLine(today), billedLine}, "\n")

	case refund.ModeGiftCardWallet:
		return strings.Join([]string{
			fmt.Sprintf("I can see that the Gift Card refund of Rs %s has been completed on %s, and sent to the registered email address.", rec.Amount, today),
			"",
			"To view Gift Card balance: - {For App} Go to 'Saved credit/Debit & gift cards' under 'Account'. - {For Website} Go to 'My Profile' >> Select 'Gift Cards' under Payments.",
			"",
			"Gift Card is valid for one year from the date of purchase.",
			"SMS will be sent every time a customer uses a Gift Card or a refund of the Gift Card is initiated (easy transaction tracking).",
		}, "\n")

	case refund.ModeGiftCardQC:
		return strings.Join([]string{
			fmt.Sprintf("I can see that the refund of Rs %s for your order was added to the Gift Card on %s, and the details have been sent to the registered email address used to buy the Gift Card.", rec.Amount, today),
			"",
			"Steps to check Gift Card balance [Website Only]: Go to 'Gift Card' section >>> 'Check Gift Card Balance' >>> Enter the Gift Card number and PIN",
			"",
			"You can add the Card to the 'Wallet' section for ease of usage.",
			"",
			"If you are unable to find it, please follow these steps: - Click here: https://www.flipkart.com/account/orders - Select the particular order. - Tap 'Resend Gift Card' option.",
		}, "\n")
	}
	return ""
}

func completedPost(rec refund.Record, now time.Time) string {
	today := refund.TodayLongForm(now)

	lines := []string{
		fmt.Sprintf("Rs %s for the item was refunded to %s and should reflect in your account latest by %s.", rec.Amount, rec.Mode, today),
	}

	switch rec.Mode {
	case refund.ModeCreditCard, refund.ModeCreditCardEMI:
		lines = append(lines, cardStatementLine(today), billedLine)
	default:
		lines = append(lines, bankStatementLine(today))
		if strings.Contains(rec.Mode.String(), "UPI") {
			lines = append(lines, upiLine)
		} else {
			lines = append(lines, keywordLine)
		}
	}

	lines = append(lines,
		fmt.Sprintf("We've sent an SMS with the refund reference number %s that confirms that the refund has been received by their bank.", strings.TrimSpace(rec.RRN)),
		"If the refund amount is not visible then, I request you to contact the bank using the phone number on the back of your card and provide the refund reference number.",
		"If the bank does not assist you, escalate the issue to the bank's grievance cell.",
	)

	return strings.Join(lines, "\n")
}

// Lines splits a generated message for line-by-line display, dropping
// blank segments.
func Lines(message string) []string {
	var out []string
	for _, line := range strings.Split(message, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
