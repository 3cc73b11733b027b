package refund

import "strings"

// Mode is the payment channel a refund settles to.
type Mode int

const (
	ModeCreditCard Mode = iota
	ModeCreditCardEMI
	ModeUPI
	ModeDebitCard
	ModeNetBanking
	ModeNEFT
	ModeIMPS
	ModeFlipkartUPI
	ModeGiftCardWallet
	ModeGiftCardQC
	ModeSuperCoins
)

// Modes lists every mode in form display order.
var Modes = []Mode{
	ModeCreditCard,
	ModeCreditCardEMI,
	ModeUPI,
	ModeDebitCard,
	ModeNetBanking,
	ModeNEFT,
	ModeIMPS,
	ModeFlipkartUPI,
	ModeGiftCardWallet,
	ModeGiftCardQC,
	ModeSuperCoins,
}

func (m Mode) String() string {
	switch m {
	case ModeCreditCard:
		return "Credit Card"
	case ModeCreditCardEMI:
		return "Credit Card EMI"
	case ModeUPI:
		return "UPI"
	case ModeDebitCard:
		return "Debit Card"
	case ModeNetBanking:
		return "NetBanking"
	case ModeNEFT:
		return "NEFT"
	case ModeIMPS:
		return "IMPS"
	case ModeFlipkartUPI:
		return "Flipkart UPI"
	case ModeGiftCardWallet:
		return "Gift Card Wallet"
	case ModeGiftCardQC:
		return "Gift Card QC"
	case ModeSuperCoins:
		return "SuperCoins"
	}
	return "Unknown"
}

// Status is the refund's position in its lifecycle.
type Status int

const (
	StatusProcessing Status = iota
	StatusCompletedWithinSLA
	StatusCompletedPostSLA
)

// Statuses lists every status in form display order.
var Statuses = []Status{
	StatusProcessing,
	StatusCompletedWithinSLA,
	StatusCompletedPostSLA,
}

func (s Status) String() string {
	switch s {
	case StatusProcessing:
		return "Processing"
	case StatusCompletedWithinSLA:
		return "Completed (within 2-4 hours)"
	case StatusCompletedPostSLA:
		return "Completed (post 2-4 hours)"
	}
	return "Unknown"
}

// Record is the working refund record a response is generated from.
// It lives for a single generate cycle and is never persisted.
type Record struct {
	Amount            string // digits only, no currency symbol
	RRN               string // bank reference number, optional
	InitiatedAt       string // display-format date, e.g. "28 Dec 25, 02:44 am"
	Mode              Mode
	Status            Status
	SLA               string // promised completion date/time, optional
	SuperCoinsBalance string // only consulted when Mode is SuperCoins
}

// ParseMode normalizes free-text mode wording to a Mode. Matching is
// case-insensitive substring with fixed precedence, so "Credit Card EMI"
// resolves before "Credit Card" and "Flipkart UPI" before "UPI".
// Gift Card QC is never inferred from text; any gift-card wording buckets
// into Gift Card Wallet. Unrecognized text returns ok=false.
func ParseMode(s string) (Mode, bool) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return 0, false
	}

	switch {
	case strings.Contains(t, "credit card emi"):
		return ModeCreditCardEMI, true
	case strings.Contains(t, "credit card"):
		return ModeCreditCard, true
	case strings.Contains(t, "fk upi"), strings.Contains(t, "flipkart upi"):
		return ModeFlipkartUPI, true
	case strings.Contains(t, "upi"):
		return ModeUPI, true
	case strings.Contains(t, "debit"):
		return ModeDebitCard, true
	case strings.Contains(t, "net") && strings.Contains(t, "banking"):
		return ModeNetBanking, true
	case strings.Contains(t, "neft"):
		return ModeNEFT, true
	case strings.Contains(t, "imps"):
		return ModeIMPS, true
	case strings.Contains(t, "coin"):
		return ModeSuperCoins, true
	case strings.Contains(t, "gc"), strings.Contains(t, "gift card"):
		return ModeGiftCardWallet, true
	}

	return 0, false
}
