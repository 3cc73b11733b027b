package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"refundly/internal/config"
	"refundly/internal/extract"
	"refundly/internal/refund"
	"refundly/internal/snippet"
)

// Form field indexes. Text fields come first, selectors last; focus cycles
// through them in this order.
const (
	fieldAmount = iota
	fieldRRN
	fieldInitDate
	fieldSLA
	fieldBalance
	fieldMode
	fieldStatus
	fieldCount
)

type state struct {
	config *config.Config

	// Form
	inputs    []textinput.Model // fieldAmount..fieldBalance
	modeIdx   int
	statusIdx int
	focus     int

	// Paste-to-fill
	pasteArea   textarea.Model
	lastExtract *extract.Result

	// Result
	generated  string
	lines      []string
	lineCursor int

	// Snippets
	snippets   []snippet.Snippet
	snippetIdx int

	// Toast
	toast string
}

func newState(cfg *config.Config) *state {
	amount := textinput.New()
	amount.Placeholder = "499"
	amount.CharLimit = 12
	amount.Width = 40

	rrn := textinput.New()
	rrn.Placeholder = "Reference Number (optional)"
	rrn.CharLimit = 40
	rrn.Width = 40

	initDate := textinput.New()
	initDate.Placeholder = "e.g. 28 Dec 25, 02:44 am"
	initDate.CharLimit = 40
	initDate.Width = 40

	sla := textinput.New()
	sla.Placeholder = "e.g. 03 Feb 26, 08:47 AM (optional)"
	sla.CharLimit = 40
	sla.Width = 40

	balance := textinput.New()
	balance.Placeholder = "Current SuperCoins balance (e.g. 120)"
	balance.CharLimit = 12
	balance.Width = 40

	paste := textarea.New()
	paste.Placeholder = "Paste refund details here..."
	paste.CharLimit = 0
	paste.SetWidth(64)
	paste.SetHeight(10)

	s := &state{
		config:    cfg,
		inputs:    []textinput.Model{amount, rrn, initDate, sla, balance},
		pasteArea: paste,
		snippets:  buildSnippets(cfg),
	}

	if cfg != nil {
		if mode, ok := refund.ParseMode(cfg.DefaultMode); ok {
			s.modeIdx = modeIndex(mode)
		}
		s.statusIdx = statusIndexByName(cfg.DefaultStatus)
	}

	s.inputs[fieldAmount].Focus()
	return s
}

func buildSnippets(cfg *config.Config) []snippet.Snippet {
	list := snippet.Catalog()
	if cfg == nil {
		return list
	}
	for _, cs := range cfg.Snippets {
		category := cs.Category
		if category == "" {
			category = "Custom"
		}
		list = append(list, snippet.Snippet{Category: category, Label: cs.Label, Text: cs.Text})
	}
	return list
}

func modeIndex(mode refund.Mode) int {
	for i, m := range refund.Modes {
		if m == mode {
			return i
		}
	}
	return 0
}

func statusIndex(status refund.Status) int {
	for i, s := range refund.Statuses {
		if s == status {
			return i
		}
	}
	return 0
}

func statusIndexByName(name string) int {
	for i, s := range refund.Statuses {
		if s.String() == name {
			return i
		}
	}
	return 0
}

func (s *state) mode() refund.Mode {
	return refund.Modes[s.modeIdx]
}

func (s *state) status() refund.Status {
	return refund.Statuses[s.statusIdx]
}

// record assembles the working refund record from the form.
func (s *state) record() refund.Record {
	return refund.Record{
		Amount:            s.inputs[fieldAmount].Value(),
		RRN:               s.inputs[fieldRRN].Value(),
		InitiatedAt:       s.inputs[fieldInitDate].Value(),
		SLA:               s.inputs[fieldSLA].Value(),
		SuperCoinsBalance: s.inputs[fieldBalance].Value(),
		Mode:              s.mode(),
		Status:            s.status(),
	}
}

// reset clears the form back to config defaults.
func (s *state) reset() {
	for i := range s.inputs {
		s.inputs[i].Reset()
	}
	s.modeIdx = 0
	s.statusIdx = 0
	if s.config != nil {
		if mode, ok := refund.ParseMode(s.config.DefaultMode); ok {
			s.modeIdx = modeIndex(mode)
		}
		s.statusIdx = statusIndexByName(s.config.DefaultStatus)
	}
	s.generated = ""
	s.lines = nil
	s.lineCursor = 0
	s.lastExtract = nil
	s.setFocus(fieldAmount)
}

// fieldVisible reports whether a field participates in focus cycling.
// The balance field only exists for SuperCoins.
func (s *state) fieldVisible(field int) bool {
	if field == fieldBalance {
		return s.mode() == refund.ModeSuperCoins
	}
	return true
}

func (s *state) setFocus(field int) {
	s.focus = field
	for i := range s.inputs {
		if i == field {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s *state) nextField() {
	f := s.focus
	for {
		f = (f + 1) % fieldCount
		if s.fieldVisible(f) {
			break
		}
	}
	s.setFocus(f)
}

func (s *state) prevField() {
	f := s.focus
	for {
		f--
		if f < 0 {
			f = fieldCount - 1
		}
		if s.fieldVisible(f) {
			break
		}
	}
	s.setFocus(f)
}

// sanitizeAmount strips anything that is not a digit from the amount
// field, mirroring the numeric-only restriction of the form.
func (s *state) sanitizeAmount() {
	v := s.inputs[fieldAmount].Value()
	digits := make([]rune, 0, len(v))
	for _, r := range v {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	if len(digits) != len(v) {
		s.inputs[fieldAmount].SetValue(string(digits))
	}
}
