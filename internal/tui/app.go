package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"refundly/internal/config"
	"refundly/internal/extract"
	"refundly/internal/refund"
	"refundly/internal/respond"
	"refundly/internal/snippet"
)

type view int

const (
	viewForm view = iota
	viewPaste
	viewResult
	viewSnippets
	viewHelp
)

const toastDuration = 3 * time.Second

type App struct {
	width    int
	height   int
	view     view
	state    *state
	now      func() time.Time
	quitting bool
}

func NewApp(cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &App{
		view:  viewForm,
		state: newState(cfg),
		now:   time.Now,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(tea.WindowSize(), textinput.Blink)
}

type toastMsg struct{ text string }
type clearToastMsg struct{}

func showToast(text string) tea.Cmd {
	return func() tea.Msg { return toastMsg{text} }
}

func clearToastAfter() tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return clearToastMsg{}
	})
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := a.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case toastMsg:
		a.state.toast = msg.text
		return a, clearToastAfter()

	case clearToastMsg:
		a.state.toast = ""
		return a, nil
	}

	// Route remaining messages to whichever input owns the focus.
	switch a.view {
	case viewForm:
		if a.state.focus < len(a.state.inputs) {
			var cmd tea.Cmd
			a.state.inputs[a.state.focus], cmd = a.state.inputs[a.state.focus].Update(msg)
			cmds = append(cmds, cmd)
			a.state.sanitizeAmount()
		}
	case viewPaste:
		var cmd tea.Cmd
		a.state.pasteArea, cmd = a.state.pasteArea.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.Quit) {
		a.quitting = true
		return tea.Quit
	}

	switch a.view {
	case viewForm:
		return a.handleFormKey(msg)
	case viewPaste:
		return a.handlePasteKey(msg)
	case viewResult:
		return a.handleResultKey(msg)
	case viewSnippets:
		return a.handleSnippetsKey(msg)
	case viewHelp:
		if key.Matches(msg, keys.Back) {
			a.view = viewForm
		}
	}
	return nil
}

func (a *App) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.quitting = true
		return tea.Quit

	case key.Matches(msg, keys.Next), key.Matches(msg, keys.Down):
		a.state.nextField()
		return textinput.Blink

	case key.Matches(msg, keys.Prev), key.Matches(msg, keys.Up):
		a.state.prevField()
		return textinput.Blink

	case key.Matches(msg, keys.Left):
		switch a.state.focus {
		case fieldMode:
			a.state.modeIdx = (a.state.modeIdx + len(refund.Modes) - 1) % len(refund.Modes)
		case fieldStatus:
			a.state.statusIdx = (a.state.statusIdx + len(refund.Statuses) - 1) % len(refund.Statuses)
		}
		return nil

	case key.Matches(msg, keys.Right):
		switch a.state.focus {
		case fieldMode:
			a.state.modeIdx = (a.state.modeIdx + 1) % len(refund.Modes)
		case fieldStatus:
			a.state.statusIdx = (a.state.statusIdx + 1) % len(refund.Statuses)
		}
		return nil

	case key.Matches(msg, keys.Enter):
		return a.handleGenerate()

	case key.Matches(msg, keys.Paste):
		a.view = viewPaste
		a.state.pasteArea.Focus()
		return textinput.Blink

	case key.Matches(msg, keys.Snippets):
		a.view = viewSnippets
		return nil

	case key.Matches(msg, keys.Reset):
		a.state.reset()
		return showToast("Form reset")

	case key.Matches(msg, keys.Help):
		a.view = viewHelp
		return nil
	}
	return nil
}

// handleGenerate assembles the record, promotes the status against the
// clock when the SLA deadline has passed, and renders the message.
func (a *App) handleGenerate() tea.Cmd {
	rec := a.state.record()
	rec.Status = refund.PromoteStatus(rec, a.now())
	a.state.statusIdx = statusIndex(rec.Status)

	message := respond.Generate(rec, a.now())
	if message == "" {
		return showToast("Error generating response")
	}

	a.state.generated = message
	a.state.lines = respond.Lines(message)
	a.state.lineCursor = 0
	a.view = viewResult
	return nil
}

func (a *App) handlePasteKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForm
		a.state.pasteArea.Blur()
		return nil

	case key.Matches(msg, keys.Extract):
		return a.handleExtract()
	}
	return nil
}

// handleExtract runs the extractor over the pasted text and fills the
// form with whatever it recovered, leaving unrecovered fields alone.
func (a *App) handleExtract() tea.Cmd {
	res := extract.Extract(a.state.pasteArea.Value())
	a.state.lastExtract = &res

	if res.Empty() {
		return showToast("No refund fields recognized")
	}

	if res.Amount != "" {
		a.state.inputs[fieldAmount].SetValue(res.Amount)
	}
	if res.HasMode {
		a.state.modeIdx = modeIndex(res.Mode)
	}
	if res.SLA != "" {
		a.state.inputs[fieldSLA].SetValue(refund.TrimSLA(res.SLA, a.now()))
	}
	if res.HasStatus {
		a.state.statusIdx = statusIndex(res.Status)
	}
	if res.InitiatedAt != "" {
		a.state.inputs[fieldInitDate].SetValue(res.InitiatedAt)
	}
	if res.RRN != "" {
		a.state.inputs[fieldRRN].SetValue(res.RRN)
	}

	a.view = viewForm
	a.state.pasteArea.Blur()
	return showToast("Data extracted!")
}

func (a *App) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForm
		return nil

	case key.Matches(msg, keys.Up):
		if a.state.lineCursor > 0 {
			a.state.lineCursor--
		}
		return nil

	case key.Matches(msg, keys.Down):
		if a.state.lineCursor < len(a.state.lines)-1 {
			a.state.lineCursor++
		}
		return nil

	case key.Matches(msg, keys.Snippets):
		a.view = viewSnippets
		return nil
	}

	switch msg.String() {
	case "a":
		return copyToClipboard(a.state.generated)
	case "c":
		if len(a.state.lines) > 0 {
			return copyToClipboard(a.state.lines[a.state.lineCursor])
		}
	case "m":
		return copyToClipboard(snippet.SMSPreview(a.state.generated))
	case "n":
		a.state.reset()
		a.view = viewForm
	}
	return nil
}

func (a *App) handleSnippetsKey(msg tea.KeyMsg) tea.Cmd {
	entries := a.snippetEntries()
	if a.state.snippetIdx >= len(entries) {
		a.state.snippetIdx = len(entries) - 1
	}
	if a.state.snippetIdx < 0 {
		a.state.snippetIdx = 0
	}

	switch {
	case key.Matches(msg, keys.Back):
		a.view = viewForm
		return nil

	case key.Matches(msg, keys.Up):
		if a.state.snippetIdx > 0 {
			a.state.snippetIdx--
		}
		return nil

	case key.Matches(msg, keys.Down):
		if a.state.snippetIdx < len(entries)-1 {
			a.state.snippetIdx++
		}
		return nil

	case key.Matches(msg, keys.Enter):
		if len(entries) > 0 {
			return copyToClipboard(entries[a.state.snippetIdx].Text)
		}
	}

	if msg.String() == "c" && len(entries) > 0 {
		return copyToClipboard(entries[a.state.snippetIdx].Text)
	}
	return nil
}

// snippetEntries is the catalog plus the live entries: the hour-based SMS
// suggestion and, once a message exists, its SMS preview.
func (a *App) snippetEntries() []snippet.Snippet {
	entries := make([]snippet.Snippet, 0, len(a.state.snippets)+2)
	entries = append(entries, a.state.snippets...)
	entries = append(entries, snippet.TimeSuggestionIn(a.now(), a.state.config.Zone()))

	if a.state.generated != "" {
		entries = append(entries, snippet.Snippet{
			Category: "SMS to be sent",
			Label:    "Flipkart Update",
			Text:     snippet.SMSPreview(a.state.generated),
		})
	}
	return entries
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}

	switch a.view {
	case viewForm:
		return a.renderForm()
	case viewPaste:
		return a.renderPaste()
	case viewResult:
		return a.renderResult()
	case viewSnippets:
		return a.renderSnippets()
	case viewHelp:
		return a.renderHelp()
	default:
		return a.renderForm()
	}
}
