package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if text == "" {
			return toastMsg{"Nothing to copy"}
		}
		if err := clipboardWriteAll(text); err != nil {
			return toastMsg{"Copy failed: " + err.Error()}
		}
		return toastMsg{"Copied to clipboard!"}
	}
}
