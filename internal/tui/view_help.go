package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderHelp() string {
	var b strings.Builder

	title := styleTitle.Render("Help")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	workflow := []string{
		"  Fill the form (or paste raw refund text with Ctrl+P and",
		"  extract it with Ctrl+E), then press Enter to generate the",
		"  response. Copy the full message, single lines, or the SMS",
		"  preview from the result screen.",
	}
	workflowBox := styleBox.Copy().
		Width(58).
		Render(strings.Join(workflow, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, workflowBox))
	b.WriteString("\n\n")

	shortcutsTitle := styleSubtitle.Render("Keyboard Shortcuts")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsTitle))
	b.WriteString("\n\n")

	shortcuts := []string{
		"  Tab / Shift+Tab   Move between fields",
		"  Left / Right      Change mode or status",
		"  Enter             Generate response",
		"  Ctrl+P            Paste-to-fill extractor",
		"  Ctrl+S            Quick snippets",
		"  Ctrl+R            Reset form",
		"  Esc               Back / Quit",
	}
	shortcutsBox := styleBox.Copy().
		Width(58).
		Render(strings.Join(shortcuts, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, shortcutsBox))
	b.WriteString("\n\n")

	instructions := styleStatusBar.Render("[Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, instructions))

	return a.centerVertically(b.String())
}
