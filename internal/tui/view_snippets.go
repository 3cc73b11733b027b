package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderSnippets() string {
	var b strings.Builder

	title := styleTitle.Render("Quick Snippets")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(70, a.width-4)
	entries := a.snippetEntries()

	if a.state.snippetIdx >= len(entries) {
		a.state.snippetIdx = len(entries) - 1
	}

	var lines []string
	lastCategory := ""
	for i, entry := range entries {
		if entry.Category != lastCategory {
			if lastCategory != "" {
				lines = append(lines, "")
			}
			lines = append(lines, styleSubtitle.Render(strings.ToUpper(entry.Category)))
			lastCategory = entry.Category
		}

		cursor := "  "
		labelStyle := lipgloss.NewStyle().Foreground(colorMuted)
		textStyle := lipgloss.NewStyle().Foreground(colorWhite)
		if i == a.state.snippetIdx {
			cursor = "> "
			labelStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
			textStyle = textStyle.Bold(true)
		}

		lines = append(lines, cursor+labelStyle.Render("["+entry.Label+"]"))
		lines = append(lines, "  "+textStyle.Render(truncate(entry.Text, boxWidth-6)))
	}

	listBox := styleBox.Copy().
		Width(boxWidth).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, listBox))
	b.WriteString("\n\n")

	if a.state.toast != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleToast.Render(a.state.toast)))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[Up/Down] Navigate  [Enter/c] Copy  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
