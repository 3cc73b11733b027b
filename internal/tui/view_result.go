package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderResult() string {
	var b strings.Builder

	title := styleTitle.Render("Full Response")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n\n")

	boxWidth := min(74, a.width-4)

	fullBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorPrimary).
		Render(a.state.generated)
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, fullBox))
	b.WriteString("\n\n")

	breakdownLabel := styleSubtitle.Render("Line-by-Line Breakdown")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, breakdownLabel))
	b.WriteString("\n")

	var lines []string
	for i, line := range a.state.lines {
		cursor := "  "
		style := lipgloss.NewStyle().Foreground(colorMuted)
		if i == a.state.lineCursor {
			cursor = "> "
			style = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%d. %s", cursor, i+1, truncate(line, boxWidth-8))))
	}

	breakdownBox := styleBox.Copy().
		Width(boxWidth).
		Render(strings.Join(lines, "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, breakdownBox))
	b.WriteString("\n\n")

	if a.state.toast != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleToast.Render(a.state.toast)))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[a] Copy All  [c] Copy Line  [m] Copy SMS  [Up/Down] Select  [Ctrl+S] Snippets  [n] New  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
