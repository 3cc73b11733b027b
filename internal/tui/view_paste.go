package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (a *App) renderPaste() string {
	var b strings.Builder

	title := styleTitle.Render("Refund Data Extractor")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Paste the raw refund text below to auto-fill the form")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	areaBox := styleBox.Copy().
		Width(min(70, a.width-4)).
		BorderForeground(colorSecondary).
		Render(a.state.pasteArea.View())
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, areaBox))
	b.WriteString("\n\n")

	if a.state.toast != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleToast.Render(a.state.toast)))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[Ctrl+E] Extract & Fill  [Esc] Back")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}
