package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"refundly/internal/extract"
)

var fieldLabels = [fieldCount]string{
	fieldAmount:   "Refund Amount (Rs)",
	fieldRRN:      "RRN (Optional)",
	fieldInitDate: "Refund Initiated Date",
	fieldSLA:      "SLA Deadline (Optional)",
	fieldBalance:  "SuperCoins Balance",
	fieldMode:     "Refund Mode",
	fieldStatus:   "Status",
}

func (a *App) renderForm() string {
	var b strings.Builder

	title := styleTitle.Render("Refund Response")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, title))
	b.WriteString("\n")

	subtitle := styleSubtitle.Render("Generate standardized customer support messages")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, subtitle))
	b.WriteString("\n\n")

	boxWidth := min(64, a.width-4)

	var form []string
	for field := 0; field < fieldCount; field++ {
		if !a.state.fieldVisible(field) {
			continue
		}

		label := styleLabel.Render(fieldLabels[field])
		if field == a.state.focus {
			label = styleLabelFocused.Render(fieldLabels[field])
		}
		form = append(form, label)

		switch field {
		case fieldMode:
			form = append(form, a.renderSelector(a.state.mode().String(), field))
		case fieldStatus:
			form = append(form, a.renderSelector(a.state.status().String(), field))
		default:
			form = append(form, a.state.inputs[field].View())
		}
		form = append(form, "")
	}

	formBox := styleBox.Copy().
		Width(boxWidth).
		BorderForeground(colorSecondary).
		Render(strings.Join(form[:len(form)-1], "\n"))
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, formBox))
	b.WriteString("\n\n")

	if a.state.lastExtract != nil && !a.state.lastExtract.Empty() {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center,
			styleSubtitle.Render(extractSummary(a.state.lastExtract))))
		b.WriteString("\n\n")
	}

	if a.state.toast != "" {
		b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, styleToast.Render(a.state.toast)))
		b.WriteString("\n\n")
	}

	statusBar := styleStatusBar.Render("[Enter] Generate  [Tab] Next  [Ctrl+P] Paste-to-fill  [Ctrl+S] Snippets  [Ctrl+R] Reset  [Ctrl+H] Help  [Esc] Quit")
	b.WriteString(lipgloss.PlaceHorizontal(a.width, lipgloss.Center, statusBar))

	return a.centerVertically(b.String())
}

// renderSelector draws a left/right cycling option the way a dropdown
// collapses in the terminal.
func (a *App) renderSelector(value string, field int) string {
	line := fmt.Sprintf("< %s >", value)
	if field == a.state.focus {
		return lipgloss.NewStyle().Foreground(colorSecondary).Bold(true).Render(line)
	}
	return lipgloss.NewStyle().Foreground(colorWhite).Render(line)
}

func extractSummary(res *extract.Result) string {
	var parts []string
	if res.Amount != "" {
		parts = append(parts, "Amount: "+res.Amount)
	}
	if res.HasMode {
		parts = append(parts, "Mode: "+res.Mode.String())
	}
	if res.HasStatus {
		parts = append(parts, "Status: "+res.Status.String())
	}
	if res.SLA != "" {
		parts = append(parts, "SLA: "+res.SLA)
	}
	if res.RRN != "" {
		parts = append(parts, "RRN: "+res.RRN)
	}
	return "Extracted - " + strings.Join(parts, "  |  ")
}

func (a *App) centerVertically(content string) string {
	lines := strings.Count(content, "\n") + 1
	padding := (a.height - lines) / 2
	if padding < 0 {
		padding = 0
	}
	return strings.Repeat("\n", padding) + content
}
