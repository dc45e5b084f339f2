package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/minisa/internal/theme"
)

// InfoSheet is a modal card with an optional close affordance and an
// optional call to action under its content.
type InfoSheet struct {
	ShowClose bool
	CTATitle  string
	Content   string
}

// View renders the sheet at the given width, close marker top right.
func (s InfoSheet) View(th theme.Theme, width int, spinner string) string {
	inner := max(10, width-4)
	rows := make([]string, 0, 3)
	if s.ShowClose {
		closeMark := th.Text(theme.BodyRegular, theme.LabelDisabled).Render("esc ✕")
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Right, closeMark))
	}
	rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, s.Content))
	if s.CTATitle != "" {
		cta := NewPrimaryButton(s.CTATitle)
		cta.Focused = true
		cta.Width = max(1, inner-2*theme.Regular.Cells())
		rows = append(rows, "", lipgloss.PlaceHorizontal(inner, lipgloss.Center, cta.View(th, spinner)))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Color(theme.BorderDefault)).
		Padding(0, 1).
		Width(inner + 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Toast renders a transient notification banner.
func Toast(th theme.Theme, message string, width int) string {
	return lipgloss.NewStyle().
		Foreground(th.Color(theme.LabelStaticWhite)).
		Background(th.Color(theme.ButtonActive)).
		Padding(0, theme.Small.Cells()).
		MaxWidth(max(1, width)).
		Render(message)
}
