package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/minisa/internal/assets"
	"github.com/jask/minisa/internal/components"
	"github.com/jask/minisa/internal/theme"
)

const (
	sheetTitle = "Oops, not quite ready!"
	sheetBody  = "This feature is currently under construction. Our devs are working their magic, check back soon! 🛠️✨"
	sheetCTA   = "Alright!"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	width := max(1, m.width)
	header := m.renderHeader(width)
	status := m.renderStatusBar(width)
	footer := m.renderFooter(width)
	bodyHeight := max(0, m.height-lipgloss.Height(header)-lipgloss.Height(status)-lipgloss.Height(footer))

	var body string
	if bodyHeight > 0 {
		body = m.Active().View(&m, width, bodyHeight)
		body = fitHeight(body, bodyHeight)
		if m.splash == nil && m.nav.Sheet.Visible() {
			body = components.Center(body, m.renderSheet(width), width, bodyHeight)
		}
		if t := m.session.Toast; t.Visible() {
			body = components.Bottom(body, components.Toast(m.theme, t.Message(), width-2), width, bodyHeight)
		}
	}
	view := strings.Join([]string{header, status, body, footer}, "\n")
	return fitHeight(view, max(1, m.height))
}

func (m Model) renderSheet(width int) string {
	th := m.theme
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.art.Image(assets.HotAirBalloon),
		"",
		th.Text(theme.TitleLarge, theme.LabelDefault).Render(sheetTitle),
		"",
		th.Text(theme.BodyRegular, theme.LabelDefault).
			Width(m.formWidth(width)-4).
			Align(lipgloss.Center).
			Render(sheetBody),
	)
	sheet := components.InfoSheet{ShowClose: true, CTATitle: sheetCTA, Content: content}
	return sheet.View(th, m.formWidth(width), "")
}

func (m Model) renderHeader(width int) string {
	style := lipgloss.NewStyle().
		Background(m.theme.Color(theme.ButtonActive)).
		Foreground(m.theme.Color(theme.LabelStaticWhite))
	left := style.Bold(true).Render("MiniSA")
	right := style.Render(m.Active().Title())
	gap := max(1, width-ansi.StringWidth(left)-ansi.StringWidth(right))
	return renderBar(style, width, left+style.Render(strings.Repeat(" ", gap))+right)
}

func (m Model) renderStatusBar(width int) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	color := theme.LabelDisabled
	if m.statusErr {
		color = theme.ButtonNegative
	}
	return renderBar(lipgloss.NewStyle().Foreground(m.theme.Color(color)), width, msg)
}

func (m Model) renderFooter(width int) string {
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Color(theme.ButtonActive)).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Color(theme.LabelDisabled))

	bindings := m.keys.BindingsForScope(m.ActiveScope())
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		if len(b.Keys) == 0 {
			continue
		}
		h := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description)).Help()
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, "  ")
	if line == "" {
		line = descStyle.Render("No shortcuts")
	}
	return renderBar(lipgloss.NewStyle(), width, line)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := ansi.Truncate(strings.ReplaceAll(text, "\n", " "), width, "")
	if w := ansi.StringWidth(line); w < width {
		line += strings.Repeat(" ", width-w)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// centerBlock places block in the middle of a width x height area.
func centerBlock(block string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}
