package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/minisa/internal/assets"
	"github.com/jask/minisa/internal/components"
	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/theme"
)

type splashScreen struct{}

func newSplashScreen() *splashScreen { return &splashScreen{} }

func (s *splashScreen) ID() nav.ScreenID               { return "" }
func (s *splashScreen) Title() string                  { return "" }
func (s *splashScreen) Scope() string                  { return scopeSplash }
func (s *splashScreen) Update(*Model, tea.Msg) tea.Cmd { return nil }
func (s *splashScreen) Teardown()                      {}

func (s *splashScreen) View(m *Model, width, height int) string {
	block := lipgloss.JoinVertical(lipgloss.Center,
		m.art.Image(assets.BeingCreative),
		"",
		m.theme.Text(theme.CaptionRegular, theme.LabelDisabled).Render(m.cfg.UI.Version),
	)
	return centerBlock(block, width, height)
}

// buttonColumn is a vertical list of buttons with a single focus.
type buttonColumn struct {
	buttons []components.Button
	focus   int
}

func (c *buttonColumn) move(delta int) {
	if len(c.buttons) == 0 {
		return
	}
	c.focus = (c.focus + delta + len(c.buttons)) % len(c.buttons)
}

func (c buttonColumn) view(m *Model, width int) string {
	rows := make([]string, 0, 2*len(c.buttons))
	for i, b := range c.buttons {
		b.Focused = i == c.focus
		b.Width = width
		if i > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, b.View(m.theme, m.spinner.View()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

type welcomeScreen struct {
	col buttonColumn
}

func newWelcomeScreen() *welcomeScreen {
	return &welcomeScreen{col: buttonColumn{buttons: []components.Button{
		components.NewPrimaryButton("Login"),
		components.NewSecondaryButton("Sign Up"),
	}}}
}

func (s *welcomeScreen) ID() nav.ScreenID { return "" }
func (s *welcomeScreen) Title() string    { return "Welcome" }
func (s *welcomeScreen) Scope() string    { return scopeWelcome }
func (s *welcomeScreen) Teardown()        {}

func (s *welcomeScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case m.keys.IsAction(km, actionNext, s.Scope()):
		s.col.move(1)
	case m.keys.IsAction(km, actionPrev, s.Scope()):
		s.col.move(-1)
	case m.keys.IsAction(km, actionActivate, s.Scope()):
		target := nav.LoginForm
		if s.col.focus == 1 {
			target = nav.SignupForm
		}
		return s.col.buttons[s.col.focus].Press(func() tea.Cmd {
			m.Push(target)
			return nil
		})
	}
	return nil
}

func (s *welcomeScreen) View(m *Model, width, height int) string {
	th := m.theme
	fw := m.formWidth(width)
	block := lipgloss.JoinVertical(lipgloss.Center,
		m.art.Image(assets.TeamPeople),
		"",
		th.Text(theme.TitleLarge, theme.LabelDefault).Render("Hello"),
		th.Text(theme.BodyRegular, theme.LabelDisabled).
			Width(fw).Align(lipgloss.Center).
			Render("Welcome to MiniSA, a small playground for our design system."),
		"",
		s.col.view(m, fw),
	)
	return centerBlock(block, width, height)
}

type landingScreen struct {
	logout components.Button
}

func newLandingScreen() *landingScreen {
	return &landingScreen{logout: components.NewSecondaryButton("Logout")}
}

func (s *landingScreen) ID() nav.ScreenID { return "" }
func (s *landingScreen) Title() string    { return "Home" }
func (s *landingScreen) Scope() string    { return scopeLanding }
func (s *landingScreen) Teardown()        {}

func (s *landingScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.keys.IsAction(km, actionActivate, s.Scope()) {
		return nil
	}
	return s.logout.Press(func() tea.Cmd {
		m.session.SetLoggedOut()
		m.SetStatus("Logged out")
		return nil
	})
}

func (s *landingScreen) View(m *Model, width, height int) string {
	b := s.logout
	b.Focused = true
	block := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Text(theme.TitleRegular, theme.LabelDefault).Render("This is landing page"),
		"",
		b.View(m.theme, ""),
	)
	return centerBlock(block, width, height)
}

// fallbackScreen stands in for any stack entry without a view.
type fallbackScreen struct {
	id nav.ScreenID
}

func newFallbackScreen(id nav.ScreenID) *fallbackScreen {
	return &fallbackScreen{id: id}
}

func (s *fallbackScreen) ID() nav.ScreenID { return s.id }
func (s *fallbackScreen) Title() string    { return "Unavailable" }
func (s *fallbackScreen) Scope() string    { return scopeFallback }
func (s *fallbackScreen) Teardown()        {}

func (s *fallbackScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && m.keys.IsAction(km, actionBack, s.Scope()) {
		m.nav.Pop()
		m.SetStatus("Ready")
	}
	return nil
}

func (s *fallbackScreen) View(m *Model, width, height int) string {
	rows := []string{m.theme.Text(theme.TitleRegular, theme.LabelDefault).Render("Unavailable screen")}
	if id, ok := m.nav.Suggest(s.id); ok && id != s.id {
		rows = append(rows, "", m.theme.Text(theme.CaptionRegular, theme.LabelDisabled).
			Render(fmt.Sprintf("Did you mean %s?", id)))
	}
	return centerBlock(lipgloss.JoinVertical(lipgloss.Center, rows...), width, height)
}
