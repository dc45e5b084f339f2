package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/minisa/internal/assets"
	"github.com/jask/minisa/internal/components"
	"github.com/jask/minisa/internal/flow"
	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/theme"
	"github.com/jask/minisa/internal/validate"
)

// Focus order on the login form.
const (
	loginUsername = iota
	loginPassword
	loginSubmit
	loginForgot
)

type loginScreen struct {
	username components.InputField
	password components.InputField
	focus    int
	flow     *flow.Login
}

// newLoginScreen builds the form, pre-filling the registered username.
func newLoginScreen(m *Model) (*loginScreen, tea.Cmd) {
	s := &loginScreen{
		username: components.NewInputField("login.username", "Username", validate.Text).
			WithShakeStep(m.cfg.Shake.Step),
		password: components.NewInputField("login.password", "Password", validate.Password).
			WithShakeStep(m.cfg.Shake.Step),
		flow: flow.NewLogin(m.cfg.Auth.Delay, m.log),
	}
	start := loginUsername
	if name, ok := m.session.RegisteredUsername(); ok {
		s.username.SetValue(name)
		start = loginPassword
	}
	return s, s.setFocus(start)
}

func (s *loginScreen) ID() nav.ScreenID { return nav.LoginForm }
func (s *loginScreen) Title() string    { return "Login" }
func (s *loginScreen) Scope() string    { return scopeLogin }
func (s *loginScreen) Loading() bool    { return s.flow.Loading() }

func (s *loginScreen) Teardown() {
	s.flow.Cancel()
	s.username.Cancel()
	s.password.Cancel()
}

// count is the number of focusable items. Forgot password is hidden while
// a submit is in flight.
func (s *loginScreen) count() int {
	if s.flow.Loading() {
		return loginForgot
	}
	return loginForgot + 1
}

func (s *loginScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	s.username.Blur()
	s.password.Blur()
	switch i {
	case loginUsername:
		return s.username.Focus()
	case loginPassword:
		return s.password.Focus()
	}
	return nil
}

func (s *loginScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case flow.LoginResultMsg:
		out := s.flow.Resolve(msg, m.session, m.nav)
		if !out.Handled {
			return nil
		}
		switch out.Phase {
		case flow.Success:
			m.SetStatus("Signed in")
		case flow.Failure:
			m.SetError(s.flow.Err())
		}
		if out.Toast != "" {
			return m.ShowToast(out.Toast)
		}
		return nil
	case tea.KeyMsg:
		scope := s.Scope()
		switch {
		case m.keys.IsAction(msg, actionBack, scope):
			m.nav.Pop()
			return nil
		case m.keys.IsAction(msg, actionNext, scope):
			return s.setFocus((s.focus + 1) % s.count())
		case m.keys.IsAction(msg, actionPrev, scope):
			return s.setFocus((s.focus - 1 + s.count()) % s.count())
		case m.keys.IsAction(msg, actionReveal, scope):
			s.password.ToggleSecured()
			return nil
		case m.keys.IsAction(msg, actionActivate, scope):
			return s.activate(m)
		}
		if s.flow.Loading() {
			return nil
		}
	}
	var c1, c2 tea.Cmd
	s.username, c1 = s.username.Update(msg)
	s.password, c2 = s.password.Update(msg)
	return tea.Batch(c1, c2)
}

func (s *loginScreen) activate(m *Model) tea.Cmd {
	switch s.focus {
	case loginUsername:
		return s.setFocus(loginPassword)
	case loginForgot:
		m.Push(nav.ForgotPasswordForm)
		return nil
	}
	return s.submitButton().Press(func() tea.Cmd {
		cmd := s.flow.Submit(m.ctx, s.username.Value(), s.password.Value())
		if cmd == nil {
			m.SetStatus("Enter your username and password")
			return nil
		}
		m.SetStatus("Signing in…")
		return tea.Batch(cmd, m.startSpinner())
	})
}

func (s *loginScreen) submitButton() components.Button {
	b := components.NewPrimaryButton("Sign in")
	b.Loading = s.flow.Loading()
	b.Focused = s.focus == loginSubmit
	return b
}

func (s *loginScreen) View(m *Model, width, height int) string {
	th := m.theme
	fw := m.formWidth(width)

	rows := []string{
		m.art.Image(assets.Strategy),
		th.Text(theme.TitleLarge, theme.LabelDefault).Render("Login"),
		"",
		s.username.View(th, fw),
		s.password.View(th, fw),
		"",
	}
	submit := s.submitButton()
	submit.Width = fw - 4
	rows = append(rows, submit.View(th, m.spinner.View()))
	if !s.flow.Loading() {
		forgot := components.NewSecondaryButton("Forgot password")
		forgot.Size = components.SizeSmall
		forgot.Focused = s.focus == loginForgot
		forgot.Width = fw - 4
		rows = append(rows, forgot.View(th, ""))
	}
	return centerBlock(lipgloss.JoinVertical(lipgloss.Center, rows...), width, height)
}
