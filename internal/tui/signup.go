package tui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/minisa/internal/assets"
	"github.com/jask/minisa/internal/components"
	"github.com/jask/minisa/internal/flow"
	"github.com/jask/minisa/internal/nav"
	"github.com/jask/minisa/internal/theme"
	"github.com/jask/minisa/internal/validate"
)

type signupScreen struct {
	// fields are indexed by validate.SignupField.
	fields [4]components.InputField
	form   validate.SignupForm
	focus  int
	flow   *flow.Signup
}

func newSignupScreen(m *Model) (*signupScreen, tea.Cmd) {
	step := m.cfg.Shake.Step
	s := &signupScreen{flow: flow.NewSignup(m.cfg.Signup.Delay, m.log)}
	s.fields[validate.SignupName] = components.NewInputField("signup.name", "Name", validate.Text).WithShakeStep(step)
	s.fields[validate.SignupEmail] = components.NewInputField("signup.email", "Email", validate.Email).WithShakeStep(step)
	s.fields[validate.SignupPassword] = components.NewInputField("signup.password", "Password", validate.Password).WithShakeStep(step)
	s.fields[validate.SignupConfirmation] = components.NewInputField("signup.confirmation", "Confirm password", validate.Password).
		WithoutValidation().
		WithShakeStep(step)
	return s, s.setFocus(0)
}

func (s *signupScreen) ID() nav.ScreenID { return nav.SignupForm }
func (s *signupScreen) Title() string    { return "Sign Up" }
func (s *signupScreen) Scope() string    { return scopeSignup }
func (s *signupScreen) Loading() bool    { return s.flow.Loading() }

func (s *signupScreen) Teardown() {
	s.flow.Cancel()
	for i := range s.fields {
		s.fields[i].Cancel()
	}
}

// visibleFields is the number of fields on screen: the confirmation only
// appears once the password is long enough.
func (s *signupScreen) visibleFields() int {
	if s.form.ConfirmationVisible() {
		return len(s.fields)
	}
	return len(s.fields) - 1
}

// count is the number of focusable items. The submit button exists only
// while the form is submittable.
func (s *signupScreen) count() int {
	if s.form.IsSubmittable() {
		return s.visibleFields() + 1
	}
	return s.visibleFields()
}

func (s *signupScreen) onSubmit() bool { return s.focus == s.visibleFields() }

func (s *signupScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	for j := range s.fields {
		s.fields[j].Blur()
	}
	if i < s.visibleFields() {
		return s.fields[i].Focus()
	}
	return nil
}

func (s *signupScreen) Update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case flow.SignupResultMsg:
		out := s.flow.Resolve(msg, m.session, m.nav)
		if !out.Handled {
			return nil
		}
		switch out.Phase {
		case flow.Success:
			m.SetStatus("Account created")
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
			s.fields[validate.SignupPassword].ToggleSecured()
			s.fields[validate.SignupConfirmation].ToggleSecured()
			return nil
		case m.keys.IsAction(msg, actionActivate, scope):
			return s.activate(m)
		}
		if s.flow.Loading() {
			return nil
		}
	}

	cmds := make([]tea.Cmd, 0, len(s.fields)+1)
	for i := range s.fields {
		var cmd tea.Cmd
		s.fields[i], cmd = s.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	if _, ok := msg.(tea.KeyMsg); ok {
		cmds = append(cmds, s.refresh())
	}
	return tea.Batch(cmds...)
}

// refresh copies the field values into the form and applies the derived
// state: confirmation visibility and the mismatch error.
func (s *signupScreen) refresh() tea.Cmd {
	for i := range s.fields {
		s.form.OnFieldChanged(validate.SignupField(i), s.fields[i].Value())
	}
	var focus tea.Cmd
	if s.focus >= s.count() {
		focus = s.setFocus(s.count() - 1)
	}

	confirm := &s.fields[validate.SignupConfirmation]
	err := s.form.ConfirmationError()
	switch {
	case err != nil && !errors.Is(confirm.Err(), err):
		return tea.Batch(focus, confirm.SetError(err))
	case err == nil && confirm.Err() != nil:
		confirm.ClearError()
	}
	return focus
}

func (s *signupScreen) activate(m *Model) tea.Cmd {
	if !s.onSubmit() {
		if s.focus+1 < s.count() {
			return s.setFocus(s.focus + 1)
		}
		return nil
	}
	return s.submitButton().Press(func() tea.Cmd {
		cmd := s.flow.Submit(m.ctx, s.form)
		if cmd == nil {
			return nil
		}
		m.SetStatus("Creating account…")
		return tea.Batch(cmd, m.startSpinner())
	})
}

func (s *signupScreen) submitButton() components.Button {
	b := components.NewPrimaryButton("Sign Up")
	b.Loading = s.flow.Loading()
	b.Focused = s.onSubmit()
	return b
}

func (s *signupScreen) View(m *Model, width, height int) string {
	th := m.theme
	fw := m.formWidth(width)

	rows := []string{
		m.art.Image(assets.Strategy),
		th.Text(theme.TitleLarge, theme.LabelDefault).Render("Create account"),
		"",
	}
	for i := 0; i < s.visibleFields(); i++ {
		rows = append(rows, s.fields[i].View(th, fw))
	}
	if s.form.IsSubmittable() {
		b := s.submitButton()
		b.Width = fw - 4
		rows = append(rows, "", b.View(th, m.spinner.View()))
	}
	return centerBlock(lipgloss.JoinVertical(lipgloss.Center, rows...), width, height)
}
