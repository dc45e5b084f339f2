package components

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/minisa/internal/theme"
	"github.com/jask/minisa/internal/validate"
)

// InputField is a single-line text input bound to a validation kind. It
// revalidates on every edit and shakes when the text turns invalid.
type InputField struct {
	key            string
	kind           validate.Kind
	input          textinput.Model
	showValidation bool
	secured        bool
	err            error
	shake          Shake
}

// NewInputField builds a field. key must be unique among the fields that
// share an update loop; it routes shake ticks back to the right field.
func NewInputField(key, placeholder string, kind validate.Kind) InputField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.Prompt = ""
	f := InputField{
		key:            key,
		kind:           kind,
		input:          in,
		showValidation: true,
		secured:        kind.Keyboard().SecureEntry,
	}
	f.applyEcho()
	return f
}

// WithoutValidation disables live validation feedback.
func (f InputField) WithoutValidation() InputField {
	f.showValidation = false
	return f
}

// WithShakeStep overrides the shake step interval.
func (f InputField) WithShakeStep(d time.Duration) InputField {
	f.shake.step = d
	return f
}

func (f InputField) Key() string         { return f.key }
func (f InputField) Kind() validate.Kind { return f.kind }
func (f InputField) Value() string       { return f.input.Value() }
func (f InputField) Focused() bool       { return f.input.Focused() }
func (f InputField) Err() error          { return f.err }
func (f InputField) Secured() bool       { return f.secured }
func (f InputField) ShakeOffset() int    { return f.shake.Offset() }

// ErrorMessage is the inline text under the field, empty when valid.
func (f InputField) ErrorMessage() string { return validate.Message(f.err) }

func (f *InputField) Focus() tea.Cmd { return f.input.Focus() }
func (f *InputField) Blur()          { f.input.Blur() }

// SetValue replaces the text and revalidates.
func (f *InputField) SetValue(v string) tea.Cmd {
	f.input.SetValue(v)
	return f.revalidate()
}

// ToggleSecured flips password masking. Non-password fields ignore it.
func (f *InputField) ToggleSecured() {
	if f.kind != validate.Password {
		return
	}
	f.secured = !f.secured
	f.applyEcho()
}

func (f *InputField) applyEcho() {
	if f.secured {
		f.input.EchoMode = textinput.EchoPassword
		f.input.EchoCharacter = '•'
		return
	}
	f.input.EchoMode = textinput.EchoNormal
}

// Validate checks the current text as a submit would: empty text is not
// exempt. It records the error and shakes on failure.
func (f *InputField) Validate() (bool, tea.Cmd) {
	f.err = validate.Field(f.kind, f.input.Value())
	if f.err != nil {
		return false, f.shake.Start(f.key)
	}
	return true, nil
}

// SetError shows err under the field regardless of its kind.
func (f *InputField) SetError(err error) tea.Cmd {
	if err == nil {
		f.ClearError()
		return nil
	}
	f.err = err
	return f.shake.Start(f.key)
}

func (f *InputField) ClearError() {
	f.err = nil
}

// Cancel stops any pending shake. Called when the owning screen goes away.
func (f *InputField) Cancel() {
	f.shake.Cancel()
}

// revalidate runs the live check used after each edit. Empty text clears
// the error without consulting the validator.
func (f *InputField) revalidate() tea.Cmd {
	if !f.showValidation {
		return nil
	}
	v := f.input.Value()
	if v == "" {
		f.err = nil
		return nil
	}
	f.err = validate.Field(f.kind, v)
	if f.err != nil {
		return f.shake.Start(f.key)
	}
	return nil
}

// Update handles key input while focused and this field's shake ticks.
func (f InputField) Update(msg tea.Msg) (InputField, tea.Cmd) {
	switch msg := msg.(type) {
	case ShakeMsg:
		if msg.Key != f.key {
			return f, nil
		}
		return f, f.shake.Advance(msg)
	case tea.KeyMsg:
		if !f.input.Focused() {
			return f, nil
		}
		before := f.input.Value()
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		if f.input.Value() != before {
			return f, tea.Batch(cmd, f.revalidate())
		}
		return f, cmd
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return f, cmd
}

// View renders the field at the given total width.
func (f InputField) View(th theme.Theme, width int) string {
	borderColor := theme.BorderDefault
	switch {
	case f.err != nil:
		borderColor = theme.ButtonNegative
	case f.input.Focused():
		borderColor = theme.ButtonActive
	}

	toggle := ""
	if f.kind == validate.Password {
		toggle = "  show"
		if !f.secured {
			toggle = "  hide"
		}
	}

	inner := max(4, width-4-lipgloss.Width(toggle))
	in := f.input
	in.Width = inner - 1
	line := lipgloss.NewStyle().Width(inner).Render(in.View()) +
		th.Text(theme.CaptionRegular, theme.LabelDisabled).Render(toggle)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Color(borderColor)).
		Padding(0, 1).
		Render(line)

	shift := 2 + f.shake.Offset()/5
	out := lipgloss.NewStyle().PaddingLeft(shift).Render(box)
	if msg := f.ErrorMessage(); msg != "" {
		errLine := th.Text(theme.CaptionRegular, theme.ButtonNegative).
			PaddingLeft(2 + theme.DefaultSpacing.Cells()).
			Render(msg)
		out = lipgloss.JoinVertical(lipgloss.Left, out, errLine)
	}
	return out
}
