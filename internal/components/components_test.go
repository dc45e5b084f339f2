package components

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/minisa/internal/theme"
	"github.com/jask/minisa/internal/validate"
)

func typeInto(t *testing.T, f InputField, s string) (InputField, []tea.Cmd) {
	t.Helper()
	var cmds []tea.Cmd
	for _, r := range s {
		var cmd tea.Cmd
		f, cmd = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		cmds = append(cmds, cmd)
	}
	return f, cmds
}

func focused(f InputField) InputField {
	f.Focus()
	return f
}

func TestInputFieldLiveValidation(t *testing.T) {
	f := focused(NewInputField("email", "Email", validate.Email))
	f, _ = typeInto(t, f, "leo")
	if !errors.Is(f.Err(), validate.ErrInvalidEmail) {
		t.Fatalf("err = %v, want invalid email", f.Err())
	}
	if f.ErrorMessage() != "Please enter a valid email address" {
		t.Fatalf("message = %q", f.ErrorMessage())
	}
	if f.ShakeOffset() != 10 {
		t.Fatalf("shake offset = %d, want 10", f.ShakeOffset())
	}

	f, _ = typeInto(t, f, "@example.com")
	if f.Err() != nil {
		t.Fatalf("err = %v, want nil", f.Err())
	}
}

func TestInputFieldEmptyClearsError(t *testing.T) {
	f := focused(NewInputField("num", "Number", validate.Number))
	f, _ = typeInto(t, f, "a")
	if f.Err() == nil {
		t.Fatal("expected error for non-numeric input")
	}
	f, _ = f.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if f.Value() != "" {
		t.Fatalf("value = %q, want empty", f.Value())
	}
	if f.Err() != nil || f.ErrorMessage() != "" {
		t.Fatalf("empty input should show no error, got %v", f.Err())
	}
}

func TestInputFieldExplicitValidate(t *testing.T) {
	f := NewInputField("pw", "Password", validate.Password)
	ok, cmd := f.Validate()
	if ok {
		t.Fatal("empty password should fail an explicit validate")
	}
	if cmd == nil {
		t.Fatal("expected a shake tick")
	}
	if f.ErrorMessage() != "Password must be at least 6 characters" {
		t.Fatalf("message = %q", f.ErrorMessage())
	}

	f.SetValue("secret1")
	ok, cmd = f.Validate()
	if !ok || cmd != nil || f.Err() != nil {
		t.Fatalf("ok=%v err=%v", ok, f.Err())
	}
}

func TestInputFieldIgnoresKeysWhenBlurred(t *testing.T) {
	f := NewInputField("t", "Text", validate.Text)
	f, _ = typeInto(t, f, "abc")
	if f.Value() != "" {
		t.Fatalf("blurred field took input: %q", f.Value())
	}
}

func TestInputFieldWithoutValidation(t *testing.T) {
	f := focused(NewInputField("e", "Email", validate.Email).WithoutValidation())
	f, _ = typeInto(t, f, "x")
	if f.Err() != nil {
		t.Fatalf("err = %v, want nil", f.Err())
	}
}

func TestInputFieldToggleSecured(t *testing.T) {
	pw := NewInputField("pw", "Password", validate.Password)
	if !pw.Secured() {
		t.Fatal("password fields start secured")
	}
	pw.ToggleSecured()
	if pw.Secured() {
		t.Fatal("toggle should reveal")
	}
	txt := NewInputField("t", "Text", validate.Text)
	txt.ToggleSecured()
	if txt.Secured() {
		t.Fatal("text fields never secure")
	}
}

func TestShakeSequence(t *testing.T) {
	f := NewInputField("n", "Number", validate.Number)
	f.SetValue("x")
	want := []int{10, -10, 5, -5, 0}
	got := []int{f.ShakeOffset()}
	for step := 0; step < 4; step++ {
		f, _ = f.Update(ShakeMsg{Key: "n", Gen: f.shake.gen, Step: step})
		got = append(got, f.ShakeOffset())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("offsets = %v, want %v", got, want)
		}
	}
	if f.shake.Active() {
		t.Fatal("shake should be finished")
	}
}

func TestShakeIgnoresStaleTicks(t *testing.T) {
	var s Shake
	s.Start("k")
	stale := s.gen
	s.Start("k")
	if cmd := s.Advance(ShakeMsg{Key: "k", Gen: stale, Step: 0}); cmd != nil {
		t.Fatal("stale tick should be ignored")
	}
	if s.Offset() != 10 {
		t.Fatalf("offset = %d, want 10", s.Offset())
	}
	s.Cancel()
	if s.Offset() != 0 || s.Advance(ShakeMsg{Key: "k", Gen: s.gen, Step: 0}) != nil {
		t.Fatal("cancelled shake should stay idle")
	}
}

func TestShakeRoutesByKey(t *testing.T) {
	f := NewInputField("a", "Number", validate.Number)
	f.SetValue("x")
	f, _ = f.Update(ShakeMsg{Key: "b", Gen: f.shake.gen, Step: 0})
	if f.ShakeOffset() != 10 {
		t.Fatalf("foreign tick moved the shake: %d", f.ShakeOffset())
	}
}

func TestButtonEnabled(t *testing.T) {
	tests := []struct {
		name string
		b    Button
		want bool
	}{
		{"active", NewPrimaryButton("Go"), true},
		{"disabled", Button{Title: "Go", Variant: VariantDisabled}, false},
		{"loading", Button{Title: "Go", Loading: true}, false},
		{"secondary", NewSecondaryButton("Back"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ran := false
			tt.b.Press(func() tea.Cmd { ran = true; return nil })
			if ran != tt.want || tt.b.Enabled() != tt.want {
				t.Fatalf("ran=%v enabled=%v, want %v", ran, tt.b.Enabled(), tt.want)
			}
		})
	}
}

func TestButtonSizes(t *testing.T) {
	tests := []struct {
		size    ButtonSize
		height  int
		padding theme.Spacing
		typ     theme.Typography
	}{
		{SizeSmall, 32, theme.Small, theme.BodyMedium},
		{SizeMedium, 44, theme.Medium, theme.BodyMedium},
		{SizeLarge, 56, theme.Large, theme.TitleRegular},
	}
	for _, tt := range tests {
		if tt.size.Height() != tt.height || tt.size.Padding() != tt.padding || tt.size.Typography() != tt.typ {
			t.Errorf("size %d = %d/%d/%s", tt.size, tt.size.Height(), tt.size.Padding(), tt.size.Typography())
		}
	}
}

func TestButtonVariantColors(t *testing.T) {
	want := map[ButtonVariant]theme.ColorToken{
		VariantActive:   theme.ButtonActive,
		VariantNegative: theme.ButtonNegative,
		VariantWarning:  theme.ButtonWarning,
		VariantDisabled: theme.ButtonDisabled,
	}
	for v, tok := range want {
		if v.Color() != tok {
			t.Errorf("variant %d = %s, want %s", v, v.Color(), tok)
		}
	}
}

func TestButtonViewShowsSpinnerWhileLoading(t *testing.T) {
	th := theme.Default()
	b := NewPrimaryButton("Sign in")
	if !strings.Contains(ansi.Strip(b.View(th, "*")), "Sign in") {
		t.Fatal("expected title")
	}
	b.Loading = true
	out := ansi.Strip(b.View(th, "*"))
	if strings.Contains(out, "Sign in") || !strings.Contains(out, "*") {
		t.Fatalf("loading view = %q", out)
	}
}

func TestCenterKeepsBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0...............",
		"row-1...............",
		"row-2...............",
		"row-3...............",
		"row-4...............",
	}, "\n")
	out := Center(base, "Popup", 20, 5)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("line count = %d, want 5", len(lines))
	}
	if !strings.Contains(lines[2], "Popup") {
		t.Fatalf("popup not centred: %q", lines[2])
	}
	if !strings.HasPrefix(lines[0], "row-0") || !strings.HasPrefix(lines[4], "row-4") {
		t.Fatal("base rows should survive")
	}
	if !strings.HasPrefix(lines[2], "row-2") {
		t.Fatalf("left of popup should keep base: %q", lines[2])
	}
}

func TestBottomPlacesOnLastRow(t *testing.T) {
	out := Bottom("a\nb\nc", "toast", 10, 3)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[2], "toast") {
		t.Fatalf("toast not on last row: %q", out)
	}
}

func TestInfoSheetView(t *testing.T) {
	out := ansi.Strip(InfoSheet{ShowClose: true, CTATitle: "Alright!", Content: "Oops"}.View(theme.Default(), 40, ""))
	for _, want := range []string{"Oops", "Alright!", "✕"} {
		if !strings.Contains(out, want) {
			t.Errorf("sheet missing %q:\n%s", want, out)
		}
	}
}
