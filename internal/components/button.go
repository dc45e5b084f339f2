package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/minisa/internal/theme"
)

// ButtonVariant is the semantic state of a button.
type ButtonVariant int

const (
	VariantActive ButtonVariant = iota
	VariantNegative
	VariantWarning
	VariantDisabled
)

// Color is the token a variant paints with: the fill of a primary button,
// the border and label of a secondary one.
func (v ButtonVariant) Color() theme.ColorToken {
	switch v {
	case VariantNegative:
		return theme.ButtonNegative
	case VariantWarning:
		return theme.ButtonWarning
	case VariantDisabled:
		return theme.ButtonDisabled
	default:
		return theme.ButtonActive
	}
}

// ButtonSize controls height, padding and label typography.
type ButtonSize int

const (
	SizeSmall ButtonSize = iota
	SizeMedium
	SizeLarge
)

// Height is the minimum height in design points.
func (s ButtonSize) Height() int {
	switch s {
	case SizeSmall:
		return 32
	case SizeLarge:
		return 56
	default:
		return 44
	}
}

// Lines is the height in terminal rows.
func (s ButtonSize) Lines() int {
	if s == SizeLarge {
		return 3
	}
	return 1
}

// Padding is the horizontal padding of a primary button.
func (s ButtonSize) Padding() theme.Spacing {
	switch s {
	case SizeSmall:
		return theme.Small
	case SizeLarge:
		return theme.Large
	default:
		return theme.Medium
	}
}

// outlinePadding is the horizontal padding of a secondary button, in points.
func (s ButtonSize) outlinePadding() int {
	switch s {
	case SizeSmall:
		return 12
	case SizeLarge:
		return 20
	default:
		return 16
	}
}

func (s ButtonSize) Typography() theme.Typography {
	if s == SizeLarge {
		return theme.TitleRegular
	}
	return theme.BodyMedium
}

// ButtonKind selects filled or outlined rendering.
type ButtonKind int

const (
	Primary ButtonKind = iota
	Secondary
)

// DefaultBorderWidth is the outline width of a secondary button.
const DefaultBorderWidth = 2

// Button is a focusable call to action.
type Button struct {
	Title   string
	Kind    ButtonKind
	Size    ButtonSize
	Variant ButtonVariant
	// Rounded selects a rounded outline, the terminal stand-in for a
	// corner radius.
	Rounded     bool
	BorderWidth int
	Loading     bool
	Focused     bool
	// Width is the total width in cells; zero sizes to the label.
	Width int
}

func NewPrimaryButton(title string) Button {
	return Button{Title: title, Kind: Primary, Size: SizeMedium, Rounded: true}
}

func NewSecondaryButton(title string) Button {
	return Button{Title: title, Kind: Secondary, Size: SizeMedium, Rounded: true, BorderWidth: DefaultBorderWidth}
}

// Enabled reports whether pressing the button runs its action. Disabled and
// loading buttons swallow presses.
func (b Button) Enabled() bool {
	return b.Variant != VariantDisabled && !b.Loading
}

// Press runs action when the button is enabled.
func (b Button) Press(action func() tea.Cmd) tea.Cmd {
	if !b.Enabled() || action == nil {
		return nil
	}
	return action()
}

// View renders the button. spinner is the frame shown while loading.
func (b Button) View(th theme.Theme, spinner string) string {
	label := b.Title
	if b.Loading {
		label = spinner
	}
	if b.Focused && b.Enabled() {
		label = "› " + label + " ‹"
	}

	text := b.Size.Typography().Style()
	vpad := (b.Size.Lines() - 1) / 2
	color := th.Color(b.Variant.Color())

	if b.Kind == Primary {
		style := text.
			Foreground(th.Color(theme.LabelStaticWhite)).
			Background(color).
			Padding(vpad, b.Size.Padding().Cells()).
			Align(lipgloss.Center)
		if b.Width > 0 {
			style = style.Width(b.Width)
		}
		return style.Render(label)
	}

	border := lipgloss.NormalBorder()
	switch {
	case b.BorderWidth > DefaultBorderWidth:
		border = lipgloss.ThickBorder()
	case b.Rounded:
		border = lipgloss.RoundedBorder()
	}
	style := text.
		Foreground(color).
		Border(border).
		BorderForeground(color).
		Padding(vpad, b.Size.outlinePadding()/4).
		Align(lipgloss.Center)
	if b.Width > 2 {
		style = style.Width(b.Width - 2)
	}
	return style.Render(label)
}
