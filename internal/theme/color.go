package theme

import "github.com/charmbracelet/lipgloss"

// ColorToken names a semantic color role.
type ColorToken string

const (
	LabelDefault     ColorToken = "labelDefault"
	LabelStaticWhite ColorToken = "labelStaticWhite"
	LabelDisabled    ColorToken = "labelDisabled"

	BackgroundDefault  ColorToken = "backgroundDefault"
	BackgroundPrimary  ColorToken = "backgroundPrimary"
	BackgroundDisabled ColorToken = "backgroundDisabled"

	BorderDisabled    ColorToken = "borderDisabled"
	BorderDefault     ColorToken = "borderDefault"
	BorderStaticWhite ColorToken = "borderStaticWhite"

	ButtonActive   ColorToken = "buttonActive"
	ButtonDisabled ColorToken = "buttonDisabled"
	ButtonWarning  ColorToken = "buttonWarning"
	ButtonNegative ColorToken = "buttonNegative"
)

// Swatch is the pair of hex values a token resolves to. Light is the
// canonical design value; Dark is what dark terminals get.
type Swatch struct {
	Light string `toml:"light"`
	Dark  string `toml:"dark"`
}

// Terminal returns the swatch as an adaptive lipgloss color.
func (s Swatch) Terminal() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: s.Light, Dark: s.Dark}
}

var defaultSwatches = map[ColorToken]Swatch{
	LabelDefault:     {Light: "#000000", Dark: "#ffffff"},
	LabelStaticWhite: {Light: "#ffffff", Dark: "#ffffff"},
	LabelDisabled:    {Light: "#999999", Dark: "#999999"},

	BackgroundDefault:  {Light: "#f2f2f2", Dark: "#262626"},
	BackgroundPrimary:  {Light: "#ffffff", Dark: "#1a1a1a"},
	BackgroundDisabled: {Light: "#cccccc", Dark: "#4d4d4d"},

	BorderDisabled:    {Light: "#cccccc", Dark: "#4d4d4d"},
	BorderDefault:     {Light: "#e6e6e6", Dark: "#808080"},
	BorderStaticWhite: {Light: "#ffffff", Dark: "#ffffff"},

	ButtonActive:   {Light: "#0080ff", Dark: "#0080ff"},
	ButtonDisabled: {Light: "#cccccc", Dark: "#4d4d4d"},
	ButtonWarning:  {Light: "#ffd900", Dark: "#ffd900"},
	ButtonNegative: {Light: "#ff0000", Dark: "#ff4d4d"},
}

// AllColorTokens returns every color token in declaration order.
func AllColorTokens() []ColorToken {
	return []ColorToken{
		LabelDefault, LabelStaticWhite, LabelDisabled,
		BackgroundDefault, BackgroundPrimary, BackgroundDisabled,
		BorderDisabled, BorderDefault, BorderStaticWhite,
		ButtonActive, ButtonDisabled, ButtonWarning, ButtonNegative,
	}
}

// Valid reports whether t is one of the declared tokens.
func (t ColorToken) Valid() bool {
	_, ok := defaultSwatches[t]
	return ok
}
