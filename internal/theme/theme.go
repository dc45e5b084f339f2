package theme

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Theme resolves color tokens. It is built once at startup and read-only
// afterwards.
type Theme struct {
	swatches map[ColorToken]Swatch
}

// Default returns the built-in palette.
func Default() Theme {
	return Theme{swatches: maps.Clone(defaultSwatches)}
}

// Swatch returns the hex pair for t. Unknown tokens resolve to labelDefault.
func (th Theme) Swatch(t ColorToken) Swatch {
	if s, ok := th.swatches[t]; ok {
		return s
	}
	if s, ok := defaultSwatches[t]; ok {
		return s
	}
	return defaultSwatches[LabelDefault]
}

// Color returns the terminal color for t.
func (th Theme) Color(t ColorToken) lipgloss.AdaptiveColor {
	return th.Swatch(t).Terminal()
}

// Text combines a typography token with a foreground color token.
func (th Theme) Text(typ Typography, color ColorToken) lipgloss.Style {
	return typ.Style().Foreground(th.Color(color))
}

// paletteFile is the TOML layout of a palette override file:
//
//	[colors.buttonActive]
//	light = "#0066cc"
//	dark  = "#3399ff"
type paletteFile struct {
	Colors map[string]Swatch `toml:"colors"`
}

// WithOverrides returns a copy of th with the given swatches replacing the
// defaults. Empty light or dark values keep the existing value.
func (th Theme) WithOverrides(overrides map[ColorToken]Swatch) Theme {
	out := Theme{swatches: maps.Clone(th.swatches)}
	if out.swatches == nil {
		out.swatches = maps.Clone(defaultSwatches)
	}
	for tok, sw := range overrides {
		cur := out.Swatch(tok)
		if sw.Light != "" {
			cur.Light = sw.Light
		}
		if sw.Dark != "" {
			cur.Dark = sw.Dark
		}
		out.swatches[tok] = cur
	}
	return out
}

// ParseOverrides decodes a palette override file.
func ParseOverrides(data []byte) (map[ColorToken]Swatch, error) {
	var pf paletteFile
	if err := toml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse palette: %w", err)
	}
	out := make(map[ColorToken]Swatch, len(pf.Colors))
	for name, sw := range pf.Colors {
		tok := ColorToken(name)
		if !tok.Valid() {
			return nil, fmt.Errorf("palette: unknown color token %q", name)
		}
		for _, v := range []string{sw.Light, sw.Dark} {
			if v != "" && !hexColor.MatchString(v) {
				return nil, fmt.Errorf("palette %q: invalid hex color %q", name, v)
			}
		}
		out[tok] = sw
	}
	return out, nil
}

// Load returns the default theme with overrides from path applied. An empty
// path or a missing file yields the default theme.
func Load(path string) (Theme, error) {
	th := Default()
	if path == "" {
		return th, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return th, nil
	}
	if err != nil {
		return th, fmt.Errorf("read palette: %w", err)
	}
	overrides, err := ParseOverrides(data)
	if err != nil {
		return th, err
	}
	return th.WithOverrides(overrides), nil
}
