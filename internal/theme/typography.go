package theme

import "github.com/charmbracelet/lipgloss"

// Weight mirrors the font weights used by the design system.
type Weight int

const (
	WeightRegular Weight = iota
	WeightMedium
	WeightSemibold
	WeightBold
)

// Font is the point size and weight a typography token stands for. Terminals
// cannot honour the size, so Style maps it onto text attributes instead.
type Font struct {
	Size   int
	Weight Weight
}

// Typography names a text style.
type Typography string

const (
	TitleRegular Typography = "titleRegular"
	TitleLarge   Typography = "titleLarge"

	Subtitle Typography = "subtitle"

	BodyRegular Typography = "bodyRegular"
	BodyMedium  Typography = "bodyMedium"
	BodySmall   Typography = "bodySmall"

	CaptionRegular Typography = "captionRegular"
	CaptionSmall   Typography = "captionSmall"
	CaptionMedium  Typography = "captionMedium"
)

var fonts = map[Typography]Font{
	TitleRegular:   {Size: 18, Weight: WeightSemibold},
	TitleLarge:     {Size: 24, Weight: WeightBold},
	Subtitle:       {Size: 16, Weight: WeightMedium},
	BodyRegular:    {Size: 14, Weight: WeightRegular},
	BodyMedium:     {Size: 14, Weight: WeightMedium},
	BodySmall:      {Size: 12, Weight: WeightRegular},
	CaptionRegular: {Size: 10, Weight: WeightRegular},
	CaptionSmall:   {Size: 8, Weight: WeightRegular},
	CaptionMedium:  {Size: 10, Weight: WeightMedium},
}

// AllTypography returns every typography token in declaration order.
func AllTypography() []Typography {
	return []Typography{
		TitleRegular, TitleLarge,
		Subtitle,
		BodyRegular, BodyMedium, BodySmall,
		CaptionRegular, CaptionSmall, CaptionMedium,
	}
}

// Font returns the size and weight for t. Unknown tokens fall back to
// bodyRegular.
func (t Typography) Font() Font {
	if f, ok := fonts[t]; ok {
		return f
	}
	return fonts[BodyRegular]
}

// Style renders the token as terminal attributes: semibold and bold become
// bold, titles above 20pt are also underlined, captions are faint.
func (t Typography) Style() lipgloss.Style {
	f := t.Font()
	s := lipgloss.NewStyle()
	if f.Weight >= WeightSemibold {
		s = s.Bold(true)
	}
	if f.Size >= 20 {
		s = s.Underline(true)
	}
	if f.Size <= 10 {
		s = s.Faint(true)
	}
	return s
}
