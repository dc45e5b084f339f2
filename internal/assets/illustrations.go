// Package assets provides the illustrations shown on each screen.
package assets

import "strings"

// Key names an illustration.
type Key string

const (
	Strategy      Key = "strategy"
	TeamPeople    Key = "teamPeople"
	BeingCreative Key = "beingCreative"
	HotAirBalloon Key = "hotAirBalloon"
)

// Provider resolves illustration keys to renderable text.
type Provider interface {
	Image(key Key) string
}

// ASCII is the built-in provider.
type ASCII struct{}

var art = map[Key][]string{
	Strategy: {
		"   _______   ",
		"  | o   x |  ",
		"  |  \\ /  |  ",
		"  | x   o |  ",
		"  |_______|  ",
	},
	TeamPeople: {
		"  o   o   o  ",
		" /|\\ /|\\ /|\\ ",
		" / \\ / \\ / \\ ",
	},
	BeingCreative: {
		"     \\ | /     ",
		"   -- (*) --   ",
		"     / | \\     ",
		"    _______    ",
		"   |  ~~~  |   ",
		"   |_______|   ",
	},
	HotAirBalloon: {
		"    .---.    ",
		"   /     \\   ",
		"  |       |  ",
		"   \\     /   ",
		"    '. .'    ",
		"     |_|     ",
	},
}

// Image returns the art for key, or an empty string for unknown keys.
func (ASCII) Image(key Key) string {
	lines, ok := art[key]
	if !ok {
		return ""
	}
	return strings.Join(lines, "\n")
}

// Keys lists every illustration the built-in provider knows.
func Keys() []Key {
	return []Key{Strategy, TeamPeople, BeingCreative, HotAirBalloon}
}
