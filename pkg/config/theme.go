package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors of every screen region.
type Theme struct {
	// Text area
	TextBackground tcell.Color
	TextForeground tcell.Color
	Tilde          tcell.Color

	// Menu bar and open menu box
	MenuBackground     tcell.Color
	MenuForeground     tcell.Color
	MenuSelectedBG     tcell.Color
	MenuSelectedFG     tcell.Color
	MenuHintForeground tcell.Color

	// Tab bar
	TabBackground tcell.Color
	TabForeground tcell.Color
	TabCurrentBG  tcell.Color
	TabCurrentFG  tcell.Color

	// Scrollbars
	ScrollTrack tcell.Color
	ScrollThumb tcell.Color

	// Status bar and message line
	StatusBackground  tcell.Color
	StatusForeground  tcell.Color
	MessageBackground tcell.Color
	MessageForeground tcell.Color
}

// DefaultTheme returns the built-in light-on-dark theme.
func DefaultTheme() Theme {
	return Theme{
		TextBackground: tcell.ColorBlack,
		TextForeground: tcell.ColorWhite,
		Tilde:          tcell.ColorBlue,

		MenuBackground:     tcell.ColorWhite,
		MenuForeground:     tcell.ColorBlack,
		MenuSelectedBG:     tcell.ColorBlue,
		MenuSelectedFG:     tcell.ColorWhite,
		MenuHintForeground: tcell.ColorGray,

		TabBackground: tcell.ColorBlack,
		TabForeground: tcell.ColorSilver,
		TabCurrentBG:  tcell.ColorWhite,
		TabCurrentFG:  tcell.ColorBlack,

		ScrollTrack: tcell.ColorGray,
		ScrollThumb: tcell.ColorWhite,

		StatusBackground:  tcell.ColorWhite,
		StatusForeground:  tcell.ColorBlack,
		MessageBackground: tcell.ColorBlack,
		MessageForeground: tcell.ColorWhite,
	}
}

// TerminalTheme leans on the terminal's default colors and ANSI palette so the
// editor follows the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		TextBackground: tcell.ColorDefault,
		TextForeground: tcell.ColorDefault,
		Tilde:          tcell.ColorBlue,

		MenuBackground:     tcell.ColorGray,
		MenuForeground:     tcell.ColorDefault,
		MenuSelectedBG:     tcell.ColorBlue,
		MenuSelectedFG:     tcell.ColorDefault,
		MenuHintForeground: tcell.ColorDefault,

		TabBackground: tcell.ColorDefault,
		TabForeground: tcell.ColorDefault,
		TabCurrentBG:  tcell.ColorGray,
		TabCurrentFG:  tcell.ColorDefault,

		ScrollTrack: tcell.ColorDefault,
		ScrollThumb: tcell.ColorGray,

		StatusBackground:  tcell.ColorGray,
		StatusForeground:  tcell.ColorDefault,
		MessageBackground: tcell.ColorDefault,
		MessageForeground: tcell.ColorDefault,
	}
}

// BuiltinThemes exposes the presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		TextBackground: tcell.ColorBlack,
		TextForeground: tcell.ColorSilver,
		Tilde:          tcell.ColorDarkCyan,

		MenuBackground:     tcell.ColorGray,
		MenuForeground:     tcell.ColorWhite,
		MenuSelectedBG:     tcell.ColorDarkGreen,
		MenuSelectedFG:     tcell.ColorWhite,
		MenuHintForeground: tcell.ColorSilver,

		TabBackground: tcell.ColorBlack,
		TabForeground: tcell.ColorGray,
		TabCurrentBG:  tcell.ColorGray,
		TabCurrentFG:  tcell.ColorWhite,

		ScrollTrack: tcell.ColorDarkSlateGray,
		ScrollThumb: tcell.ColorSilver,

		StatusBackground:  tcell.ColorGray,
		StatusForeground:  tcell.ColorWhite,
		MessageBackground: tcell.ColorBlack,
		MessageForeground: tcell.ColorLightYellow,
	},
}

// ResolveTheme returns the builtin theme called name, or imports name as a
// theme file when no builtin matches.
func ResolveTheme(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme(), nil
	}
	if th, ok := BuiltinThemes[strings.ToLower(name)]; ok {
		return th, nil
	}
	return ImportTheme(name)
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
