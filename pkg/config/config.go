package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// Command names understood by the keymap.
const (
	CmdNew     = "new"
	CmdOpen    = "open"
	CmdSave    = "save"
	CmdClose   = "close"
	CmdQuit    = "quit"
	CmdGoto    = "goto"
	CmdPalette = "palette"
	CmdHelp    = "help"
)

const (
	DefaultTabStop       = 4
	MaxTabStop           = 16
	DefaultStatusTimeout = 5 * time.Second
)

// Keybinding represents a single key combination.
type Keybinding struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// Config holds user configuration values.
type Config struct {
	TabStop       int
	StatusTimeout time.Duration
	Theme         string
	Keymap        map[string]Keybinding
}

// file mirrors the YAML layout of the config file.
type file struct {
	TabStop       *int              `yaml:"tab_stop"`
	StatusTimeout string            `yaml:"status_timeout"`
	Theme         string            `yaml:"theme"`
	Keymap        map[string]string `yaml:"keymap"`
}

// Default returns a Config with default settings and key mappings.
func Default() *Config {
	return &Config{
		TabStop:       DefaultTabStop,
		StatusTimeout: DefaultStatusTimeout,
		Theme:         "default",
		Keymap:        DefaultKeymap(),
	}
}

// DefaultKeymap provides builtin command bindings.
func DefaultKeymap() map[string]Keybinding {
	return map[string]Keybinding{
		CmdNew:     mustParse("Ctrl+N"),
		CmdOpen:    mustParse("Ctrl+O"),
		CmdSave:    mustParse("Ctrl+S"),
		CmdClose:   mustParse("Ctrl+W"),
		CmdQuit:    mustParse("Ctrl+Q"),
		CmdGoto:    mustParse("Ctrl+G"),
		CmdPalette: mustParse("Ctrl+P"),
		CmdHelp:    mustParse("F1"),
	}
}

// Load loads configuration from the provided path. If the file does not
// exist, defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	var raw file
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw.TabStop != nil {
		if *raw.TabStop < 1 || *raw.TabStop > MaxTabStop {
			return nil, fmt.Errorf("tab_stop must be between 1 and %d (got %d)", MaxTabStop, *raw.TabStop)
		}
		cfg.TabStop = *raw.TabStop
	}
	if raw.StatusTimeout != "" {
		d, err := time.ParseDuration(raw.StatusTimeout)
		if err != nil || d <= 0 {
			return nil, errors.New("invalid status_timeout: " + raw.StatusTimeout)
		}
		cfg.StatusTimeout = d
	}
	if raw.Theme != "" {
		cfg.Theme = raw.Theme
	}
	for cmd, binding := range raw.Keymap {
		kb, err := ParseKeybinding(binding)
		if err != nil {
			return nil, err
		}
		cfg.Keymap[strings.TrimSpace(cmd)] = kb
	}
	return cfg, nil
}

// DefaultPath returns ~/.neodymium/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".neodymium", "config.yaml"), nil
}

// LoadDefault attempts to read ~/.neodymium/config.yaml.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	return Load(path)
}

// ParseKeybinding converts a textual key description like "Ctrl+S" or "F2"
// into a Keybinding.
func ParseKeybinding(s string) (Keybinding, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == 'F' || s[0] == 'f') {
		n, err := strconv.Atoi(s[1:])
		if err != nil || n < 1 || n > 12 {
			return Keybinding{}, errors.New("invalid function key in keybinding: " + s)
		}
		if n == 10 {
			// F10 always opens the menu bar
			return Keybinding{}, errors.New("reserved key in keybinding: " + s)
		}
		return Keybinding{Key: tcell.KeyF1 + tcell.Key(n-1)}, nil
	}
	parts := strings.Split(s, "+")
	if len(parts) != 2 {
		return Keybinding{}, errors.New("invalid keybinding: " + s)
	}
	if !strings.EqualFold(parts[0], "ctrl") {
		return Keybinding{}, errors.New("invalid modifier in keybinding: " + s)
	}
	r := []rune(strings.ToLower(parts[1]))
	if len(r) != 1 || r[0] < 'a' || r[0] > 'z' {
		return Keybinding{}, errors.New("invalid key in keybinding: " + s)
	}
	switch r[0] {
	case 'h', 'i', 'm':
		// indistinguishable from Backspace, Tab and Enter on most terminals
		return Keybinding{}, errors.New("reserved key in keybinding: " + s)
	}
	return Keybinding{Key: tcell.KeyRune, Rune: r[0], Mod: tcell.ModCtrl}, nil
}

func mustParse(s string) Keybinding {
	kb, _ := ParseKeybinding(s)
	return kb
}

// Shortcut returns the menu shortcut character for the binding: the letter of
// a Ctrl binding or the digit of F1..F10 ('0' for F10).
func (k Keybinding) Shortcut() (rune, bool) {
	switch {
	case k.Key == tcell.KeyRune && k.Mod == tcell.ModCtrl:
		return k.Rune, true
	case k.Key >= tcell.KeyF1 && k.Key <= tcell.KeyF9:
		return '1' + rune(k.Key-tcell.KeyF1), true
	case k.Key == tcell.KeyF10:
		return '0', true
	}
	return 0, false
}

// ShortcutEvent builds the key event a menu shortcut stands for: Ctrl+letter
// for letters, a function key for digits.
func ShortcutEvent(r rune) (*tcell.EventKey, bool) {
	switch {
	case r == '0':
		return tcell.NewEventKey(tcell.KeyF10, 0, tcell.ModNone), true
	case r >= '1' && r <= '9':
		return tcell.NewEventKey(tcell.KeyF1+tcell.Key(r-'1'), 0, tcell.ModNone), true
	case r >= 'A' && r <= 'Z':
		r += 'a' - 'A'
		fallthrough
	case r >= 'a' && r <= 'z':
		return tcell.NewEventKey(ctrlMap[r], 0, tcell.ModCtrl), true
	}
	return nil, false
}

var ctrlMap = map[rune]tcell.Key{
	'a': tcell.KeyCtrlA,
	'b': tcell.KeyCtrlB,
	'c': tcell.KeyCtrlC,
	'd': tcell.KeyCtrlD,
	'e': tcell.KeyCtrlE,
	'f': tcell.KeyCtrlF,
	'g': tcell.KeyCtrlG,
	'h': tcell.KeyCtrlH,
	'i': tcell.KeyCtrlI,
	'j': tcell.KeyCtrlJ,
	'k': tcell.KeyCtrlK,
	'l': tcell.KeyCtrlL,
	'm': tcell.KeyCtrlM,
	'n': tcell.KeyCtrlN,
	'o': tcell.KeyCtrlO,
	'p': tcell.KeyCtrlP,
	'q': tcell.KeyCtrlQ,
	'r': tcell.KeyCtrlR,
	's': tcell.KeyCtrlS,
	't': tcell.KeyCtrlT,
	'u': tcell.KeyCtrlU,
	'v': tcell.KeyCtrlV,
	'w': tcell.KeyCtrlW,
	'x': tcell.KeyCtrlX,
	'y': tcell.KeyCtrlY,
	'z': tcell.KeyCtrlZ,
}

// Matches returns true if the binding matches the provided event.
func (k Keybinding) Matches(ev *tcell.EventKey) bool {
	if k.Key != tcell.KeyRune {
		return k.Key == ev.Key()
	}
	if k.Rune == ev.Rune() && k.Mod == ev.Modifiers() && ev.Key() == tcell.KeyRune {
		return true
	}
	if k.Mod == tcell.ModCtrl {
		if ctrlKey, ok := ctrlMap[k.Rune]; ok && ev.Key() == ctrlKey {
			return true
		}
	}
	return false
}
