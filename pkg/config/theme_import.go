package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"gopkg.in/yaml.v3"
)

// ImportTheme reads a theme file in a known format and converts it to Theme.
// Supported:
// - Base16 YAML (keys base00..base0F)
// - Alacritty YAML (colors.primary/normal/bright)
func ImportTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Theme{}, fmt.Errorf("parse theme %s: %w", filepath.Base(path), err)
	}
	kv := map[string]string{}
	flatten("", doc, kv)
	switch {
	case kv["base00"] != "":
		return importBase16(kv), nil
	case kv["colors.primary.background"] != "" || kv["colors.primary.foreground"] != "":
		return importAlacritty(kv), nil
	default:
		return Theme{}, errors.New("unrecognized theme format: " + filepath.Base(path))
	}
}

// flatten lowercases keys and joins nested maps with dots.
func flatten(prefix string, node map[string]any, out map[string]string) {
	for k, v := range node {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case int:
			// unquoted hex digits such as 282828 decode as integers
			out[key] = fmt.Sprintf("%06d", val)
		}
	}
}

func parseHexToColor(v string, fallback tcell.Color) tcell.Color {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		v = v[1:]
	} else if strings.HasPrefix(strings.ToLower(v), "0x") {
		v = v[2:]
	}
	if len(v) != 6 {
		return fallback
	}
	if _, err := strconv.ParseInt(v, 16, 32); err != nil {
		return fallback
	}
	return ParseColor("#"+strings.ToLower(v), fallback)
}

// importBase16 maps a Base16 scheme onto the editor regions.
func importBase16(kv map[string]string) Theme {
	t := DefaultTheme()
	get := func(k string, fb tcell.Color) tcell.Color { return parseHexToColor(kv[k], fb) }

	t.TextBackground = get("base00", t.TextBackground)
	t.TextForeground = get("base05", t.TextForeground)
	t.Tilde = get("base03", t.Tilde)

	t.MenuBackground = get("base01", t.MenuBackground)
	t.MenuForeground = t.TextForeground
	t.MenuSelectedBG = get("base0d", t.MenuSelectedBG)
	t.MenuSelectedFG = t.TextBackground
	t.MenuHintForeground = get("base04", t.MenuHintForeground)

	t.TabBackground = t.TextBackground
	t.TabForeground = get("base04", t.TabForeground)
	t.TabCurrentBG = get("base02", t.TabCurrentBG)
	t.TabCurrentFG = get("base07", t.TabCurrentFG)

	t.ScrollTrack = get("base01", t.ScrollTrack)
	t.ScrollThumb = get("base04", t.ScrollThumb)

	t.StatusBackground = get("base02", t.StatusBackground)
	t.StatusForeground = t.TextForeground
	t.MessageBackground = t.TextBackground
	t.MessageForeground = get("base0a", t.MessageForeground)
	return t
}

// importAlacritty maps an Alacritty colors section onto the editor regions.
func importAlacritty(kv map[string]string) Theme {
	t := DefaultTheme()
	get := func(p string, fb tcell.Color) tcell.Color { return parseHexToColor(kv[p], fb) }

	t.TextBackground = get("colors.primary.background", t.TextBackground)
	t.TextForeground = get("colors.primary.foreground", t.TextForeground)
	t.Tilde = get("colors.normal.blue", t.Tilde)

	t.MenuBackground = get("colors.normal.white", t.MenuBackground)
	t.MenuForeground = t.TextBackground
	t.MenuSelectedBG = get("colors.normal.blue", t.MenuSelectedBG)
	t.MenuSelectedFG = t.TextBackground
	t.MenuHintForeground = get("colors.bright.black", t.MenuHintForeground)

	t.TabBackground = t.TextBackground
	t.TabForeground = get("colors.bright.black", t.TabForeground)
	t.TabCurrentBG = get("colors.bright.white", t.TabCurrentBG)
	t.TabCurrentFG = t.TextBackground

	t.ScrollTrack = get("colors.bright.black", t.ScrollTrack)
	t.ScrollThumb = t.TextForeground

	t.StatusBackground = get("colors.bright.black", t.StatusBackground)
	t.StatusForeground = t.TextForeground
	t.MessageBackground = t.TextBackground
	t.MessageForeground = get("colors.normal.yellow", t.MessageForeground)
	return t
}
