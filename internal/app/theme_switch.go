package app

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"example.com/neodymium/pkg/config"
)

// themeChoice is a theme the session can cycle to: a builtin preset, or a
// theme file found in ThemeDir.
type themeChoice struct {
	name string
	path string
}

// themeChoices lists the builtin presets in name order followed by every
// .yaml/.yml file in ThemeDir.
func (s *Session) themeChoices() []themeChoice {
	var list []themeChoice
	for name := range config.BuiltinThemes {
		list = append(list, themeChoice{name: name})
	}
	slices.SortFunc(list, func(a, b themeChoice) int { return strings.Compare(a.name, b.name) })
	if s.ThemeDir == "" {
		return list
	}
	entries, err := os.ReadDir(s.ThemeDir)
	if err != nil {
		return list
	}
	for _, e := range entries {
		ext := filepath.Ext(e.Name())
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		list = append(list, themeChoice{
			name: strings.TrimSuffix(e.Name(), ext),
			path: filepath.Join(s.ThemeDir, e.Name()),
		})
	}
	return list
}

// themeChoiceFor describes the theme ref names: a builtin preset, or a
// theme file named by its base name.
func themeChoiceFor(ref string) themeChoice {
	if ref == "" {
		ref = "default"
	}
	if _, ok := config.BuiltinThemes[strings.ToLower(ref)]; ok {
		return themeChoice{name: strings.ToLower(ref)}
	}
	return themeChoice{
		name: strings.TrimSuffix(filepath.Base(ref), filepath.Ext(ref)),
		path: ref,
	}
}

// same reports whether c and o are the same theme. Files are compared by
// path, so a file sharing a builtin's name stays distinct from it.
func (c themeChoice) same(o themeChoice) bool {
	if c.path == "" || o.path == "" {
		return c.path == o.path && strings.EqualFold(c.name, o.name)
	}
	a, errA := filepath.Abs(c.path)
	b, errB := filepath.Abs(o.path)
	if errA != nil || errB != nil {
		return filepath.Clean(c.path) == filepath.Clean(o.path)
	}
	return a == b
}

// NextTheme applies the theme after the current one, wrapping. A theme file
// that fails to import keeps the current colors but still advances the
// cycle, so the next call moves past it.
func (s *Session) NextTheme() {
	list := s.themeChoices()
	next := 0
	for i, c := range list {
		if c.same(s.theme) {
			next = (i + 1) % len(list)
			break
		}
	}
	c := list[next]
	ref := c.name
	if c.path != "" {
		ref = c.path
	}
	th, err := config.ResolveTheme(ref)
	s.theme = c
	if err != nil {
		s.SetStatus("Could not load theme " + c.name + ": " + err.Error())
		s.Logger.Event("theme.error", map[string]any{"name": c.name, "path": c.path, "error": err.Error()})
		return
	}
	s.Theme = th
	s.Logger.Event("theme", map[string]any{"name": c.name, "path": c.path})
	s.SetStatus("Theme: " + c.name)
}

// ThemeName returns the name of the active theme.
func (s *Session) ThemeName() string { return s.theme.name }
