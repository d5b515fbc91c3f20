package app

import (
	"errors"
	"time"

	"example.com/neodymium/pkg/buffer"
	"example.com/neodymium/pkg/config"
	"example.com/neodymium/pkg/fileio"
	"example.com/neodymium/pkg/logs"
	"example.com/neodymium/pkg/menu"
	"example.com/neodymium/pkg/viewport"
	"github.com/gdamore/tcell/v2"
)

// Mode is the state of the interaction state machine.
type Mode int

const (
	ModeOpen Mode = iota
	ModePrompt
	ModeMenu
	ModeClosed
)

func (m Mode) String() string {
	switch m {
	case ModeOpen:
		return "open"
	case ModePrompt:
		return "prompt"
	case ModeMenu:
		return "menu"
	case ModeClosed:
		return "closed"
	}
	return "unknown"
}

// Screen layout.
const (
	HeaderHeight = 2 // menu bar, tab bar
	FooterHeight = 3 // horizontal scrollbar, status bar, message line
)

// ErrCancelled is returned when a prompt gating an operation was dismissed.
var ErrCancelled = errors.New("cancelled")

// EventSource supplies input events. A nil event means the source is
// exhausted and is treated as a cancel.
type EventSource interface {
	PollEvent() tcell.Event
}

// Options configures a new Session.
type Options struct {
	Config *config.Config
	Theme  config.Theme
	// ThemeName is the builtin name or theme file Theme was resolved from;
	// it defaults to Config.Theme.
	ThemeName string
	// ThemeDir holds extra theme files offered by NextTheme.
	ThemeDir string
	Files    fileio.Store
	Logger   *logs.Logger
	Version  string
}

// Session owns every open page, the menus, the status message and the
// interaction mode.
type Session struct {
	// Screen is painted after every handled event when set.
	Screen tcell.Screen
	// Events overrides Screen as the input source.
	Events EventSource

	Files         fileio.Store
	Logger        *logs.Logger
	Keymap        map[string]config.Keybinding
	Theme         config.Theme
	StatusTimeout time.Duration
	Version       string
	ThemeDir      string

	theme      themeChoice
	pages      []*buffer.Page
	current    int
	pageScroll int
	tabStop    int
	mode       Mode
	menus      *menu.Bar

	status       string
	statusExpiry time.Time
	now          func() time.Time

	width, height int
	pending       *geometry

	prompt promptState
}

type geometry struct{ width, height int }

type promptState struct {
	label string
	input []rune
}

// New creates a session and opens paths, or a blank page when none are given.
// A path that cannot be read becomes a blank page carrying that path.
func New(opts Options, paths ...string) *Session {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Session{
		Files:         opts.Files,
		Logger:        opts.Logger,
		Keymap:        cfg.Keymap,
		Theme:         opts.Theme,
		StatusTimeout: cfg.StatusTimeout,
		Version:       opts.Version,
		ThemeDir:      opts.ThemeDir,
		current:       -1,
		tabStop:       cfg.TabStop,
		now:           time.Now,
	}
	if s.Files == nil {
		s.Files = fileio.OS{}
	}
	if s.Logger == nil {
		s.Logger = logs.Disabled()
	}
	if opts.ThemeName != "" {
		s.theme = themeChoiceFor(opts.ThemeName)
	} else {
		s.theme = themeChoiceFor(cfg.Theme)
	}
	if s.Keymap == nil {
		s.Keymap = config.DefaultKeymap()
	}
	if s.StatusTimeout <= 0 {
		s.StatusTimeout = config.DefaultStatusTimeout
	}
	if s.tabStop < 1 {
		s.tabStop = config.DefaultTabStop
	}
	s.menus = s.buildMenus()
	for _, path := range paths {
		if _, err := s.OpenPage(File(path)); err != nil {
			p, _ := s.OpenPage(Blank())
			p.SetFullPath(path)
		}
	}
	s.ensurePage()
	return s
}

// Mode returns the current interaction state.
func (s *Session) Mode() Mode { return s.mode }

func (s *Session) setMode(m Mode) {
	if s.mode == m {
		return
	}
	s.Logger.Event("mode", map[string]any{"from": s.mode.String(), "to": m.String()})
	s.mode = m
}

// Closed reports whether the session reached its terminal state.
func (s *Session) Closed() bool { return s.mode == ModeClosed }

// Pages returns the open pages in tab order.
func (s *Session) Pages() []*buffer.Page { return append([]*buffer.Page(nil), s.pages...) }

// NumPages returns the number of open pages.
func (s *Session) NumPages() int { return len(s.pages) }

// CurrentIndex returns the index of the current page, -1 when none is open.
func (s *Session) CurrentIndex() int { return s.current }

// Current returns the current page.
func (s *Session) Current() *buffer.Page {
	if s.current < 0 || s.current >= len(s.pages) {
		return nil
	}
	return s.pages[s.current]
}

// Menus returns the menu bar.
func (s *Session) Menus() *menu.Bar { return s.menus }

// TabStop returns the tab stop applied to every page.
func (s *Session) TabStop() int { return s.tabStop }

// SetTabStop changes the tab stop of every page.
func (s *Session) SetTabStop(n int) {
	if n < 1 {
		return
	}
	s.tabStop = n
	for _, p := range s.pages {
		p.SetTabStop(n)
	}
}

// SetStatus shows msg on the message line until the status timeout elapses.
func (s *Session) SetStatus(msg string) {
	s.status = msg
	s.statusExpiry = s.now().Add(s.StatusTimeout)
}

// Status returns the status message, or "" once it has expired.
func (s *Session) Status() string {
	if s.status == "" || !s.now().Before(s.statusExpiry) {
		return ""
	}
	return s.status
}

// Resize records new terminal geometry; it is applied by the next Update.
func (s *Session) Resize(width, height int) {
	s.pending = &geometry{width: width, height: height}
}

// Size returns the geometry applied by the last Update.
func (s *Session) Size() (int, int) { return s.width, s.height }

// Viewport returns the text area of the screen.
func (s *Session) Viewport() viewport.Viewport {
	return viewport.Viewport{
		Top:    HeaderHeight,
		Height: max(0, s.height-HeaderHeight-FooterHeight),
		Width:  max(0, s.width-1),
		Margin: viewport.DefaultMargin,
	}
}

// Update applies pending geometry, renders stale rows and scrolls the
// current page so its cursor stays visible.
func (s *Session) Update() {
	if s.pending != nil {
		s.width, s.height = s.pending.width, s.pending.height
		s.pending = nil
	}
	p := s.Current()
	if p == nil {
		return
	}
	p.Update()
	p.Scroll(s.Viewport())
	s.scrollTabs()
}

// ensurePage keeps the session from ever holding zero pages.
func (s *Session) ensurePage() {
	if len(s.pages) == 0 {
		_, _ = s.OpenPage(Blank())
	}
}
