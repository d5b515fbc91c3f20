package app

import (
	"fmt"
	"strings"

	"example.com/neodymium/pkg/buffer"
	"example.com/neodymium/pkg/menu"
	"example.com/neodymium/pkg/viewport"
	"github.com/mattn/go-runewidth"
)

const (
	noName         = "<No Name>"
	tabLabelMin    = 8
	tabLabelMax    = 20
	tabSeparator   = "|"
	emptyRowMarker = "~"
)

// Frame is everything the painter needs for one screen refresh.
type Frame struct {
	Width, Height int

	MenuTitles []MenuTitle
	// MenuBox is set while a menu is open.
	MenuBox *MenuBox

	Tabs []Tab

	// Rows holds the visible slice of every text row; rows past the end of
	// the page hold "~".
	Rows    []string
	PastEnd []bool

	StatusLeft  string
	StatusRight string
	Message     string

	VBar, HBar       viewport.Bar
	ShowVBar         bool
	ShowHBar         bool
	CursorX, CursorY int
	ShowCursor       bool
}

// MenuTitle is one group name on the menu bar.
type MenuTitle struct {
	Name   string
	X      int
	Active bool
}

// MenuBox is the open menu group drawn below its title.
type MenuBox struct {
	X, Y, Width int
	Items       []MenuItem
}

// MenuItem is one line of an open menu.
type MenuItem struct {
	Name      string
	Hint      string
	Separator bool
	Selected  bool
}

// Tab is one visible label on the tab bar.
type Tab struct {
	Label   string
	X       int
	Current bool
}

// Frame builds the render data for the current state. Call Update first so
// rows are rendered and the cursor is scrolled into view.
func (s *Session) Frame() Frame {
	f := Frame{Width: s.width, Height: s.height}
	f.MenuTitles, f.MenuBox = s.menuLayout()
	f.Tabs = s.tabLayout()

	p := s.Current()
	v := s.Viewport()
	if p == nil {
		return f
	}
	rowOff, colOff := p.Offsets()
	f.Rows = make([]string, v.Height)
	f.PastEnd = make([]bool, v.Height)
	for i := 0; i < v.Height; i++ {
		row := p.Row(rowOff + i)
		if row == nil {
			f.Rows[i] = emptyRowMarker
			f.PastEnd[i] = true
			continue
		}
		f.Rows[i] = row.RenderedSlice(colOff, v.Width)
	}

	f.StatusLeft, f.StatusRight = statusLine(p, s.width)
	if label, input, ok := s.PromptText(); ok {
		f.Message = label + input
	} else {
		f.Message = s.Status()
	}

	f.VBar, f.ShowVBar = viewport.Scrollbar(p.NumRows(), v.Height, rowOff, v.Margin)
	f.HBar, f.ShowHBar = viewport.Scrollbar(p.MaxRenderedWidth(), v.Width, colOff, v.Margin)

	switch s.mode {
	case ModeOpen:
		rx, ry := p.RenderCursor()
		f.CursorX, f.CursorY = rx-colOff, ry-rowOff
		// Screen cells, not runes: wide runes left of the cursor take two.
		if row := p.CurrentRow(); row != nil {
			f.CursorX = runewidth.StringWidth(row.RenderedSlice(colOff, rx-colOff))
		}
		f.ShowCursor = true
	case ModePrompt:
		f.CursorX = min(runewidth.StringWidth(f.Message), max(0, s.width-1))
		f.CursorY = s.height - 1
		f.ShowCursor = true
	}
	return f
}

func statusLine(p *buffer.Page, width int) (string, string) {
	left := fmt.Sprintf("%d lines", p.NumRows())
	if p.ReadOnly() {
		left += " [RO]"
	}
	_, cy := p.Cursor()
	rx, _ := p.RenderCursor()
	right := fmt.Sprintf("Ln %d, Col %d", cy+1, rx+1)
	if room := width - runewidth.StringWidth(right) - 1; runewidth.StringWidth(left) > room {
		left = runewidth.Truncate(left, max(0, room), "")
	}
	return left, right
}

// tabLabel formats a page for the tab bar: a dirty marker, then the name
// padded and truncated to fit, then the separator.
func tabLabel(p *buffer.Page) string {
	name := p.Name()
	if name == "" {
		name = noName
	}
	if p.Dirty() {
		name = "*" + name
	}
	name = runewidth.Truncate(name, tabLabelMax, "")
	return runewidth.FillRight(name, tabLabelMin) + tabSeparator
}

// scrollTabs moves the tab bar so the current tab is fully visible.
func (s *Session) scrollTabs() {
	if s.current < 0 {
		s.pageScroll = 0
		return
	}
	if s.pageScroll > s.current {
		s.pageScroll = s.current
	}
	for s.pageScroll < s.current {
		used := 0
		for _, p := range s.pages[s.pageScroll : s.current+1] {
			used += runewidth.StringWidth(tabLabel(p))
		}
		if used <= s.width {
			break
		}
		s.pageScroll++
	}
}

// PageScroll returns the index of the first tab shown on the tab bar.
func (s *Session) PageScroll() int { return s.pageScroll }

func (s *Session) tabLayout() []Tab {
	var tabs []Tab
	x := 0
	for i := s.pageScroll; i < len(s.pages) && x < s.width; i++ {
		label := tabLabel(s.pages[i])
		tabs = append(tabs, Tab{Label: label, X: x, Current: i == s.current})
		x += runewidth.StringWidth(label)
	}
	return tabs
}

func (s *Session) menuLayout() ([]MenuTitle, *MenuBox) {
	var titles []MenuTitle
	var box *MenuBox
	x := 0
	for i, g := range s.menus.Groups() {
		title := " " + g.Name + " "
		active := s.mode == ModeMenu && i == s.menus.ActiveIndex()
		titles = append(titles, MenuTitle{Name: title, X: x, Active: active})
		if active {
			box = groupBox(g.Entries(), g.SelectedIndex(), x)
		}
		x += runewidth.StringWidth(title)
	}
	return titles, box
}

func groupBox(entries []menu.Entry, selected, x int) *MenuBox {
	box := &MenuBox{X: x, Y: 1}
	nameW, hintW := 0, 0
	for i, e := range entries {
		item := MenuItem{Name: e.Name, Hint: e.Hint(), Separator: e.IsSeparator(), Selected: i == selected}
		nameW = max(nameW, runewidth.StringWidth(item.Name))
		hintW = max(hintW, runewidth.StringWidth(item.Hint))
		box.Items = append(box.Items, item)
	}
	box.Width = nameW + 2
	if hintW > 0 {
		box.Width += hintW + 2
	}
	return box
}

// padMenuItem lays out name and hint across width cells.
func padMenuItem(it MenuItem, width int) string {
	if it.Separator {
		return strings.Repeat("-", width)
	}
	line := " " + it.Name
	gap := width - runewidth.StringWidth(line) - runewidth.StringWidth(it.Hint) - 1
	if gap < 1 {
		gap = 1
	}
	line += strings.Repeat(" ", gap) + it.Hint
	return runewidth.FillRight(runewidth.Truncate(line, width, ""), width)
}
