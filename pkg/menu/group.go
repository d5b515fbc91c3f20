package menu

import "unicode"

// Group is a named list of entries with a selection that always rests on a
// selectable entry once one exists.
type Group struct {
	Name string
	// Hotkey activates the group together with Alt.
	Hotkey   rune
	entries  []Entry
	selected int
}

// NewGroup creates a group holding entries.
func NewGroup(name string, hotkey rune, entries ...Entry) *Group {
	g := &Group{Name: name, Hotkey: unicode.ToLower(hotkey), selected: -1}
	for _, e := range entries {
		g.Insert(-1, e)
	}
	return g
}

// Len returns the number of entries, separators included.
func (g *Group) Len() int { return len(g.entries) }

// Entries returns a copy of the entries.
func (g *Group) Entries() []Entry {
	return append([]Entry(nil), g.entries...)
}

// Entry returns entry i.
func (g *Group) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(g.entries) {
		return Entry{}, false
	}
	return g.entries[i], true
}

// SelectedIndex returns the selected entry index, -1 when nothing is selectable.
func (g *Group) SelectedIndex() int { return g.selected }

// Selected returns the selected entry.
func (g *Group) Selected() (Entry, bool) { return g.Entry(g.selected) }

// Select moves the selection to entry i if it is selectable.
func (g *Group) Select(i int) bool {
	e, ok := g.Entry(i)
	if !ok || e.IsSeparator() {
		return false
	}
	g.selected = i
	return true
}

// Insert adds e at position at, or at the end when at is -1 or out of range.
func (g *Group) Insert(at int, e Entry) {
	if at < 0 || at > len(g.entries) {
		at = len(g.entries)
	}
	g.entries = append(g.entries, Entry{})
	copy(g.entries[at+1:], g.entries[at:])
	g.entries[at] = e
	if g.selected >= at {
		g.selected++
	}
	g.fixSelection()
}

// Delete removes the entry at position at, or the last entry when at is -1.
func (g *Group) Delete(at int) {
	if len(g.entries) == 0 {
		return
	}
	if at < 0 || at >= len(g.entries) {
		at = len(g.entries) - 1
	}
	g.entries = append(g.entries[:at], g.entries[at+1:]...)
	if g.selected > at {
		g.selected--
	}
	g.fixSelection()
}

// Next moves the selection to the next selectable entry, wrapping.
func (g *Group) Next() { g.step(1) }

// Prev moves the selection to the previous selectable entry, wrapping.
func (g *Group) Prev() { g.step(-1) }

func (g *Group) step(delta int) {
	n := len(g.entries)
	if n == 0 {
		return
	}
	i := g.selected
	if i < 0 {
		i = 0
	}
	for j := 0; j < n; j++ {
		i = ((i+delta)%n + n) % n
		if !g.entries[i].IsSeparator() {
			g.selected = i
			return
		}
	}
}

func (g *Group) fixSelection() {
	if g.selected >= 0 && g.selected < len(g.entries) && !g.entries[g.selected].IsSeparator() {
		return
	}
	g.selected = -1
	for i, e := range g.entries {
		if !e.IsSeparator() {
			g.selected = i
			return
		}
	}
}
