package menu

import "unicode"

// Bar is the fixed, ordered set of menu groups shown on the menu bar.
type Bar struct {
	groups []*Group
	active int
}

// NewBar creates a bar over groups with the first group active.
func NewBar(groups ...*Group) *Bar {
	return &Bar{groups: groups}
}

// Groups returns the groups in display order.
func (b *Bar) Groups() []*Group { return b.groups }

// Len returns the number of groups.
func (b *Bar) Len() int { return len(b.groups) }

// ActiveIndex returns the index of the active group.
func (b *Bar) ActiveIndex() int { return b.active }

// Active returns the active group, nil for an empty bar.
func (b *Bar) Active() *Group {
	if b.active < 0 || b.active >= len(b.groups) {
		return nil
	}
	return b.groups[b.active]
}

// SetActive makes group i active; out of range indexes are ignored.
func (b *Bar) SetActive(i int) bool {
	if i < 0 || i >= len(b.groups) {
		return false
	}
	b.active = i
	return true
}

// Next activates the group to the right, wrapping.
func (b *Bar) Next() {
	if len(b.groups) > 0 {
		b.active = (b.active + 1) % len(b.groups)
	}
}

// Prev activates the group to the left, wrapping.
func (b *Bar) Prev() {
	if len(b.groups) > 0 {
		b.active = (b.active - 1 + len(b.groups)) % len(b.groups)
	}
}

// FindHotkey returns the index of the group bound to r, or -1.
func (b *Bar) FindHotkey(r rune) int {
	r = unicode.ToLower(r)
	for i, g := range b.groups {
		if g.Hotkey != 0 && g.Hotkey == r {
			return i
		}
	}
	return -1
}

// Ref locates an entry inside the bar.
type Ref struct {
	Group int
	Entry int
}

// Selectable lists every non-separator entry in display order.
func (b *Bar) Selectable() ([]Ref, []string) {
	var refs []Ref
	var names []string
	for gi, g := range b.groups {
		for ei, e := range g.entries {
			if e.IsSeparator() {
				continue
			}
			refs = append(refs, Ref{Group: gi, Entry: ei})
			names = append(names, e.Name)
		}
	}
	return refs, names
}

// Lookup returns the entry referenced by ref.
func (b *Bar) Lookup(ref Ref) (Entry, bool) {
	if ref.Group < 0 || ref.Group >= len(b.groups) {
		return Entry{}, false
	}
	return b.groups[ref.Group].Entry(ref.Entry)
}
