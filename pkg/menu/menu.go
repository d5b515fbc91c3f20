// Package menu models the editor's menu bar: named groups of selectable
// entries and separators. Entries either replay a keyboard shortcut or name a
// direct capability of the editor.
package menu

// Action is what activating an entry does. It is one of Shortcut or Direct.
type Action interface {
	isAction()
}

// Shortcut replays the control-key (letters) or function-key (digits) input
// bound to the same command.
type Shortcut rune

// Direct names an editor capability invoked with the session as context.
type Direct string

func (Shortcut) isAction() {}
func (Direct) isAction()   {}

// Entry is one line of a menu group. An entry without a name is a separator.
type Entry struct {
	Name   string
	Action Action
}

// Separator returns a non-selectable entry.
func Separator() Entry { return Entry{} }

// Item returns an entry that replays shortcut.
func Item(name string, shortcut rune) Entry {
	return Entry{Name: name, Action: Shortcut(shortcut)}
}

// Command returns an entry that invokes the named capability.
func Command(name string, capability Direct) Entry {
	return Entry{Name: name, Action: capability}
}

// IsSeparator reports whether e cannot be selected.
func (e Entry) IsSeparator() bool { return e.Name == "" }

// Hint returns the key label shown next to the entry, empty for direct
// actions and separators.
func (e Entry) Hint() string {
	sc, ok := e.Action.(Shortcut)
	if !ok || e.IsSeparator() {
		return ""
	}
	r := rune(sc)
	switch {
	case r == '0':
		return "F10"
	case r >= '1' && r <= '9':
		return "F" + string(r)
	case r >= 'a' && r <= 'z':
		return "^" + string(r-'a'+'A')
	case r >= 'A' && r <= 'Z':
		return "^" + string(r)
	}
	return ""
}
