package menu

import "testing"

func TestUpWrapSkipsSeparator(t *testing.T) {
	g := NewGroup("File", 'f', Separator(), Item("New", 'n'), Item("Quit", 'q'))
	if g.SelectedIndex() != 1 {
		t.Fatalf("selection should start on the first selectable entry, got %d", g.SelectedIndex())
	}
	g.Prev()
	e, ok := g.Selected()
	if !ok || e.Name != "Quit" {
		t.Fatalf("expected Up to wrap to Quit, got %+v", e)
	}
}

func TestSelectionFromSeparatorWrapsToLast(t *testing.T) {
	g := &Group{entries: []Entry{Separator(), Item("New", 'n'), Item("Quit", 'q')}}
	g.selected = 0
	g.Prev()
	if g.SelectedIndex() != 2 {
		t.Fatalf("expected index 2, got %d", g.SelectedIndex())
	}
}

func TestDownWrapsAndSkipsSeparators(t *testing.T) {
	g := NewGroup("Edit", 'e', Item("A", 'a'), Separator(), Separator(), Item("B", 'b'))
	g.Next()
	if g.SelectedIndex() != 3 {
		t.Fatalf("expected B, got %d", g.SelectedIndex())
	}
	g.Next()
	if g.SelectedIndex() != 0 {
		t.Fatalf("expected wrap to A, got %d", g.SelectedIndex())
	}
}

func TestOnlySeparators(t *testing.T) {
	g := NewGroup("Empty", 'x', Separator(), Separator())
	if g.SelectedIndex() != -1 {
		t.Fatalf("expected no selection, got %d", g.SelectedIndex())
	}
	g.Next()
	if g.SelectedIndex() != -1 {
		t.Fatalf("expected no selection after Next, got %d", g.SelectedIndex())
	}
	if g.Select(0) {
		t.Fatalf("separators must not be selectable")
	}
}

func TestInsertDeleteKeepSelection(t *testing.T) {
	g := NewGroup("File", 'f', Item("New", 'n'), Item("Quit", 'q'))
	g.Select(1)
	g.Insert(0, Item("Open", 'o'))
	if e, _ := g.Selected(); e.Name != "Quit" {
		t.Fatalf("selection should follow Quit after insert, got %q", e.Name)
	}
	g.Delete(-1)
	e, ok := g.Selected()
	if !ok || e.IsSeparator() {
		t.Fatalf("selection must rest on a selectable entry, got %+v", e)
	}
	g.Insert(1, Separator())
	g.Delete(0)
	if e, _ := g.Selected(); e.IsSeparator() {
		t.Fatalf("selection landed on a separator")
	}
}

func TestHint(t *testing.T) {
	cases := []struct {
		e    Entry
		want string
	}{
		{Item("Save", 's'), "^S"},
		{Item("Help", '1'), "F1"},
		{Item("Menu", '0'), "F10"},
		{Command("About", "about"), ""},
		{Separator(), ""},
	}
	for _, c := range cases {
		if got := c.e.Hint(); got != c.want {
			t.Fatalf("%q hint = %q want %q", c.e.Name, got, c.want)
		}
	}
}

func TestBarNavigation(t *testing.T) {
	b := NewBar(
		NewGroup("File", 'f', Item("New", 'n')),
		NewGroup("Edit", 'e', Item("Go", 'g')),
		NewGroup("Help", 'h', Item("Help", '1')),
	)
	b.Prev()
	if b.ActiveIndex() != 2 {
		t.Fatalf("expected wrap to Help, got %d", b.ActiveIndex())
	}
	b.Next()
	if b.ActiveIndex() != 0 {
		t.Fatalf("expected wrap to File, got %d", b.ActiveIndex())
	}
	if got := b.FindHotkey('E'); got != 1 {
		t.Fatalf("expected Edit for E, got %d", got)
	}
	if got := b.FindHotkey('z'); got != -1 {
		t.Fatalf("expected -1 for z, got %d", got)
	}
	if b.SetActive(5) || b.ActiveIndex() != 0 {
		t.Fatalf("out of range SetActive must be ignored")
	}
}

func TestFind(t *testing.T) {
	b := NewBar(
		NewGroup("File", 'f', Item("New", 'n'), Item("Open", 'o'), Separator(), Item("Save", 's'), Command("Save As...", "save-as")),
		NewGroup("Edit", 'e', Item("Go to line", 'g'), Item("Command palette", 'p')),
	)
	cases := []struct {
		q    string
		want string
	}{
		{"save", "Save"},
		{"save as", "Save As..."},
		{"go", "Go to line"},
		{"cmdpal", "Command palette"},
		{"OPEN", "Open"},
	}
	for _, c := range cases {
		ref, ok := b.Find(c.q)
		if !ok {
			t.Fatalf("%q: no match", c.q)
		}
		e, _ := b.Lookup(ref)
		if e.Name != c.want {
			t.Fatalf("%q: got %q want %q", c.q, e.Name, c.want)
		}
	}
	if _, ok := b.Find("zzz"); ok {
		t.Fatalf("expected no match for zzz")
	}
	if _, ok := b.Find("  "); ok {
		t.Fatalf("expected no match for blank query")
	}
}
