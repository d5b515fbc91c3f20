package app

import (
	"strings"
	"testing"

	"example.com/neodymium/pkg/config"
	"github.com/gdamore/tcell/v2"
)

func feed(s *Session, evs ...tcell.Event) {
	for _, ev := range evs {
		s.HandleEvent(ev)
		s.Update()
	}
}

func TestTypingEditsCurrentPage(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, typed("hello")...)
	feed(s, key(tcell.KeyEnter))
	feed(s, typed("world")...)
	feed(s, key(tcell.KeyUp), key(tcell.KeyEnd), key(tcell.KeyBackspace2))
	p := s.Current()
	if got := strings.Join(p.Lines(), "|"); got != "hell|world" {
		t.Fatalf("unexpected lines %q", got)
	}
	if cx, cy := p.Cursor(); cx != 4 || cy != 0 {
		t.Fatalf("expected cursor (4,0), got (%d,%d)", cx, cy)
	}
	feed(s, key(tcell.KeyDelete))
	if got := strings.Join(p.Lines(), "|"); got != "hellworld" {
		t.Fatalf("delete at end of line should join, got %q", got)
	}
}

func TestTabKeyInsertsTab(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, key(tcell.KeyTab))
	feed(s, typed("x")...)
	p := s.Current()
	if p.Row(0).Text() != "\tx" || p.Row(0).Rendered() != "    x" {
		t.Fatalf("unexpected row %q rendered %q", p.Row(0).Text(), p.Row(0).Rendered())
	}
	if rx, _ := p.RenderCursor(); rx != 5 {
		t.Fatalf("expected render column 5, got %d", rx)
	}
}

func TestCtrlRunesAreNotInserted(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, ctrl('k'), alt('z'))
	if s.Current().NumRows() != 0 || s.Current().Dirty() {
		t.Fatalf("modified runes must not be inserted")
	}
}

func TestReadOnlyEditSetsStatus(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, key(tcell.KeyF1))
	p := s.Current()
	if p.Name() != "Help" || !p.ReadOnly() {
		t.Fatalf("F1 should open the help page")
	}
	before := strings.Join(p.Lines(), "\n")
	feed(s, typed("x")...)
	if strings.Join(p.Lines(), "\n") != before || p.Dirty() {
		t.Fatalf("read-only page was modified")
	}
	if s.Status() != "Page is read-only" {
		t.Fatalf("unexpected status %q", s.Status())
	}
}

func TestCtrlArrowsSwitchTabs(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	s.OpenPage(Blank())
	feed(s, tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModCtrl))
	if s.CurrentIndex() != 0 {
		t.Fatalf("Ctrl+Left should select the previous tab")
	}
	feed(s, tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModCtrl))
	if s.CurrentIndex() != 1 {
		t.Fatalf("Ctrl+Right should select the next tab")
	}
}

func TestKeymapCommands(t *testing.T) {
	store := newMemStore()
	store.files["a.txt"] = "1\n2\n3\n4\n"
	s, src := newTestSession(t, store)

	feed(s, ctrl('n'))
	if s.NumPages() != 2 {
		t.Fatalf("Ctrl+N should open a blank page, got %d pages", s.NumPages())
	}

	src.push(answer("a.txt")...)
	feed(s, ctrl('o'))
	if s.NumPages() != 3 || s.Current().FullPath() != "a.txt" {
		t.Fatalf("Ctrl+O should open a.txt")
	}

	src.push(answer("3")...)
	feed(s, ctrl('g'))
	if cx, cy := s.Current().Cursor(); cx != 0 || cy != 2 {
		t.Fatalf("goto 3 should land on (0,2), got (%d,%d)", cx, cy)
	}

	src.push(answer("x")...)
	feed(s, ctrl('g'))
	if !strings.HasPrefix(s.Status(), "Invalid line number") {
		t.Fatalf("unexpected status %q", s.Status())
	}

	feed(s, ctrl('w'))
	if s.NumPages() != 2 {
		t.Fatalf("Ctrl+W on a clean page should close it without asking")
	}
}

func TestCtrlKeyCodesMatchKeymap(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, tcell.NewEventKey(tcell.KeyCtrlN, 0, tcell.ModCtrl))
	if s.NumPages() != 2 {
		t.Fatalf("control key codes should match Ctrl bindings")
	}
}

func TestCloseCurrentAsks(t *testing.T) {
	store := newMemStore()
	store.files["a.txt"] = "a\n"
	s, src := newTestSession(t, store, "a.txt")
	s.OpenPage(Blank())
	s.SwitchPage(0)
	feed(s, typed("z")...)

	src.push(key(tcell.KeyEsc))
	feed(s, ctrl('w'))
	if s.NumPages() != 2 {
		t.Fatalf("cancelled close must keep the page")
	}

	src.push(typed("y")...)
	feed(s, ctrl('w'))
	if s.NumPages() != 1 || store.files["a.txt"] != "za\n" {
		t.Fatalf("y should save then close, files=%v pages=%d", store.files, s.NumPages())
	}
}

func TestSaveKeyWritesFile(t *testing.T) {
	store := newMemStore()
	store.files["a.txt"] = "abc\n"
	s, _ := newTestSession(t, store, "a.txt")
	feed(s, key(tcell.KeyEnd))
	feed(s, typed("d")...)
	feed(s, ctrl('s'))
	if store.files["a.txt"] != "abcd\n" || s.Current().Dirty() {
		t.Fatalf("Ctrl+S should save, got %q", store.files["a.txt"])
	}
}

func TestPromptModeDuringPrompt(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	var seen []Mode
	var texts []string
	src.onPoll = func() {
		seen = append(seen, s.Mode())
		_, input, _ := s.PromptText()
		texts = append(texts, input)
	}
	src.push(answer("ab")...)
	got, err := s.Prompt("Name: ")
	if err != nil || got != "ab" {
		t.Fatalf("Prompt = %q, %v", got, err)
	}
	for _, m := range seen {
		if m != ModePrompt {
			t.Fatalf("expected prompt mode while reading input, saw %v", m)
		}
	}
	if texts[len(texts)-1] != "ab" {
		t.Fatalf("expected input ab before Enter, got %q", texts[len(texts)-1])
	}
	if s.Mode() != ModeOpen {
		t.Fatalf("mode not restored, got %v", s.Mode())
	}
}

func TestPromptIgnoresEmptyEnterAndEdits(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	src.push(key(tcell.KeyEnter))
	src.push(typed("abx")...)
	src.push(key(tcell.KeyBackspace2), key(tcell.KeyEnter))
	got, err := s.PromptWith("Path: ", "")
	if err != nil || got != "ab" {
		t.Fatalf("PromptWith = %q, %v", got, err)
	}
}

func TestPromptExhaustedSourceCancels(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	if _, err := s.Prompt("x: "); err != ErrCancelled {
		t.Fatalf("expected ErrCancelled, got %v", err)
	}
}

func TestPromptHandlesResize(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	src.push(tcell.NewEventResize(100, 30))
	src.push(answer("ok")...)
	if _, err := s.Prompt("x: "); err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if w, h := s.Size(); w != 100 || h != 30 {
		t.Fatalf("resize during prompt not applied, got %dx%d", w, h)
	}
}

func TestAskMatchesCaseInsensitive(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	src.push(typed("qY")...)
	r, err := s.Ask("Sure? (y/n)", "yn")
	if err != nil || r != 'y' {
		t.Fatalf("Ask = %q, %v", r, err)
	}
}

func TestMenuHotkeys(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, alt('f'))
	if s.Mode() != ModeMenu || s.Menus().ActiveIndex() != 0 {
		t.Fatalf("Alt+F should open the File menu")
	}
	feed(s, alt('e'))
	if s.Mode() != ModeMenu || s.Menus().ActiveIndex() != 1 {
		t.Fatalf("Alt+E should switch to the Edit menu")
	}
	feed(s, alt('e'))
	if s.Mode() != ModeOpen {
		t.Fatalf("Alt+E on the open Edit menu should close it")
	}
	feed(s, key(tcell.KeyF10))
	if s.Mode() != ModeMenu || s.Menus().ActiveIndex() != 0 {
		t.Fatalf("F10 should open the first menu")
	}
	feed(s, key(tcell.KeyEsc))
	if s.Mode() != ModeOpen {
		t.Fatalf("Esc should close the menu")
	}
}

func TestMenuNavigationAndActivate(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	feed(s, alt('f'))
	g := s.Menus().Active()
	if e, _ := g.Selected(); e.Name != "New" {
		t.Fatalf("expected New selected, got %q", e.Name)
	}
	feed(s, key(tcell.KeyDown), key(tcell.KeyDown))
	if e, _ := g.Selected(); e.Name != "Save" {
		t.Fatalf("Down should skip the separator, got %q", e.Name)
	}
	feed(s, key(tcell.KeyUp), key(tcell.KeyUp), key(tcell.KeyUp))
	if e, _ := g.Selected(); e.Name != "Quit" {
		t.Fatalf("Up should wrap to the last entry, got %q", e.Name)
	}
	feed(s, key(tcell.KeyDown))
	feed(s, key(tcell.KeyRight))
	if s.Menus().ActiveIndex() != 1 {
		t.Fatalf("Right should move to the Edit menu")
	}
	feed(s, key(tcell.KeyLeft))
	feed(s, key(tcell.KeyEnter))
	if s.Mode() != ModeOpen || s.NumPages() != 2 {
		t.Fatalf("activating New should open a page, mode=%v pages=%d", s.Mode(), s.NumPages())
	}
}

func TestMenuDirectActions(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	edit := s.Menus().Groups()[1]
	pick := func(name string) {
		t.Helper()
		for i, e := range edit.Entries() {
			if e.Name == name {
				edit.Select(i)
				feed(s, alt('e'), key(tcell.KeyEnter))
				return
			}
		}
		t.Fatalf("no entry %q", name)
	}

	pick("Toggle read-only")
	if !s.Current().ReadOnly() || s.Status() != "Page is now read-only" {
		t.Fatalf("toggle read-only failed, status %q", s.Status())
	}
	pick("Toggle read-only")
	if s.Current().ReadOnly() {
		t.Fatalf("second toggle should make the page writable")
	}

	src.push(key(tcell.KeyBackspace2))
	src.push(answer("8")...)
	pick("Tab stop...")
	if s.TabStop() != 8 || s.Current().TabStop() != 8 {
		t.Fatalf("expected tab stop 8, got %d", s.TabStop())
	}

	src.push(key(tcell.KeyBackspace2))
	src.push(answer("99")...)
	pick("Tab stop...")
	if s.TabStop() != 8 || !strings.HasPrefix(s.Status(), "Tab stop must be") {
		t.Fatalf("out of range tab stop must be rejected, status %q", s.Status())
	}
}

func TestMenuAbout(t *testing.T) {
	s, _ := newTestSession(t, newMemStore())
	help := s.Menus().Groups()[2]
	help.Select(1)
	feed(s, alt('h'), key(tcell.KeyEnter))
	if s.Status() != "neodymium test" {
		t.Fatalf("unexpected status %q", s.Status())
	}
}

func TestMenuHintsFollowKeymap(t *testing.T) {
	cfg := config.Default()
	kb, err := config.ParseKeybinding("F5")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg.Keymap[config.CmdNew] = kb
	s := New(Options{Config: cfg, Files: newMemStore()})
	s.Resize(80, 24)
	s.Update()

	e, _ := s.Menus().Groups()[0].Entry(0)
	if e.Name != "New" || e.Hint() != "F5" {
		t.Fatalf("expected New bound to F5, got %q %q", e.Name, e.Hint())
	}
	feed(s, alt('f'), key(tcell.KeyEnter))
	if s.NumPages() != 2 {
		t.Fatalf("menu entry should replay F5")
	}
	feed(s, ctrl('n'))
	if s.NumPages() != 2 {
		t.Fatalf("Ctrl+N is no longer bound to new")
	}
}

func TestPaletteRunsCommand(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	src.push(answer("new")...)
	feed(s, ctrl('p'))
	if s.NumPages() != 2 {
		t.Fatalf("palette should run New")
	}
	src.push(answer("zzzz")...)
	feed(s, ctrl('p'))
	if !strings.HasPrefix(s.Status(), "No command matches") {
		t.Fatalf("unexpected status %q", s.Status())
	}
}

func TestQuitKeyClosesSession(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	feed(s, typed("x")...)
	src.push(typed("n")...)
	feed(s, ctrl('q'))
	if !s.Closed() {
		t.Fatalf("expected closed session")
	}
}

func TestRunLoop(t *testing.T) {
	store := newMemStore()
	s, src := newTestSession(t, store)
	src.push(typed("hi")...)
	src.push(ctrl('q'))
	src.push(typed("y")...)
	src.push(answer("out.txt")...)
	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !s.Closed() || store.files["out.txt"] != "hi\n" {
		t.Fatalf("expected saved and closed, files=%v", store.files)
	}
}

func TestRunEndsWhenEventsRunOut(t *testing.T) {
	s, src := newTestSession(t, newMemStore())
	src.push(typed("a")...)
	if err := s.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if s.Closed() || s.Current().Row(0).Text() != "a" {
		t.Fatalf("run should stop at the end of input without closing")
	}
}
