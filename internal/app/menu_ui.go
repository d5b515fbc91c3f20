package app

import (
	"example.com/neodymium/pkg/config"
	"example.com/neodymium/pkg/menu"
	"github.com/gdamore/tcell/v2"
)

// Capabilities invoked directly by menu entries.
const (
	actSaveAs         menu.Direct = "save-as"
	actNextTab        menu.Direct = "next-tab"
	actPrevTab        menu.Direct = "prev-tab"
	actToggleReadOnly menu.Direct = "toggle-read-only"
	actTabStop        menu.Direct = "tab-stop"
	actNextTheme      menu.Direct = "next-theme"
	actAbout          menu.Direct = "about"
)

// buildMenus creates the File, Edit and Help groups. Entries for keymap
// commands replay whatever key the command is bound to.
func (s *Session) buildMenus() *menu.Bar {
	item := func(name, cmd string) menu.Entry {
		if r, ok := s.Keymap[cmd].Shortcut(); ok {
			return menu.Item(name, r)
		}
		return menu.Command(name, menu.Direct(cmd))
	}
	return menu.NewBar(
		menu.NewGroup("File", 'f',
			item("New", config.CmdNew),
			item("Open", config.CmdOpen),
			menu.Separator(),
			item("Save", config.CmdSave),
			menu.Command("Save As...", actSaveAs),
			menu.Separator(),
			item("Close", config.CmdClose),
			item("Quit", config.CmdQuit),
		),
		menu.NewGroup("Edit", 'e',
			item("Go to line", config.CmdGoto),
			item("Command palette", config.CmdPalette),
			menu.Separator(),
			menu.Command("Next tab", actNextTab),
			menu.Command("Previous tab", actPrevTab),
			menu.Separator(),
			menu.Command("Toggle read-only", actToggleReadOnly),
			menu.Command("Tab stop...", actTabStop),
			menu.Command("Next theme", actNextTheme),
		),
		menu.NewGroup("Help", 'h',
			item("Help", config.CmdHelp),
			menu.Command("About", actAbout),
		),
	)
}

// activate runs a menu entry: a shortcut is replayed through the Open
// handler, a direct action is invoked on the session.
func (s *Session) activate(e menu.Entry) {
	if e.IsSeparator() {
		return
	}
	s.Logger.Event("menu.activate", map[string]any{"name": e.Name})
	switch a := e.Action.(type) {
	case menu.Shortcut:
		if ev, ok := config.ShortcutEvent(rune(a)); ok {
			s.handleOpen(ev)
		}
	case menu.Direct:
		s.runDirect(a)
	}
}

func (s *Session) runDirect(a menu.Direct) {
	p := s.Current()
	switch a {
	case actSaveAs:
		_ = s.SaveAs(p)
	case actNextTab:
		s.NextPage()
	case actPrevTab:
		s.PrevPage()
	case actToggleReadOnly:
		p.SetReadOnly(!p.ReadOnly())
		if p.ReadOnly() {
			s.SetStatus("Page is now read-only")
		} else {
			s.SetStatus("Page is now writable")
		}
	case actTabStop:
		s.runTabStopPrompt()
	case actNextTheme:
		s.NextTheme()
	case actAbout:
		s.SetStatus("neodymium " + s.Version)
	default:
		s.runCommand(string(a))
	}
}

// handleMenu navigates the open menu.
func (s *Session) handleMenu(ev *tcell.EventKey) {
	g := s.menus.Active()
	if g == nil {
		s.setMode(ModeOpen)
		return
	}
	switch {
	case isCancelKey(ev), ev.Key() == tcell.KeyF10:
		s.setMode(ModeOpen)
	case ev.Key() == tcell.KeyUp:
		g.Prev()
	case ev.Key() == tcell.KeyDown:
		g.Next()
	case ev.Key() == tcell.KeyLeft:
		s.menus.Prev()
	case ev.Key() == tcell.KeyRight:
		s.menus.Next()
	case ev.Key() == tcell.KeyEnter:
		s.setMode(ModeOpen)
		if e, ok := g.Selected(); ok {
			s.activate(e)
		}
	default:
		s.toggleMenuHotkey(ev)
	}
}

// toggleMenuHotkey handles Alt+letter: it opens the matching group, switches
// to it from another group, or closes it when it is already active. It
// reports whether ev named a group.
func (s *Session) toggleMenuHotkey(ev *tcell.EventKey) bool {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&tcell.ModAlt == 0 {
		return false
	}
	i := s.menus.FindHotkey(ev.Rune())
	if i < 0 {
		return false
	}
	if s.mode == ModeMenu && i == s.menus.ActiveIndex() {
		s.setMode(ModeOpen)
		return true
	}
	s.menus.SetActive(i)
	s.setMode(ModeMenu)
	return true
}

// runPalette prompts for a command name and activates the closest menu entry.
func (s *Session) runPalette() {
	q, err := s.Prompt("Command: ")
	if err != nil {
		return
	}
	ref, ok := s.menus.Find(q)
	if !ok {
		s.SetStatus("No command matches " + q)
		return
	}
	e, _ := s.menus.Lookup(ref)
	s.activate(e)
}
