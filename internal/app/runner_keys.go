package app

import (
	"errors"

	"example.com/neodymium/pkg/buffer"
	"example.com/neodymium/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// commandOrder fixes the order keymap bindings are tried in.
var commandOrder = []string{
	config.CmdQuit,
	config.CmdSave,
	config.CmdOpen,
	config.CmdNew,
	config.CmdClose,
	config.CmdGoto,
	config.CmdPalette,
	config.CmdHelp,
}

// HandleEvent feeds one input event to the state machine.
func (s *Session) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.Resize(ev.Size())
	case *tcell.EventKey:
		switch s.mode {
		case ModeOpen:
			s.handleOpen(ev)
		case ModeMenu:
			s.handleMenu(ev)
		}
	}
}

// matchCommand returns the keymap command bound to ev.
func (s *Session) matchCommand(ev *tcell.EventKey) (string, bool) {
	for _, cmd := range commandOrder {
		if kb, ok := s.Keymap[cmd]; ok && kb.Key != 0 && kb.Matches(ev) {
			return cmd, true
		}
	}
	return "", false
}

// handleOpen handles a key in normal editing mode.
func (s *Session) handleOpen(ev *tcell.EventKey) {
	s.Logger.Event("key", map[string]any{"key": int(ev.Key()), "rune": string(ev.Rune()), "modifiers": int(ev.Modifiers())})
	if s.toggleMenuHotkey(ev) {
		return
	}
	if ev.Key() == tcell.KeyF10 {
		s.menus.SetActive(0)
		s.setMode(ModeMenu)
		return
	}
	if cmd, ok := s.matchCommand(ev); ok {
		s.runCommand(cmd)
		return
	}
	p := s.Current()
	if p == nil {
		return
	}
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	var err error
	switch ev.Key() {
	case tcell.KeyLeft:
		if ctrl {
			s.PrevPage()
		} else {
			p.MoveCursor(buffer.Left, 1)
		}
	case tcell.KeyRight:
		if ctrl {
			s.NextPage()
		} else {
			p.MoveCursor(buffer.Right, 1)
		}
	case tcell.KeyUp:
		p.MoveCursor(buffer.Up, 1)
	case tcell.KeyDown:
		p.MoveCursor(buffer.Down, 1)
	case tcell.KeyHome:
		p.SetCursorCol(0)
	case tcell.KeyEnd:
		p.SetCursorCol(-1)
	case tcell.KeyPgUp:
		p.PageUp(s.Viewport().Height)
	case tcell.KeyPgDn:
		p.PageDown(s.Viewport().Height)
	case tcell.KeyEnter:
		err = p.InsertNewline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		err = p.DeleteCharBefore()
	case tcell.KeyDelete:
		err = p.DeleteCharAfter()
	case tcell.KeyTab:
		err = p.InsertChar('\t')
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) == 0 {
			err = p.InsertChar(ev.Rune())
		}
	}
	if errors.Is(err, buffer.ErrReadOnly) {
		s.SetStatus("Page is read-only")
	}
}

// runCommand executes a keymap command.
func (s *Session) runCommand(cmd string) {
	switch cmd {
	case config.CmdNew:
		_, _ = s.OpenPage(Blank())
	case config.CmdOpen:
		s.runOpenPrompt()
	case config.CmdSave:
		if p := s.Current(); p != nil {
			_ = s.Save(p)
		}
	case config.CmdClose:
		s.closeCurrent()
	case config.CmdQuit:
		s.CloseAllPages()
	case config.CmdGoto:
		s.runGotoPrompt()
	case config.CmdPalette:
		s.runPalette()
	case config.CmdHelp:
		_, _ = s.OpenPage(Internal(DocHelp))
	}
}
