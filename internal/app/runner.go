package app

import (
	"github.com/gdamore/tcell/v2"
)

// InitScreen initializes a tcell screen if one is not already set.
func (s *Session) InitScreen() error {
	if s.Screen != nil {
		return nil
	}
	scr, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return err
	}
	scr.SetStyle(tcell.StyleDefault)
	scr.Clear()
	s.Screen = scr
	return nil
}

// Fini finalizes the screen if initialized and flushes the logger.
func (s *Session) Fini() {
	if s.Screen != nil {
		s.Screen.Fini()
		s.Screen = nil
	}
	s.Logger.Close()
}

// Run is the event loop: update, paint, then handle one event, until the
// session is closed. A nil event from the source ends the loop.
func (s *Session) Run() error {
	if s.Screen == nil && s.Events == nil {
		if err := s.InitScreen(); err != nil {
			return err
		}
		defer s.Fini()
	}
	if s.Screen != nil {
		s.Resize(s.Screen.Size())
	}
	s.Logger.Event("run.start", map[string]any{"pages": len(s.pages)})
	defer func() {
		s.Logger.Event("run.end", map[string]any{"mode": s.mode.String()})
	}()

	for !s.Closed() {
		s.render()
		ev := s.nextEvent()
		if ev == nil {
			return nil
		}
		s.HandleEvent(ev)
	}
	return nil
}
