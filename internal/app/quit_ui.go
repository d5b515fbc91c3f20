package app

import (
	"errors"
	"fmt"

	"example.com/neodymium/pkg/buffer"
)

var errAbort = errors.New("close aborted")

// CloseAllPages runs the quit flow. When unsaved pages exist it asks once
// whether to save them all. It returns false, with every page still open,
// when the user cancels; otherwise the session ends in ModeClosed.
func (s *Session) CloseAllPages() bool {
	save := false
	if s.anyUnsaved() {
		ans, err := s.Ask("Save all files? (y/n)", "yn")
		if err != nil {
			s.SetStatus("Quit cancelled")
			return false
		}
		save = ans == 'y'
	}
	if save {
		for _, p := range s.pages {
			if !p.NeedsSave() {
				continue
			}
			if err := s.saveForQuit(p); err != nil {
				s.SetStatus("Quit cancelled")
				return false
			}
		}
	}
	for len(s.pages) > 0 {
		s.removePage(len(s.pages) - 1)
	}
	s.setMode(ModeClosed)
	return true
}

func (s *Session) anyUnsaved() bool {
	for _, p := range s.pages {
		if p.NeedsSave() {
			return true
		}
	}
	return false
}

// saveForQuit saves p during the quit flow. A failed write may be retried,
// skipped (nil) or abort the quit (errAbort).
func (s *Session) saveForQuit(p *buffer.Page) error {
	path := p.FullPath()
	if path == "" {
		var err error
		if path, err = s.Prompt(fmt.Sprintf("Save page %d as: ", s.indexOf(p)+1)); err != nil {
			return err
		}
	}
	for {
		err := s.write(p, path)
		if err == nil {
			return nil
		}
		ans, aerr := s.Ask(fmt.Sprintf("Save failed: %v. Retry, skip, or abort? (r/s/a)", err), "rsa")
		switch {
		case aerr != nil || ans == 'a':
			return errAbort
		case ans == 's':
			return nil
		}
	}
}

func (s *Session) indexOf(p *buffer.Page) int {
	for i, q := range s.pages {
		if q == p {
			return i
		}
	}
	return -1
}

// closeCurrent closes the current page, asking first whether to save
// unsaved changes.
func (s *Session) closeCurrent() {
	p := s.Current()
	if p == nil {
		return
	}
	save := false
	if p.NeedsSave() {
		ans, err := s.Ask("Save changes? (y/n)", "yn")
		if err != nil {
			return
		}
		save = ans == 'y'
	}
	if err := s.ClosePage(s.current, save); err != nil && !errors.Is(err, ErrCancelled) {
		s.SetStatus("Close failed: " + err.Error())
	}
}
