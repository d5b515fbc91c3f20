package app

import (
	"fmt"

	"example.com/neodymium/pkg/buffer"
)

// Save writes p to its path. An untitled page first prompts for a path; a
// cancelled prompt leaves the page untouched. A failed write offers to retry
// until it succeeds or the user cancels, which keeps the page dirty.
func (s *Session) Save(p *buffer.Page) error {
	if p.ReadOnly() {
		s.SetStatus("Page is read-only")
		return buffer.ErrReadOnly
	}
	path := p.FullPath()
	if path == "" {
		var err error
		if path, err = s.Prompt("Save as: "); err != nil {
			s.SetStatus("Save cancelled")
			return err
		}
	}
	return s.writeWithRetry(p, path)
}

// SaveAs prompts for a new path, pre-filled with the current one, and writes
// p there.
func (s *Session) SaveAs(p *buffer.Page) error {
	if p.ReadOnly() {
		s.SetStatus("Page is read-only")
		return buffer.ErrReadOnly
	}
	path, err := s.PromptWith("Save as: ", p.FullPath())
	if err != nil {
		s.SetStatus("Save cancelled")
		return err
	}
	return s.writeWithRetry(p, path)
}

func (s *Session) writeWithRetry(p *buffer.Page, path string) error {
	for {
		err := s.write(p, path)
		if err == nil {
			return nil
		}
		ans, aerr := s.Ask(fmt.Sprintf("Save failed: %v. Retry or cancel? (r/c)", err), "rc")
		if aerr != nil || ans == 'c' {
			s.SetStatus("Save cancelled")
			return err
		}
	}
}

// write serializes p to path and, on success, adopts path and clears Dirty.
func (s *Session) write(p *buffer.Page, path string) error {
	data := p.Bytes()
	if err := s.Files.WriteFile(path, data); err != nil {
		s.Logger.Event("page.save.error", map[string]any{"path": path, "error": err.Error()})
		return err
	}
	if path != p.FullPath() {
		p.SetFullPath(path)
	}
	p.MarkSaved()
	s.Logger.Event("page.save", map[string]any{"path": path, "bytes": len(data), "rows": p.NumRows()})
	s.SetStatus(fmt.Sprintf("%d bytes written to %s", len(data), p.Name()))
	return nil
}
