package app

import (
	_ "embed"
	"fmt"
	"strings"

	"example.com/neodymium/pkg/buffer"
)

// DocHelp identifies the embedded help document.
const DocHelp = "help"

//go:embed help.txt
var helpText string

var internalDocs = map[string]struct {
	name string
	text string
}{
	DocHelp: {name: "Help", text: helpText},
}

// SourceKind tells OpenPage where page content comes from.
type SourceKind int

const (
	SourceBlank SourceKind = iota
	SourceInternal
	SourceFile
)

// Source describes what OpenPage should open.
type Source struct {
	Kind SourceKind
	// ID names an internal document for SourceInternal.
	ID string
	// Path names a file for SourceFile.
	Path string
}

// Blank is an empty, untitled page.
func Blank() Source { return Source{Kind: SourceBlank} }

// Internal is an embedded read-only document.
func Internal(id string) Source { return Source{Kind: SourceInternal, ID: id} }

// File is a document loaded through the session's file store.
func File(path string) Source { return Source{Kind: SourceFile, Path: path} }

// OpenPage appends a page for src and makes it current. On failure the
// status message is set and no page is added.
func (s *Session) OpenPage(src Source) (*buffer.Page, error) {
	var p *buffer.Page
	switch src.Kind {
	case SourceBlank:
		p = buffer.NewPage(s.tabStop)
	case SourceInternal:
		doc, ok := internalDocs[src.ID]
		if !ok {
			err := fmt.Errorf("unknown document %q", src.ID)
			s.SetStatus(err.Error())
			return nil, err
		}
		p = buffer.NewPageFromLines(strings.Split(strings.TrimRight(doc.text, "\n"), "\n"), s.tabStop)
		p.SetName(doc.name)
		p.SetReadOnly(true)
	case SourceFile:
		lines, err := s.Files.ReadLines(src.Path)
		if err != nil {
			s.Logger.Event("page.open.error", map[string]any{"path": src.Path, "error": err.Error()})
			s.SetStatus("Could not open " + src.Path + ": " + err.Error())
			return nil, err
		}
		p = buffer.NewPageFromLines(lines, s.tabStop)
		p.SetFullPath(src.Path)
	default:
		return nil, fmt.Errorf("unknown source kind %d", src.Kind)
	}
	s.pages = append(s.pages, p)
	s.current = len(s.pages) - 1
	s.Logger.Event("page.open", map[string]any{"page": s.current, "name": p.Name(), "path": p.FullPath(), "rows": p.NumRows()})
	return p, nil
}

// ClosePage closes page at, or the last page when at is -1. With save set,
// a page with unsaved changes is saved first; a cancelled or failed save
// keeps the page open and returns the error. Closing the last page opens a
// blank one in its place.
func (s *Session) ClosePage(at int, save bool) error {
	if at == -1 {
		at = len(s.pages) - 1
	}
	if at < 0 || at >= len(s.pages) {
		return nil
	}
	p := s.pages[at]
	if save && p.NeedsSave() {
		if err := s.Save(p); err != nil {
			return err
		}
	}
	s.removePage(at)
	s.ensurePage()
	return nil
}

func (s *Session) removePage(at int) {
	p := s.pages[at]
	s.pages = append(s.pages[:at], s.pages[at+1:]...)
	switch {
	case len(s.pages) == 0:
		s.current = -1
	case s.current >= len(s.pages):
		s.current = len(s.pages) - 1
	}
	if s.pageScroll > s.current {
		s.pageScroll = max(0, s.current)
	}
	s.Logger.Event("page.close", map[string]any{"page": at, "name": p.Name(), "path": p.FullPath()})
}

// SwitchPage makes page at current; -1 selects the last page. Out of range
// indexes are ignored.
func (s *Session) SwitchPage(at int) {
	if at == -1 {
		at = len(s.pages) - 1
	}
	if at < 0 || at >= len(s.pages) {
		return
	}
	s.current = at
}

// NextPage switches to the tab on the right, wrapping.
func (s *Session) NextPage() {
	if n := len(s.pages); n > 0 {
		s.SwitchPage((s.current + 1) % n)
	}
}

// PrevPage switches to the tab on the left, wrapping.
func (s *Session) PrevPage() {
	if n := len(s.pages); n > 0 {
		s.SwitchPage((s.current - 1 + n) % n)
	}
}
