package buffer

import (
	"errors"
	"path/filepath"
	"strings"

	"example.com/neodymium/pkg/viewport"
)

// ErrReadOnly is returned by every mutating operation on a read-only page.
var ErrReadOnly = errors.New("page is read-only")

// Flags holds per-page state bits.
type Flags uint8

const (
	// FlagDirty marks unsaved modifications.
	FlagDirty Flags = 1 << iota
	// FlagReadOnly marks a page that may be viewed but never mutated or saved.
	FlagReadOnly
)

// DefaultTabStop is used when a page is created without an explicit tab stop.
const DefaultTabStop = 4

// Page is one open document: its rows, cursor, scroll offsets and flags.
//
// The logical cursor (CX, CY) always satisfies 0 <= CY <= len(rows) and
// 0 <= CX <= len(rows[CY]); CY == len(rows) only happens for an empty page.
type Page struct {
	rows     []*Row
	name     string
	fullPath string
	tabStop  int
	flags    Flags

	cx, cy int
	rx, ry int

	rowOffset, colOffset int
	maxRenderedWidth     int
}

// NewPage returns an empty, untitled page.
func NewPage(tabStop int) *Page {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Page{tabStop: tabStop}
}

// NewPageFromLines builds a page whose rows hold lines. Construction does not
// mark the page dirty; the read-only flag may be applied afterwards.
func NewPageFromLines(lines []string, tabStop int) *Page {
	p := NewPage(tabStop)
	p.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		p.rows = append(p.rows, NewRow(line))
	}
	return p
}

// NumRows returns the number of rows in the page.
func (p *Page) NumRows() int { return len(p.rows) }

// Row returns row i, or nil when i is out of range.
func (p *Page) Row(i int) *Row {
	if i < 0 || i >= len(p.rows) {
		return nil
	}
	return p.rows[i]
}

// CurrentRow returns the row under the cursor, or nil on the virtual row.
func (p *Page) CurrentRow() *Row { return p.Row(p.cy) }

// Lines returns the logical text of every row.
func (p *Page) Lines() []string {
	out := make([]string, len(p.rows))
	for i, row := range p.rows {
		out[i] = row.Text()
	}
	return out
}

// Bytes serializes the page: every row followed by a single newline.
func (p *Page) Bytes() []byte {
	var b strings.Builder
	for _, row := range p.rows {
		b.WriteString(row.Text())
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// Name returns the display name, empty for an untitled page.
func (p *Page) Name() string { return p.name }

// FullPath returns the file path backing the page, empty when untitled.
func (p *Page) FullPath() string { return p.fullPath }

// SetFullPath associates the page with path and derives its display name.
func (p *Page) SetFullPath(path string) {
	p.fullPath = path
	if path == "" {
		p.name = ""
		return
	}
	p.name = filepath.Base(path)
}

// SetName overrides the display name without changing the backing path.
func (p *Page) SetName(name string) { p.name = name }

// Flags returns the page flags.
func (p *Page) Flags() Flags { return p.flags }

// Dirty reports unsaved modifications.
func (p *Page) Dirty() bool { return p.flags&FlagDirty != 0 }

// ReadOnly reports whether the page rejects mutation.
func (p *Page) ReadOnly() bool { return p.flags&FlagReadOnly != 0 }

// SetReadOnly sets or clears the read-only flag.
func (p *Page) SetReadOnly(on bool) {
	if on {
		p.flags |= FlagReadOnly
		return
	}
	p.flags &^= FlagReadOnly
}

// MarkSaved clears the dirty flag.
func (p *Page) MarkSaved() { p.flags &^= FlagDirty }

// NeedsSave reports whether closing the page would lose modifications.
func (p *Page) NeedsSave() bool { return p.Dirty() && !p.ReadOnly() }

func (p *Page) touch() {
	if !p.ReadOnly() {
		p.flags |= FlagDirty
	}
}

// TabStop returns the tab stop used to render the page.
func (p *Page) TabStop() int { return p.tabStop }

// SetTabStop changes the tab stop and invalidates every row.
func (p *Page) SetTabStop(tabStop int) {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	if tabStop == p.tabStop {
		return
	}
	p.tabStop = tabStop
	p.maxRenderedWidth = 0
	for _, row := range p.rows {
		row.Invalidate()
	}
}

// Cursor returns the logical cursor (column, row).
func (p *Page) Cursor() (int, int) { return p.cx, p.cy }

// RenderCursor returns the rendered cursor computed by the last Scroll.
func (p *Page) RenderCursor() (int, int) { return p.rx, p.ry }

// Offsets returns the row and column scroll offsets.
func (p *Page) Offsets() (int, int) { return p.rowOffset, p.colOffset }

// MaxRenderedWidth returns the widest rendered row seen so far.
func (p *Page) MaxRenderedWidth() int { return p.maxRenderedWidth }

// Update renders every stale row and tracks the widest rendered row.
func (p *Page) Update() {
	for _, row := range p.rows {
		if row.Dirty() {
			row.Render(p.tabStop)
		}
		if w := row.RenderedLen(); w > p.maxRenderedWidth {
			p.maxRenderedWidth = w
		}
	}
}

// Scroll recomputes the rendered cursor and the scroll offsets so the cursor
// stays inside v with v.Margin cells of lookahead.
func (p *Page) Scroll(v viewport.Viewport) {
	p.rx = 0
	if row := p.CurrentRow(); row != nil {
		p.rx = row.ColumnToRenderColumn(p.cx, p.tabStop)
	}
	p.ry = p.cy + v.Top
	p.rowOffset = viewport.Offset(p.cy, p.rowOffset, v.Height, len(p.rows), v.Margin)
	p.colOffset = viewport.Offset(p.rx, p.colOffset, v.Width, p.maxRenderedWidth, v.Margin)
}
