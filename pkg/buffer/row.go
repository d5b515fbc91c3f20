package buffer

// Row is a single line of text plus its tab-expanded render form.
// The render cache is only valid while dirty is false.
type Row struct {
	text     []rune
	rendered []rune
	dirty    bool
}

// NewRow creates a row holding s. The render cache starts stale.
func NewRow(s string) *Row {
	return &Row{text: []rune(s), dirty: true}
}

// Text returns the logical content of the row.
func (r *Row) Text() string { return string(r.text) }

// Len returns the number of runes in the logical content.
func (r *Row) Len() int { return len(r.text) }

// RuneAt returns the rune at column i, or 0 when i is out of range.
func (r *Row) RuneAt(i int) rune {
	if i < 0 || i >= len(r.text) {
		return 0
	}
	return r.text[i]
}

// Dirty reports whether the render cache is stale.
func (r *Row) Dirty() bool { return r.dirty }

// SetText replaces the logical content and marks the row dirty.
func (r *Row) SetText(s string) {
	r.text = []rune(s)
	r.dirty = true
}

// Rendered returns the last rendered form. Call Render first.
func (r *Row) Rendered() string { return string(r.rendered) }

// RenderedLen returns the width of the last rendered form.
func (r *Row) RenderedLen() int { return len(r.rendered) }

// RenderedSlice returns up to width cells of the rendered form starting at
// cell off. It never fails; out of range requests give an empty string.
func (r *Row) RenderedSlice(off, width int) string {
	if off < 0 {
		off = 0
	}
	if off >= len(r.rendered) || width <= 0 {
		return ""
	}
	end := off + width
	if end > len(r.rendered) {
		end = len(r.rendered)
	}
	return string(r.rendered[off:end])
}

// Render rebuilds the render cache when the row is dirty. Each tab expands
// to at least one space, up to the next multiple of tabStop.
func (r *Row) Render(tabStop int) {
	if !r.dirty {
		return
	}
	tabStop = normalizeTabStop(tabStop)
	out := make([]rune, 0, len(r.text))
	for _, ch := range r.text {
		if ch != '\t' {
			out = append(out, ch)
			continue
		}
		out = append(out, ' ')
		for len(out)%tabStop != 0 {
			out = append(out, ' ')
		}
	}
	r.rendered = out
	r.dirty = false
}

// Invalidate marks the render cache stale without touching the text.
func (r *Row) Invalidate() { r.dirty = true }

// ColumnToRenderColumn maps logical column col to its visual column.
func (r *Row) ColumnToRenderColumn(col, tabStop int) int {
	tabStop = normalizeTabStop(tabStop)
	if col > len(r.text) {
		col = len(r.text)
	}
	rx := 0
	for j := 0; j < col; j++ {
		if r.text[j] == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// tabsBefore counts tab characters in text[0:col).
func (r *Row) tabsBefore(col int) int {
	if col > len(r.text) {
		col = len(r.text)
	}
	n := 0
	for j := 0; j < col; j++ {
		if r.text[j] == '\t' {
			n++
		}
	}
	return n
}

// nearestColumn returns the logical column whose visual column is closest
// to rx. When rx falls inside a tab's expansion the tab itself wins ties.
func (r *Row) nearestColumn(rx, tabStop int) int {
	prev := 0
	for c := 0; c <= len(r.text); c++ {
		cur := r.ColumnToRenderColumn(c, tabStop)
		if cur < rx {
			prev = cur
			continue
		}
		if cur == rx || c == 0 {
			return c
		}
		if r.text[c-1] == '\t' && rx-prev <= cur-rx {
			return c - 1
		}
		return c
	}
	return len(r.text)
}

func (r *Row) insert(at int, s []rune) {
	if at < 0 || at > len(r.text) {
		at = len(r.text)
	}
	text := make([]rune, 0, len(r.text)+len(s))
	text = append(text, r.text[:at]...)
	text = append(text, s...)
	text = append(text, r.text[at:]...)
	r.text = text
	r.dirty = true
}

func (r *Row) delete(at, n int) {
	if at < 0 || at >= len(r.text) || n <= 0 {
		return
	}
	end := at + n
	if end > len(r.text) {
		end = len(r.text)
	}
	r.text = append(r.text[:at], r.text[end:]...)
	r.dirty = true
}

// truncate cuts the row at column at and returns the removed tail.
func (r *Row) truncate(at int) []rune {
	if at < 0 {
		at = 0
	}
	if at >= len(r.text) {
		return nil
	}
	tail := append([]rune(nil), r.text[at:]...)
	r.text = r.text[:at:at]
	r.dirty = true
	return tail
}

func normalizeTabStop(tabStop int) int {
	if tabStop < 1 {
		return 1
	}
	return tabStop
}
