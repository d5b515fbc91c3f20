package buffer

// InsertRow inserts a row holding text at index at, clamped to
// [0, NumRows()], and returns it. The cursor stays on the text it was on.
func (p *Page) InsertRow(at int, text string) (*Row, error) {
	if p.ReadOnly() {
		return nil, ErrReadOnly
	}
	at = max(0, min(at, len(p.rows)))
	if at <= p.cy && p.cy < len(p.rows) {
		p.cy++
	}
	row := p.insertRow(at, text)
	p.clampCursor()
	return row, nil
}

func (p *Page) insertRow(at int, text string) *Row {
	if at < 0 {
		at = 0
	}
	if at > len(p.rows) {
		at = len(p.rows)
	}
	row := NewRow(text)
	p.rows = append(p.rows, nil)
	copy(p.rows[at+1:], p.rows[at:])
	p.rows[at] = row
	p.touch()
	return row
}

// DeleteRow removes the row at index at, clamped to [0, NumRows()-1].
// A cursor below the removed row follows its text; a cursor on it moves to
// the row that takes its place, or back inside the page at the end.
func (p *Page) DeleteRow(at int) error {
	if p.ReadOnly() {
		return ErrReadOnly
	}
	if len(p.rows) == 0 {
		return nil
	}
	at = max(0, min(at, len(p.rows)-1))
	if at < p.cy {
		p.cy--
	}
	p.deleteRow(at)
	p.clampCursor()
	return nil
}

func (p *Page) deleteRow(at int) {
	if len(p.rows) == 0 {
		return
	}
	if at < 0 {
		at = 0
	}
	if at > len(p.rows)-1 {
		at = len(p.rows) - 1
	}
	copy(p.rows[at:], p.rows[at+1:])
	p.rows[len(p.rows)-1] = nil
	p.rows = p.rows[:len(p.rows)-1]
	p.touch()
}

// InsertChar inserts ch at the cursor and advances it.
func (p *Page) InsertChar(ch rune) error {
	if p.ReadOnly() {
		return ErrReadOnly
	}
	if p.cy >= len(p.rows) {
		p.insertRow(len(p.rows), "")
	}
	p.rows[p.cy].insert(p.cx, []rune{ch})
	p.touch()
	p.cx++
	return nil
}

// DeleteCharBefore removes the character left of the cursor. At column 0 it
// joins the current row onto the previous one.
func (p *Page) DeleteCharBefore() error {
	if p.ReadOnly() {
		return ErrReadOnly
	}
	if p.cy >= len(p.rows) {
		return nil
	}
	if p.cx == 0 && p.cy == 0 {
		return nil
	}
	row := p.rows[p.cy]
	if p.cx > 0 {
		row.delete(p.cx-1, 1)
		p.touch()
		p.cx--
		return nil
	}
	prev := p.rows[p.cy-1]
	p.cx = prev.Len()
	prev.insert(prev.Len(), row.text)
	p.deleteRow(p.cy)
	p.cy--
	return nil
}

// DeleteCharAfter removes the character under the cursor. At the end of a
// row it pulls the next row up; the cursor does not move.
func (p *Page) DeleteCharAfter() error {
	if p.ReadOnly() {
		return ErrReadOnly
	}
	row := p.CurrentRow()
	if row == nil {
		return nil
	}
	if p.cx < row.Len() {
		row.delete(p.cx, 1)
		p.touch()
		return nil
	}
	if p.cy+1 < len(p.rows) {
		next := p.rows[p.cy+1]
		row.insert(row.Len(), next.text)
		p.deleteRow(p.cy + 1)
	}
	return nil
}

// InsertNewline splits the current row at the cursor and moves the cursor
// to the start of the new row.
func (p *Page) InsertNewline() error {
	if p.ReadOnly() {
		return ErrReadOnly
	}
	// On an empty page the row under the cursor is created first and then
	// split, so the page ends up with two empty rows.
	if p.cy >= len(p.rows) {
		p.insertRow(len(p.rows), "")
	}
	tail := p.rows[p.cy].truncate(p.cx)
	p.insertRow(p.cy+1, string(tail))
	p.cy++
	p.cx = 0
	return nil
}
