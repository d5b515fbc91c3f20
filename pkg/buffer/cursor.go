package buffer

// Direction is a cursor movement direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// MoveCursor moves the cursor count steps in dir. Movement past the edges of
// the page is clamped.
func (p *Page) MoveCursor(dir Direction, count int) {
	for i := 0; i < count; i++ {
		switch dir {
		case Left:
			if p.cx > 0 {
				p.cx--
			} else if p.cy > 0 {
				p.cy--
				p.cx = p.rows[p.cy].Len()
			}
		case Right:
			row := p.CurrentRow()
			if row == nil {
				break
			}
			if p.cx < row.Len() {
				p.cx++
			} else if p.cy+1 < len(p.rows) {
				p.cy++
				p.cx = 0
			}
		case Up:
			if p.cy > 0 && p.cy <= len(p.rows) {
				p.moveVertical(p.cy - 1)
			}
		case Down:
			if p.cy+1 < len(p.rows) {
				p.moveVertical(p.cy + 1)
			}
		}
		p.clampCursor()
	}
}

// moveVertical moves to row dst keeping the visual column stable across rows
// with different tab layouts.
func (p *Page) moveVertical(dst int) {
	src := p.CurrentRow()
	p.cy = dst
	if src == nil {
		return
	}
	to := p.rows[dst]
	col := p.cx
	if col > to.Len() {
		col = to.Len()
	}
	if src.tabsBefore(p.cx) == to.tabsBefore(col) {
		return
	}
	rx := src.ColumnToRenderColumn(p.cx, p.tabStop)
	p.cx = to.nearestColumn(rx, p.tabStop)
}

func (p *Page) clampCursor() {
	if p.cy > len(p.rows) {
		p.cy = len(p.rows)
	}
	if p.cy == len(p.rows) && p.cy > 0 {
		p.cy = len(p.rows) - 1
	}
	if p.cy < 0 {
		p.cy = 0
	}
	rowLen := 0
	if row := p.CurrentRow(); row != nil {
		rowLen = row.Len()
	}
	if p.cx > rowLen {
		p.cx = rowLen
	}
	if p.cx < 0 {
		p.cx = 0
	}
}

// SetCursorRow moves the cursor to row at, or the last row when at is -1.
func (p *Page) SetCursorRow(at int) {
	if at < 0 || at >= len(p.rows) {
		at = len(p.rows) - 1
	}
	p.cy = at
	p.clampCursor()
}

// SetCursorCol moves the cursor to column at, or the end of the row when at
// is -1.
func (p *Page) SetCursorCol(at int) {
	rowLen := 0
	if row := p.CurrentRow(); row != nil {
		rowLen = row.Len()
	}
	if at < 0 || at > rowLen {
		at = rowLen
	}
	p.cx = at
}

// PageUp jumps to the top of the viewport, then moves a screenful up.
func (p *Page) PageUp(height int) {
	p.cy = p.rowOffset
	p.clampCursor()
	p.MoveCursor(Up, height)
}

// PageDown jumps to the bottom of the viewport, then moves a screenful down.
func (p *Page) PageDown(height int) {
	p.cy = p.rowOffset + height - 1
	p.clampCursor()
	p.MoveCursor(Down, height)
}
