// Package viewport computes scroll offsets and scrollbar geometry for a
// fixed-size window over content larger than the screen. All functions are
// pure.
package viewport

// DefaultMargin is the lookahead kept between the cursor and the viewport edge.
const DefaultMargin = 1

// Viewport describes the text area of the screen.
type Viewport struct {
	Top    int // screen row of the first text row
	Height int
	Width  int
	Margin int
}

// Offset returns the scroll offset that keeps pos visible inside a window of
// extent cells over content cells, with margin cells of lookahead in the
// direction of travel.
func Offset(pos, offset, extent, content, margin int) int {
	if extent <= 0 {
		return 0
	}
	if pos-margin < offset {
		offset = max(0, pos-margin)
	}
	if pos+margin >= offset+extent {
		offset = min(content+margin+1-extent, pos-extent+margin+1)
	}
	if offset > pos {
		offset = pos
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Bar is the geometry of a scrollbar thumb inside its track. Offset is
// measured from the first cell after the leading arrow.
type Bar struct {
	Size   int
	Offset int
}

// Visible reports whether content needs a scrollbar in a window of extent cells.
func Visible(content, extent, margin int) bool {
	return content+margin >= extent
}

// Scrollbar computes the thumb for a window of extent cells showing content
// cells from offset. ok is false when no scrollbar should be drawn.
func Scrollbar(content, extent, offset, margin int) (bar Bar, ok bool) {
	if extent <= 0 || !Visible(content, extent, margin) {
		return Bar{}, false
	}
	track := extent - 2
	if track < 1 {
		return Bar{Size: 1}, true
	}
	total := float64(content + 1 + margin)
	size := int(float64(extent) / total * float64(track))
	if size < 1 {
		size = 1
	}
	if size > track {
		size = track
	}
	ratio := 0.0
	if span := total - float64(extent); span > 0 {
		ratio = float64(offset) / span
	}
	if ratio > 1 {
		ratio = 1
	}
	pos := int(ratio * float64(track-size))
	if pos < 0 {
		pos = 0
	}
	return Bar{Size: size, Offset: pos}, true
}
