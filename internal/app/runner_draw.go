package app

import (
	"example.com/neodymium/pkg/config"
	"example.com/neodymium/pkg/viewport"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// draw paints the current frame on scr.
func (s *Session) draw(scr tcell.Screen) {
	drawFrame(scr, s.Frame(), s.Theme)
}

// drawFrame paints f using the colors of th.
func drawFrame(scr tcell.Screen, f Frame, th config.Theme) {
	text := tcell.StyleDefault.Foreground(th.TextForeground).Background(th.TextBackground)
	scr.SetStyle(text)
	scr.Clear()
	if f.Width <= 0 || f.Height <= 0 {
		scr.Show()
		return
	}

	// Menu bar
	menuStyle := tcell.StyleDefault.Foreground(th.MenuForeground).Background(th.MenuBackground)
	selStyle := tcell.StyleDefault.Foreground(th.MenuSelectedFG).Background(th.MenuSelectedBG)
	fill(scr, 0, f.Width, 0, menuStyle)
	for _, t := range f.MenuTitles {
		st := menuStyle
		if t.Active {
			st = selStyle
		}
		putString(scr, t.X, 0, f.Width, t.Name, st)
	}

	// Tab bar
	if f.Height > 1 {
		tabStyle := tcell.StyleDefault.Foreground(th.TabForeground).Background(th.TabBackground)
		curStyle := tcell.StyleDefault.Foreground(th.TabCurrentFG).Background(th.TabCurrentBG)
		fill(scr, 0, f.Width, 1, tabStyle)
		for _, t := range f.Tabs {
			st := tabStyle
			if t.Current {
				st = curStyle
			}
			putString(scr, t.X, 1, f.Width, t.Label, st)
		}
	}

	// Text rows and the vertical scrollbar
	tilde := text.Foreground(th.Tilde)
	textWidth := max(0, f.Width-1)
	for i, line := range f.Rows {
		y := HeaderHeight + i
		if f.PastEnd[i] {
			putString(scr, 0, y, textWidth, line, tilde)
			continue
		}
		putString(scr, 0, y, textWidth, line, text)
	}
	track := tcell.StyleDefault.Foreground(th.ScrollTrack).Background(th.TextBackground)
	thumb := tcell.StyleDefault.Foreground(th.ScrollThumb).Background(th.TextBackground).Reverse(true)
	if f.ShowVBar {
		drawScrollbar(scr, len(f.Rows), f.VBar, track, thumb, '^', '|', 'v', func(i int) (int, int) {
			return f.Width - 1, HeaderHeight + i
		})
	}

	bottom := f.Height - FooterHeight
	if bottom >= HeaderHeight && f.ShowHBar {
		drawScrollbar(scr, textWidth, f.HBar, track, thumb, '<', '-', '>', func(i int) (int, int) {
			return i, bottom
		})
	}

	// Status bar
	if y := f.Height - 2; y >= HeaderHeight {
		st := tcell.StyleDefault.Foreground(th.StatusForeground).Background(th.StatusBackground)
		fill(scr, 0, f.Width, y, st)
		putString(scr, 0, y, f.Width, f.StatusLeft, st)
		putString(scr, f.Width-runewidth.StringWidth(f.StatusRight), y, f.Width, f.StatusRight, st)
	}

	// Message line
	msgStyle := tcell.StyleDefault.Foreground(th.MessageForeground).Background(th.MessageBackground)
	fill(scr, 0, f.Width, f.Height-1, msgStyle)
	putString(scr, 0, f.Height-1, f.Width, f.Message, msgStyle)

	// Open menu box overlays everything below the menu bar
	if box := f.MenuBox; box != nil {
		for i, it := range box.Items {
			st := menuStyle
			if it.Selected {
				st = selStyle
			}
			putString(scr, box.X, box.Y+i, f.Width, padMenuItem(it, box.Width), st)
			if it.Hint != "" && !it.Selected {
				hx := box.X + box.Width - 1 - runewidth.StringWidth(it.Hint)
				putString(scr, hx, box.Y+i, f.Width, it.Hint, st.Foreground(th.MenuHintForeground))
			}
		}
	}

	if f.ShowCursor {
		scr.ShowCursor(f.CursorX, f.CursorY)
	} else {
		scr.HideCursor()
	}
	scr.Show()
}

// drawScrollbar draws a track of n cells with arrows at both ends; at maps a
// cell index along the track to screen coordinates.
func drawScrollbar(scr tcell.Screen, n int, bar viewport.Bar, track, thumb tcell.Style, first, body, last rune, at func(int) (int, int)) {
	for i := 0; i < n; i++ {
		x, y := at(i)
		switch {
		case i == 0:
			scr.SetContent(x, y, first, nil, track)
		case i == n-1:
			scr.SetContent(x, y, last, nil, track)
		case i-1 >= bar.Offset && i-1 < bar.Offset+bar.Size:
			scr.SetContent(x, y, ' ', nil, thumb)
		default:
			scr.SetContent(x, y, body, nil, track)
		}
	}
}

func fill(scr tcell.Screen, x0, x1, y int, st tcell.Style) {
	for x := x0; x < x1; x++ {
		scr.SetContent(x, y, ' ', nil, st)
	}
}

// putString writes s from (x, y), clipped at limit, and returns the column
// after the last cell written.
func putString(scr tcell.Screen, x, y, limit int, s string, st tcell.Style) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		if x < 0 {
			x += w
			continue
		}
		if x+w > limit {
			break
		}
		scr.SetContent(x, y, r, nil, st)
		x += w
	}
	return x
}
