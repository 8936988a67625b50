package ui

import (
	"github.com/gdamore/tcell/v2"

	"tengen/types"
)

// Style indices into GoBoardUI.styles.
const (
	styleBoard      = 0
	styleAltOffset  = 3
	styleLastPlayed = 7
	styleCursor     = 8
	styleLine       = 9
)

// draw renders the board two columns per point, with row numbers on the
// left and column letters underneath.
func (g *GoBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	bs := g.BoardState
	if bs == nil || bs.Width() == 0 {
		return x, y, 1, 1
	}
	theme := g.cfg.Theme
	size := bs.Width()
	left := x + 4

	for by := 0; by < bs.Height(); by++ {
		for bx := 0; bx < size; bx++ {
			stone := bs.Board[by][bx]

			bg, inv := styleBoard, styleBoard
			if theme.DrawStoneBackground {
				bg = stone
				inv = opponent(stone)
			}
			if (bx%2 + by%2) == 1 {
				bg += styleAltOffset
				inv += styleAltOffset
			}

			var r rune
			var fg tcell.Color
			switch {
			case stone == 1:
				r = theme.Symbols.BlackStone
			case stone == 2:
				r = theme.Symbols.WhiteStone
			case theme.UseGridLines:
				r = gridRune(bx, by, size, bs.Height(), isHoshiPoint(bx, by, size))
			default:
				r = theme.Symbols.BoardSquare
			}
			switch {
			case stone > 0 && theme.DrawStoneBackground:
				fg = g.styles[inv]
			case stone > 0:
				fg = g.styles[stone]
			default:
				fg = g.styles[styleLine]
			}

			switch {
			case bx == g.selX && by == g.selY:
				if theme.DrawCursorBackground {
					bg = styleCursor
				} else if !theme.UseGridLines {
					r = theme.Symbols.Cursor
				}
			case bx == bs.LastMove.X && by == bs.LastMove.Y:
				if theme.DrawLastPlayedBackground {
					bg = styleLastPlayed
				} else if !theme.UseGridLines {
					r = theme.Symbols.LastPlayed
				}
			}

			style := tcell.StyleDefault.Background(g.styles[bg]).Foreground(fg)
			screen.SetContent(left+bx*2, y+by, r, nil, style)
			screen.SetContent(left+bx*2+1, y+by, connector(bs, bx, by, theme.UseGridLines), nil, style)
		}
	}
	g.drawCoordinates(screen, x, y)
	return x, y, size*2 + 4, bs.Height() + 2
}

func opponent(stone int) int {
	switch stone {
	case 1:
		return 2
	case 2:
		return 1
	}
	return 0
}

// connector is the rune right of a point: a line joining two empty grid
// points, blank otherwise.
func connector(bs *types.BoardState, x, y int, gridLines bool) rune {
	if !gridLines || bs.Board[y][x] != 0 || x == bs.Width()-1 || bs.Board[y][x+1] != 0 {
		return ' '
	}
	return '─'
}

// gridRune returns the box-drawing character for an empty point.
func gridRune(x, y, width, height int, hoshi bool) rune {
	if hoshi {
		return '◦'
	}
	top, bottom := y == 0, y == height-1
	l, r := x == 0, x == width-1
	switch {
	case top && l:
		return '┌'
	case top && r:
		return '┐'
	case bottom && l:
		return '└'
	case bottom && r:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case l:
		return '├'
	case r:
		return '┤'
	}
	return '┼'
}

// hoshiLines returns the line numbers carrying star points: the 3-3 points
// (4-4 from 13x13 up), plus the middle line on odd boards of 9x9 and up.
func hoshiLines(size int) []int {
	if size < 7 {
		return nil
	}
	edge := 2
	if size >= 13 {
		edge = 3
	}
	lines := []int{edge, size - 1 - edge}
	if size%2 == 1 && size >= 9 {
		lines = append(lines, size/2)
	}
	return lines
}

// isHoshiPoint checks if a position is a star point. The middle side stars
// appear only on boards of 15x15 and up.
func isHoshiPoint(x, y, size int) bool {
	lines := hoshiLines(size)
	onX, onY := -1, -1
	for i, l := range lines {
		if x == l {
			onX = i
		}
		if y == l {
			onY = i
		}
	}
	if onX < 0 || onY < 0 {
		return false
	}
	// Index 2 is the middle line.
	if size < 15 && (onX == 2) != (onY == 2) {
		return false
	}
	return true
}

// columnLabel returns the letter for column x, skipping I.
func columnLabel(x int, fullWidth bool) rune {
	base := 'A'
	if fullWidth {
		base = 'Ａ'
	}
	if x >= 8 {
		x++
	}
	return base + rune(x)
}

func (g *GoBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	bs := g.BoardState
	w, h := bs.Width(), bs.Height()

	plain := tcell.StyleDefault
	selected := tcell.StyleDefault.Background(g.styles[styleCursor])
	last := tcell.StyleDefault.Background(g.styles[styleLastPlayed])
	pick := func(i, sel, lastMove int) tcell.Style {
		switch i {
		case sel:
			return selected
		case lastMove:
			return last
		}
		return plain
	}

	for ix := 0; ix < w; ix++ {
		style := pick(ix, g.selX, bs.LastMove.X)
		s.SetContent(x+4+ix*2, y+h+1, columnLabel(ix, g.cfg.Theme.FullWidthLetters), nil, style)
		s.SetContent(x+4+ix*2+1, y+h+1, ' ', nil, style)
	}

	for iy := 0; iy < h; iy++ {
		style := pick(iy, g.selY, bs.LastMove.Y)
		row := h - iy
		tens := ' '
		if row >= 10 {
			tens = rune('0' + row/10)
		}
		s.SetContent(x+1, y+iy, tens, nil, style)
		s.SetContent(x+2, y+iy, rune('0'+row%10), nil, style)
	}
}
