package rules

// Direction moves the history cursor.
type Direction int

const (
	First Direction = iota
	Previous
	Next
	Last
)

func (d Direction) String() string {
	switch d {
	case First:
		return "first"
	case Previous:
		return "previous"
	case Next:
		return "next"
	case Last:
		return "last"
	default:
		return "unknown"
	}
}

// Step moves the cursor and restores the board, turn and capture tallies of
// that point. It saturates at both ends and reports whether the cursor moved.
// History is never modified.
func (g *Game) Step(dir Direction) bool {
	target := g.cursor
	switch dir {
	case First:
		target = 0
	case Previous:
		if target > 0 {
			target--
		}
	case Next:
		if target < len(g.history) {
			target++
		}
	case Last:
		target = len(g.history)
	}
	if target == g.cursor {
		return false
	}
	g.cursor = target
	g.restore()
	return true
}

// restore loads the state recorded at the cursor.
func (g *Game) restore() {
	if g.cursor == 0 {
		g.board = g.initial
		g.turn = Black
		g.taken = [3]int{}
		return
	}
	e := g.history[g.cursor-1]
	g.board = e.Board
	g.turn = e.ToMove
	g.taken = [3]int{}
	g.taken[Black] = e.CapturedByBlack
	g.taken[White] = e.CapturedByWhite
}

// Cursor returns the number of moves applied to the viewed position.
func (g *Game) Cursor() int {
	return g.cursor
}

// Len returns the number of recorded moves, including those after the cursor.
func (g *Game) Len() int {
	return len(g.history)
}

// AtLatest reports whether the cursor is on the last recorded move.
func (g *Game) AtLatest() bool {
	return g.cursor == len(g.history)
}

// LastMove returns the entry that produced the viewed position. ok is false
// at the start of the game.
func (g *Game) LastMove() (e Entry, ok bool) {
	if g.cursor == 0 {
		return Entry{}, false
	}
	return g.history[g.cursor-1].copy(), true
}

// Entries returns a copy of the whole recorded history.
func (g *Game) Entries() []Entry {
	entries := make([]Entry, len(g.history))
	for i, e := range g.history {
		entries[i] = e.copy()
	}
	return entries
}

func (e Entry) copy() Entry {
	out := e
	out.Board = e.Board.Clone()
	out.Captured = make([]int, len(e.Captured))
	copy(out.Captured, e.Captured)
	return out
}

// Move is the board-free form of an Entry.
type Move struct {
	Color Point
	// Index is the placed point, or -1 for a pass.
	Index    int
	Captured int
}

// Moves lists the recorded history without copying boards.
func (g *Game) Moves() []Move {
	moves := make([]Move, len(g.history))
	for i, e := range g.history {
		moves[i] = Move{Color: e.Color, Index: e.Index, Captured: len(e.Captured)}
	}
	return moves
}
