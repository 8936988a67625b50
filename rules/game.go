package rules

import "github.com/rs/xid"

// Entry is one recorded move or pass. Board is the position after the move
// and must not be modified; Entries hands out copies.
type Entry struct {
	Color Point
	// Index is the placed point, or -1 for a pass.
	Index    int
	Pass     bool
	Board    *Board
	ToMove   Point
	Captured []int
	// Running totals of stones captured by each color, up to and including
	// this entry.
	CapturedByBlack int
	CapturedByWhite int
}

// Game owns the board, turn, capture tallies and move history of a single
// game. It is not safe for concurrent use; callers serialize access.
type Game struct {
	id      string
	cfg     RuleConfig
	initial *Board
	board   *Board
	turn    Point
	taken   [3]int
	running bool
	history []Entry
	cursor  int
}

// NewGame starts an empty game with Black to move.
func NewGame(cfg RuleConfig) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	initial, err := NewBoard(cfg.BoardSize)
	if err != nil {
		return nil, err
	}
	return &Game{
		id:      xid.New().String(),
		cfg:     cfg,
		initial: initial,
		board:   initial,
		turn:    Black,
		running: true,
	}, nil
}

// ID identifies the game across snapshots and SGF records.
func (g *Game) ID() string {
	return g.id
}

// Rules returns the configuration the game was created with.
func (g *Game) Rules() RuleConfig {
	return g.cfg
}

// BoardSize returns the number of lines on each side of the board.
func (g *Game) BoardSize() int {
	return g.cfg.BoardSize
}

// Position returns the points of the board at the cursor.
func (g *Game) Position() []Point {
	return g.board.Points()
}

// Board returns a copy of the board at the cursor.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// Turn returns the color to move at the cursor.
func (g *Game) Turn() Point {
	return g.turn
}

// Captured returns how many stones color has captured up to the cursor.
func (g *Game) Captured(color Point) int {
	if !color.IsStone() {
		return 0
	}
	return g.taken[color]
}

// Running reports whether moves can still be made. Once two consecutive
// passes end the game it stays over; history can still be browsed.
func (g *Game) Running() bool {
	return g.running
}

// PlaceStone plays a stone for the side to move. It returns the indices of
// the captured stones, which is empty but non-nil when nothing was taken.
// Any recorded moves after the cursor are discarded.
func (g *Game) PlaceStone(index int) ([]int, error) {
	if !g.running {
		return nil, ErrGameOver
	}
	out, err := Validate(g.board, g.cfg, g.turn, index, g.positions())
	if err != nil {
		return nil, err
	}

	taken := g.taken
	taken[out.CapturedBy] += len(out.Captured)
	g.push(Entry{
		Color:           g.turn,
		Index:           index,
		Board:           out.Board,
		ToMove:          g.turn.Opponent(),
		Captured:        out.Captured,
		CapturedByBlack: taken[Black],
		CapturedByWhite: taken[White],
	})

	captured := make([]int, len(out.Captured))
	copy(captured, out.Captured)
	return captured, nil
}

// Pass gives up the turn. A pass directly after a pass ends the game.
func (g *Game) Pass() error {
	if !g.running {
		return ErrGameOver
	}
	prevPass := g.cursor > 0 && g.history[g.cursor-1].Pass
	g.push(Entry{
		Color:           g.turn,
		Index:           -1,
		Pass:            true,
		Board:           g.board,
		ToMove:          g.turn.Opponent(),
		Captured:        []int{},
		CapturedByBlack: g.taken[Black],
		CapturedByWhite: g.taken[White],
	})
	if prevPass {
		g.running = false
	}
	return nil
}

// push truncates the history at the cursor, appends e and moves onto it.
func (g *Game) push(e Entry) {
	g.history = append(g.history[:g.cursor], e)
	g.cursor = len(g.history)
	g.restore()
}

// positions returns every position of the current line up to the cursor,
// starting with the empty board.
func (g *Game) positions() []Position {
	seen := make([]Position, 0, g.cursor+1)
	seen = append(seen, Position{Board: g.initial, ToMove: Black})
	for _, e := range g.history[:g.cursor] {
		seen = append(seen, Position{Board: e.Board, ToMove: e.ToMove})
	}
	return seen
}
