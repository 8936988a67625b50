// Package types contains shared data structures for tengen.
package types

// Phase values of a BoardState.
const (
	PhasePlaying  = "playing"
	PhaseFinished = "finished"
)

// BoardState is a render-ready copy of a game at its history cursor.
// Board is indexed as Board[y][x] where 0=empty, 1=black, 2=white.
type BoardState struct {
	// MoveNumber is the history cursor: how many moves lead to this board.
	MoveNumber int `json:"move_number"`
	// HistoryLen counts every recorded move, including those after the cursor.
	HistoryLen     int      `json:"history_len"`
	PlayerToMove   int      `json:"player_to_move"` // 1=black, 2=white
	Phase          string   `json:"phase"`
	Board          [][]int  `json:"board"`
	Outcome        string   `json:"outcome"`
	CapturedBlack  int      `json:"captured_black"` // stones taken by black
	CapturedWhite  int      `json:"captured_white"` // stones taken by white
	KoRule         string   `json:"ko_rule"`
	SuicideAllowed bool     `json:"suicide_allowed"`
	LastMove       BoardPos `json:"last_move"`
	LastPass       bool     `json:"last_pass"`
	Moves          []Move   `json:"moves"`
}

// Move is one entry of the recorded history. X and Y are -1 for a pass.
type Move struct {
	Color    int `json:"color"`
	X        int `json:"x"`
	Y        int `json:"y"`
	Captured int `json:"captured"`
}

// Pass reports whether the move was a pass.
func (m Move) Pass() bool {
	return m.X == -1 && m.Y == -1
}

// Finished returns true if the game is over.
func (b *BoardState) Finished() bool {
	return b.Phase == PhaseFinished
}

// Browsing returns true if the cursor is behind the latest recorded move.
func (b *BoardState) Browsing() bool {
	return b.MoveNumber < b.HistoryLen
}

// Height returns the board height.
func (b *BoardState) Height() int {
	return len(b.Board)
}

// Width returns the board width.
func (b *BoardState) Width() int {
	if b.Height() == 0 {
		return 0
	}
	return len(b.Board[0])
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoPos marks the absence of a position, e.g. before the first move.
var NoPos = BoardPos{X: -1, Y: -1}

// NewBoardState creates a new empty board of the given size.
func NewBoardState(size int) *BoardState {
	board := make([][]int, size)
	for i := range board {
		board[i] = make([]int, size)
	}
	return &BoardState{
		PlayerToMove: 1, // Black plays first
		Phase:        PhasePlaying,
		Board:        board,
		LastMove:     NoPos,
	}
}
