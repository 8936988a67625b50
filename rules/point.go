// Package rules implements the Go rules engine: board, group analysis,
// move validation with capture, suicide and superko rules, and a game state
// machine with navigable move history.
package rules

// Point is the state of a single intersection. The numeric values match the
// 0=empty, 1=black, 2=white convention used by types.BoardState and the SGF
// helpers.
type Point int8

const (
	Empty Point = iota
	Black
	White
)

// Opponent returns the other stone color. Empty has no opponent.
func (p Point) Opponent() Point {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (p Point) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// IsStone reports whether p is Black or White.
func (p Point) IsStone() bool {
	return p == Black || p == White
}
