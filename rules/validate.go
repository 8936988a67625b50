package rules

import (
	"fmt"
	"sort"
	"strings"
)

// MaxBoardSize is the largest board the engine accepts. SGF coordinates and
// the terminal board both stay readable up to this size.
const MaxBoardSize = 25

// KoRule selects how repeated positions are detected.
type KoRule int

const (
	// Situational forbids recreating a prior board with the same side to move.
	Situational KoRule = iota
	// Positional forbids recreating any prior board, whoever is to move.
	Positional
)

func (k KoRule) String() string {
	switch k {
	case Situational:
		return "situational"
	case Positional:
		return "positional"
	default:
		return fmt.Sprintf("ko(%d)", int(k))
	}
}

// ParseKoRule accepts "situational" or "positional", case-insensitively.
func ParseKoRule(s string) (KoRule, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "situational", "":
		return Situational, nil
	case "positional":
		return Positional, nil
	}
	return Situational, fmt.Errorf("%w: ko rule %q", ErrInvalidArgument, s)
}

// RuleConfig is fixed when a game is created.
type RuleConfig struct {
	KoRule         KoRule
	SuicideAllowed bool
	BoardSize      int
}

// Validate checks that the configuration describes a playable game.
func (c RuleConfig) Validate() error {
	if c.BoardSize < 1 || c.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size %d not in [1, %d]", ErrInvalidArgument, c.BoardSize, MaxBoardSize)
	}
	if c.KoRule != Situational && c.KoRule != Positional {
		return fmt.Errorf("%w: ko rule %d", ErrInvalidArgument, int(c.KoRule))
	}
	return nil
}

// Position is a board together with the color to move on it. The history of
// positions is the comparison set for the ko rules.
type Position struct {
	Board  *Board
	ToMove Point
}

// Outcome is the result of a legal move.
type Outcome struct {
	Board *Board
	// Captured lists the removed stones, sorted. It is empty, never nil, when
	// nothing was captured.
	Captured []int
	// CapturedBy is the color credited with the captures: the mover, or the
	// opponent when the move was a permitted suicide.
	CapturedBy Point
	// SelfCapture is set when the placed group removed itself.
	SelfCapture bool
}

// Validate decides whether turn may play at index on b. On success the
// returned Outcome holds the board after captures; b itself is not modified.
// seen is the list of positions the ko rule forbids repeating.
func Validate(b *Board, cfg RuleConfig, turn Point, index int, seen []Position) (Outcome, error) {
	if b == nil || b.Size() != cfg.BoardSize {
		return Outcome{}, fmt.Errorf("%w: board does not match rules for %dx%d", ErrInvalidArgument, cfg.BoardSize, cfg.BoardSize)
	}
	if !turn.IsStone() {
		return Outcome{}, fmt.Errorf("%w: color to move is %s", ErrInvalidArgument, turn)
	}
	current, err := b.Get(index)
	if err != nil {
		return Outcome{}, err
	}
	if current != Empty {
		return Outcome{}, illegal(Occupied, index)
	}

	next := b.Clone()
	next.set(index, turn)
	opponent := turn.Opponent()

	captured := []int{}
	for _, n := range next.Neighbors(index) {
		// A group already removed through another neighbor reads as empty here.
		if next.points[n] != opponent {
			continue
		}
		g, err := AnalyzeGroup(next, n)
		if err != nil {
			return Outcome{}, err
		}
		if g.Captured() {
			removeGroup(next, g)
			captured = append(captured, g.Stones...)
		}
	}

	out := Outcome{Board: next, CapturedBy: turn}

	own, err := AnalyzeGroup(next, index)
	if err != nil {
		return Outcome{}, err
	}
	if own.Captured() {
		if !cfg.SuicideAllowed {
			return Outcome{}, illegal(Suicide, index)
		}
		removeGroup(next, own)
		captured = append(captured, own.Stones...)
		out.CapturedBy = opponent
		out.SelfCapture = true
	}

	if repeats(next, opponent, cfg.KoRule, seen) {
		return Outcome{}, illegal(KoViolation, index)
	}

	sort.Ints(captured)
	out.Captured = captured
	return out, nil
}

// repeats reports whether the board with toMove to play matches a position
// in seen under the given ko rule.
func repeats(b *Board, toMove Point, rule KoRule, seen []Position) bool {
	for _, p := range seen {
		if p.Board == nil || !b.Equal(p.Board) {
			continue
		}
		if rule == Positional || p.ToMove == toMove {
			return true
		}
	}
	return false
}
