// Package engine defines the interface the board UI plays through.
package engine

import (
	"tengen/rules"
	"tengen/types"
)

// GameEngine defines the interface for playing a game of Go.
type GameEngine interface {
	// Connect starts a new game, or resumes one when the config names a file.
	Connect() error

	// GetBoardState returns a copy of the board at the history cursor.
	GetBoardState() *types.BoardState

	// PlayMove plays a stone for the side to move at the given coordinates.
	// Moves recorded after the cursor are discarded.
	// Returns an error if the move is illegal.
	PlayMove(x, y int) error

	// Pass passes the current turn.
	Pass() error

	// Navigate moves through the history and reports whether the cursor moved.
	Navigate(dir rules.Direction) bool

	// OnMove registers a callback for when a move is played (by either player).
	// x, y are -1, -1 for a pass. boardState is passed directly to avoid lock contention.
	OnMove(func(x, y, color int, boardState *types.BoardState))

	// OnGameEnd registers a callback for when the game ends.
	OnGameEnd(func(outcome string))

	// Save writes a snapshot of the game and returns its path.
	Save() (string, error)

	// Close saves the game and releases its files.
	Close()
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	Rules rules.RuleConfig
	// HistoryDir receives the SGF record and snapshot. Empty disables both.
	HistoryDir string
	// ResumePath is a snapshot (.json) or record (.sgf) to continue from.
	// Rules is ignored when it is set.
	ResumePath string
	// Moves are vertices such as "D4" or "pass" played right after Connect.
	Moves []string
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		Rules: rules.RuleConfig{
			KoRule:    rules.Situational,
			BoardSize: 19,
		},
	}
}
