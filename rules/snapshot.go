package rules

import (
	"encoding/json"
	"fmt"
)

// SnapshotVersion is the schema version written by Export.
const SnapshotVersion = 1

// Snapshot is the serializable form of a game. Boards are not stored: the
// move list is replayed through the validator on import, which rebuilds
// every board, capture and tally exactly.
type Snapshot struct {
	Version int            `json:"version"`
	ID      string         `json:"id"`
	Rules   SnapshotRules  `json:"rules"`
	Moves   []SnapshotMove `json:"moves"`
	Cursor  int            `json:"cursor"`
	Running bool           `json:"running"`
}

// SnapshotRules mirrors RuleConfig with a readable ko rule.
type SnapshotRules struct {
	BoardSize      int    `json:"board_size"`
	KoRule         string `json:"ko_rule"`
	SuicideAllowed bool   `json:"suicide_allowed"`
}

// SnapshotMove is one history entry. Index is -1 for a pass.
type SnapshotMove struct {
	Color string `json:"color"` // "B" or "W"
	Index int    `json:"index"`
}

// Export captures the full game state, including moves after the cursor.
func (g *Game) Export() Snapshot {
	s := Snapshot{
		Version: SnapshotVersion,
		ID:      g.id,
		Rules: SnapshotRules{
			BoardSize:      g.cfg.BoardSize,
			KoRule:         g.cfg.KoRule.String(),
			SuicideAllowed: g.cfg.SuicideAllowed,
		},
		Moves:   make([]SnapshotMove, len(g.history)),
		Cursor:  g.cursor,
		Running: g.running,
	}
	for i, e := range g.history {
		s.Moves[i] = SnapshotMove{Color: colorLetter(e.Color), Index: e.Index}
	}
	return s
}

// Import rebuilds a game from a snapshot. Moves that are illegal under the
// snapshot's rules fail with the validator's error.
func Import(s Snapshot) (*Game, error) {
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("%w: snapshot version %d", ErrInvalidArgument, s.Version)
	}
	ko, err := ParseKoRule(s.Rules.KoRule)
	if err != nil {
		return nil, err
	}
	g, err := NewGame(RuleConfig{
		KoRule:         ko,
		SuicideAllowed: s.Rules.SuicideAllowed,
		BoardSize:      s.Rules.BoardSize,
	})
	if err != nil {
		return nil, err
	}
	if s.ID != "" {
		g.id = s.ID
	}

	for i, m := range s.Moves {
		if colorLetter(g.turn) != m.Color {
			return nil, fmt.Errorf("%w: snapshot move %d played by %q, expected %q", ErrInvalidArgument, i, m.Color, colorLetter(g.turn))
		}
		if m.Index == -1 {
			err = g.Pass()
		} else {
			_, err = g.PlaceStone(m.Index)
		}
		if err != nil {
			return nil, fmt.Errorf("snapshot move %d: %w", i, err)
		}
	}

	if s.Cursor < 0 || s.Cursor > len(g.history) {
		return nil, fmt.Errorf("%w: snapshot cursor %d not in [0, %d]", ErrInvalidArgument, s.Cursor, len(g.history))
	}
	if s.Running != g.running {
		return nil, fmt.Errorf("%w: snapshot running=%t does not match its moves", ErrInvalidArgument, s.Running)
	}
	g.cursor = s.Cursor
	g.restore()
	return g, nil
}

// MarshalJSON encodes the game as its Snapshot.
func (g *Game) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.Export())
}

// UnmarshalJSON replaces g with the game described by a Snapshot.
func (g *Game) UnmarshalJSON(data []byte) error {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	imported, err := Import(s)
	if err != nil {
		return err
	}
	*g = *imported
	return nil
}

func colorLetter(p Point) string {
	if p == White {
		return "W"
	}
	return "B"
}
