package local

import (
	"tengen/rules"
	"tengen/types"
)

// stateOf copies the game at its cursor into a render-ready BoardState.
func stateOf(g *rules.Game) *types.BoardState {
	cfg := g.Rules()
	bs := &types.BoardState{
		MoveNumber:     g.Cursor(),
		HistoryLen:     g.Len(),
		PlayerToMove:   int(g.Turn()),
		Phase:          types.PhasePlaying,
		Board:          g.Board().Grid(),
		CapturedBlack:  g.Captured(rules.Black),
		CapturedWhite:  g.Captured(rules.White),
		KoRule:         cfg.KoRule.String(),
		SuicideAllowed: cfg.SuicideAllowed,
		LastMove:       types.NoPos,
	}
	if !g.Running() {
		bs.Phase = types.PhaseFinished
		bs.Outcome = OutcomeBothPassed
	}

	size := g.BoardSize()
	moves := g.Moves()
	bs.Moves = make([]types.Move, len(moves))
	for i, m := range moves {
		mv := types.Move{Color: int(m.Color), X: -1, Y: -1, Captured: m.Captured}
		if m.Index >= 0 {
			mv.X, mv.Y = m.Index%size, m.Index/size
		}
		bs.Moves[i] = mv
	}

	if c := g.Cursor(); c > 0 {
		last := bs.Moves[c-1]
		if last.Pass() {
			bs.LastPass = true
		} else {
			bs.LastMove = types.BoardPos{X: last.X, Y: last.Y}
		}
	}
	return bs
}
