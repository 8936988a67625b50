// Package ui specifies custom controls for tview to assist in playing Go in the terminal.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"tengen/config"
	"tengen/engine"
	"tengen/rules"
	"tengen/types"
)

type GoBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	hint       *tview.TextView
	cfg        *config.Config
	selX       int
	selY       int
	notice     string
	app        *tview.Application
	eng        engine.GameEngine
	styles     []tcell.Color
	infoPanel  *GameInfoPanel
	focusMode  bool
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *GoBoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *GoBoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

func (g *GoBoardUI) IsFocusMode() bool {
	return g.focusMode
}

func (g *GoBoardUI) SelectedTile() *types.BoardPos {
	if g.selX == -1 && g.selY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.selX, Y: g.selY}
}

// MoveSelection moves the cursor. The first call places it on the last
// move, or the center of an empty board.
func (g *GoBoardUI) MoveSelection(h, v int) {
	if g.BoardState.Finished() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		g.selX, g.selY = g.BoardState.LastMove.X, g.BoardState.LastMove.Y
		if g.SelectedTile() == nil {
			g.selX = g.BoardState.Width() / 2
			g.selY = g.BoardState.Height() / 2
		}
		return
	}
	nx, ny := g.selX+h, g.selY+v
	if nx < 0 || nx >= g.BoardState.Width() || ny < 0 || ny >= g.BoardState.Height() {
		return
	}
	g.selX, g.selY = nx, ny
}

func (g *GoBoardUI) ResetSelection() {
	g.selX = -1
	g.selY = -1
}

func NewGoBoard(app *tview.Application, c *config.Config, hint *tview.TextView) *GoBoardUI {
	goBoard := &GoBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{LastMove: types.NoPos},
		hint:       hint,
		app:        app,
		selX:       -1,
		selY:       -1,
	}
	goBoard.SetConfig(c)
	goBoard.Box.SetDrawFunc(goBoard.draw)
	return goBoard
}

// ConnectEngine starts the engine and renders its position.
func (g *GoBoardUI) ConnectEngine(e engine.GameEngine) error {
	g.eng = e
	g.notice = ""
	g.ResetSelection()

	if err := e.Connect(); err != nil {
		g.eng = nil
		return err
	}

	e.OnMove(func(x, y, color int, boardState *types.BoardState) {
		g.BoardState = boardState
		g.refreshHint()
		// QueueUpdateDraw blocks until the event loop runs it.
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	e.OnGameEnd(func(outcome string) {
		g.BoardState = e.GetBoardState()
		g.ResetSelection()
		g.refreshHint()
		go func() {
			g.app.QueueUpdateDraw(func() {})
		}()
	})

	g.BoardState = e.GetBoardState()
	g.refreshHint()
	return nil
}

// PlayMove plays a stone for the side to move. Rejected moves are shown
// in the status bar.
func (g *GoBoardUI) PlayMove(x, y int) {
	if g.eng == nil {
		return
	}
	g.notice = ""
	if err := g.eng.PlayMove(x, y); err != nil {
		g.notice = moveErrorText(err)
		g.refreshHint()
	}
}

// Pass passes the current turn.
func (g *GoBoardUI) Pass() {
	if g.eng == nil {
		return
	}
	g.notice = ""
	if err := g.eng.Pass(); err != nil {
		g.notice = moveErrorText(err)
		g.refreshHint()
	}
}

// Navigate steps through the game history.
func (g *GoBoardUI) Navigate(dir rules.Direction) {
	if g.eng == nil {
		return
	}
	g.notice = ""
	g.eng.Navigate(dir)
	g.BoardState = g.eng.GetBoardState()
	g.refreshHint()
}

// Save writes a snapshot of the game and reports where in the status bar.
func (g *GoBoardUI) Save() {
	if g.eng == nil {
		return
	}
	path, err := g.eng.Save()
	if err != nil {
		log.Error().Err(err).Msg("save game")
		g.notice = "Save failed: " + err.Error()
	} else {
		g.notice = "Saved " + path
	}
	g.refreshHint()
}

// Close saves the game and disconnects the engine.
func (g *GoBoardUI) Close() {
	if g.eng == nil {
		return
	}
	g.eng.Close()
	g.eng = nil
}

func (g *GoBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),        // 0
		tcell.PaletteColor(c.Theme.Colors.BlackColor),        // 1
		tcell.PaletteColor(c.Theme.Colors.WhiteColor),        // 2
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),     // 3
		tcell.PaletteColor(c.Theme.Colors.BlackColorAlt),     // 4
		tcell.PaletteColor(c.Theme.Colors.WhiteColorAlt),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),     // 6
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG), // 7
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),     // 8
		tcell.PaletteColor(c.Theme.Colors.LineColor),         // 9
	}
	g.cfg = c
}

func (g *GoBoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.SetBoardState(g.BoardState)
	}
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}
	g.hint.SetText(statusText(g.BoardState, g.notice))
}

// IsFinished returns true if the game is over.
func (g *GoBoardUI) IsFinished() bool {
	return g.BoardState.Finished()
}

const boardControls = "hjkl/arrows move  enter play  p pass  [ , . ] history  s save  f focus  q quit"

// statusText is the status bar content for a board state.
func statusText(bs *types.BoardState, notice string) string {
	var status string
	switch {
	case bs.Finished() && !bs.Browsing():
		status = fmt.Sprintf("Game over: %s", bs.Outcome)
	case bs.Browsing():
		status = fmt.Sprintf("Move %d/%d", bs.MoveNumber, bs.HistoryLen)
		if bs.Finished() {
			status += " (game over)"
		} else {
			status += fmt.Sprintf(", %s to play replaces later moves", colorName(bs.PlayerToMove))
		}
	default:
		stone := "●"
		if bs.PlayerToMove == 2 {
			stone = "○"
		}
		status = fmt.Sprintf("%s %s to move", stone, colorName(bs.PlayerToMove))
		if bs.LastPass {
			status += fmt.Sprintf(" (%s passed)", colorName(3-bs.PlayerToMove))
		}
	}
	if notice != "" {
		status += "  ! " + notice
	}
	return fmt.Sprintf("  %s\n  %s", status, boardControls)
}

func colorName(color int) string {
	if color == 2 {
		return "White"
	}
	return "Black"
}

// moveErrorText describes why the engine refused a move.
func moveErrorText(err error) string {
	switch {
	case errors.Is(err, rules.ErrKo):
		return "Ko: position repeats"
	case errors.Is(err, rules.ErrSuicide):
		return "Suicide not allowed"
	case errors.Is(err, rules.ErrOccupied):
		return "Point occupied"
	case errors.Is(err, rules.ErrGameOver):
		return "Game is over"
	}
	return err.Error()
}
