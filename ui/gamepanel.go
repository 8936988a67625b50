package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"tengen/types"
)

// movesVisible is how many moves the panel lists at once.
const movesVisible = 12

// GameInfoPanel displays game information and move history alongside the board.
type GameInfoPanel struct {
	box        *tview.TextView
	boardState *types.BoardState
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetBoardState updates the panel with current board state.
func (p *GameInfoPanel) SetBoardState(state *types.BoardState) {
	p.boardState = state
	p.box.SetText(panelText(state))
}

// panelText renders the rules, capture counts and the move list around the
// history cursor.
func panelText(bs *types.BoardState) string {
	if bs == nil || bs.Width() == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("[white::b]Game Info[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	rulesLine := bs.KoRule + " ko"
	if bs.SuicideAllowed {
		rulesLine += ", suicide"
	}
	fmt.Fprintf(&b, "[white]Rules:[-:-:-] %s\n", rulesLine)
	fmt.Fprintf(&b, "[white]Move:[-:-:-]  %d/%d\n", bs.MoveNumber, bs.HistoryLen)
	fmt.Fprintf(&b, "[white]Captures:[-:-:-] B %d  W %d\n", bs.CapturedBlack, bs.CapturedWhite)
	if bs.Finished() {
		fmt.Fprintf(&b, "[yellow]%s[-]\n", bs.Outcome)
	}

	if len(bs.Moves) == 0 {
		return b.String()
	}

	b.WriteString("\n[white::b]Moves[-:-:-]\n")
	b.WriteString("[dimgray]──────────────────────[-:-:-]\n")

	// Keep the cursor in view, showing as many recent moves as fit.
	cursor := bs.MoveNumber - 1
	end := min(len(bs.Moves), max(cursor+1+movesVisible/2, movesVisible))
	start := max(0, end-movesVisible)

	if start > 0 {
		fmt.Fprintf(&b, "[dimgray]  ··· %d earlier[-]\n", start)
	}
	size := bs.Width()
	for i := start; i < end; i++ {
		m := bs.Moves[i]

		colorStr := "[white]B[-]"
		if m.Color == 2 {
			colorStr = "[dimgray]W[-]"
		}
		coord := types.VertexName(m.X, m.Y, size)
		if m.Captured > 0 {
			coord += fmt.Sprintf(" x%d", m.Captured)
		}

		marker := " "
		line := "%s[dimgray]%3d.[-] %s %s\n"
		switch {
		case i == cursor:
			marker = "[yellow]>[-]"
		case i > cursor:
			// Undone moves, replaced by the next move played.
			line = "%s[dimgray]%3d. %s %s[-]\n"
			colorStr = "B"
			if m.Color == 2 {
				colorStr = "W"
			}
		}
		fmt.Fprintf(&b, line, marker, i+1, colorStr, coord)
	}
	if end < len(bs.Moves) {
		fmt.Fprintf(&b, "[dimgray]  ··· %d later[-]\n", len(bs.Moves)-end)
	}
	return b.String()
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(board *GoBoardUI, hint *tview.TextView) *tview.Flex {
	gameFrame := tview.NewFlex()
	RebuildNormalLayout(gameFrame, board, hint)
	return gameFrame
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form tview.Primitive, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, board *GoBoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	board.infoPanel = infoPanel
	if board.BoardState != nil {
		infoPanel.SetBoardState(board.BoardState)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(board.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 28, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, board *GoBoardUI) {
	gameFrame.Clear()
	board.infoPanel = nil

	boardWidth, boardHeight := 22, 11
	if board.BoardState != nil && board.BoardState.Width() > 0 {
		boardWidth = board.BoardState.Width()*2 + 4
		boardHeight = board.BoardState.Height() + 2
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(board.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
