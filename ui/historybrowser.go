package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"tengen/sgf"
)

// HistoryBrowserUI lists the saved game records and resumes one on Enter.
type HistoryBrowserUI struct {
	flex     *tview.Flex
	gameList *tview.List
	preview  *tview.Box
	hint     *tview.TextView
	dir      string
	games    []sgf.GameInfo
	boards   map[string][][]int // final positions by file
	selected int
	onResume func(path string)
	onDone   func()
}

// NewHistoryBrowser creates a browser over the records in dir.
func NewHistoryBrowser(dir string, onResume func(path string), onDone func()) *HistoryBrowserUI {
	hb := &HistoryBrowserUI{
		dir:      dir,
		onResume: onResume,
		onDone:   onDone,
		boards:   make(map[string][][]int),
	}

	hb.gameList = tview.NewList()
	hb.gameList.SetBorder(true)
	hb.gameList.SetTitle(" Game History ")
	hb.gameList.ShowSecondaryText(false)
	hb.gameList.SetHighlightFullLine(true)
	hb.gameList.SetMainTextStyle(tcell.StyleDefault.Foreground(MenuColors.Label))
	hb.gameList.SetSelectedStyle(tcell.StyleDefault.
		Foreground(MenuColors.ButtonText).
		Background(MenuColors.ButtonFocus))

	hb.preview = tview.NewBox()
	hb.preview.SetBorder(true)
	hb.preview.SetTitle(" Preview ")
	hb.preview.SetDrawFunc(hb.drawPreview)

	hb.hint = tview.NewTextView()
	hb.hint.SetDynamicColors(true)
	hb.hint.SetBorder(false)
	hb.hint.SetText("  [dimgray]enter[-] resume  [dimgray]d[-] delete  [dimgray]q[-] back")

	hb.gameList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		hb.selected = index
	})
	hb.gameList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index >= 0 && index < len(hb.games) && hb.onResume != nil {
			hb.onResume(hb.games[index].FilePath)
		}
	})
	hb.gameList.SetInputCapture(hb.handleInput)

	topRow := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(hb.gameList, 44, 0, true).
		AddItem(hb.preview, 0, 1, false)

	hb.flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topRow, 0, 1, true).
		AddItem(hb.hint, 1, 0, false)

	hb.loadGames()
	return hb
}

// Flex returns the flex container for this UI.
func (hb *HistoryBrowserUI) Flex() *tview.Flex {
	return hb.flex
}

// Refresh reloads the game list from disk.
func (hb *HistoryBrowserUI) Refresh() {
	hb.boards = make(map[string][][]int)
	hb.loadGames()
}

func (hb *HistoryBrowserUI) loadGames() {
	hb.gameList.Clear()
	hb.games = nil
	hb.selected = 0

	games, err := sgf.ListGames(hb.dir)
	if err != nil {
		log.Warn().Err(err).Str("dir", hb.dir).Msg("list game records")
	}
	if len(games) == 0 {
		hb.gameList.AddItem("[dimgray]No games found[-]", "", 0, nil)
		return
	}

	hb.games = games
	for _, g := range games {
		hb.gameList.AddItem(gameLabel(g), "", 0, nil)
	}
}

// gameLabel is the list entry for a record: date, size, ko rule and length.
func gameLabel(g sgf.GameInfo) string {
	ko := "sit"
	if g.Rules.KoRule.String() == "positional" {
		ko = "pos"
	}
	return fmt.Sprintf("%s  %dx%d  %s  %3d mv", g.Date, g.BoardSize, g.BoardSize, ko, g.MoveCount)
}

func (hb *HistoryBrowserUI) handleInput(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		if hb.onDone != nil {
			hb.onDone()
		}
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if hb.onDone != nil {
				hb.onDone()
			}
			return nil
		case 'd':
			hb.deleteSelected()
			return nil
		}
	}
	return event
}

// deleteSelected removes the selected record and its snapshot.
func (hb *HistoryBrowserUI) deleteSelected() {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return
	}

	path := hb.games[hb.selected].FilePath
	for _, p := range []string{path, strings.TrimSuffix(path, ".sgf") + ".json"} {
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Warn().Err(err).Str("file", p).Msg("delete game")
		}
	}
	log.Info().Str("file", path).Msg("game deleted")
	hb.Refresh()
}

// drawPreview renders a mini board preview and game metadata.
func (hb *HistoryBrowserUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if hb.selected < 0 || hb.selected >= len(hb.games) {
		return x, y, width, height
	}
	game := hb.games[hb.selected]

	board, ok := hb.boards[game.FilePath]
	if !ok {
		b, _, err := sgf.ReplayToEnd(game.FilePath)
		if err != nil {
			log.Debug().Err(err).Str("file", game.FilePath).Msg("preview replay")
		}
		board = b
		hb.boards[game.FilePath] = board
	}

	startX, startY := x+2, y+1
	infoStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))
	dimStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(245))

	if board == nil {
		drawText(screen, startX, startY, "Record cannot be replayed", dimStyle)
		return x, y, width, height
	}

	size := len(board)
	if width < size*2+4 || height < size+7 {
		return x, y, width, height
	}

	emptyStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(240))
	blackStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(255)).Bold(true)
	whiteStyle := tcell.StyleDefault.Foreground(tcell.PaletteColor(250))

	for by := 0; by < size; by++ {
		for bx := 0; bx < size; bx++ {
			ch, style := '·', emptyStyle
			switch board[by][bx] {
			case 1:
				ch, style = '●', blackStyle
			case 2:
				ch, style = '○', whiteStyle
			}
			screen.SetContent(startX+bx*2, startY+by, ch, nil, style)
		}
	}

	rulesLine := game.Rules.KoRule.String() + " superko"
	if game.Rules.SuicideAllowed {
		rulesLine += ", suicide"
	}
	infoY := startY + size + 1
	drawText(screen, startX, infoY, fmt.Sprintf("%dx%d  %d moves", game.BoardSize, game.BoardSize, game.MoveCount), infoStyle)
	drawText(screen, startX, infoY+1, rulesLine, dimStyle)
	drawText(screen, startX, infoY+2, fmt.Sprintf("%s vs %s", game.PlayerBlack, game.PlayerWhite), dimStyle)
	if game.GameID != "" {
		drawText(screen, startX, infoY+3, "id "+game.GameID, dimStyle)
	}

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
