package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"tengen/config"
	"tengen/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex       *tview.Flex
	colorList  *tview.List
	preview    *tview.Box
	cfg        *config.Config
	onDone     func()

	// Current selection
	selectedBoardColor int
	selectedLineColor  int
	editingLine        bool // true = editing line color, false = editing board color
}

// Common board colors to choose from (warm wood-like tones)
var boardColors = []struct {
	code int
	name string
}{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{228, "Light Gold"},
	{222, "Gold"},
	{220, "Bright Yellow"},
	{214, "Orange Gold"},
	{208, "Dark Orange"},
	{180, "Tan"},
	{179, "Light Brown"},
	{172, "Brown"},
	{136, "Dark Brown"},
	{94, "Saddle Brown"},
	{252, "Light Gray"},
	{250, "Gray"},
	{248, "Medium Gray"},
	{244, "Dark Gray"},
	{188, "Light Beige"},
	{181, "Dusty Rose"},
	{223, "Peach"},
	{216, "Salmon"},
}

// Line colors (darker tones that contrast with board)
var lineColors = []struct {
	code int
	name string
}{
	{94, "Saddle Brown"},
	{130, "Dark Orange"},
	{136, "Dark Brown"},
	{88, "Dark Red"},
	{52, "Dark Maroon"},
	{22, "Dark Green"},
	{23, "Teal"},
	{24, "Dark Cyan"},
	{17, "Navy Blue"},
	{54, "Purple"},
	{232, "Black"},
	{236, "Dark Gray"},
	{240, "Gray"},
	{244, "Medium Gray"},
	{16, "True Black"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedBoardColor: cfg.Theme.Colors.BoardColor,
		selectedLineColor:  cfg.Theme.Colors.LineColor,
		editingLine:        false,
	}

	// Create the color list
	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.ShowSecondaryText(false)

	// Populate with board colors initially
	cc.populateColorList()

	// Handle selection change (preview)
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingLine {
			if index >= 0 && index < len(lineColors) {
				cc.selectedLineColor = lineColors[index].code
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.selectedBoardColor = boardColors[index].code
			}
		}
	})

	// Handle selection confirm (apply)
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if cc.editingLine {
			if index >= 0 && index < len(lineColors) {
				cc.cfg.Theme.Colors.LineColor = cc.selectedLineColor
				cc.save()
				// Switch back to board color selection
				cc.editingLine = false
				cc.populateColorList()
			}
		} else {
			if index >= 0 && index < len(boardColors) {
				cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
				cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
				cc.save()
				onDone()
			}
		}
	})

	// Create preview box
	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	// Layout: list on left, preview on right
	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	if cc.editingLine {
		cc.colorList.SetTitle(" Select Line Color (Tab: switch to board) ")
		for i, c := range lineColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		// Set current selection
		for i, c := range lineColors {
			if c.code == cc.selectedLineColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	} else {
		cc.colorList.SetTitle(" Select Board Color (Tab: switch to line) ")
		for i, c := range boardColors {
			cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
				tcell.PaletteColor(c.code).Hex(), c.name, c.code),
				"", rune('a'+i), nil)
		}
		// Set current selection
		for i, c := range boardColors {
			if c.code == cc.selectedBoardColor {
				cc.colorList.SetCurrentItem(i)
				break
			}
		}
	}
}

// save persists the theme. A failed write keeps the colors for this session.
func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		log.Error().Err(err).Msg("save color config")
		return
	}
	log.Debug().
		Int("board", cc.cfg.Theme.Colors.BoardColor).
		Int("line", cc.cfg.Theme.Colors.LineColor).
		Msg("colors saved")
}

// previewStones is a ko shape shown on the preview board.
var previewStones = map[types.BoardPos]int{
	{X: 2, Y: 2}: 1, {X: 1, Y: 3}: 1, {X: 2, Y: 4}: 1,
	{X: 3, Y: 2}: 2, {X: 4, Y: 3}: 2, {X: 3, Y: 4}: 2, {X: 3, Y: 3}: 1,
}

const previewSize = 7

// drawPreview draws a small board in the selected colors.
func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < previewSize+3 {
		return x, y, width, height
	}

	board := tcell.PaletteColor(cc.selectedBoardColor)
	lines := tcell.StyleDefault.Background(board).Foreground(tcell.PaletteColor(cc.selectedLineColor))
	stoneStyles := map[int]tcell.Style{
		1: tcell.StyleDefault.Background(board).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.BlackColor)),
		2: tcell.StyleDefault.Background(board).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.WhiteColor)),
	}

	left, top := x+2, y+1
	for row := 0; row < previewSize; row++ {
		for col := 0; col < previewSize; col++ {
			pos := types.BoardPos{X: col, Y: row}
			r, style := gridRune(col, row, previewSize, previewSize, false), lines
			if stone, ok := previewStones[pos]; ok {
				r, style = '●', stoneStyles[stone]
			}
			screen.SetContent(left+col*2, top+row, r, nil, style)

			if col == previewSize-1 {
				continue
			}
			link := '─'
			_, here := previewStones[pos]
			_, right := previewStones[types.BoardPos{X: col + 1, Y: row}]
			if here || right {
				link = ' '
			}
			screen.SetContent(left+col*2+1, top+row, link, nil, lines)
		}
	}

	info := fmt.Sprintf("Board: %d  Line: %d", cc.selectedBoardColor, cc.selectedLineColor)
	if cc.editingLine {
		info = fmt.Sprintf("Line: %d  Board: %d", cc.selectedLineColor, cc.selectedBoardColor)
	}
	drawText(screen, left, top+previewSize+1, info, tcell.StyleDefault)

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and line color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingLine = !cc.editingLine
	cc.populateColorList()
}
