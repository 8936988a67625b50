package ui

import "github.com/gdamore/tcell/v2"

// menuPalette colors the screens around the board. The board itself follows
// the user's theme.
type menuPalette struct {
	Border      tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	ButtonBG    tcell.Color
	ButtonFocus tcell.Color
	ButtonText  tcell.Color
}

// MenuColors is used by the setup form and the history browser.
var MenuColors = menuPalette{
	Border:      tcell.PaletteColor(60),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
	ButtonBG:    tcell.PaletteColor(60),
	ButtonFocus: tcell.PaletteColor(109),
	ButtonText:  tcell.PaletteColor(255),
}
