package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"tengen/engine"
	"tengen/rules"
)

var (
	setupBoardSizes = []int{9, 13, 19}
	setupKoRules    = []rules.KoRule{rules.Situational, rules.Positional}
)

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form    *tview.Form
	flex    *tview.Flex
	onStart func(engine.GameConfig)

	rules rules.RuleConfig
}

// NewGameSetup creates a new game setup form. defaults preselects the
// rules; sizes outside the dropdown are kept until another is picked.
func NewGameSetup(defaults rules.RuleConfig, onStart func(engine.GameConfig), onCancel, onColors, onHistory func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart: onStart,
		rules:   defaults,
	}

	sizeLabels := make([]string, 0, len(setupBoardSizes)+1)
	sizeIndex := -1
	for i, n := range setupBoardSizes {
		sizeLabels = append(sizeLabels, boardSizeLabel(n))
		if n == defaults.BoardSize {
			sizeIndex = i
		}
	}
	sizes := setupBoardSizes
	if sizeIndex < 0 {
		sizes = append(append([]int(nil), setupBoardSizes...), defaults.BoardSize)
		sizeLabels = append(sizeLabels, boardSizeLabel(defaults.BoardSize))
		sizeIndex = len(sizes) - 1
	}

	koIndex := 0
	koLabels := make([]string, len(setupKoRules))
	for i, k := range setupKoRules {
		koLabels[i] = k.String() + " superko"
		if k == defaults.KoRule {
			koIndex = i
		}
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeLabels, sizeIndex, func(option string, index int) {
		if index >= 0 && index < len(sizes) {
			setup.rules.BoardSize = sizes[index]
		}
	})

	form.AddDropDown("Ko Rule", koLabels, koIndex, func(option string, index int) {
		if index >= 0 && index < len(setupKoRules) {
			setup.rules.KoRule = setupKoRules[index]
		}
	})

	form.AddCheckbox("Allow Suicide", defaults.SuicideAllowed, func(checked bool) {
		setup.rules.SuicideAllowed = checked
	})

	form.AddButton("Start Game", func() {
		onStart(setup.GameConfig())
	})

	form.AddButton("History", func() {
		if onHistory != nil {
			onHistory()
		}
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)
	form.SetLabelColor(MenuColors.Label)
	form.SetBorderColor(MenuColors.Border)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// GameConfig returns the configuration for the currently selected rules.
func (s *GameSetupUI) GameConfig() engine.GameConfig {
	cfg := engine.DefaultConfig()
	cfg.Rules = s.rules
	return cfg
}

func boardSizeLabel(n int) string {
	return fmt.Sprintf("%dx%d", n, n)
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
