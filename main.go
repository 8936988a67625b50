// tengen is a terminal Go board for two players sharing a keyboard. The
// rules engine enforces captures, suicide and superko; games are recorded
// as SGF and can be resumed.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"tengen/config"
	"tengen/engine"
	"tengen/engine/local"
	"tengen/rules"
	"tengen/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("boardsize", 0, "Board size (1-25)")
	flagKo         = flag.String("ko", "", "Ko rule (situational or positional)")
	flagSuicide    = flag.Bool("suicide", false, "Allow suicide moves")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagResume     = flag.String("resume", "", "Resume a saved game (.json snapshot or .sgf record)")
	flagMoves      = flag.String("moves", "", "Comma-separated opening moves, e.g. D4,Q16,pass")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.GoBoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var history *ui.HistoryBrowserUI
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("tengen %s\n", Version)
		return
	}

	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := cfg.LogLevel
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	logCloser, err := config.InitLogger(level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	gameCfg, err := buildGameConfigFromFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	quickStart := *flagQuickStart || *flagResume != "" || *flagMoves != "" || *flagFocus

	app = tview.NewApplication()
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ⬡ tengen ")

	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewGoBoard(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)
	gameBoard.Box.SetInputCapture(handleBoardKey)

	setupUI := ui.NewGameSetup(
		gameCfg.Rules,
		func(c engine.GameConfig) {
			startGame(c)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
		func() {
			history.Refresh()
			rootPage.SwitchToPage("history")
		},
	)

	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		rootPage.SwitchToPage("setup")
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			rootPage.SwitchToPage("setup")
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	history = ui.NewHistoryBrowser(config.HistoryDir(),
		func(path string) {
			startGame(engine.GameConfig{ResumePath: path})
		},
		func() {
			rootPage.SwitchToPage("setup")
		},
	)

	rootPage.AddPage("setup", ui.CreateCenteredForm(setupUI.Form(), 60), true, !quickStart)
	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)
	rootPage.AddPage("history", history.Flex(), true, false)

	if quickStart {
		startGame(gameCfg)
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	}

	err = app.SetRoot(rootPage, true).Run()
	gameBoard.Close()
	if err != nil {
		log.Error().Err(err).Msg("ui stopped")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// handleBoardKey handles keys in the game view.
func handleBoardKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		gameBoard.MoveSelection(0, -1)
	case tcell.KeyDown:
		gameBoard.MoveSelection(0, 1)
	case tcell.KeyLeft:
		gameBoard.MoveSelection(-1, 0)
	case tcell.KeyRight:
		gameBoard.MoveSelection(1, 0)
	case tcell.KeyHome:
		gameBoard.Navigate(rules.First)
	case tcell.KeyEnd:
		gameBoard.Navigate(rules.Last)
	case tcell.KeyEnter:
		if sel := gameBoard.SelectedTile(); sel != nil {
			gameBoard.PlayMove(sel.X, sel.Y)
		}
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q':
			if gameBoard.SelectedTile() != nil {
				gameBoard.ResetSelection()
			} else {
				gameBoard.Close()
				rootPage.SwitchToPage("setup")
			}
			return nil
		case 'h':
			gameBoard.MoveSelection(-1, 0)
		case 'j':
			gameBoard.MoveSelection(0, 1)
		case 'k':
			gameBoard.MoveSelection(0, -1)
		case 'l':
			gameBoard.MoveSelection(1, 0)
		case 'p':
			gameBoard.Pass()
		case 's':
			gameBoard.Save()
		case '[':
			gameBoard.Navigate(rules.First)
		case ',':
			gameBoard.Navigate(rules.Previous)
		case '.':
			gameBoard.Navigate(rules.Next)
		case ']':
			gameBoard.Navigate(rules.Last)
		case 'f':
			if gameBoard.ToggleFocusMode() {
				ui.BuildFocusLayout(gameFrame, gameBoard)
			} else {
				ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
			}
		}
	}
	return event
}

// startGame replaces the running game with a new or resumed one.
func startGame(gameCfg engine.GameConfig) {
	gameBoard.Close()
	gameCfg.HistoryDir = config.HistoryDir()

	eng := local.NewLocalEngine(gameCfg)
	if err := gameBoard.ConnectEngine(eng); err != nil {
		log.Error().Err(err).Str("resume", gameCfg.ResumePath).Msg("start game")
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	if gameBoard.IsFocusMode() {
		ui.BuildFocusLayout(gameFrame, gameBoard)
	}
	rootPage.SwitchToPage("gameview")
}

// buildGameConfigFromFlags starts from the configured rules and applies
// any rule flags.
func buildGameConfigFromFlags() (engine.GameConfig, error) {
	rc, err := cfg.Rules.RuleConfig()
	if err != nil {
		return engine.GameConfig{}, err
	}
	if *flagBoardSize > 0 {
		rc.BoardSize = *flagBoardSize
	}
	if *flagKo != "" {
		if rc.KoRule, err = rules.ParseKoRule(*flagKo); err != nil {
			return engine.GameConfig{}, err
		}
	}
	if *flagSuicide {
		rc.SuicideAllowed = true
	}
	if err := rc.Validate(); err != nil {
		return engine.GameConfig{}, err
	}

	gameCfg := engine.DefaultConfig()
	gameCfg.Rules = rc
	gameCfg.ResumePath = *flagResume
	if *flagMoves != "" {
		for _, m := range strings.Split(*flagMoves, ",") {
			if m = strings.TrimSpace(m); m != "" {
				gameCfg.Moves = append(gameCfg.Moves, m)
			}
		}
	}
	return gameCfg, nil
}
