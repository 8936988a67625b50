// Package local implements a GameEngine where both colors are played from
// the same terminal, refereed by the rules package.
package local

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"tengen/engine"
	"tengen/rules"
	"tengen/sgf"
	"tengen/types"
)

// OutcomeBothPassed is reported when two consecutive passes end the game.
// Territory is not scored.
const OutcomeBothPassed = "Both players passed"

var (
	errNotConnected = errors.New("engine not connected")
	errNoHistoryDir = errors.New("no history directory configured")
)

// LocalEngine implements the GameEngine interface on top of rules.Game.
type LocalEngine struct {
	config       engine.GameConfig
	game         *rules.Game
	record       *sgf.GameRecord
	snapshotPath string

	moveCallback func(x, y, color int, boardState *types.BoardState)
	endCallback  func(outcome string)

	mu sync.Mutex
}

// NewLocalEngine creates a new local engine with the given configuration.
func NewLocalEngine(cfg engine.GameConfig) *LocalEngine {
	return &LocalEngine{config: cfg}
}

// Connect creates or loads the game, opens its SGF record and plays any
// configured opening moves.
func (e *LocalEngine) Connect() error {
	e.mu.Lock()

	var (
		g   *rules.Game
		err error
	)
	if e.config.ResumePath != "" {
		g, err = LoadGame(e.config.ResumePath)
	} else {
		g, err = rules.NewGame(e.config.Rules)
	}
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("start game: %w", err)
	}
	e.game = g

	if err := e.openRecord(); err != nil {
		e.mu.Unlock()
		return err
	}

	log.Info().
		Str("game", g.ID()).
		Int("size", g.BoardSize()).
		Str("ko", g.Rules().KoRule.String()).
		Bool("suicide", g.Rules().SuicideAllowed).
		Int("moves", g.Len()).
		Str("resume", e.config.ResumePath).
		Msg("game started")
	e.mu.Unlock()

	for _, v := range e.config.Moves {
		if err := e.PlayVertex(v); err != nil {
			return fmt.Errorf("opening move %q: %w", v, err)
		}
	}
	return nil
}

// openRecord starts the SGF record and decides where snapshots go. A resumed
// game keeps writing next to the file it came from. Must be called while
// holding the lock.
func (e *LocalEngine) openRecord() error {
	var (
		rec *sgf.GameRecord
		err error
	)
	switch {
	case e.config.ResumePath != "":
		base := strings.TrimSuffix(e.config.ResumePath, filepath.Ext(e.config.ResumePath))
		rec, err = sgf.OpenGameRecord(base+".sgf", e.game.Rules(), e.game.ID())
	case e.config.HistoryDir != "":
		rec, err = sgf.NewGameRecord(e.config.HistoryDir, e.game.Rules(), e.game.ID())
	default:
		return nil
	}
	if err != nil {
		return fmt.Errorf("open game record: %w", err)
	}
	if err := rec.AddMoves(stateOf(e.game).Moves); err != nil {
		rec.Close()
		return fmt.Errorf("write game record: %w", err)
	}
	e.record = rec
	e.snapshotPath = strings.TrimSuffix(rec.FilePath, ".sgf") + ".json"
	return nil
}

// GetBoardState returns the current board state.
func (e *LocalEngine) GetBoardState() *types.BoardState {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return types.NewBoardState(e.config.Rules.BoardSize)
	}
	return stateOf(e.game)
}

// PlayMove plays a stone for the side to move.
func (e *LocalEngine) PlayMove(x, y int) error {
	e.mu.Lock()

	if e.game == nil {
		e.mu.Unlock()
		return errNotConnected
	}

	size := e.game.BoardSize()
	if x < 0 || x >= size || y < 0 || y >= size {
		e.mu.Unlock()
		return fmt.Errorf("%w: (%d, %d)", rules.ErrOutOfBounds, x, y)
	}

	cursor := e.game.Cursor()
	color := int(e.game.Turn())
	vertex := types.VertexName(x, y, size)

	captured, err := e.game.PlaceStone(y*size + x)
	if err != nil {
		log.Debug().Err(err).Str("vertex", vertex).Int("color", color).Msg("move rejected")
		e.mu.Unlock()
		return err
	}
	e.recordMove(cursor, x, y, color)

	log.Info().
		Str("vertex", vertex).
		Int("color", color).
		Int("captured", len(captured)).
		Int("cursor", e.game.Cursor()).
		Msg("stone placed")

	boardState := stateOf(e.game)
	callback := e.moveCallback
	e.mu.Unlock()

	// Notify callback (outside lock to prevent deadlock)
	if callback != nil {
		callback(x, y, color, boardState)
	}
	return nil
}

// Pass passes the current turn.
func (e *LocalEngine) Pass() error {
	e.mu.Lock()

	if e.game == nil {
		e.mu.Unlock()
		return errNotConnected
	}

	cursor := e.game.Cursor()
	color := int(e.game.Turn())
	if err := e.game.Pass(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.recordMove(cursor, -1, -1, color)

	ended := !e.game.Running()
	log.Info().Int("color", color).Int("cursor", e.game.Cursor()).Bool("ended", ended).Msg("pass")

	boardState := stateOf(e.game)
	moveCallback, endCallback := e.moveCallback, e.endCallback
	e.mu.Unlock()

	// Notify callbacks (outside lock)
	if moveCallback != nil {
		moveCallback(-1, -1, color, boardState)
	}
	if ended && endCallback != nil {
		endCallback(boardState.Outcome)
	}
	return nil
}

// PlayVertex plays a move given in vertex notation, e.g. "D4" or "pass".
func (e *LocalEngine) PlayVertex(vertex string) error {
	e.mu.Lock()
	if e.game == nil {
		e.mu.Unlock()
		return errNotConnected
	}
	size := e.game.BoardSize()
	e.mu.Unlock()

	x, y, err := types.ParseVertex(vertex, size)
	if err != nil {
		return fmt.Errorf("%w: %v", rules.ErrInvalidArgument, err)
	}
	if x == -1 && y == -1 {
		return e.Pass()
	}
	return e.PlayMove(x, y)
}

// recordMove mirrors a new history entry into the SGF record, dropping the
// moves the entry replaced. Must be called while holding the lock.
func (e *LocalEngine) recordMove(cursor, x, y, color int) {
	if e.record == nil {
		return
	}
	if err := e.record.TruncateMoves(cursor); err != nil {
		log.Warn().Err(err).Str("file", e.record.FilePath).Msg("truncate sgf record")
	}
	if err := e.record.AddMove(x, y, color); err != nil {
		log.Warn().Err(err).Str("file", e.record.FilePath).Msg("append sgf record")
	}
}

// Navigate moves the history cursor.
func (e *LocalEngine) Navigate(dir rules.Direction) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return false
	}
	moved := e.game.Step(dir)
	if moved {
		log.Debug().Stringer("dir", dir).Int("cursor", e.game.Cursor()).Int("len", e.game.Len()).Msg("history step")
	}
	return moved
}

// OnMove registers a callback for when a move is played.
func (e *LocalEngine) OnMove(callback func(x, y, color int, boardState *types.BoardState)) {
	e.mu.Lock()
	e.moveCallback = callback
	e.mu.Unlock()
}

// OnGameEnd registers a callback for when the game ends.
func (e *LocalEngine) OnGameEnd(callback func(outcome string)) {
	e.mu.Lock()
	e.endCallback = callback
	e.mu.Unlock()
}

// Save writes a snapshot next to the SGF record.
func (e *LocalEngine) Save() (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.save()
}

func (e *LocalEngine) save() (string, error) {
	if e.game == nil {
		return "", errNotConnected
	}
	if e.snapshotPath == "" {
		return "", errNoHistoryDir
	}
	if err := SaveSnapshot(e.snapshotPath, e.game); err != nil {
		return "", err
	}
	log.Info().Str("file", e.snapshotPath).Int("cursor", e.game.Cursor()).Int("len", e.game.Len()).Msg("snapshot saved")
	return e.snapshotPath, nil
}

// RecordPath returns the SGF file the game is written to, if any.
func (e *LocalEngine) RecordPath() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.record == nil {
		return ""
	}
	return e.record.FilePath
}

// Close saves a snapshot and closes the SGF record.
func (e *LocalEngine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.game == nil {
		return
	}
	if _, err := e.save(); err != nil && !errors.Is(err, errNoHistoryDir) {
		log.Error().Err(err).Msg("save on close")
	}
	if e.record != nil {
		e.record.Close()
		e.record = nil
	}
}
