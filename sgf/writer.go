// Package sgf implements SGF FF[4] writing and reading for Go game records.
package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"tengen/rules"
	"tengen/types"
)

// GameRecord tracks a game in progress and writes it as SGF. The move list
// mirrors the engine's history, so moves undone by playing a new line are
// removed from the file as well.
type GameRecord struct {
	FilePath    string
	GameID      string
	BoardSize   int
	KoRule      rules.KoRule
	Suicide     bool
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	moves       []string // ";B[pd]", ";W[]", ...
	file        *os.File
}

// NewGameRecord creates a new SGF file in dir and writes the initial header.
func NewGameRecord(dir string, cfg rules.RuleConfig, gameID string) (*GameRecord, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}
	filename := fmt.Sprintf("%s_%dx%d_%s.sgf", time.Now().Format("2006-01-02_150405"), cfg.BoardSize, cfg.BoardSize, gameID)
	return OpenGameRecord(filepath.Join(dir, filename), cfg, gameID)
}

// OpenGameRecord starts a record at path, replacing any content the file
// already has once the first flush happens.
func OpenGameRecord(path string, cfg rules.RuleConfig, gameID string) (*GameRecord, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("create sgf file: %w", err)
	}

	rec := &GameRecord{
		FilePath:    path,
		GameID:      gameID,
		BoardSize:   cfg.BoardSize,
		KoRule:      cfg.KoRule,
		Suicide:     cfg.SuicideAllowed,
		PlayerBlack: "Black",
		PlayerWhite: "White",
		Date:        time.Now().Format("2006-01-02"),
		Result:      "?",
		file:        f,
	}

	if err := rec.flush(); err != nil {
		f.Close()
		return nil, err
	}
	return rec, nil
}

// sgfCoord converts 0-indexed board coordinates to SGF letter pair.
// (0,0) -> "aa", (3,4) -> "de", (18,18) -> "ss".
func sgfCoord(x, y int) string {
	return string(rune('a'+x)) + string(rune('a'+y))
}

func moveNode(x, y, color int) string {
	colorChar := "B"
	if color == 2 {
		colorChar = "W"
	}
	if x == -1 && y == -1 {
		return fmt.Sprintf(";%s[]", colorChar)
	}
	return fmt.Sprintf(";%s[%s]", colorChar, sgfCoord(x, y))
}

// AddMove appends a move to the record. Pass is indicated by x==-1 && y==-1.
func (r *GameRecord) AddMove(x, y, color int) error {
	r.moves = append(r.moves, moveNode(x, y, color))
	return r.flush()
}

// AddMoves appends several moves with a single write.
func (r *GameRecord) AddMoves(moves []types.Move) error {
	for _, m := range moves {
		r.moves = append(r.moves, moveNode(m.X, m.Y, m.Color))
	}
	return r.flush()
}

// TruncateMoves keeps only the first n moves.
func (r *GameRecord) TruncateMoves(n int) error {
	if n < 0 {
		n = 0
	}
	if n >= len(r.moves) {
		return nil
	}
	r.moves = r.moves[:n]
	return r.flush()
}

// MoveCount returns the number of recorded moves.
func (r *GameRecord) MoveCount() int {
	return len(r.moves)
}

// Close performs a final flush and closes the file handle.
func (r *GameRecord) Close() {
	if r.file == nil {
		return
	}
	if err := r.flush(); err != nil {
		log.Warn().Err(err).Str("file", r.FilePath).Msg("final sgf flush failed")
	}
	r.file.Close()
	r.file = nil
}

// rulesText is the RU[] value, e.g. "positional superko, suicide allowed".
func rulesText(ko rules.KoRule, suicide bool) string {
	s := ko.String() + " superko"
	if suicide {
		s += ", suicide allowed"
	}
	return s
}

// flush rewrites the complete SGF file from scratch.
func (r *GameRecord) flush() error {
	if r.file == nil {
		return fmt.Errorf("file already closed")
	}

	var b strings.Builder

	// Root node
	b.WriteString("(;GM[1]FF[4]CA[UTF-8]")
	b.WriteString("AP[tengen:1.0]")
	b.WriteString(fmt.Sprintf("SZ[%d]", r.BoardSize))
	b.WriteString(fmt.Sprintf("RU[%s]", rulesText(r.KoRule, r.Suicide)))
	if r.GameID != "" {
		b.WriteString(fmt.Sprintf("GN[%s]", r.GameID))
	}
	b.WriteString(fmt.Sprintf("PB[%s]", r.PlayerBlack))
	b.WriteString(fmt.Sprintf("PW[%s]", r.PlayerWhite))
	b.WriteString(fmt.Sprintf("DT[%s]", r.Date))
	b.WriteString(fmt.Sprintf("RE[%s]", r.Result))
	b.WriteString("\n")

	for _, m := range r.moves {
		b.WriteString(m)
	}

	b.WriteString(")\n")

	if _, err := r.file.Seek(0, 0); err != nil {
		return err
	}
	if err := r.file.Truncate(0); err != nil {
		return err
	}
	if _, err := r.file.WriteString(b.String()); err != nil {
		return err
	}
	log.Debug().Str("file", r.FilePath).Int("moves", len(r.moves)).Msg("sgf record flushed")
	return r.file.Sync()
}
