package local

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"tengen/rules"
	"tengen/sgf"
)

// SaveSnapshot writes g as JSON. The file is replaced atomically so a crash
// never leaves half a snapshot behind.
func SaveSnapshot(path string, g *rules.Game) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a game written by SaveSnapshot.
func LoadSnapshot(path string) (*rules.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var g rules.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", filepath.Base(path), err)
	}
	return &g, nil
}

// LoadGame resumes from a snapshot or an SGF record. For a record, a
// snapshot saved beside it is preferred since it also keeps the history
// cursor; it is skipped when the record has moves the snapshot lacks.
func LoadGame(path string) (*rules.Game, error) {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".sgf") {
		return LoadSnapshot(path)
	}

	snapPath := strings.TrimSuffix(path, ext) + ".json"
	if _, err := os.Stat(snapPath); err != nil {
		return sgf.Replay(path)
	}
	g, err := LoadSnapshot(snapPath)
	if err != nil {
		log.Warn().Err(err).Str("file", snapPath).Msg("ignoring unreadable snapshot")
		return sgf.Replay(path)
	}
	info, err := sgf.ParseHeader(path)
	if err != nil {
		return nil, err
	}
	if info.MoveCount != g.Len() {
		log.Warn().
			Str("file", snapPath).
			Int("snapshot_moves", g.Len()).
			Int("record_moves", info.MoveCount).
			Msg("snapshot is stale, replaying record")
		return sgf.Replay(path)
	}
	return g, nil
}
