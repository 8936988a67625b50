// Package config loads the tengen configuration file and sets up logging.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"tengen/rules"
)

var (
	cfgFile = "tengen/config.json"
)

// HistoryDirEnv overrides the directory game records are written to.
const HistoryDirEnv = "TENGEN_HISTORY_DIR"

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	BlackColor        int `json:"black"`
	BlackColorAlt     int `json:"black_alt"`
	WhiteColor        int `json:"white"`
	WhiteColorAlt     int `json:"white_alt"`
	LineColor         int `json:"line"`
	CursorColorFG     int `json:"cursor_fg"`
	CursorColorBG     int `json:"cursor_bg"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	BlackStone  rune `json:"black"`
	WhiteStone  rune `json:"white"`
	BoardSquare rune `json:"board"`
	Cursor      rune `json:"cursor"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawStoneBackground      bool          `json:"draw_stone_bg"`
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	FullWidthLetters         bool          `json:"fullwidth_letters"`
	UseGridLines             bool          `json:"use_grid_lines"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// RulesConfig holds the rules a new game starts with.
type RulesConfig struct {
	BoardSize int    `json:"board_size"`
	KoRule    string `json:"ko_rule"` // "situational" or "positional"
	Suicide   bool   `json:"suicide"`
}

// RuleConfig converts the section into the rules engine's configuration.
func (r RulesConfig) RuleConfig() (rules.RuleConfig, error) {
	ko, err := rules.ParseKoRule(r.KoRule)
	if err != nil {
		return rules.RuleConfig{}, err
	}
	rc := rules.RuleConfig{
		KoRule:         ko,
		SuicideAllowed: r.Suicide,
		BoardSize:      r.BoardSize,
	}
	return rc, rc.Validate()
}

type Config struct {
	Theme    Theme       `json:"theme"`
	Rules    RulesConfig `json:"rules"`
	LogLevel string      `json:"log_level"`
}

// InitConfig returns the defaults overlaid with the user's config file, if
// one exists in an XDG config directory.
func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.BlackStone, c.Theme.Symbols.WhiteStone, c.Theme.Symbols.BoardSquare} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if _, err := c.Rules.RuleConfig(); err != nil {
		return &InvalidConfig{err.Error()}
	}
	return nil
}

// Save writes the config to the user's XDG config directory.
func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

// HistoryDir is where game records and snapshots are kept.
func HistoryDir() string {
	if dir := os.Getenv(HistoryDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(xdg.DataHome, "tengen", "history")
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
