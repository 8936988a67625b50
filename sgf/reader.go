package sgf

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"tengen/rules"
)

// GameInfo holds metadata parsed from an SGF file header.
type GameInfo struct {
	FilePath    string
	FileName    string
	GameID      string
	BoardSize   int
	Rules       rules.RuleConfig
	PlayerBlack string
	PlayerWhite string
	Date        string
	Result      string
	MoveCount   int
}

// ParseHeader reads an SGF file and extracts metadata from the root node.
func ParseHeader(filePath string) (*GameInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	content := string(data)
	props := parseProperties(content)
	cfg := parseRules(props)

	return &GameInfo{
		FilePath:    filePath,
		FileName:    filepath.Base(filePath),
		GameID:      props["GN"],
		BoardSize:   cfg.BoardSize,
		Rules:       cfg,
		PlayerBlack: props["PB"],
		PlayerWhite: props["PW"],
		Date:        props["DT"],
		Result:      props["RE"],
		MoveCount:   countMoves(content),
	}, nil
}

// parseRules reads SZ[] and RU[] from root properties. Records from other
// programs name rulesets we do not know; those fall back to situational
// superko without suicide.
func parseRules(props map[string]string) rules.RuleConfig {
	cfg := rules.RuleConfig{BoardSize: 19}
	if v, ok := props["SZ"]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			cfg.BoardSize = n
		}
	}
	ru := strings.ToLower(props["RU"])
	if fields := strings.Fields(ru); len(fields) > 0 {
		if ko, err := rules.ParseKoRule(fields[0]); err == nil {
			cfg.KoRule = ko
		}
	}
	cfg.SuicideAllowed = strings.Contains(ru, "suicide allowed")
	return cfg
}

// Replay rebuilds a game from an SGF file by playing every move through the
// rules engine. A record containing an illegal move fails with the engine's
// error for that move.
func Replay(filePath string) (*rules.Game, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	content := string(data)
	props := parseProperties(content)
	cfg := parseRules(props)

	s := rules.Snapshot{
		Version: rules.SnapshotVersion,
		ID:      props["GN"],
		Rules: rules.SnapshotRules{
			BoardSize:      cfg.BoardSize,
			KoRule:         cfg.KoRule.String(),
			SuicideAllowed: cfg.SuicideAllowed,
		},
	}
	for _, node := range parseNodes(content) {
		color, x, y, ok := parseMoveNode(node)
		if !ok {
			continue
		}
		m := rules.SnapshotMove{Color: "B", Index: -1}
		if color == 2 {
			m.Color = "W"
		}
		// FF[3] writes passes as tt on boards up to 19x19
		if x == 19 && y == 19 && cfg.BoardSize <= 19 {
			x, y = -1, -1
		}
		if x != -1 || y != -1 {
			if x < 0 || x >= cfg.BoardSize || y < 0 || y >= cfg.BoardSize {
				return nil, fmt.Errorf("%s: move %d off the board", filepath.Base(filePath), len(s.Moves)+1)
			}
			m.Index = y*cfg.BoardSize + x
		}
		s.Moves = append(s.Moves, m)
	}
	s.Cursor = len(s.Moves)
	n := len(s.Moves)
	s.Running = n < 2 || s.Moves[n-1].Index != -1 || s.Moves[n-2].Index != -1

	g, err := rules.Import(s)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(filePath), err)
	}
	return g, nil
}

// ReplayToEnd replays an SGF file and returns the final board position
// (board[y][x], 0=empty, 1=black, 2=white) and the move count.
func ReplayToEnd(filePath string) ([][]int, int, error) {
	g, err := Replay(filePath)
	if err != nil {
		return nil, 0, err
	}
	return g.Board().Grid(), g.Len(), nil
}

// parseProperties extracts KEY[value] pairs from the root node of an SGF string.
func parseProperties(content string) map[string]string {
	props := make(map[string]string)

	start := strings.Index(content, "(;")
	if start == -1 {
		return props
	}
	start += 2 // skip "(;"

	// Root node ends at the first ";" or ")" outside a value
	end := len(content)
	for i := start; i < len(content); i++ {
		if content[i] == '[' {
			i = skipValue(content, i)
			continue
		}
		if content[i] == ';' || content[i] == ')' {
			end = i
			break
		}
	}

	extractProps(content[start:end], props)
	return props
}

// skipValue returns the index of the ']' closing the value opened at i.
func skipValue(content string, i int) int {
	i++
	for i < len(content) && content[i] != ']' {
		if content[i] == '\\' && i+1 < len(content) {
			i++
		}
		i++
	}
	return i
}

// extractProps parses KEY[value] pairs from a node string into the map.
func extractProps(node string, props map[string]string) {
	i := 0
	for i < len(node) {
		for i < len(node) && (node[i] == ' ' || node[i] == '\n' || node[i] == '\r' || node[i] == '\t') {
			i++
		}
		if i >= len(node) {
			break
		}

		// Property identifier (uppercase letters)
		keyStart := i
		for i < len(node) && node[i] >= 'A' && node[i] <= 'Z' {
			i++
		}
		if i == keyStart {
			i++
			continue
		}
		key := node[keyStart:i]

		// All values, e.g. AB[aa][bb]; the last one wins
		for i < len(node) && node[i] == '[' {
			end := skipValue(node, i)
			props[key] = unescape(node[i+1 : end])
			i = end + 1
		}
	}
}

func unescape(v string) string {
	if !strings.Contains(v, `\`) {
		return v
	}
	var b strings.Builder
	for i := 0; i < len(v); i++ {
		if v[i] == '\\' && i+1 < len(v) {
			i++
		}
		b.WriteByte(v[i])
	}
	return b.String()
}

// countMoves counts the number of move nodes (;B[...] or ;W[...]) in the SGF.
func countMoves(content string) int {
	count := 0
	for _, node := range parseNodes(content) {
		if _, _, _, ok := parseMoveNode(node); ok {
			count++
		}
	}
	return count
}

// parseNodes returns all node strings after the root node.
func parseNodes(content string) []string {
	var nodes []string

	start := strings.Index(content, "(;")
	if start == -1 {
		return nodes
	}

	// Skip the root node
	i := start + 2
	for i < len(content) && content[i] != ';' {
		if content[i] == '[' {
			i = skipValue(content, i)
		}
		i++
	}

	// The main line follows the first variation at every branch and ends at
	// the first closing parenthesis.
	for i < len(content) {
		switch content[i] {
		case ')':
			return nodes
		case ';':
			nodeStart := i
			i++
			for i < len(content) && content[i] != ';' && content[i] != ')' && content[i] != '(' {
				if content[i] == '[' {
					i = skipValue(content, i)
				}
				i++
			}
			nodes = append(nodes, content[nodeStart:i])
		default:
			i++
		}
	}

	return nodes
}

// parseMoveNode extracts color and coordinates from a move node like ";B[pd]".
// Returns color (1=black, 2=white), x, y, and whether it's a valid move node.
// Pass moves, written as B[], return x=-1, y=-1.
func parseMoveNode(node string) (color, x, y int, ok bool) {
	node = strings.TrimSpace(node)
	if len(node) < 2 || node[0] != ';' {
		return 0, 0, 0, false
	}
	node = strings.TrimSpace(node[1:])
	if len(node) < 3 || node[1] != '[' {
		return 0, 0, 0, false
	}

	switch node[0] {
	case 'B':
		color = 1
	case 'W':
		color = 2
	default:
		return 0, 0, 0, false
	}

	end := strings.IndexByte(node, ']')
	if end == -1 {
		return 0, 0, 0, false
	}
	coord := node[2:end]
	if coord == "" {
		return color, -1, -1, true
	}
	if len(coord) != 2 {
		return 0, 0, 0, false
	}
	return color, int(coord[0] - 'a'), int(coord[1] - 'a'), true
}

// ListGames scans a directory for .sgf files and returns their parsed headers,
// sorted newest-first (by filename, which contains timestamps).
func ListGames(dir string) ([]GameInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read history dir: %w", err)
	}

	var games []GameInfo
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sgf") {
			continue
		}
		info, err := ParseHeader(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		games = append(games, *info)
	}

	return games, nil
}
