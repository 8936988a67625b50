package sgf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tengen/rules"
	"tengen/types"
)

var testRules = rules.RuleConfig{BoardSize: 9}

func newTestRecord(t *testing.T, cfg rules.RuleConfig) *GameRecord {
	t.Helper()
	rec, err := NewGameRecord(t.TempDir(), cfg, "cv3testgameid0000000")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}
	t.Cleanup(rec.Close)
	return rec
}

func readRecord(t *testing.T, rec *GameRecord) string {
	t.Helper()
	content, err := os.ReadFile(rec.FilePath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	return string(content)
}

func TestSgfCoord(t *testing.T) {
	tests := []struct {
		x, y int
		want string
	}{
		{0, 0, "aa"},
		{3, 4, "de"},
		{18, 18, "ss"},
		{15, 3, "pd"},
		{3, 15, "dp"},
		{24, 24, "yy"},
	}
	for _, tt := range tests {
		got := sgfCoord(tt.x, tt.y)
		if got != tt.want {
			t.Errorf("sgfCoord(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRulesText(t *testing.T) {
	tests := []struct {
		ko      rules.KoRule
		suicide bool
		want    string
	}{
		{rules.Situational, false, "situational superko"},
		{rules.Positional, true, "positional superko, suicide allowed"},
	}
	for _, tt := range tests {
		if got := rulesText(tt.ko, tt.suicide); got != tt.want {
			t.Errorf("rulesText(%v, %t) = %q, want %q", tt.ko, tt.suicide, got, tt.want)
		}
	}
}

func TestNewGameRecord(t *testing.T) {
	rec := newTestRecord(t, rules.RuleConfig{BoardSize: 19, KoRule: rules.Positional})

	if _, err := os.Stat(rec.FilePath); os.IsNotExist(err) {
		t.Fatal("SGF file not created")
	}
	s := readRecord(t, rec)

	for _, prop := range []string{"GM[1]", "FF[4]", "SZ[19]", "RU[positional superko]", "GN[cv3testgameid0000000]", "PB[Black]", "PW[White]", "RE[?]"} {
		if !strings.Contains(s, prop) {
			t.Errorf("SGF missing property %s in:\n%s", prop, s)
		}
	}
	if !strings.HasPrefix(s, "(;") {
		t.Error("SGF should start with '(;'")
	}
	if !strings.HasSuffix(strings.TrimSpace(s), ")") {
		t.Error("SGF should end with ')'")
	}
}

func TestAddMove(t *testing.T) {
	rec := newTestRecord(t, rules.RuleConfig{BoardSize: 19})

	rec.AddMove(15, 3, 1)  // B[pd]
	rec.AddMove(3, 15, 2)  // W[dp]
	rec.AddMove(15, 15, 1) // B[pp]

	s := readRecord(t, rec)
	if !strings.Contains(s, ";B[pd];W[dp];B[pp])") {
		t.Errorf("SGF missing moves in:\n%s", s)
	}
	if rec.MoveCount() != 3 {
		t.Errorf("MoveCount = %d, want 3", rec.MoveCount())
	}
}

func TestAddMovePass(t *testing.T) {
	rec := newTestRecord(t, testRules)

	rec.AddMove(4, 4, 1)   // B[ee]
	rec.AddMove(-1, -1, 2) // W[] pass
	rec.AddMove(-1, -1, 1) // B[] pass

	s := readRecord(t, rec)
	if !strings.Contains(s, ";B[ee];W[];B[]") {
		t.Errorf("unexpected move list in:\n%s", s)
	}
	// No scoring: a game ended by passes keeps an unknown result.
	if !strings.Contains(s, "RE[?]") {
		t.Errorf("result should stay unknown in:\n%s", s)
	}
}

func TestTruncateMoves(t *testing.T) {
	rec := newTestRecord(t, testRules)
	rec.AddMoves([]types.Move{
		{Color: 1, X: 4, Y: 4},
		{Color: 2, X: 2, Y: 2},
		{Color: 1, X: 6, Y: 6},
	})

	if err := rec.TruncateMoves(1); err != nil {
		t.Fatal(err)
	}
	rec.AddMove(3, 3, 2)

	s := readRecord(t, rec)
	if !strings.Contains(s, ";B[ee];W[dd])") {
		t.Errorf("truncated record wrong:\n%s", s)
	}
	if strings.Contains(s, "W[cc]") || strings.Contains(s, "B[gg]") {
		t.Errorf("discarded moves still present:\n%s", s)
	}

	if err := rec.TruncateMoves(10); err != nil || rec.MoveCount() != 2 {
		t.Errorf("TruncateMoves beyond length: err = %v, count = %d", err, rec.MoveCount())
	}
	if err := rec.TruncateMoves(-1); err != nil || rec.MoveCount() != 0 {
		t.Errorf("TruncateMoves(-1): err = %v, count = %d", err, rec.MoveCount())
	}
}

func TestOpenGameRecordReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resumed.sgf")
	if err := os.WriteFile(path, []byte(strings.Repeat("stale content ", 100)), 0644); err != nil {
		t.Fatal(err)
	}
	rec, err := OpenGameRecord(path, testRules, "")
	if err != nil {
		t.Fatal(err)
	}
	defer rec.Close()
	rec.AddMove(4, 4, 1)

	s := readRecord(t, rec)
	if strings.Contains(s, "stale") {
		t.Errorf("old content survived:\n%s", s)
	}
	if strings.Contains(s, "GN[") {
		t.Error("empty game id should not be written")
	}
}

func TestFilenameFormat(t *testing.T) {
	rec := newTestRecord(t, rules.RuleConfig{BoardSize: 13})

	base := filepath.Base(rec.FilePath)
	if !strings.HasSuffix(base, "_13x13_cv3testgameid0000000.sgf") {
		t.Errorf("Filename should end with size and id, got %s", base)
	}
	if !strings.HasPrefix(base, "20") {
		t.Errorf("Filename should start with year, got %s", base)
	}
}

func TestCloseIdempotent(t *testing.T) {
	rec, err := NewGameRecord(t.TempDir(), testRules, "x")
	if err != nil {
		t.Fatalf("NewGameRecord: %v", err)
	}

	rec.Close()
	rec.Close() // Should not panic
	if err := rec.AddMove(0, 0, 1); err == nil {
		t.Error("AddMove after Close should fail")
	}
}

func TestCrashSafety(t *testing.T) {
	rec := newTestRecord(t, testRules)

	rec.AddMove(4, 4, 1)
	rec.AddMove(2, 2, 2)

	// The file is complete after every flush, without Close.
	s := readRecord(t, rec)
	if !strings.HasPrefix(s, "(;") {
		t.Error("File should be valid SGF even without Close()")
	}
	if !strings.HasSuffix(strings.TrimSpace(s), ";B[ee];W[cc])") {
		t.Errorf("File should end with the moves and closing paren:\n%s", s)
	}
}
