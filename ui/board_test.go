package ui

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"tengen/rules"
	"tengen/sgf"
	"tengen/types"
)

func TestHoshiPoints(t *testing.T) {
	tests := []struct {
		size  int
		count int
		point [2]int
	}{
		{size: 5, count: 0},
		{size: 7, count: 4, point: [2]int{2, 4}},
		{size: 9, count: 5, point: [2]int{4, 4}},
		{size: 13, count: 5, point: [2]int{3, 9}},
		{size: 19, count: 9, point: [2]int{3, 9}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%dx%d", tt.size, tt.size), func(t *testing.T) {
			n := 0
			for y := 0; y < tt.size; y++ {
				for x := 0; x < tt.size; x++ {
					if isHoshiPoint(x, y, tt.size) {
						n++
					}
				}
			}
			if n != tt.count {
				t.Errorf("%d star points, want %d", n, tt.count)
			}
			if tt.count > 0 && !isHoshiPoint(tt.point[0], tt.point[1], tt.size) {
				t.Errorf("%v should be a star point", tt.point)
			}
		})
	}
	if isHoshiPoint(4, 2, 9) {
		t.Error("9x9 has no side star points")
	}
}

func TestGridRune(t *testing.T) {
	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, '┌'},
		{8, 0, '┐'},
		{0, 8, '└'},
		{8, 8, '┘'},
		{3, 0, '┬'},
		{3, 8, '┴'},
		{0, 3, '├'},
		{8, 3, '┤'},
		{3, 3, '┼'},
	}
	for _, tt := range tests {
		if got := gridRune(tt.x, tt.y, 9, 9, false); got != tt.want {
			t.Errorf("gridRune(%d, %d) = %c, want %c", tt.x, tt.y, got, tt.want)
		}
	}
	if got := gridRune(3, 3, 9, 9, true); got != '◦' {
		t.Errorf("star point rune = %c", got)
	}
}

func TestColumnLabelMatchesVertexNames(t *testing.T) {
	for x := 0; x < 25; x++ {
		name := types.VertexName(x, 0, 25)
		if got := columnLabel(x, false); rune(name[0]) != got {
			t.Errorf("column %d: label %c, vertex %s", x, got, name)
		}
	}
	if got := columnLabel(8, true); got != 'Ｊ' {
		t.Errorf("full width column 8 = %c, want Ｊ", got)
	}
}

func TestConnector(t *testing.T) {
	bs := types.NewBoardState(3)
	bs.Board[0][1] = 1
	if got := connector(bs, 0, 0, true); got != ' ' {
		t.Error("no line into a stone")
	}
	if got := connector(bs, 0, 1, true); got != '─' {
		t.Error("line between empty points")
	}
	if got := connector(bs, 2, 1, true); got != ' ' {
		t.Error("no line past the right edge")
	}
	if got := connector(bs, 0, 1, false); got != ' ' {
		t.Error("no lines without grid theme")
	}
}

func TestStatusText(t *testing.T) {
	playing := types.NewBoardState(9)
	playing.PlayerToMove = 2
	playing.MoveNumber, playing.HistoryLen = 3, 3

	passed := types.NewBoardState(9)
	passed.MoveNumber, passed.HistoryLen = 4, 4
	passed.LastPass = true

	browsing := types.NewBoardState(9)
	browsing.MoveNumber, browsing.HistoryLen = 2, 5

	over := types.NewBoardState(9)
	over.Phase = types.PhaseFinished
	over.Outcome = "Both players passed"
	over.MoveNumber, over.HistoryLen = 6, 6

	overBrowsing := *over
	overBrowsing.MoveNumber = 1

	tests := []struct {
		name   string
		bs     *types.BoardState
		notice string
		want   []string
	}{
		{"turn", playing, "", []string{"○ White to move"}},
		{"pass", passed, "", []string{"Black to move", "(White passed)"}},
		{"browsing", browsing, "", []string{"Move 2/5", "replaces later moves"}},
		{"game over", over, "", []string{"Game over: Both players passed"}},
		{"browsing finished", &overBrowsing, "", []string{"Move 1/6 (game over)"}},
		{"notice", playing, "Point occupied", []string{"! Point occupied"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := statusText(tt.bs, tt.notice)
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("status %q lacks %q", got, w)
				}
			}
			if !strings.Contains(got, boardControls) {
				t.Error("controls line missing")
			}
		})
	}
}

func TestMoveErrorText(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{&rules.IllegalMoveError{Reason: rules.Occupied, Index: 4}, "Point occupied"},
		{&rules.IllegalMoveError{Reason: rules.Suicide, Index: 4}, "Suicide not allowed"},
		{&rules.IllegalMoveError{Reason: rules.KoViolation, Index: 4}, "Ko: position repeats"},
		{rules.ErrGameOver, "Game is over"},
		{fmt.Errorf("play: %w", rules.ErrGameOver), "Game is over"},
		{rules.ErrOutOfBounds, rules.ErrOutOfBounds.Error()},
	}
	for _, tt := range tests {
		if got := moveErrorText(tt.err); got != tt.want {
			t.Errorf("moveErrorText(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

func TestPanelText(t *testing.T) {
	bs := types.NewBoardState(9)
	bs.KoRule = "positional"
	bs.SuicideAllowed = true
	bs.CapturedBlack = 1
	for i := 0; i < 20; i++ {
		bs.Moves = append(bs.Moves, types.Move{Color: 1 + i%2, X: i % 9, Y: i / 9})
	}
	bs.Moves[19] = types.Move{Color: 2, X: -1, Y: -1}
	bs.Moves[2].Captured = 1
	bs.HistoryLen = 20

	bs.MoveNumber = 20
	got := panelText(bs)
	for _, w := range []string{"positional ko, suicide", "20/20", "B 1  W 0", "8 earlier", "pass"} {
		if !strings.Contains(got, w) {
			t.Errorf("at end: panel lacks %q\n%s", w, got)
		}
	}
	if strings.Contains(got, "later") {
		t.Error("no later moves at the end of the history")
	}

	bs.MoveNumber = 3
	got = panelText(bs)
	for _, w := range []string{"3/20", "C9 x1", "8 later"} {
		if !strings.Contains(got, w) {
			t.Errorf("browsing: panel lacks %q\n%s", w, got)
		}
	}
	if strings.Contains(got, "earlier") {
		t.Error("the first moves should be in view")
	}

	if panelText(nil) != "" {
		t.Error("nil state renders nothing")
	}
}

func TestGameLabel(t *testing.T) {
	g := sgf.GameInfo{
		Date:      "2026-01-02",
		BoardSize: 13,
		Rules:     rules.RuleConfig{KoRule: rules.Positional, BoardSize: 13},
		MoveCount: 42,
	}
	if got, want := gameLabel(g), "2026-01-02  13x13  pos   42 mv"; got != want {
		t.Errorf("gameLabel = %q, want %q", got, want)
	}
	if got := boardSizeLabel(19); got != "19x19" {
		t.Errorf("boardSizeLabel = %q", got)
	}
}

func TestMenuColorsReadable(t *testing.T) {
	colors := map[string]tcell.Color{
		"border":       MenuColors.Border,
		"label":        MenuColors.Label,
		"hint":         MenuColors.Hint,
		"button":       MenuColors.ButtonBG,
		"button focus": MenuColors.ButtonFocus,
		"button text":  MenuColors.ButtonText,
	}
	for name, c := range colors {
		if c == tcell.ColorDefault {
			t.Errorf("%s color is unset", name)
		}
	}
	if MenuColors.ButtonText == MenuColors.ButtonBG || MenuColors.ButtonText == MenuColors.ButtonFocus {
		t.Error("button text must differ from its backgrounds")
	}
	if MenuColors.Label == MenuColors.Hint {
		t.Error("hints should be dimmer than labels")
	}
}
