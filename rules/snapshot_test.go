package rules

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestSnapshotRoundTrip(t *testing.T) {
	g := newTestGame(t, RuleConfig{BoardSize: 9, KoRule: Positional, SuicideAllowed: true})
	play(t, g, 1, 0, 9, 40)
	if err := g.Pass(); err != nil {
		t.Fatal(err)
	}
	play(t, g, 41)
	g.Step(Previous)
	g.Step(Previous)

	restored, err := Import(g.Export())
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	assertSameGame(t, g, restored)

	restored.Step(Last)
	g.Step(Last)
	assertSameGame(t, g, restored)
}

func TestSnapshotJSON(t *testing.T) {
	g := newTestGame(t, RuleConfig{BoardSize: 5})
	play(t, g, 1, 2, 5, 8, 11, 12, 24, 6, 7)
	if err := g.Pass(); err != nil {
		t.Fatal(err)
	}
	if err := g.Pass(); err != nil {
		t.Fatal(err)
	}

	data, err := json.Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"ko_rule":"situational"`) {
		t.Errorf("snapshot JSON missing ko rule: %s", data)
	}

	var restored Game
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	assertSameGame(t, g, &restored)
	if restored.Running() {
		t.Error("finished game should stay finished after restore")
	}
}

func TestImportRejectsBadSnapshots(t *testing.T) {
	g := newTestGame(t, RuleConfig{BoardSize: 9})
	play(t, g, 40, 41)
	good := g.Export()

	tests := []struct {
		name   string
		modify func(s *Snapshot)
		want   error
	}{
		{"version", func(s *Snapshot) { s.Version = 99 }, ErrInvalidArgument},
		{"ko rule", func(s *Snapshot) { s.Rules.KoRule = "japanese" }, ErrInvalidArgument},
		{"board size", func(s *Snapshot) { s.Rules.BoardSize = 0 }, ErrInvalidArgument},
		{"occupied", func(s *Snapshot) { s.Moves[1].Index = 40 }, ErrOccupied},
		{"wrong color", func(s *Snapshot) { s.Moves[1].Color = "B" }, ErrInvalidArgument},
		{"cursor", func(s *Snapshot) { s.Cursor = 3 }, ErrInvalidArgument},
		{"running", func(s *Snapshot) { s.Running = false }, ErrInvalidArgument},
	}
	for _, tt := range tests {
		s := good
		s.Moves = append([]SnapshotMove(nil), good.Moves...)
		tt.modify(&s)
		if _, err := Import(s); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func assertSameGame(t *testing.T, want, got *Game) {
	t.Helper()
	if got.ID() != want.ID() {
		t.Errorf("ID = %q, want %q", got.ID(), want.ID())
	}
	if got.Rules() != want.Rules() {
		t.Errorf("Rules = %+v, want %+v", got.Rules(), want.Rules())
	}
	if got.Cursor() != want.Cursor() || got.Len() != want.Len() {
		t.Errorf("cursor/len = %d/%d, want %d/%d", got.Cursor(), got.Len(), want.Cursor(), want.Len())
	}
	if got.Turn() != want.Turn() || got.Running() != want.Running() {
		t.Errorf("turn/running = %v/%t, want %v/%t", got.Turn(), got.Running(), want.Turn(), want.Running())
	}
	if !reflect.DeepEqual(got.Position(), want.Position()) {
		t.Error("positions differ")
	}
	for _, c := range []Point{Black, White} {
		if got.Captured(c) != want.Captured(c) {
			t.Errorf("Captured(%v) = %d, want %d", c, got.Captured(c), want.Captured(c))
		}
	}
	we, ge := want.Entries(), got.Entries()
	for i := range we {
		if !we[i].Board.Equal(ge[i].Board) || !reflect.DeepEqual(we[i].Captured, ge[i].Captured) || we[i].Index != ge[i].Index {
			t.Errorf("entry %d differs", i)
		}
	}
}
