package rules

import (
	"errors"
	"reflect"
	"testing"
)

// boardFrom builds a board from rows of 'X' (black), 'O' (white) and '.'.
func boardFrom(t *testing.T, rows ...string) *Board {
	t.Helper()
	b, err := NewBoard(len(rows))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	for y, row := range rows {
		if len(row) != len(rows) {
			t.Fatalf("row %d has %d points, want %d", y, len(row), len(rows))
		}
		for x, ch := range row {
			p := Empty
			switch ch {
			case 'X':
				p = Black
			case 'O':
				p = White
			}
			if err := b.Set(y*len(rows)+x, p); err != nil {
				t.Fatalf("Set: %v", err)
			}
		}
	}
	return b
}

func TestNewBoardRejectsBadSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		if _, err := NewBoard(size); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewBoard(%d) err = %v, want ErrInvalidArgument", size, err)
		}
	}
}

func TestBoardGetSetBounds(t *testing.T) {
	b, _ := NewBoard(3)
	for _, idx := range []int{-1, 9, 100} {
		if _, err := b.Get(idx); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Get(%d) err = %v, want ErrOutOfBounds", idx, err)
		}
		if err := b.Set(idx, Black); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Set(%d) err = %v, want ErrInvalidArgument", idx, err)
		}
	}

	if err := b.Set(4, White); err != nil {
		t.Fatalf("Set: %v", err)
	}
	p, err := b.Get(4)
	if err != nil || p != White {
		t.Errorf("Get(4) = %v, %v; want white", p, err)
	}
}

func TestBoardNeighbors(t *testing.T) {
	b, _ := NewBoard(3)
	tests := []struct {
		index int
		want  []int
	}{
		{0, []int{3, 1}},
		{2, []int{5, 1}},
		{4, []int{1, 7, 3, 5}},
		{7, []int{4, 6, 8}},
		{8, []int{5, 7}},
		{-1, []int{}},
	}
	for _, tt := range tests {
		got := b.Neighbors(tt.index)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Neighbors(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}

	single, _ := NewBoard(1)
	if n := single.Neighbors(0); len(n) != 0 {
		t.Errorf("1x1 Neighbors(0) = %v, want none", n)
	}
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := boardFrom(t,
		"X..",
		".O.",
		"...",
	)
	c := b.Clone()
	if !b.Equal(c) {
		t.Fatal("clone should equal original")
	}
	c.Set(8, Black)
	if p, _ := b.Get(8); p != Empty {
		t.Fatal("modifying the clone changed the original")
	}
	if b.Equal(c) {
		t.Fatal("boards should differ after modifying the clone")
	}
	if b.Equal(nil) {
		t.Fatal("a board should not equal nil")
	}
}

func TestBoardHashTracksStones(t *testing.T) {
	a := boardFrom(t,
		"X.",
		".O",
	)
	b, _ := NewBoard(2)
	b.Set(3, White)
	b.Set(0, Black)
	if a.Hash() != b.Hash() {
		t.Error("same stones placed in a different order should hash equally")
	}

	b.Set(0, Empty)
	empty := boardFrom(t,
		"..",
		".O",
	)
	if b.Hash() != empty.Hash() || !b.Equal(empty) {
		t.Error("removing a stone should restore the earlier hash")
	}
}

func TestBoardIndexXY(t *testing.T) {
	b, _ := NewBoard(9)
	idx, err := b.Index(4, 4)
	if err != nil || idx != 40 {
		t.Fatalf("Index(4,4) = %d, %v; want 40", idx, err)
	}
	if x, y := b.XY(40); x != 4 || y != 4 {
		t.Errorf("XY(40) = (%d,%d), want (4,4)", x, y)
	}
	if _, err := b.Index(9, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Index(9,0) err = %v, want ErrOutOfBounds", err)
	}
}

func TestBoardGrid(t *testing.T) {
	b := boardFrom(t,
		"X.",
		".O",
	)
	want := [][]int{{1, 0}, {0, 2}}
	if got := b.Grid(); !reflect.DeepEqual(got, want) {
		t.Errorf("Grid() = %v, want %v", got, want)
	}
	if b.Count(Black) != 1 || b.Count(Empty) != 2 {
		t.Errorf("Count: black=%d empty=%d", b.Count(Black), b.Count(Empty))
	}
}
