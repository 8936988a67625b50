package types

import "testing"

func TestVertexName(t *testing.T) {
	tests := []struct {
		x, y, size int
		want       string
	}{
		{0, 18, 19, "A1"},
		{3, 15, 19, "D4"},
		{15, 3, 19, "Q16"},
		{8, 0, 9, "J9"},
		{4, 4, 9, "E5"},
		{24, 0, 25, "Z25"},
		{-1, -1, 19, "pass"},
	}
	for _, tt := range tests {
		if got := VertexName(tt.x, tt.y, tt.size); got != tt.want {
			t.Errorf("VertexName(%d, %d, %d) = %q, want %q", tt.x, tt.y, tt.size, got, tt.want)
		}
	}
}

func TestParseVertex(t *testing.T) {
	tests := []struct {
		vertex string
		size   int
		x, y   int
	}{
		{"A1", 19, 0, 18},
		{"d4", 19, 3, 15},
		{"Q16", 19, 15, 3},
		{"J9", 9, 8, 0},
		{" pass ", 9, -1, -1},
	}
	for _, tt := range tests {
		x, y, err := ParseVertex(tt.vertex, tt.size)
		if err != nil {
			t.Errorf("ParseVertex(%q): %v", tt.vertex, err)
			continue
		}
		if x != tt.x || y != tt.y {
			t.Errorf("ParseVertex(%q) = (%d, %d), want (%d, %d)", tt.vertex, x, y, tt.x, tt.y)
		}
	}
}

func TestParseVertexRejects(t *testing.T) {
	for _, v := range []string{"", "A", "I5", "A0", "K1", "A10", "5A", "?3"} {
		if _, _, err := ParseVertex(v, 9); err == nil {
			t.Errorf("ParseVertex(%q) accepted, want error", v)
		}
	}
}

func TestVertexRoundTrip(t *testing.T) {
	for _, size := range []int{1, 9, 13, 19, 25} {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				gx, gy, err := ParseVertex(VertexName(x, y, size), size)
				if err != nil || gx != x || gy != y {
					t.Fatalf("size %d: (%d,%d) -> %q -> (%d,%d), %v", size, x, y, VertexName(x, y, size), gx, gy, err)
				}
			}
		}
	}
}

func TestBoardStateDimensions(t *testing.T) {
	b := NewBoardState(9)
	if b.Width() != 9 || b.Height() != 9 {
		t.Errorf("dimensions = %dx%d, want 9x9", b.Width(), b.Height())
	}
	if b.Finished() || b.Browsing() {
		t.Error("new board should be playing at the latest move")
	}
	if b.LastMove != NoPos {
		t.Errorf("LastMove = %+v, want NoPos", b.LastMove)
	}
	if (&BoardState{}).Width() != 0 {
		t.Error("empty state should have zero width")
	}
}
