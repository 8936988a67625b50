package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Vertex notation:
// - Columns: A-Z skipping I, left to right
// - Rows: 1..size counted from the bottom
// - Example: D4, Q16, K10
//
// Board coordinates are 0-indexed from the top-left, so on a 19x19 board
// (3, 15) is D4 and (15, 3) is Q16.

// VertexName converts board coordinates to vertex notation. A pass is
// written as "pass".
func VertexName(x, y, size int) string {
	if x < 0 || y < 0 {
		return "pass"
	}
	col := 'A' + rune(x)
	if x >= 8 {
		col++ // skip 'I'
	}
	return fmt.Sprintf("%c%d", col, size-y)
}

// ParseVertex converts vertex notation to board coordinates. "pass" returns
// (-1, -1).
func ParseVertex(vertex string, size int) (int, int, error) {
	vertex = strings.TrimSpace(strings.ToUpper(vertex))
	if vertex == "PASS" {
		return -1, -1, nil
	}
	if len(vertex) < 2 {
		return 0, 0, fmt.Errorf("invalid vertex: %q", vertex)
	}

	letter := vertex[0]
	if letter < 'A' || letter > 'Z' || letter == 'I' {
		return 0, 0, fmt.Errorf("invalid column in vertex: %q", vertex)
	}
	x := int(letter - 'A')
	if letter > 'I' {
		x--
	}

	row, err := strconv.Atoi(vertex[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in vertex: %q", vertex)
	}
	y := size - row

	if x >= size || y < 0 || y >= size {
		return 0, 0, fmt.Errorf("vertex out of bounds: %q", vertex)
	}
	return x, y, nil
}
