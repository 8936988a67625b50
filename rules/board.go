package rules

import "fmt"

// Board is a square grid of points stored row-major: index = row*size + col.
// The zero value is not usable; create boards with NewBoard.
type Board struct {
	size   int
	points []Point
	hash   uint64
}

// NewBoard returns an empty size x size board.
func NewBoard(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: board size %d", ErrInvalidArgument, size)
	}
	return &Board{size: size, points: make([]Point, size*size)}, nil
}

// Size returns the number of lines on each side.
func (b *Board) Size() int {
	return b.size
}

// Len returns the number of points, size².
func (b *Board) Len() int {
	return len(b.points)
}

// Index converts column x and row y into a point index.
func (b *Board) Index(x, y int) (int, error) {
	if x < 0 || x >= b.size || y < 0 || y >= b.size {
		return -1, fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, x, y)
	}
	return y*b.size + x, nil
}

// XY converts a point index into column x and row y.
func (b *Board) XY(index int) (x, y int) {
	return index % b.size, index / b.size
}

func (b *Board) inBounds(index int) bool {
	return index >= 0 && index < len(b.points)
}

// Get returns the point at index.
func (b *Board) Get(index int) (Point, error) {
	if !b.inBounds(index) {
		return Empty, fmt.Errorf("%w: %d", ErrOutOfBounds, index)
	}
	return b.points[index], nil
}

// Set overwrites the point at index. No legality checks are made.
func (b *Board) Set(index int, p Point) error {
	if !b.inBounds(index) {
		return fmt.Errorf("%w: %d", ErrOutOfBounds, index)
	}
	b.set(index, p)
	return nil
}

// set keeps the zobrist hash in step with the points. index must be valid.
func (b *Board) set(index int, p Point) {
	old := b.points[index]
	if old == p {
		return
	}
	z := zobristFor(b.size)
	if old.IsStone() {
		b.hash ^= z.key(index, old)
	}
	if p.IsStone() {
		b.hash ^= z.key(index, p)
	}
	b.points[index] = p
}

// Neighbors returns the orthogonally adjacent indices of index: up, down,
// left, right, skipping those off the board.
func (b *Board) Neighbors(index int) []int {
	return b.appendNeighbors(make([]int, 0, 4), index)
}

func (b *Board) appendNeighbors(dst []int, index int) []int {
	if !b.inBounds(index) {
		return dst
	}
	x, y := b.XY(index)
	if y > 0 {
		dst = append(dst, index-b.size)
	}
	if y < b.size-1 {
		dst = append(dst, index+b.size)
	}
	if x > 0 {
		dst = append(dst, index-1)
	}
	if x < b.size-1 {
		dst = append(dst, index+1)
	}
	return dst
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	points := make([]Point, len(b.points))
	copy(points, b.points)
	return &Board{size: b.size, points: points, hash: b.hash}
}

// Points returns a copy of the points in index order.
func (b *Board) Points() []Point {
	points := make([]Point, len(b.points))
	copy(points, b.points)
	return points
}

// Hash returns the zobrist hash of the stones on the board. Equal boards
// always have equal hashes.
func (b *Board) Hash() uint64 {
	return b.hash
}

// Equal reports whether both boards have the same size and stones. A nil
// board equals nothing.
func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	if b.size != other.size || b.hash != other.hash {
		return false
	}
	for i, p := range b.points {
		if other.points[i] != p {
			return false
		}
	}
	return true
}

// Count returns the number of points holding p.
func (b *Board) Count(p Point) int {
	n := 0
	for _, q := range b.points {
		if q == p {
			n++
		}
	}
	return n
}

// Grid returns the board as rows of ints, indexed [y][x], for rendering and
// SGF export.
func (b *Board) Grid() [][]int {
	grid := make([][]int, b.size)
	for y := range grid {
		grid[y] = make([]int, b.size)
		for x := range grid[y] {
			grid[y][x] = int(b.points[y*b.size+x])
		}
	}
	return grid
}
