package rules

import (
	"fmt"
	"sort"
)

// Group is a maximal set of orthogonally connected stones of one color,
// together with its liberties. Both index slices are sorted ascending and
// hold no duplicates.
type Group struct {
	Color     Point
	Stones    []int
	Liberties []int
}

// Captured reports whether the group has no liberties left.
func (g Group) Captured() bool {
	return len(g.Liberties) == 0
}

// AnalyzeGroup flood-fills from start over stones of the same color and
// collects every empty neighbor as a liberty. Each point is visited at most
// once.
func AnalyzeGroup(b *Board, start int) (Group, error) {
	color, err := b.Get(start)
	if err != nil {
		return Group{}, err
	}
	if !color.IsStone() {
		return Group{}, fmt.Errorf("%w: %d", ErrEmptyPoint, start)
	}

	visited := make([]bool, b.Len())
	group := Group{Color: color}
	stack := []int{start}
	visited[start] = true
	neighbors := make([]int, 0, 4)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		group.Stones = append(group.Stones, idx)

		neighbors = b.appendNeighbors(neighbors[:0], idx)
		for _, n := range neighbors {
			if visited[n] {
				continue
			}
			switch b.points[n] {
			case color:
				visited[n] = true
				stack = append(stack, n)
			case Empty:
				visited[n] = true
				group.Liberties = append(group.Liberties, n)
			}
		}
	}

	sort.Ints(group.Stones)
	sort.Ints(group.Liberties)
	return group, nil
}

// removeGroup clears every stone of g from the board.
func removeGroup(b *Board, g Group) {
	for _, idx := range g.Stones {
		b.set(idx, Empty)
	}
}
