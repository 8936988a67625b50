package rules

import "sync"

// zobristTable holds one random key per (point, color). Tables are generated
// deterministically from the board size so hashes are stable across runs.
type zobristTable struct {
	keys []uint64
}

type zobristStore struct {
	mu     sync.Mutex
	tables map[int]*zobristTable
}

var zobristTables = &zobristStore{tables: make(map[int]*zobristTable)}

func zobristFor(size int) *zobristTable {
	zobristTables.mu.Lock()
	defer zobristTables.mu.Unlock()
	if table, ok := zobristTables.tables[size]; ok {
		return table
	}
	rng := splitmix64{state: 0x9e3779b97f4a7c15 ^ uint64(size)}
	table := &zobristTable{keys: make([]uint64, size*size*2)}
	for i := range table.keys {
		table.keys[i] = rng.next()
	}
	zobristTables.tables[size] = table
	return table
}

func (z *zobristTable) key(index int, p Point) uint64 {
	idx := index * 2
	if p == White {
		idx++
	}
	return z.keys[idx]
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
