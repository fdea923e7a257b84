package domain

import "sort"

// neighborOffsets is the fixed enumeration order for the four
// orthogonal neighbors. Callers that need a randomized order must
// shuffle the result themselves.
var neighborOffsets = [4]Position{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// Shape is the immutable set of occupied cells parsed from an input
// grid, with its bounding dimensions. A Position is a tile iff it is in
// the set.
type Shape struct {
	Width  int
	Height int

	set   map[Position]struct{}
	tiles []Position // ascending (Y, X)
}

// NewShape builds a shape from its tiles and bounding dimensions.
// Duplicate tiles are collapsed.
func NewShape(tiles []Position, width, height int) *Shape {
	s := &Shape{
		Width:  width,
		Height: height,
		set:    make(map[Position]struct{}, len(tiles)),
	}
	for _, p := range tiles {
		if _, dup := s.set[p]; dup {
			continue
		}
		s.set[p] = struct{}{}
		s.tiles = append(s.tiles, p)
	}
	sort.Slice(s.tiles, func(i, j int) bool {
		if s.tiles[i].Y != s.tiles[j].Y {
			return s.tiles[i].Y < s.tiles[j].Y
		}
		return s.tiles[i].X < s.tiles[j].X
	})
	return s
}

// Size returns the number of tiles.
func (s *Shape) Size() int { return len(s.tiles) }

// Contains reports whether p is a tile of the shape.
func (s *Shape) Contains(p Position) bool {
	_, ok := s.set[p]
	return ok
}

// Tiles returns the tiles in ascending (Y, X) order. The slice is
// shared; callers must not mutate it.
func (s *Shape) Tiles() []Position { return s.tiles }

// Neighbors returns the orthogonal neighbors of p that are tiles, in
// the fixed offset order.
func (s *Shape) Neighbors(p Position) []Position {
	out := make([]Position, 0, 4)
	for _, d := range neighborOffsets {
		q := Position{X: p.X + d.X, Y: p.Y + d.Y}
		if s.Contains(q) {
			out = append(out, q)
		}
	}
	return out
}

// Degree counts the tile neighbors of p. It is a heuristic signal for
// search ordering, not a correctness input.
func (s *Shape) Degree(p Position) int {
	n := 0
	for _, d := range neighborOffsets {
		if s.Contains(Position{X: p.X + d.X, Y: p.Y + d.Y}) {
			n++
		}
	}
	return n
}
