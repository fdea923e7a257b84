// Package solver holds the core search: a randomized backtracking
// partition of a shape into snakes, most-constrained cell first, with a
// per-attempt iteration budget.
package solver

import (
	"context"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/rng"
)

// DefaultIterationCap bounds recursive search steps within one attempt.
// It bounds steps, not wall-clock time; callers embedding the solver in
// a request path must still enforce a deadline via ctx.
const DefaultIterationCap = 10000

// Backtracking is the recursive tiling solver. Safe for concurrent use:
// all mutable state lives in a per-call searchState.
type Backtracking struct {
	IterationCap int
}

// NewBacktracking returns a solver with the given iteration cap, or the
// default when cap is not positive.
func NewBacktracking(cap int) *Backtracking {
	if cap <= 0 {
		cap = DefaultIterationCap
	}
	return &Backtracking{IterationCap: cap}
}

type placedSnake struct {
	snake domain.Snake
	dir   domain.Direction
}

// searchState is created per attempt and discarded at attempt end; it
// is never shared across attempts or requests.
type searchState struct {
	unplaced   map[domain.Position]struct{}
	placed     []placedSnake
	iterations int
}

// Solve attempts one full tiling of sh. It returns the snakes in
// placement order, the iterations consumed, and whether the attempt
// succeeded. Exhaustion and budget overrun return identically as a
// failed attempt.
func (s *Backtracking) Solve(ctx context.Context, sh *domain.Shape, minLen, maxLen int, src rng.Source) ([]domain.Snake, int, bool) {
	st := &searchState{unplaced: make(map[domain.Position]struct{}, sh.Size())}
	for _, p := range sh.Tiles() {
		st.unplaced[p] = struct{}{}
	}
	if !s.place(ctx, sh, st, minLen, maxLen, src) {
		return nil, st.iterations, false
	}
	snakes := make([]domain.Snake, len(st.placed))
	for i, ps := range st.placed {
		snakes[i] = ps.snake
	}
	return snakes, st.iterations, true
}

// place is one recursion step: pick the most constrained unplaced tile,
// try each candidate path from it, commit, recurse, undo. Each undo
// exactly reverses its commit, which backtracking correctness depends
// on.
func (s *Backtracking) place(ctx context.Context, sh *domain.Shape, st *searchState, minLen, maxLen int, src rng.Source) bool {
	if len(st.unplaced) == 0 {
		return true
	}
	st.iterations++
	if st.iterations > s.IterationCap || ctx.Err() != nil {
		return false
	}

	start := mostConstrained(sh, st.unplaced)

	used := make(map[domain.Position]struct{}, sh.Size()-len(st.unplaced))
	for _, p := range sh.Tiles() {
		if _, free := st.unplaced[p]; !free {
			used[p] = struct{}{}
		}
	}

	for _, cand := range enumerate(start, sh, used, minLen, maxLen, src) {
		if !allUnplaced(cand, st.unplaced) {
			continue
		}
		dir := domain.DirectionOf(cand)
		if facesAny(cand.Head(), dir, st.placed) {
			continue
		}

		// commit
		for _, p := range cand {
			delete(st.unplaced, p)
		}
		st.placed = append(st.placed, placedSnake{snake: cand, dir: dir})

		if s.place(ctx, sh, st, minLen, maxLen, src) {
			return true
		}

		// undo
		st.placed = st.placed[:len(st.placed)-1]
		for _, p := range cand {
			st.unplaced[p] = struct{}{}
		}
	}
	return false
}

// mostConstrained returns the unplaced tile with the fewest tile
// neighbors, front-loading corners and narrow passages before earlier
// placements can strand them. Ties break toward ascending (Y, X),
// which the sorted tile order provides.
func mostConstrained(sh *domain.Shape, unplaced map[domain.Position]struct{}) domain.Position {
	var best domain.Position
	bestDeg := 5
	for _, p := range sh.Tiles() {
		if _, free := unplaced[p]; !free {
			continue
		}
		if deg := sh.Degree(p); deg < bestDeg {
			best, bestDeg = p, deg
		}
	}
	return best
}

// allUnplaced re-checks that every candidate tile is still free before
// committing.
func allUnplaced(cand domain.Snake, unplaced map[domain.Position]struct{}) bool {
	for _, p := range cand {
		if _, free := unplaced[p]; !free {
			return false
		}
	}
	return true
}

func facesAny(head domain.Position, dir domain.Direction, placed []placedSnake) bool {
	for _, ps := range placed {
		if domain.FaceToFace(head, dir, ps.snake.Head(), ps.dir) {
			return true
		}
	}
	return false
}
