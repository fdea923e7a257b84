package solver

import (
	"slices"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/rng"
)

// enumerate returns every simple path that starts at start, stays on
// shape tiles, avoids the cells in used, and has a length within
// [minLen, maxLen]. The depth-first walk shuffles the eligible
// neighbors at each step, so candidate order differs between calls even
// for identical inputs; the solver consumes candidates in this order,
// which biases which tiling is found first, never which exist.
// Worst-case exponential, but maxLen (≤11) keeps it tightly bounded.
func enumerate(start domain.Position, sh *domain.Shape, used map[domain.Position]struct{}, minLen, maxLen int, src rng.Source) []domain.Snake {
	var out []domain.Snake
	path := make(domain.Snake, 0, maxLen)
	onPath := make(map[domain.Position]struct{}, maxLen)

	var walk func(p domain.Position)
	walk = func(p domain.Position) {
		path = append(path, p)
		onPath[p] = struct{}{}

		if len(path) >= minLen {
			out = append(out, slices.Clone(path))
		}
		if len(path) < maxLen {
			var next []domain.Position
			for _, q := range sh.Neighbors(p) {
				if _, taken := used[q]; taken {
					continue
				}
				if _, taken := onPath[q]; taken {
					continue
				}
				next = append(next, q)
			}
			rng.Shuffle(src, next)
			for _, q := range next {
				walk(q)
			}
		}

		delete(onPath, p)
		path = path[:len(path)-1]
	}
	walk(start)
	return out
}
