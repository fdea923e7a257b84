package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/rng"
	"svw.info/snaketile/internal/shape"
)

func TestEnumerateRowFromEnd(t *testing.T) {
	sh := shape.Parse("xxx")
	paths := enumerate(domain.Position{X: 0, Y: 0}, sh, nil, 1, 3, rng.NewSeeded(1))
	// The row only extends rightward: one path per length.
	require.Len(t, paths, 3)
	lengths := map[int]bool{}
	for _, p := range paths {
		require.Equal(t, domain.Position{X: 0, Y: 0}, p.Head())
		lengths[len(p)] = true
	}
	assert.Equal(t, map[int]bool{1: true, 2: true, 3: true}, lengths)
}

func TestEnumerateRespectsMinLen(t *testing.T) {
	sh := shape.Parse("xxx")
	paths := enumerate(domain.Position{X: 0, Y: 0}, sh, nil, 3, 3, rng.NewSeeded(1))
	require.Len(t, paths, 1)
	assert.Equal(t, domain.Snake{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}, paths[0])
}

func TestEnumerateExcludesUsed(t *testing.T) {
	sh := shape.Parse("xxx")
	used := map[domain.Position]struct{}{{X: 2, Y: 0}: {}}
	paths := enumerate(domain.Position{X: 0, Y: 0}, sh, used, 1, 3, rng.NewSeeded(1))
	require.Len(t, paths, 2)
	for _, p := range paths {
		assert.NotContains(t, p, domain.Position{X: 2, Y: 0})
	}
}

func TestEnumeratePathsAreSimpleAndConnected(t *testing.T) {
	sh := shape.Parse("xxx\nxxx\nxxx")
	paths := enumerate(domain.Position{X: 1, Y: 1}, sh, nil, 1, 5, rng.NewSeeded(3))
	require.NotEmpty(t, paths)
	for _, p := range paths {
		seen := map[domain.Position]struct{}{}
		for i, pos := range p {
			require.True(t, sh.Contains(pos))
			_, dup := seen[pos]
			require.False(t, dup, "path revisits %v", pos)
			seen[pos] = struct{}{}
			if i > 0 {
				assert.True(t, adjacent(p[i-1], pos), "gap between %v and %v", p[i-1], pos)
			}
		}
		require.GreaterOrEqual(t, len(p), 1)
		require.LessOrEqual(t, len(p), 5)
	}
}

func adjacent(a, b domain.Position) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}
