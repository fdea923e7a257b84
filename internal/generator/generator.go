// Package generator retries the tiling solver across independent
// attempts and normalizes the first success for output.
package generator

import (
	"context"
	"errors"
	"time"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/ports"
	"svw.info/snaketile/internal/rng"
	"svw.info/snaketile/internal/shape"
)

// ErrNoTiling reports that every attempt ran out without a tiling:
// either the request is infeasible or the bounded randomized search
// missed an existing solution. It is a normal negative outcome,
// distinguishable from input rejection.
var ErrNoTiling = errors.New("generator: no tiling found")

// DefaultMaxAttempts is used when the request does not name a cap.
const DefaultMaxAttempts = 50

// Orchestrator drives solver attempts. Attempts share one ongoing
// random stream, so a seeded run is reproducible end to end while
// successive attempts still explore different orderings.
type Orchestrator struct {
	Solver      ports.Solver
	MaxAttempts int
}

// New wires an orchestrator around the given solver.
func New(s ports.Solver, maxAttempts int) *Orchestrator {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Orchestrator{Solver: s, MaxAttempts: maxAttempts}
}

// Generate parses the shape once, builds the random source (seeded when
// the request carries a seed, ambient otherwise), and runs up to the
// attempt cap of solver attempts, each from a fresh empty state.
// Returns the first tiling with its 1-based attempt number, or
// ErrNoTiling with Stats.Attempts equal to the cap.
func (g *Orchestrator) Generate(ctx context.Context, req domain.TilingRequest) (*domain.Tiling, ports.Stats, error) {
	start := time.Now()
	sh := shape.Parse(req.Shape)

	var src rng.Source
	if req.Seed != nil {
		src = rng.NewSeeded(*req.Seed)
	} else {
		src = rng.NewAmbient()
	}

	maxAttempts := g.MaxAttempts
	if req.MaxAttempts > 0 {
		maxAttempts = req.MaxAttempts
	}

	st := ports.Stats{}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			st.Duration = time.Since(start)
			return nil, st, err
		}
		snakes, iters, ok := g.Solver.Solve(ctx, sh, req.MinLen, req.MaxLen, src)
		st.Iterations += iters
		st.Attempts = attempt
		if ok {
			st.Duration = time.Since(start)
			return normalize(sh, snakes, attempt), st, nil
		}
	}
	st.Attempts = maxAttempts
	st.Duration = time.Since(start)
	return nil, st, ErrNoTiling
}

// normalize turns raw solver output into the wire shape: sequential
// labels, path-order positions, the derived direction, and the
// looking-at cell (absent for single-cell snakes).
func normalize(sh *domain.Shape, snakes []domain.Snake, attempt int) *domain.Tiling {
	t := &domain.Tiling{
		Width:    sh.Width,
		Height:   sh.Height,
		Snakes:   make([]domain.SnakeResult, 0, len(snakes)),
		Attempts: attempt,
	}
	for i, sn := range snakes {
		dir := domain.DirectionOf(sn)
		res := domain.SnakeResult{
			Label:     i + 1,
			Direction: dir,
			Positions: sn,
		}
		if look, ok := domain.LookingAt(sn.Head(), dir); ok {
			res.LookingAt = &look
		}
		t.Snakes = append(t.Snakes, res)
	}
	return t
}
