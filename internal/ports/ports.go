package ports

import (
	"context"
	"time"

	"svw.info/snaketile/internal/domain"
	"svw.info/snaketile/internal/rng"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Iterations int
	Attempts   int
	Duration   time.Duration
}

// Solver runs one bounded backtracking attempt over a parsed shape,
// drawing exploration order from src. It returns the placed snakes, the
// iterations consumed, and whether a full tiling was found. A negative
// outcome is ordinary control flow, not an error.
type Solver interface {
	Solve(ctx context.Context, sh *domain.Shape, minLen, maxLen int, src rng.Source) ([]domain.Snake, int, bool)
}

// Generator searches for a snake tiling of the requested shape,
// retrying the solver across attempts.
type Generator interface {
	Generate(ctx context.Context, req domain.TilingRequest) (*domain.Tiling, Stats, error)
}

// Validator rejects malformed requests before the search runs.
type Validator interface {
	Validate(req domain.TilingRequest) error
}

// Storage persists and retrieves solved puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
