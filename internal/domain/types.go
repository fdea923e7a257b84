package domain

// Position identifies a grid cell. X grows rightward, Y grows downward.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snake is an ordered, non-repeating sequence of 4-connected shape
// tiles. Element 0 is the head.
type Snake []Position

// Head returns the first position of the snake.
func (s Snake) Head() Position { return s[0] }

// TilingRequest carries the caller's puzzle parameters. Seed is nil
// when the caller wants a non-deterministic run; MaxAttempts of zero
// means "use the configured default".
type TilingRequest struct {
	Shape       string `json:"shape"`
	MinLen      int    `json:"minLen"`
	MaxLen      int    `json:"maxLen"`
	Seed        *int64 `json:"seed,omitempty"`
	MaxAttempts int    `json:"maxAttempts,omitempty"`
}

// SnakeResult is one placed snake of a finished tiling, normalized for
// output: a 1-based label, the head's outward direction, and the cell
// the head looks at (absent for single-cell snakes).
type SnakeResult struct {
	Label     int        `json:"label"`
	Direction Direction  `json:"direction"`
	LookingAt *Position  `json:"lookingAt,omitempty"`
	Positions []Position `json:"positions"`
}

// Tiling is an exact partition of a shape's tiles into snakes: every
// tile belongs to exactly one snake. Attempts is the 1-based number of
// the solver attempt that produced it.
type Tiling struct {
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Snakes   []SnakeResult `json:"snakes"`
	Attempts int           `json:"attempts"`
}

// Puzzle is a persisted solved tiling with metadata.
type Puzzle struct {
	ID        string        `json:"id,omitempty"`
	Name      string        `json:"name,omitempty"`
	Request   TilingRequest `json:"request"`
	Tiling    Tiling        `json:"tiling"`
	CreatedAt int64         `json:"createdAt,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
