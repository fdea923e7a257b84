package domain

import "strings"

// String renders the tiling as a labeled text grid: each snake's tiles
// carry its label letter (wrapping after Z), empty cells a dot. Used by
// the CLI and by test failure output.
func (t *Tiling) String() string {
	if t.Width <= 0 || t.Height <= 0 {
		return ""
	}
	grid := make([][]byte, t.Height)
	for y := range grid {
		grid[y] = []byte(strings.Repeat(".", t.Width))
	}
	for _, s := range t.Snakes {
		ch := labelChar(s.Label)
		for _, p := range s.Positions {
			if p.Y >= 0 && p.Y < t.Height && p.X >= 0 && p.X < t.Width {
				grid[p.Y][p.X] = ch
			}
		}
	}
	rows := make([]string, t.Height)
	for y := range grid {
		rows[y] = string(grid[y])
	}
	return strings.Join(rows, "\n")
}

func labelChar(label int) byte {
	return byte('A' + (label-1)%26)
}
