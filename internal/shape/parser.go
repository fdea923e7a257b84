// Package shape parses the text-grid shape format into domain.Shape.
package shape

import (
	"strings"

	"svw.info/snaketile/internal/domain"
)

// Parse scans a block of text into a shape. Rows are separated by line
// breaks; a cell holding 'x' or 'X' becomes a tile at (column, row),
// anything else is empty. Width is the longest raw row (shorter rows
// behave as if right-padded with blanks, which add no tiles), height is
// the row count. Pure function; emptiness is the validator's concern.
func Parse(text string) *domain.Shape {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	rows := strings.Split(text, "\n")

	width := 0
	var tiles []domain.Position
	for y, row := range rows {
		if len(row) > width {
			width = len(row)
		}
		for x := 0; x < len(row); x++ {
			if row[x] == 'x' || row[x] == 'X' {
				tiles = append(tiles, domain.Position{X: x, Y: y})
			}
		}
	}
	return domain.NewShape(tiles, width, len(rows))
}
