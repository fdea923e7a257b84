package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/snaketile/internal/domain"
)

func TestParseBasic(t *testing.T) {
	sh := Parse("xx\n.x")
	require.Equal(t, 2, sh.Width)
	require.Equal(t, 2, sh.Height)
	require.Equal(t, 3, sh.Size())
	assert.True(t, sh.Contains(domain.Position{X: 0, Y: 0}))
	assert.True(t, sh.Contains(domain.Position{X: 1, Y: 0}))
	assert.True(t, sh.Contains(domain.Position{X: 1, Y: 1}))
	assert.False(t, sh.Contains(domain.Position{X: 0, Y: 1}))
}

func TestParseRaggedRowsPadRight(t *testing.T) {
	// Short rows behave as if padded with blanks to the longest row.
	sh := Parse("x\nxxxx\nx")
	assert.Equal(t, 4, sh.Width)
	assert.Equal(t, 3, sh.Height)
	assert.Equal(t, 6, sh.Size())
	assert.False(t, sh.Contains(domain.Position{X: 3, Y: 0}))
	assert.True(t, sh.Contains(domain.Position{X: 3, Y: 1}))
}

func TestParseMarksAndBlanks(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		tiles int
	}{
		{"UppercaseMark", "XxX", 3},
		{"OtherCharsIgnored", "a.b x#", 1},
		{"Empty", "", 0},
		{"OnlyBlanks", "  \n  ", 0},
		{"WindowsLineBreaks", "x\r\nx", 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.tiles, Parse(tc.text).Size())
		})
	}
}

func TestParseTileCoordinates(t *testing.T) {
	sh := Parse("..x\nx..")
	require.Equal(t, []domain.Position{{X: 2, Y: 0}, {X: 0, Y: 1}}, sh.Tiles())
}
