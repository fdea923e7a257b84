package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionOf(t *testing.T) {
	cases := []struct {
		name  string
		snake Snake
		want  Direction
	}{
		{"SingleCell", Snake{{X: 1, Y: 1}}, DirNone},
		{"BodyRightFacesLeft", Snake{{X: 0, Y: 0}, {X: 1, Y: 0}}, DirLeft},
		{"BodyLeftFacesRight", Snake{{X: 1, Y: 0}, {X: 0, Y: 0}}, DirRight},
		{"BodyBelowFacesUp", Snake{{X: 0, Y: 0}, {X: 0, Y: 1}}, DirUp},
		{"BodyAboveFacesDown", Snake{{X: 0, Y: 1}, {X: 0, Y: 0}}, DirDown},
		{"OnlyFirstSegmentCounts", Snake{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, DirLeft},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DirectionOf(tc.snake))
		})
	}
}

func TestLookingAt(t *testing.T) {
	head := Position{X: 5, Y: 5}
	cases := []struct {
		dir  Direction
		want Position
	}{
		{DirUp, Position{X: 5, Y: 4}},
		{DirDown, Position{X: 5, Y: 6}},
		{DirLeft, Position{X: 4, Y: 5}},
		{DirRight, Position{X: 6, Y: 5}},
	}
	for _, tc := range cases {
		got, ok := LookingAt(head, tc.dir)
		require.True(t, ok)
		assert.Equal(t, tc.want, got, "dir %s", tc.dir)
	}
	_, ok := LookingAt(head, DirNone)
	assert.False(t, ok)
}

func TestFaceToFace(t *testing.T) {
	cases := []struct {
		name   string
		a      Position
		dirA   Direction
		b      Position
		dirB   Direction
		facing bool
	}{
		{"NoneNeverFaces", Position{0, 0}, DirNone, Position{3, 0}, DirLeft, false},
		{"RowConfrontation", Position{0, 0}, DirLeft, Position{3, 0}, DirRight, true},
		{"RowConfrontationSwapped", Position{3, 0}, DirRight, Position{0, 0}, DirLeft, true},
		{"RowMirrorTolerated", Position{3, 0}, DirLeft, Position{0, 0}, DirRight, false},
		{"RowSameDirection", Position{0, 0}, DirLeft, Position{3, 0}, DirLeft, false},
		{"DifferentRows", Position{0, 0}, DirLeft, Position{3, 1}, DirRight, false},
		{"ColumnConfrontation", Position{0, 0}, DirUp, Position{0, 3}, DirDown, true},
		{"ColumnConfrontationSwapped", Position{0, 3}, DirDown, Position{0, 0}, DirUp, true},
		{"ColumnMirrorTolerated", Position{0, 3}, DirUp, Position{0, 0}, DirDown, false},
		{"ColumnSameDirection", Position{0, 0}, DirDown, Position{0, 3}, DirDown, false},
		{"PerpendicularIgnored", Position{0, 0}, DirUp, Position{0, 3}, DirLeft, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.facing, FaceToFace(tc.a, tc.dirA, tc.b, tc.dirB))
		})
	}
}

func TestDirectionJSONRoundTrip(t *testing.T) {
	for _, d := range []Direction{DirNone, DirUp, DirDown, DirLeft, DirRight} {
		b, err := json.Marshal(d)
		require.NoError(t, err)
		var got Direction
		require.NoError(t, json.Unmarshal(b, &got))
		assert.Equal(t, d, got)
	}
	var d Direction
	assert.Error(t, json.Unmarshal([]byte(`"sideways"`), &d))
}

func TestTilingString(t *testing.T) {
	tl := &Tiling{
		Width:  2,
		Height: 2,
		Snakes: []SnakeResult{
			{Label: 1, Positions: []Position{{X: 0, Y: 0}, {X: 1, Y: 0}}},
			{Label: 2, Positions: []Position{{X: 1, Y: 1}}},
		},
	}
	assert.Equal(t, "AA\n.B", tl.String())
}
