package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guardwalk/grid"
)

// TestParseLines_Example checks size, start and obstruction count of the
// canonical map.
func TestParseLines_Example(t *testing.T) {
	m, err := grid.ParseLines(exampleLines)
	require.NoError(t, err)

	assert.Equal(t, 10, m.Grid.Width())
	assert.Equal(t, 10, m.Grid.Height())
	assert.Equal(t, grid.Position{Point: grid.Point{X: 4, Y: 6}, Dir: grid.Up}, m.Start)
	assert.Len(t, m.Grid.Obstructions(), 8)
}

// TestParseLines_Errors covers every malformed-input sentinel.
func TestParseLines_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoRows", nil, grid.ErrEmptyGrid},
		{"OnlyBlank", []string{""}, grid.ErrEmptyGrid},
		{"AllBlank", []string{"", "\r", ""}, grid.ErrEmptyGrid},
		{"EmptyFirstRow", []string{"", "...^"}, grid.ErrNonRectangular},
		{"Ragged", []string{"..^", ".."}, grid.ErrNonRectangular},
		{"NoStart", []string{"..#", "..."}, grid.ErrNoStart},
		{"TwoStarts", []string{"^..", "..^"}, grid.ErrMultipleStarts},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseLines(tc.lines)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_Reader reads CRLF input with a trailing newline; unknown symbols
// are floor.
func TestParse_Reader(t *testing.T) {
	m, err := grid.Parse(strings.NewReader("#.?\r\n.^x\r\n"))
	require.NoError(t, err)

	assert.Equal(t, 3, m.Grid.Width())
	assert.Equal(t, 2, m.Grid.Height())
	assert.Equal(t, grid.Point{X: 1, Y: 1}, m.Start.Point)
	assert.Equal(t, []grid.Point{{X: 0, Y: 0}}, m.Grid.Obstructions())

	_, err = grid.Parse(strings.NewReader("\n...^\n"))
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
}

// TestNewMap_StartObstructed rejects a guard standing on a wall.
func TestNewMap_StartObstructed(t *testing.T) {
	g, err := grid.New(3, 3, []grid.Point{{X: 1, Y: 1}})
	require.NoError(t, err)

	_, err = grid.NewMap(g, grid.Position{Point: grid.Point{X: 1, Y: 1}, Dir: grid.Up})
	assert.ErrorIs(t, err, grid.ErrStartObstructed)

	_, err = grid.NewMap(g, grid.Position{Point: grid.Point{X: 3, Y: 0}, Dir: grid.Up})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	m, err := grid.NewMap(g, grid.Position{Point: grid.Point{X: 0, Y: 0}, Dir: grid.Left})
	require.NoError(t, err)
	assert.Equal(t, grid.Left, m.Start.Dir)
}
