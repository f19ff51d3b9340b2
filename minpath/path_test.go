package minpath_test

import (
	"testing"

	"github.com/katalvlaran/minpath/minpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDirection_Names checks long names and symbols.
func TestDirection_Names(t *testing.T) {
	assert.Equal(t, "Down", minpath.Down.String())
	assert.Equal(t, "Right", minpath.Right.String())
	assert.Equal(t, 'D', minpath.Down.Symbol())
	assert.Equal(t, 'R', minpath.Right.Symbol())
	assert.Equal(t, "Direction(9)", minpath.Direction(9).String())
}

// TestPath_Formatting covers Join, JoinSymbols and String.
func TestPath_Formatting(t *testing.T) {
	p := minpath.Path{minpath.Right, minpath.Down, minpath.Down}
	assert.Equal(t, "Right -> Down -> Down", p.Join(" -> "))
	assert.Equal(t, "R -> D -> D", p.JoinSymbols(" -> "))
	assert.Equal(t, "Right, Down, Down", p.String())
	assert.Equal(t, "", minpath.Path{}.JoinSymbols(","))
}

// TestPath_Cells replays moves from the origin.
func TestPath_Cells(t *testing.T) {
	p := minpath.Path{minpath.Down, minpath.Right, minpath.Right}
	want := []minpath.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}
	assert.Equal(t, want, p.Cells())
	assert.Equal(t, []minpath.Coord{{Row: 0, Col: 0}}, minpath.Path{}.Cells())
}

// TestPath_Sum totals visited cells and rejects paths that leave the grid.
func TestPath_Sum(t *testing.T) {
	m := minpath.Matrix{{1, 2}, {3, 4}}

	got, err := minpath.Path{minpath.Right, minpath.Down}.Sum(m)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = minpath.Path{minpath.Right, minpath.Right}.Sum(m)
	assert.ErrorIs(t, err, minpath.ErrPathOutOfGrid)

	_, err = minpath.Path{}.Sum(minpath.Matrix{})
	assert.ErrorIs(t, err, minpath.ErrPathOutOfGrid)
}
