package geometry

import (
	"errors"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// quadrants is the symmetric 2x2 configuration: four cells that are exactly
// the quadrant squares of the region. The diagonal pairs meet only at the
// center point and must not come out adjacent.
func quadrants() []Point {
	return []Point{
		{-0.25, 0.25},  // upper left
		{0.25, 0.25},   // upper right
		{-0.25, -0.25}, // lower left
		{0.25, -0.25},  // lower right
	}
}

func TestTessellateQuadrants(t *testing.T) {
	tess, err := Tessellate(quadrants(), Square)
	require.NoError(t, err)
	require.Len(t, tess.Cells, 4)

	wantWalls := [][]Wall{
		{WallTop, WallLeft},
		{WallTop, WallRight},
		{WallBottom, WallLeft},
		{WallBottom, WallRight},
	}
	wantNeighbors := [][]int{
		{1, 2},
		{0, 3},
		{0, 3},
		{1, 2},
	}

	for i, cell := range tess.Cells {
		require.InDelta(t, 0.25, cell.Polygon.Area(), 1e-6, "cell %d area", i)

		gotWalls := append([]Wall(nil), cell.Walls...)
		sort.Slice(gotWalls, func(a, b int) bool { return gotWalls[a] < gotWalls[b] })
		want := append([]Wall(nil), wantWalls[i]...)
		sort.Slice(want, func(a, b int) bool { return want[a] < want[b] })
		require.Equal(t, want, gotWalls, "cell %d walls", i)

		gotNeighbors := append([]int(nil), cell.Neighbors...)
		sort.Ints(gotNeighbors)
		require.Equal(t, wantNeighbors[i], gotNeighbors,
			"cell %d should touch only the orthogonal cells, not the diagonal one", i)

		for _, p := range cell.Polygon {
			require.LessOrEqual(t, math.Abs(p.X), Radius+Epsilon)
			require.LessOrEqual(t, math.Abs(p.Y), Radius+Epsilon)
		}
	}
}

func TestTessellateRandomSquare(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	points, err := Sample(40, Square, rng)
	require.NoError(t, err)
	tess, err := Tessellate(points, Square)
	require.NoError(t, err)
	require.Len(t, tess.Cells, 40)

	var total float64
	for i, cell := range tess.Cells {
		require.GreaterOrEqual(t, len(cell.Polygon), 3, "cell %d polygon degenerate", i)
		require.True(t, cell.Polygon.Contains(cell.Site), "cell %d does not contain its site", i)
		total += cell.Polygon.Area()

		for _, p := range cell.Polygon {
			require.LessOrEqual(t, math.Abs(p.X), Radius+Epsilon, "cell %d leaks out of the square", i)
			require.LessOrEqual(t, math.Abs(p.Y), Radius+Epsilon, "cell %d leaks out of the square", i)
		}

		// adjacency must be symmetric
		for _, j := range cell.Neighbors {
			found := false
			for _, back := range tess.Cells[j].Neighbors {
				if back == i {
					found = true
					break
				}
			}
			require.True(t, found, "adjacency %d-%d not symmetric", i, j)
		}
	}
	// The cells partition the square exactly.
	require.InDelta(t, 1.0, total, 1e-6)
}

func TestTessellateRandomDisc(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	points, err := Sample(30, Disc, rng)
	require.NoError(t, err)
	tess, err := Tessellate(points, Disc)
	require.NoError(t, err)

	var total float64
	rimCells := 0
	for i, cell := range tess.Cells {
		require.GreaterOrEqual(t, len(cell.Polygon), 3, "cell %d polygon degenerate", i)
		require.LessOrEqual(t, len(cell.Walls), 1, "disc cell %d should carry at most one arc", i)
		if len(cell.Walls) == 1 {
			rimCells++
		}
		total += cell.Polygon.Area()
	}
	require.Greater(t, rimCells, 3, "a disc board needs rim cells on all four arcs")
	// Rim cells are clipped by tangent chords, so the union only
	// approximates the disc.
	require.InDelta(t, math.Pi*Radius*Radius, total, 0.05)
}

func TestTessellateTooFewPoints(t *testing.T) {
	_, err := Tessellate(quadrants()[:3], Square)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrGeneration))
}
