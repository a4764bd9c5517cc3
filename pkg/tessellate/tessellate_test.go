package tessellate

import (
	"math"
	"testing"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/0x0FACED/go-bisector/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const epsilon = 1e-9

func TestBuildNeighborhoods(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}}
	triangles := []int{0, 1, 2, 1, 3, 2}

	ns, err := BuildNeighborhoods(points, triangles)
	require.NoError(t, err)
	require.Len(t, ns, 4)

	assert.Equal(t, geom.Point{X: 0, Y: 0}, ns[0].Site)
	assert.Equal(t, []geom.Point{{X: 10, Y: 0}, {X: 0, Y: 10}}, ns[0].Neighbors)
	assert.Equal(t, []geom.Point{{X: 0, Y: 10}, {X: 0, Y: 0}, {X: 10, Y: 10}}, ns[1].Neighbors)
	assert.ElementsMatch(t, []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}, ns[2].Neighbors)
	assert.ElementsMatch(t, []geom.Point{{X: 10, Y: 0}, {X: 0, Y: 10}}, ns[3].Neighbors)
}

func TestBuildNeighborhoodsEmpty(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}

	ns, err := BuildNeighborhoods(points, nil)
	require.NoError(t, err)
	require.Len(t, ns, 2)
	for _, n := range ns {
		assert.Empty(t, n.Neighbors)
	}
}

func TestBuildNeighborhoodsDuplicates(t *testing.T) {
	// points 0 and 3 share coordinates
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 0}}
	triangles := []int{0, 1, 2, 3, 1, 2, 0, 3, 1}

	ns, err := BuildNeighborhoods(points, triangles)
	require.NoError(t, err)

	for i, n := range ns {
		assert.NotContains(t, n.Neighbors, n.Site, "point %d", i)
	}
	// (0,0) is listed once even though two indices map to it
	assert.Equal(t, []geom.Point{{X: 0, Y: 10}, {X: 0, Y: 0}}, ns[1].Neighbors)
}

func TestBuildNeighborhoodsInvalid(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}

	_, err := BuildNeighborhoods(points, []int{0, 1})
	assert.Equal(t, ErrInvalidTriangulation, errors.Cause(err))

	_, err = BuildNeighborhoods(points, []int{0, 1, 3})
	assert.ErrorIs(t, err, ErrInvalidTriangulation)

	_, err = BuildNeighborhoods(points, []int{0, -1, 2})
	assert.ErrorIs(t, err, ErrInvalidTriangulation)
}

func TestBisector(t *testing.T) {
	l := Bisector(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0})
	assert.Equal(t, geom.Point{X: 5, Y: 0}, l.Anchor)
	assert.Equal(t, geom.ThreeHalfPi, l.Angle)

	l = Bisector(geom.Point{X: 0, Y: 0}, geom.Point{X: 0, Y: 10})
	assert.Equal(t, geom.Point{X: 0, Y: 5}, l.Anchor)
	assert.Equal(t, 0.0, l.Angle)
}

func TestBuildCellDegenerate(t *testing.T) {
	site := geom.Point{X: 1, Y: 1}

	cell, err := BuildCell(Neighborhood{Site: site})
	require.NoError(t, err)
	assert.True(t, cell.Empty())
	assert.Equal(t, site, cell.Site)

	cell, err = BuildCell(Neighborhood{Site: site, Neighbors: []geom.Point{{X: 5, Y: 5}}})
	require.NoError(t, err)
	assert.True(t, cell.Empty())
	assert.False(t, cell.IsBounded())
}

func TestBuildCellThreeNeighbors(t *testing.T) {
	n := Neighborhood{
		Site:      geom.Point{X: 0, Y: 0},
		Neighbors: []geom.Point{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}},
	}

	lines := BisectorLines(n)
	require.Len(t, lines, 3)
	assert.Equal(t, []float64{0, math.Pi / 2, 3 * math.Pi / 2}, []float64{lines[0].Angle, lines[1].Angle, lines[2].Angle})

	cell, err := BuildCell(n)
	require.NoError(t, err)
	require.Len(t, cell.Corners, 3)

	// bisectors of (0,10) and (-10,0) meet at (-5,5)
	c := cell.Corners[0]
	require.Equal(t, CornerPoint, c.Kind)
	assert.InDelta(t, -5, c.Point.X, epsilon)
	assert.InDelta(t, 5, c.Point.Y, epsilon)

	// exactly π between the bisectors of (-10,0) and (10,0)
	c = cell.Corners[1]
	require.Equal(t, OpenWedge, c.Kind)
	assert.Equal(t, geom.Line{Anchor: geom.Point{X: -5, Y: 0}, Angle: math.Pi / 2}, c.LineA)
	assert.Equal(t, geom.Line{Anchor: geom.Point{X: 5, Y: 0}, Angle: 3 * math.Pi / 2}, c.LineB)

	c = cell.Corners[2]
	require.Equal(t, CornerPoint, c.Kind)
	assert.InDelta(t, 5, c.Point.X, epsilon)
	assert.InDelta(t, 5, c.Point.Y, epsilon)

	assert.False(t, cell.IsBounded())
}

func TestBuildCellSlab(t *testing.T) {
	n := Neighborhood{
		Site:      geom.Point{X: 0, Y: 0},
		Neighbors: []geom.Point{{X: 10, Y: 0}, {X: -10, Y: 0}},
	}

	cell, err := BuildCell(n)
	require.NoError(t, err)
	require.Len(t, cell.Corners, 2)
	for _, c := range cell.Corners {
		assert.True(t, c.IsOpen())
	}
}

func TestBuildCellBounded(t *testing.T) {
	// center of a 3x3 grid: the cell is the square [-5,5]^2
	n := Neighborhood{
		Site:      geom.Point{X: 0, Y: 0},
		Neighbors: []geom.Point{{X: 10, Y: 0}, {X: 0, Y: 10}, {X: -10, Y: 0}, {X: 0, Y: -10}},
	}

	cell, err := BuildCell(n)
	require.NoError(t, err)
	require.True(t, cell.IsBounded())
	require.Len(t, cell.Corners, 4)

	expected := []geom.Point{{X: -5, Y: 5}, {X: -5, Y: -5}, {X: 5, Y: -5}, {X: 5, Y: 5}}
	for i, c := range cell.Corners {
		assert.InDelta(t, expected[i].X, c.Point.X, epsilon, "corner %d", i)
		assert.InDelta(t, expected[i].Y, c.Point.Y, epsilon, "corner %d", i)
	}
}

func TestBuildCellParallel(t *testing.T) {
	// two neighbors in the same direction give equal bisector angles
	n := Neighborhood{
		Site:      geom.Point{X: 0, Y: 0},
		Neighbors: []geom.Point{{X: 10, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10}},
	}

	cell, err := BuildCell(n)
	assert.ErrorIs(t, err, geom.ErrParallelLines)
	assert.True(t, cell.Empty())
}

func TestCornerCountMatchesNeighbors(t *testing.T) {
	neighbors := []geom.Point{{X: 10, Y: 1}, {X: 3, Y: 9}, {X: -7, Y: 4}, {X: -6, Y: -8}, {X: 2, Y: -11}, {X: 12, Y: -3}}

	for k := 2; k <= len(neighbors); k++ {
		n := Neighborhood{Site: geom.Point{X: 0, Y: 0}, Neighbors: neighbors[:k]}
		cell, err := BuildCell(n)
		require.NoError(t, err)
		assert.Len(t, cell.Corners, k)
	}
}

func TestCompute(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 5, Y: 10}, {X: 7, Y: 3}}
	// fan around point 4, plus a degenerate-free outer ring
	triangles := []int{0, 1, 4, 1, 3, 4, 3, 0, 4, 1, 2, 3}

	res, err := Compute(points, triangles, logger.Nop())
	require.NoError(t, err)
	require.Len(t, res.Neighborhoods, len(points))
	require.Len(t, res.Cells, len(points))
	assert.Empty(t, res.Failed)

	for i, cell := range res.Cells {
		assert.Equal(t, points[i], cell.Site)
		assert.Len(t, cell.Corners, len(res.Neighborhoods[i].Neighbors))
	}
	assert.True(t, res.Cells[4].IsBounded())
}

func TestComputeKeepsGoingOnFailure(t *testing.T) {
	// point 1 and 2 lie in the same direction from point 0
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 0}, {X: 0, Y: 10}}
	triangles := []int{0, 1, 3, 0, 2, 3}

	res, err := Compute(points, triangles, logger.Nop())
	require.NoError(t, err)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, 0, res.Failed[0].Index)
	assert.ErrorIs(t, res.Failed[0].Err, geom.ErrParallelLines)

	assert.True(t, res.Cells[0].Empty())
	assert.Len(t, res.Cells[3].Corners, 3)
}

func TestComputeInvalid(t *testing.T) {
	_, err := Compute([]geom.Point{{X: 0, Y: 0}}, []int{0, 0, 1}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidTriangulation)
}
