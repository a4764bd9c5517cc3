package triangulate

import (
	"testing"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateSquare(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}

	triangles := Triangulate(points)
	require.Len(t, triangles, 6)

	used := map[int]bool{}
	for _, id := range triangles {
		assert.GreaterOrEqual(t, id, 0)
		assert.Less(t, id, len(points))
		used[id] = true
	}
	assert.Len(t, used, 4)
}

func TestTriangulateInteriorPoint(t *testing.T) {
	points := []geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 100}, {X: 50, Y: 40}}

	triangles := Triangulate(points)
	require.Len(t, triangles, 9)

	count := 0
	for _, id := range triangles {
		if id == 3 {
			count++
		}
	}
	assert.Equal(t, 3, count)
}

func TestTriangulateTooFew(t *testing.T) {
	assert.Empty(t, Triangulate(nil))
	assert.Empty(t, Triangulate([]geom.Point{{X: 1, Y: 1}}))
	assert.Empty(t, Triangulate([]geom.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}))
}

func TestTriangulateCollinear(t *testing.T) {
	assert.Empty(t, Triangulate([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}}))
}
