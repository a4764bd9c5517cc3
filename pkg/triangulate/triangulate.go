// Package triangulate wraps a Delaunay triangulator behind the flat index
// triple contract the rest of the pipeline consumes.
package triangulate

import (
	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/fogleman/delaunay"
)

// Triangulate returns point indices, three per triangle. Inputs that admit
// no triangulation (fewer than three distinct points, or all collinear)
// yield no triangles.
func Triangulate(points []geom.Point) []int {
	if len(points) < 3 {
		return nil
	}

	pts := make([]delaunay.Point, len(points))
	for i, p := range points {
		pts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}

	t, err := delaunay.Triangulate(pts)
	if err != nil || t == nil {
		return nil
	}

	triangles := make([]int, len(t.Triangles))
	copy(triangles, t.Triangles)
	return triangles
}
