package tessellate

import (
	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/pkg/errors"
)

var ErrInvalidTriangulation = errors.New("invalid triangulation")

// Neighborhood is a site together with every point it shares a triangle
// edge with. Neighbors keep first-seen order and never contain the site.
type Neighborhood struct {
	Site      geom.Point
	Neighbors []geom.Point
}

func (n *Neighborhood) add(p geom.Point) {
	if p == n.Site {
		return
	}
	for _, q := range n.Neighbors {
		if q == p {
			return
		}
	}
	n.Neighbors = append(n.Neighbors, p)
}

// BuildNeighborhoods returns one neighborhood per point. triangles is a flat
// list of point indices, three per triangle.
func BuildNeighborhoods(points []geom.Point, triangles []int) ([]Neighborhood, error) {
	if len(triangles)%3 != 0 {
		return nil, errors.Wrapf(ErrInvalidTriangulation, "%d indices is not a multiple of 3", len(triangles))
	}
	for i, id := range triangles {
		if id < 0 || id >= len(points) {
			return nil, errors.Wrapf(ErrInvalidTriangulation, "index %d at position %d out of range [0, %d)", id, i, len(points))
		}
	}

	neighborhoods := make([]Neighborhood, len(points))
	for i, p := range points {
		neighborhoods[i].Site = p
	}

	for i := 0; i < len(triangles); i += 3 {
		for j := 0; j < 3; j++ {
			pointID := triangles[i+j]
			otherA := triangles[i+(j+1)%3]
			otherB := triangles[i+(j+2)%3]

			neighborhoods[pointID].add(points[otherA])
			neighborhoods[pointID].add(points[otherB])
		}
	}

	return neighborhoods, nil
}
