package render

import (
	"strconv"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/0x0FACED/go-bisector/pkg/tessellate"
)

const (
	PointRadius       = 6
	TriangleLineWidth = 1
	DiagonalLength    = 20
	DiagonalLineWidth = 3
	PolygonLineWidth  = 2
	LabelFontSize     = 12

	// InfinityMult is how far open cell edges are pushed out. It only has to
	// leave any realistic viewport; rays are not clipped to the surface.
	InfinityMult = 10000000
)

var labelOffset = geom.Point{X: PointRadius + 2, Y: -PointRadius - 2}

// Frame is everything needed to draw one picture.
type Frame struct {
	Points []geom.Point
	Result tessellate.Result
	Mode   Mode
}

// Draw clears s and draws the frame's layers back to front:
// polygons, triangles, lines, points, labels.
func (f Frame) Draw(s Surface) {
	s.Clear()

	if f.Mode.Has(LayerPolygons) {
		for _, cell := range f.Result.Cells {
			if cell.Empty() {
				continue
			}
			s.DrawPolygon(ResolveCell(cell), PolygonLineWidth)
		}
	}

	if f.Mode.Has(LayerTriangles) {
		for _, n := range f.Result.Neighborhoods {
			drawConnections(s, n)
		}
	}

	if f.Mode.Has(LayerLines) {
		for _, n := range f.Result.Neighborhoods {
			drawDiagonals(s, n)
		}
	}

	if f.Mode.Has(LayerPoints) {
		for _, p := range f.Points {
			s.DrawPoint(p, PointRadius)
		}
	}

	if f.Mode.Has(LayerLabels) {
		for i, p := range f.Points {
			s.DrawText(geom.Add(p, labelOffset), strconv.Itoa(i), FontSpec{Size: LabelFontSize})
		}
	}
}

// ResolveCell turns a cell into a drawable outline. Each open wedge becomes
// two far points: one back along LineA, one forward along LineB.
func ResolveCell(cell tessellate.Cell) []geom.Point {
	points := make([]geom.Point, 0, len(cell.Corners)+2)

	for _, c := range cell.Corners {
		if !c.IsOpen() {
			points = append(points, c.Point)
			continue
		}
		points = append(points,
			c.LineA.Along(-InfinityMult),
			c.LineB.Along(InfinityMult),
		)
	}

	return points
}

// half of every triangle edge, drawn from each end
func drawConnections(s Surface, n tessellate.Neighborhood) {
	for _, nb := range n.Neighbors {
		s.DrawLine(n.Site, geom.Midpoint(n.Site, nb), TriangleLineWidth)
	}
}

// bisector stubs starting at each edge midpoint
func drawDiagonals(s Surface, n tessellate.Neighborhood) {
	for _, nb := range n.Neighbors {
		bisector := tessellate.Bisector(n.Site, nb)
		s.DrawLine(bisector.Anchor, bisector.Along(DiagonalLength), DiagonalLineWidth)
	}
}
