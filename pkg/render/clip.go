package render

import "github.com/0x0FACED/go-bisector/pkg/geom"

// clipPolygon cuts a closed outline down to the rectangle [lo, hi]
// (Sutherland-Hodgman). Edges running along the rectangle replace the parts
// that were outside, so the window should sit outside the visible area.
func clipPolygon(points []geom.Point, lo, hi geom.Point) []geom.Point {
	edges := []struct {
		inside func(p geom.Point) bool
		cross  func(a, b geom.Point) geom.Point
	}{
		{
			inside: func(p geom.Point) bool { return p.X >= lo.X },
			cross:  func(a, b geom.Point) geom.Point { return crossX(a, b, lo.X) },
		},
		{
			inside: func(p geom.Point) bool { return p.X <= hi.X },
			cross:  func(a, b geom.Point) geom.Point { return crossX(a, b, hi.X) },
		},
		{
			inside: func(p geom.Point) bool { return p.Y >= lo.Y },
			cross:  func(a, b geom.Point) geom.Point { return crossY(a, b, lo.Y) },
		},
		{
			inside: func(p geom.Point) bool { return p.Y <= hi.Y },
			cross:  func(a, b geom.Point) geom.Point { return crossY(a, b, hi.Y) },
		},
	}

	out := points
	for _, e := range edges {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]geom.Point, 0, len(in)+2)

		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur):
				if !e.inside(prev) {
					out = append(out, e.cross(prev, cur))
				}
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func crossX(a, b geom.Point, x float64) geom.Point {
	t := (x - a.X) / (b.X - a.X)
	return geom.Point{X: x, Y: a.Y + t*(b.Y-a.Y)}
}

func crossY(a, b geom.Point, y float64) geom.Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.Point{X: a.X + t*(b.X-a.X), Y: y}
}

// inView reports whether every point already lies inside [lo, hi].
func inView(points []geom.Point, lo, hi geom.Point) bool {
	for _, p := range points {
		if p.X < lo.X || p.X > hi.X || p.Y < lo.Y || p.Y > hi.Y {
			return false
		}
	}
	return true
}
