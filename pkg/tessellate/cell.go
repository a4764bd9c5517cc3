package tessellate

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/pkg/errors"
)

type CornerKind int

const (
	// CornerPoint is a closed corner where two bisectors meet.
	CornerPoint CornerKind = iota
	// OpenWedge marks a sector where the cell runs off to infinity
	// between LineA and LineB.
	OpenWedge
)

func (k CornerKind) String() string {
	switch k {
	case CornerPoint:
		return "corner"
	case OpenWedge:
		return "open"
	default:
		return "unknown"
	}
}

// Corner is one entry of a cell outline. Point is set for CornerPoint,
// LineA and LineB for OpenWedge.
type Corner struct {
	Kind  CornerKind
	Point geom.Point
	LineA geom.Line
	LineB geom.Line
}

func NewCornerPoint(p geom.Point) Corner {
	return Corner{Kind: CornerPoint, Point: p}
}

func NewOpenWedge(a, b geom.Line) Corner {
	return Corner{Kind: OpenWedge, LineA: a, LineB: b}
}

func (c Corner) IsOpen() bool {
	return c.Kind == OpenWedge
}

// Cell is the region around Site bounded by the bisectors to its neighbors,
// corners ordered by ascending bisector angle.
type Cell struct {
	Site    geom.Point
	Corners []Corner
}

func (c Cell) Empty() bool {
	return len(c.Corners) == 0
}

// IsBounded reports whether the cell closes on every side.
func (c Cell) IsBounded() bool {
	if c.Empty() {
		return false
	}
	for _, corner := range c.Corners {
		if corner.IsOpen() {
			return false
		}
	}
	return true
}

// Bisector returns the perpendicular bisector of site -> neighbor with its
// angle normalized to [0, 2π).
func Bisector(site, neighbor geom.Point) geom.Line {
	return geom.Line{
		Anchor: geom.Midpoint(site, neighbor),
		Angle:  geom.NormalizeAngle(geom.AngleBetween(site, neighbor) - geom.HalfPi),
	}
}

// BisectorLines returns the bisector of every neighbor, sorted by angle.
// Equal angles keep neighbor order.
func BisectorLines(n Neighborhood) []geom.Line {
	lines := make([]geom.Line, 0, len(n.Neighbors))
	for _, nb := range n.Neighbors {
		lines = append(lines, Bisector(n.Site, nb))
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Angle < lines[j].Angle
	})
	return lines
}

// BuildCell walks the angle-sorted bisectors in pairs (wrapping last to
// first). A pair less than π apart closes at its intersection; otherwise
// the cell is open between them.
func BuildCell(n Neighborhood) (Cell, error) {
	cell := Cell{Site: n.Site}
	if len(n.Neighbors) < 2 {
		return cell, nil
	}

	lines := BisectorLines(n)
	cell.Corners = make([]Corner, 0, len(lines))

	for i := range lines {
		lineA := lines[i]
		lineB := lines[(i+1)%len(lines)]

		if geom.NormalizeAngle(lineB.Angle-lineA.Angle) < math.Pi {
			p, err := lineA.Intersect(lineB)
			if err != nil {
				return Cell{Site: n.Site}, errors.Wrapf(err, "site %v, bisectors at %g and %g", n.Site, lineA.Angle, lineB.Angle)
			}
			cell.Corners = append(cell.Corners, NewCornerPoint(p))
		} else {
			cell.Corners = append(cell.Corners, NewOpenWedge(lineA, lineB))
		}
	}

	return cell, nil
}
