// Package tessellate turns a triangulated point set into bisector cells:
// for every site, the convex and possibly unbounded region cut out by the
// perpendicular bisectors to its triangulation neighbors.
package tessellate

import (
	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/0x0FACED/go-bisector/pkg/logger"
	"go.uber.org/zap"
)

// Failure records a cell that could not be built.
type Failure struct {
	Index int
	Site  geom.Point
	Err   error
}

// Result holds one neighborhood and one cell per input point, index aligned.
type Result struct {
	Neighborhoods []Neighborhood
	Cells         []Cell
	Failed        []Failure
}

// BuildCells builds every cell. A cell that fails is logged, left empty and
// recorded, so one bad neighborhood never stops the others.
func BuildCells(neighborhoods []Neighborhood, log *logger.ZapLogger) ([]Cell, []Failure) {
	cells := make([]Cell, len(neighborhoods))
	var failed []Failure

	for i, n := range neighborhoods {
		cell, err := BuildCell(n)
		if err != nil {
			log.Warn("[t] Ячейка пропущена", zap.Int("index", i), zap.Stringer("site", n.Site), zap.Error(err))
			failed = append(failed, Failure{Index: i, Site: n.Site, Err: err})
		}
		cells[i] = cell
	}

	return cells, failed
}

// Compute runs the core pipeline for one point set and its triangulation.
func Compute(points []geom.Point, triangles []int, log *logger.ZapLogger) (Result, error) {
	log.Debug("[t] Пересчет", zap.Int("points", len(points)), zap.Int("triangles", len(triangles)/3))

	neighborhoods, err := BuildNeighborhoods(points, triangles)
	if err != nil {
		log.Error("[t] Некорректная триангуляция", zap.Error(err))
		return Result{}, err
	}

	cells, failed := BuildCells(neighborhoods, log)

	open := 0
	for _, c := range cells {
		if !c.Empty() && !c.IsBounded() {
			open++
		}
	}
	log.Info("[t] Ячейки построены", zap.Int("cells", len(cells)), zap.Int("open", open), zap.Int("failed", len(failed)))

	return Result{
		Neighborhoods: neighborhoods,
		Cells:         cells,
		Failed:        failed,
	}, nil
}
