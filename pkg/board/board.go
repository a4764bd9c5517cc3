// Package board holds the demo's current point set and the geometry cached
// for it. Point changes rerun the whole pipeline; mode and size changes only
// affect the next Draw.
package board

import (
	"sync"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/0x0FACED/go-bisector/pkg/logger"
	"github.com/0x0FACED/go-bisector/pkg/render"
	"github.com/0x0FACED/go-bisector/pkg/tessellate"
	"github.com/0x0FACED/go-bisector/pkg/triangulate"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var ErrNonFinitePoint = errors.New("point coordinates must be finite")

const (
	MinSize = 50
	MaxSize = 5000
)

// Triangulator returns index triples for points.
type Triangulator func(points []geom.Point) []int

type Option func(*Board)

func WithTriangulator(t Triangulator) Option {
	return func(b *Board) {
		b.triangulate = t
	}
}

func WithMode(m render.Mode) Option {
	return func(b *Board) {
		b.mode = m
	}
}

func WithSize(width, height int) Option {
	return func(b *Board) {
		b.width, b.height = clampSize(width), clampSize(height)
	}
}

type Board struct {
	mu  sync.Mutex
	log *logger.ZapLogger

	triangulate Triangulator

	points []geom.Point
	result tessellate.Result

	mode          render.Mode
	width, height int

	recomputes int
}

func New(log *logger.ZapLogger, options ...Option) *Board {
	b := &Board{
		log:         log,
		triangulate: triangulate.Triangulate,
		mode:        render.Modes[0],
		width:       1000,
		height:      600,
	}
	for _, o := range options {
		o(b)
	}
	return b
}

// AddPoint appends p and recomputes. On error the previous state is kept.
func (b *Board) AddPoint(p geom.Point) error {
	if !p.IsFinite() {
		return errors.Wrapf(ErrNonFinitePoint, "add %v", p)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	points := make([]geom.Point, len(b.points), len(b.points)+1)
	copy(points, b.points)
	points = append(points, p)

	b.log.Info("[b] Новая точка", zap.Stringer("point", p), zap.Int("total", len(points)))
	return b.recompute(points)
}

// Clear drops every point and resets the mode to the first selector entry.
func (b *Board) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.log.Info("[b] Сброс")
	b.mode = render.Modes[0]
	b.points = nil
	b.result = tessellate.Result{}
}

func (b *Board) recompute(points []geom.Point) error {
	triangles := b.triangulate(points)

	result, err := tessellate.Compute(points, triangles, b.log)
	if err != nil {
		return err
	}

	b.points = points
	b.result = result
	b.recomputes++
	return nil
}

func (b *Board) SetMode(m render.Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.log.Debug("[b] Режим", zap.Stringer("mode", m))
	b.mode = m
}

// NextMode steps forward through render.Modes, stopping at the last entry.
func (b *Board) NextMode() render.Mode {
	return b.stepMode(1)
}

// PrevMode steps back through render.Modes, stopping at the first entry.
func (b *Board) PrevMode() render.Mode {
	return b.stepMode(-1)
}

func (b *Board) stepMode(delta int) render.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := render.ModeIndex(b.mode) + delta
	if i < 0 {
		i = 0
	}
	if i >= len(render.Modes) {
		i = len(render.Modes) - 1
	}
	b.mode = render.Modes[i]
	return b.mode
}

func (b *Board) Mode() render.Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// Resize changes the viewport. Cached geometry is reused.
func (b *Board) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.width, b.height = clampSize(width), clampSize(height)
	b.log.Debug("[b] Размер", zap.Int("width", b.width), zap.Int("height", b.height))
}

func (b *Board) Size() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width, b.height
}

func (b *Board) Points() []geom.Point {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]geom.Point(nil), b.points...)
}

func (b *Board) Result() tessellate.Result {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result
}

// Recomputes counts pipeline runs since the board was created.
func (b *Board) Recomputes() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recomputes
}

// Draw sizes s to the viewport when it can and renders the cached frame.
func (b *Board) Draw(s render.Surface) {
	b.mu.Lock()
	frame := render.Frame{
		Points: b.points,
		Result: b.result,
		Mode:   b.mode,
	}
	width, height := b.width, b.height
	b.mu.Unlock()

	if r, ok := s.(render.Resizer); ok {
		r.Resize(width, height)
	}
	frame.Draw(s)
}

func clampSize(v int) int {
	if v < MinSize {
		return MinSize
	}
	if v > MaxSize {
		return MaxSize
	}
	return v
}
