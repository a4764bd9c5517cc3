package render

import (
	"image"
	"image/color"
	"io"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const clipMargin = 8

// Canvas is a raster Surface backed by a gg context.
type Canvas struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float64]font.Face

	Background color.Color
	Ink        color.Color
}

func NewCanvas(width, height int) (*Canvas, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, errors.Wrap(err, "parse go regular font")
	}

	return &Canvas{
		dc:         gg.NewContext(width, height),
		font:       f,
		faces:      make(map[float64]font.Face),
		Background: colornames.White,
		Ink:        colornames.Black,
	}, nil
}

func (c *Canvas) Size() (int, int) {
	return c.dc.Width(), c.dc.Height()
}

// Resize swaps in a fresh context; the old picture is dropped.
func (c *Canvas) Resize(width, height int) {
	if width == c.dc.Width() && height == c.dc.Height() {
		return
	}
	c.dc = gg.NewContext(width, height)
}

func (c *Canvas) Clear() {
	c.dc.SetColor(c.Background)
	c.dc.Clear()
}

// DrawPolygon strokes a closed outline. Open cells reach InfinityMult px
// away, which gg cannot raster, so the outline is first clipped to the
// canvas grown by clipMargin on every side.
func (c *Canvas) DrawPolygon(points []geom.Point, lineWidth float64) {
	if len(points) < 2 {
		return
	}

	margin := clipMargin + lineWidth
	lo := geom.Point{X: -margin, Y: -margin}
	hi := geom.Point{X: float64(c.dc.Width()) + margin, Y: float64(c.dc.Height()) + margin}
	if !inView(points, lo, hi) {
		points = clipPolygon(points, lo, hi)
		if len(points) < 2 {
			return
		}
	}

	c.dc.NewSubPath()
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()

	c.stroke(lineWidth)
}

func (c *Canvas) DrawLine(p1, p2 geom.Point, lineWidth float64) {
	c.dc.DrawLine(p1.X, p1.Y, p2.X, p2.Y)
	c.stroke(lineWidth)
}

func (c *Canvas) DrawPoint(p geom.Point, radius float64) {
	c.dc.DrawCircle(p.X, p.Y, radius)
	c.dc.SetColor(c.Ink)
	c.dc.Fill()
}

func (c *Canvas) DrawText(p geom.Point, text string, spec FontSpec) {
	c.dc.SetFontFace(c.face(spec.Size))
	c.dc.SetColor(c.Ink)
	c.dc.DrawString(text, p.X, p.Y)
}

func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *Canvas) stroke(lineWidth float64) {
	c.dc.SetColor(c.Ink)
	c.dc.SetLineWidth(lineWidth)
	c.dc.Stroke()
}

func (c *Canvas) face(size float64) font.Face {
	if size <= 0 {
		size = LabelFontSize
	}
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := truetype.NewFace(c.font, &truetype.Options{Size: size})
	c.faces[size] = f
	return f
}
