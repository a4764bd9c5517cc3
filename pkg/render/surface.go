package render

import "github.com/0x0FACED/go-bisector/pkg/geom"

// FontSpec selects the face used by DrawText.
type FontSpec struct {
	Size float64
}

// Surface is the drawing primitive set the frame renderer needs.
// Implementations keep no state between frames except their size.
type Surface interface {
	Size() (width, height int)
	Clear()
	DrawPolygon(points []geom.Point, lineWidth float64)
	DrawLine(p1, p2 geom.Point, lineWidth float64)
	DrawPoint(p geom.Point, radius float64)
	DrawText(p geom.Point, text string, font FontSpec)
}

// Resizer is implemented by surfaces whose size can follow the viewport.
type Resizer interface {
	Resize(width, height int)
}
