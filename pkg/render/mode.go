package render

import (
	"strings"

	"github.com/pkg/errors"
)

// Mode is a set of layers to draw.
type Mode uint8

const (
	LayerPoints Mode = 1 << iota
	LayerTriangles
	LayerLines
	LayerPolygons
	LayerLabels
)

var layerNames = []struct {
	layer Mode
	name  string
}{
	{LayerPoints, "points"},
	{LayerTriangles, "triangles"},
	{LayerLines, "lines"},
	{LayerPolygons, "polygons"},
	{LayerLabels, "labels"},
}

// Modes is the selector list, in the order prev/next step through it.
var Modes = []Mode{
	LayerPoints,
	LayerPoints | LayerTriangles,
	LayerPoints | LayerTriangles | LayerLines,
	LayerPoints | LayerLines,
	LayerPoints | LayerLines | LayerPolygons,
	LayerPoints | LayerPolygons,
	LayerPolygons,
}

var ErrUnknownLayer = errors.New("unknown layer")

func (m Mode) Has(layer Mode) bool {
	return m&layer != 0
}

func (m Mode) String() string {
	var parts []string
	for _, l := range layerNames {
		if m.Has(l.layer) {
			parts = append(parts, l.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "+")
}

// ParseMode reads layer names separated by '+', ',' or spaces,
// e.g. "points+polygons".
func ParseMode(s string) (Mode, error) {
	var m Mode
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '+' || r == ',' || r == ' '
	})
	for _, f := range fields {
		f = strings.ToLower(f)
		if f == "none" {
			continue
		}
		found := false
		for _, l := range layerNames {
			if l.name == f {
				m |= l.layer
				found = true
				break
			}
		}
		if !found {
			return 0, errors.Wrapf(ErrUnknownLayer, "%q", f)
		}
	}
	return m, nil
}

// ModeIndex returns the position of m in Modes, or -1.
func ModeIndex(m Mode) int {
	for i, mode := range Modes {
		if mode == m {
			return i
		}
	}
	return -1
}
