package render

import (
	"fmt"
	"io"

	"github.com/0x0FACED/go-bisector/pkg/geom"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	seriesPoints   = "Точки"
	seriesLabels   = "Номера"
	seriesLines    = "Линии"
	seriesPolygons = "Ячейки"
)

type chartLine struct {
	series string
	data   []opts.LineData
	width  float64
}

// Chart is a Surface that collects draw calls into an echarts scatter with
// line overlays. Screen y grows downwards, so y is flipped on the way in.
type Chart struct {
	width  int
	height int

	points []opts.ScatterData
	labels []opts.ScatterData
	lines  []chartLine
}

func NewChart(width, height int) *Chart {
	return &Chart{width: width, height: height}
}

func (c *Chart) Size() (int, int) {
	return c.width, c.height
}

func (c *Chart) Resize(width, height int) {
	c.width = width
	c.height = height
}

func (c *Chart) Clear() {
	c.points = nil
	c.labels = nil
	c.lines = nil
}

func (c *Chart) DrawPolygon(points []geom.Point, lineWidth float64) {
	if len(points) < 2 {
		return
	}
	data := make([]opts.LineData, 0, len(points)+1)
	for _, p := range points {
		data = append(data, opts.LineData{Value: c.value(p)})
	}
	data = append(data, opts.LineData{Value: c.value(points[0])})

	c.lines = append(c.lines, chartLine{series: seriesPolygons, data: data, width: lineWidth})
}

func (c *Chart) DrawLine(p1, p2 geom.Point, lineWidth float64) {
	c.lines = append(c.lines, chartLine{
		series: seriesLines,
		data: []opts.LineData{
			{Value: c.value(p1)},
			{Value: c.value(p2)},
		},
		width: lineWidth,
	})
}

func (c *Chart) DrawPoint(p geom.Point, radius float64) {
	c.points = append(c.points, opts.ScatterData{
		Value:      c.value(p),
		SymbolSize: int(radius * 2),
	})
}

func (c *Chart) DrawText(p geom.Point, text string, _ FontSpec) {
	c.labels = append(c.labels, opts.ScatterData{
		Name:       text,
		Value:      c.value(p),
		SymbolSize: 1,
	})
}

func (c *Chart) value(p geom.Point) []float64 {
	return []float64{p.X, float64(c.height) - p.Y}
}

// Render writes the collected frame as an HTML chart.
func (c *Chart) Render(w io.Writer) error {
	scatter := charts.NewScatter()
	c.prepareScatter(scatter)

	scatter.AddSeries(seriesPoints, c.points,
		charts.WithItemStyleOpts(opts.ItemStyle{
			Color: "lightgreen",
		}),
	)

	if len(c.labels) > 0 {
		scatter.AddSeries(seriesLabels, c.labels,
			charts.WithLabelOpts(opts.Label{
				Show:      opts.Bool(true),
				Color:     "white",
				Formatter: "{b}",
			}),
		)
	}

	for _, l := range c.lines {
		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries(l.series, l.data,
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: float32(l.width),
			}),
		)

		scatter.Overlap(line)
	}

	return scatter.Render(w)
}

func (c *Chart) prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  fmt.Sprintf("%dpx", c.width),
			Height: fmt.Sprintf("%dpx", c.height),
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Ячейки по биссектрисам",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  0,
			Max:  c.width,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  0,
			Max:  c.height,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}
