package chart

import (
	"bytes"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// comboLineOffset starts combo lines at red so they stand apart from the bars.
const comboLineOffset = 3

// barSeries draws bars on the primary y axis of a gochart.Chart so lines can
// share the canvas on the secondary axis.
type barSeries struct {
	Name   string
	Style  gochart.Style
	Values []float64
}

func (b barSeries) GetName() string                    { return b.Name }
func (b barSeries) GetStyle() gochart.Style            { return b.Style }
func (b barSeries) GetYAxis() gochart.YAxisType        { return gochart.YAxisPrimary }
func (b barSeries) Len() int                           { return len(b.Values) }
func (b barSeries) GetValues(i int) (float64, float64) { return float64(i), b.Values[i] }

func (b barSeries) Validate() error {
	return nil
}

func (b barSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, defaults gochart.Style) {
	if len(b.Values) == 0 {
		return
	}
	slot := float64(canvasBox.Width()) / float64(len(b.Values))
	half := max(1, int(math.Round(slot*0.3)))
	base := canvasBox.Bottom - yrange.Translate(math.Max(0, yrange.GetMin()))
	style := b.Style.InheritFrom(defaults)
	for i, v := range b.Values {
		center := canvasBox.Left + xrange.Translate(float64(i))
		top := canvasBox.Bottom - yrange.Translate(v)
		r.SetFillColor(style.FillColor)
		r.SetStrokeColor(style.StrokeColor)
		r.SetStrokeWidth(1)
		fillRect(r, center-half, top, center+half, base)
	}
}

func drawCombo(spec Spec, bars []Bar, series []Series) ([]byte, error) {
	width, height := spec.size()
	barColor := drawing.ColorFromHex("87ceeb")

	values := make([]float64, len(bars))
	ticks := make([]gochart.Tick, len(bars))
	for i, b := range bars {
		values[i] = b.Value
		ticks[i] = gochart.Tick{Value: float64(i), Label: b.Label}
	}
	chartSeries := []gochart.Series{barSeries{
		Name:   spec.ValueColumn,
		Style:  gochart.Style{FillColor: barColor, StrokeColor: barColor, StrokeWidth: 2},
		Values: values,
	}}

	lineValues := []float64{}
	for _, s := range series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = float64(i)
			ys[i] = p.Value
		}
		lineValues = append(lineValues, ys...)
		color := drawing.ColorFromHex(s.Color[1:])
		chartSeries = append(chartSeries, gochart.ContinuousSeries{
			Name:    s.Name,
			YAxis:   gochart.YAxisSecondary,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: color, StrokeWidth: 2, DotColor: color, DotWidth: 4},
		})
	}

	c := gochart.Chart{
		Title:      spec.Title,
		TitleStyle: titleStyle,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 10}},
		XAxis: gochart.XAxis{
			Style: gochart.Style{FontSize: 8, TextRotationDegrees: 30},
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(len(bars)) - 0.5},
		},
		YAxis:          gochart.YAxis{Name: spec.ValueColumn, Range: valueRange(values), ValueFormatter: formatTick},
		YAxisSecondary: gochart.YAxis{Name: secondaryName(series), Range: valueRange(lineValues), ValueFormatter: formatTick},
		Series:         chartSeries,
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c)}
	var buf bytes.Buffer
	if err := c.Render(gochart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func secondaryName(series []Series) string {
	if len(series) == 1 {
		return series[0].Name
	}
	return ""
}
