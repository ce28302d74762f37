package chart

import (
	"bytes"
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	titleStyle = gochart.Style{FontSize: 12, FontColor: drawing.ColorFromHex("1f2937")}
	unfilled   = drawing.ColorFromHex("e5e7eb")
	tileStroke = drawing.ColorFromHex("ffffff")
)

func drawPie(spec Spec, slices []Slice) ([]byte, error) {
	width, height := spec.size()
	values := make([]gochart.Value, 0, len(slices))
	for i, s := range slices {
		values = append(values, gochart.Value{
			Label: s.Label + " " + FormatShare(s.Share),
			Value: s.Value,
			Style: gochart.Style{FillColor: drawing.ColorFromHex(paletteHex(i)), StrokeColor: drawing.ColorWhite},
		})
	}
	pie := gochart.PieChart{
		Title:      spec.Title,
		TitleStyle: titleStyle,
		Width:      width,
		Height:     height,
		Values:     values,
	}
	var buf bytes.Buffer
	if err := pie.Render(gochart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// fit spreads n bars across the usable width as 60% bar, 40% gap.
func fit(width, n int) (barWidth, spacing int) {
	usable := width - 120
	if usable < n {
		usable = n
	}
	per := usable / n
	barWidth = max(1, per*6/10)
	spacing = max(1, per-barWidth)
	return barWidth, spacing
}

func valueRange(values []float64) *gochart.ContinuousRange {
	lo, hi := 0.0, 0.0
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi == lo {
		hi = lo + 1
	}
	pad := (hi - lo) * 0.1
	if lo < 0 {
		lo -= pad
	}
	return &gochart.ContinuousRange{Min: lo, Max: hi + pad}
}

func drawBar(spec Spec, bars []Bar) ([]byte, error) {
	width, height := spec.size()
	barWidth, spacing := fit(width, len(bars))
	values := make([]gochart.Value, 0, len(bars))
	numbers := make([]float64, 0, len(bars))
	for _, b := range bars {
		values = append(values, gochart.Value{
			Label: b.Label,
			Value: b.Value,
			Style: gochart.Style{FillColor: drawing.ColorFromHex(Palette[0]), StrokeColor: drawing.ColorFromHex(Palette[0])},
		})
		numbers = append(numbers, b.Value)
	}
	bc := gochart.BarChart{
		Title:      spec.Title,
		TitleStyle: titleStyle,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 10, Right: 10, Bottom: 10}},
		BarWidth:   barWidth,
		BarSpacing: spacing,
		XAxis:      gochart.Style{FontSize: 8, TextRotationDegrees: 30},
		YAxis:      gochart.YAxis{Range: valueRange(numbers), ValueFormatter: formatTick},
		Bars:       values,
	}
	var buf bytes.Buffer
	if err := bc.Render(gochart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatTick(v any) string {
	if f, ok := v.(float64); ok {
		return FormatValue(f)
	}
	return ""
}

func drawLine(spec Spec, series []Series) ([]byte, error) {
	width, height := spec.size()
	points := 0
	numbers := []float64{}
	chartSeries := make([]gochart.Series, 0, len(series))
	for _, s := range series {
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for i, p := range s.Points {
			xs[i] = float64(i)
			ys[i] = p.Value
		}
		numbers = append(numbers, ys...)
		points = len(s.Points)
		color := drawing.ColorFromHex(s.Color[1:])
		chartSeries = append(chartSeries, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   gochart.Style{StrokeColor: color, StrokeWidth: 2, DotColor: color, DotWidth: 4},
		})
	}
	ticks := make([]gochart.Tick, 0, points)
	if len(series) > 0 {
		for i, p := range series[0].Points {
			ticks = append(ticks, gochart.Tick{Value: float64(i), Label: p.Label})
		}
	}
	lc := gochart.Chart{
		Title:      spec.Title,
		TitleStyle: titleStyle,
		Width:      width,
		Height:     height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 12, Bottom: 10}},
		XAxis: gochart.XAxis{
			Name:  spec.CategoryColumn,
			Ticks: ticks,
			Range: &gochart.ContinuousRange{Min: -0.5, Max: float64(points) - 0.5},
		},
		YAxis:  gochart.YAxis{Range: valueRange(numbers), ValueFormatter: formatTick},
		Series: chartSeries,
	}
	lc.Elements = []gochart.Renderable{gochart.Legend(&lc)}
	var buf bytes.Buffer
	if err := lc.Render(gochart.SVG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// drawWaterfall paints each step as a floating span between its running
// start and end, with totals anchored at zero.
func drawWaterfall(spec Spec, steps []Step) ([]byte, error) {
	width, height := spec.size()
	r, err := gochart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	increase := drawing.ColorFromHex("2ca02c")
	decrease := drawing.ColorFromHex("d62728")
	totalColor := drawing.ColorFromHex(Palette[0])

	ends := make([]float64, 0, len(steps)*2)
	for _, step := range steps {
		ends = append(ends, step.Start, step.End)
	}
	yr := valueRange(ends)
	const top, bottom, left = 40, 50, 20
	plot := height - top - bottom
	y := func(v float64) int {
		return top + int(math.Round(float64(plot)*(yr.Max-v)/(yr.Max-yr.Min)))
	}
	barWidth, spacing := fit(width, len(steps))

	if spec.Title != "" {
		r.SetFontColor(titleStyle.FontColor)
		r.SetFontSize(titleStyle.FontSize)
		tw := r.MeasureText(spec.Title).Width()
		r.Text(spec.Title, (width-tw)/2, 20)
	}

	r.SetStrokeColor(drawing.ColorFromHex("9ca3af"))
	r.SetStrokeWidth(1)
	r.MoveTo(left, y(0))
	r.LineTo(width-left, y(0))
	r.Stroke()

	for i, step := range steps {
		color := increase
		switch {
		case step.IsTotal:
			color = totalColor
		case step.Delta < 0:
			color = decrease
		}
		x0 := left + spacing/2 + i*(barWidth+spacing)
		y0, y1 := y(math.Max(step.Start, step.End)), y(math.Min(step.Start, step.End))
		if y1-y0 < 1 {
			y1 = y0 + 1
		}
		r.SetFillColor(color)
		r.SetStrokeColor(color)
		fillRect(r, x0, y0, x0+barWidth, y1)

		r.SetFontColor(titleStyle.FontColor)
		r.SetFontSize(8)
		amount := FormatValue(step.End - step.Start)
		if step.IsTotal {
			amount = FormatValue(step.End)
		}
		box := r.MeasureText(amount)
		r.Text(amount, x0+(barWidth-box.Width())/2, y0-3)
		box = r.MeasureText(step.Label)
		r.Text(step.Label, x0+(barWidth-box.Width())/2, height-bottom+14)
		r.ResetStyle()
		r.SetFont(font)
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fillRect(r gochart.Renderer, x0, y0, x1, y1 int) {
	r.MoveTo(x0, y0)
	r.LineTo(x1, y0)
	r.LineTo(x1, y1)
	r.LineTo(x0, y1)
	r.LineTo(x0, y0)
	r.Close()
	r.FillStroke()
}

// drawChoropleth paints the tile-grid base map directly on the SVG renderer.
func drawChoropleth(spec Spec, regions []Region) ([]byte, error) {
	width, height := spec.size()
	r, err := gochart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)

	const top = 36
	cell := min((width-20)/usMapCols, (height-top-10)/usMapRows)
	left := (width - cell*usMapCols) / 2

	if spec.Title != "" {
		r.SetFontColor(titleStyle.FontColor)
		r.SetFontSize(titleStyle.FontSize)
		tw := r.MeasureText(spec.Title).Width()
		r.Text(spec.Title, (width-tw)/2, 20)
	}

	for i, region := range regions {
		t := usTiles[i]
		x0 := left + t.Col*cell
		y0 := top + t.Row*cell
		x1, y1 := x0+cell-2, y0+cell-2

		fill := unfilled
		if region.Filled {
			fill = drawing.ColorFromHex(region.Color[1:])
		}
		r.SetFillColor(fill)
		r.SetStrokeColor(tileStroke)
		r.SetStrokeWidth(1)
		fillRect(r, x0, y0, x1, y1)

		r.SetFontSize(math.Max(6, float64(cell)/4))
		r.SetFontColor(labelColor(region))
		box := r.MeasureText(region.Code)
		r.Text(region.Code, x0+(cell-2-box.Width())/2, y0+(cell-2+box.Height())/2)
		r.ResetStyle()
		r.SetFont(font)
	}

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func labelColor(region Region) drawing.Color {
	if !region.Filled {
		return drawing.ColorFromHex("6b7280")
	}
	c := drawing.ColorFromHex(region.Color[1:])
	luminance := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if luminance < 140 {
		return drawing.ColorWhite
	}
	return drawing.ColorFromHex("111827")
}

func drawPlaceholder(spec Spec, message string) ([]byte, error) {
	width, height := spec.size()
	r, err := gochart.SVG(width, height)
	if err != nil {
		return nil, err
	}
	font, err := gochart.GetDefaultFont()
	if err != nil {
		return nil, err
	}
	r.SetFont(font)
	r.SetFillColor(drawing.ColorFromHex("f9fafb"))
	r.SetStrokeColor(unfilled)
	r.SetStrokeWidth(1)
	fillRect(r, 1, 1, width-1, height-1)

	r.SetFontColor(drawing.ColorFromHex("6b7280"))
	r.SetFontSize(14)
	if spec.Title != "" {
		tw := r.MeasureText(spec.Title).Width()
		r.Text(spec.Title, (width-tw)/2, 24)
	}
	box := r.MeasureText(message)
	r.Text(message, (width-box.Width())/2, (height+box.Height())/2)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
