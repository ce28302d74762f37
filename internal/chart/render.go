package chart

import (
	"fmt"
	"math"

	"github.com/louisbranch/poolview/internal/dataset"
)

// Render builds the chart a spec describes.
//
// A spec whose source has no records (other than a choropleth) yields a
// placeholder chart together with an *InsufficientDataError; callers show the
// placeholder and carry on. Binding problems return a *BindingError and no
// chart.
func Render(spec Spec) (RenderedChart, error) {
	if err := spec.Validate(); err != nil {
		return RenderedChart{}, err
	}
	out := RenderedChart{Kind: spec.Kind, Title: spec.Title}
	if spec.Source.Len() == 0 && spec.Kind != KindChoropleth {
		return placeholder(spec, out)
	}

	var err error
	switch spec.Kind {
	case KindPie:
		out.Slices = pieSlices(spec)
		if total(out.Slices) <= 0 {
			return placeholder(spec, out)
		}
		out.SVG, err = drawPie(spec, out.Slices)
	case KindBar:
		out.Bars = bars(spec)
		out.SVG, err = drawBar(spec, out.Bars)
	case KindLine:
		out.Series = lineSeries(spec)
		out.SVG, err = drawLine(spec, out.Series)
	case KindWaterfall:
		out.Steps = waterfallSteps(spec)
		out.SVG, err = drawWaterfall(spec, out.Steps)
	case KindCombo:
		out.Bars = bars(spec)
		out.Series = lineSeries(spec)
		for i := range out.Series {
			out.Series[i].Color = "#" + paletteHex(i+comboLineOffset)
		}
		out.SVG, err = drawCombo(spec, out.Bars, out.Series)
	case KindChoropleth:
		out.Regions, out.Unmapped = regions(spec)
		out.SVG, err = drawChoropleth(spec, out.Regions)
	}
	if err != nil {
		return RenderedChart{}, fmt.Errorf("draw %s chart of %q: %w", spec.Kind, spec.Source.Name(), err)
	}
	return out, nil
}

func placeholder(spec Spec, out RenderedChart) (RenderedChart, error) {
	out.Placeholder = true
	out.Message = "No data for the current filters"
	out.Slices, out.Bars, out.Series, out.Steps = nil, nil, nil, nil
	svg, err := drawPlaceholder(spec, out.Message)
	if err != nil {
		return RenderedChart{}, fmt.Errorf("draw placeholder: %w", err)
	}
	out.SVG = svg
	return out, &InsufficientDataError{Kind: spec.Kind, Dataset: spec.Source.Name()}
}

func text(ds dataset.Dataset, row int, column string) string {
	value, _ := ds.Value(row, column)
	return value.Text()
}

func number(ds dataset.Dataset, row int, column string) float64 {
	value, _ := ds.Value(row, column)
	n, _ := value.Number()
	return n
}

func flag(ds dataset.Dataset, row int, column string) bool {
	value, _ := ds.Value(row, column)
	b, _ := value.Bool()
	return b
}

func pieSlices(spec Spec) []Slice {
	ds := spec.Source
	out := make([]Slice, 0, ds.Len())
	sum := 0.0
	for row := 0; row < ds.Len(); row++ {
		v := number(ds, row, spec.ValueColumn)
		sum += v
		out = append(out, Slice{
			Label: text(ds, row, spec.CategoryColumn),
			Value: v,
			Color: "#" + paletteHex(row),
		})
	}
	if sum > 0 {
		for i := range out {
			out[i].Share = out[i].Value / sum
		}
	}
	return out
}

func total(slices []Slice) float64 {
	sum := 0.0
	for _, s := range slices {
		sum += s.Value
	}
	return sum
}

func bars(spec Spec) []Bar {
	ds := spec.Source
	out := make([]Bar, 0, ds.Len())
	for row := 0; row < ds.Len(); row++ {
		out = append(out, Bar{
			Label: text(ds, row, spec.CategoryColumn),
			Value: number(ds, row, spec.ValueColumn),
		})
	}
	return out
}

func lineSeries(spec Spec) []Series {
	ds := spec.Source
	out := make([]Series, 0, len(spec.SeriesColumns))
	for i, column := range spec.SeriesColumns {
		series := Series{Name: column, Color: "#" + paletteHex(i), Points: make([]Point, 0, ds.Len())}
		for row := 0; row < ds.Len(); row++ {
			series.Points = append(series.Points, Point{
				Label: text(ds, row, spec.CategoryColumn),
				Value: number(ds, row, column),
			})
		}
		out = append(out, series)
	}
	return out
}

// waterfallSteps accumulates deltas; a total step spans zero to the running
// total. Sums are rounded to 1e-9 so 11.22+1.0+27.51+4.25 lands on 43.98.
func waterfallSteps(spec Spec) []Step {
	ds := spec.Source
	out := make([]Step, 0, ds.Len())
	running := 0.0
	for row := 0; row < ds.Len(); row++ {
		label := text(ds, row, spec.CategoryColumn)
		value := number(ds, row, spec.ValueColumn)
		if flag(ds, row, spec.TotalColumn) {
			out = append(out, Step{Label: label, Start: 0, End: running, IsTotal: true, Declared: value})
			continue
		}
		next := roundNano(running + value)
		out = append(out, Step{Label: label, Delta: value, Start: running, End: next})
		running = next
	}
	return out
}

func roundNano(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}

// regions colors every base-map tile. Codes outside the base map are
// reported as unmapped; tiles without a record stay unfilled.
func regions(spec Spec) ([]Region, []string) {
	ds := spec.Source
	scale, _ := LookupScale(spec.ColorScale)

	values := map[string]float64{}
	unmapped := []string{}
	lo, hi := math.Inf(1), math.Inf(-1)
	for row := 0; row < ds.Len(); row++ {
		code := text(ds, row, spec.CategoryColumn)
		if !InBaseMap(code) {
			unmapped = append(unmapped, code)
			continue
		}
		v := number(ds, row, spec.ValueColumn)
		values[code] = v
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	out := make([]Region, 0, len(usTiles))
	for _, t := range usTiles {
		region := Region{Code: t.Code, Name: t.Name}
		if v, ok := values[t.Code]; ok {
			position := 1.0
			if hi > lo {
				position = (v - lo) / (hi - lo)
			}
			region.Value = v
			region.Filled = true
			region.Color = hexColor(scale.At(position))
		}
		out = append(out, region)
	}
	return out, unmapped
}
