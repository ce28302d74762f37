package chart

// Slice is one pie wedge.
type Slice struct {
	Label string
	Value float64
	Share float64
	Color string
}

// Bar is one bar of a bar chart.
type Bar struct {
	Label string
	Value float64
}

// Point is one marked point of a line series.
type Point struct {
	Label string
	Value float64
}

// Series is one line of a line chart.
type Series struct {
	Name   string
	Color  string
	Points []Point
}

// Step is one waterfall bar spanning Start..End.
//
// Delta steps move the running total by Delta. Total steps span zero to the
// running total; Declared keeps the value the source table states for it.
type Step struct {
	Label    string
	Delta    float64
	Start    float64
	End      float64
	IsTotal  bool
	Declared float64
}

// Region is one tile of the choropleth base map.
type Region struct {
	Code   string
	Name   string
	Value  float64
	Filled bool
	Color  string
}

// RenderedChart is the renderable result of a Spec: plain data describing
// what was drawn plus the SVG document.
type RenderedChart struct {
	Kind        Kind
	Title       string
	Placeholder bool
	Message     string
	Slices      []Slice
	Bars        []Bar
	Series      []Series
	Steps       []Step
	Regions     []Region
	Unmapped    []string
	SVG         []byte
}
