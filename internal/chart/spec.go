// Package chart turns datasets into chart descriptions and SVG drawings.
//
// Render is a pure function of its Spec: the same records and bindings always
// produce the same RenderedChart, byte for byte.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/poolview/internal/dataset"
)

// Kind enumerates the supported visuals.
type Kind string

const (
	KindPie        Kind = "pie"
	KindBar        Kind = "bar"
	KindLine       Kind = "line"
	KindWaterfall  Kind = "waterfall"
	KindChoropleth Kind = "choropleth"
	KindCombo      Kind = "combo"
)

// ParseKind resolves a kind name.
func ParseKind(value string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(value)))
	switch kind {
	case KindPie, KindBar, KindLine, KindWaterfall, KindChoropleth, KindCombo:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown chart kind %q", value)
	}
}

const (
	defaultWidth  = 640
	defaultHeight = 360
)

// Spec describes one chart to render.
//
// CategoryColumn is the slice/bar label, the ordered line axis, the waterfall
// step label or the choropleth region code depending on Kind. A combo chart
// draws ValueColumn as bars on the primary axis and SeriesColumns as lines on
// the secondary axis.
type Spec struct {
	Kind           Kind
	Title          string
	Source         dataset.Dataset
	CategoryColumn string
	ValueColumn    string
	SeriesColumns  []string
	TotalColumn    string
	ColorScale     string
	Width          int
	Height         int
}

func (s Spec) size() (int, int) {
	width, height := s.Width, s.Height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// ErrInsufficientData marks charts that had no records to draw.
var ErrInsufficientData = errors.New("insufficient data")

// InsufficientDataError reports a chart that degraded to its placeholder.
type InsufficientDataError struct {
	Kind    Kind
	Dataset string
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("%s chart of %q has no records", e.Kind, e.Dataset)
}

// Is matches ErrInsufficientData.
func (e *InsufficientDataError) Is(target error) bool {
	return target == ErrInsufficientData
}

// BindingError reports a spec whose bindings do not fit its source.
type BindingError struct {
	Kind    Kind
	Dataset string
	Column  string
	Reason  string
}

func (e *BindingError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("%s chart of %q: %s", e.Kind, e.Dataset, e.Reason)
	}
	return fmt.Sprintf("%s chart of %q: column %q %s", e.Kind, e.Dataset, e.Column, e.Reason)
}

// Validate checks the spec's bindings against its source dataset: every
// bound column exists and numeric roles hold numbers in every record.
func (s Spec) Validate() error {
	fail := func(column, reason string) error {
		return &BindingError{Kind: s.Kind, Dataset: s.Source.Name(), Column: column, Reason: reason}
	}
	if _, err := ParseKind(string(s.Kind)); err != nil {
		return fail("", err.Error())
	}
	if s.CategoryColumn == "" {
		return fail("", "category column is required")
	}
	if !s.Source.HasColumn(s.CategoryColumn) {
		return fail(s.CategoryColumn, "is not in the dataset")
	}

	numeric := []string{}
	switch s.Kind {
	case KindLine:
		if len(s.SeriesColumns) == 0 {
			return fail("", "at least one series column is required")
		}
		numeric = append(numeric, s.SeriesColumns...)
	case KindCombo:
		if s.ValueColumn == "" {
			return fail("", "value column is required")
		}
		if len(s.SeriesColumns) == 0 {
			return fail("", "at least one series column is required")
		}
		numeric = append(numeric, s.ValueColumn)
		numeric = append(numeric, s.SeriesColumns...)
	default:
		if s.ValueColumn == "" {
			return fail("", "value column is required")
		}
		numeric = append(numeric, s.ValueColumn)
	}
	for _, column := range numeric {
		if !s.Source.HasColumn(column) {
			return fail(column, "is not in the dataset")
		}
		if err := requireKind(s.Source, column, dataset.KindNumber); err != nil {
			return fail(column, err.Error())
		}
	}

	switch s.Kind {
	case KindWaterfall:
		if s.TotalColumn == "" {
			return fail("", "total column is required")
		}
		if !s.Source.HasColumn(s.TotalColumn) {
			return fail(s.TotalColumn, "is not in the dataset")
		}
		if err := requireKind(s.Source, s.TotalColumn, dataset.KindBool); err != nil {
			return fail(s.TotalColumn, err.Error())
		}
	case KindChoropleth:
		if _, ok := LookupScale(s.ColorScale); !ok {
			return fail("", fmt.Sprintf("unknown color scale %q", s.ColorScale))
		}
	}
	return nil
}

func requireKind(ds dataset.Dataset, column string, kind dataset.ValueKind) error {
	for row := 0; row < ds.Len(); row++ {
		value, _ := ds.Value(row, column)
		if value.Kind() != kind {
			return fmt.Errorf("has non-%s value %q in record %d", kindName(kind), value.Text(), row)
		}
	}
	return nil
}

func kindName(kind dataset.ValueKind) string {
	switch kind {
	case dataset.KindNumber:
		return "numeric"
	case dataset.KindBool:
		return "boolean"
	default:
		return "text"
	}
}
