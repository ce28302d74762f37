// Package templates renders dashboard HTML.
package templates

// PageView is the full dashboard page.
type PageView struct {
	Title    string
	Summary  string
	Filters  []FilterControl
	Sections []SectionView
	Export   ExportControl
}

// FilterControl is one multi-select dimension filter.
type FilterControl struct {
	Key     string
	Label   string
	Options []Option
}

// Option is a selectable category.
type Option struct {
	Value    string
	Selected bool
}

// ExportControl lists downloadable datasets.
type ExportControl struct {
	Options []Option
}

// SectionView is a titled group of panels.
type SectionView struct {
	ID      string
	Title   string
	Summary string
	Panels  []PanelView
}

// PanelView is one rendered chart with its optional data table.
type PanelView struct {
	ID          string
	Title       string
	Dataset     string
	SVG         []byte
	Placeholder bool
	Message     string
	// Error is set when the chart could not be drawn at all.
	Error    string
	Unmapped []string
	Table    *TableView
}

// TableView is a formatted data table.
type TableView struct {
	Columns []string
	Rows    [][]string
}
