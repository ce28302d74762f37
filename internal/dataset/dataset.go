// Package dataset holds the fixed, named tables the dashboard charts.
//
// Datasets are built once at startup and never mutated; every accessor hands
// out copies so callers cannot alias the registry's storage.
package dataset

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Record is one row of a dataset, positionally aligned with its columns.
type Record []Value

// Dataset is a named ordered sequence of records sharing one column set.
type Dataset struct {
	name    string
	columns []string
	records []Record
}

// New builds a dataset and checks every record against the header width.
func New(name string, columns []string, records ...Record) (Dataset, error) {
	if name == "" {
		return Dataset{}, fmt.Errorf("dataset name is required")
	}
	if len(columns) == 0 {
		return Dataset{}, fmt.Errorf("dataset %q: at least one column is required", name)
	}
	seen := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		if column == "" {
			return Dataset{}, fmt.Errorf("dataset %q: column name is required", name)
		}
		if _, ok := seen[column]; ok {
			return Dataset{}, fmt.Errorf("dataset %q: duplicate column %q", name, column)
		}
		seen[column] = struct{}{}
	}
	for i, record := range records {
		if len(record) != len(columns) {
			return Dataset{}, fmt.Errorf("dataset %q: record %d has %d values, want %d", name, i, len(record), len(columns))
		}
	}
	out := Dataset{
		name:    name,
		columns: slices.Clone(columns),
		records: make([]Record, len(records)),
	}
	for i, record := range records {
		out.records[i] = slices.Clone(record)
	}
	return out, nil
}

func mustNew(name string, columns []string, records ...Record) Dataset {
	ds, err := New(name, columns, records...)
	if err != nil {
		panic(err)
	}
	return ds
}

// Name returns the dataset's registry name.
func (d Dataset) Name() string { return d.name }

// Columns returns the column names in their fixed order.
func (d Dataset) Columns() []string { return slices.Clone(d.columns) }

// Len returns the number of records.
func (d Dataset) Len() int { return len(d.records) }

// Records returns a copy of every record.
func (d Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	for i, record := range d.records {
		out[i] = slices.Clone(record)
	}
	return out
}

// ColumnIndex returns the position of column, or -1.
func (d Dataset) ColumnIndex(column string) int {
	return slices.Index(d.columns, column)
}

// HasColumn reports whether the dataset declares column.
func (d Dataset) HasColumn(column string) bool {
	return d.ColumnIndex(column) >= 0
}

// Value returns the cell at row/column.
func (d Dataset) Value(row int, column string) (Value, bool) {
	idx := d.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(d.records) {
		return Value{}, false
	}
	return d.records[row][idx], true
}

// Filter returns a dataset with the same name and columns holding only the
// records keep accepts, in source order.
func (d Dataset) Filter(keep func(Record) bool) Dataset {
	out := Dataset{name: d.name, columns: slices.Clone(d.columns), records: []Record{}}
	for _, record := range d.records {
		if keep(record) {
			out.records = append(out.records, slices.Clone(record))
		}
	}
	return out
}

// Categories returns the distinct text values of column in first-seen order.
func (d Dataset) Categories(column string) ([]string, error) {
	idx := d.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("dataset %q has no column %q", d.name, column)
	}
	seen := map[string]struct{}{}
	out := []string{}
	for _, record := range d.records {
		text := record[idx].Text()
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, text)
	}
	return out, nil
}

// Equal reports whether two datasets carry the same name, columns and values.
func (d Dataset) Equal(other Dataset) bool {
	if d.name != other.name || !slices.Equal(d.columns, other.columns) || len(d.records) != len(other.records) {
		return false
	}
	for i := range d.records {
		if !slices.Equal(d.records[i], other.records[i]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the dataset as {"name","columns","rows"}. Each row is an
// array aligned with columns.
func (d Dataset) MarshalJSON() ([]byte, error) {
	rows := make([][]any, 0, len(d.records))
	for _, record := range d.records {
		row := make([]any, len(d.columns))
		for i, value := range record {
			switch value.Kind() {
			case KindNumber:
				row[i], _ = value.Number()
			case KindBool:
				row[i], _ = value.Bool()
			default:
				row[i] = value.Text()
			}
		}
		rows = append(rows, row)
	}
	return json.Marshal(struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	}{Name: d.name, Columns: d.columns, Rows: rows})
}
