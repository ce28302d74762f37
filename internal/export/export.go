// Package export serializes filtered views for download.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/louisbranch/poolview/internal/dataset"
)

// MIMEType is the content type of every artifact.
const MIMEType = "text/csv"

// Artifact is a downloadable file.
type Artifact struct {
	Filename string
	MIMEType string
	Body     []byte
}

// Serialize writes a header row followed by one row per record, in view
// order. Cells use the canonical text form of each value.
func Serialize(view dataset.Dataset) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(view.Columns()); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	for i, record := range view.Records() {
		row := make([]string, len(record))
		for j, value := range record {
			row[j] = value.Text()
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// Filename derives the download name: lowercased, spaces to underscores,
// "_data.csv" appended.
func Filename(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_") + "_data.csv"
}

// Download packages a view as a CSV artifact.
func Download(view dataset.Dataset) (Artifact, error) {
	body, err := Serialize(view)
	if err != nil {
		return Artifact{}, fmt.Errorf("export %q: %w", view.Name(), err)
	}
	return Artifact{Filename: Filename(view.Name()), MIMEType: MIMEType, Body: body}, nil
}
