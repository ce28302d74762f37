package dashboard

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/louisbranch/poolview/internal/chart"
	"github.com/louisbranch/poolview/internal/dataset"
	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Layout arranges chart panels into page sections.
type Layout struct {
	Title    string    `yaml:"title"`
	Summary  string    `yaml:"summary"`
	Sections []Section `yaml:"sections"`
}

// Section is a titled group of panels.
type Section struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	Summary string  `yaml:"summary"`
	Panels  []Panel `yaml:"panels"`
}

// Panel binds one dataset to one chart.
type Panel struct {
	ID         string   `yaml:"id"`
	Dataset    string   `yaml:"dataset"`
	Kind       string   `yaml:"kind"`
	Title      string   `yaml:"title"`
	Category   string   `yaml:"category"`
	Value      string   `yaml:"value"`
	Series     []string `yaml:"series"`
	Total      string   `yaml:"total"`
	ColorScale string   `yaml:"color_scale"`
	// Table renders the panel's filtered view below the chart.
	Table bool `yaml:"table"`
}

// DefaultLayout parses the embedded layout.
func DefaultLayout() (Layout, error) {
	return ParseLayout(defaultLayoutYAML)
}

// ParseLayout decodes a YAML layout. Unknown fields are rejected.
func ParseLayout(data []byte) (Layout, error) {
	var layout Layout
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&layout); err != nil {
		return Layout{}, fmt.Errorf("decode layout: %w", err)
	}
	return layout, nil
}

// Spec builds the chart spec for this panel over source.
func (p Panel) Spec(source dataset.Dataset, width, height int) chart.Spec {
	return chart.Spec{
		Kind:           chart.Kind(strings.ToLower(strings.TrimSpace(p.Kind))),
		Title:          p.Title,
		Source:         source,
		CategoryColumn: p.Category,
		ValueColumn:    p.Value,
		SeriesColumns:  p.Series,
		TotalColumn:    p.Total,
		ColorScale:     p.ColorScale,
		Width:          width,
		Height:         height,
	}
}

// Panel finds a panel by id.
func (l Layout) Panel(id string) (Panel, bool) {
	for _, section := range l.Sections {
		for _, panel := range section.Panels {
			if panel.ID == id {
				return panel, true
			}
		}
	}
	return Panel{}, false
}

// Validate checks that ids are unique and that every panel's bindings fit
// its dataset in reg.
func (l Layout) Validate(reg *dataset.Registry) error {
	if reg == nil {
		return errors.New("dataset registry is required")
	}
	if len(l.Sections) == 0 {
		return errors.New("layout has no sections")
	}
	sections := map[string]struct{}{}
	panels := map[string]struct{}{}
	for _, section := range l.Sections {
		if strings.TrimSpace(section.ID) == "" {
			return errors.New("section id is required")
		}
		if _, dup := sections[section.ID]; dup {
			return fmt.Errorf("duplicate section id %q", section.ID)
		}
		sections[section.ID] = struct{}{}

		for _, panel := range section.Panels {
			if strings.TrimSpace(panel.ID) == "" {
				return fmt.Errorf("section %q: panel id is required", section.ID)
			}
			if _, dup := panels[panel.ID]; dup {
				return fmt.Errorf("duplicate panel id %q", panel.ID)
			}
			panels[panel.ID] = struct{}{}

			source, err := reg.Get(panel.Dataset)
			if err != nil {
				return fmt.Errorf("panel %q: %w", panel.ID, err)
			}
			if err := panel.Spec(source, 0, 0).Validate(); err != nil {
				return fmt.Errorf("panel %q: %w", panel.ID, err)
			}
		}
	}
	return nil
}
