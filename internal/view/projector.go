// Package view derives filtered views of registry datasets.
package view

import (
	"fmt"

	"github.com/louisbranch/poolview/internal/dataset"
	"github.com/louisbranch/poolview/internal/filter"
)

// Projector restricts datasets to the records a filter state selects.
// It holds no mutable state: the same dataset and selections always yield
// the same view.
type Projector struct {
	registry   *dataset.Registry
	governance filter.Governance
}

// NewProjector validates governance against the registry.
func NewProjector(reg *dataset.Registry, gov filter.Governance) (*Projector, error) {
	if reg == nil {
		return nil, fmt.Errorf("dataset registry is required")
	}
	if err := gov.Validate(reg); err != nil {
		return nil, fmt.Errorf("validate governance: %w", err)
	}
	return &Projector{registry: reg, governance: gov}, nil
}

// Registry exposes the source registry.
func (p *Projector) Registry() *dataset.Registry { return p.registry }

// Governed reports whether any dimension filters the named dataset.
func (p *Projector) Governed(name string) bool {
	return len(p.governance.For(name)) > 0
}

// Project returns the named dataset restricted by state.
//
// Ungoverned datasets and a nil state return the source unchanged. Every
// binding on a dataset must match for a record to survive, so an empty
// selection yields an empty view.
func (p *Projector) Project(state *filter.State, name string) (dataset.Dataset, error) {
	source, err := p.registry.Get(name)
	if err != nil {
		return dataset.Dataset{}, err
	}
	bindings := p.governance.For(name)
	if len(bindings) == 0 || state == nil {
		return source, nil
	}

	type predicate struct {
		index    int
		selected filter.Set
	}
	predicates := make([]predicate, 0, len(bindings))
	for _, binding := range bindings {
		predicates = append(predicates, predicate{
			index:    source.ColumnIndex(binding.Column),
			selected: state.Selection(binding.Dimension),
		})
	}
	return source.Filter(func(record dataset.Record) bool {
		for _, pred := range predicates {
			if !pred.selected.Has(record[pred.index].Text()) {
				return false
			}
		}
		return true
	}), nil
}
