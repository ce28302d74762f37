package dataset

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnknownDataset marks lookups of names that were never registered.
var ErrUnknownDataset = errors.New("unknown dataset")

// UnknownDatasetError reports the name that failed to resolve.
type UnknownDatasetError struct {
	Name string
}

func (e *UnknownDatasetError) Error() string {
	return fmt.Sprintf("unknown dataset %q", e.Name)
}

// Is matches ErrUnknownDataset.
func (e *UnknownDatasetError) Is(target error) bool {
	return target == ErrUnknownDataset
}

// Registry resolves datasets by name. It exposes no mutators.
type Registry struct {
	order  []string
	byName map[string]Dataset
}

// NewRegistry indexes datasets by name, rejecting duplicates.
func NewRegistry(datasets ...Dataset) (*Registry, error) {
	reg := &Registry{byName: make(map[string]Dataset, len(datasets))}
	for _, ds := range datasets {
		if ds.name == "" {
			return nil, fmt.Errorf("register dataset: name is required")
		}
		if _, ok := reg.byName[ds.name]; ok {
			return nil, fmt.Errorf("register dataset: duplicate name %q", ds.name)
		}
		reg.order = append(reg.order, ds.name)
		reg.byName[ds.name] = ds
	}
	return reg, nil
}

// Get returns the named dataset or an *UnknownDatasetError.
func (r *Registry) Get(name string) (Dataset, error) {
	if r == nil {
		return Dataset{}, &UnknownDatasetError{Name: name}
	}
	ds, ok := r.byName[name]
	if !ok {
		return Dataset{}, &UnknownDatasetError{Name: name}
	}
	return ds, nil
}

// Names lists dataset names in registration order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.order)
}

// Categories returns the distinct values of column in the named dataset.
func (r *Registry) Categories(name, column string) ([]string, error) {
	ds, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return ds.Categories(column)
}
