package filter

import (
	"fmt"
	"slices"

	"github.com/louisbranch/poolview/internal/dataset"
)

// Set is a set of selected category values.
type Set map[string]struct{}

// NewSet builds a set from values.
func NewSet(values ...string) Set {
	out := make(Set, len(values))
	for _, value := range values {
		out[value] = struct{}{}
	}
	return out
}

// Has reports membership.
func (s Set) Has(value string) bool {
	_, ok := s[value]
	return ok
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for value := range s {
		out = append(out, value)
	}
	slices.Sort(out)
	return out
}

func (s Set) clone() Set {
	out := make(Set, len(s))
	for value := range s {
		out[value] = struct{}{}
	}
	return out
}

// State holds one session's selection per dimension. It is not safe for
// concurrent use; the owning session serializes access.
type State struct {
	options   map[Dimension][]string
	selection map[Dimension]Set
}

// NewState selects every category of each dimension's backing dataset.
func NewState(reg *dataset.Registry, gov Governance) (*State, error) {
	if err := gov.Validate(reg); err != nil {
		return nil, err
	}
	st := &State{
		options:   make(map[Dimension][]string, len(Dimensions())),
		selection: make(map[Dimension]Set, len(Dimensions())),
	}
	for _, dim := range Dimensions() {
		binding, _ := gov.Backing(dim)
		categories, err := reg.Categories(binding.Dataset, binding.Column)
		if err != nil {
			return nil, fmt.Errorf("options for %s: %w", dim, err)
		}
		st.options[dim] = categories
		st.selection[dim] = NewSet(categories...)
	}
	return st, nil
}

// SetSelection replaces the selected categories of dim. Categories outside
// the dimension's options are kept; they simply match nothing.
func (s *State) SetSelection(dim Dimension, categories []string) error {
	if _, ok := s.options[dim]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDimension, dim)
	}
	s.selection[dim] = NewSet(categories...)
	return nil
}

// Selection returns a copy of the selected categories of dim.
func (s *State) Selection(dim Dimension) Set {
	if s == nil {
		return nil
	}
	sel, ok := s.selection[dim]
	if !ok {
		return nil
	}
	return sel.clone()
}

// Selected reports whether category is selected on dim.
func (s *State) Selected(dim Dimension, category string) bool {
	if s == nil {
		return false
	}
	return s.selection[dim].Has(category)
}

// Options lists the categories a control for dim should offer.
func (s *State) Options(dim Dimension) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.options[dim])
}

// Reset selects every option again.
func (s *State) Reset() {
	for dim, categories := range s.options {
		s.selection[dim] = NewSet(categories...)
	}
}

// Clone returns an independent copy for another session.
func (s *State) Clone() *State {
	out := &State{
		options:   make(map[Dimension][]string, len(s.options)),
		selection: make(map[Dimension]Set, len(s.selection)),
	}
	for dim, categories := range s.options {
		out.options[dim] = slices.Clone(categories)
	}
	for dim, sel := range s.selection {
		out.selection[dim] = sel.clone()
	}
	return out
}
