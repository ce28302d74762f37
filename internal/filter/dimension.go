// Package filter tracks the category selections that narrow dashboard views.
package filter

import (
	"errors"
	"fmt"

	"github.com/louisbranch/poolview/internal/dataset"
)

// ErrUnknownDimension marks a dimension key that is not filterable.
var ErrUnknownDimension = errors.New("unknown filter dimension")

// Dimension is one filterable axis of the pool.
type Dimension string

const (
	StateDimension Dimension = "state"
	ScoreBand      Dimension = "score_band"
	Industry       Dimension = "industry"
	LoanType       Dimension = "loan_type"
)

// Dimensions lists every dimension in display order.
func Dimensions() []Dimension {
	return []Dimension{StateDimension, ScoreBand, Industry, LoanType}
}

// Label returns the human label for a dimension.
func (d Dimension) Label() string {
	switch d {
	case StateDimension:
		return "State"
	case ScoreBand:
		return "Score Band"
	case Industry:
		return "Industry"
	case LoanType:
		return "Loan Type"
	default:
		return string(d)
	}
}

// ParseDimension resolves a form key into a Dimension.
func ParseDimension(key string) (Dimension, error) {
	for _, dim := range Dimensions() {
		if string(dim) == key {
			return dim, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDimension, key)
}

// Binding attaches a dimension to the categorical column of one dataset.
// Backing marks the dataset whose categories seed the dimension's options.
type Binding struct {
	Dimension Dimension
	Dataset   string
	Column    string
	Backing   bool
}

// Governance is the ordered set of bindings the projector applies.
type Governance []Binding

// DefaultGovernance binds every dimension to the pool tables.
func DefaultGovernance() Governance {
	return Governance{
		{Dimension: StateDimension, Dataset: dataset.StateConcentration, Column: "State", Backing: true},
		{Dimension: ScoreBand, Dataset: dataset.VantageScoreBands, Column: "Score Band", Backing: true},
		{Dimension: Industry, Dataset: dataset.Industries, Column: "Industry", Backing: true},
		{Dimension: Industry, Dataset: dataset.MerchantConcentration, Column: "Industry"},
		{Dimension: LoanType, Dataset: dataset.PromoMix, Column: "Loan Type", Backing: true},
	}
}

// For returns the bindings that govern the named dataset.
func (g Governance) For(name string) []Binding {
	var out []Binding
	for _, binding := range g {
		if binding.Dataset == name {
			out = append(out, binding)
		}
	}
	return out
}

// Backing returns the backing binding of a dimension.
func (g Governance) Backing(dim Dimension) (Binding, bool) {
	for _, binding := range g {
		if binding.Dimension == dim && binding.Backing {
			return binding, true
		}
	}
	return Binding{}, false
}

// Validate checks every binding against the registry and requires exactly
// one backing binding per dimension.
func (g Governance) Validate(reg *dataset.Registry) error {
	backing := map[Dimension]int{}
	for _, binding := range g {
		if _, err := ParseDimension(string(binding.Dimension)); err != nil {
			return err
		}
		ds, err := reg.Get(binding.Dataset)
		if err != nil {
			return fmt.Errorf("bind %s: %w", binding.Dimension, err)
		}
		if !ds.HasColumn(binding.Column) {
			return fmt.Errorf("bind %s: dataset %q has no column %q", binding.Dimension, binding.Dataset, binding.Column)
		}
		if binding.Backing {
			backing[binding.Dimension]++
		}
	}
	for _, dim := range Dimensions() {
		if backing[dim] != 1 {
			return fmt.Errorf("dimension %s needs one backing dataset, has %d", dim, backing[dim])
		}
	}
	return nil
}
