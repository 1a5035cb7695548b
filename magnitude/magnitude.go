package magnitude

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegativeUncertainty indicates a constructor received an
	// uncertainty below zero. Uncertainties are standard deviations and
	// must be non-negative.
	ErrNegativeUncertainty = errors.New("magnitude: uncertainty must be non-negative")

	// ErrUnitMismatch indicates addition or subtraction of magnitudes
	// carrying different unit tags.
	ErrUnitMismatch = errors.New("magnitude: operands must share the same unit")

	// ErrZeroDivision indicates division by a magnitude whose value is zero.
	ErrZeroDivision = errors.New("magnitude: division by zero-valued magnitude")
)

// Dimensionless is the unit tag of quantities without a physical unit.
const Dimensionless = ""

// Magnitude is a measured physical quantity: a value, a symbolic unit
// tag and an absolute standard uncertainty.
//
// The zero value is the exact dimensionless zero. Uncertainty must be
// non-negative; the constructors enforce this and every operator
// preserves it.
type Magnitude struct {
	// Value is the magnitude of the quantity.
	Value float64

	// Unit is a symbolic tag ("cm", "1/s", ...). Empty means
	// dimensionless. Tags are metadata: no conversion is ever applied.
	Unit string

	// Uncertainty is the absolute standard uncertainty, in the same
	// unit as Value. Always ≥ 0.
	Uncertainty float64
}

// New returns a Magnitude from a value, a unit tag and an absolute
// standard uncertainty.
//
// Errors:
//   - ErrNegativeUncertainty — if uncertainty < 0.
func New(value float64, unit string, uncertainty float64) (Magnitude, error) {
	if uncertainty < 0 {
		return Magnitude{}, ErrNegativeUncertainty
	}

	return Magnitude{Value: value, Unit: unit, Uncertainty: uncertainty}, nil
}

// NewRelative returns a Magnitude from a value, a unit tag and a
// relative standard uncertainty expressed as a fraction (0.013 = 1.3 %).
// The stored absolute uncertainty is |value|·relative.
//
// Errors:
//   - ErrNegativeUncertainty — if relative < 0.
func NewRelative(value float64, unit string, relative float64) (Magnitude, error) {
	if relative < 0 {
		return Magnitude{}, ErrNegativeUncertainty
	}

	return Magnitude{Value: value, Unit: unit, Uncertainty: math.Abs(value) * relative}, nil
}

// Exact returns a Magnitude with zero uncertainty, for constants that
// enter formulas without contributing to the uncertainty budget.
func Exact(value float64, unit string) Magnitude {
	return Magnitude{Value: value, Unit: unit}
}

// RelativeUncertainty returns the uncertainty as a fraction of the
// value. A zero-valued magnitude has no meaningful relative
// uncertainty; 0 is returned in that case.
func (m Magnitude) RelativeUncertainty() float64 {
	if m.Value == 0 {
		return 0
	}

	return m.Uncertainty / math.Abs(m.Value)
}

// WithUnit returns a copy of m relabeled with the given unit tag.
// Value and uncertainty are untouched: this is a metadata operation
// used to assign the conventional unit after a formula's symbolic
// composition.
func (m Magnitude) WithUnit(unit string) Magnitude {
	m.Unit = unit

	return m
}

// String renders the magnitude as "value ± uncertainty unit (rel%)".
// Dimensionless magnitudes omit the unit tag.
func (m Magnitude) String() string {
	if m.Unit == Dimensionless {
		return fmt.Sprintf("%g ± %g (%.2f%%)", m.Value, m.Uncertainty, m.RelativeUncertainty()*100)
	}

	return fmt.Sprintf("%g ± %g %s (%.2f%%)", m.Value, m.Uncertainty, m.Unit, m.RelativeUncertainty()*100)
}
