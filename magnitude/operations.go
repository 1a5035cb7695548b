// Package magnitude - propagation operators.
//
// Each operator applies the standard first-order propagation rule for
// uncorrelated operands:
//  1. Sum/difference: absolute uncertainties combine in quadrature.
//  2. Product/quotient: relative uncertainties combine in quadrature.
//  3. Power: the relative uncertainty scales by |exponent|.
//
// Operands are treated as independent. Correlated factors (a quantity
// multiplied by itself) must go through Pow, which applies the exact
// |p|·u_r rule instead of the √2·u_r that two independent
// multiplications would produce.
package magnitude

import "math"

// Add returns m + n with uncertainties combined in quadrature.
//
// Errors:
//   - ErrUnitMismatch — if the operands carry different unit tags.
func (m Magnitude) Add(n Magnitude) (Magnitude, error) {
	if m.Unit != n.Unit {
		return Magnitude{}, ErrUnitMismatch
	}

	return Magnitude{
		Value:       m.Value + n.Value,
		Unit:        m.Unit,
		Uncertainty: math.Hypot(m.Uncertainty, n.Uncertainty),
	}, nil
}

// Sub returns m − n with uncertainties combined in quadrature.
//
// Errors:
//   - ErrUnitMismatch — if the operands carry different unit tags.
func (m Magnitude) Sub(n Magnitude) (Magnitude, error) {
	if m.Unit != n.Unit {
		return Magnitude{}, ErrUnitMismatch
	}

	return Magnitude{
		Value:       m.Value - n.Value,
		Unit:        m.Unit,
		Uncertainty: math.Hypot(m.Uncertainty, n.Uncertainty),
	}, nil
}

// Mul returns m × n with relative uncertainties combined in quadrature.
// The unit tags compose symbolically: "cm" × "1/s" → "cm·1/s",
// dimensionless operands collapse.
func (m Magnitude) Mul(n Magnitude) Magnitude {
	value := m.Value * n.Value
	rel := math.Hypot(m.RelativeUncertainty(), n.RelativeUncertainty())

	return Magnitude{
		Value:       value,
		Unit:        mulUnit(m.Unit, n.Unit),
		Uncertainty: math.Abs(value) * rel,
	}
}

// Div returns m ÷ n with relative uncertainties combined in quadrature.
// Equal unit tags cancel to dimensionless; otherwise the tags compose
// symbolically as "a/b".
//
// Errors:
//   - ErrZeroDivision — if n's value is zero.
func (m Magnitude) Div(n Magnitude) (Magnitude, error) {
	if n.Value == 0 {
		return Magnitude{}, ErrZeroDivision
	}

	value := m.Value / n.Value
	rel := math.Hypot(m.RelativeUncertainty(), n.RelativeUncertainty())

	return Magnitude{
		Value:       value,
		Unit:        divUnit(m.Unit, n.Unit),
		Uncertainty: math.Abs(value) * rel,
	}, nil
}

// Pow returns m raised to the exponent p, with the relative uncertainty
// scaled by |p|. The unit tag is kept verbatim; callers relabel the
// result with WithUnit ("cm" squared becomes "cm²" by convention, not
// by algebra).
func (m Magnitude) Pow(p float64) Magnitude {
	value := math.Pow(m.Value, p)
	rel := math.Abs(p) * m.RelativeUncertainty()

	return Magnitude{
		Value:       value,
		Unit:        m.Unit,
		Uncertainty: math.Abs(value) * rel,
	}
}

func mulUnit(a, b string) string {
	switch {
	case a == Dimensionless:
		return b
	case b == Dimensionless:
		return a
	default:
		return a + "·" + b
	}
}

func divUnit(a, b string) string {
	switch {
	case b == Dimensionless:
		return a
	case a == b:
		return Dimensionless
	case a == Dimensionless:
		return "1/" + b
	default:
		return a + "/" + b
	}
}
