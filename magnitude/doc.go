// Package magnitude implements measured physical quantities: a value
// with a unit tag and a standard uncertainty, plus the arithmetic
// operators that propagate uncertainty through derived quantities.
//
// 🚀 What is a Magnitude?
//
//	A Magnitude is the triple (value, unit, uncertainty). Uncertainty
//	can be handled in absolute form (same unit as the value) or as a
//	relative fraction of the value; the two are interconvertible:
//	  • 100 ± 1 cm  ⇔  100 cm ± 1 %
//
// ✨ Key features:
//   - first-order (linear) uncertainty propagation on every operator
//   - sums/differences combine absolute uncertainties in quadrature
//   - products/quotients combine relative uncertainties in quadrature
//   - powers scale the relative uncertainty by |exponent|
//   - printable as "value ± uncertainty unit (relative%)"
//
// ⚙️ Usage:
//
//	import "github.com/xandratxan/neutron-source/magnitude"
//
//	d, err := magnitude.New(100, "cm", 1)        // absolute form
//	b, err := magnitude.NewRelative(5.471e8, "1/s", 0.013) // relative form
//
//	area := d.Pow(2).WithUnit("cm²")
//	rate, err := b.Div(area)
//
// Unit tags are informational metadata: operators compose them
// symbolically (a·b, a/b, cancellation of equal tags) but perform no
// unit conversion. Formula code relabels results to the conventional
// unit with WithUnit, exactly as laboratory worksheets do.
//
// All operations are pure value-receiver functions; a Magnitude is
// never mutated, so concurrent reads are always safe.
package magnitude
