// Package source models calibration radionuclide neutron sources and
// computes the ISO 8529 conventional true values of their quantities of
// interest, each with propagated uncertainty.
//
// 🚀 What is a calibration source?
//
//	A radionuclide neutron source whose characteristics were fixed at a
//	known calibration date. From those eight characteristics the package
//	derives, for any query date (and distance where it applies):
//	  • DecayTime     — elapsed days since calibration (exact)
//	  • DecayFactor   — remaining fraction per the exponential decay law
//	  • Strength      — neutron emission rate, 1/s
//	  • FluenceRate   — neutron flux at a distance, 1/cm²s
//	  • AmbientDoseEquivalentRate — H*(10) rate with air-scatter
//	    correction, uSv/h
//
// ✨ Key guarantees:
//   - every operation is a pure, constant-time closed-form evaluation
//   - the Source is never mutated; concurrent reads are safe
//   - uncertainties follow the first-order propagation rules of the
//     magnitude package, term by term
//   - every failure mode is a sentinel error (ErrMissingParameter,
//     ErrInvalidDate, ErrInvalidDistance, ErrInvalidUnit,
//     ErrInvalidParameter), matched with errors.Is
//
// ⚙️ Usage:
//
//	cf := source.Cf252()
//	t, err := cf.DecayTime("2020/05/20")                 // 2922 d
//	f, err := cf.DecayFactor("2020/05/20")               // ≈ 0.1231
//	b, err := cf.Strength("2020/05/20")                  // ≈ 6.73e7 1/s
//
//	d, _ := magnitude.New(100, source.UnitCentimeter, 1)
//	phi, err := cf.FluenceRate("2020/05/20", d)          // 1/cm²s
//	h, err := cf.AmbientDoseEquivalentRate("2020/05/20", d) // uSv/h
//
// Dates use the "YYYY/MM/DD" layout. A query date before the
// calibration date is legitimate: the decay time goes negative and the
// decay factor exceeds one (back-extrapolation), by design.
//
// Custom sources are built by filling the exported fields and come into
// force once Validate passes; every derived-quantity method validates
// first, so a half-built Source fails fast instead of producing junk.
package source
