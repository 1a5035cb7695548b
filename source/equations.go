// Package source - derived quantities.
//
// Every method below is a pure read of the source's characteristics
// plus the caller's date (and distance). Decay time is exact by
// convention; every other result carries an uncertainty propagated
// term by term with the magnitude package's rules, and is relabeled to
// the conventional unit of its quantity.
package source

import (
	"math"

	"github.com/xandratxan/neutron-source/magnitude"
)

// DecayTime computes the elapsed time between the calibration date and
// the given date, in days.
//
// Dates are treated as exact, so the result carries zero uncertainty.
// A date before the calibration date yields a negative decay time;
// this is legitimate back-extrapolation, not an error.
//
// Errors:
//   - ErrInvalidDate — date does not follow DateLayout.
//   - Validate errors for an incomplete or inconsistent source.
func (s *Source) DecayTime(date string) (magnitude.Magnitude, error) {
	if err := s.Validate(); err != nil {
		return magnitude.Magnitude{}, err
	}

	t, err := s.elapsedDays(date)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	return magnitude.Exact(t, UnitDays), nil
}

// DecayFactor computes the fraction of the calibration strength
// remaining on the given date:
//
//	f = exp(−ln2 · t / T₁₂)
//
// with t the decay time and T₁₂ the half life, both in days. The decay
// time is exact, so the half life is the only uncertainty contributor:
//
//	u_r(f) = |ln2 · t / T₁₂| · u_r(T₁₂)
//
// which vanishes at t = 0, where f = 1 exactly. f exceeds 1 for dates
// before calibration and decreases strictly with t.
//
// Errors: as DecayTime.
func (s *Source) DecayFactor(date string) (magnitude.Magnitude, error) {
	if err := s.Validate(); err != nil {
		return magnitude.Magnitude{}, err
	}

	t, err := s.elapsedDays(date)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	return s.decayFactorAt(t), nil
}

// Strength computes the emission rate on the given date, in 1/s:
//
//	B = B₀ · f
//
// with relative uncertainties of B₀ and f combined in quadrature. On
// the calibration date itself the calibration strength is returned
// verbatim.
//
// Errors: as DecayTime.
func (s *Source) Strength(date string) (magnitude.Magnitude, error) {
	if err := s.Validate(); err != nil {
		return magnitude.Magnitude{}, err
	}

	if date == s.CalibrationDate {
		return s.CalibrationStrength, nil
	}

	t, err := s.elapsedDays(date)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	return s.CalibrationStrength.Mul(s.decayFactorAt(t)), nil
}

// FluenceRate computes the neutron flux on the given date at the given
// distance from the source, in 1/cm²s:
//
//	φ = B · F_I · e^(−Σl) / (4π l²)
//
// with B the strength, F_I the anisotropy factor, Σ the linear
// attenuation coefficient and l the distance. Uncertainty is
// propagated through every term: B and F_I via the product rule, the
// attenuation exponential via |Σl|·√(u_r(Σ)²+u_r(l)²), and the
// inverse-square term via the correlated 2·u_r(l) of Pow.
//
// Errors:
//   - ErrInvalidDistance — distance ≤ 0.
//   - ErrInvalidUnit     — distance not in cm.
//   - as DecayTime otherwise.
func (s *Source) FluenceRate(date string, distance magnitude.Magnitude) (magnitude.Magnitude, error) {
	if err := s.Validate(); err != nil {
		return magnitude.Magnitude{}, err
	}
	if err := checkDistance(distance); err != nil {
		return magnitude.Magnitude{}, err
	}

	t, err := s.elapsedDays(date)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	direct := s.CalibrationStrength.
		Mul(s.decayFactorAt(t)).
		Mul(s.AnisotropyFactor).
		Mul(s.attenuationAt(distance))
	geometry := magnitude.Exact(4*math.Pi, magnitude.Dimensionless).Mul(distance.Pow(2))

	phi, err := direct.Div(geometry)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	return phi.WithUnit(UnitFluenceRate), nil
}

// AmbientDoseEquivalentRate computes the air-scatter-corrected ambient
// dose equivalent rate H*(10) on the given date at the given distance,
// in uSv/h:
//
//	H*(10) = h_Φ · φ · (1 + δ·A·l) · c
//
// with h_Φ the fluence-to-dose conversion factor, φ the fluence rate,
// δ the neutron effectiveness, A the total air scatter component and
// c the pSv/s → uSv/h scale. Per ISO 8529-2 the effectiveness weights
// the scattered component only, never the direct one. Uncertainty is
// propagated from φ, h_Φ and the scatter term.
//
// Errors: as FluenceRate.
func (s *Source) AmbientDoseEquivalentRate(date string, distance magnitude.Magnitude) (magnitude.Magnitude, error) {
	phi, err := s.FluenceRate(date, distance)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	scatter, err := s.airScatterAt(distance)
	if err != nil {
		return magnitude.Magnitude{}, err
	}

	h := s.FluenceToDoseConversionFactor.
		Mul(phi).
		Mul(scatter).
		Mul(magnitude.Exact(PSvPerSecondToUSvPerHour, magnitude.Dimensionless))

	return h.WithUnit(UnitUSvPerHour), nil
}

// elapsedDays returns the whole days between the calibration date and
// the given date, negative when date precedes calibration.
func (s *Source) elapsedDays(date string) (float64, error) {
	calibrated, err := parseDate(s.CalibrationDate)
	if err != nil {
		return 0, err
	}

	queried, err := parseDate(date)
	if err != nil {
		return 0, err
	}

	return queried.Sub(calibrated).Hours() / 24, nil
}

// decayFactorAt evaluates the decay law at a decay time of t days.
func (s *Source) decayFactorAt(t float64) magnitude.Magnitude {
	halfLifeDays := s.HalfLife.Value * YearsToDays
	exponent := math.Ln2 * t / halfLifeDays
	f := math.Exp(-exponent)
	rel := math.Abs(exponent) * s.HalfLife.RelativeUncertainty()

	return magnitude.Magnitude{Value: f, Unit: magnitude.Dimensionless, Uncertainty: f * rel}
}

// attenuationAt evaluates the air attenuation e^(−Σl) with the
// composite-exponential uncertainty |Σl|·√(u_r(Σ)²+u_r(l)²).
func (s *Source) attenuationAt(distance magnitude.Magnitude) magnitude.Magnitude {
	x := s.LinearAttenuationCoefficient.Value * distance.Value
	a := math.Exp(-x)
	rel := x * math.Hypot(s.LinearAttenuationCoefficient.RelativeUncertainty(), distance.RelativeUncertainty())

	return magnitude.Magnitude{Value: a, Unit: magnitude.Dimensionless, Uncertainty: a * rel}
}

// airScatterAt evaluates the inscatter correction 1 + δ·A·l.
func (s *Source) airScatterAt(distance magnitude.Magnitude) (magnitude.Magnitude, error) {
	term := s.NeutronEffectiveness.
		Mul(s.TotalAirScatterComponent).
		Mul(distance).
		WithUnit(magnitude.Dimensionless)

	return magnitude.Exact(1, magnitude.Dimensionless).Add(term)
}
