package source

import (
	"fmt"

	"github.com/xandratxan/neutron-source/magnitude"
)

// DateLayout is the calendar-date layout accepted by every operation,
// "YYYY/MM/DD" in Go reference-time form.
const DateLayout = "2006/01/02"

// Conversion constants. Both are defined exactly by convention and
// contribute no uncertainty.
const (
	// YearsToDays converts half lives from years to days.
	YearsToDays = 365.242

	// PSvPerSecondToUSvPerHour converts dose rates from pSv/s to uSv/h
	// (3600 s/h × 1e-6 uSv/pSv).
	PSvPerSecondToUSvPerHour = 0.0036
)

// Standard units of the source characteristics and derived quantities.
const (
	UnitPerSecond     = "1/s"      // calibration strength, strength
	UnitYears         = "y"        // half life
	UnitPerCentimeter = "1/cm"     // linear attenuation coefficient, air scatter component
	UnitPSvCm2        = "pSv·cm²"  // fluence-to-dose conversion factor
	UnitCentimeter    = "cm"       // distance
	UnitDays          = "d"        // decay time
	UnitFluenceRate   = "1/cm²s"   // fluence rate
	UnitUSvPerHour    = "uSv/h"    // ambient dose equivalent rate
)

// StandardUnits maps each characteristic to the unit it must carry.
// Dimensionless characteristics map to the empty tag.
var StandardUnits = map[string]string{
	"calibration_strength":              UnitPerSecond,
	"half_life":                         UnitYears,
	"anisotropy_factor":                 magnitude.Dimensionless,
	"linear_attenuation_coefficient":    UnitPerCentimeter,
	"fluence_to_dose_conversion_factor": UnitPSvCm2,
	"neutron_effectiveness":             magnitude.Dimensionless,
	"total_air_scatter_component":       UnitPerCentimeter,
}

// Source is one calibration radionuclide neutron source: a name, a
// calibration date and the seven measured characteristics fixed on
// that date.
//
// Fields are plain and directly settable; nothing is checked on
// assignment. Validate (called by every derived-quantity method)
// checks presence, physical range and standard units in one pass.
// Computations never mutate the Source.
type Source struct {
	// Name labels the source ("252-Cf", "241-Am/Be", ...).
	Name string

	// CalibrationDate is the reference date of the characteristics,
	// in DateLayout form.
	CalibrationDate string

	// CalibrationStrength B₀ is the emission rate on the calibration
	// date, in 1/s.
	CalibrationStrength magnitude.Magnitude

	// HalfLife T₁/₂ in years.
	HalfLife magnitude.Magnitude

	// AnisotropyFactor F_I(θ), dimensionless.
	AnisotropyFactor magnitude.Magnitude

	// LinearAttenuationCoefficient Σ of air, in 1/cm.
	LinearAttenuationCoefficient magnitude.Magnitude

	// FluenceToDoseConversionFactor h_Φ, in pSv·cm².
	FluenceToDoseConversionFactor magnitude.Magnitude

	// NeutronEffectiveness δ of the scattered component, dimensionless.
	NeutronEffectiveness magnitude.Magnitude

	// TotalAirScatterComponent A, in 1/cm.
	TotalAirScatterComponent magnitude.Magnitude
}

// String renders the source as "<name> radionuclide neutron source".
func (s *Source) String() string {
	return fmt.Sprintf("%s radionuclide neutron source", s.Name)
}

// characteristic pairs a named Magnitude field with its validation
// contract, so Validate can sweep all seven uniformly.
type characteristic struct {
	name           string
	value          magnitude.Magnitude
	strictPositive bool
}

func (s *Source) characteristics() []characteristic {
	return []characteristic{
		{"calibration_strength", s.CalibrationStrength, true},
		{"half_life", s.HalfLife, true},
		{"anisotropy_factor", s.AnisotropyFactor, false},
		{"linear_attenuation_coefficient", s.LinearAttenuationCoefficient, false},
		{"fluence_to_dose_conversion_factor", s.FluenceToDoseConversionFactor, false},
		{"neutron_effectiveness", s.NeutronEffectiveness, false},
		{"total_air_scatter_component", s.TotalAirScatterComponent, false},
	}
}
