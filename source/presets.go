package source

import "github.com/xandratxan/neutron-source/magnitude"

// Cf252 returns the published 252-Cf reference source, calibrated on
// 2012/05/20 (certificate DT-LMRI-2201).
//
// Characteristics:
//
//	B₀  = 5.471·10⁸ 1/s ± 1.3 %     T₁₂ = 2.6470 y ± 0.0026 y
//	F_I = 1.051 ± 0.019             Σ   = 1055·10⁻⁷ 1/cm ± 1.5 %
//	h_Φ = 385 pSv·cm² ± 1 %         δ   = 0.5 ± 0.1
//	A   = 1.2·10⁻⁴ 1/cm ± 15 %
//
// The returned value is a plain Source; callers may copy and adjust it
// to describe a sibling source.
func Cf252() *Source {
	return &Source{
		Name:            "252-Cf",
		CalibrationDate: "2012/05/20",
		CalibrationStrength: magnitude.Magnitude{
			Value: 5.471e8, Unit: UnitPerSecond, Uncertainty: 5.471e8 * 0.013,
		},
		HalfLife: magnitude.Magnitude{
			Value: 2.6470, Unit: UnitYears, Uncertainty: 0.0026,
		},
		AnisotropyFactor: magnitude.Magnitude{
			Value: 1.051, Unit: magnitude.Dimensionless, Uncertainty: 0.019,
		},
		LinearAttenuationCoefficient: magnitude.Magnitude{
			Value: 1055e-7, Unit: UnitPerCentimeter, Uncertainty: 1055e-7 * 0.015,
		},
		FluenceToDoseConversionFactor: magnitude.Magnitude{
			Value: 385, Unit: UnitPSvCm2, Uncertainty: 385 * 0.01,
		},
		NeutronEffectiveness: magnitude.Magnitude{
			Value: 0.5, Unit: magnitude.Dimensionless, Uncertainty: 0.1,
		},
		TotalAirScatterComponent: magnitude.Magnitude{
			Value: 1.2e-4, Unit: UnitPerCentimeter, Uncertainty: 1.2e-4 * 0.15,
		},
	}
}
