package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xandratxan/neutron-source/magnitude"
	"github.com/xandratxan/neutron-source/source"
)

// TestCf252_Characteristics pins the published preset values.
func TestCf252_Characteristics(t *testing.T) {
	cf := source.Cf252()

	assert.Equal(t, "252-Cf", cf.Name)
	assert.Equal(t, "2012/05/20", cf.CalibrationDate)
	assert.Equal(t, "252-Cf radionuclide neutron source", cf.String())

	assert.Equal(t, 5.471e8, cf.CalibrationStrength.Value)
	assert.InEpsilon(t, 0.013, cf.CalibrationStrength.RelativeUncertainty(), 1e-12)
	assert.Equal(t, 2.6470, cf.HalfLife.Value)
	assert.Equal(t, 0.0026, cf.HalfLife.Uncertainty)
	assert.Equal(t, 1.051, cf.AnisotropyFactor.Value)
	assert.Equal(t, 1055e-7, cf.LinearAttenuationCoefficient.Value)
	assert.Equal(t, 385.0, cf.FluenceToDoseConversionFactor.Value)
	assert.Equal(t, 0.5, cf.NeutronEffectiveness.Value)
	assert.Equal(t, 1.2e-4, cf.TotalAirScatterComponent.Value)

	require.NoError(t, cf.Validate())
}

// TestValidate_MissingParameter zeroes each characteristic in turn and
// expects ErrMissingParameter from any derived-quantity call.
func TestValidate_MissingParameter(t *testing.T) {
	clear := []struct {
		name  string
		unset func(*source.Source)
	}{
		{"calibration_date", func(s *source.Source) { s.CalibrationDate = "" }},
		{"calibration_strength", func(s *source.Source) { s.CalibrationStrength = magnitude.Magnitude{} }},
		{"half_life", func(s *source.Source) { s.HalfLife = magnitude.Magnitude{} }},
		{"anisotropy_factor", func(s *source.Source) { s.AnisotropyFactor = magnitude.Magnitude{} }},
		{"linear_attenuation_coefficient", func(s *source.Source) { s.LinearAttenuationCoefficient = magnitude.Magnitude{} }},
		{"fluence_to_dose_conversion_factor", func(s *source.Source) { s.FluenceToDoseConversionFactor = magnitude.Magnitude{} }},
		{"neutron_effectiveness", func(s *source.Source) { s.NeutronEffectiveness = magnitude.Magnitude{} }},
		{"total_air_scatter_component", func(s *source.Source) { s.TotalAirScatterComponent = magnitude.Magnitude{} }},
	}

	for _, tc := range clear {
		t.Run(tc.name, func(t *testing.T) {
			s := source.Cf252()
			tc.unset(s)

			_, err := s.Strength("2020/05/20")
			assert.ErrorIs(t, err, source.ErrMissingParameter)
			assert.ErrorContains(t, err, tc.name)
		})
	}
}

// TestValidate_InvalidParameter covers physical-range violations.
func TestValidate_InvalidParameter(t *testing.T) {
	t.Run("negative value", func(t *testing.T) {
		s := source.Cf252()
		s.AnisotropyFactor.Value = -1.051

		assert.ErrorIs(t, s.Validate(), source.ErrInvalidParameter)
	})

	t.Run("zero half life", func(t *testing.T) {
		s := source.Cf252()
		s.HalfLife.Value = 0
		s.HalfLife.Uncertainty = 0

		assert.ErrorIs(t, s.Validate(), source.ErrInvalidParameter)
	})

	t.Run("negative uncertainty set directly", func(t *testing.T) {
		s := source.Cf252()
		s.NeutronEffectiveness.Uncertainty = -0.1

		assert.ErrorIs(t, s.Validate(), source.ErrInvalidParameter)
	})
}

// TestValidate_InvalidUnit covers non-standard unit tags on
// characteristics and on the distance argument.
func TestValidate_InvalidUnit(t *testing.T) {
	s := source.Cf252()
	s.HalfLife.Unit = "d"
	assert.ErrorIs(t, s.Validate(), source.ErrInvalidUnit)

	cf := source.Cf252()
	meters, err := magnitude.New(1, "m", 0.01)
	require.NoError(t, err)
	_, err = cf.FluenceRate("2020/05/20", meters)
	assert.ErrorIs(t, err, source.ErrInvalidUnit)
}

// TestInvalidDate covers unparseable date strings for both the query
// date and the calibration date.
func TestInvalidDate(t *testing.T) {
	cf := source.Cf252()

	for _, date := range []string{"2020-05-20", "20/05/2020", "2020/13/01", "yesterday", "2020/02/30"} {
		_, err := cf.DecayTime(date)
		assert.ErrorIs(t, err, source.ErrInvalidDate, "date %q must be rejected", date)
	}

	s := source.Cf252()
	s.CalibrationDate = "May 20th 2012"
	_, err := s.DecayTime("2020/05/20")
	assert.ErrorIs(t, err, source.ErrInvalidDate)
}

// TestInvalidDistance covers zero and negative distances.
func TestInvalidDistance(t *testing.T) {
	cf := source.Cf252()

	for _, cm := range []float64{0, -100} {
		d, err := magnitude.New(cm, source.UnitCentimeter, 1)
		require.NoError(t, err)

		_, err = cf.FluenceRate("2020/05/20", d)
		assert.ErrorIs(t, err, source.ErrInvalidDistance, "distance %g cm must be rejected", cm)
		_, err = cf.AmbientDoseEquivalentRate("2020/05/20", d)
		assert.ErrorIs(t, err, source.ErrInvalidDistance)
	}
}

// TestComputationsDoNotMutate verifies that derived-quantity calls
// leave the source untouched.
func TestComputationsDoNotMutate(t *testing.T) {
	cf := source.Cf252()
	snapshot := *cf

	d, err := magnitude.New(100, source.UnitCentimeter, 1)
	require.NoError(t, err)
	_, err = cf.AmbientDoseEquivalentRate("2020/05/20", d)
	require.NoError(t, err)

	assert.Equal(t, snapshot, *cf)
}
