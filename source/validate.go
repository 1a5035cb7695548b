// Package source - validation shared by the derived-quantity methods.
//
// Deterministic, side-effect free checks staged from cheap to
// expensive: presence, date layout, physical range, standard units.
// Only sentinel errors from errors.go are returned, wrapped with the
// field that failed.
package source

import (
	"fmt"
	"time"

	"github.com/xandratxan/neutron-source/magnitude"
)

// Validate verifies that the source is fully characterized and
// physically consistent. Every derived-quantity method calls it before
// computing.
//
// Errors:
//   - ErrMissingParameter — a characteristic or the calibration date is unset.
//   - ErrInvalidDate      — the calibration date does not parse.
//   - ErrInvalidParameter — a value or uncertainty is outside its range.
//   - ErrInvalidUnit      — a characteristic carries a non-standard unit.
func (s *Source) Validate() error {
	// Stage 1: presence. The zero Magnitude marks an unset field.
	if s.CalibrationDate == "" {
		return fmt.Errorf("%w: calibration_date", ErrMissingParameter)
	}
	for _, c := range s.characteristics() {
		if c.value == (magnitude.Magnitude{}) {
			return fmt.Errorf("%w: %s", ErrMissingParameter, c.name)
		}
	}

	// Stage 2: calibration date layout.
	if _, err := parseDate(s.CalibrationDate); err != nil {
		return fmt.Errorf("calibration_date: %w", err)
	}

	// Stage 3: physical range. Strength and half life must be strictly
	// positive; every other characteristic only non-negative.
	// Uncertainties are re-checked because fields are directly settable.
	for _, c := range s.characteristics() {
		if c.value.Value < 0 || (c.strictPositive && c.value.Value == 0) {
			return fmt.Errorf("%w: %s value %g", ErrInvalidParameter, c.name, c.value.Value)
		}
		if c.value.Uncertainty < 0 {
			return fmt.Errorf("%w: %s uncertainty %g", ErrInvalidParameter, c.name, c.value.Uncertainty)
		}
	}

	// Stage 4: standard units.
	for _, c := range s.characteristics() {
		if want := StandardUnits[c.name]; c.value.Unit != want {
			return fmt.Errorf("%w: %s is %q, want %q", ErrInvalidUnit, c.name, c.value.Unit, want)
		}
	}

	return nil
}

// parseDate parses a YYYY/MM/DD date string.
func parseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	return t, nil
}

// checkDistance verifies a caller-supplied distance: unit cm, value
// strictly positive.
func checkDistance(distance magnitude.Magnitude) error {
	if distance.Unit != UnitCentimeter {
		return fmt.Errorf("%w: distance is %q, want %q", ErrInvalidUnit, distance.Unit, UnitCentimeter)
	}
	if distance.Value <= 0 {
		return fmt.Errorf("%w: %g cm", ErrInvalidDistance, distance.Value)
	}
	if distance.Uncertainty < 0 {
		return fmt.Errorf("%w: distance uncertainty %g", ErrInvalidParameter, distance.Uncertainty)
	}

	return nil
}
