package catalog

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/xandratxan/neutron-source/magnitude"
	"github.com/xandratxan/neutron-source/source"
)

var (
	// ErrUnknownSource indicates a lookup of a name the catalog does not hold.
	ErrUnknownSource = errors.New("catalog: unknown source")

	// ErrDuplicateSource indicates two definitions sharing one name.
	ErrDuplicateSource = errors.New("catalog: duplicate source name")

	// ErrConflictingUncertainty indicates a characteristic stating both
	// an absolute and a relative uncertainty.
	ErrConflictingUncertainty = errors.New("catalog: uncertainty and relative_uncertainty are mutually exclusive")
)

// Catalog is an immutable, name-indexed inventory of validated sources.
type Catalog struct {
	sources map[string]*source.Source
}

// file mirrors the YAML document layout.
type file struct {
	Sources []entry `yaml:"sources"`
}

type entry struct {
	Name                          string   `yaml:"name"`
	CalibrationDate               string   `yaml:"calibration_date"`
	CalibrationStrength           quantity `yaml:"calibration_strength"`
	HalfLife                      quantity `yaml:"half_life"`
	AnisotropyFactor              quantity `yaml:"anisotropy_factor"`
	LinearAttenuationCoefficient  quantity `yaml:"linear_attenuation_coefficient"`
	FluenceToDoseConversionFactor quantity `yaml:"fluence_to_dose_conversion_factor"`
	NeutronEffectiveness          quantity `yaml:"neutron_effectiveness"`
	TotalAirScatterComponent      quantity `yaml:"total_air_scatter_component"`
}

// quantity is one characteristic in YAML form. Uncertainty may be
// stated in absolute or relative form, never both.
type quantity struct {
	Value               float64  `yaml:"value"`
	Unit                string   `yaml:"unit"`
	Uncertainty         *float64 `yaml:"uncertainty"`
	RelativeUncertainty *float64 `yaml:"relative_uncertainty"`
}

func (q quantity) magnitude() (magnitude.Magnitude, error) {
	switch {
	case q.Uncertainty != nil && q.RelativeUncertainty != nil:
		return magnitude.Magnitude{}, ErrConflictingUncertainty
	case q.RelativeUncertainty != nil:
		return magnitude.NewRelative(q.Value, q.Unit, *q.RelativeUncertainty)
	case q.Uncertainty != nil:
		return magnitude.New(q.Value, q.Unit, *q.Uncertainty)
	default:
		return magnitude.Exact(q.Value, q.Unit), nil
	}
}

// Load reads a YAML catalog file, validating every source definition.
//
// Errors:
//   - ErrDuplicateSource         — two entries share a name.
//   - ErrConflictingUncertainty  — a characteristic states both uncertainty forms.
//   - source.Validate errors     — an entry is incomplete or inconsistent.
//   - I/O and YAML syntax errors from reading the file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	var f file
	if err = yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("catalog: parse %s: %w", path, err)
	}

	c := &Catalog{sources: make(map[string]*source.Source, len(f.Sources))}
	for _, e := range f.Sources {
		src, err := e.source()
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", e.Name, err)
		}
		if _, exists := c.sources[src.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSource, src.Name)
		}
		c.sources[src.Name] = src
	}

	return c, nil
}

// Default returns the built-in inventory: the published 252-Cf
// reference source.
func Default() *Catalog {
	cf := source.Cf252()

	return &Catalog{sources: map[string]*source.Source{cf.Name: cf}}
}

// Get returns the source with the given name.
//
// Errors:
//   - ErrUnknownSource — no source by that name.
func (c *Catalog) Get(name string) (*source.Source, error) {
	src, ok := c.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}

	return src, nil
}

// Names returns the sorted names of all cataloged sources.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Len returns the number of cataloged sources.
func (c *Catalog) Len() int {
	return len(c.sources)
}

// source builds and validates the Source an entry describes.
func (e entry) source() (*source.Source, error) {
	src := &source.Source{Name: e.Name, CalibrationDate: e.CalibrationDate}

	fields := []struct {
		name string
		dst  *magnitude.Magnitude
		q    quantity
	}{
		{"calibration_strength", &src.CalibrationStrength, e.CalibrationStrength},
		{"half_life", &src.HalfLife, e.HalfLife},
		{"anisotropy_factor", &src.AnisotropyFactor, e.AnisotropyFactor},
		{"linear_attenuation_coefficient", &src.LinearAttenuationCoefficient, e.LinearAttenuationCoefficient},
		{"fluence_to_dose_conversion_factor", &src.FluenceToDoseConversionFactor, e.FluenceToDoseConversionFactor},
		{"neutron_effectiveness", &src.NeutronEffectiveness, e.NeutronEffectiveness},
		{"total_air_scatter_component", &src.TotalAirScatterComponent, e.TotalAirScatterComponent},
	}
	for _, f := range fields {
		m, err := f.q.magnitude()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = m
	}

	if err := src.Validate(); err != nil {
		return nil, err
	}

	return src, nil
}
