// Package catalog loads laboratory inventories of calibration neutron
// sources from YAML definition files.
//
// A catalog file lists named sources with their eight characteristics;
// each characteristic states its value, unit and either an absolute or
// a relative uncertainty:
//
//	sources:
//	  - name: 252-Cf
//	    calibration_date: 2012/05/20
//	    calibration_strength: {value: 5.471e+08, unit: 1/s, relative_uncertainty: 0.013}
//	    half_life:            {value: 2.6470, unit: y, uncertainty: 0.0026}
//	    anisotropy_factor:    {value: 1.051, uncertainty: 0.019}
//	    ...
//
// Every loaded source passes source.Validate before the catalog is
// returned, so a catalog in hand is a catalog of usable sources.
// Default returns the built-in inventory (currently the published
// 252-Cf reference source) without touching the filesystem.
package catalog
