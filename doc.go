// Package neutronsource characterizes calibration radionuclide neutron
// sources and computes the ISO 8529 conventional true values of their
// quantities of interest, propagating measurement uncertainty through
// every step.
//
// 🚀 What is neutron-source?
//
//	A small, pure-computation library that brings together:
//		• Magnitude: a (value, unit, uncertainty) type with propagation arithmetic
//		• Source: the eight characteristic parameters of a calibration source
//		• Derived quantities: decay time, decay factor, strength,
//		  fluence rate and ambient dose equivalent rate
//		• A published 252-Cf reference source, ready to use
//		• A YAML catalog loader for laboratory source inventories
//
// ✨ Why choose neutron-source?
//
//   - Closed-form — every quantity is a constant-time evaluation, no simulation
//   - Honest uncertainties — first-order propagation through every operator
//   - Pure Go — no cgo, deterministic, safe for concurrent reads
//   - Typed errors — sentinel values for every failure mode, matched with errors.Is
//
// Everything is organized under three subpackages plus a thin CLI:
//
//	magnitude/ — measured-quantity value type and propagation operators
//	source/    — source model, 252-Cf preset and the five derived quantities
//	catalog/   — YAML-defined source inventories
//	cmd/       — the neutron-source command-line tool
//
// Quick example:
//
//	cf := source.Cf252()
//	b, err := cf.Strength("2020/05/20")
//	if err != nil { ... }
//	fmt.Println(b)
//
// Dive into each package's doc.go and example_test.go for full walkthroughs.
package neutronsource
