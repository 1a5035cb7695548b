// Command neutron-source computes the conventional true values of a
// calibration radionuclide neutron source: decay time, decay factor,
// strength, fluence rate and ambient dose equivalent rate, each with
// its propagated uncertainty.
//
// Sources come from the built-in inventory or from a YAML catalog:
//
//	neutron-source strength --date 2020/05/20
//	neutron-source dose-rate --date 2020/05/20 --distance 100 --distance-uncertainty 1
//	neutron-source --catalog lab.yaml --source 241-Am/Be fluence-rate --date 2024/03/01 --distance 75
//	neutron-source sources --catalog lab.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
