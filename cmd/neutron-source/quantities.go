package main

import (
	"github.com/spf13/cobra"

	"github.com/xandratxan/neutron-source/magnitude"
	"github.com/xandratxan/neutron-source/source"
)

// dateQuantity builds a subcommand for a quantity that depends on the
// query date only.
func dateQuantity(opts *rootOptions, use, short string,
	compute func(*source.Source, string) (magnitude.Magnitude, error)) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := opts.lookup()
			if err != nil {
				return err
			}
			m, err := compute(src, date)
			if err != nil {
				return err
			}
			cmd.Println(m)

			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "query date, YYYY/MM/DD")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

// distanceQuantity builds a subcommand for a quantity that depends on
// the query date and a distance from the source.
func distanceQuantity(opts *rootOptions, use, short string,
	compute func(*source.Source, string, magnitude.Magnitude) (magnitude.Magnitude, error)) *cobra.Command {
	var (
		date        string
		distance    float64
		uncertainty float64
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := opts.lookup()
			if err != nil {
				return err
			}
			d, err := magnitude.New(distance, source.UnitCentimeter, uncertainty)
			if err != nil {
				return err
			}
			m, err := compute(src, date, d)
			if err != nil {
				return err
			}
			cmd.Println(m)

			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "query date, YYYY/MM/DD")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the source, cm")
	cmd.Flags().Float64Var(&uncertainty, "distance-uncertainty", 0, "absolute uncertainty of the distance, cm")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("distance")

	return cmd
}

func newDecayTimeCmd(opts *rootOptions) *cobra.Command {
	return dateQuantity(opts, "decay-time", "Elapsed days since calibration",
		(*source.Source).DecayTime)
}

func newDecayFactorCmd(opts *rootOptions) *cobra.Command {
	return dateQuantity(opts, "decay-factor", "Remaining fraction of the calibration strength",
		(*source.Source).DecayFactor)
}

func newStrengthCmd(opts *rootOptions) *cobra.Command {
	return dateQuantity(opts, "strength", "Neutron emission rate on a date, 1/s",
		(*source.Source).Strength)
}

func newFluenceRateCmd(opts *rootOptions) *cobra.Command {
	return distanceQuantity(opts, "fluence-rate", "Neutron flux at a distance, 1/cm²s",
		(*source.Source).FluenceRate)
}

func newDoseRateCmd(opts *rootOptions) *cobra.Command {
	return distanceQuantity(opts, "dose-rate", "Ambient dose equivalent rate H*(10) at a distance, uSv/h",
		(*source.Source).AmbientDoseEquivalentRate)
}
