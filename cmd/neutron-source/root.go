package main

import (
	"github.com/spf13/cobra"

	"github.com/xandratxan/neutron-source/catalog"
	"github.com/xandratxan/neutron-source/source"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	catalogPath string
	sourceName  string
}

// inventory loads the selected catalog, falling back to the built-in
// inventory when no --catalog was given.
func (o *rootOptions) inventory() (*catalog.Catalog, error) {
	if o.catalogPath == "" {
		return catalog.Default(), nil
	}

	return catalog.Load(o.catalogPath)
}

// lookup resolves the selected source from the selected catalog.
func (o *rootOptions) lookup() (*source.Source, error) {
	c, err := o.inventory()
	if err != nil {
		return nil, err
	}

	return c.Get(o.sourceName)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "neutron-source",
		Short:        "Conventional true values of calibration neutron sources",
		Long:         "Computes ISO 8529 derived quantities of calibration radionuclide\nneutron sources with propagated measurement uncertainty.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "YAML source catalog (default: built-in inventory)")
	root.PersistentFlags().StringVar(&opts.sourceName, "source", "252-Cf", "name of the source to characterize")

	root.AddCommand(
		newSourcesCmd(opts),
		newDecayTimeCmd(opts),
		newDecayFactorCmd(opts),
		newStrengthCmd(opts),
		newFluenceRateCmd(opts),
		newDoseRateCmd(opts),
	)

	return root
}

// newSourcesCmd lists the sources the selected catalog holds.
func newSourcesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the sources available in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.inventory()
			if err != nil {
				return err
			}
			for _, name := range c.Names() {
				cmd.Println(name)
			}

			return nil
		},
	}
}
