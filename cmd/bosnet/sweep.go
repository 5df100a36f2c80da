// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bosnet/collection"
	"github.com/katalvlaran/bosnet/config"
)

func sweepCmd(g *globalFlags) *cobra.Command {
	var (
		penalties []float64
		parallel  int
	)

	cmd := &cobra.Command{
		Use:   "sweep <plant.yaml>",
		Short: "Compare designs across depth penalties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			p, err := config.Load(args[0])
			if err != nil {
				return err
			}
			plant, err := p.Site()
			if err != nil {
				return err
			}
			catalog, err := p.Catalog(p.Dir())
			if err != nil {
				return err
			}

			d := collection.New(catalog, append(p.DesignOptions(), collection.WithLogger(log))...)
			results, err := collection.Sweep(cmd.Context(), d, plant, penalties, parallel)
			if err != nil {
				return err
			}

			out := make([]collection.Summary, len(results))
			for i, r := range results {
				out[i] = r.Summary()
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().Float64SliceVar(&penalties, "penalties", []float64{0}, "comma-separated depth penalties")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "maximum concurrent designs (0 = unlimited)")
	return cmd
}
