// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bosnet/collection"
	"github.com/katalvlaran/bosnet/config"
)

func designCmd(g *globalFlags) *cobra.Command {
	var (
		penalty float64
		split   bool
		summary bool
	)

	cmd := &cobra.Command{
		Use:   "design <plant.yaml>",
		Short: "Design the collection network of a plant",
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
			log.Debug().
				Str("plant", p.Name).
				Strs("technologies", p.TechnologyNames()).
				Int("cable_types", catalog.Len()).
				Msg("plant loaded")

			opts := append(p.DesignOptions(), collection.WithLogger(log))
			if cmd.Flags().Changed("penalty") {
				opts = append(opts, collection.WithDepthPenalty(penalty))
			}
			d := collection.New(catalog, opts...)

			if split {
				nets, err := d.DesignNetworks(plant, p.NetworkGroups())
				if err != nil {
					return err
				}
				if summary {
					out := make(map[string]collection.Summary, len(nets))
					for name, r := range nets {
						out[name] = r.Summary()
					}
					return writeJSON(cmd.OutOrStdout(), out)
				}
				return writeJSON(cmd.OutOrStdout(), nets)
			}

			res, err := d.Design(plant)
			if err != nil {
				return err
			}
			if summary {
				return writeJSON(cmd.OutOrStdout(), res.Summary())
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().Float64Var(&penalty, "penalty", 0, "depth penalty w (overrides the plant file)")
	cmd.Flags().BoolVar(&split, "split", false, "design one network per technology group")
	cmd.Flags().BoolVar(&summary, "summary", false, "print headline numbers only")
	return cmd
}
