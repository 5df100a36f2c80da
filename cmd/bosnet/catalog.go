// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bosnet/cable"
)

func catalogCmd(g *globalFlags) *cobra.Command {
	var frequency float64

	cmd := &cobra.Command{
		Use:   "catalog <cables.json|cables.yaml>",
		Short: "Print derived impedance, power factor and capacity of every cable type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			c, err := cable.LoadCatalogFile(args[0], frequency)
			if err != nil {
				return err
			}
			log.Debug().Int("types", c.Len()).Float64("collection_voltage_v", c.CollectionVoltage()).Msg("catalog loaded")

			return writeJSON(cmd.OutOrStdout(), c.Types())
		},
	}

	cmd.Flags().Float64Var(&frequency, "frequency", cable.DefaultLineFrequencyHz, "line frequency, Hz")
	return cmd
}
