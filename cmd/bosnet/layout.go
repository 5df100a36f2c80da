// SPDX-License-Identifier: MIT

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bosnet/config"
	"github.com/katalvlaran/bosnet/gridlayout"
)

func layoutCmd(g *globalFlags) *cobra.Command {
	var (
		mode string
		f    gridlayout.Options
	)

	cmd := &cobra.Command{
		Use:   "layout [plant.yaml]",
		Short: "Arrange containers on a pad grid and estimate cable and road lengths",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := g.logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			opts := gridlayout.DefaultOptions()
			if len(args) == 1 {
				p, err := config.Load(args[0])
				if err != nil {
					return err
				}
				lo, err := p.LayoutOptions()
				switch {
				case err == nil:
					opts = lo
				case !errors.Is(err, config.ErrNoLayout):
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("mode") {
				if opts.Mode, err = gridlayout.ParseMode(mode); err != nil {
					return err
				}
			}
			overrideInt(flags.Changed("units"), &opts.Units, f.Units)
			overrideInt(flags.Changed("rows"), &opts.Rows, f.Rows)
			overrideInt(flags.Changed("per-row"), &opts.PerRow, f.PerRow)
			overrideInt(flags.Changed("leftover"), &opts.Leftover, f.Leftover)
			overrideFloat(flags.Changed("unit-length"), &opts.UnitLength, f.UnitLength)
			overrideFloat(flags.Changed("unit-width"), &opts.UnitWidth, f.UnitWidth)
			overrideFloat(flags.Changed("buffer"), &opts.PadBuffer, f.PadBuffer)
			overrideFloat(flags.Changed("road"), &opts.RoadWidth, f.RoadWidth)

			l, err := gridlayout.Optimize(opts)
			if err != nil {
				return err
			}
			log.Info().
				Str("mode", string(l.Mode)).
				Int("rows", l.TotalRows).
				Int("per_row", l.PerRow).
				Float64("cable_m", l.CableLengthM).
				Float64("road_m", l.RoadLengthM).
				Msg("layout optimized")

			return writeJSON(cmd.OutOrStdout(), l)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mode, "mode", string(gridlayout.ModeAspect), "linear|aspect|custom")
	flags.IntVar(&f.Units, "units", 0, "number of units")
	flags.IntVar(&f.Rows, "rows", 0, "full rows (custom mode)")
	flags.IntVar(&f.PerRow, "per-row", 0, "units per row (custom mode)")
	flags.IntVar(&f.Leftover, "leftover", 0, "units in the partial row (custom mode)")
	flags.Float64Var(&f.UnitLength, "unit-length", 8, "unit length, m")
	flags.Float64Var(&f.UnitWidth, "unit-width", 3, "unit width, m")
	flags.Float64Var(&f.PadBuffer, "buffer", 1, "pad buffer around each unit, m")
	flags.Float64Var(&f.RoadWidth, "road", 5, "road width, m")
	return cmd
}

func overrideInt(changed bool, dst *int, v int) {
	if changed {
		*dst = v
	}
}

func overrideFloat(changed bool, dst *float64, v float64) {
	if changed {
		*dst = v
	}
}
