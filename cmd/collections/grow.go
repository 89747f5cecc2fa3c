package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/a-peyrard/collections/internal/growth"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

func newGrowCommand(a *app) *cobra.Command {
	var (
		appends     int
		capacities  []int
		parallelism int
		plot        bool
	)

	cmd := &cobra.Command{
		Use:   "grow",
		Short: "measure buffer expansions for a number of appends",
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("appends") {
				appends = *a.settings.Growth.Appends
			}
			if !flags.Changed("capacities") {
				capacities = a.settings.Growth.Capacities
			}
			if !flags.Changed("parallel") {
				parallelism = a.settings.Growth.Parallelism
			}

			reports, err := growth.Run(cmd.Context(), a.logger, appends, capacities, parallelism)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tCAPACITY\tAPPENDS\tEXPANSIONS\tEXPECTED\tCOPIED\tFINAL")
			mismatches := 0
			for _, report := range reports {
				if !report.Matches() {
					mismatches++
				}
				_, _ = fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\t%d\n",
					report.ID.String()[:8],
					report.InitialCapacity,
					report.Appends,
					report.Expansions,
					report.Expected,
					report.ExpandMoveCounter,
					report.FinalCapacity,
				)
			}
			if err = w.Flush(); err != nil {
				return err
			}

			if plot {
				for _, report := range reports {
					if len(report.Capacities) == 0 {
						continue
					}
					series := make([]float64, len(report.Capacities))
					for i, capacity := range report.Capacities {
						series[i] = float64(capacity)
					}
					_, _ = fmt.Fprintln(out)
					_, _ = fmt.Fprintln(out, asciigraph.Plot(series,
						asciigraph.Height(10),
						asciigraph.Width(60),
						asciigraph.Caption(fmt.Sprintf("capacity per append, initial capacity %d", report.InitialCapacity)),
					))
				}
			}

			if mismatches > 0 {
				return fmt.Errorf("%d experiments did not expand the expected number of times", mismatches)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&appends, "appends", 0, "number of appends per experiment (default from configuration)")
	cmd.Flags().IntSliceVar(&capacities, "capacities", nil, "initial capacities to compare (default from configuration)")
	cmd.Flags().IntVar(&parallelism, "parallel", 0, "maximum number of experiments run at once, 0 for no limit")
	cmd.Flags().BoolVar(&plot, "plot", false, "plot the capacity of each list after every append")
	return cmd
}
