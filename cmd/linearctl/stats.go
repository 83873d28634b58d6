package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	statsCapacity int
	statsJSON     bool
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVarP(&statsCapacity, "capacity", "c", 1000, "Slot count of the static list")
	cmd.Flags().BoolVar(&statsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [op [operands...] ...]",
		Short: "Show slot pool statistics of a static list",
		Long: `The stats command runs a script against a static list and then prints
the slot pool statistics: capacity, slots in use, free slots, and the
cumulative allocation, release and exhaustion counters.

Output of print, get and the other value-producing ops goes to stdout
ahead of the report. With --json it goes to stderr instead, so stdout
holds only the JSON document.

Example:
  linearctl stats --capacity 4 add 1 add 2 removeat 1
  linearctl stats --capacity 1 add 1 add 2 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args)
		},
	}
	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	m, err := newMachine("static", statsCapacity, listOptions())
	if err != nil {
		return err
	}
	// Exhaustion is what the counters are for, so a failing op does not
	// stop the report.
	out := cmd.OutOrStdout()
	scriptOut := out
	if statsJSON {
		scriptOut = cmd.ErrOrStderr()
	}
	scriptErr := m.exec(scriptOut, args)
	if scriptErr != nil {
		printError(cmd.ErrOrStderr(), "%v\n", scriptErr)
	}

	stats := m.static.Metrics()
	if statsJSON {
		return printJSON(out, stats)
	}
	fmt.Fprintf(out, "Capacity:     %d\n", stats.Capacity)
	fmt.Fprintf(out, "In use:       %d\n", stats.InUse)
	fmt.Fprintf(out, "Free:         %d\n", stats.Free)
	fmt.Fprintf(out, "Utilization:  %.2f%%\n", stats.Utilization*100)
	fmt.Fprintf(out, "Allocations:  %d\n", stats.Allocations)
	fmt.Fprintf(out, "Releases:     %d\n", stats.Releases)
	fmt.Fprintf(out, "Exhausted:    %d\n", stats.Exhausted)
	return nil
}
