package main

import (
	"github.com/spf13/cobra"
)

var (
	runKind     string
	runCapacity int
	runValidate bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().StringVarP(&runKind, "kind", "k", "static", "Structure to drive")
	cmd.Flags().IntVarP(&runCapacity, "capacity", "c", 1000, "Slot count for static, seqstack and seqqueue")
	cmd.Flags().BoolVar(&runValidate, "validate", false, "Check the static list's slot chains after the script")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <op> [operands...] ...",
		Short: "Run a script of operations",
		Long: `The run command executes operations in order against a fresh structure.

List operations (static, linked, circular, sequential):
  add N, addfirst N, insert N POS, get POS, remove N, removeat POS,
  clear, count, print

Stack operations (stack, seqstack): push N, pop, peek, clear, count, print
Queue operations (queue, seqqueue): enqueue N, dequeue, peek, clear, count, print

Positions are 1-based. Put "--" before a script with negative operands.

Example:
  linearctl run add 10 add 20 insert 5 1 print
  linearctl run --kind static --capacity 2 add 1 add 2 add 3
  linearctl run --kind queue enqueue 1 enqueue 2 dequeue print`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, args)
		},
	}
	return cmd
}

func runScript(cmd *cobra.Command, args []string) error {
	m, err := newMachine(runKind, runCapacity, listOptions())
	if err != nil {
		return err
	}
	if err := m.exec(cmd.OutOrStdout(), args); err != nil {
		return err
	}
	if runValidate && m.static != nil {
		return m.static.Validate()
	}
	return nil
}
