package main

import (
	"errors"
	"fmt"

	"github.com/a-peyrard/collections/arraylist"
	"github.com/a-peyrard/collections/internal/script"
	"github.com/spf13/cobra"
)

func newExecCommand(a *app) *cobra.Command {
	var (
		scriptFile string
		capacity   int
	)

	cmd := &cobra.Command{
		Use:   "exec [op...]",
		Short: "apply operations to a list of strings",
		Long: `Apply operations to a new list of strings and print the outcome.

Operations are given as arguments, in compact form, and/or in a YAML script:
  append:<value>  insert:<position>:<value>  remove:<position>
  get:<position>  set:<position>:<value>     clear`,
		Example: "  collections exec append:1 append:2 append:3 remove:1 insert:1:9",
		RunE: func(cmd *cobra.Command, args []string) error {
			var ops []script.Op
			if scriptFile != "" {
				fromFile, err := script.LoadFile(scriptFile)
				if err != nil {
					return err
				}
				ops = append(ops, fromFile...)
			}
			fromArgs, err := script.ParseOps(args)
			if err != nil {
				return err
			}
			ops = append(ops, fromArgs...)
			if len(ops) == 0 {
				return errors.New("no operation given")
			}

			if !cmd.Flags().Changed("capacity") {
				capacity = *a.settings.InitialCapacity
			}
			if capacity < 0 {
				return fmt.Errorf("capacity must not be negative, got %d", capacity)
			}

			list := arraylist.New[string](arraylist.WithInitialCapacity(capacity), arraylist.WithLogger(a.logger))
			results := script.Run(list, ops, a.logger)

			out := cmd.OutOrStdout()
			for _, result := range results {
				switch {
				case result.Err != nil:
					_, _ = fmt.Fprintf(out, "%-20s error: %v\n", result.Op, result.Err)
				case result.Output != "":
					_, _ = fmt.Fprintf(out, "%-20s -> %s\n", result.Op, result.Output)
				default:
					_, _ = fmt.Fprintf(out, "%-20s ok\n", result.Op)
				}
			}
			_, _ = fmt.Fprintf(out, "list: %s\n", list)
			_, _ = fmt.Fprintf(out,
				"size=%d capacity=%d remaining=%d moves=%d expansions=%d expansion_moves=%d\n",
				list.Size(), list.Capacity(), list.RemainingCapacity(),
				list.MoveCounter(), list.ExpandCounter(), list.ExpandMoveCounter(),
			)

			if failed := script.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d operations failed", failed, len(results))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scriptFile, "script", "", "YAML file of operations, applied before the arguments")
	cmd.Flags().IntVar(&capacity, "capacity", 0, "initial capacity of the list (default from configuration)")
	return cmd
}
