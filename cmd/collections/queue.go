package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/a-peyrard/collections/arraylist"
	"github.com/a-peyrard/collections/fn"
	"github.com/a-peyrard/collections/heap"
	"github.com/spf13/cobra"
)

func newQueueCommand(a *app) *cobra.Command {
	var (
		numeric bool
		reverse bool
	)

	cmd := &cobra.Command{
		Use:     "queue value...",
		Short:   "push values in a priority queue and print them in pop order",
		Example: "  collections queue --numeric 42 7 19\n  collections queue --reverse pear apple fig",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("no value given")
			}

			if numeric {
				values := make([]int, len(args))
				for i, arg := range args {
					value, err := strconv.Atoi(arg)
					if err != nil {
						return fmt.Errorf("value %d (%q) is not an integer: %w", i+1, arg, err)
					}
					values[i] = value
				}
				return drainQueue(a, cmd.OutOrStdout(), values, fn.Natural[int](), reverse)
			}
			return drainQueue(a, cmd.OutOrStdout(), args, fn.Natural[string](), reverse)
		},
	}
	cmd.Flags().BoolVar(&numeric, "numeric", false, "compare values as integers")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "pop the greatest value first")
	return cmd
}

// drainQueue pushes every value then pops them all, printing them on one line in pop order.
func drainQueue[T any](a *app, out io.Writer, values []T, comparator fn.Comparator[T], reverse bool) error {
	if reverse {
		comparator = fn.ReverseComparator(comparator)
	}

	pq := heap.New[T](comparator,
		arraylist.WithInitialCapacity(*a.settings.InitialCapacity),
		arraylist.WithLogger(a.logger),
	)
	for _, value := range values {
		pq.Push(value)
	}
	a.logger.Debug().Int("values", pq.Len()).Bool("reverse", reverse).Msg("queue filled")

	popped := make([]string, 0, len(values))
	for pq.IsNotEmpty() {
		value, _ := pq.Pop()
		popped = append(popped, fmt.Sprint(value))
	}
	_, err := fmt.Fprintln(out, strings.Join(popped, " "))
	return err
}
