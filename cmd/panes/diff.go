package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/kungfusheep/panes"
	"github.com/spf13/cobra"
)

func newDiffCmd() *cobra.Command {
	var stats bool
	cmd := &cobra.Command{
		Use:   "diff <before> <after>",
		Short: "Print the cell updates that turn one text frame into another",
		Long: `Load two text files as frames and print the cells a terminal would have
to redraw, one per line as x,y followed by the new symbol. Both frames are
placed in an area large enough for either.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, err := readFrame(args[0])
			if err != nil {
				return err
			}
			after, err := readFrame(args[1])
			if err != nil {
				return err
			}
			area := before.Area.Union(after.Area)
			before.Resize(area)
			after.Resize(area)

			updates, err := before.Diff(after)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if stats {
				fmt.Fprintf(out, "%d of %d cells changed\n", len(updates), before.Len())
				return nil
			}
			for _, u := range updates {
				fmt.Fprintf(out, "%d,%d\t%q\n", u.X, u.Y, u.Cell.Symbol)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&stats, "stats", "s", false, "print only the number of updates")
	return cmd
}

func readFrame(path string) (*panes.Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read frame: %w", err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	return panes.FromStrings(strings.Split(text, "\n")...), nil
}
