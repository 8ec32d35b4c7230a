package main

import (
	"fmt"

	"github.com/kungfusheep/panes"
	"github.com/kungfusheep/panes/layoutfile"
	"github.com/spf13/cobra"
)

type splitOptions struct {
	area      areaFlags
	direction panes.Direction
	flex      panes.Flex
	spacing   int
	margin    uint16
	spacers   bool
}

func newSplitCmd() *cobra.Command {
	opts := splitOptions{direction: panes.DirHorizontal}
	cmd := &cobra.Command{
		Use:   "split <constraint>...",
		Short: "Solve a layout and print its rects",
		Long: `Solve one layout and print a line per segment.

Constraints are written kind:value: length:10, min:5, max:20, percentage:50
(or 50%), ratio:1/3, fill:2.`,
		Example: "  panes split -W 100 -H 1 --flex space-between length:20 length:20\n" +
			"  panes split -d vertical -H 40 --spacing -1 fill:1 fill:1",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(cmd, args, opts)
		},
	}
	fs := cmd.Flags()
	opts.area.register(fs)
	fs.VarP(directionValue{&opts.direction}, "direction", "d", "split axis (horizontal, vertical)")
	fs.Var(flexValue{&opts.flex}, "flex", "where leftover space goes")
	fs.IntVar(&opts.spacing, "spacing", 0, "gap between segments; negative overlaps")
	fs.Uint16VarP(&opts.margin, "margin", "m", 0, "margin on every side")
	fs.BoolVar(&opts.spacers, "spacers", false, "also print the spacer rects")
	return cmd
}

func runSplit(cmd *cobra.Command, args []string, opts splitOptions) error {
	cs := make([]panes.Constraint, len(args))
	for i, a := range args {
		c, err := layoutfile.ParseConstraint(a)
		if err != nil {
			return err
		}
		cs[i] = c
	}
	l := panes.Layout{Direction: opts.direction, Constraints: cs}.
		WithMargin(opts.margin).
		WithFlex(opts.flex).
		WithSpacing(panes.SpacingOf(opts.spacing))

	segments, spacers := l.SplitWithSpacers(opts.area.area())
	out := cmd.OutOrStdout()
	for i, r := range segments {
		fmt.Fprintf(out, "%d\t%-16s %s\n", i, cs[i], r)
	}
	if opts.spacers {
		for i, r := range spacers {
			fmt.Fprintf(out, "spacer %d\t%s\n", i, r)
		}
	}
	return nil
}
