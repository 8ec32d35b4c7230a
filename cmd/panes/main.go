// Command panes exercises the layout solver and buffers from the shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "panes",
		Short: "Constraint-based terminal layouts",
		Long: `panes splits terminal areas with a constraint solver and renders the
results through cell buffers.

Examples:
  panes split -W 80 length:20 fill:1 25%     # print the solved rects
  panes render layout.yaml -W 100 -H 30      # draw a layout file as text
  panes watch layout.yaml                    # live view, reloads on change
  panes diff before.txt after.txt            # cell updates between frames`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newSplitCmd(), newRenderCmd(), newDiffCmd(), newWatchCmd())
	return root
}
