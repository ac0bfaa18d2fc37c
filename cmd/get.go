package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/domain/tree"
	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/tracing"
)

var (
	getFormat string
	getColor  string
	getWidth  int
)

var getCmd = &cobra.Command{
	Use:   "get <descriptor> <path>",
	Short: "Resolve a descriptor and print one subtree",
	Long: `Resolve a descriptor, walk to the node at the given key path, and print
that subtree.

Paths are slash-separated key segments relative to the root; "/" names
the root itself. Only keyed children are addressable.

Examples:
  # The home page subtree
  arbor get root home

  # A nested node, as a detail card
  arbor get root home/status --format detail`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", "tree",
		"output format: tree, json, or detail")
	getCmd.Flags().StringVar(&getColor, "color", "auto",
		"colorize output: auto, always, or never")
	getCmd.Flags().IntVar(&getWidth, "width", 0,
		"truncate tree lines and wrap bodies at this width (0 = no limit)")
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	descriptor, path := args[0], args[1]

	renderer, err := newRenderer(getColor, getWidth)
	if err != nil {
		return err
	}

	provider, err := newTracing()
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	svc, err := newService(newLookupCache(), provider)
	if err != nil {
		return err
	}

	ctx := tracing.ContextWithTraceID(cmd.Context(), tracing.GenerateTraceID())
	root, err := svc.Resolve(ctx, descriptor)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", descriptor, err)
	}

	node, err := tree.Find(root, path)
	if err != nil {
		return fmt.Errorf("walking %q: %w", path, err)
	}

	return printNode(renderer, getFormat, presentation.FromNode(node))
}
