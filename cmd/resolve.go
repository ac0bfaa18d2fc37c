package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/render"
)

var (
	resolveFormat    string
	resolveColor     string
	resolveWidth     int
	resolveNoHistory bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <descriptor>",
	Short: "Resolve a descriptor into its content tree",
	Long: `Resolve a descriptor against the loaded manifests and print the tree.

A descriptor is an entry name, or "kind:<kind>" to resolve whichever entry
uniquely carries that kind. Each resolution is recorded in the history
database unless --no-history is given.

Examples:
  # Resolve the starter site
  arbor resolve root

  # Resolve by kind
  arbor resolve kind:group

  # JSON for scripting
  arbor resolve root --format json | jq '.children[].key'`,
	Args: cobra.ExactArgs(1),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVarP(&resolveFormat, "format", "f", "tree",
		"output format: tree, json, or detail")
	resolveCmd.Flags().StringVar(&resolveColor, "color", "auto",
		"colorize output: auto, always, or never")
	resolveCmd.Flags().IntVar(&resolveWidth, "width", 0,
		"truncate tree lines and wrap bodies at this width (0 = no limit)")
	resolveCmd.Flags().BoolVar(&resolveNoHistory, "no-history", false,
		"do not record this resolution in the history database")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	descriptor := args[0]

	renderer, err := newRenderer(resolveColor, resolveWidth)
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

	dto, err := resolveAndRecord(cmd.Context(), svc, renderer, descriptor, resolveNoHistory)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", descriptor, err)
	}

	return printNode(renderer, resolveFormat, dto)
}

// printNode writes a resolved node to stdout in the requested format.
func printNode(renderer render.Renderer, format string, dto presentation.NodeDTO) error {
	switch format {
	case "tree":
		fmt.Print(renderer.Render(dto))
		return nil
	case "detail":
		fmt.Print(renderer.Detail(dto))
		return nil
	case "json":
		return presentation.NewFormatter(os.Stdout).FormatTree(dto)
	default:
		return fmt.Errorf("invalid format %q (want tree, json, or detail)", format)
	}
}
