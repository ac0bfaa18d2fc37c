package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/presentation"
)

var (
	entriesFormat string
	entriesKind   string
)

var entriesCmd = &cobra.Command{
	Use:   "entries",
	Short: "List manifest entries",
	Long: `List the entries declared across the manifest directory, in load order.

Examples:
  # Everything, as a table
  arbor entries

  # Only pages
  arbor entries --kind page

  # Names for scripting
  arbor entries --format json | jq -r '.[].name'`,
	Args: cobra.NoArgs,
	RunE: runEntries,
}

func init() {
	entriesCmd.Flags().StringVarP(&entriesFormat, "format", "f", "table",
		"output format: table or json")
	entriesCmd.Flags().StringVarP(&entriesKind, "kind", "k", "",
		"only entries of this kind")
	rootCmd.AddCommand(entriesCmd)
}

func runEntries(_ *cobra.Command, _ []string) error {
	if entriesKind != "" {
		if _, err := manifest.TypeOf(manifest.Kind(entriesKind)); err != nil {
			return err
		}
	}

	set, err := manifest.Load(os.DirFS(manifestDir()))
	if err != nil {
		return fmt.Errorf("loading manifests from %s: %w", manifestDir(), err)
	}

	dtos := presentation.FromManifestSet(set)
	if entriesKind != "" {
		filtered := dtos[:0]
		for _, dto := range dtos {
			if dto.Kind == entriesKind {
				filtered = append(filtered, dto)
			}
		}
		dtos = filtered
	}

	formatter := presentation.NewFormatter(os.Stdout)
	switch entriesFormat {
	case "table":
		return formatter.FormatEntriesTable(dtos)
	case "json":
		return formatter.FormatEntries(dtos)
	default:
		return fmt.Errorf("invalid format %q (want table or json)", entriesFormat)
	}
}
