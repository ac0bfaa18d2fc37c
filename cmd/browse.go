package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/domain/tree"
	"github.com/zjrosen/arbor/internal/ui/browse"
)

var browseCmd = &cobra.Command{
	Use:   "browse <descriptor>",
	Short: "Browse a resolved tree interactively",
	Long: `Open a full-screen browser for the resolved tree: a navigable tree pane
on the left, the selected node's rendered body on the right.

With auto_refresh enabled (the default) the view reloads when manifests
change on disk. Press ? inside the browser for keybindings.

Example:
  arbor browse root`,
	Args: cobra.ExactArgs(1),
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic reload when manifests change")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	descriptor := args[0]

	// Mouse zones are process-global and must exist before the first View.
	zone.NewGlobal()

	provider, err := newTracing()
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	lookupCache := newLookupCache()

	// Each resolve rebuilds the service from disk so manifest edits show
	// up; flushing first keeps cached lookups from outliving the files.
	resolveFn := func(ctx context.Context) (*tree.Node, error) {
		_ = lookupCache.Flush(ctx)
		svc, err := newService(lookupCache, provider)
		if err != nil {
			return nil, err
		}
		return svc.Resolve(ctx, descriptor)
	}

	// Fail fast on unreadable manifests or a bad descriptor before
	// entering the alternate screen.
	if _, err := resolveFn(cmd.Context()); err != nil {
		return fmt.Errorf("resolving %q: %w", descriptor, err)
	}

	// Handle --no-auto-refresh flag (negated logic)
	autoRefresh := cfg.AutoRefresh
	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		autoRefresh = false
	}

	model := browse.New(browse.Config{
		Descriptor:    descriptor,
		Resolve:       resolveFn,
		ManifestDir:   manifestDir(),
		AutoRefresh:   autoRefresh,
		ShowStatusBar: cfg.UI.ShowStatusBar,
		MarkdownStyle: cfg.UI.MarkdownStyle,
	})
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher and listener resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
