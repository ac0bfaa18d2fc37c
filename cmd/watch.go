package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/watcher"
)

var (
	watchColor     string
	watchWidth     int
	watchNoHistory bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <descriptor>",
	Short: "Re-resolve a descriptor whenever manifests change",
	Long: `Resolve a descriptor, then watch the manifest directory and re-resolve
and re-render on every change until interrupted.

A change that breaks the manifests prints the error and keeps watching;
the next valid save renders again. Each iteration is recorded in the
history database, so a watch session's states can be diffed afterwards.

Example:
  arbor watch root`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchColor, "color", "auto",
		"colorize output: auto, always, or never")
	watchCmd.Flags().IntVar(&watchWidth, "width", 0,
		"truncate tree lines at this width (0 = no limit)")
	watchCmd.Flags().BoolVar(&watchNoHistory, "no-history", false,
		"do not record watch iterations in the history database")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	descriptor := args[0]

	renderer, err := newRenderer(watchColor, watchWidth)
	if err != nil {
		return err
	}

	provider, err := newTracing()
	if err != nil {
		return err
	}
	defer shutdownTracing(provider)

	lookupCache := newLookupCache()

	resolveOnce := func(ctx context.Context) error {
		svc, err := newService(lookupCache, provider)
		if err != nil {
			return err
		}
		dto, err := resolveAndRecord(ctx, svc, renderer, descriptor, watchNoHistory)
		if err != nil {
			return err
		}
		fmt.Print(renderer.Render(dto))
		return nil
	}

	// The first resolve fails fast; later failures keep the watch alive.
	if err := resolveOnce(cmd.Context()); err != nil {
		return fmt.Errorf("resolving %q: %w", descriptor, err)
	}

	w, err := watcher.New(watcher.DefaultConfig(manifestDir()))
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("watching %s: %w", manifestDir(), err)
	}
	defer func() { _ = w.Stop() }()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("\nWatching %s (press Ctrl+C to stop)\n", manifestDir())

	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			fmt.Printf("\n%s manifests changed, re-resolving %s\n\n",
				time.Now().Format("15:04:05"), descriptor)

			// Drop cached lookups so the rebuilt registry is the only
			// source of values.
			_ = lookupCache.Flush(cmd.Context())

			if err := resolveOnce(cmd.Context()); err != nil {
				fmt.Fprintf(os.Stderr, "resolve failed: %v\n", err)
			}
		case sig := <-sigCh:
			fmt.Printf("\nReceived %s, stopping\n", sig)
			return nil
		}
	}
}
