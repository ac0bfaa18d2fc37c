package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/presentation"
	"github.com/zjrosen/arbor/internal/render"
)

var (
	diffColor      string
	diffManifests  bool
	diffDescriptor string
)

var diffCmd = &cobra.Command{
	Use:   "diff <run-id> <run-id>",
	Short: "Compare the snapshots of two recorded runs",
	Long: `Print a line diff between the tree snapshots of two history runs:
removed lines prefixed "-", added lines "+".

Run IDs come from arbor history. With --manifests the two arguments are
manifest directories instead: the descriptor is resolved against each
and the resulting trees are compared, without touching history.

Examples:
  # Two recorded runs
  arbor diff 7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d 9f8b3a21-1c2d-4e5f-8a9b-0c1d2e3f4a5b

  # A manifest edit, before moving it into place
  arbor diff --manifests .arbor/manifests /tmp/manifests-edited`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVar(&diffColor, "color", "auto",
		"colorize output: auto, always, or never")
	diffCmd.Flags().BoolVar(&diffManifests, "manifests", false,
		"treat the arguments as manifest directories and diff their resolved trees")
	diffCmd.Flags().StringVar(&diffDescriptor, "descriptor", "root",
		"descriptor to resolve when diffing manifest directories")
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	renderer, err := newRenderer(diffColor, 0)
	if err != nil {
		return err
	}

	if diffManifests {
		return diffManifestDirs(cmd.Context(), renderer, args[0], args[1])
	}

	db, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	repo := db.RunRepository()
	before, err := repo.FindByID(args[0])
	if err != nil {
		return err
	}
	after, err := repo.FindByID(args[1])
	if err != nil {
		return err
	}

	fmt.Print(renderer.Diff(before.Snapshot, after.Snapshot))
	return nil
}

// diffManifestDirs resolves the descriptor against two manifest directories
// and diffs the plain renderings. No decorators and no history: the point
// is comparing manifest states, not observing a run.
func diffManifestDirs(ctx context.Context, renderer render.Renderer, dirA, dirB string) error {
	snapshot := func(dir string) (string, error) {
		svc, err := manifest.NewService(os.DirFS(dir))
		if err != nil {
			return "", fmt.Errorf("loading manifests from %s: %w", dir, err)
		}
		root, err := svc.Resolve(ctx, diffDescriptor)
		if err != nil {
			return "", fmt.Errorf("resolving %q in %s: %w", diffDescriptor, dir, err)
		}
		return renderer.Plain().Render(presentation.FromNode(root)), nil
	}

	before, err := snapshot(dirA)
	if err != nil {
		return err
	}
	after, err := snapshot(dirB)
	if err != nil {
		return err
	}

	fmt.Print(renderer.Diff(before, after))
	return nil
}
