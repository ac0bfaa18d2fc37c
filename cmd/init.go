package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/application/manifest"
	"github.com/zjrosen/arbor/internal/config"
	"github.com/zjrosen/arbor/internal/paths"
)

var (
	initForce     bool
	initManifests string
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an arbor directory with starter manifests",
	Long: `Create the .arbor directory: a commented default config and a starter
manifest set to resolve and edit.

Existing files are left alone unless --force is given.

Examples:
  # Initialize in the current directory
  arbor init

  # Initialize a specific project
  arbor init --dir ~/src/docs

  # Keep manifests outside .arbor and record the location in config
  arbor init --manifests ~/manifests`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false,
		"overwrite existing config and manifest files")
	initCmd.Flags().StringVar(&initManifests, "manifests", "",
		"manifest directory to create (default: <arbor dir>/manifests)")
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	configPath := paths.ConfigPath(arborDir)
	if _, err := os.Stat(configPath); err == nil && !initForce {
		fmt.Printf("Keeping %s (use --force to overwrite)\n", configPath)
	} else {
		if err := config.WriteDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", configPath)
	}

	dir := paths.ManifestDir(arborDir)
	if initManifests != "" {
		dir = initManifests
		if err := config.SaveManifestDir(configPath, dir); err != nil {
			return fmt.Errorf("recording manifest_dir in config: %w", err)
		}
	}
	if err := copyStarterManifests(dir); err != nil {
		return err
	}

	fmt.Printf("Initialized arbor in %s\n", arborDir)
	fmt.Println("Try: arbor resolve root")
	return nil
}

// copyStarterManifests writes the embedded starter manifests into dir,
// skipping files that already exist unless --force is set.
func copyStarterManifests(dir string) error {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	starter := manifest.StarterFS()
	return fs.WalkDir(starter, ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}

		dest := filepath.Join(dir, path)
		if _, err := os.Stat(dest); err == nil && !initForce {
			fmt.Printf("Keeping %s\n", dest)
			return nil
		}

		data, err := fs.ReadFile(starter, path)
		if err != nil {
			return fmt.Errorf("reading starter manifest %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0o750); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, data, 0o600); err != nil {
			return fmt.Errorf("writing %s: %w", dest, err)
		}
		fmt.Printf("Wrote %s\n", dest)
		return nil
	})
}
