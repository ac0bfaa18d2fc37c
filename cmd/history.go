package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zjrosen/arbor/internal/presentation"
)

var (
	historyLimit      int
	historyFormat     string
	historyShowFormat string
	pruneOlderThan    time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect recorded resolutions",
	Long: `List the resolutions recorded by arbor resolve, newest first.

Examples:
  # The last 20 runs
  arbor history

  # One run's snapshot, by ID from the table
  arbor history show 7b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d

  # Drop everything older than 30 days
  arbor history prune --older-than 720h`,
	Args: cobra.NoArgs,
	RunE: runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <run-id>",
	Short: "Print one recorded run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete runs older than a cutoff",
	Args:  cobra.NoArgs,
	RunE:  runHistoryPrune,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20,
		"maximum runs to list (0 = all)")
	historyCmd.Flags().StringVarP(&historyFormat, "format", "f", "table",
		"output format: table or json")

	historyShowCmd.Flags().StringVarP(&historyShowFormat, "format", "f", "snapshot",
		"output format: snapshot or json")

	historyPruneCmd.Flags().DurationVar(&pruneOlderThan, "older-than", 0,
		"delete runs older than this duration (e.g. 720h)")
	_ = historyPruneCmd.MarkFlagRequired("older-than")

	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(_ *cobra.Command, _ []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	runs, err := db.RunRepository().List(historyLimit)
	if err != nil {
		return err
	}

	formatter := presentation.NewFormatter(os.Stdout)
	switch historyFormat {
	case "table":
		return formatter.FormatRunsTable(presentation.FromRuns(runs))
	case "json":
		return formatter.FormatRuns(presentation.FromRuns(runs))
	default:
		return fmt.Errorf("invalid format %q (want table or json)", historyFormat)
	}
}

func runHistoryShow(_ *cobra.Command, args []string) error {
	db, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	run, err := db.RunRepository().FindByID(args[0])
	if err != nil {
		return err
	}

	switch historyShowFormat {
	case "snapshot":
		if run.Error != nil {
			fmt.Printf("run %s failed: %s\n", run.ID, *run.Error)
			return nil
		}
		fmt.Print(run.Snapshot)
		return nil
	case "json":
		return presentation.NewFormatter(os.Stdout).FormatRun(presentation.FromRun(run))
	default:
		return fmt.Errorf("invalid format %q (want snapshot or json)", historyShowFormat)
	}
}

func runHistoryPrune(_ *cobra.Command, _ []string) error {
	if pruneOlderThan <= 0 {
		return fmt.Errorf("--older-than must be a positive duration, got %v", pruneOlderThan)
	}

	db, err := openHistory()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	deleted, err := db.RunRepository().DeleteOlderThan(time.Now().Add(-pruneOlderThan))
	if err != nil {
		return err
	}

	fmt.Printf("Deleted %d runs older than %v\n", deleted, pruneOlderThan)
	return nil
}
