package cmd

import (
	"fmt"

	"recon-manager/core/config"
	"recon-manager/core/logger"

	"github.com/spf13/cobra"
)

var (
	runsLimit  int
	runsOffset int
)

// runsCmd lists archived runs.
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List archived reconciliation runs",
	Long:  `Lists the newest runs recorded in the run ledger. Requires the archive to be enabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if !cfg.Archive.Enabled {
			return fmt.Errorf("the run archive is disabled (set ARCHIVE_ENABLED=true)")
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		deps, err := openArchive(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		runs, total, err := deps.archive.Runs(cmd.Context(), runsLimit, runsOffset)
		if err != nil {
			return err
		}

		fmt.Printf("\n=== Archived Runs (%d of %d) ===\n", len(runs), total)
		for _, run := range runs {
			fmt.Printf("%s  %s  rows=%d/%d/%d  matched=%d  alarmed=%d  %s\n",
				run.CreatedAt.Format("2006-01-02 15:04:05"),
				run.ID,
				run.RowsA, run.RowsB, run.RowsC,
				run.Matched,
				run.AlarmedCount,
				run.ObjectKey,
			)
		}
		return nil
	},
}

func init() {
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Number of runs to list")
	runsCmd.Flags().IntVar(&runsOffset, "offset", 0, "Number of runs to skip")
	RootCmd.AddCommand(runsCmd)
}
