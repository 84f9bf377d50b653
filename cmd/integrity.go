package cmd

import (
	"encoding/json"
	"fmt"

	"recon-manager/core/config"
	"recon-manager/core/logger"
	"recon-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the run archive",
	Long: `Checks that the archive bucket exists, that the run ledger table matches
the expected schema and that every recent run still has its report in storage.
All checks are skipped when the archive is disabled.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
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

		svc := integrity.NewService(deps.client, cfg.Storage.Bucket, cfg.Storage.Region, logg, deps.db, cfg.Archive.Enabled)
		report := svc.RunAll(cmd.Context(), fixFlag)

		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))

		if !report.Healthy() {
			logg.Warn("Integrity checks reported problems", zap.Bool("fix", fixFlag))
			return fmt.Errorf("integrity checks failed")
		}
		logg.Info("Integrity checks passed")
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the archive bucket if it is missing")
	RootCmd.AddCommand(integrityCmd)
}
