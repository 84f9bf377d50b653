package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"recon-manager/core/config"
	"recon-manager/core/logger"
	"recon-manager/core/reconcile"
	"recon-manager/core/tabular"
	"recon-manager/core/utils"
	"recon-manager/feature/reconciliation"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	pathA         string
	pathB         string
	pathC         string
	outputPath    string
	jsonSummary   bool
	archiveRun    bool
	successStatus string
	failStatus    string
)

// reconcileCmd reconciles three local files.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile a ledger against two processor exports",
	Long: `Reconcile the primary ledger (A) against the order-keyed export (B)
and the merchant-transaction-keyed export (C), then write the Excel report.

Examples:
  # Write reconciliation_output.xlsx and print the metrics
  reconcile --a ledger.csv --b orders.xlsx --c merchant.csv

  # Custom output and status vocabulary
  reconcile --a a.csv --b b.csv --c c.csv --output out.xlsx --success SETTLED,PAID --fail REJECTED

  # Print the summary as JSON and store the run in the archive
  reconcile --a a.csv --b b.csv --c c.csv --json --archive`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().StringVar(&pathA, "a", "", "Path of the primary ledger (.csv or .xlsx)")
	reconcileCmd.Flags().StringVar(&pathB, "b", "", "Path of the order-keyed processor export")
	reconcileCmd.Flags().StringVar(&pathC, "c", "", "Path of the merchant-transaction-keyed processor export")
	reconcileCmd.Flags().StringVarP(&outputPath, "output", "o", reconciliation.ReportFilename, "Path of the Excel report")
	reconcileCmd.Flags().BoolVar(&jsonSummary, "json", false, "Print the summary as JSON")
	reconcileCmd.Flags().BoolVar(&archiveRun, "archive", false, "Store the run in the archive regardless of configuration")
	reconcileCmd.Flags().StringVar(&successStatus, "success", "", "Comma separated statuses counted as SUCCESS")
	reconcileCmd.Flags().StringVar(&failStatus, "fail", "", "Comma separated statuses counted as FAIL")
	_ = reconcileCmd.MarkFlagRequired("a")
	_ = reconcileCmd.MarkFlagRequired("b")
	_ = reconcileCmd.MarkFlagRequired("c")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	startTime := time.Now()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if list := utils.SplitList(successStatus); len(list) > 0 {
		cfg.Reconcile.SuccessStatuses = list
	}
	if list := utils.SplitList(failStatus); len(list) > 0 {
		cfg.Reconcile.FailStatuses = list
	}
	if archiveRun {
		cfg.Archive.Enabled = true
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	engine, err := reconcile.NewEngine(cfg.Reconcile)
	if err != nil {
		return err
	}

	deps, err := openArchive(ctx, cfg, l)
	if err != nil {
		return err
	}

	var in reconciliation.Uploads
	if in.A, err = tabular.FromPath("", pathA); err != nil {
		return err
	}
	if in.B, err = tabular.FromPath("", pathB); err != nil {
		return err
	}
	if in.C, err = tabular.FromPath("", pathC); err != nil {
		return err
	}

	service := reconciliation.NewService(engine, cfg.Upload, deps.archive, l)
	out, err := service.Reconcile(ctx, in, "")
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, out.Report, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	l.Info("Report saved", zap.String("file", outputPath), zap.Int("bytes", len(out.Report)))

	if jsonSummary {
		data, err := json.MarshalIndent(reconciliation.SummaryResponse{
			RunID:    out.ID,
			Archived: out.Archived,
			Labels:   out.Result.Labels,
			Summary:  out.Result.Summary,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printSummary(out, time.Since(startTime))
	return nil
}

func printSummary(out *reconciliation.Outcome, elapsed time.Duration) {
	s := out.Result.Summary
	labels := out.Result.Labels

	fmt.Println("\n=== Reconciliation Metrics ===")
	fmt.Printf("Run ID: %s\n", out.ID)
	fmt.Printf("Rows %s/%s/%s: %d/%d/%d\n", labels.A, labels.B, labels.C, s.RowsA, s.RowsB, s.RowsC)
	fmt.Printf("Matched: %d\n", s.Matched)
	fmt.Printf("Missing in %s: %d\n", labels.B, s.MissingInB)
	fmt.Printf("Missing in %s: %d\n", labels.C, s.MissingInC)
	fmt.Printf("Missing in both: %d\n", s.MissingInBoth)
	fmt.Printf("Unmatched %s: %d\n", labels.B, s.UnmatchedB)
	fmt.Printf("Unmatched %s: %d\n", labels.C, s.UnmatchedC)
	fmt.Printf("Alarmed: %d\n", s.AlarmedCount)
	fmt.Printf("Fully reconciled: %d\n", s.FullyReconciled)

	if s.StatusClassified {
		fmt.Println("\n--- Status Buckets ---")
		for _, b := range s.Buckets {
			fmt.Printf("%-40s %d\n", b.Name, b.Count)
		}
	} else {
		fmt.Println("\nStatus buckets skipped: a status column is missing")
	}

	if len(s.Actions) > 0 {
		fmt.Println("\n--- Actions ---")
		for _, a := range s.Actions {
			fmt.Printf("[P%d] %-40s %d\n", a.Priority, a.Action, a.Count)
		}
	}

	fmt.Printf("\nArchived: %t\n", out.Archived)
	fmt.Printf("Execution Time: %s\n", elapsed.String())
}
