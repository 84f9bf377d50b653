package integrity

import (
	"context"
	"fmt"

	"recon-manager/core/storage"
	"recon-manager/feature/integrity/checks"
	"recon-manager/feature/reconciliation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Check statuses.
const (
	StatusOK      = "ok"
	StatusFailed  = "failed"
	StatusFixed   = "fixed"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// maxReportsChecked bounds the report existence check to the newest runs.
const maxReportsChecked = 500

// Section is the outcome of one check.
type Section struct {
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Report combines every check.
type Report struct {
	Storage Section `json:"storage"`
	Ledger  Section `json:"ledger"`
	Reports Section `json:"reports"`
}

// Healthy reports whether no check failed.
func (r Report) Healthy() bool {
	for _, s := range []Section{r.Storage, r.Ledger, r.Reports} {
		if s.Status == StatusFailed || s.Status == StatusError {
			return false
		}
	}
	return true
}

// Service handles integrity checks of the run archive.
type Service struct {
	client  storage.Client
	bucket  string
	region  string
	logger  *zap.Logger
	db      *gorm.DB
	enabled bool
}

// NewService creates a new integrity service. When enabled is false every
// check reports "skipped".
func NewService(client storage.Client, bucket, region string, logger *zap.Logger, db *gorm.DB, enabled bool) *Service {
	return &Service{
		client:  client,
		bucket:  bucket,
		region:  region,
		logger:  logger,
		db:      db,
		enabled: enabled,
	}
}

// CheckStorage checks the archive bucket and creates it when fix is set.
func (s *Service) CheckStorage(ctx context.Context, fix bool) Section {
	if !s.enabled {
		return Section{Status: StatusSkipped}
	}
	if s.client == nil {
		return Section{Status: StatusError, Error: "storage client is not configured"}
	}

	report, err := checks.CheckBucket(ctx, s.client, s.bucket)
	if err != nil {
		return Section{Status: StatusError, Error: err.Error()}
	}
	if report.Exists {
		return Section{Status: StatusOK, Details: report}
	}

	s.logger.Warn("Archive bucket is missing", zap.String("bucket", s.bucket))
	if !fix {
		return Section{Status: StatusFailed, Details: report}
	}
	if err := checks.FixBucket(ctx, s.client, s.bucket, s.region, s.logger); err != nil {
		return Section{Status: StatusError, Error: err.Error(), Details: report}
	}
	report.Created = true
	return Section{Status: StatusFixed, Details: report}
}

// CheckLedger compares the run ledger table with the Run model.
func (s *Service) CheckLedger() Section {
	if !s.enabled {
		return Section{Status: StatusSkipped}
	}
	report, err := checks.CheckLedgerSchema(s.db)
	if err != nil {
		return Section{Status: StatusError, Error: err.Error()}
	}
	if !report.Matched {
		return Section{Status: StatusFailed, Details: report}
	}
	return Section{Status: StatusOK, Details: report}
}

// CheckReports verifies that the newest runs still have their report in storage.
func (s *Service) CheckReports(ctx context.Context) Section {
	if !s.enabled {
		return Section{Status: StatusSkipped}
	}
	if s.db == nil || s.client == nil {
		return Section{Status: StatusError, Error: "archive is not fully configured"}
	}

	runs, _, err := reconciliation.NewRepository(s.db).List(ctx, maxReportsChecked, 0)
	if err != nil {
		return Section{Status: StatusError, Error: fmt.Sprintf("failed to read run ledger: %v", err)}
	}

	report, err := checks.CheckArchivedReports(ctx, s.client, s.bucket, runs)
	if err != nil {
		return Section{Status: StatusError, Error: err.Error()}
	}
	if len(report.Missing) > 0 || len(report.SizeMismatches) > 0 {
		return Section{Status: StatusFailed, Details: report}
	}
	return Section{Status: StatusOK, Details: report}
}

// RunAll runs every check in order. Fixing only applies to storage.
func (s *Service) RunAll(ctx context.Context, fix bool) Report {
	return Report{
		Storage: s.CheckStorage(ctx, fix),
		Ledger:  s.CheckLedger(),
		Reports: s.CheckReports(ctx),
	}
}
