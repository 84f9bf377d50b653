package reconciliation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"recon-manager/core/reconcile"
	"recon-manager/core/tabular"
	"recon-manager/core/workbook"
	"recon-manager/feature/reconciliation/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Uploads holds the three inputs of a run.
type Uploads struct {
	A tabular.File
	B tabular.File
	C tabular.File
}

// Outcome is a finished run.
type Outcome struct {
	// ID identifies the run in logs and in the archive.
	ID string
	// Result is the full reconciliation result.
	Result *reconcile.Result
	// Report is the rendered workbook.
	Report []byte
	// Archived reports whether the run was stored.
	Archived bool
}

// Service runs reconciliations over uploaded files.
type Service struct {
	engine  *reconcile.Engine
	upload  tabular.Config
	archive *Archive
	logger  *zap.Logger
	now     func() time.Time
}

// NewService creates a reconciliation service. A nil archive disables archiving.
func NewService(engine *reconcile.Engine, upload tabular.Config, archive *Archive, logger *zap.Logger) *Service {
	return &Service{
		engine:  engine,
		upload:  upload,
		archive: archive,
		logger:  logger,
		now:     time.Now,
	}
}

// Archive returns the run archive, or nil when archiving is disabled.
func (s *Service) Archive() *Archive {
	return s.archive
}

// Labels returns the configured source labels.
func (s *Service) Labels() reconcile.Labels {
	return s.engine.Config().Labels()
}

// Reconcile parses the uploads, reconciles them and renders the report.
// Input problems surface as *reconcile.ValidationError or *tabular.ParseError.
// A failure to archive is logged and leaves Archived false; the report is
// still returned.
func (s *Service) Reconcile(ctx context.Context, in Uploads, rayID string) (*Outcome, error) {
	labels := s.Labels()
	in.A.Source, in.B.Source, in.C.Source = labels.A, labels.B, labels.C

	datasets, err := tabular.ParseAll(ctx, s.upload, in.A, in.B, in.C)
	if err != nil {
		return nil, err
	}

	res, err := s.engine.Run(datasets[0], datasets[1], datasets[2])
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := workbook.Write(&buf, res); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}

	out := &Outcome{ID: uuid.NewString(), Result: res, Report: buf.Bytes()}
	s.logger.Info("Reconciliation completed",
		zap.String("run_id", out.ID),
		zap.Int("rows_a", res.Summary.RowsA),
		zap.Int("rows_b", res.Summary.RowsB),
		zap.Int("rows_c", res.Summary.RowsC),
		zap.Int("matched", res.Summary.Matched),
		zap.Int("alarmed", res.Summary.AlarmedCount),
		zap.Bool("status_classified", res.Summary.StatusClassified),
	)

	if s.archive != nil {
		if err := s.store(ctx, out, in, rayID); err != nil {
			s.logger.Error("Failed to archive run", zap.String("run_id", out.ID), zap.Error(err))
		} else {
			out.Archived = true
		}
	}
	return out, nil
}

func (s *Service) store(ctx context.Context, out *Outcome, in Uploads, rayID string) error {
	summary, err := json.Marshal(out.Result.Summary)
	if err != nil {
		return err
	}
	run := models.NewRun(out.ID, s.now().UTC(), out.Result.Summary)
	run.RayID = rayID
	run.FileA, run.FileB, run.FileC = in.A.Name, in.B.Name, in.C.Name
	run.Summary = string(summary)
	return s.archive.Store(ctx, run, out.Report)
}
