package reconciliation

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"recon-manager/core/storage"
	"recon-manager/core/workbook"
	"recon-manager/feature/reconciliation/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Archive stores finished reports in object storage and records them in the run ledger.
// Nothing stored here is ever read back by a reconciliation.
type Archive struct {
	client storage.Client
	bucket string
	prefix string
	repo   *Repository
	logger *zap.Logger
}

// NewArchive creates an archive writing to bucket under prefix.
func NewArchive(client storage.Client, bucket, prefix string, repo *Repository, logger *zap.Logger) *Archive {
	return &Archive{
		client: client,
		bucket: bucket,
		prefix: prefix,
		repo:   repo,
		logger: logger,
	}
}

// ObjectKey returns the object key of the report of a run.
func (a *Archive) ObjectKey(id string) string {
	return path.Join(a.prefix, id+".xlsx")
}

// Store uploads the report and then records the run. A run row only exists
// once its report has been uploaded.
func (a *Archive) Store(ctx context.Context, run *models.Run, report []byte) error {
	key := a.ObjectKey(run.ID)
	info, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(report), int64(len(report)), minio.PutObjectOptions{
		ContentType: workbook.ContentType,
		UserMetadata: map[string]string{
			"run-id": run.ID,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upload report %s: %w", key, err)
	}

	run.ObjectKey = key
	run.ReportSize = int64(len(report))
	if err := a.repo.Create(ctx, run); err != nil {
		return err
	}

	a.logger.Info("Run archived",
		zap.String("run_id", run.ID),
		zap.String("object", key),
		zap.String("etag", info.ETag),
	)
	return nil
}

// Run returns one archived run.
func (a *Archive) Run(ctx context.Context, id string) (*models.Run, error) {
	return a.repo.Get(ctx, id)
}

// Open returns the archived report of a run.
func (a *Archive) Open(ctx context.Context, id string) (*models.Run, io.ReadCloser, error) {
	run, err := a.Run(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if _, err := a.client.StatObject(ctx, a.bucket, run.ObjectKey, minio.StatObjectOptions{}); err != nil {
		return nil, nil, fmt.Errorf("report %s unavailable: %w", run.ObjectKey, err)
	}
	obj, err := a.client.GetObject(ctx, a.bucket, run.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to download report %s: %w", run.ObjectKey, err)
	}
	return run, obj, nil
}

// Runs returns the run ledger, newest first.
func (a *Archive) Runs(ctx context.Context, limit, offset int) ([]models.Run, int64, error) {
	return a.repo.List(ctx, limit, offset)
}
