package reconciliation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"recon-manager/core/reconcile"
	"recon-manager/core/tabular"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Reconcile(t *testing.T) {
	svc := newTestService(t, nil)

	out, err := svc.Reconcile(context.Background(), Uploads{
		A: memFile("ledger.csv", csvA),
		B: memFile("orders.csv", csvB),
		C: memFile("merchant.csv", csvC),
	}, "")
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.False(t, out.Archived)
	assert.NotEmpty(t, out.Report)

	s := out.Result.Summary
	assert.Equal(t, 3, s.RowsA)
	assert.Equal(t, 2, s.Matched)
	assert.Equal(t, 1, s.MissingInBoth)
	assert.Equal(t, 1, s.UnmatchedB)
	assert.Equal(t, 2, s.AlarmedCount)
	assert.Equal(t, 1, s.FullyReconciled)
}

func TestService_ReconcileErrors(t *testing.T) {
	svc := newTestService(t, nil)

	t.Run("MissingColumn", func(t *testing.T) {
		_, err := svc.Reconcile(context.Background(), Uploads{
			A: memFile("ledger.csv", csvA),
			B: memFile("orders.csv", "Order,Status\nO1,SUCCESS\n"),
			C: memFile("merchant.csv", csvC),
		}, "")
		var vErr *reconcile.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "B", vErr.Source)
		assert.Equal(t, "OrderId", vErr.Field)
	})

	t.Run("Unreadable", func(t *testing.T) {
		_, err := svc.Reconcile(context.Background(), Uploads{
			A: memFile("ledger.xlsx", "garbage"),
			B: memFile("orders.csv", csvB),
			C: memFile("merchant.csv", csvC),
		}, "")
		var pErr *tabular.ParseError
		require.True(t, errors.As(err, &pErr))
		assert.Equal(t, "A", pErr.Source)
	})

	t.Run("Extension", func(t *testing.T) {
		_, err := svc.Reconcile(context.Background(), Uploads{
			A: memFile("ledger.csv", csvA),
			B: memFile("orders.csv", csvB),
			C: memFile("merchant.pdf", csvC),
		}, "")
		var vErr *reconcile.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, "C", vErr.Source)
		assert.Equal(t, "file", vErr.Field)
	})
}

func TestService_ReconcileArchives(t *testing.T) {
	archive, client, repo := newTestArchive(t)
	svc := newTestService(t, archive)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	client.On("PutObject", mock.Anything, "reports", mock.AnythingOfType("string"), mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
		Return(minio.UploadInfo{ETag: "etag"}, nil)

	out, err := svc.Reconcile(context.Background(), Uploads{
		A: memFile("ledger.csv", csvA),
		B: memFile("orders.csv", csvB),
		C: memFile("merchant.csv", csvC),
	}, "ray-1")
	require.NoError(t, err)
	assert.True(t, out.Archived)

	run, err := repo.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, "runs/"+out.ID+".xlsx", run.ObjectKey)
	assert.Equal(t, int64(len(out.Report)), run.ReportSize)
	assert.Equal(t, "ray-1", run.RayID)
	assert.Equal(t, "ledger.csv", run.FileA)
	assert.Equal(t, "merchant.csv", run.FileC)
	assert.Equal(t, 2, run.AlarmedCount)
	assert.True(t, run.CreatedAt.Equal(fixed))

	var summary reconcile.Summary
	require.NoError(t, json.Unmarshal([]byte(run.Summary), &summary))
	assert.Equal(t, out.Result.Summary.Matched, summary.Matched)

	client.AssertExpectations(t)
}

// TestService_ArchiveFailureKeepsReport checks that a storage outage does not fail the run.
func TestService_ArchiveFailureKeepsReport(t *testing.T) {
	archive, client, repo := newTestArchive(t)
	svc := newTestService(t, archive)

	client.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, assert.AnError)

	out, err := svc.Reconcile(context.Background(), Uploads{
		A: memFile("ledger.csv", csvA),
		B: memFile("orders.csv", csvB),
		C: memFile("merchant.csv", csvC),
	}, "")
	require.NoError(t, err)
	assert.False(t, out.Archived)
	assert.NotEmpty(t, out.Report)

	_, total, err := repo.List(context.Background(), 10, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
}
