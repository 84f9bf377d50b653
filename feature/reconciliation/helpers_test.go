package reconciliation

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"recon-manager/core/database"
	"recon-manager/core/reconcile"
	"recon-manager/core/storage/mocks"
	"recon-manager/core/tabular"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	csvA = "OrderId,MerchantTransactionId,Status\nO1,M1,PAID\nO2,M2,PAID\nO3,M3,FAILED\n"
	csvB = "OrderId,Status\nO1,SUCCESS\nO2,SUCCESS\nO9,SUCCESS\n"
	csvC = "MerchantTransactionId,Status\nM1,Not Cancelled\nM2,Cancelled\n"
)

func memFile(name, content string) tabular.File {
	return tabular.File{
		Name: name,
		Size: int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader([]byte(content))), nil
		},
	}
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, NewRepository(db).Migrate(t.Context()))
	return db
}

func newTestService(t *testing.T, archive *Archive) *Service {
	t.Helper()
	engine, err := reconcile.NewEngine(reconcile.DefaultConfig())
	require.NoError(t, err)
	return NewService(engine, tabular.DefaultConfig(), archive, zap.NewNop())
}

func newTestArchive(t *testing.T) (*Archive, *mocks.Client, *Repository) {
	t.Helper()
	client := new(mocks.Client)
	repo := NewRepository(newTestDB(t))
	return NewArchive(client, "reports", "runs", repo, zap.NewNop()), client, repo
}

// upload is one multipart file part.
type upload struct {
	field, name, content string
}

func multipartRequest(t *testing.T, target string, uploads ...upload) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, u := range uploads {
		part, err := w.CreateFormFile(u.field, u.name)
		require.NoError(t, err)
		_, err = part.Write([]byte(u.content))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func standardUploads() []upload {
	return []upload{
		{FieldA, "ledger.csv", csvA},
		{FieldB, "orders.csv", csvB},
		{FieldC, "merchant.csv", csvC},
	}
}
