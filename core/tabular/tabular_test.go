package tabular_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"recon-manager/core/reconcile"
	"recon-manager/core/tabular"
)

func memFile(source, name string, content []byte) tabular.File {
	return tabular.File{
		Source: source,
		Name:   name,
		Size:   int64(len(content)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestParseCSV(t *testing.T) {
	input := "\uFEFFOrderId, Status ,,Status\n" +
		"\n" +
		"O1,SUCCESS,x,dup\n" +
		",,,\n" +
		"O2\n"

	d, err := tabular.ParseCSV(strings.NewReader(input), "b.csv")
	require.NoError(t, err)

	assert.Equal(t, "b.csv", d.Name)
	assert.Equal(t, []string{"OrderId", "Status", "Unnamed: 2", "Status.1"}, d.Columns)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, reconcile.Record{"OrderId": "O1", "Status": "SUCCESS", "Unnamed: 2": "x", "Status.1": "dup"}, d.Rows[0])
	assert.Equal(t, "O2", d.Rows[1]["OrderId"])
	assert.Equal(t, "", d.Rows[1]["Status"])
}

func TestParseCSV_DuplicateHeaders(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		columns []string
		row     reconcile.Record
	}{
		{
			name:    "suffix already taken",
			input:   "X,X,X.1\n1,2,3\n",
			columns: []string{"X", "X.1", "X.1.1"},
			row:     reconcile.Record{"X": "1", "X.1": "2", "X.1.1": "3"},
		},
		{
			name:    "suffix declared first",
			input:   "X.1,X,X\n1,2,3\n",
			columns: []string{"X.1", "X", "X.2"},
			row:     reconcile.Record{"X.1": "1", "X": "2", "X.2": "3"},
		},
		{
			name:    "blank header collides with named one",
			input:   "Unnamed: 1,\na,b\n",
			columns: []string{"Unnamed: 1", "Unnamed: 1.1"},
			row:     reconcile.Record{"Unnamed: 1": "a", "Unnamed: 1.1": "b"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tabular.ParseCSV(strings.NewReader(tt.input), "dup.csv")
			require.NoError(t, err)
			assert.Equal(t, tt.columns, d.Columns)
			require.Len(t, d.Rows, 1)
			assert.Equal(t, tt.row, d.Rows[0])
		})
	}
}

func TestParseCSV_RowsWiderThanHeader(t *testing.T) {
	d, err := tabular.ParseCSV(strings.NewReader("OrderId\nO1,extra\nO2\n"), "wide.csv")
	require.NoError(t, err)

	assert.Equal(t, []string{"OrderId", "Unnamed: 1"}, d.Columns)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, reconcile.Record{"OrderId": "O1", "Unnamed: 1": "extra"}, d.Rows[0])
	assert.Equal(t, reconcile.Record{"OrderId": "O2", "Unnamed: 1": ""}, d.Rows[1])
}

func TestParseCSV_LeadingBlankRows(t *testing.T) {
	d, err := tabular.ParseCSV(strings.NewReader(",,\nOrderId\nO1\n"), "b.csv")
	require.NoError(t, err)
	assert.Equal(t, []string{"OrderId"}, d.Columns)
	assert.Len(t, d.Rows, 1)
}

func TestParseCSV_Empty(t *testing.T) {
	d, err := tabular.ParseCSV(strings.NewReader(""), "empty.csv")
	require.NoError(t, err)
	assert.True(t, d.Blank())
}

func TestParseCSV_HeadersOnly(t *testing.T) {
	d, err := tabular.ParseCSV(strings.NewReader("MerchantTransactionId,Status\n"), "c.csv")
	require.NoError(t, err)
	assert.False(t, d.Blank())
	assert.Equal(t, 0, d.Len())
}

func TestParseXLSX(t *testing.T) {
	content := xlsxBytes(t, [][]any{
		{"OrderId", "MerchantTransactionId", "Status"},
		{"O1", "M1", "PAID"},
		{1001, "M2", "PENDING"},
	})

	d, err := tabular.ParseXLSX(bytes.NewReader(content), "a.xlsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"OrderId", "MerchantTransactionId", "Status"}, d.Columns)
	require.Len(t, d.Rows, 2)
	assert.Equal(t, "O1", d.Rows[0]["OrderId"])
	assert.Equal(t, "1001", d.Rows[1]["OrderId"])
}

func TestParse_CorruptWorkbook(t *testing.T) {
	_, err := tabular.Parse(memFile("A", "a.xlsx", []byte("not a zip")))
	require.Error(t, err)

	var pErr *tabular.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "A", pErr.Source)
	assert.Equal(t, "a.xlsx", pErr.Filename)
}

func TestValidate(t *testing.T) {
	cfg := tabular.Config{MaxFileSizeMB: 1, AllowedExtensions: []string{".csv", ".xlsx"}}

	tests := []struct {
		name    string
		file    tabular.File
		wantErr bool
	}{
		{"CSV", memFile("A", "a.csv", []byte("x")), false},
		{"UpperCaseXLSX", memFile("A", "A.XLSX", []byte("x")), false},
		{"Text", memFile("B", "b.txt", []byte("x")), true},
		{"NoExtension", memFile("B", "b", []byte("x")), true},
		{"TooLarge", tabular.File{Source: "C", Name: "c.csv", Size: 2 << 20, Open: memFile("", "", nil).Open}, true},
		{"Missing", tabular.File{Source: "C"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tabular.Validate(cfg, tt.file)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			var vErr *reconcile.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.file.Source, vErr.Source)
			assert.Equal(t, "file", vErr.Field)
		})
	}
}

func TestParseAll(t *testing.T) {
	a := memFile("A", "a.csv", []byte("OrderId,MerchantTransactionId\nO1,M1\n"))
	b := memFile("B", "b.xlsx", xlsxBytes(t, [][]any{{"OrderId"}, {"O1"}}))
	c := memFile("C", "c.csv", []byte("MerchantTransactionId\n"))

	got, err := tabular.ParseAll(context.Background(), tabular.DefaultConfig(), a, b, c)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "a.csv", got[0].Name)
	assert.Equal(t, "b.xlsx", got[1].Name)
	assert.Equal(t, "c.csv", got[2].Name)
	assert.Equal(t, 1, got[1].Len())
}

// TestParseAll_ValidatesBeforeOpening checks that no file is read when one upload is rejected.
func TestParseAll_ValidatesBeforeOpening(t *testing.T) {
	opened := false
	a := tabular.File{
		Source: "A",
		Name:   "a.csv",
		Open: func() (io.ReadCloser, error) {
			opened = true
			return io.NopCloser(strings.NewReader("")), nil
		},
	}
	b := memFile("B", "b.json", []byte("{}"))

	_, err := tabular.ParseAll(context.Background(), tabular.DefaultConfig(), a, b)
	require.Error(t, err)
	assert.False(t, opened)

	var vErr *reconcile.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "B", vErr.Source)
}

func TestParseAll_ParseError(t *testing.T) {
	a := memFile("A", "a.csv", []byte("OrderId\nO1\n"))
	b := memFile("B", "b.xlsx", []byte("broken"))

	_, err := tabular.ParseAll(context.Background(), tabular.DefaultConfig(), a, b)
	var pErr *tabular.ParseError
	require.True(t, errors.As(err, &pErr))
	assert.Equal(t, "B", pErr.Source)
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.csv")
	require.NoError(t, os.WriteFile(path, []byte("OrderId\nO1\n"), 0o644))

	f, err := tabular.FromPath("A", path)
	require.NoError(t, err)
	assert.Equal(t, "a.csv", f.Name)
	assert.Equal(t, int64(11), f.Size)

	d, err := tabular.Parse(f)
	require.NoError(t, err)
	assert.Equal(t, 1, d.Len())

	_, err = tabular.FromPath("A", dir)
	assert.Error(t, err)
	_, err = tabular.FromPath("A", filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)
}
