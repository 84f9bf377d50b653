package tabular

import (
	"encoding/csv"
	"io"

	"recon-manager/core/reconcile"
)

// ParseCSV reads comma separated text into a dataset.
// Rows may have differing lengths and quotes are parsed leniently.
func ParseCSV(r io.Reader, name string) (*reconcile.Dataset, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	return fromRows(name, rows), nil
}
