package tabular

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"recon-manager/core/reconcile"
)

// ParseXLSX reads the first sheet of a workbook into a dataset.
func ParseXLSX(r io.Reader, name string) (*reconcile.Dataset, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return fromRows(name, rows), nil
}
