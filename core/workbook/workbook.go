package workbook

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"recon-manager/core/reconcile"
)

// ContentType is the MIME type of the generated report.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Build renders the result into a new workbook. The caller must Close it.
func Build(res *reconcile.Result) (*excelize.File, error) {
	if res == nil {
		return nil, fmt.Errorf("no result to render")
	}

	f := excelize.NewFile()
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	names := newSheetNames()
	for i, t := range tables(res) {
		name := names.next(t.name)
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), name)
		} else {
			_, err = f.NewSheet(name)
		}
		if err == nil {
			err = writeTable(f, name, t, headerStyle)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %s: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write renders the result and writes the workbook to w.
func Write(w io.Writer, res *reconcile.Result) error {
	f, err := Build(res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func writeTable(f *excelize.File, sheet string, t table, headerStyle int) error {
	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]any, len(t.header))
	for i, h := range t.header {
		header[i] = excelize.Cell{StyleID: headerStyle, Value: h}
	}
	if len(header) > 0 {
		if err := sw.SetRow("A1", header); err != nil {
			return err
		}
	}

	for i, row := range t.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := sw.SetRow(cell, row); err != nil {
			return err
		}
	}
	return sw.Flush()
}
