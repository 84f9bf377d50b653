package tabular

import (
	"fmt"
	"strings"

	"recon-manager/core/reconcile"
)

const bom = "\uFEFF"

// fromRows builds a dataset from raw cell rows using the package header rules.
func fromRows(name string, rows [][]string) *reconcile.Dataset {
	d := &reconcile.Dataset{Name: name}

	start := 0
	for start < len(rows) && blankRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		return d
	}

	width := len(rows[start])
	for _, row := range rows[start+1:] {
		if len(row) > width && !blankRow(row) {
			width = len(row)
		}
	}
	header := make([]string, width)
	copy(header, rows[start])
	d.Columns = headers(header)

	for _, row := range rows[start+1:] {
		if blankRow(row) {
			continue
		}
		rec := make(reconcile.Record, len(d.Columns))
		for i, col := range d.Columns {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		d.Rows = append(d.Rows, rec)
	}
	return d
}

// headers trims the header cells, names blank ones "Unnamed: i" and makes
// duplicates unique with a ".n" suffix. Every returned name is distinct.
func headers(row []string) []string {
	out := make([]string, len(row))
	used := make(map[string]struct{}, len(row))
	next := make(map[string]int, len(row))
	for i, h := range row {
		if i == 0 {
			h = strings.TrimPrefix(h, bom)
		}
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		name := h
		for {
			if _, taken := used[name]; !taken {
				break
			}
			next[h]++
			name = fmt.Sprintf("%s.%d", h, next[h])
		}
		used[name] = struct{}{}
		out[i] = name
	}
	return out
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
