package workbook

import (
	"fmt"
	"sort"

	"recon-manager/core/reconcile"
)

// table is one sheet worth of cells.
type table struct {
	name   string
	header []string
	rows   [][]any
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func summaryTable(res *reconcile.Result) table {
	s, l := res.Summary, res.Labels
	rows := [][]any{
		{fmt.Sprintf("Records in %s", l.A), s.RowsA},
		{fmt.Sprintf("Records in %s", l.B), s.RowsB},
		{fmt.Sprintf("Records in %s", l.C), s.RowsC},
		{fmt.Sprintf("%s records found in %s", l.A, l.B), s.PresentInB},
		{fmt.Sprintf("%s records found in %s", l.A, l.C), s.PresentInC},
		{fmt.Sprintf("%s records found in both", l.A), s.Matched},
		{fmt.Sprintf("Missing in %s", l.B), s.MissingInB},
		{fmt.Sprintf("Missing in %s", l.C), s.MissingInC},
		{"Missing in both", s.MissingInBoth},
		{fmt.Sprintf("Alarmed %s records", l.A), s.AlarmedPrimary},
		{fmt.Sprintf("Unmatched %s records", l.B), s.UnmatchedB},
		{fmt.Sprintf("Unmatched %s records", l.C), s.UnmatchedC},
		{"Total alarmed", s.AlarmedCount},
		{"Fully reconciled", s.FullyReconciled},
		{"Status classified", yesNo(s.StatusClassified)},
		{"Not bucketed", s.Unbucketed},
	}
	for _, b := range s.Buckets {
		rows = append(rows, []any{b.Name, b.Count})
	}
	return table{name: "SUMMARY", header: []string{"Metric", "Value"}, rows: rows}
}

func actionTable(res *reconcile.Result) table {
	t := table{name: "ACTION_SUMMARY", header: []string{"Action", "Priority", "Count"}}
	for _, a := range res.Summary.Actions {
		t.rows = append(t.rows, []any{a.Action, a.Priority, a.Count})
	}
	return t
}

// combinationTable counts the raw status triples, most frequent first.
func combinationTable(res *reconcile.Result) table {
	l := res.Labels
	t := table{
		name:   "STATUS_COMBINATIONS",
		header: []string{l.A + "_STATUS", l.B + "_STATUS", l.C + "_STATUS", "Count"},
	}

	counts := map[reconcile.StatusTriple]int{}
	var order []reconcile.StatusTriple
	for _, rec := range res.Annotated {
		if _, ok := counts[rec.Status]; !ok {
			order = append(order, rec.Status)
		}
		counts[rec.Status]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	for _, st := range order {
		t.rows = append(t.rows, []any{orMissing(st.A), orMissing(st.B), orMissing(st.C), counts[st]})
	}
	return t
}

func orMissing(s string) string {
	if s == "" {
		return "MISSING"
	}
	return s
}

// annotatedHeader is A's columns followed by the derived columns.
func annotatedHeader(res *reconcile.Result) []string {
	l := res.Labels
	h := append([]string{}, columnsOf(res.A)...)
	return append(h,
		"IN_"+l.B, "IN_"+l.C,
		l.A+"_STATUS", l.B+"_STATUS", l.C+"_STATUS",
		"CATEGORY", "ACTION", "PRIORITY",
	)
}

func annotatedRow(res *reconcile.Result, rec reconcile.AnnotatedRecord) []any {
	row := recordRow(columnsOf(res.A), rec.Record)
	return append(row,
		yesNo(rec.PresentInB), yesNo(rec.PresentInC),
		rec.Status.A, rec.Status.B, rec.Status.C,
		rec.Decision.Category, rec.Decision.Action, rec.Decision.Priority,
	)
}

func annotatedTable(res *reconcile.Result, name string, keep func(reconcile.AnnotatedRecord) bool) table {
	t := table{name: name, header: annotatedHeader(res)}
	for _, rec := range res.Annotated {
		if keep(rec) {
			t.rows = append(t.rows, annotatedRow(res, rec))
		}
	}
	return t
}

func alarmedTable(res *reconcile.Result) table {
	l := res.Labels
	t := table{name: "ALARMED_RECORDS", header: append(annotatedHeader(res), "MISSING_FROM")}
	for _, rec := range res.Alarmed.Primary {
		var missing string
		switch {
		case !rec.PresentInB && !rec.PresentInC:
			missing = l.B + "," + l.C
		case !rec.PresentInB:
			missing = l.B
		default:
			missing = l.C
		}
		t.rows = append(t.rows, append(annotatedRow(res, rec), missing))
	}
	return t
}

func bucketTables(res *reconcile.Result) []table {
	if res.Buckets == nil {
		return nil
	}
	var out []table
	for _, key := range reconcile.AllStatusKeys() {
		members := res.Buckets.Members[key]
		if len(members) == 0 {
			continue
		}
		t := table{name: key.SheetName(res.Labels), header: annotatedHeader(res)}
		for _, i := range members {
			t.rows = append(t.rows, annotatedRow(res, res.Annotated[i]))
		}
		out = append(out, t)
	}
	return out
}

func recordsTable(name string, d *reconcile.Dataset, rows []reconcile.Record) table {
	cols := columnsOf(d)
	t := table{name: name, header: cols}
	for _, r := range rows {
		t.rows = append(t.rows, recordRow(cols, r))
	}
	return t
}

func rawTable(label string, d *reconcile.Dataset) table {
	var rows []reconcile.Record
	if d != nil {
		rows = d.Rows
	}
	return recordsTable("RAW_"+label, d, rows)
}

func columnsOf(d *reconcile.Dataset) []string {
	if d == nil {
		return nil
	}
	return d.Columns
}

func recordRow(cols []string, r reconcile.Record) []any {
	row := make([]any, len(cols))
	for i, c := range cols {
		row[i] = r[c]
	}
	return row
}

// tables lists every sheet of the report in order.
func tables(res *reconcile.Result) []table {
	l := res.Labels
	out := []table{
		summaryTable(res),
		actionTable(res),
		combinationTable(res),
		annotatedTable(res, "COMPLETE_"+l.A, func(reconcile.AnnotatedRecord) bool { return true }),
		alarmedTable(res),
		annotatedTable(res, "MISSING_IN_"+l.B, func(r reconcile.AnnotatedRecord) bool { return !r.PresentInB }),
		annotatedTable(res, "MISSING_IN_"+l.C, func(r reconcile.AnnotatedRecord) bool { return !r.PresentInC }),
		annotatedTable(res, "MISSING_IN_BOTH", func(r reconcile.AnnotatedRecord) bool { return !r.PresentInB && !r.PresentInC }),
		recordsTable("UNMATCHED_"+l.B, res.B, res.Alarmed.UnmatchedB),
		recordsTable("UNMATCHED_"+l.C, res.C, res.Alarmed.UnmatchedC),
	}
	out = append(out, bucketTables(res)...)
	return append(out,
		rawTable(l.A, res.A),
		rawTable(l.B, res.B),
		rawTable(l.C, res.C),
	)
}
