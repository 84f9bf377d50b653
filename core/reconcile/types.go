package reconcile

import "strings"

// Source identifies one of the three inputs.
type Source string

const (
	// SourceA is the primary ledger.
	SourceA Source = "A"
	// SourceB is the order-keyed processor.
	SourceB Source = "B"
	// SourceC is the merchant-transaction-keyed processor.
	SourceC Source = "C"
)

// Record is one row of a source table, keyed by column header.
// Values are strings or numbers as produced by the parser.
type Record map[string]any

// Dataset is a parsed source table.
type Dataset struct {
	// Name is the file name the dataset was read from, if any.
	Name string
	// Columns holds the headers in their original order.
	Columns []string
	// Rows holds the records in their original order.
	Rows []Record
}

// Len returns the number of rows, treating a nil dataset as empty.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Blank reports whether the dataset has neither headers nor rows.
func (d *Dataset) Blank() bool {
	return d == nil || (len(d.Columns) == 0 && len(d.Rows) == 0)
}

// Column resolves a configured column name against the dataset headers.
// Matching ignores surrounding whitespace and case; the header as it appears
// in the dataset is returned.
func (d *Dataset) Column(name string) (string, bool) {
	if d == nil {
		return "", false
	}
	want := strings.TrimSpace(name)
	if want == "" {
		return "", false
	}
	for _, c := range d.Columns {
		if c == want {
			return c, true
		}
	}
	for _, c := range d.Columns {
		if strings.EqualFold(strings.TrimSpace(c), want) {
			return c, true
		}
	}
	return "", false
}

// AnnotatedRecord is a primary-ledger record with its cross-source flags.
type AnnotatedRecord struct {
	// Row is the zero-based position of the record in source A.
	Row int `json:"row"`
	// Record is the original row.
	Record Record `json:"record"`
	// OrderID is the trimmed order id as written in A.
	OrderID string `json:"order_id"`
	// MerchantTxnID is the trimmed merchant transaction id as written in A.
	MerchantTxnID string `json:"merchant_txn_id"`
	// PresentInB reports whether OrderID appears in source B.
	PresentInB bool `json:"present_in_b"`
	// PresentInC reports whether MerchantTxnID appears in source C.
	PresentInC bool `json:"present_in_c"`
	// Status holds the raw statuses joined from the three sources.
	Status StatusTriple `json:"status"`
	// Decision is the outcome of the action decision table.
	Decision Decision `json:"decision"`
}

// Alarmed reports whether the record is missing from B or C.
func (r AnnotatedRecord) Alarmed() bool {
	return !r.PresentInB || !r.PresentInC
}

// Matched reports whether the record is present in both B and C.
func (r AnnotatedRecord) Matched() bool {
	return r.PresentInB && r.PresentInC
}

// Alarmed groups every record that needs attention.
type Alarmed struct {
	// Primary holds A records missing from B, C or both, in A's order.
	Primary []AnnotatedRecord
	// UnmatchedB holds B rows whose order id never appears in A.
	UnmatchedB []Record
	// UnmatchedC holds C rows whose merchant transaction id never appears in A.
	UnmatchedC []Record
}

// Count returns the size of the alarmed set.
func (a Alarmed) Count() int {
	return len(a.Primary) + len(a.UnmatchedB) + len(a.UnmatchedC)
}

// Result is the full output of one reconciliation run.
type Result struct {
	Labels    Labels
	A         *Dataset
	B         *Dataset
	C         *Dataset
	Annotated []AnnotatedRecord
	Alarmed   Alarmed
	Buckets   *Buckets
	Summary   Summary
}
