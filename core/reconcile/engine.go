package reconcile

import (
	"strings"

	"recon-manager/core/utils"
)

// Engine runs reconciliations with a fixed configuration.
type Engine struct {
	cfg     Config
	mapping StatusMapping
}

// NewEngine validates the configuration and returns an engine.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Check(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:     cfg,
		mapping: NewStatusMapping(cfg.SuccessStatuses, cfg.FailStatuses),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Mapping returns the status mapping in use.
func (e *Engine) Mapping() StatusMapping {
	return e.mapping
}

// columns holds the header names resolved against one set of datasets.
type columns struct {
	orderA, merchantA, statusA string
	orderB, statusB            string
	merchantC, statusC         string
}

// Validate checks that every required identifier column is present.
// The first missing column is reported.
func (e *Engine) Validate(a, b, c *Dataset) error {
	_, err := e.resolve(a, b, c)
	return err
}

func (e *Engine) resolve(a, b, c *Dataset) (columns, error) {
	var cols columns
	var ok bool

	if cols.orderA, ok = requireColumn(a, e.cfg.OrderIDColumnA); !ok {
		return cols, missingColumn(e.cfg.LabelA, e.cfg.OrderIDColumnA)
	}
	if cols.merchantA, ok = requireColumn(a, e.cfg.MerchantTxnColumnA); !ok {
		return cols, missingColumn(e.cfg.LabelA, e.cfg.MerchantTxnColumnA)
	}
	if cols.orderB, ok = requireColumn(b, e.cfg.OrderIDColumnB); !ok {
		return cols, missingColumn(e.cfg.LabelB, e.cfg.OrderIDColumnB)
	}
	if cols.merchantC, ok = requireColumn(c, e.cfg.MerchantTxnColumnC); !ok {
		return cols, missingColumn(e.cfg.LabelC, e.cfg.MerchantTxnColumnC)
	}

	cols.statusA, _ = a.Column(e.cfg.StatusColumnA)
	cols.statusB, _ = b.Column(e.cfg.StatusColumnB)
	cols.statusC, _ = c.Column(e.cfg.StatusColumnC)
	return cols, nil
}

// requireColumn resolves a required column. A blank dataset (no headers and
// no rows) is a legitimate empty source and accepts any column.
func requireColumn(d *Dataset, name string) (string, bool) {
	if d.Blank() {
		return strings.TrimSpace(name), true
	}
	return d.Column(name)
}

// Annotate flags every record of A with its presence in B (by order id) and
// in C (by merchant transaction id). The output has one entry per A row, in order.
func Annotate(a *Dataset, orderColumn, merchantColumn string, indexB, indexC *Index) []AnnotatedRecord {
	out := make([]AnnotatedRecord, a.Len())
	for i := 0; i < a.Len(); i++ {
		row := a.Rows[i]
		orderID := strings.TrimSpace(utils.ToString(row[orderColumn]))
		merchantID := strings.TrimSpace(utils.ToString(row[merchantColumn]))
		out[i] = AnnotatedRecord{
			Row:           i,
			Record:        row,
			OrderID:       orderID,
			MerchantTxnID: merchantID,
			PresentInB:    indexB.Contains(orderID),
			PresentInC:    indexC.Contains(merchantID),
		}
	}
	return out
}

// ClassifyAlarmed collects the A records missing from B or C, and the B and C
// rows whose identifier never appears in A.
func ClassifyAlarmed(annotated []AnnotatedRecord, b *Dataset, orderColumnB string, ordersA *Index, c *Dataset, merchantColumnC string, merchantsA *Index) Alarmed {
	var out Alarmed
	for _, rec := range annotated {
		if rec.Alarmed() {
			out.Primary = append(out.Primary, rec)
		}
	}
	if b != nil {
		for _, row := range b.Rows {
			if !ordersA.Contains(row[orderColumnB]) {
				out.UnmatchedB = append(out.UnmatchedB, row)
			}
		}
	}
	if c != nil {
		for _, row := range c.Rows {
			if !merchantsA.Contains(row[merchantColumnC]) {
				out.UnmatchedC = append(out.UnmatchedC, row)
			}
		}
	}
	return out
}

// Run reconciles the three datasets. Validation happens before any output is
// built; on error no partial result is returned.
func (e *Engine) Run(a, b, c *Dataset) (*Result, error) {
	cols, err := e.resolve(a, b, c)
	if err != nil {
		return nil, err
	}
	cs := e.cfg.CaseSensitive

	indexB := BuildIndex(b, cols.orderB, cs)
	indexC := BuildIndex(c, cols.merchantC, cs)
	ordersA := BuildIndex(a, cols.orderA, cs)
	merchantsA := BuildIndex(a, cols.merchantA, cs)

	annotated := Annotate(a, cols.orderA, cols.merchantA, indexB, indexC)

	lookups := StatusLookups{ColumnA: cols.statusA}
	if cols.statusB != "" {
		lookups.B = BuildLookup(b, cols.orderB, cols.statusB, cs)
	}
	if cols.statusC != "" {
		lookups.C = BuildLookup(c, cols.merchantC, cols.statusC, cs)
	}
	for i, t := range JoinStatuses(annotated, lookups) {
		annotated[i].Status = t
		annotated[i].Decision = Decide(t)
	}

	alarmed := ClassifyAlarmed(annotated, b, cols.orderB, ordersA, c, cols.merchantC, merchantsA)

	var buckets *Buckets
	if lookups.Complete() {
		buckets = ClassifyByStatus(annotated, e.mapping)
	}

	labels := e.cfg.Labels()
	return &Result{
		Labels:    labels,
		A:         a,
		B:         b,
		C:         c,
		Annotated: annotated,
		Alarmed:   alarmed,
		Buckets:   buckets,
		Summary:   Summarize(a, b, c, annotated, alarmed, buckets, labels),
	}, nil
}
