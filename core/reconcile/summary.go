package reconcile

// BucketCount is the size of one status combination bucket.
type BucketCount struct {
	Key   StatusKey `json:"key"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
}

// Summary provides aggregate counts for a run.
type Summary struct {
	// RowsA, RowsB and RowsC are the row counts of each source.
	RowsA int `json:"rows_a"`
	RowsB int `json:"rows_b"`
	RowsC int `json:"rows_c"`

	// PresentInB and PresentInC count A records found in each processor.
	PresentInB int `json:"present_in_b"`
	PresentInC int `json:"present_in_c"`
	// Matched counts A records present in both processors.
	Matched int `json:"matched"`

	// MissingInB, MissingInC and MissingInBoth break down the alarmed A records.
	MissingInB    int `json:"missing_in_b"`
	MissingInC    int `json:"missing_in_c"`
	MissingInBoth int `json:"missing_in_both"`

	// AlarmedPrimary counts A records missing from at least one processor.
	AlarmedPrimary int `json:"alarmed_primary"`
	// UnmatchedB and UnmatchedC count processor rows with no counterpart in A.
	UnmatchedB int `json:"unmatched_b"`
	UnmatchedC int `json:"unmatched_c"`
	// AlarmedCount is the size of the whole alarmed set.
	AlarmedCount int `json:"alarmed_count"`

	// StatusClassified reports whether status buckets were computed.
	StatusClassified bool `json:"status_classified"`
	// Buckets lists all eight combinations, including empty ones.
	Buckets []BucketCount `json:"buckets"`
	// Unbucketed counts records left out of the buckets.
	Unbucketed int `json:"unbucketed"`

	// FullyReconciled counts records whose decision needs no action.
	FullyReconciled int `json:"fully_reconciled"`
	// Actions tallies decisions by action, most urgent first.
	Actions []ActionCount `json:"actions"`
}

// Summarize derives the run summary. It has no side effects.
// A nil buckets value means status classification was not possible.
func Summarize(a, b, c *Dataset, annotated []AnnotatedRecord, alarmed Alarmed, buckets *Buckets, labels Labels) Summary {
	s := Summary{
		RowsA:          a.Len(),
		RowsB:          b.Len(),
		RowsC:          c.Len(),
		AlarmedPrimary: len(alarmed.Primary),
		UnmatchedB:     len(alarmed.UnmatchedB),
		UnmatchedC:     len(alarmed.UnmatchedC),
		AlarmedCount:   alarmed.Count(),
		Actions:        CountActions(annotated),
	}

	for _, rec := range annotated {
		if rec.PresentInB {
			s.PresentInB++
		} else {
			s.MissingInB++
		}
		if rec.PresentInC {
			s.PresentInC++
		} else {
			s.MissingInC++
		}
		if rec.Matched() {
			s.Matched++
		}
		if !rec.PresentInB && !rec.PresentInC {
			s.MissingInBoth++
		}
		if rec.Decision.Action == ActionNone {
			s.FullyReconciled++
		}
	}

	s.StatusClassified = buckets != nil
	for _, key := range AllStatusKeys() {
		s.Buckets = append(s.Buckets, BucketCount{
			Key:   key,
			Name:  key.Name(labels),
			Count: buckets.Count(key),
		})
	}
	if buckets != nil {
		s.Unbucketed = buckets.Unknown
	} else {
		s.Unbucketed = len(annotated)
	}

	return s
}
