package reconcile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"recon-manager/core/utils"
)

// Category is the bucketed form of a raw status string.
type Category string

const (
	CategorySuccess Category = "SUCCESS"
	CategoryFail    Category = "FAIL"
	CategoryUnknown Category = "UNKNOWN"
)

// maxSheetTitle is the longest worksheet title a spreadsheet accepts.
const maxSheetTitle = 31

// Short returns the one-letter form of the category: S, F or U.
func (c Category) Short() string {
	if c == "" {
		return "U"
	}
	return string(c)[:1]
}

// StatusTriple holds the raw statuses of one A record as found in A, B and C.
// An empty string means the status is missing.
type StatusTriple struct {
	A string `json:"a"`
	B string `json:"b"`
	C string `json:"c"`
}

// StatusKey is the categorized form of a StatusTriple.
type StatusKey struct {
	A Category `json:"a"`
	B Category `json:"b"`
	C Category `json:"c"`
}

// Known reports whether all three categories are SUCCESS or FAIL.
func (k StatusKey) Known() bool {
	return k.A != CategoryUnknown && k.B != CategoryUnknown && k.C != CategoryUnknown
}

// Name renders the key as e.g. "A_SUCCESS_B_FAIL_C_FAIL".
func (k StatusKey) Name(l Labels) string {
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s", l.A, k.A, l.B, k.B, l.C, k.C)
}

// SheetName renders the key for a worksheet title. It is Name when that fits
// in maxSheetTitle characters, and the compact form "A_S_B_F_C_F" otherwise.
func (k StatusKey) SheetName(l Labels) string {
	if name := k.Name(l); utf8.RuneCountInString(name) <= maxSheetTitle {
		return name
	}
	return fmt.Sprintf("%s_%s_%s_%s_%s_%s", l.A, k.A.Short(), l.B, k.B.Short(), l.C, k.C.Short())
}

// AllStatusKeys returns the eight known combinations in a fixed order.
func AllStatusKeys() []StatusKey {
	cats := []Category{CategorySuccess, CategoryFail}
	keys := make([]StatusKey, 0, 8)
	for _, a := range cats {
		for _, b := range cats {
			for _, c := range cats {
				keys = append(keys, StatusKey{A: a, B: b, C: c})
			}
		}
	}
	return keys
}

// StatusMapping maps raw status strings to categories.
type StatusMapping struct {
	categories map[string]Category
}

// NewStatusMapping builds a mapping from the success and fail vocabularies.
// Matching ignores case and surrounding whitespace.
func NewStatusMapping(success, fail []string) StatusMapping {
	m := StatusMapping{categories: make(map[string]Category, len(success)+len(fail))}
	for _, s := range success {
		if n := normalizeStatus(s); n != "" {
			m.categories[n] = CategorySuccess
		}
	}
	for _, s := range fail {
		if n := normalizeStatus(s); n != "" {
			m.categories[n] = CategoryFail
		}
	}
	return m
}

// Categorize returns the category of a raw status; unmapped or empty values are UNKNOWN.
func (m StatusMapping) Categorize(status string) Category {
	if c, ok := m.categories[normalizeStatus(status)]; ok {
		return c
	}
	return CategoryUnknown
}

// Key categorizes every status of the triple.
func (m StatusMapping) Key(t StatusTriple) StatusKey {
	return StatusKey{A: m.Categorize(t.A), B: m.Categorize(t.B), C: m.Categorize(t.C)}
}

func normalizeStatus(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// StatusLookups gives access to the status of an A record in each source.
// A nil field means that source has no status column.
type StatusLookups struct {
	// ColumnA is the resolved status column of A, empty when absent.
	ColumnA string
	// B maps B order ids to statuses.
	B *Lookup
	// C maps C merchant transaction ids to statuses.
	C *Lookup
}

// Complete reports whether a status is available from all three sources.
func (s StatusLookups) Complete() bool {
	return s.ColumnA != "" && s.B != nil && s.C != nil
}

// JoinStatuses returns the raw status triple of every annotated record.
// A's status is read from the record itself; B and C are joined through the
// same identifiers used for presence.
func JoinStatuses(annotated []AnnotatedRecord, lookups StatusLookups) []StatusTriple {
	out := make([]StatusTriple, len(annotated))
	for i, rec := range annotated {
		var t StatusTriple
		if lookups.ColumnA != "" {
			t.A = strings.TrimSpace(utils.ToString(rec.Record[lookups.ColumnA]))
		}
		t.B, _ = lookups.B.Get(rec.OrderID)
		t.C, _ = lookups.C.Get(rec.MerchantTxnID)
		out[i] = t
	}
	return out
}

// Buckets groups annotated records by their status combination.
type Buckets struct {
	// Keys holds the key of every annotated record, in the same order.
	Keys []StatusKey
	// Members maps each known key to the positions of its records.
	Members map[StatusKey][]int
	// Unknown counts records left out because a status was missing or unmapped.
	Unknown int
}

// Count returns the number of records in the bucket for k.
func (b *Buckets) Count(k StatusKey) int {
	if b == nil {
		return 0
	}
	return len(b.Members[k])
}

// Total returns the number of bucketed records.
func (b *Buckets) Total() int {
	if b == nil {
		return 0
	}
	n := 0
	for _, m := range b.Members {
		n += len(m)
	}
	return n
}

// ClassifyByStatus assigns every record whose three statuses are all known to
// exactly one of the eight buckets. Records with an UNKNOWN status are only counted.
func ClassifyByStatus(annotated []AnnotatedRecord, mapping StatusMapping) *Buckets {
	b := &Buckets{
		Keys:    make([]StatusKey, len(annotated)),
		Members: make(map[StatusKey][]int, 8),
	}
	for i, rec := range annotated {
		key := mapping.Key(rec.Status)
		b.Keys[i] = key
		if !key.Known() {
			b.Unknown++
			continue
		}
		b.Members[key] = append(b.Members[key], i)
	}
	return b
}
