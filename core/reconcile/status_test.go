package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping_Categorize(t *testing.T) {
	m := NewStatusMapping([]string{"SUCCESS", "Completed"}, []string{"FAILED", " declined "})

	tests := []struct {
		in   string
		want Category
	}{
		{"SUCCESS", CategorySuccess},
		{"success", CategorySuccess},
		{" completed ", CategorySuccess},
		{"FAILED", CategoryFail},
		{"Declined", CategoryFail},
		{"PENDING", CategoryUnknown},
		{"", CategoryUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, m.Categorize(tt.in), tt.in)
	}
}

func TestAllStatusKeys(t *testing.T) {
	keys := AllStatusKeys()
	require.Len(t, keys, 8)

	seen := map[StatusKey]bool{}
	for _, k := range keys {
		assert.True(t, k.Known())
		assert.False(t, seen[k], "duplicate key %v", k)
		seen[k] = true
	}

	labels := Labels{A: "A", B: "B", C: "C"}
	assert.Equal(t, "A_SUCCESS_B_SUCCESS_C_SUCCESS", keys[0].Name(labels))
	assert.Equal(t, "A_FAIL_B_FAIL_C_FAIL", keys[7].Name(labels))
	assert.Equal(t, "LEDGER_SUCCESS_CF_FAIL_AUG_SUCCESS",
		StatusKey{CategorySuccess, CategoryFail, CategorySuccess}.Name(Labels{A: "LEDGER", B: "CF", C: "AUG"}))
}

// TestClassifyByStatus_Partition checks that known records land in exactly one bucket.
func TestClassifyByStatus_Partition(t *testing.T) {
	m := NewStatusMapping([]string{"SUCCESS"}, []string{"FAIL"})
	annotated := []AnnotatedRecord{
		{Status: StatusTriple{"SUCCESS", "SUCCESS", "SUCCESS"}},
		{Status: StatusTriple{"SUCCESS", "FAIL", "FAIL"}},
		{Status: StatusTriple{"success", "fail", "FAIL"}},
		{Status: StatusTriple{"SUCCESS", "", "FAIL"}},
		{Status: StatusTriple{"PENDING", "SUCCESS", "SUCCESS"}},
		{Status: StatusTriple{"FAIL", "FAIL", "FAIL"}},
	}

	b := ClassifyByStatus(annotated, m)
	require.Len(t, b.Keys, len(annotated))

	assert.Equal(t, 1, b.Count(StatusKey{CategorySuccess, CategorySuccess, CategorySuccess}))
	assert.Equal(t, 2, b.Count(StatusKey{CategorySuccess, CategoryFail, CategoryFail}))
	assert.Equal(t, 1, b.Count(StatusKey{CategoryFail, CategoryFail, CategoryFail}))
	assert.Equal(t, 2, b.Unknown)
	assert.Equal(t, len(annotated), b.Total()+b.Unknown)

	assert.Equal(t, []int{1, 2}, b.Members[StatusKey{CategorySuccess, CategoryFail, CategoryFail}])
}

func TestBuckets_NilSafe(t *testing.T) {
	var b *Buckets
	assert.Equal(t, 0, b.Count(StatusKey{}))
	assert.Equal(t, 0, b.Total())
}

// TestJoinStatuses checks that B and C statuses follow the presence identifiers.
func TestJoinStatuses(t *testing.T) {
	b := dataset(colsB,
		Record{"OrderId": "O1", "Status": " SUCCESS "},
		Record{"OrderId": "o1", "Status": "FAIL"},
	)
	c := dataset(colsC, Record{"MerchantTransactionId": "M1", "Status": "FAIL"})

	annotated := []AnnotatedRecord{
		{OrderID: "O1", MerchantTxnID: "M1", Record: Record{"Status": "SUCCESS"}},
		{OrderID: "O2", MerchantTxnID: "M2", Record: Record{"Status": 3.0}},
	}
	lookups := StatusLookups{
		ColumnA: "Status",
		B:       BuildLookup(b, "OrderId", "Status", false),
		C:       BuildLookup(c, "MerchantTransactionId", "Status", false),
	}
	require.True(t, lookups.Complete())

	got := JoinStatuses(annotated, lookups)
	assert.Equal(t, StatusTriple{"SUCCESS", "SUCCESS", "FAIL"}, got[0])
	assert.Equal(t, StatusTriple{"3", "", ""}, got[1])
}

func TestStatusLookups_Complete(t *testing.T) {
	assert.False(t, StatusLookups{}.Complete())
	assert.False(t, StatusLookups{ColumnA: "Status", B: &Lookup{}}.Complete())
	assert.True(t, StatusLookups{ColumnA: "Status", B: &Lookup{}, C: &Lookup{}}.Complete())
}

// TestRun_StatusColumnMissing checks that buckets are skipped when a source has no status.
func TestRun_StatusColumnMissing(t *testing.T) {
	e := newTestEngine(t)

	a := dataset(colsA, Record{"OrderId": "O1", "MerchantTransactionId": "M1", "Status": "SUCCESS"})
	b := dataset(colsB, Record{"OrderId": "O1", "Status": "SUCCESS"})
	c := dataset([]string{"MerchantTransactionId"}, Record{"MerchantTransactionId": "M1"})

	res, err := e.Run(a, b, c)
	require.NoError(t, err)
	assert.Nil(t, res.Buckets)
	assert.False(t, res.Summary.StatusClassified)
	assert.Equal(t, 1, res.Summary.Unbucketed)
	assert.Len(t, res.Summary.Buckets, 8)
}

func TestStatusKey_SheetName(t *testing.T) {
	key := StatusKey{A: CategorySuccess, B: CategoryFail, C: CategorySuccess}

	tests := []struct {
		name   string
		labels Labels
		want   string
	}{
		{"default labels keep the full name", Labels{A: "A", B: "B", C: "C"}, "A_SUCCESS_B_FAIL_C_SUCCESS"},
		{"short labels that fit", Labels{A: "FIN", B: "CF", C: "AUG"}, "FIN_SUCCESS_CF_FAIL_AUG_SUCCESS"},
		{"long labels use the compact form", Labels{A: "LEDGERS", B: "CASHFRE", C: "AUGMONT"}, "LEDGERS_S_CASHFRE_F_AUGMONT_S"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := key.SheetName(tt.labels)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len([]rune(got)), maxSheetTitle)
		})
	}

	// every compact name stays distinct with the longest allowed labels
	labels := Labels{A: "AAAAAAA", B: "BBBBBBB", C: "CCCCCCC"}
	seen := map[string]bool{}
	for _, k := range AllStatusKeys() {
		name := k.SheetName(labels)
		assert.LessOrEqual(t, len([]rune(name)), maxSheetTitle)
		assert.False(t, seen[name], name)
		seen[name] = true
	}
}
