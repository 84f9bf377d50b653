package reconcile

import (
	"strings"

	"recon-manager/core/utils"
)

// NormalizeKey converts an identifier value into its matching form.
func NormalizeKey(v any, caseSensitive bool) string {
	key := strings.TrimSpace(utils.ToString(v))
	if !caseSensitive {
		key = strings.ToLower(key)
	}
	return key
}

// Index is the set of normalized identifiers found in one column.
type Index struct {
	keys          map[string]struct{}
	caseSensitive bool
}

// BuildIndex collects the normalized values of column across all rows.
// Rows without a value in the column are skipped.
func BuildIndex(d *Dataset, column string, caseSensitive bool) *Index {
	ix := &Index{
		keys:          make(map[string]struct{}, d.Len()),
		caseSensitive: caseSensitive,
	}
	if d == nil {
		return ix
	}
	for _, row := range d.Rows {
		key := NormalizeKey(row[column], caseSensitive)
		if key == "" {
			continue
		}
		ix.keys[key] = struct{}{}
	}
	return ix
}

// Contains reports whether v, once normalized, is in the index.
func (ix *Index) Contains(v any) bool {
	key := NormalizeKey(v, ix.caseSensitive)
	if key == "" {
		return false
	}
	_, ok := ix.keys[key]
	return ok
}

// Len returns the number of distinct identifiers.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// Lookup maps normalized identifiers to the value of another column.
// When an identifier repeats, the first row wins.
type Lookup struct {
	values        map[string]string
	caseSensitive bool
}

// BuildLookup maps keyColumn to the trimmed valueColumn for every row that has a key.
func BuildLookup(d *Dataset, keyColumn, valueColumn string, caseSensitive bool) *Lookup {
	l := &Lookup{
		values:        make(map[string]string, d.Len()),
		caseSensitive: caseSensitive,
	}
	if d == nil {
		return l
	}
	for _, row := range d.Rows {
		key := NormalizeKey(row[keyColumn], caseSensitive)
		if key == "" {
			continue
		}
		if _, seen := l.values[key]; seen {
			continue
		}
		l.values[key] = strings.TrimSpace(utils.ToString(row[valueColumn]))
	}
	return l
}

// Get returns the value stored for the identifier v.
// A nil Lookup behaves as an empty one.
func (l *Lookup) Get(v any) (string, bool) {
	if l == nil {
		return "", false
	}
	key := NormalizeKey(v, l.caseSensitive)
	if key == "" {
		return "", false
	}
	val, ok := l.values[key]
	return val, ok
}
