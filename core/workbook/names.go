package workbook

import (
	"strconv"
	"strings"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

var sheetNameReplacer = strings.NewReplacer(
	"[", "_", "]", "_", ":", "_", "*", "_", "?", "_", "/", "_", "\\", "_",
)

// sheetNames hands out unique, valid sheet names.
type sheetNames struct {
	used map[string]struct{}
}

func newSheetNames() *sheetNames {
	return &sheetNames{used: map[string]struct{}{}}
}

// next sanitizes and truncates name, adding a numeric suffix on collision.
// Excel compares sheet names case-insensitively; the returned name keeps the
// caller's casing.
func (s *sheetNames) next(name string) string {
	base := strings.Trim(sheetNameReplacer.Replace(strings.TrimSpace(name)), "'")
	if base == "" {
		base = "SHEET"
	}
	base = truncate(base, maxSheetName)

	candidate := base
	for i := 2; ; i++ {
		key := strings.ToUpper(candidate)
		if _, taken := s.used[key]; !taken {
			s.used[key] = struct{}{}
			return candidate
		}
		suffix := "_" + strconv.Itoa(i)
		candidate = truncate(base, maxSheetName-len(suffix)) + suffix
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
