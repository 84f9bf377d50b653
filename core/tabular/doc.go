// Package tabular turns uploaded spreadsheets into reconcile datasets.
//
// Two formats are supported: comma separated text (.csv) and Office Open XML
// workbooks (.xlsx, first sheet only). Both go through the same header rules:
//
//   - the header is the first row with at least one non-blank cell
//   - a UTF-8 byte order mark in front of the first header is dropped
//   - blank headers become "Unnamed: <index>"
//   - repeated headers get a ".1", ".2" suffix
//   - blank data rows are skipped, short rows are padded with empty cells
//
// Cell values are kept as strings. Uploads are checked for extension and size
// with Validate before any parsing happens; ParseAll parses the three sources
// concurrently.
package tabular
