// Package workbook renders a reconciliation result as an .xlsx report.
//
// The report opens on a SUMMARY sheet, followed by the action and status
// combination overviews, the annotated primary ledger, the alarmed and
// missing record sheets, one sheet per non-empty status bucket, and finally
// the raw inputs. Sheet names use the configured source labels and are cut
// to the 31 characters Excel allows.
package workbook
