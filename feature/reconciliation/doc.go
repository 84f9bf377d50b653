// Package reconciliation exposes the three-way transaction reconciliation over HTTP.
//
// A request uploads the primary ledger and the two processor exports as
// multipart files. The service parses them (core/tabular), runs the engine
// (core/reconcile) and renders the report (core/workbook). Each request is
// independent; no state is shared between runs.
//
// # Archive
//
// When enabled, every finished report is uploaded to object storage under
// "<prefix>/<run-id>.xlsx" and recorded in the reconciliation_runs table. The
// archive is write-only from the point of view of the engine: it is only read
// by the run listing and download endpoints.
//
// # HTTP Endpoints
//
//   - POST /reconcile : file_a, file_b, file_c; returns the xlsx report (?format=json for the summary).
//   - GET /reconcile/runs : Lists archived runs (?limit, ?offset).
//   - GET /reconcile/runs/:id : Returns one archived run.
//   - GET /reconcile/runs/:id/report : Downloads an archived report.
//
// # Errors
//
// Missing files, bad extensions, oversized files and missing identifier
// columns answer 400 with {error, source, field}. Files that cannot be read
// as a table answer 422.
package reconciliation
