// Package integrity provides health and integrity checks for the service.
//
// Reconciliation itself is stateless, so only the optional run archive has
// anything to check. With the archive disabled every check reports "skipped".
//
// # Checks Provided
//
//   - Storage: Checks that the archive bucket exists (supports fixing by creating it).
//   - Ledger: Validates that the reconciliation_runs table matches the Run model (columns, types).
//   - Reports: Verifies that the newest archived runs still have their report object, with the recorded size.
//
// # HTTP Endpoints
//
//   - GET /health : Liveness, independent of every dependency.
//   - GET /integrity : Runs all checks (supports ?fix=true).
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/ledger : Runs the ledger schema check.
//   - GET /integrity/reports : Runs the archived reports check.
//
// A check that fails answers 503 so the endpoints can back a readiness probe.
package integrity
