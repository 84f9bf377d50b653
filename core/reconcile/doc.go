// Package reconcile matches transaction exports from three sources and
// classifies the primary ledger's records against the other two.
//
// The three sources are:
//   - A, the primary ledger, keyed by both an order id and a merchant
//     transaction id.
//   - B, a processor keyed by order id.
//   - C, a processor keyed by merchant transaction id.
//
// # Pipeline
//
// Engine.Run executes a single in-memory pass:
//
//  1. Validate: every required identifier column must be present.
//  2. BuildIndex: one identifier set per join column (B order ids, C merchant
//     ids, and A's own ids for the reverse check).
//  3. Annotate: every A record receives a "present in B" and a "present in C"
//     flag. Order and length of A are preserved.
//  4. JoinStatuses / Decide: raw statuses are joined through the same
//     identifier lookups and run through the action decision table.
//  5. ClassifyAlarmed: A records with a false flag, plus B and C rows with no
//     counterpart in A.
//  6. ClassifyByStatus: when all three status columns exist, each record whose
//     statuses all map to SUCCESS or FAIL lands in one of eight buckets.
//  7. Summarize: counts per source, matched, alarmed and per bucket.
//
// # Key normalization
//
// Identifiers are string-coerced (numbers lose trailing zeros, so 1001 and
// 1001.0 agree), trimmed and, unless Config.CaseSensitive is set, lower-cased.
// Empty identifiers never match anything.
//
// # State
//
// The engine keeps no state between runs. Indices are built per call and
// never shared, so an Engine may be used from several goroutines as long as
// each call receives its own datasets.
//
// # Usage
//
//	engine, err := reconcile.NewEngine(reconcile.DefaultConfig())
//	result, err := engine.Run(a, b, c)
//	fmt.Println(result.Summary.AlarmedCount)
package reconcile
