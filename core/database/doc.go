// Package database handles database connections and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL or SQLite connections
// from the application's configuration. The database only backs the optional
// run archive ledger; reconciliation itself never touches it.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a ping bounded by the configured timeout.
//
// # Schema Inspection
//
// GetTableColumns reads the live column list of a table (SHOW COLUMNS on MySQL,
// PRAGMA table_info on SQLite). The integrity check uses MissingColumns to
// compare the ledger table against the columns the run model expects.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "reconciliation_runs", []string{"id", "created_at"})
package database
