// Package config provides configuration management for the reconciliation service.
//
// It utilizes Viper for loading configuration from environment variables and an
// optional .env file. Defaults live in `default` struct tags next to each field
// and rules in `validate` tags checked by go-playground/validator.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, body limit and timeouts
//   - Upload: accepted extensions and per-file size limit
//   - Reconcile: column names, source labels, status vocabulary
//   - Archive: optional report archive switch and object prefix
//   - Database: MySQL or SQLite connection for the run ledger
//   - Storage: S3/MinIO credentials and bucket for archived reports
//   - Log: Logging level and format
//
// List values such as RECONCILE_SUCCESS_STATUSES are comma separated.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
