// Package models defines the persisted records of the reconciliation feature.
//
// Run is one archived reconciliation. Column names and types are spelled out
// in gorm tags because the integrity check compares them against the live
// table.
package models
