// Package checks implements the individual integrity checks of the run archive.
package checks
