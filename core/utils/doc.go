// Package utils provides common utility functions for the recon-manager application.
// It includes helper functions for value conversion and string handling that
// don't fit into domain-specific packages.
package utils
