// Package server holds the HTTP server configuration.
//
// While the cmd package handles the server startup, this package defines the
// listen port, request body limit and I/O timeouts that are handed to Fiber.
//
// # Body limit
//
// A reconciliation request carries three files in one multipart body, so the
// body limit must be at least three times the per-file upload limit. The
// default leaves room for three 100 MB files plus multipart overhead.
package server
