// Package server runs the HTTP server of the estate API: startup, signal
// handling and graceful shutdown bounded by the configured timeout.
package server
