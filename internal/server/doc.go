// Package server wires and runs the dircast HTTP server.
//
// It provides the server lifecycle: startup, signal handling, and graceful
// shutdown with a bounded grace period.
package server
