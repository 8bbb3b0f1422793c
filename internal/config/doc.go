// Package config resolves the effective runtime configuration for the
// dircast HTTP server from four ordered sources (later sources override
// earlier ones field-by-field):
//  1. Built-in defaults
//  2. YAML config file
//  3. Environment variables (DC_HTTP_*)
//  4. Command-line options (--port, --mode, --root-dir, ...)
//
// Every candidate value is gated by a per-field validator before it is
// applied; an invalid candidate is silently discarded and the previously
// resolved value is kept. The only fatal condition is a final root directory
// that does not exist on disk.
//
// The main entry point is [GetConfig]; [Resolver] exposes the same pipeline
// with injectable seams for tests.
package config
