// Package http serves static files from the resolved root directory.
//
// The handler consumes the resolved configuration read-only: the root
// directory, the index page served for directory requests, the not-found
// page served on a miss, and the concurrency mode that decides whether
// in-flight requests are bounded.
package http
