package server

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Options tunes the underlying http.Server. Zero fields are filled from
// defaultOptions, so callers only set what they care about.
type Options struct {
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxHeaderBytes int

	// ShutdownGrace bounds how long Shutdown waits for in-flight requests.
	ShutdownGrace time.Duration
}

var defaultOptions = Options{
	ReadTimeout:    10 * time.Second,
	WriteTimeout:   30 * time.Second,
	IdleTimeout:    60 * time.Second,
	MaxHeaderBytes: 1 << 20,
	ShutdownGrace:  10 * time.Second,
}

// withDefaults returns opts with every zero field filled from defaultOptions.
func (o Options) withDefaults() (Options, error) {
	if err := mergo.Merge(&o, defaultOptions); err != nil {
		return Options{}, fmt.Errorf("error merging server options: %w", err)
	}
	return o, nil
}
