// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"io"
	"os"

	"github.com/dircast/dircast/internal/logger"
)

// DefaultFilePath is where the file override stage looks for the YAML config
// file when the resolver is not told otherwise.
const DefaultFilePath = "../config.yaml"

// Resolver runs the four override stages in fixed order and applies the final
// structural check. The zero value is usable: every seam defaults lazily to
// its production counterpart, so tests can replace only what they need.
type Resolver struct {
	// FilePath is the YAML config file location; defaults to
	// [DefaultFilePath].
	FilePath string

	// Lookup reads environment variables; defaults to os.LookupEnv.
	Lookup EnvFunc

	// Stderr receives the fatal root-dir diagnostic; defaults to os.Stderr.
	Stderr io.Writer

	// Exit terminates the process on the fatal path; defaults to os.Exit.
	Exit func(code int)

	// Log receives the file-stage diagnostic; defaults to a nop logger.
	Log *logger.Logger
}

// Resolve builds the effective configuration:
// defaults, then file, env, and cmdline overrides in that order, then the
// fatal root-dir check. Later stages strictly dominate earlier ones
// field-by-field. On a failed final check the offending path is written to
// Stderr and Exit(1) is called; a Config is never handed out in that case.
func (r *Resolver) Resolve(args []string) *Config {
	path := r.FilePath
	if path == "" {
		path = DefaultFilePath
	}
	lookup := r.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	stderr := r.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	exit := r.Exit
	if exit == nil {
		exit = os.Exit
	}
	log := r.Log
	if log == nil {
		log = logger.Nop()
	}

	cfg := NewDefaultConfig()
	ApplyFilePathConfig(cfg, path, log)
	ApplyEnvConfig(cfg, lookup)
	ApplyCmdLineConfig(cfg, args)

	if err := Validate(cfg); err != nil {
		fmt.Fprintf(stderr, "dircast: %v\n", err)
		exit(1)
		return nil // reached only when Exit does not terminate (tests)
	}

	return cfg
}

// Validate performs the single structural check on a resolved Config: the
// root directory must exist. Every other invalid candidate has already been
// discarded upstream in favor of a known-good prior value, but the final root
// directory must be verified because the defaults themselves carry no
// existence guarantee and a missing root is unrecoverable for the server.
func Validate(cfg *Config) error {
	if !ValidDirectory(cfg.RootDir) {
		return fmt.Errorf("%w: %s", ErrRootDirInvalid, cfg.RootDir)
	}
	return nil
}

// GetConfig resolves the configuration with production seams: the default
// file path, the process environment, stderr, and os.Exit. It is the entry
// point both binaries use.
func GetConfig(args []string, log *logger.Logger) *Config {
	r := &Resolver{Log: log}
	return r.Resolve(args)
}
