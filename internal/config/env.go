// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strconv"

// Environment variables recognized by the env override stage.
const (
	EnvPort         = "DC_HTTP_PORT"
	EnvMode         = "DC_HTTP_MODE"
	EnvRootDir      = "DC_HTTP_ROOT_DIR"
	EnvIndexPage    = "DC_HTTP_INDEX_PAGE"
	EnvNotFoundPage = "DC_HTTP_NOT_FOUND_PAGE"
)

// EnvFunc looks up one environment variable and reports whether it is set.
// It exists so the env stage reads process state through an explicitly-passed
// accessor instead of an ambient lookup; production code passes os.LookupEnv.
type EnvFunc func(key string) (string, bool)

// ApplyEnvConfig overrides cfg from the DC_HTTP_* environment variables read
// through lookup. Port must parse entirely as an integer and pass [ValidPort];
// a partially-numeric or out-of-range value is discarded. Mode and root dir
// go through their validators; the two page fields are applied whenever set
// and non-empty. Unset variables leave the field untouched.
func ApplyEnvConfig(cfg *Config, lookup EnvFunc) {
	if raw, ok := lookup(EnvPort); ok {
		if port, err := strconv.Atoi(raw); err == nil && ValidPort(port) {
			cfg.Port = port
		}
	}

	if raw, ok := lookup(EnvMode); ok {
		if mode, valid := ParseMode(raw); valid {
			cfg.Mode = mode
		}
	}

	if raw, ok := lookup(EnvRootDir); ok && ValidDirectory(raw) {
		cfg.RootDir = raw
	}

	if raw, ok := lookup(EnvIndexPage); ok && raw != "" {
		cfg.IndexPage = raw
	}

	if raw, ok := lookup(EnvNotFoundPage); ok && raw != "" {
		cfg.NotFoundPage = raw
	}
}
