// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Mode selects the server's request concurrency model.
type Mode string

const (
	// ModeProcess bounds the number of in-flight requests with a fixed
	// worker budget.
	ModeProcess Mode = "process"

	// ModeThread serves every request on its own goroutine, unbounded.
	ModeThread Mode = "thread"
)

// Default values applied by [NewDefaultConfig]. Every default passes its own
// field validator except DefaultRootDir, which is only checked once resolution
// has finished (the directory may legitimately be created by the operator
// between process starts).
const (
	DefaultPort         = 80
	DefaultMode         = ModeThread
	DefaultRootDir      = "../server_directory"
	DefaultIndexPage    = "/index.html"
	DefaultNotFoundPage = "/404.html"
)

// Config is the resolved runtime configuration. It is mutated in place by the
// override stages during resolution and treated as read-only by every
// consumer afterwards.
type Config struct {
	// Port is the TCP port the HTTP server listens on.
	Port int

	// Mode is the request concurrency model, one of [ModeProcess] or
	// [ModeThread].
	Mode Mode

	// RootDir is the directory files are served from. The final resolved
	// value is guaranteed to name an existing directory.
	RootDir string

	// IndexPage is the path, relative to RootDir, served for directory
	// requests.
	IndexPage string

	// NotFoundPage is the path, relative to RootDir, whose content is
	// served with status 404 on a miss.
	NotFoundPage string

	// released guards against use after Close.
	released bool
}

// NewDefaultConfig returns a Config holding the built-in defaults.
// No validation is performed; the defaults are valid by construction.
func NewDefaultConfig() *Config {
	return &Config{
		Port:         DefaultPort,
		Mode:         DefaultMode,
		RootDir:      DefaultRootDir,
		IndexPage:    DefaultIndexPage,
		NotFoundPage: DefaultNotFoundPage,
	}
}

// Close releases the Config. It must be called exactly once per resolved
// Config; a second call returns [ErrReleased] so a double-release shows up as
// an error instead of silently corrupting state.
func (c *Config) Close() error {
	if c.released {
		return ErrReleased
	}

	c.Port = 0
	c.Mode = ""
	c.RootDir = ""
	c.IndexPage = ""
	c.NotFoundPage = ""
	c.released = true

	return nil
}

// ParseMode canonicalizes a mode candidate. Only the first character matters
// and it is case-folded: `p...` means [ModeProcess], `t...` means
// [ModeThread]. Anything else (including the empty string) is reported as
// invalid with ok == false.
func ParseMode(s string) (Mode, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}

	r, _ := utf8.DecodeRuneInString(s)
	switch unicode.ToLower(r) {
	case 'p':
		return ModeProcess, true
	case 't':
		return ModeThread, true
	}

	return "", false
}
