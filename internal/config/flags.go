package config

import (
	"strconv"
	"strings"
)

// Long-form command-line options recognized by the cmdline override stage.
// Each takes exactly one value attached with `=`; there are no short-form
// aliases.
const (
	FlagPort         = "port"
	FlagMode         = "mode"
	FlagRootDir      = "root-dir"
	FlagIndexPage    = "index-page"
	FlagNotFoundPage = "not-found-page"
)

// argScanner walks an argument vector and yields --name=value pairs.
// The cursor lives in the scanner, not in package state, so every
// [ApplyCmdLineConfig] call scans from the start of its own args slice and
// repeated invocations within one process stay independent.
type argScanner struct {
	args []string
	pos  int
}

// next returns the following long-form option that carries an attached value.
// A bare occurrence (`--port` with no `=`) and anything that is not a long
// option are skipped. ok == false means the vector is exhausted.
func (s *argScanner) next() (name, value string, ok bool) {
	for s.pos < len(s.args) {
		arg := s.args[s.pos]
		s.pos++

		if !strings.HasPrefix(arg, "--") {
			continue
		}

		name, value, found := strings.Cut(arg[2:], "=")
		if !found || name == "" {
			continue
		}

		return name, value, true
	}

	return "", "", false
}

// ApplyCmdLineConfig overrides cfg from the long-form options in args.
// Validation mirrors [ApplyEnvConfig] exactly: port must parse entirely as an
// integer and be in range, mode and root dir go through their validators, the
// two page fields are applied whenever non-empty. Unknown options and bare
// occurrences are ignored. When the same option appears more than once the
// last valid occurrence wins.
func ApplyCmdLineConfig(cfg *Config, args []string) {
	scanner := &argScanner{args: args}

	for {
		name, value, ok := scanner.next()
		if !ok {
			return
		}

		switch name {
		case FlagPort:
			if port, err := strconv.Atoi(value); err == nil && ValidPort(port) {
				cfg.Port = port
			}
		case FlagMode:
			if mode, valid := ParseMode(value); valid {
				cfg.Mode = mode
			}
		case FlagRootDir:
			if ValidDirectory(value) {
				cfg.RootDir = value
			}
		case FlagIndexPage:
			if value != "" {
				cfg.IndexPage = value
			}
		case FlagNotFoundPage:
			if value != "" {
				cfg.NotFoundPage = value
			}
		}
	}
}
