// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	koanf "github.com/knadh/koanf/v2"

	"github.com/dircast/dircast/internal/logger"
)

// File keys recognized by the file override stage. The flat spellings are
// canonical; the nested ones are honored as fallbacks because config files
// written for earlier releases use them.
const (
	KeyPort         = "port"
	KeyMode         = "mode"
	KeyRootDir      = "root_dir"
	KeyIndexPage    = "index_page"
	KeyNotFoundPage = "not_found_page"

	legacyKeyRootDir      = "directories.root"
	legacyKeyIndexPage    = "pages.index"
	legacyKeyNotFoundPage = "pages.not_found"
)

// Store is the narrow contract this package needs from the on-disk
// configuration store: dotted-key lookups that report present+value or
// absent. The production implementation is returned by [OpenStore].
type Store interface {
	// Str returns the string value at key, or ok == false if the key is
	// absent.
	Str(key string) (string, bool)

	// Int returns the integer value at key, or ok == false if the key is
	// absent or its value is not an integer.
	Int(key string) (int64, bool)
}

type koanfStore struct {
	k *koanf.Koanf
}

// OpenStore reads and parses the YAML config file at path. A missing file or
// a syntax error is returned as an error (koanf reports the offending file,
// line, and message); callers treat either as "no file overrides".
func OpenStore(path string) (Store, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("open config file %s: %w", path, err)
	}

	return &koanfStore{k: k}, nil
}

func (s *koanfStore) Str(key string) (string, bool) {
	if !s.k.Exists(key) {
		return "", false
	}
	return s.k.String(key), true
}

func (s *koanfStore) Int(key string) (int64, bool) {
	if !s.k.Exists(key) {
		return 0, false
	}

	// inspect the parsed value directly: koanf's Int64 coerces strings and
	// floats to 0, which would turn a malformed value into a live candidate
	switch v := s.k.Get(key).(type) {
	case int:
		return int64(v), true
	case int64:
		return v, true
	case uint64:
		if v > math.MaxInt64 {
			return 0, false
		}
		return int64(v), true
	}

	return 0, false
}

// ApplyFileConfig overrides cfg from store, field by field. An absent key
// leaves the field untouched; a present value for port, mode, or root_dir is
// applied only if its validator accepts it, and silently discarded otherwise.
// The two page fields are applied whenever present and non-empty (an empty
// string is "absent" in the YAML surface).
func ApplyFileConfig(cfg *Config, store Store) {
	if v, ok := store.Int(KeyPort); ok && ValidPort(int(v)) {
		cfg.Port = int(v)
	}

	if v, ok := store.Str(KeyMode); ok {
		if mode, valid := ParseMode(v); valid {
			cfg.Mode = mode
		}
	}

	if v, ok := lookupWithLegacy(store, KeyRootDir, legacyKeyRootDir); ok && ValidDirectory(v) {
		cfg.RootDir = v
	}

	if v, ok := lookupWithLegacy(store, KeyIndexPage, legacyKeyIndexPage); ok && v != "" {
		cfg.IndexPage = v
	}

	if v, ok := lookupWithLegacy(store, KeyNotFoundPage, legacyKeyNotFoundPage); ok && v != "" {
		cfg.NotFoundPage = v
	}
}

// lookupWithLegacy prefers the canonical flat key and falls back to the
// legacy nested spelling only when the flat key is absent.
func lookupWithLegacy(store Store, key, legacyKey string) (string, bool) {
	if v, ok := store.Str(key); ok {
		return v, true
	}
	return store.Str(legacyKey)
}

// ApplyFilePathConfig opens the store at path and applies it to cfg.
// An open or parse failure is logged as a diagnostic and leaves cfg
// untouched; resolution always continues.
func ApplyFilePathConfig(cfg *Config, path string, log *logger.Logger) {
	store, err := OpenStore(path)
	if err != nil {
		log.Warn().Err(err).Str("file", path).Msg("config file skipped")
		return
	}

	ApplyFileConfig(cfg, store)
}
