package tui

import (
	"strconv"
	"strings"

	"github.com/dircast/dircast/internal/config"
)

type fieldID int

const (
	fieldPort fieldID = iota
	fieldMode
	fieldRootDir
	fieldIndexPage
	fieldNotFoundPage

	fieldCount
)

func fieldLabel(id fieldID) string {
	switch id {
	case fieldPort:
		return "Port"
	case fieldMode:
		return "Mode"
	case fieldRootDir:
		return "Root directory"
	case fieldIndexPage:
		return "Index page"
	case fieldNotFoundPage:
		return "Not found page"
	}
	return "?"
}

func fieldValue(cfg *config.Config, id fieldID) string {
	switch id {
	case fieldPort:
		return strconv.Itoa(cfg.Port)
	case fieldMode:
		return string(cfg.Mode)
	case fieldRootDir:
		return cfg.RootDir
	case fieldIndexPage:
		return cfg.IndexPage
	case fieldNotFoundPage:
		return cfg.NotFoundPage
	}
	return ""
}

// fieldHint is shown under the edit form so the operator knows what the
// field accepts.
func fieldHint(id fieldID) string {
	switch id {
	case fieldPort:
		return "integer 0..65535"
	case fieldMode:
		return "process (p) or thread (t)"
	case fieldRootDir:
		return "existing directory"
	case fieldIndexPage, fieldNotFoundPage:
		return "path relative to the root directory"
	}
	return ""
}

// applyField validates raw for the given field and, only when it passes,
// assigns it to cfg. It reports whether the candidate was applied; a rejected
// candidate leaves cfg untouched.
func applyField(cfg *config.Config, id fieldID, raw string) bool {
	raw = strings.TrimSpace(raw)

	switch id {
	case fieldPort:
		port, err := strconv.Atoi(raw)
		if err != nil || !config.ValidPort(port) {
			return false
		}
		cfg.Port = port
	case fieldMode:
		mode, ok := config.ParseMode(raw)
		if !ok {
			return false
		}
		cfg.Mode = mode
	case fieldRootDir:
		if !config.ValidDirectory(raw) {
			return false
		}
		cfg.RootDir = raw
	case fieldIndexPage:
		if raw == "" {
			return false
		}
		cfg.IndexPage = raw
	case fieldNotFoundPage:
		if raw == "" {
			return false
		}
		cfg.NotFoundPage = raw
	default:
		return false
	}

	return true
}
