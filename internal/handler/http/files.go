// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/dircast/dircast/internal/logger"
)

// serveFile resolves the request path inside the root directory and serves
// the file there. Directory requests (including "/") fall through to the
// configured index page; any miss is answered by notFound. Cleaning the
// rooted request path first keeps ".." segments from escaping the root.
func (h *Handler) serveFile(w http.ResponseWriter, r *http.Request) {
	requested := path.Clean("/" + r.URL.Path)
	full := filepath.Join(h.cfg.RootDir, filepath.FromSlash(requested))

	info, err := os.Stat(full)
	if err == nil && info.IsDir() {
		full = filepath.Join(h.cfg.RootDir, filepath.FromSlash(h.cfg.IndexPage))
		info, err = os.Stat(full)
	}
	if err != nil || info.IsDir() {
		h.notFound(w, r)
		return
	}

	http.ServeFile(w, r, full)
}

// notFound serves the configured not-found page with status 404, falling
// back to a plain 404 when that page itself is missing.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	full := filepath.Join(h.cfg.RootDir, filepath.FromSlash(h.cfg.NotFoundPage))

	body, err := os.ReadFile(full)
	if err != nil {
		logger.FromRequest(r).Debug().Str("page", full).Msg("not-found page unreadable, serving plain 404")
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if r.Method != http.MethodHead {
		w.Write(body)
	}
}
