package http

import (
	"net/http"

	"golang.org/x/sync/semaphore"

	"github.com/dircast/dircast/internal/config"
)

// processModeWorkers is the fixed in-flight request budget applied in
// process mode.
const processModeWorkers = 8

// withWorkerLimit bounds concurrent requests with a weighted semaphore when
// the server runs in process mode. Thread mode keeps net/http's
// goroutine-per-request behaviour unbounded, so the middleware collapses to
// the next handler.
func (h *Handler) withWorkerLimit(next http.Handler) http.Handler {
	if h.cfg.Mode != config.ModeProcess {
		return next
	}

	workers := semaphore.NewWeighted(processModeWorkers)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := workers.Acquire(r.Context(), 1); err != nil {
			// client went away while queued
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		defer workers.Release(1)

		next.ServeHTTP(w, r)
	})
}
