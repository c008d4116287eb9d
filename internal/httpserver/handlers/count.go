package handlers

import (
	"net/http"
	"strconv"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

// Count serves GET /count as a plain-text integer.
func Count(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n, err := d.Store.Count(r.Context())
		if err != nil {
			writeFault(w, r, d, "count", err)
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(strconv.FormatInt(n, 10))); err != nil {
			d.Logger.Debug("failed to write response", logger.Error(err))
		}
	}
}
