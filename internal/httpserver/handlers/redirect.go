package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

// Redirect serves GET /{id}: a permanent redirect to the stored url.
func Redirect(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			NotFound(w, r)
			return
		}

		target, err := d.Store.GetURL(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				d.Logger.Debug("redirect for unknown id", logger.String("id", id))
				writeNotFound(w, d)
				return
			}
			writeFault(w, r, d, "get_url", err)
			return
		}

		d.Logger.Debug("resolved short link",
			logger.String("id", id),
			logger.String("url", target))

		// Location is the stored value verbatim; http.Redirect would rewrite
		// scheme-less targets relative to the request path.
		w.Header().Set("Location", target)
		w.WriteHeader(http.StatusMovedPermanently)
	}
}
