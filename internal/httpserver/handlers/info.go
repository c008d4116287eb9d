package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

type infoResponse struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

// Info serves GET /info/{id}.
func Info(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			NotFound(w, r)
			return
		}

		info, err := d.Store.GetInfo(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				d.Logger.Debug("info lookup for unknown id", logger.String("id", id))
				writeNotFound(w, d)
				return
			}
			writeFault(w, r, d, "get_info", err)
			return
		}

		writeJSON(w, http.StatusOK, infoResponse{
			URL:         info.URL,
			Title:       info.Title,
			Description: info.Description,
		}, d)
	}
}
