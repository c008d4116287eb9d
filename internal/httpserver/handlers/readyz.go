package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

const readyzPingTimeout = 2 * time.Second

type componentStatus struct {
	OK      bool   `json:"ok"`
	Backend string `json:"backend,omitempty"`
	Error   string `json:"error,omitempty"`
}

type readyzResponse struct {
	Ready      bool                       `json:"ready"`
	Components map[string]componentStatus `json:"components"`
}

// Readyz reports whether the url store answers.
func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st := checkStore(r.Context(), d)

		status := http.StatusOK
		if !st.OK {
			status = http.StatusServiceUnavailable
		}

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, status, readyzResponse{
			Ready:      st.OK,
			Components: map[string]componentStatus{"store": st},
		}, d)
	}
}

func checkStore(ctx context.Context, d deps.Deps) componentStatus {
	if d.Store == nil {
		return componentStatus{OK: false, Backend: d.StoreBackend, Error: "store not initialized"}
	}

	ctx, cancel := context.WithTimeout(ctx, readyzPingTimeout)
	defer cancel()

	if err := d.Store.Ping(ctx); err != nil {
		d.Logger.Warn("store ping failed",
			logger.String("backend", d.StoreBackend),
			logger.Error(err))
		return componentStatus{OK: false, Backend: d.StoreBackend, Error: "unreachable"}
	}

	return componentStatus{OK: true, Backend: d.StoreBackend}
}
