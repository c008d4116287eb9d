package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

// Payload messages. These strings are part of the public API.
const (
	msgNotFound        = "Not found"
	msgTitleRequired   = "Title is required"
	msgInvalidBody     = "Invalid request body"
	msgInternalFailure = "Internal server error"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any, d deps.Deps) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		d.Logger.Debug("failed to write response", logger.Error(err))
	}
}

// domainStatus picks the status code for a recognized domain outcome.
// The body always carries the error; the code only changes in strict mode.
func domainStatus(d deps.Deps, strict int) int {
	if d.StrictStatus {
		return strict
	}
	return http.StatusOK
}

func writeNotFound(w http.ResponseWriter, d deps.Deps) {
	writeJSON(w, domainStatus(d, http.StatusNotFound), errorResponse{Error: msgNotFound}, d)
}

// writeFault logs an unexpected store error and answers with a generic 500.
// Engine faults never leak into a domain payload.
func writeFault(w http.ResponseWriter, r *http.Request, d deps.Deps, op string, err error) {
	d.Logger.Error("store operation failed",
		logger.String("op", op),
		logger.String("path", r.URL.Path),
		logger.String("request_id", middleware.GetReqID(r.Context())),
		logger.Error(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternalFailure}, d)
}

// NotFound is the fallback for any unmatched path or method.
// It is deliberately distinct from the JSON domain NotFound payload.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte("Not Found"))
}
