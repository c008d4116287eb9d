package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MrSnakeDoc/snip/internal/domain"
	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/logger"
)

type createRequest struct {
	URL         *string `json:"url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type createResponse struct {
	ID          string  `json:"id"`
	Created     bool    `json:"created"`
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

type createFailedResponse struct {
	Created bool   `json:"created"`
	Error   string `json:"error"`
}

// decodeBody parses exactly one JSON value; anything after it is an error.
func decodeBody(body io.Reader, v any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return errors.New("unexpected data after JSON body")
		}
		return err
	}
	return nil
}

// Create serves POST /new.
func Create(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.MaxBodyBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, d.MaxBodyBytes)
		}

		var req createRequest
		if err := decodeBody(r.Body, &req); err != nil {
			d.Logger.Debug("rejecting malformed body", logger.Error(err))
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody}, d)
			return
		}
		if req.URL == nil || *req.URL == "" {
			d.Logger.Debug("rejecting body without url")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody}, d)
			return
		}

		id, err := d.Store.Insert(r.Context(), *req.URL, req.Title, req.Description)
		switch {
		case errors.Is(err, domain.ErrTitleRequired):
			writeJSON(w, domainStatus(d, http.StatusUnprocessableEntity),
				createFailedResponse{Created: false, Error: msgTitleRequired}, d)
			return
		case errors.Is(err, domain.ErrURLRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidBody}, d)
			return
		case err != nil:
			writeFault(w, r, d, "insert", err)
			return
		}

		d.Logger.Info("shortened url",
			logger.String("id", id),
			logger.String("url", *req.URL))

		writeJSON(w, http.StatusOK, createResponse{
			ID:          id,
			Created:     true,
			URL:         *req.URL,
			Title:       *req.Title,
			Description: req.Description,
		}, d)
	}
}
