package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/httpserver/handlers"
)

func init() { Register(registerRedirect) }

// Single-segment catch-all. Literal routes (/new, /count, /healthz, /readyz)
// win because chi matches static segments before parameters.
func registerRedirect(r chi.Router, d deps.Deps) {
	r.Get("/{id}", handlers.Redirect(d))
}
