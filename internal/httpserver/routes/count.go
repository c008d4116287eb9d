package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/httpserver/handlers"
)

func init() { Register(registerCount) }

func registerCount(r chi.Router, d deps.Deps) {
	r.Get("/count", handlers.Count(d))
}
