package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/httpserver/handlers"
)

func init() { Register(registerCreate) }

func registerCreate(r chi.Router, d deps.Deps) {
	r.Post("/new", handlers.Create(d))

	// chi would otherwise route GET /new to /{id}.
	r.Get("/new", handlers.NotFound)
}
