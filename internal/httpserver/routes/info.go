package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/MrSnakeDoc/snip/internal/httpserver/deps"
	"github.com/MrSnakeDoc/snip/internal/httpserver/handlers"
)

func init() { Register(registerInfo) }

func registerInfo(r chi.Router, d deps.Deps) {
	r.Get("/info/{id}", handlers.Info(d))
}
