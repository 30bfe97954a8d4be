package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mpattadkal/baxi/logger"
)

// NewRouter builds the HTTP router with the standard middleware chain
// and all application routes mounted.
func NewRouter(log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(TraceMiddleware(log))

	h := NewHandlers(log)
	r.Get("/", h.Root)
	r.Get("/Animal", h.Animal)
	r.Get("/items/{item_id}", h.Item)

	return r
}
