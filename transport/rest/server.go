package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires the REST routes. Extra handlers, such as the websocket
// endpoint, are mounted on the same router.
func NewRouter(logger *slog.Logger, sessions sessionUseCase, mounts map[string]http.Handler) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	ping := NewPingHandler(logger.With("component", "ping"))
	handler := NewSessionHandler(logger, sessions)

	router.Get("/ping", ping.Ping)
	router.Post("/sessions", handler.Create)
	router.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", handler.Get)
		r.Post("/ticks", handler.Tick)
		r.Post("/reset", handler.Reset)
		r.Delete("/", handler.Quit)
	})

	for pattern, mounted := range mounts {
		router.Method(http.MethodGet, pattern, mounted)
	}

	return router
}
