// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"tasklist/internal/app"
)

const requestTimeout = 5 * time.Second

// Server is the driving HTTP adapter that routes requests to
// application services.
type Server struct {
	auth  *app.AuthService
	lists *app.ListService
	items *app.ItemService
	log   *zap.Logger
}

// New creates a Server wired to the given application services.
func New(auth *app.AuthService, lists *app.ListService, items *app.ItemService, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{auth: auth, lists: lists, items: items, log: log}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Use(withTimeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Get("/get-session", s.handleGetSession)

	r.Group(func(pr chi.Router) {
		pr.Use(s.requireSession)

		pr.Post("/logout", s.handleLogout)

		pr.Get("/get-lists", s.handleGetLists)
		pr.Post("/add-list", s.handleAddList)
		pr.Put("/update-list/{id}", s.handleUpdateList)
		pr.Delete("/delete-list/{id}", s.handleDeleteList)

		pr.Get("/items/{listID}", s.handleGetItems)
		pr.Post("/add-item", s.handleAddItem)
		pr.Put("/update-item/{id}", s.handleUpdateItem)
		pr.Delete("/delete-item/{id}", s.handleDeleteItem)
	})

	return r
}
