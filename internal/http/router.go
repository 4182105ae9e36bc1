package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notebase/internal/handlers"
	"notebase/internal/storage"
	"notebase/internal/validator"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Store     storage.Store
	Validator *validator.Validator
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(CORS)

	validate := deps.Validator
	if validate == nil {
		validate = validator.New()
	}

	kbHandler := handlers.NewKnowledgeBaseHandler(deps.Store, validate)
	noteHandler := handlers.NewNoteHandler(deps.Store, validate)

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(map[string]handlers.Pinger{"database": deps.Store}))

		r.Route("/knowledge-bases", func(r chi.Router) {
			r.Get("/", kbHandler.List)
			r.Post("/", kbHandler.Create)

			r.Route("/{name}", func(r chi.Router) {
				r.Get("/", kbHandler.Get)
				r.Put("/", kbHandler.Rename)
				r.Delete("/", kbHandler.Delete)
				r.Get("/export", kbHandler.Export)

				r.Get("/notes", noteHandler.List)
				r.Post("/notes", noteHandler.Create)
				r.Get("/notes/{title}", noteHandler.Get)
				r.Put("/notes/{title}", noteHandler.Update)
				r.Delete("/notes/{title}", noteHandler.Delete)
			})
		})

		r.Get("/notes/exists", noteHandler.Exists)
	})

	// Rendered note pages
	r.Method(http.MethodGet, "/notes/{name}/{title}", handlers.NewNotePageHandler(deps.Store))

	return r
}
