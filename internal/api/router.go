package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"gorm.io/gorm"

	"github.com/kashf-health/kashf/internal/api/handlers"
	mw "github.com/kashf-health/kashf/internal/api/middleware"
)

type Dependencies struct {
	DB                  *gorm.DB
	Verifier            mw.Verifier
	AuthHandler         *handlers.AuthHandler
	ProfilesHandler     *handlers.ProfilesHandler
	MessagesHandler     *handlers.MessagesHandler
	AppointmentsHandler *handlers.AppointmentsHandler
}

func NewRouter(dep Dependencies) http.Handler {
	r := chi.NewRouter()

	// Built-in middleware
	r.Use(mw.RequestID)
	r.Use(mw.Recovery)
	r.Use(mw.Logging)
	r.Use(mw.CORS)
	r.Use(mw.RateLimit(10, 20))
	r.Use(chimid.Compress(5))

	// Health endpoints
	hh := handlers.NewHealthHandler(dep.DB)
	r.Get("/health", hh.Liveness)
	r.Get("/readyz", hh.Readiness)

	// Swagger documentation
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	r.Route("/api", func(api chi.Router) {
		// Auth routes (public)
		api.Route("/auth", func(ar chi.Router) {
			ar.Post("/register", dep.AuthHandler.Register)
			ar.Post("/login", dep.AuthHandler.Login)
		})

		// Directory reads are public
		api.Get("/profiles", dep.ProfilesHandler.Search)
		api.Get("/profiles/{id}", dep.ProfilesHandler.Get)

		// Protected routes
		api.Group(func(protected chi.Router) {
			protected.Use(mw.Auth(dep.Verifier))

			protected.Post("/profiles", dep.ProfilesHandler.Upsert)
			protected.Post("/messages", dep.MessagesHandler.Send)
			protected.Get("/messages/conversation/{a}/{b}", dep.MessagesHandler.Conversation)
			protected.Post("/appointments", dep.AppointmentsHandler.Book)
		})
	})

	return r
}
