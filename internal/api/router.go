package api

import (
	"net/http"
	"time"

	"galaxy_api/internal/api/handler"
	"galaxy_api/internal/app/service"
	"galaxy_api/internal/common/security"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(
	authService *service.AuthService,
	userService *service.UserService,
	locationService *service.LocationService,
	empireService *service.EmpireService,
	policy *security.Policy,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// API v1 Routes
	r.Route("/api/v1", func(v1 chi.Router) {
		// Login (public)
		authHandler := handler.NewAuthHandler(authService)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// User routes (create public, rest role-gated)
		userHandler := handler.NewUserHandler(userService, policy)
		v1.Route("/users", userHandler.RegisterRoutes)

		// Location routes (role-gated)
		locationHandler := handler.NewLocationHandler(locationService, policy)
		v1.Route("/locations", locationHandler.RegisterRoutes)

		// Empire routes (role-gated)
		empireHandler := handler.NewEmpireHandler(empireService, policy)
		v1.Route("/empires", empireHandler.RegisterRoutes)
	})

	return r
}
