package httpserver

import (
	"net/http"
	"time"

	"visitbook-go/internal/config"
	"visitbook-go/internal/transport/httpserver/handler"
	"visitbook-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers, auth *middleware.JWTAuth) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           86400,
	}).Handler)

	r.Get("/health", handlers.Health)

	// Login is the only /api/v1 route reachable without a token.
	r.Post("/api/v1/auth/login", handlers.Login)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(auth.Middleware)

		r.Get("/auth/logout", handlers.Logout)

		r.Route("/user", func(r chi.Router) {
			r.Get("/", handlers.ListUsers)
			r.Post("/", handlers.CreateUser)
			r.Get("/search_by_family/{family_id}", handlers.ListUsersByFamily)
			r.Get("/{id}", handlers.GetUser)
			r.Put("/{id}", handlers.UpdateUser)
			r.Delete("/{id}", handlers.DeleteUser)
		})

		r.Route("/family", func(r chi.Router) {
			r.Get("/", handlers.ListFamilies)
			r.Post("/", handlers.CreateFamily)
			r.Get("/search_by_code/{code}", handlers.GetFamilyByCode)
			r.Get("/{id}", handlers.GetFamily)
			r.Put("/{id}", handlers.UpdateFamily)
			r.Delete("/{id}", handlers.DeleteFamily)
		})

		r.Route("/place", func(r chi.Router) {
			r.Get("/", handlers.ListPlaces)
			r.Post("/", handlers.CreatePlace)
			r.Get("/search_by_family/{family_id}", handlers.ListPlacesByFamily)
			r.Get("/{id}", handlers.GetPlace)
			r.Put("/{id}", handlers.UpdatePlace)
			r.Delete("/{id}", handlers.DeletePlace)
		})

		r.Route("/subscription", func(r chi.Router) {
			r.Get("/", handlers.ListSubscriptions)
			r.Post("/", handlers.CreateSubscription)
			r.Get("/search_by_family/{family_id}", handlers.ListSubscriptionsByFamily)
			r.Get("/search_by_family_place/{family_id}/{place_id}", handlers.ListSubscriptionsByFamilyPlace)
			r.Get("/search_by_family_user_days/{family_id}/{user_id}/{days}", handlers.SearchSubscriptionsByFamilyUserDays)
			r.Get("/search_by_family_user_days_events/{family_id}/{user_id}/{days}", handlers.SearchSubscriptionsByFamilyUserDaysEvents)
			r.Get("/{id}", handlers.GetSubscription)
			r.Put("/{id}", handlers.UpdateSubscription)
			r.Delete("/{id}", handlers.DeleteSubscription)
		})

		r.Route("/event", func(r chi.Router) {
			r.Get("/", handlers.ListEvents)
			r.Post("/", handlers.CreateEvent)
			r.Get("/search_by_family/{family_id}/{day}", handlers.ListEventsByFamilyDay)
			r.Get("/search_by_family_place_user_sub/{family_id}/{subscription_id}/{place_id}/{user_id}", handlers.SearchEventsBySlot)
			r.Get("/{id}", handlers.GetEvent)
			r.Put("/{id}", handlers.UpdateEvent)
			r.Delete("/{id}", handlers.DeleteEvent)
		})

		r.Route("/geoloc", func(r chi.Router) {
			r.Post("/", handlers.CreateGeoloc)
			r.Get("/search_today/{user_id}", handlers.ListGeolocsToday)
		})
	})

	return r
}
