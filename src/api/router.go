package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/config"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, cfg config.Config) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.DemoModeMiddleware(cfg.DemoMode))

	r.Get("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", handlers.Register(pool, cfg))
		r.Post("/auth/login", handlers.Login(pool, cfg))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(cfg.JWTSecret)).Group(func(r chi.Router) {
			// Transactions
			r.Get("/transactions", handlers.ListTransactions(pool))
			r.Post("/transactions", handlers.CreateTransaction(pool))
			r.Put("/transactions/{id}", handlers.UpdateTransaction(pool))
			r.Delete("/transactions/{id}", handlers.DeleteTransaction(pool))

			// Dashboard
			r.Get("/dashboard/summary", handlers.GetDashboardSummary(pool))

			// User
			r.Get("/user", handlers.GetProfile(pool))
			r.Post("/user/change-password", handlers.ChangePassword(pool))
			r.Delete("/user", handlers.DeleteAccount(pool))
		})
	})

	return r
}
