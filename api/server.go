/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route
  definitions. This is the wiring layer that connects URLs to handlers.

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for the dashboard frontend

ROUTE GROUPS:
  /api/format, /api/words, /api/delta   Display formatting
  /api/calc/*                           Calculations
  /api/history/*                        Stored quotes and runs
  /api/scenarios*                       Demo scenarios

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api", func(r chi.Router) {
		// Display formatting
		r.Get("/format", h.FormatAmount)
		r.Get("/words", h.AmountToWords)
		r.Get("/delta", h.CurrencyDelta)

		// Calculations
		r.Route("/calc", func(r chi.Router) {
			r.Post("/interest", h.CalculateInterest)
			r.Post("/loan", h.CalculateLoan)
			r.Post("/shu", h.CalculateSHU)
			r.Get("/savings", h.MandatorySavings)
		})

		// Calculation history
		r.Route("/history", func(r chi.Router) {
			r.Get("/loans", h.ListLoanQuotes)
			r.Get("/shu", h.ListDistributionRuns)
			r.Get("/shu/{id}", h.GetDistributionRun)
		})

		// Demo scenarios
		r.Get("/scenarios", h.ListScenarios)
		r.Post("/scenarios/load", h.LoadScenario)
	})

	return r
}
