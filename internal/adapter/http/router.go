package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/akosua/remitgh/internal/adapter/http/handler"
	"github.com/akosua/remitgh/internal/adapter/http/middleware"
	"github.com/akosua/remitgh/internal/infrastructure/auth"
	"github.com/akosua/remitgh/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AuthHandler      *handler.AuthHandler
	RateHandler      *handler.RateHandler
	RecipientHandler *handler.RecipientHandler
	TransferHandler  *handler.TransferHandler
	HealthHandler    *handler.HealthHandler
	JWTManager       *auth.JWTManager
	IdempotencyStore usecase.IdempotencyStore
	Logger           zerolog.Logger
	RateLimit        float64
	RateBurst        int
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
		r.Use(limiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Idempotency middleware for mutating requests
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.AuthHandler.Register)
			r.Post("/login", cfg.AuthHandler.Login)

			// Onboarding steps run against an issued token.
			r.Group(func(r chi.Router) {
				r.Use(middleware.AuthMiddleware(cfg.JWTManager))
				r.Post("/verify-otp", cfg.AuthHandler.VerifyOTP)
				r.Post("/kyc", cfg.AuthHandler.CompleteKYC)
				r.Put("/country", cfg.AuthHandler.SelectCountry)
				r.Get("/me", cfg.AuthHandler.Me)
			})
		})

		r.Route("/rates", func(r chi.Router) {
			r.Get("/", cfg.RateHandler.List)
			r.Get("/{currency}", cfg.RateHandler.Get)
		})

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(cfg.JWTManager))

			r.Route("/recipients", func(r chi.Router) {
				r.Post("/", cfg.RecipientHandler.Create)
				r.Get("/", cfg.RecipientHandler.List)
				r.Get("/{id}", cfg.RecipientHandler.Get)
				r.Delete("/{id}", cfg.RecipientHandler.Delete)
			})

			r.Route("/transfers", func(r chi.Router) {
				r.Route("/draft", func(r chi.Router) {
					r.Get("/", cfg.TransferHandler.GetDraft)
					r.Delete("/", cfg.TransferHandler.ResetDraft)
					r.Put("/amount", cfg.TransferHandler.SetAmount)
					r.Put("/recipient", cfg.TransferHandler.SetRecipient)
					r.Put("/payment-method", cfg.TransferHandler.SetPaymentMethod)
				})

				r.Post("/", cfg.TransferHandler.Submit)
				r.Get("/", cfg.TransferHandler.ListTransactions)
				r.Get("/{id}", cfg.TransferHandler.GetTransaction)
			})
		})
	})

	return r
}
