package http

import (
	"time"

	"bookreviews/internal/httpx"
	"bookreviews/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxRequestBytes = 1 << 20 // 1 MiB

type RouterConfig struct {
	Users       usecase.UserRepository
	Books       usecase.BookRepository
	Reviews     usecase.ReviewRepository
	JWTSecret   string
	TokenTTL    time.Duration
	CORSOrigins []string
}

// NewRouter mounts the full API surface with the ambient middleware stack.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(middleware.RealIP)
	r.Use(httpx.AccessLogMiddleware)
	r.Use(httpx.RecoveryMiddleware)
	r.Use(httpx.SecurityHeadersMiddleware)
	r.Use(httpx.RequestSizeLimitMiddleware(maxRequestBytes))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := NewAuthHandler(cfg.Users, cfg.JWTSecret, cfg.TokenTTL)
	bookHandler := NewBookHandler(cfg.Books, cfg.Reviews)
	reviewHandler := NewReviewHandler(cfg.Reviews, cfg.Books, cfg.Users)

	requireAuth := AuthMiddleware(cfg.JWTSecret)
	// Credential endpoints get their own, tighter limiter.
	authLimiter := httpx.NewRateLimitMiddleware(5, 10)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
			r.With(requireAuth).Get("/profile", authHandler.Profile)
		})

		r.Route("/books", func(r chi.Router) {
			r.Get("/", bookHandler.List)
			r.With(requireAuth).Post("/", bookHandler.Create)
			r.Get("/{id}", bookHandler.GetByID)
			r.With(requireAuth).Post("/{id}/reviews", reviewHandler.Create)
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Use(requireAuth)
			r.Put("/{id}", reviewHandler.Update)
			r.Delete("/{id}", reviewHandler.Delete)
		})

		r.Get("/search", bookHandler.Search)
	})

	return r
}
