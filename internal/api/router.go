// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/remaimber-it/quiz/docs" // swagger spec
)

// RouterConfig holds the settings for NewRouter.
type RouterConfig struct {
	Handler     *Handler
	Logger      *slog.Logger
	CORSOrigins []string // empty = any origin
}

// NewRouter wires the middleware chain and every route of the quiz API.
func NewRouter(cfg RouterConfig) http.Handler {
	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	// ── Middleware chain: RequestID → RealIP → Logging → Recoverer → CORS ──
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(Logging(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Content-Length", "X-Request-Id"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	RegisterRoutes(r, cfg.Handler)

	// Swagger UI served at /docs/
	r.Get("/docs/*", httpSwagger.Handler(httpSwagger.URL("/docs/doc.json")))

	return r
}

// RegisterRoutes mounts the quiz endpoints on r.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/stats", h.stats)

		// Questions
		r.Get("/questions", h.listQuestions)
		r.Get("/questions/random", h.randomQuestion)
		r.Get("/questions/{questionID}", h.getQuestion)
		r.Get("/questions/{questionID}/detail", h.getQuestionDetail)

		// Quiz
		r.Post("/quiz/submit", h.submitAnswer)
	})
}

// Logging logs one line per request with its status and duration.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}
