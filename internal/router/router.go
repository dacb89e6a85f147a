package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	_ "pet-shelter/docs"
	mem "pet-shelter/internal/adapters/storage/memory"
	"pet-shelter/internal/adapters/uploads"
	"pet-shelter/internal/domain/pets"
	"pet-shelter/internal/middleware"
	"pet-shelter/internal/platform/logger"
	"pet-shelter/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
)

// margen sobre el tamaño de imagen para los campos del form multipart.
const formOverhead = 1 << 20

// Pinger lo cumplen los repos con conexión real (postgres, mongo).
type Pinger interface {
	Ping(ctx context.Context) error
}

type Options struct {
	// Opcional: si es nil, in-memory.
	Pets pets.Repository

	// Opcional: si es nil, los uploads quedan deshabilitados.
	Images *uploads.DiskStore

	Logger  logger.Logger
	Metrics *metrics.Metrics

	// Lista separada por comas. Vacío => "*".
	CORSAllowedOrigins string
	// 0 deshabilita el rate limit.
	RateLimitPerMinute int
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	m := opts.Metrics
	if m == nil {
		m = metrics.New("pet_shelter")
	}

	petRepo := opts.Pets
	if petRepo == nil {
		petRepo = mem.NewPetRepo()
	}

	maxBody := int64(uploads.DefaultMaxBytes)
	var images pets.ImageStore
	if opts.Images != nil {
		images = opts.Images
		maxBody = opts.Images.MaxBytes()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))
	r.Use(m.Middleware)
	r.Use(corsHandler(opts.CORSAllowedOrigins))
	if opts.RateLimitPerMinute > 0 {
		r.Use(httprate.LimitByIP(opts.RateLimitPerMinute, time.Minute))
	}
	r.Use(chimw.RequestSize(maxBody + formOverhead))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Pet Management API is running"))
	})

	r.Get("/health", healthHandler(petRepo))
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	if opts.Images != nil {
		r.Method(http.MethodGet, opts.Images.URLPrefix()+"/*", opts.Images.Handler())
	}

	petsSvc := pets.NewService(petRepo, images, log)
	pets.RegisterRoutes(r, petsSvc, log)

	return r
}

func healthHandler(repo pets.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")

		if p, ok := repo.(Pinger); ok {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := p.Ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("store unreachable"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func corsHandler(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: parseOrigins(allowedOrigins),
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	})
}

func parseOrigins(s string) []string {
	out := make([]string, 0)
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
