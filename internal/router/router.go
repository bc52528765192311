package router

import (
	"net/http"

	_ "petclinic/docs"
	mem "petclinic/internal/adapters/storage/memory"
	"petclinic/internal/domain/owners"
	"petclinic/internal/middleware"
	"petclinic/internal/platform/logger"
	"petclinic/internal/platform/metrics"
	"petclinic/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	AuthVerifier auth.AuthVerifier // puede ser nil (modo dev)

	// Opcional: si viene nil, usa un store in-memory.
	Owners owners.Repository

	// nil => DefaultOwnerPolicy (anónimos permitidos).
	OwnerPolicy *middleware.Policy

	Logger  logger.Logger        // nil => logger.Nop()
	Metrics *metrics.HTTPMetrics // nil => sin métricas

	RateLimitRPS   float64 // 0 => sin límite
	RateLimitBurst int
}

// DefaultOwnerPolicy: el endpoint de owners admite llamadas anónimas.
var DefaultOwnerPolicy = middleware.Policy{AnonymousAllowed: true}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logging(log))
	r.Use(middleware.Metrics(opts.Metrics))
	r.Use(middleware.Recover(log))
	r.Use(middleware.RateLimit(opts.RateLimitRPS, opts.RateLimitBurst))

	r.Use(middleware.AuthContext(opts.AuthVerifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	ownerRepo := opts.Owners
	if ownerRepo == nil {
		ownerRepo = mem.NewOwnerRepo()
	}

	policy := DefaultOwnerPolicy
	if opts.OwnerPolicy != nil {
		policy = *opts.OwnerPolicy
	}

	owners.RegisterRoutes(r, owners.NewEndpoint(ownerRepo), policy)

	return r
}
