package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yarigadev/yariga-backend/api/controllers"
	"github.com/yarigadev/yariga-backend/api/middleware"
	"github.com/yarigadev/yariga-backend/internal/properties"
	"github.com/yarigadev/yariga-backend/internal/users"
	"github.com/yarigadev/yariga-backend/pkg/config"
	"github.com/yarigadev/yariga-backend/pkg/db"
	"github.com/yarigadev/yariga-backend/pkg/logger"
	"github.com/yarigadev/yariga-backend/pkg/metrics"
	"github.com/yarigadev/yariga-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient db.Pinger,
	redisClient *redis.Client,
	httpMetrics *metrics.HTTPMetrics,
	propertyService properties.Service,
	userService users.Service,
) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.App.CORSOrigins...),
	)

	signInPolicy := middleware.NewSignInRateLimitPolicy(
		cfg.RateLimit.SignInWindow,
		cfg.RateLimit.SignInIPLimit,
		cfg.RateLimit.SignInEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbClient))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1/properties", func(r chi.Router) {
		r.Get("/", controllers.PropertyList(propertyService, logg))
		r.Post("/", controllers.PropertyCreate(propertyService, logg))
		r.Get("/{id}", controllers.PropertyDetail(propertyService, logg))
		r.Put("/{id}", controllers.PropertyUpdate(propertyService, logg))
		r.Delete("/{id}", controllers.PropertyDelete(propertyService, logg))
	})

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Get("/", controllers.UserList(userService, logg))
		// Sign-in only throttles when Redis is configured; everything
		// else runs unthrottled.
		if redisClient != nil {
			r.With(middleware.SignInRateLimit(signInPolicy, redisClient, logg)).
				Post("/", controllers.UserSignIn(userService, logg))
		} else {
			r.Post("/", controllers.UserSignIn(userService, logg))
		}
		r.Get("/{id}", controllers.UserDetail(userService, logg))
	})

	return r
}
