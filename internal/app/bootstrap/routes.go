// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/persona/internal/app/features/errors"
	healthfeature "github.com/dalemusser/persona/internal/app/features/health"
	personafeature "github.com/dalemusser/persona/internal/app/features/persona"
	"github.com/dalemusser/persona/internal/app/system/metrics"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. The resolved settings are built here once and
// handed to each handler; nothing reads configuration per request.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	values := resolveSettings(appCfg, deps)
	errLog := errorsfeature.NewErrorLogger(logger)

	var m *metrics.Metrics
	if appCfg.MetricsEnabled {
		m = metrics.New()
	}

	r := chi.NewRouter()

	// Set before mounting so subrouters inherit it.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errLog.LogNotFound(w, req, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		errLog.LogMethodNotAllowed(w, req, "method not allowed")
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.PersonaMongoClient, values, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	if m != nil {
		r.Method(http.MethodGet, "/metrics", m.Handler())
	}

	personaHandler := personafeature.NewHandler(values, m, errLog, logger)
	r.Mount("/", personafeature.Routes(personaHandler))

	return r, nil
}
