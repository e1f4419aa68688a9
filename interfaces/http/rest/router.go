package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	cmdbus "graphlens/application/commands/bus"
	querybus "graphlens/application/queries/bus"
	"graphlens/infrastructure/config"
	"graphlens/interfaces/http/rest/handlers"
	"graphlens/interfaces/http/rest/middleware"
	"graphlens/pkg/common"
	"graphlens/pkg/errors"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus   *cmdbus.CommandBus
	queryBus     *querybus.QueryBus
	logger       *zap.Logger
	corsOrigin   []string
	viewSettings func() *config.ViewSettings
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *cmdbus.CommandBus,
	queryBus *querybus.QueryBus,
	logger *zap.Logger,
	corsOrigins []string,
) *Router {
	return &Router{
		commandBus: commandBus,
		queryBus:   queryBus,
		logger:     logger,
		corsOrigin: corsOrigins,
	}
}

// WithViewSettings installs the live view settings source, typically
// ViewSettingsWatcher.Current. Without one the endpoint serves the
// defaults.
func (rt *Router) WithViewSettings(current func() *config.ViewSettings) *Router {
	rt.viewSettings = current
	return rt
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(middleware.Logger(rt.logger))

	// Panics surface as structured error responses instead of a bare 500
	errorHandler := errors.NewErrorHandler(rt.logger, false)
	router.Use(errorHandler.Middleware)

	// CORS: the visualization frontend runs on its own origin.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.corsOrigin,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health checks
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// Graph data for visualization
	graphHandler := handlers.NewGraphHandler(rt.commandBus, rt.queryBus, rt.logger)
	router.Get("/graph-data", graphHandler.GetGraphData)
	router.Post("/graph-data", graphHandler.LoadGraphData)

	// Current view settings, so frontends pick up theme and hop depth
	// changes without a redeploy
	router.Get("/view-settings", rt.getViewSettings)

	return router
}

// getViewSettings serves the live view settings. Raw shape for the
// same reason as graph-data: the visualization client consumes the
// object directly.
func (rt *Router) getViewSettings(w http.ResponseWriter, r *http.Request) {
	settings := config.DefaultViewSettings()
	if rt.viewSettings != nil {
		settings = rt.viewSettings()
	}
	common.RespondRaw(w, http.StatusOK, settings)
}

// healthCheck reports process liveness
func (rt *Router) healthCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// readinessCheck reports whether the service can serve graph data.
// The graph-data endpoint always answers, fixture fallback included,
// so readiness follows liveness here.
func (rt *Router) readinessCheck(w http.ResponseWriter, r *http.Request) {
	common.RespondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
