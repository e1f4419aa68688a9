package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"graphlens/application/commands"
	"graphlens/infrastructure/config"
	"graphlens/infrastructure/di"
	"graphlens/infrastructure/persistence/graphml"
	"graphlens/interfaces/http/rest"

	"go.uber.org/zap"
)

func main() {
	// Initialize context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize dependency container
	container, err := di.InitializeContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Ingest the GraphML file if one is configured. Failure is not
	// fatal: the query side falls back to the built-in fixture graph.
	if cfg.GraphMLPath != "" {
		if err := ingestGraphML(ctx, container, cfg.GraphMLPath); err != nil {
			container.Logger.Warn("GraphML ingest failed, serving fixture graph",
				zap.String("path", cfg.GraphMLPath),
				zap.Error(err),
			)
		}
	}

	// Watch the view settings file so theme changes reach clients
	// without a restart
	var watcher *config.ViewSettingsWatcher
	if cfg.ViewSettingsPath != "" {
		watcher, err = config.NewViewSettingsWatcher(cfg.ViewSettingsPath, container.Logger)
		if err != nil {
			container.Logger.Warn("View settings watcher unavailable",
				zap.String("path", cfg.ViewSettingsPath),
				zap.Error(err),
			)
		} else {
			watcher.OnChange(func(s *config.ViewSettings) {
				container.Logger.Info("View settings updated",
					zap.Bool("dark_mode", s.DarkMode),
					zap.Int("hop_depth", s.HopDepth),
				)
			})
			watcher.Start()
			defer watcher.Stop()
		}
	}

	// Create router
	router := rest.NewRouter(
		container.CommandBus,
		container.QueryBus,
		container.Logger,
		cfg.CORSOrigins,
	)
	if watcher != nil {
		router.WithViewSettings(watcher.Current)
	}

	// Setup routes
	handler := router.Setup()

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.ServerAddress,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		container.Logger.Info("Starting server",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			container.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	container.Logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		container.Logger.Error("Server shutdown error", zap.Error(err))
	}

	// Clean up resources
	if err := container.Logger.Sync(); err != nil {
		log.Printf("Failed to sync logger: %v", err)
	}

	log.Println("Server stopped")
}

// ingestGraphML parses the configured GraphML file and loads it through
// the command bus so the usual validation and logging applies.
func ingestGraphML(ctx context.Context, container *di.Container, path string) error {
	payload, err := graphml.ParseFile(path)
	if err != nil {
		return err
	}

	cmd := commands.LoadGraphCommand{
		Payload: payload,
		Source:  path,
	}
	return container.CommandBus.Send(ctx, cmd)
}
