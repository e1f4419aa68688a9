package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// ViewSettings is the runtime-changeable display configuration. The
// host edits this file; the engine only observes the result through
// change callbacks and never owns the theme flag.
type ViewSettings struct {
	DarkMode bool    `json:"darkMode"`
	HopDepth int     `json:"hopDepth"`
	Scale    float64 `json:"scale"`
}

// DefaultViewSettings applies when no settings file is configured and
// for fields absent from the file.
func DefaultViewSettings() *ViewSettings {
	return &ViewSettings{
		DarkMode: false,
		HopDepth: 1,
		Scale:    1,
	}
}

// ViewSettingsWatcher watches the view settings file for changes and
// pushes updates to registered listeners.
type ViewSettingsWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	current  *ViewSettings
	mu       sync.RWMutex
	onChange []func(*ViewSettings)
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewViewSettingsWatcher creates a watcher over the given file. The
// file must exist and parse at startup; later failures keep the last
// good settings.
func NewViewSettingsWatcher(path string, logger *zap.Logger) (*ViewSettingsWatcher, error) {
	settings, err := loadViewSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load initial view settings: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch view settings file: %w", err)
	}

	// Also watch the directory for atomic saves (rename operations)
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		logger.Warn("Failed to watch view settings directory", zap.Error(err))
	}

	return &ViewSettingsWatcher{
		path:     path,
		watcher:  watcher,
		current:  settings,
		onChange: make([]func(*ViewSettings), 0),
		logger:   logger,
		stopCh:   make(chan struct{}),
	}, nil
}

// Current returns the active settings.
func (w *ViewSettingsWatcher) Current() *ViewSettings {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers a listener pushed on every settings reload.
func (w *ViewSettingsWatcher) OnChange(handler func(*ViewSettings)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, handler)
}

// Start begins watching for settings changes
func (w *ViewSettingsWatcher) Start() {
	go w.watchLoop()
	w.logger.Info("View settings watcher started", zap.String("path", w.path))
}

// Stop stops watching for settings changes
func (w *ViewSettingsWatcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
	w.logger.Info("View settings watcher stopped")
}

// watchLoop is the main loop that watches for file changes
func (w *ViewSettingsWatcher) watchLoop() {
	// Debounce to collapse editor write bursts into one reload
	var debounceTimer *time.Timer
	debounceDuration := 100 * time.Millisecond

	for {
		select {
		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, func() {
					w.handleChange()
				})
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))
		}
	}
}

// handleChange reloads the settings file and notifies listeners
func (w *ViewSettingsWatcher) handleChange() {
	newSettings, err := loadViewSettings(w.path)
	if err != nil {
		w.logger.Error("Failed to reload view settings, keeping current", zap.Error(err))
		return
	}

	w.mu.Lock()
	old := w.current
	w.current = newSettings
	handlers := make([]func(*ViewSettings), len(w.onChange))
	copy(handlers, w.onChange)
	w.mu.Unlock()

	if old.DarkMode != newSettings.DarkMode {
		w.logger.Info("Theme changed",
			zap.Bool("dark_mode", newSettings.DarkMode),
		)
	}

	for _, handler := range handlers {
		handler(newSettings)
	}
}

// loadViewSettings reads and validates the settings file
func loadViewSettings(path string) (*ViewSettings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	settings := DefaultViewSettings()
	if err := json.Unmarshal(raw, settings); err != nil {
		return nil, fmt.Errorf("invalid view settings json: %w", err)
	}

	if settings.HopDepth < 1 || settings.HopDepth > 5 {
		return nil, fmt.Errorf("hopDepth must be between 1 and 5, got %d", settings.HopDepth)
	}
	if settings.Scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %g", settings.Scale)
	}

	return settings, nil
}
