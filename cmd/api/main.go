package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notebase/internal/config"
	"notebase/internal/contextutil"
	"notebase/internal/http"
	"notebase/internal/storage"
	"notebase/internal/validator"
	"notebase/internal/vault"
)

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := cfg.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize database
	if cfg.DBMode == storage.ModeEphemeral {
		slog.Warn("Ephemeral database mode: existing data will be deleted", "path", cfg.DBPath)
	}
	store, err := storage.OpenNoteDatabase(ctx, cfg.DBPath, cfg.DBMode)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = store.Close()
	}()
	slog.Info("Database initialized", "path", cfg.DBPath, "mode", cfg.DBMode)

	// Create router with dependencies
	deps := &http.Deps{
		Store:     store,
		Validator: validator.New(),
	}
	router := http.NewRouter(deps)

	// Import a markdown folder in background after router is ready
	if cfg.ImportPath != "" {
		go runImport(contextutil.WithLogger(ctx, logger), store, cfg)
	}

	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		slog.Info("Shutting down API server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("API server shutdown failed", "error", err)
		}
	}()

	// Start API server
	slog.Info("Starting API server", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		log.Fatalf("API server failed to start: %v", err)
	}
}

// runImport imports cfg.ImportPath once, or keeps following it when
// IMPORT_WATCH is set.
func runImport(ctx context.Context, store *storage.NoteDatabase, cfg *config.Config) {
	slog.Info("Starting background import", "path", cfg.ImportPath, "knowledge_base", cfg.ImportKnowledgeBase, "watch", cfg.ImportWatch)
	opts := []vault.Option{vault.WithExclude(cfg.ImportExclude...)}

	if !cfg.ImportWatch {
		stats, err := vault.NewImporter(store, opts...).ImportDir(ctx, cfg.ImportKnowledgeBase, cfg.ImportPath)
		switch {
		case errors.Is(err, vault.ErrPartialImport):
			slog.Warn("Import completed with errors", "imported", stats.Imported, "skipped", stats.Skipped, "errors", stats.Errors)
		case err != nil:
			slog.Error("Import failed", "error", err)
		default:
			slog.Info("Import completed", "imported", stats.Imported, "skipped", stats.Skipped)
		}
		return
	}

	watcher := vault.NewWatcher(store, opts...)
	stats, err := watcher.Start(ctx, cfg.ImportKnowledgeBase, cfg.ImportPath)
	if err != nil {
		slog.Error("Failed to start import watcher", "error", err)
		return
	}
	if stats.Errors > 0 {
		slog.Warn("Some files failed to import", "errors", stats.Errors)
	}
	if err := watcher.Run(ctx); err != nil {
		slog.Error("Import watcher stopped", "error", err)
	}
}
