// cmd/converterd/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"unitconv/internal/common/config"
	"unitconv/internal/common/logger"
	"unitconv/internal/common/observability"
	"unitconv/internal/gemini"
	cu "unitconv/internal/ops/convert-units"
	ir "unitconv/internal/ops/interpret-request"
	"unitconv/pkg/catalog"
)

func main() {
	zapLog := logger.New("info", "console")
	defer func() { _ = zapLog.Sync() }()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting converterd...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	// Rebuild with the configured level and format.
	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New("converterd")
	defer obs.Shutdown()

	// --- Init completion client ---
	// Config validation already guaranteed the API key is present; this is
	// where the daemon would otherwise refuse to start.
	geminiClient, err := gemini.NewClient(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		BaseURL: cfg.Gemini.BaseURL,
		Timeout: config.GetDuration(cfg.Gemini.Timeout),
	}, &geminiLoggerAdapter{log})
	if err != nil {
		zapLog.Fatal("gemini client failed", zap.Error(err))
	}
	zapLog.Info("Completion client initialized", zap.String("model", geminiClient.Model()))

	// --- Load unit catalog ---
	cat, err := catalog.LoadCatalog(cfg.Catalog.Path)
	if err == nil {
		err = cat.Validate()
	}
	if err != nil {
		zapLog.Warn("catalog file unavailable, serving built-in tables", zap.Error(err))
		cat = catalog.Default(cfg.App.Version)
	}

	// --- Register operation handlers ---
	convertHandler := cu.NewHandler(cu.LoadConfig(), &convertUnitsLoggerAdapter{log})

	interpretHandler := ir.NewHandler(
		&ir.Config{
			MaxTextLength: cfg.Interpret.MaxTextLength,
		},
		geminiClient,
		&interpretRequestLoggerAdapter{log},
	)

	zapLog.Info("All operation handlers registered successfully")

	// --- API Server ---
	srv := newServer(cfg, log, obs, convertHandler, interpretHandler, cat)

	httpSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      srv.routes(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("API server listening", zap.Int("port", cfg.Server.Port))
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("API server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("Error shutting down API server", zap.Error(err))
	}

	zapLog.Info("converterd stopped gracefully")
}

// Logger adapters for packages that declare their own Logger interfaces
type convertUnitsLoggerAdapter struct {
	logger.Logger
}

func (a *convertUnitsLoggerAdapter) With(fields map[string]interface{}) cu.Logger {
	return &convertUnitsLoggerAdapter{a.Logger.With(fields)}
}

type interpretRequestLoggerAdapter struct {
	logger.Logger
}

func (a *interpretRequestLoggerAdapter) With(fields map[string]interface{}) ir.Logger {
	return &interpretRequestLoggerAdapter{a.Logger.With(fields)}
}

type geminiLoggerAdapter struct {
	logger.Logger
}

func (a *geminiLoggerAdapter) With(fields map[string]interface{}) gemini.Logger {
	return &geminiLoggerAdapter{a.Logger.With(fields)}
}
