// Command api serves the NASA Glenn thermodynamic database over HTTP. It
// loads and parses the source file once at startup, then answers species
// lookup and property evaluation queries from the in-memory catalog.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/thermo-data-service/internal/adapter/httpapi"
	"github.com/couchcryptid/thermo-data-service/internal/catalog"
	"github.com/couchcryptid/thermo-data-service/internal/config"
	"github.com/couchcryptid/thermo-data-service/internal/observability"
	"github.com/couchcryptid/thermo-data-service/internal/thermo"
	"github.com/couchcryptid/thermo-data-service/internal/thermoinp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	cat, err := loadCatalog(cfg, logger, metrics)
	if err != nil {
		logger.Error("failed to load database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}

	srv := httpapi.NewServer(cfg.HTTPAddr, cat, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}

// loadCatalog reads and decodes the source database. Malformed species are
// dropped (and counted) or fatal depending on THERMO_SKIP_MALFORMED.
func loadCatalog(cfg *config.Config, logger *slog.Logger, metrics *observability.Metrics) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	var db *thermoinp.Database
	if cfg.SkipMalformed {
		var parseErrs []error
		db, parseErrs = thermoinp.DecodeSkipMalformed(string(raw))
		if db == nil {
			return nil, parseErrs[0]
		}
		for _, perr := range parseErrs {
			logger.Warn("skipping malformed species", "error", perr)
			metrics.ParseErrors.Inc()
		}
	} else {
		db, err = thermoinp.Decode(string(raw))
		if err != nil {
			return nil, err
		}
	}

	cat := catalog.New(db, thermo.CEA())
	for _, category := range thermoinp.Categories {
		n := len(db.ByCategory(category))
		metrics.SpeciesLoaded.WithLabelValues(string(category)).Set(float64(n))
		logger.Info("category loaded", "category", category, "species", n)
	}
	return cat, nil
}
