// filepath: internal/cli/server.go
package cli

import (
	"context"
	"flowershop/internal/api/handlers"
	"flowershop/internal/audit"
	"flowershop/internal/httpserver"
	"flowershop/internal/initconfig"
	"flowershop/internal/logging"
	"flowershop/internal/media"
	"flowershop/internal/repository"
	"flowershop/internal/services"
	"flowershop/internal/storage"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
)

// openCatalog opens and validates the catalog database. The returned close
// function is a no-op when the store is unavailable.
func openCatalog() (services.CatalogStore, func(), error) {
	repo, err := repository.NewRepository(cfg)
	if err != nil {
		return nil, func() {}, err
	}

	// --- Conditional Auto-migrate on startup ---
	if err := repo.EnsureSchemaBootstrapped(); err != nil {
		repo.Close()
		return nil, func() {}, fmt.Errorf("failed to bootstrap database: %w", err)
	}

	if err := repo.ValidateSchema(); err != nil {
		repo.Close()
		return nil, func() {}, err
	}
	return repo, func() { repo.Close() }, nil
}

// imageBaseURL is the public prefix of stored image URLs, e.g. http://localhost:8080/images.
func imageBaseURL() string {
	return cfg.Server.PublicBaseURL + strings.TrimSuffix(httpserver.ImagePrefix, "/")
}

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	catalog, closeCatalog, err := openCatalog()
	if err != nil {
		// Keep serving so clients get a per-request error instead of a dead port.
		logging.Log.Error("---------------------------------------------------------------")
		logging.Log.Errorf("CATALOG STORE UNAVAILABLE: %v", err)
		logging.Log.Error("---------------------------------------------------------------")
		catalog = repository.Unavailable{Cause: err}
	}
	defer closeCatalog()

	store, err := storage.NewFileStore(cfg.Storage.Root, imageBaseURL())
	if err != nil {
		return fmt.Errorf("failed to initialize image storage: %w", err)
	}

	// Service Initialization
	mediaOptions := media.Options{
		MaxSide:   cfg.Media.MaxSide,
		Quality:   cfg.Media.JPEGQuality,
		MaxPixels: cfg.Media.MaxSourcePixels,
	}
	infoService := services.NewInfoService(Version, StartTime, catalog)
	flowerService := services.NewFlowerService(catalog, store, mediaOptions)
	referenceService := services.NewReferenceService(catalog, cfg.ReferenceTTL)
	exportService := services.NewExportService(catalog, cfg)
	housekeepingService := services.NewHousekeepingService(catalog, store, cfg.SweepInterval, cfg.OrphanMinAge)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	if initConfig != "" {
		logging.Log.Infof("Found init_config, running initialization from: %s", initConfig)
		if result, err := initconfig.Run(context.Background(), referenceService, initConfig); err != nil {
			logging.Log.Errorf("Initialization from %s failed: %v", initConfig, err)
		} else {
			logging.Log.Infof("Initialization saved %d flower type(s), %d unit type(s), %d failed.", result.FlowerTypes, result.UnitTypes, result.Failed)
		}
	}

	housekeepingService.Start()
	// No defer stop here, we stop explicitly during graceful shutdown

	h := handlers.NewHandlers(
		infoService,
		flowerService,
		referenceService,
		exportService,
		loggerAuditor,
		cfg,
	)

	r := httpserver.SetupRouter(h, os.DirFS(cfg.Storage.Root))

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s (Max Upload: %s, images at %s)", serverAddr, cfg.Server.MaxUploadSize, store.BaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-stop
	logging.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	housekeepingService.Stop()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
