package app

import (
	"context"
	"fmt"
	"net/http"

	"restock/app/controller"
	"restock/app/router"
	"restock/db"
	"restock/logger"
	"restock/repository"
	"restock/service"
)

// App is the wired service
type App struct {
	Handler  http.Handler
	Registry *service.SessionRegistry

	closers []func() error
}

// Close releases resources opened during Initialize
func (a *App) Close() error {
	var firstErr error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Initialize loads the catalog and wires services, controllers and routes
func Initialize(ctx context.Context, cfg Config) (*App, error) {
	app := &App{}

	source, err := app.newCatalogSource(ctx, cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	items, err := source.LoadCatalog(ctx)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	registry, err := service.NewSessionRegistry(items)
	if err != nil {
		app.Close()
		return nil, err
	}

	renderer := service.NewChromeRenderer(cfg.ChromePath, cfg.RenderTimeout)
	exporter := service.NewOrderExporter(cfg.Export, renderer)

	app.Registry = registry
	app.Handler = NewHandler(registry, exporter)
	logger.L().Infof("Initialize: catalog source=%s items=%d", cfg.CatalogSource, len(items))
	return app, nil
}

// NewHandler builds the routed HTTP handler
func NewHandler(registry *service.SessionRegistry, exporter *service.OrderExporter) http.Handler {
	suffix := exporter.CurrencySuffix()
	controllers := &router.Controllers{
		Session:   controller.NewSessionController(registry, suffix),
		Selection: controller.NewSelectionController(registry, suffix),
		Intake:    controller.NewIntakeController(registry, suffix),
		Export:    controller.NewExportController(registry, exporter),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)
	return mux
}

func (a *App) newCatalogSource(ctx context.Context, cfg Config) (repository.CatalogSourceInterface, error) {
	switch cfg.CatalogSource {
	case CatalogSourcePostgres:
		if err := db.InitDB(ctx, cfg.DB); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		a.closers = append(a.closers, db.CloseDB)
		repo, err := repository.NewCatalogRepository(db.DB, cfg.CatalogTable)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case CatalogSourceDrive:
		driveService, err := service.NewDriveService(ctx, cfg.GoogleCredentials)
		if err != nil {
			return nil, err
		}
		return repository.NewDriveCatalogSource(driveService, cfg.DriveCatalogFileID), nil

	default:
		return repository.NewFileCatalogSource(cfg.CatalogPath), nil
	}
}
