package populationDashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/siherrmann/populationDashboard/binding"
	"github.com/siherrmann/populationDashboard/chart"
	"github.com/siherrmann/populationDashboard/config"
	"github.com/siherrmann/populationDashboard/dataset"
	"github.com/siherrmann/populationDashboard/handler"
	mw "github.com/siherrmann/populationDashboard/middleware"
	"github.com/siherrmann/populationDashboard/source"

	"github.com/labstack/echo/v4"
)

const (
	DROPDOWN_CONTINENT_ID = "dropdown-continent"
	GRAPH_POPULATION_ID   = "graph-population"
	GRAPH_SHARE_ID        = "graph-share"
	GRAPH_SCATTER_ID      = "graph-scatter"
	GRAPH_BOX_ID          = "graph-box"

	// DEFAULT_CONTINENT is selected when the page is opened without ?continent.
	DEFAULT_CONTINENT = "Asia"

	shutdownTimeout = 10 * time.Second
)

// ContinentTrigger fires when the continent dropdown changes.
var ContinentTrigger = binding.Trigger{InputID: DROPDOWN_CONTINENT_ID, Event: binding.EVENT_CHANGE}

// NewDashboardApp registers the four chart callbacks on the continent dropdown.
func NewDashboardApp(ds *dataset.Dataset) *binding.App {
	app := binding.NewApp(ds)
	app.Callback(ContinentTrigger, GRAPH_POPULATION_ID, chart.Bar)
	app.Callback(ContinentTrigger, GRAPH_SHARE_ID, chart.Pie)
	app.Callback(ContinentTrigger, GRAPH_SCATTER_ID, chart.Scatter)
	app.Callback(ContinentTrigger, GRAPH_BOX_ID, chart.Box)
	return app
}

// NewLayout describes the page around the continent dropdown.
func NewLayout(ds *dataset.Dataset) handler.Layout {
	return handler.Layout{
		Title:        fmt.Sprintf("Análisis de Población por Continente (%d)", ds.Year()),
		Trigger:      ContinentTrigger,
		DefaultValue: DEFAULT_CONTINENT,
	}
}

// InitDashboardHandler opens the configured storage backend, loads the dataset
// from it and builds the dashboard handler.
func InitDashboardHandler(cfg config.Config, logger *slog.Logger) (*handler.DashboardHandler, error) {
	filesystem, err := source.CreateFilesystem(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem: %w", err)
	}

	ds, err := dataset.Open(filesystem, cfg.Storage.DatasetFile, dataset.YEAR)
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	logger.Info("Dataset loaded", "mode", cfg.Storage.Mode, "file", cfg.Storage.DatasetFile, "records", ds.Len(), "continents", ds.Continents())

	return handler.NewDashboardHandler(NewDashboardApp(ds), NewLayout(ds), filesystem, logger), nil
}

// NewServer creates the echo instance with all routes of the dashboard.
func NewServer(cfg config.Config, logger *slog.Logger) (*echo.Echo, error) {
	dh, err := InitDashboardHandler(cfg, logger)
	if err != nil {
		return nil, err
	}

	m := mw.NewMiddleware(logger, []string{cfg.Address(), "localhost:" + cfg.Port})

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	SetupRoutes(e, dh, m)

	return e, nil
}

// DashboardServer starts the dashboard and blocks until ctx is cancelled,
// then shuts the server down gracefully.
func DashboardServer(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	e, err := NewServer(cfg, logger)
	if err != nil {
		return err
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Starting dashboard server", "address", "http://"+cfg.Address())
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down dashboard server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
