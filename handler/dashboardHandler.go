package handler

import (
	"log/slog"
	"net/http"

	"github.com/siherrmann/populationDashboard/binding"
	"github.com/siherrmann/populationDashboard/source"

	"github.com/labstack/echo/v4"
)

// Layout describes the single input of the dashboard and its initial value
type Layout struct {
	Title        string
	Trigger      binding.Trigger
	DefaultValue string
}

type DashboardHandler struct {
	app        *binding.App
	layout     Layout
	filesystem source.Filesystem
	logger     *slog.Logger
}

func NewDashboardHandler(app *binding.App, layout Layout, filesystem source.Filesystem, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		app:        app,
		layout:     layout,
		filesystem: filesystem,
		logger:     logger,
	}
}

// Health check handler
func (h *DashboardHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "population-dashboard",
		"records": h.app.Dataset().Len(),
	})
}

// selectedValue returns the query parameter key or the layout default
func (h *DashboardHandler) selectedValue(c echo.Context, key string) string {
	if value := c.QueryParam(key); value != "" {
		return value
	}
	return h.layout.DefaultValue
}
