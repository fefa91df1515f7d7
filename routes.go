package populationDashboard

import (
	"github.com/siherrmann/populationDashboard/handler"
	mw "github.com/siherrmann/populationDashboard/middleware"
	"github.com/siherrmann/populationDashboard/view/static"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures all view and API routes of the dashboard
func SetupRoutes(e *echo.Echo, h *handler.DashboardHandler, m *mw.Middleware) {
	e.HTTPErrorHandler = h.HandleErrorView

	// Middleware
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(m.RequestContextMiddleware)
	e.Use(m.RequestLoggerMiddleware())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	e.GET("/health", h.HealthCheck)

	// View routes
	csrf := m.CsrfMiddleware()
	e.GET("/", h.DashboardView, csrf)
	e.GET("/update/:inputID/:event", h.UpdateView, csrf)

	// API routes
	api := e.Group("/api")

	figures := api.Group("/figure")
	figures.GET("/getFigures", h.GetFigures)
	figures.GET("/getFigure/:outputID", h.GetFigure)

	datasets := api.Group("/dataset")
	datasets.GET("/getContinents", h.GetContinents)
	datasets.GET("/getRecords", h.GetRecords)
	datasets.GET("/getFiles", h.GetFiles)

	e.StaticFS("/static", static.FS)
}
