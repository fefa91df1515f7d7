package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetContinents returns the dropdown options
func (h *DashboardHandler) GetContinents(c echo.Context) error {
	return c.JSON(http.StatusOK, h.app.Dataset().Continents())
}

// GetRecords returns the records of ?continent, or all records without it
func (h *DashboardHandler) GetRecords(c echo.Context) error {
	continent := c.QueryParam("continent")
	if continent == "" {
		return c.JSON(http.StatusOK, h.app.Dataset().Records())
	}
	return c.JSON(http.StatusOK, h.app.Dataset().FilterByContinent(continent))
}

// GetFiles lists the files of the configured dataset source
func (h *DashboardHandler) GetFiles(c echo.Context) error {
	files, err := h.filesystem.ListFiles()
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Error listing files: %v", err))
	}
	return c.JSON(http.StatusOK, files)
}
