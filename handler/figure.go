package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/siherrmann/populationDashboard/binding"

	"github.com/labstack/echo/v4"
)

// =======API Handlers=======

// GetFigures returns the figures of all outputs for ?continent
func (h *DashboardHandler) GetFigures(c echo.Context) error {
	continent := h.selectedValue(c, "continent")

	updates, err := h.app.Dispatch(c.Request().Context(), h.layout.Trigger, continent)
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to build charts: %v", err))
	}

	return c.JSON(http.StatusOK, updates)
}

// GetFigure returns the figure of a single output for ?continent
func (h *DashboardHandler) GetFigure(c echo.Context) error {
	outputID := c.Param("outputID")
	continent := h.selectedValue(c, "continent")

	figure, err := h.app.Figure(c.Request().Context(), h.layout.Trigger, outputID, continent)
	if errors.Is(err, binding.ErrUnknownOutput) {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Unknown output %s", outputID))
	} else if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to build chart: %v", err))
	}

	return c.JSON(http.StatusOK, binding.Update{OutputID: outputID, Figure: figure})
}
