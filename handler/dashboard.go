package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/siherrmann/populationDashboard/binding"
	"github.com/siherrmann/populationDashboard/model"
	"github.com/siherrmann/populationDashboard/view/screens"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// DashboardView renders the full dashboard for ?continent or the default selection
func (h *DashboardHandler) DashboardView(c echo.Context) error {
	continent := h.selectedValue(c, "continent")

	updates, err := h.app.Dispatch(c.Request().Context(), h.layout.Trigger, continent)
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to build charts: %v", err))
	}

	h.logger.Debug("Rendered dashboard", "continent", continent, "request_id", model.GetRequestContext(c).RequestID)

	return render(c, screens.Dashboard(screens.DashboardData{
		Title:      h.layout.Title,
		DropdownID: h.layout.Trigger.InputID,
		Continents: h.app.Dataset().Continents(),
		Selected:   continent,
		UpdateURL:  updateURL(h.layout.Trigger),
		CsrfToken:  csrf.Token(c.Request()),
		Updates:    updates,
	}))
}

// UpdateView re-runs the callbacks of an input event and renders the graph slots
func (h *DashboardHandler) UpdateView(c echo.Context) error {
	trigger := binding.Trigger{
		InputID: c.Param("inputID"),
		Event:   binding.Event(c.Param("event")),
	}
	value := c.QueryParam("value")

	updates, err := h.app.Dispatch(c.Request().Context(), trigger, value)
	if errors.Is(err, binding.ErrUnknownTrigger) {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Unknown input %s/%s", trigger.InputID, trigger.Event))
	} else if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to build charts: %v", err))
	}

	if !h.app.Dataset().HasContinent(value) {
		h.logger.Info("Selection matches no records", "input", trigger.InputID, "value", value)
	}

	if trigger == h.layout.Trigger {
		c.Response().Header().Add("HX-Push-Url", "/?continent="+url.QueryEscape(value))
	}

	return render(c, screens.Charts(updates))
}

func updateURL(trigger binding.Trigger) string {
	return fmt.Sprintf("/update/%s/%s", url.PathEscape(trigger.InputID), url.PathEscape(string(trigger.Event)))
}
