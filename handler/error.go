package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/siherrmann/populationDashboard/model"
	"github.com/siherrmann/populationDashboard/view/components"

	"github.com/gorilla/csrf"
	"github.com/labstack/echo/v4"
)

// HandleErrorView is the echo error handler: a popup for htmx requests, JSON otherwise
func (h *DashboardHandler) HandleErrorView(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var message interface{}
	message = err.Error()
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		message = he.Message
	}
	h.logger.Error("Request failed", "code", code, "error", err, "request_id", model.GetRequestContext(c).RequestID)

	if renderErr := renderPopupOrJson(c, code, fmt.Sprint(message)); renderErr != nil {
		h.logger.Error("Failed to render error", "error", renderErr)
	}
}

func HandleCSRFErrorView(w http.ResponseWriter, r *http.Request) {
	err := csrf.FailureReason(r)
	slog.Warn("CSRF error", "error", err, "path", r.URL.Path)
	if renderErr := renderPopupHTTP(w, components.Component(components.PopupError("Error", "Invalid CSRF token, please reload the page.")), http.StatusForbidden); renderErr != nil {
		slog.Error("Failed to render CSRF error", "error", renderErr)
	}
}
