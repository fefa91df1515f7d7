package middleware

import (
	"github.com/siherrmann/populationDashboard/model"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const REQUEST_ID_HEADER = "X-Request-ID"

func (r *Middleware) RequestContextMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rc := model.GetRequestContext(c)

		rc.Url = c.Request().URL.Path
		rc.HxRequest = c.Request().Header.Get("hx-request") == "true"
		rc.RequestID = c.Request().Header.Get(REQUEST_ID_HEADER)
		if rc.RequestID == "" {
			rc.RequestID = uuid.NewString()
		}
		c.Response().Header().Set(REQUEST_ID_HEADER, rc.RequestID)

		model.SetRequestContext(c, rc)

		return next(c)
	}
}
