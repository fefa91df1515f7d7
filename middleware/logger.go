package middleware

import (
	"context"
	"log/slog"

	"github.com/siherrmann/populationDashboard/model"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// RequestLoggerMiddleware logs one line per request to the slog logger
func (r *Middleware) RequestLoggerMiddleware() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
				slog.String("request_id", model.GetRequestContext(c).RequestID),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
				r.logger.LogAttrs(context.Background(), slog.LevelError, "Request error", attrs...)
				return nil
			}
			r.logger.LogAttrs(context.Background(), slog.LevelInfo, "Request", attrs...)
			return nil
		},
	})
}
