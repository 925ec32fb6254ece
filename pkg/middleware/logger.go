package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"trading-journal/pkg/logger"
)

// NewContextLogger puts a logger tagged with the request id into the request
// context. It must run after middleware.RequestID.
func NewContextLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			scoped := log.With(zap.String("request_id", rid))
			c.SetRequest(c.Request().WithContext(logger.NewContext(c.Request().Context(), scoped)))
			return next(c)
		}
	}
}

// NewRequestLogger emits one structured line per request.
func NewRequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogMethod:    true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				logger.StringField("method", v.Method),
				logger.StringField("uri", v.URI),
				logger.IntField("status", v.Status),
				logger.DurationField("latency", v.Latency),
				logger.StringField("request_id", v.RequestID),
				logger.StringField("remote_ip", v.RemoteIP),
			}
			if v.Error != nil {
				log.Warn("request failed", append(fields, logger.ErrorField(v.Error))...)
				return nil
			}
			log.Info("request", fields...)
			return nil
		},
	})
}
