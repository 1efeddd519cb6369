package middleware

import (
	"price-compare/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewRequestIDMiddleware tags every request with a uuid and stores a request scoped
// logger in the request context.
func NewRequestIDMiddleware(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
		RequestIDHandler: func(c echo.Context, requestID string) {
			reqLog := log.With(logger.StringField("request_id", requestID))
			req := c.Request()
			c.SetRequest(req.WithContext(logger.NewContext(req.Context(), reqLog)))
		},
	})
}
