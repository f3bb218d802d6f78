package middleware

import (
	"sales-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = echo.HeaderXRequestID

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.New().String()
				c.Request().Header.Set(HeaderRequestID, requestID)
			}

			c.Response().Header().Set(HeaderRequestID, requestID)

			// Every log line of this request carries its id
			logger.WithContext(c, logger.GetLogger().With(zap.String("request_id", requestID)))

			return next(c)
		}
	}
}
