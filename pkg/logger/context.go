package logger

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ContextKey is the echo.Context key holding the request-scoped logger
const ContextKey = "logger"

// FromContext retrieves the request-scoped logger, falling back to the global one
func FromContext(c echo.Context) *zap.Logger {
	if l, ok := c.Get(ContextKey).(*zap.Logger); ok {
		return l
	}
	return GetLogger()
}

// WithContext stores the logger on the echo.Context
func WithContext(c echo.Context, l *zap.Logger) {
	c.Set(ContextKey, l)
}
