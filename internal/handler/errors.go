package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"sales-service/internal/report"
	"sales-service/internal/repository"
	"sales-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// errInvalidRequest marks malformed bodies, path ids and failed validation
var errInvalidRequest = errors.New("invalid request")

// errorStatus maps service errors to an HTTP status and a client-safe message
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errInvalidRequest), errors.Is(err, report.ErrInvalidArgument):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, report.ErrNoResults):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, repository.ErrReferenced), errors.Is(err, repository.ErrConflict):
		return http.StatusConflict, err.Error()
	}
	return http.StatusInternalServerError, "internal server error"
}

// respondError logs err on the request logger and writes the error body
func respondError(c echo.Context, msg string, err error) error {
	status, message := errorStatus(err)

	log := logger.FromContext(c)
	if status >= http.StatusInternalServerError {
		log.Error(msg, zap.Error(err))
	} else {
		log.Warn(msg, zap.Int("status", status), zap.Error(err))
	}
	return c.JSON(status, echo.Map{"error": message})
}

// parseID reads a positive numeric id from the path
func parseID(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%w: id %q must be a positive integer", errInvalidRequest, raw)
	}
	return uint(id), nil
}
