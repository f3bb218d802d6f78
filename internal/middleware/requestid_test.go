package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sales-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func serve(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zap.InfoLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)

	e := echo.New()
	e.Use(RequestIDMiddleware())
	e.GET("/ping", func(c echo.Context) error {
		logger.FromContext(c).Info("pong")
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec, logs
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	rec, logs := serve(t, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := rec.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(id)
	require.NoError(t, err, "generated id %q should be a uuid", id)

	entries := logs.FilterMessage("pong").All()
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ContextMap()["request_id"])
}

func TestRequestIDMiddleware_KeepsIncomingID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderRequestID, "req-42")

	rec, logs := serve(t, req)

	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
	entries := logs.FilterMessage("pong").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}
