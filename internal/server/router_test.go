package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abduss/clipcatalog/internal/logger"
	"github.com/abduss/clipcatalog/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestLiveness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Dependencies{})

	rr := serve(t, router, "/health/live")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(logger.CorrelationIDHeader))
}

func TestReadinessReportsFailingComponent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := PingFunc(func(ctx context.Context) error { return nil })
	down := PingFunc(func(ctx context.Context) error { return errors.New("connection refused") })

	router := NewRouter(Dependencies{Checks: []Check{
		{Component: "documents", Pinger: ok},
		{Component: "objects", Pinger: down},
	}})

	rr := serve(t, router, "/health/ready")
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body["status"])
	assert.Equal(t, "objects", body["component"])
	assert.Equal(t, "connection refused", body["error"])
}

func TestReadinessOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ok := PingFunc(func(ctx context.Context) error { return nil })
	router := NewRouter(Dependencies{Checks: []Check{{Component: "documents", Pinger: ok}}})

	rr := serve(t, router, "/health/ready")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestMetricsRouteMounted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := NewRouter(Dependencies{Metrics: metrics.New(), MetricsPath: "/internal/metrics"})

	rr := serve(t, router, "/internal/metrics")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "clipcatalog_files_total")

	rr = serve(t, NewRouter(Dependencies{}), "/metrics")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
