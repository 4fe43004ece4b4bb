package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// setupTestMeter sets up a test meter provider and reader.
func setupTestMeter(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() {
		_ = mp.Shutdown(context.Background())
	})
	return mp, reader
}

func collectMetrics(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	return rm
}

func findMetricByName(rm metricdata.ResourceMetrics, name string) *metricdata.Metrics {
	for _, sm := range rm.ScopeMetrics {
		for i := range sm.Metrics {
			if sm.Metrics[i].Name == name {
				return &sm.Metrics[i]
			}
		}
	}
	return nil
}

func metricsRouter(t *testing.T, mw gin.HandlerFunc) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(mw)
	r.GET("/api/v1/employees/:id", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.Param("id")})
	})
	r.GET("/api/v1/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	return r
}

func TestHTTPMetrics_NilMeter(t *testing.T) {
	mw, err := HTTPMetrics(nil)
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	metricsRouter(t, mw).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees/42", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPMetrics_RecordsRequests(t *testing.T) {
	mp, reader := setupTestMeter(t)
	mw, err := HTTPMetrics(mp.Meter("test"))
	require.NoError(t, err)
	router := metricsRouter(t, mw)

	for _, path := range []string{"/api/v1/employees/1", "/api/v1/employees/2", "/api/v1/missing"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	rm := collectMetrics(t, reader)

	total := findMetricByName(rm, "http_server_request_total")
	require.NotNil(t, total)
	sum, ok := total.Data.(metricdata.Sum[int64])
	require.True(t, ok)

	counts := make(map[string]int64)
	for _, dp := range sum.DataPoints {
		route, _ := dp.Attributes.Value(attribute.Key("http.route"))
		counts[route.AsString()] += dp.Value
	}
	assert.Equal(t, int64(2), counts["/api/v1/employees/:id"])
	assert.Equal(t, int64(1), counts["/api/v1/missing"])

	duration := findMetricByName(rm, "http_server_request_duration_seconds")
	require.NotNil(t, duration)
	hist, ok := duration.Data.(metricdata.Histogram[float64])
	require.True(t, ok)
	var observed uint64
	for _, dp := range hist.DataPoints {
		observed += dp.Count
	}
	assert.Equal(t, uint64(3), observed)

	active := findMetricByName(rm, "http_server_active_requests")
	require.NotNil(t, active)
	inflight, ok := active.Data.(metricdata.Sum[int64])
	require.True(t, ok)
	for _, dp := range inflight.DataPoints {
		assert.Equal(t, int64(0), dp.Value)
	}
}

func TestGetRoutePattern_Unmatched(t *testing.T) {
	mp, reader := setupTestMeter(t)
	mw, err := HTTPMetrics(mp.Meter("test"))
	require.NoError(t, err)

	metricsRouter(t, mw).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	total := findMetricByName(collectMetrics(t, reader), "http_server_request_total")
	require.NotNil(t, total)
	sum := total.Data.(metricdata.Sum[int64])
	require.Len(t, sum.DataPoints, 1)
	route, _ := sum.DataPoints[0].Attributes.Value(attribute.Key("http.route"))
	assert.Equal(t, "unknown", route.AsString())
}
