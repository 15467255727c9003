package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/culturehub/backend/internal/infrastructure/auth"
	"github.com/culturehub/backend/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func setupTestTracer(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return tp, sr
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes() {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestTracing(t *testing.T) {
	tp, sr := setupTestTracer(t)
	verifier := auth.NewTokenVerifier(config.JWTConfig{Secret: "middleware-test-secret-32-chars!!"})
	staffID := uuid.New()
	token, err := verifier.Sign(staffID, "", "", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.Use(
		RequestID(),
		TracingWithConfig(TracingConfig{ServiceName: "culturehub-test", Enabled: true, TracerProvider: tp}),
		SpanErrorMarker(),
		StaffAuth(DefaultJWTConfig(verifier, false)),
		TracingAttributeInjector(),
	)
	router.GET("/api/v1/invoices/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/api/v1/missing/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	t.Run("span carries route and correlation ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/42", nil)
		req.Header.Set(RequestIDHeader, "req-trace")
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		router.ServeHTTP(httptest.NewRecorder(), req)

		spans := sr.Ended()
		require.NotEmpty(t, spans)
		span := spans[len(spans)-1]
		assert.Contains(t, span.Name(), "/api/v1/invoices/:id")

		v, ok := spanAttr(span, "request_id")
		require.True(t, ok)
		assert.Equal(t, "req-trace", v.AsString())
		v, ok = spanAttr(span, "actor_id")
		require.True(t, ok)
		assert.Equal(t, staffID.String(), v.AsString())
		assert.NotEqual(t, codes.Error, span.Status().Code)
	})

	t.Run("error responses mark the span", func(t *testing.T) {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/missing/1", nil))

		spans := sr.Ended()
		span := spans[len(spans)-1]
		assert.Equal(t, codes.Error, span.Status().Code)
		_, ok := spanAttr(span, "actor_id")
		assert.False(t, ok)
	})

	t.Run("disabled is a pass-through", func(t *testing.T) {
		before := len(sr.Ended())
		w := httptest.NewRecorder()
		okRouter(TracingWithConfig(TracingConfig{Enabled: false, TracerProvider: tp})).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, sr.Ended(), before)
	})
}

func TestHTTPMetrics(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	mw, err := HTTPMetrics(mp.Meter("http.server"))
	require.NoError(t, err)

	router := gin.New()
	router.Use(mw)
	router.GET("/api/v1/payments/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for range 3 {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/payments/"+uuid.NewString(), nil))
	}
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	var sawDuration bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			switch m.Name {
			case "http_server_request_total":
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				for _, dp := range sum.DataPoints {
					route, _ := dp.Attributes.Value(attrHTTPRoute)
					counts[route.AsString()] += dp.Value
				}
			case "http_server_request_duration_seconds":
				sawDuration = true
			}
		}
	}

	assert.Equal(t, int64(3), counts["/api/v1/payments/:id"], "route pattern keeps cardinality low")
	assert.Equal(t, int64(1), counts["unknown"])
	assert.True(t, sawDuration)
}
