package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPMetrics_IndependentRegistries(t *testing.T) {
	a := NewHTTPMetrics()
	b := NewHTTPMetrics()

	a.RequestsTotal.WithLabelValues("/health", "GET", "200").Inc()

	assert.Equal(t, float64(1), testutil.ToFloat64(a.RequestsTotal.WithLabelValues("/health", "GET", "200")))
	assert.Equal(t, float64(0), testutil.ToFloat64(b.RequestsTotal.WithLabelValues("/health", "GET", "200")))
}

func TestHandler_ExposesCounters(t *testing.T) {
	m := NewHTTPMetrics()
	m.RequestsTotal.WithLabelValues("/connect/OwnerEndpoint/save", "POST", "200").Inc()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `petclinic_http_requests_total{method="POST",route="/connect/OwnerEndpoint/save",status="200"} 1`)
	assert.Contains(t, string(body), "go_goroutines")
}
