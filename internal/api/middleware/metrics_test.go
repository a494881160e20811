package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MarketplaceService/pkg/metrics"
)

func TestMetricsMiddleware_ObservesRequest(t *testing.T) {
	m := metrics.New("test-service")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m, "test-service"))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/booking-1", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() != "http_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			if labels["service"] != "test-service" {
				continue
			}
			found = true
			// Статус попадает в метрики строкой, путь - шаблоном маршрута
			assert.Equal(t, "404", labels["status"])
			assert.Equal(t, "/bookings/{bookingId}", labels["path"])
			assert.Equal(t, http.MethodGet, labels["method"])
		}
	}
	assert.True(t, found, "http_requests_total for test-service not gathered")
}
