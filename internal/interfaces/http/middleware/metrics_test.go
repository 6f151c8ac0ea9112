package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/prometheus"
	"github.com/mingzhangyang/bond-lab/internal/testutil"
)

func TestMetrics_LabelsByRoutePattern(t *testing.T) {
	c, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{Namespace: "mw"}, testutil.NewMockLogger())
	require.NoError(t, err)
	m := prometheus.NewHTTPMetrics(c)

	r := chi.NewRouter()
	r.Use(Metrics(m))
	r.Delete("/atoms/{atomID}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"a1", "a2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/atoms/"+id, nil))
	}
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	expected := `
# HELP mw_http_requests_total HTTP requests by method, route and status.
# TYPE mw_http_requests_total counter
mw_http_requests_total{method="DELETE",route="/atoms/{atomID}",status_code="204"} 2
mw_http_requests_total{method="GET",route="unmatched",status_code="404"} 1
`
	assert.NoError(t, promtest.GatherAndCompare(c.Gatherer(), strings.NewReader(expected), "mw_http_requests_total"))

	active := `
# HELP mw_http_active_requests Requests currently being served.
# TYPE mw_http_active_requests gauge
mw_http_active_requests 0
`
	assert.NoError(t, promtest.GatherAndCompare(c.Gatherer(), strings.NewReader(active), "mw_http_active_requests"))
}

//Personal.AI order the ending
