package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterValue returns the counter named name whose labels include labels.
func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg)

	c.RecordIssued()
	c.RecordIssued()
	c.RecordEnded()
	c.RecordRejected("expired")
	c.RecordRejected("expired")
	c.RecordRejected("csrf_mismatch")
	c.RecordAuthorized("authorized_for_read")

	assert.Equal(t, 2.0, counterValue(t, reg, "session_issued_total", nil))
	assert.Equal(t, 1.0, counterValue(t, reg, "session_ended_total", nil))
	assert.Equal(t, 2.0, counterValue(t, reg, "session_rejected_total", map[string]string{"reason": "expired"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "session_rejected_total", map[string]string{"reason": "csrf_mismatch"}))
	assert.Equal(t, 1.0, counterValue(t, reg, "session_authorized_total", map[string]string{"outcome": "authorized_for_read"}))
}

func TestHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewCollector(reg).RecordRejected("auth")

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `session_rejected_total{reason="auth"} 1`)
}
