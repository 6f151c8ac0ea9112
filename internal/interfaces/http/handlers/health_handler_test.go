package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestHealthHandler_Liveness(t *testing.T) {
	h := NewHealthHandler("v1.2.3")
	w := httptest.NewRecorder()
	h.Liveness(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp LivenessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alive", resp.Status)
	assert.Equal(t, "v1.2.3", resp.Version)
}

func TestHealthHandler_Readiness(t *testing.T) {
	t.Run("all healthy", func(t *testing.T) {
		h := NewHealthHandler("v", stubChecker{name: "a"}, stubChecker{name: "b"})
		w := httptest.NewRecorder()
		h.Readiness(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp.Status)
		assert.Len(t, resp.Components, 2)
	})

	t.Run("one unhealthy", func(t *testing.T) {
		h := NewHealthHandler("v", stubChecker{name: "a"}, stubChecker{name: "b", err: errors.Internal("down")})
		w := httptest.NewRecorder()
		h.Readiness(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		var resp ReadinessResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "not_ready", resp.Status)
		assert.Equal(t, "unhealthy", resp.Components["b"].Status)
		assert.Contains(t, resp.Components["b"].Error, "down")
	})
}

func TestHealthHandler_ReadinessReportsTickLag(t *testing.T) {
	svc := &fakeService{lastAt: time.Now().Add(-20 * time.Millisecond), ticks: 1234, rotating: true}
	h := NewHealthHandler("v", TickChecker{Service: svc, MaxStale: time.Second}, stubChecker{name: "redis"})
	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	sim := resp.Components["simulation"]
	assert.Equal(t, "healthy", sim.Status)
	assert.Equal(t, float64(1234), sim.Details["ticks"])
	assert.Equal(t, true, sim.Details["suspended"])
	assert.Equal(t, "1s", sim.Details["max_stale"])
	lag, err := time.ParseDuration(sim.Details["tick_lag"].(string))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, lag, 20*time.Millisecond)
	assert.Nil(t, resp.Components["redis"].Details)
}

func TestHealthHandler_StalledSimulationKeepsDetails(t *testing.T) {
	svc := &fakeService{}
	h := NewHealthHandler("v", TickChecker{Service: svc, MaxStale: time.Second})
	w := httptest.NewRecorder()
	h.Readiness(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp ReadinessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	sim := resp.Components["simulation"]
	assert.Equal(t, "unhealthy", sim.Status)
	assert.Equal(t, float64(0), sim.Details["ticks"])
	assert.NotContains(t, sim.Details, "tick_lag")
}

func TestTickChecker(t *testing.T) {
	svc := &fakeService{}
	c := TickChecker{Service: svc, MaxStale: time.Second}
	assert.Equal(t, "simulation", c.Name())

	err := c.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ticked")

	svc.lastAt = time.Now()
	assert.NoError(t, c.Check(context.Background()))

	svc.lastAt = time.Now().Add(-time.Minute)
	assert.Error(t, c.Check(context.Background()))
}

//Personal.AI order the ending
