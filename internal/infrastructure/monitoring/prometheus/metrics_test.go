package prometheus

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
)

func TestSimulationMetrics_ObserveStep(t *testing.T) {
	c := newTestCollector(t)
	m := NewSimulationMetrics(c)

	m.ObserveStep(layout.StepReport{Dt: 0.016, Atoms: 3, KineticEnergy: 0.25, Degenerate: 2}, time.Millisecond)
	m.ObserveStep(layout.StepReport{Dt: 0.016, Atoms: 3, KineticEnergy: 0.125}, time.Millisecond)
	m.ObserveStep(layout.StepReport{Suspended: true}, time.Microsecond)
	m.ObserveStep(layout.StepReport{}, time.Microsecond)

	expected := `
# HELP test_unit_steps_total Relaxation steps by outcome.
# TYPE test_unit_steps_total counter
test_unit_steps_total{outcome="integrated"} 2
test_unit_steps_total{outcome="skipped"} 1
test_unit_steps_total{outcome="suspended"} 1
# HELP test_unit_kinetic_energy Total kinetic energy after the last integrated step.
# TYPE test_unit_kinetic_energy gauge
test_unit_kinetic_energy 0.125
# HELP test_unit_degenerate_substitutions_total Random or fixed directions substituted for undefined ones.
# TYPE test_unit_degenerate_substitutions_total counter
test_unit_degenerate_substitutions_total 2
`
	assert.NoError(t, testutil.GatherAndCompare(c.Gatherer(), strings.NewReader(expected),
		"test_unit_steps_total", "test_unit_kinetic_energy", "test_unit_degenerate_substitutions_total"))
	assert.Contains(t, scrapeMetrics(t, c), "test_unit_step_duration_seconds_count 4")
}

func TestSimulationMetrics_GraphCounters(t *testing.T) {
	c := newTestCollector(t)
	m := NewSimulationMetrics(c)

	m.SetGraphSize(5, 4)
	m.RecordMutation("add_atom")
	m.RecordMutation("add_atom")
	m.RecordMutation("load_preset")
	m.RecordBondFormed()

	expected := `
# HELP test_unit_atoms Atoms in the molecule graph.
# TYPE test_unit_atoms gauge
test_unit_atoms 5
# HELP test_unit_bonds Bonds in the molecule graph.
# TYPE test_unit_bonds gauge
test_unit_bonds 4
# HELP test_unit_graph_mutations_total Molecule graph mutations by operation.
# TYPE test_unit_graph_mutations_total counter
test_unit_graph_mutations_total{op="add_atom"} 2
test_unit_graph_mutations_total{op="load_preset"} 1
# HELP test_unit_proximity_bonds_total Bonds formed by releasing a dragged atom near another.
# TYPE test_unit_proximity_bonds_total counter
test_unit_proximity_bonds_total 1
`
	assert.NoError(t, testutil.GatherAndCompare(c.Gatherer(), strings.NewReader(expected),
		"test_unit_atoms", "test_unit_bonds", "test_unit_graph_mutations_total", "test_unit_proximity_bonds_total"))
}

func TestHTTPMetrics_RecordRequest(t *testing.T) {
	c := newTestCollector(t)
	m := NewHTTPMetrics(c)

	m.RecordRequest("GET", "/api/v1/frame", 200, 3*time.Millisecond)
	m.RecordRequest("POST", "/api/v1/atoms", 400, time.Millisecond)
	m.ActiveRequests.WithLabelValues().Inc()

	expected := `
# HELP test_unit_http_requests_total HTTP requests by method, route and status.
# TYPE test_unit_http_requests_total counter
test_unit_http_requests_total{method="GET",route="/api/v1/frame",status_code="200"} 1
test_unit_http_requests_total{method="POST",route="/api/v1/atoms",status_code="400"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(c.Gatherer(), strings.NewReader(expected), "test_unit_http_requests_total"))
	assert.Contains(t, scrapeMetrics(t, c), "test_unit_http_active_requests 1")
}

//Personal.AI order the ending
