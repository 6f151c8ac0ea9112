package prometheus

import (
	"strconv"
	"time"

	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
)

// Default buckets.
var (
	StepDurationBuckets = []float64{.00001, .00005, .0001, .00025, .0005, .001, .0025, .005, .01}
	HTTPDurationBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}
)

// Step outcomes used as the "outcome" label.
const (
	OutcomeIntegrated = "integrated"
	OutcomeSuspended  = "suspended"
	OutcomeSkipped    = "skipped"
)

// SimulationMetrics is the metric set of a simulation session.  It
// satisfies simulation.MetricsRecorder.
type SimulationMetrics struct {
	StepsTotal       CounterVec
	StepDuration     HistogramVec
	KineticEnergy    GaugeVec
	DegenerateTotal  CounterVec
	Atoms            GaugeVec
	Bonds            GaugeVec
	MutationsTotal   CounterVec
	BondsFormedTotal CounterVec
}

// NewSimulationMetrics registers the simulation metrics on collector.
func NewSimulationMetrics(collector MetricsCollector) *SimulationMetrics {
	return &SimulationMetrics{
		StepsTotal:       collector.RegisterCounter("steps_total", "Relaxation steps by outcome.", "outcome"),
		StepDuration:     collector.RegisterHistogram("step_duration_seconds", "Wall time of one tick including the lifecycle pass.", StepDurationBuckets),
		KineticEnergy:    collector.RegisterGauge("kinetic_energy", "Total kinetic energy after the last integrated step."),
		DegenerateTotal:  collector.RegisterCounter("degenerate_substitutions_total", "Random or fixed directions substituted for undefined ones."),
		Atoms:            collector.RegisterGauge("atoms", "Atoms in the molecule graph."),
		Bonds:            collector.RegisterGauge("bonds", "Bonds in the molecule graph."),
		MutationsTotal:   collector.RegisterCounter("graph_mutations_total", "Molecule graph mutations by operation.", "op"),
		BondsFormedTotal: collector.RegisterCounter("proximity_bonds_total", "Bonds formed by releasing a dragged atom near another."),
	}
}

// ObserveStep records one tick.
func (m *SimulationMetrics) ObserveStep(report layout.StepReport, elapsed time.Duration) {
	outcome := OutcomeIntegrated
	switch {
	case report.Suspended:
		outcome = OutcomeSuspended
	case report.Dt == 0:
		outcome = OutcomeSkipped
	}
	m.StepsTotal.WithLabelValues(outcome).Inc()
	m.StepDuration.WithLabelValues().Observe(elapsed.Seconds())
	if outcome == OutcomeIntegrated {
		m.KineticEnergy.WithLabelValues().Set(report.KineticEnergy)
	}
	if report.Degenerate > 0 {
		m.DegenerateTotal.WithLabelValues().Add(float64(report.Degenerate))
	}
}

// SetGraphSize records the current atom and bond counts.
func (m *SimulationMetrics) SetGraphSize(atoms, bonds int) {
	m.Atoms.WithLabelValues().Set(float64(atoms))
	m.Bonds.WithLabelValues().Set(float64(bonds))
}

// RecordMutation counts one graph mutation.
func (m *SimulationMetrics) RecordMutation(op string) {
	m.MutationsTotal.WithLabelValues(op).Inc()
}

// RecordBondFormed counts one proximity bond.
func (m *SimulationMetrics) RecordBondFormed() {
	m.BondsFormedTotal.WithLabelValues().Inc()
}

// HTTPMetrics is the metric set of the HTTP surface.
type HTTPMetrics struct {
	RequestsTotal   CounterVec
	RequestDuration HistogramVec
	ActiveRequests  GaugeVec
}

// NewHTTPMetrics registers the HTTP metrics on collector.
func NewHTTPMetrics(collector MetricsCollector) *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal:   collector.RegisterCounter("http_requests_total", "HTTP requests by method, route and status.", "method", "route", "status_code"),
		RequestDuration: collector.RegisterHistogram("http_request_duration_seconds", "HTTP request duration.", HTTPDurationBuckets, "method", "route"),
		ActiveRequests:  collector.RegisterGauge("http_active_requests", "Requests currently being served."),
	}
}

// RecordRequest records one completed request.
func (m *HTTPMetrics) RecordRequest(method, route string, statusCode int, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

//Personal.AI order the ending
