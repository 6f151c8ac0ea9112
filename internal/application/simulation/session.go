// Package simulation is the application service around the layout engine.
// A Session owns one molecule graph together with its physics state and
// serialises every mutation and tick behind a single writer lock; readers
// take deep-copied frames.
package simulation

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// Config holds the session tuning that sits outside the relaxation step.
type Config struct {
	Params layout.Params
	// Seed feeds the session's random source; 0 picks a time-based seed.
	Seed int64
	// BondSnapDistance is how close a released atom must be to another for
	// proximity bonding.
	BondSnapDistance float64
	// BondOverlap and MinBondLength are the placement constants used when
	// building frames.
	BondOverlap   float64
	MinBondLength float64
}

// DefaultConfig returns the settings the editor ships with.
func DefaultConfig() Config {
	return Config{
		Params:           layout.DefaultParams(),
		BondSnapDistance: 1.2,
		BondOverlap:      0.1,
		MinBondLength:    0.05,
	}
}

// MetricsRecorder receives per-tick and per-mutation measurements.
type MetricsRecorder interface {
	ObserveStep(report layout.StepReport, elapsed time.Duration)
	SetGraphSize(atoms, bonds int)
	RecordMutation(op string)
	RecordBondFormed()
}

type noopRecorder struct{}

func (noopRecorder) ObserveStep(layout.StepReport, time.Duration) {}
func (noopRecorder) SetGraphSize(int, int)                        {}
func (noopRecorder) RecordMutation(string)                        {}
func (noopRecorder) RecordBondFormed()                            {}

// Option customises a Session.
type Option func(*Session)

// WithMetrics installs a metrics recorder.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Session) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithObserver attaches a store observer, e.g. a renderer bridge.
func WithObserver(o layout.Observer) Option {
	return func(s *Session) { s.observer = o }
}

// WithGraph replaces the empty graph the session starts with.
func WithGraph(g *molecule.Graph) Option {
	return func(s *Session) {
		if g != nil {
			s.graph = g
		}
	}
}

// WithSource overrides the random source derived from Config.Seed.
func WithSource(src geometry.Source) Option {
	return func(s *Session) { s.src = src }
}

// Session is safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	cfg      Config
	graph    *molecule.Graph
	store    *layout.Store
	relaxer  *layout.Relaxer
	src      geometry.Source
	observer layout.Observer

	dragged  molecule.AtomID
	rotating bool
	ticks    uint64
	last     layout.StepReport
	lastAt   time.Time

	logger  logging.Logger
	metrics MetricsRecorder
}

// NewSession builds a session with an empty graph unless WithGraph is used.
func NewSession(cfg Config, logger logging.Logger, opts ...Option) *Session {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	s := &Session{
		cfg:     cfg,
		graph:   molecule.NewGraph(),
		logger:  logger.Named("simulation"),
		metrics: noopRecorder{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		s.src = rand.New(rand.NewSource(seed))
	}
	s.store = layout.NewStore(s.src, cfg.Params.SpawnHalfExtent)
	s.store.SetObserver(s.observer)
	s.relaxer = layout.NewRelaxer(cfg.Params, s.src)
	return s
}

// Tick runs the lifecycle pass and one relaxation step with the current
// drag and rotation signals.  The lifecycle pass runs even while rotation
// suspends physics, so atoms added mid-gesture get positions.
func (s *Session) Tick(dt float64) layout.StepReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickLocked(dt)
}

func (s *Session) tickLocked(dt float64) layout.StepReport {
	start := time.Now()
	snap := s.graph.Snapshot()
	added, removed := s.store.Sync(snap)
	if len(added) > 0 || len(removed) > 0 {
		s.logger.Debug("store synced",
			logging.Int("added", len(added)),
			logging.Int("removed", len(removed)))
	}

	report := s.relaxer.Step(snap, s.store, layout.Control{
		Dt:       dt,
		Dragged:  s.dragged,
		Rotating: s.rotating,
	})
	s.ticks++
	s.last = report
	s.lastAt = start
	if report.Degenerate > 0 {
		s.logger.Debug("degenerate geometry substituted",
			logging.Int("count", report.Degenerate),
			logging.Int64("tick", int64(s.ticks)))
	}
	s.metrics.ObserveStep(report, time.Since(start))
	return report
}

// Run ticks at the given interval until ctx is done, feeding the measured
// wall-clock delta to each step.  It returns ctx.Err().
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return errors.InvalidParam("tick interval must be positive")
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.Info("simulation loop started", logging.Duration("interval", interval))
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("simulation loop stopped", logging.Err(ctx.Err()))
			return ctx.Err()
		case now := <-ticker.C:
			s.Tick(now.Sub(last).Seconds())
			last = now
		}
	}
}

// AddAtom adds an atom of the given element.  It receives a position on the
// next tick.
func (s *Session) AddAtom(sym element.Symbol) (molecule.Atom, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, err := s.graph.AddAtom(sym)
	if err != nil {
		return molecule.Atom{}, err
	}
	s.mutated("add_atom")
	s.logger.Info("atom added", logging.String("atom_id", string(a.ID)), logging.String("element", string(sym)))
	return a, nil
}

// RemoveAtom deletes an atom and its bonds.  Releasing a dragged atom this
// way ends the drag without proximity bonding.
func (s *Session) RemoveAtom(id molecule.AtomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bonds, err := s.graph.RemoveAtom(id)
	if err != nil {
		return err
	}
	if s.dragged == id {
		s.dragged = ""
	}
	s.mutated("remove_atom")
	s.logger.Info("atom removed", logging.String("atom_id", string(id)), logging.Int("bonds_removed", len(bonds)))
	return nil
}

// AddBond connects two atoms.
func (s *Session) AddBond(source, target molecule.AtomID, order int) (molecule.Bond, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.graph.AddBond(source, target, order)
	if err != nil {
		return molecule.Bond{}, err
	}
	s.mutated("add_bond")
	s.logger.Info("bond added", logging.String("bond_id", string(b.ID)), logging.Int("order", order))
	return b, nil
}

// RemoveBond deletes a bond.
func (s *Session) RemoveBond(id molecule.BondID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.RemoveBond(id); err != nil {
		return err
	}
	s.mutated("remove_bond")
	return nil
}

// SetBondOrder changes a bond's order.
func (s *Session) SetBondOrder(id molecule.BondID, order int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.graph.SetBondOrder(id, order); err != nil {
		return err
	}
	s.mutated("set_bond_order")
	return nil
}

// LoadPreset replaces the molecule with a built-in one and ends any drag.
func (s *Session) LoadPreset(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := molecule.LoadPreset(s.graph, name); err != nil {
		return err
	}
	s.dragged = ""
	s.mutated("load_preset")
	s.logger.Info("preset loaded", logging.String("preset", name), logging.Int("atoms", s.graph.Len()))
	return nil
}

// Clear removes every atom and bond.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.graph.Clear()
	s.dragged = ""
	s.mutated("clear")
}

func (s *Session) mutated(op string) {
	s.metrics.RecordMutation(op)
	s.metrics.SetGraphSize(s.graph.Len(), len(s.graph.Bonds()))
}

// Params returns the relaxation constants in use.
func (s *Session) Params() layout.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.relaxer.Params()
}

// UpdateParams swaps the relaxation constants from the next tick on.
func (s *Session) UpdateParams(p layout.Params) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setParamsLocked(p)
}

// ModifyParams applies fn to a copy of the current constants and installs
// the result unless fn fails, all under one lock so concurrent edits of
// different fields do not overwrite each other.
func (s *Session) ModifyParams(fn func(p *layout.Params) error) (layout.Params, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.relaxer.Params()
	if err := fn(&p); err != nil {
		return s.relaxer.Params(), err
	}
	s.setParamsLocked(p)
	return p, nil
}

func (s *Session) setParamsLocked(p layout.Params) {
	s.relaxer.SetParams(p)
	s.store.SetSpawnHalfExtent(p.SpawnHalfExtent)
	s.cfg.Params = p
	s.logger.Info("physics parameters updated", logging.Float64("spawn_half_extent", p.SpawnHalfExtent))
}

// Ticks returns the number of completed ticks.
func (s *Session) Ticks() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ticks
}

// LastTickAt returns when the latest tick started, zero before the first.
func (s *Session) LastTickAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastAt
}

// BondAngle measures a-center-b in degrees.
func (s *Session) BondAngle(a, center, b molecule.AtomID) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rad, ok := layout.BondAngle(s.store, a, center, b)
	return rad * 180 / math.Pi, ok
}

//Personal.AI order the ending
