package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mingzhangyang/bond-lab/internal/application/simulation"
	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// SimulationService is the session surface the handlers drive.
type SimulationService interface {
	Frame() simulation.Frame
	Tick(dt float64) layout.StepReport
	AddAtom(sym element.Symbol) (molecule.Atom, error)
	RemoveAtom(id molecule.AtomID) error
	AddBond(source, target molecule.AtomID, order int) (molecule.Bond, error)
	RemoveBond(id molecule.BondID) error
	SetBondOrder(id molecule.BondID, order int) error
	RotateBond(id molecule.BondID, angle float64) ([]molecule.AtomID, error)
	BeginDrag(id molecule.AtomID) error
	DragTo(pos geometry.Vec3) error
	EndDrag() (*molecule.Bond, error)
	SetRotating(on bool)
	LoadPreset(name string) error
	Clear()
	Params() layout.Params
	ModifyParams(fn func(p *layout.Params) error) (layout.Params, error)
	BondAngle(a, center, b molecule.AtomID) (float64, bool)
	Ticks() uint64
	Rotating() bool
	LastTickAt() time.Time
}

// SimulationHandler exposes a session over JSON.
type SimulationHandler struct {
	svc SimulationService
	// overlap and minLength are the placement defaults for GET /placement.
	overlap   float64
	minLength float64
}

// NewSimulationHandler creates a handler over svc.
func NewSimulationHandler(svc SimulationService, overlap, minLength float64) *SimulationHandler {
	return &SimulationHandler{svc: svc, overlap: overlap, minLength: minLength}
}

// ─────────────────────────────────────────────────────────────────────────────
// Request / response bodies
// ─────────────────────────────────────────────────────────────────────────────

type addAtomRequest struct {
	Element string `json:"element"`
}

type addBondRequest struct {
	Source molecule.AtomID `json:"source"`
	Target molecule.AtomID `json:"target"`
	Order  int             `json:"order"`
}

type bondOrderRequest struct {
	Order int `json:"order"`
}

type rotateBondRequest struct {
	AngleDegrees float64 `json:"angle_degrees"`
}

type rotateBondResponse struct {
	Moved []molecule.AtomID `json:"moved"`
}

type beginDragRequest struct {
	AtomID molecule.AtomID `json:"atom_id"`
}

type dragToRequest struct {
	Position geometry.Vec3 `json:"position"`
}

type endDragResponse struct {
	Bond *molecule.Bond `json:"bond,omitempty"`
}

type rotationRequest struct {
	Rotating bool `json:"rotating"`
}

type tickRequest struct {
	Dt float64 `json:"dt"`
}

type angleResponse struct {
	Degrees float64 `json:"degrees"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Frame and stepping
// ─────────────────────────────────────────────────────────────────────────────

// GetFrame handles GET /api/v1/frame.
func (h *SimulationHandler) GetFrame(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Frame())
}

// Tick handles POST /api/v1/tick, stepping the session once by hand.
func (h *SimulationHandler) Tick(w http.ResponseWriter, r *http.Request) {
	var req tickRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Tick(req.Dt))
}

// ─────────────────────────────────────────────────────────────────────────────
// Graph mutations
// ─────────────────────────────────────────────────────────────────────────────

// AddAtom handles POST /api/v1/atoms.
func (h *SimulationHandler) AddAtom(w http.ResponseWriter, r *http.Request) {
	var req addAtomRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	sym, ok := element.Parse(req.Element)
	if !ok {
		writeAppError(w, errors.New(errors.ErrCodeUnknownElement, "unknown element symbol").WithDetail(req.Element))
		return
	}
	atom, err := h.svc.AddAtom(sym)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, atom)
}

// RemoveAtom handles DELETE /api/v1/atoms/{atomID}.
func (h *SimulationHandler) RemoveAtom(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveAtom(molecule.AtomID(chi.URLParam(r, "atomID"))); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddBond handles POST /api/v1/bonds.  Order defaults to a single bond.
func (h *SimulationHandler) AddBond(w http.ResponseWriter, r *http.Request) {
	var req addBondRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	if req.Order == 0 {
		req.Order = molecule.MinBondOrder
	}
	bond, err := h.svc.AddBond(req.Source, req.Target, req.Order)
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, bond)
}

// RemoveBond handles DELETE /api/v1/bonds/{bondID}.
func (h *SimulationHandler) RemoveBond(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.RemoveBond(molecule.BondID(chi.URLParam(r, "bondID"))); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetBondOrder handles PUT /api/v1/bonds/{bondID}/order.
func (h *SimulationHandler) SetBondOrder(w http.ResponseWriter, r *http.Request) {
	var req bondOrderRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	if err := h.svc.SetBondOrder(molecule.BondID(chi.URLParam(r, "bondID")), req.Order); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RotateBond handles POST /api/v1/bonds/{bondID}/rotate.
func (h *SimulationHandler) RotateBond(w http.ResponseWriter, r *http.Request) {
	var req rotateBondRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	if math.IsNaN(req.AngleDegrees) || math.IsInf(req.AngleDegrees, 0) {
		writeAppError(w, errors.InvalidParam("angle must be finite"))
		return
	}
	moved, err := h.svc.RotateBond(molecule.BondID(chi.URLParam(r, "bondID")), req.AngleDegrees*math.Pi/180)
	if err != nil {
		writeAppError(w, err)
		return
	}
	if moved == nil {
		moved = []molecule.AtomID{}
	}
	writeJSON(w, http.StatusOK, rotateBondResponse{Moved: moved})
}

// LoadPreset handles POST /api/v1/presets/{name}.
func (h *SimulationHandler) LoadPreset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.LoadPreset(chi.URLParam(r, "name")); err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.svc.Frame())
}

// ListPresets handles GET /api/v1/presets.
func (h *SimulationHandler) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, molecule.Presets())
}

// ListElements handles GET /api/v1/elements.
func (h *SimulationHandler) ListElements(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, element.All())
}

// Clear handles DELETE /api/v1/molecule.
func (h *SimulationHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.svc.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────────────────────────────────────
// Interaction signals
// ─────────────────────────────────────────────────────────────────────────────

// BeginDrag handles POST /api/v1/drag.
func (h *SimulationHandler) BeginDrag(w http.ResponseWriter, r *http.Request) {
	var req beginDragRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	if err := h.svc.BeginDrag(req.AtomID); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DragTo handles PUT /api/v1/drag.
func (h *SimulationHandler) DragTo(w http.ResponseWriter, r *http.Request) {
	var req dragToRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	if err := h.svc.DragTo(req.Position); err != nil {
		writeAppError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EndDrag handles DELETE /api/v1/drag and reports a proximity bond if one
// formed.
func (h *SimulationHandler) EndDrag(w http.ResponseWriter, r *http.Request) {
	bond, err := h.svc.EndDrag()
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, endDragResponse{Bond: bond})
}

// SetRotating handles PUT /api/v1/rotation.
func (h *SimulationHandler) SetRotating(w http.ResponseWriter, r *http.Request) {
	var req rotationRequest
	if err := decodeJSON(r, &req, false); err != nil {
		writeAppError(w, err)
		return
	}
	h.svc.SetRotating(req.Rotating)
	w.WriteHeader(http.StatusNoContent)
}

// ─────────────────────────────────────────────────────────────────────────────
// Tuning and measurement
// ─────────────────────────────────────────────────────────────────────────────

// GetParams handles GET /api/v1/params.
func (h *SimulationHandler) GetParams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.Params())
}

// UpdateParams handles PATCH /api/v1/params.  Omitted fields keep their
// current values.
func (h *SimulationHandler) UpdateParams(w http.ResponseWriter, r *http.Request) {
	var patch json.RawMessage
	if err := decodeJSON(r, &patch, false); err != nil {
		writeAppError(w, err)
		return
	}
	p, err := h.svc.ModifyParams(func(p *layout.Params) error {
		if err := decodeRaw(patch, p); err != nil {
			return err
		}
		return validateParams(*p)
	})
	if err != nil {
		writeAppError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func validateParams(p layout.Params) error {
	switch {
	case p.MaxDt <= 0:
		return errors.InvalidParam("max_dt must be > 0")
	case p.MinDistance <= 0:
		return errors.InvalidParam("min_distance must be > 0")
	case p.BondLength <= p.MinDistance:
		return errors.InvalidParam("bond_length must exceed min_distance")
	case p.Damping <= 0 || p.Damping >= 1:
		return errors.InvalidParam("damping must be in (0, 1)")
	}
	for name, v := range map[string]float64{
		"repulsion":           p.Repulsion,
		"bond_stiffness":      p.BondStiffness,
		"angle_stiffness":     p.AngleStiffness,
		"lone_pair_distance":  p.LonePairDistance,
		"lone_pair_stiffness": p.LonePairStiffness,
		"centering_strength":  p.CenteringStrength,
		"centering_deadzone":  p.CenteringDeadzone,
		"spawn_half_extent":   p.SpawnHalfExtent,
	} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return errors.InvalidParam(name + " must be a finite non-negative number")
		}
	}
	return nil
}

// BondAngle handles GET /api/v1/angle?a=&center=&b=.
func (h *SimulationHandler) BondAngle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	deg, ok := h.svc.BondAngle(molecule.AtomID(q.Get("a")), molecule.AtomID(q.Get("center")), molecule.AtomID(q.Get("b")))
	if !ok {
		writeAppError(w, errors.NotFound("angle is undefined for the given atoms"))
		return
	}
	writeJSON(w, http.StatusOK, angleResponse{Degrees: deg})
}

// Placement handles GET /api/v1/placement.  distance, source_radius and
// target_radius are required; overlap and min_length default to the
// server's settings.
func (h *SimulationHandler) Placement(w http.ResponseWriter, r *http.Request) {
	var vals [5]float64
	names := [5]string{"distance", "source_radius", "target_radius", "overlap", "min_length"}
	defs := [5]float64{math.NaN(), math.NaN(), math.NaN(), h.overlap, h.minLength}
	for i, name := range names {
		v, err := queryFloat(r, name, defs[i])
		if err != nil {
			writeAppError(w, err)
			return
		}
		if math.IsNaN(v) {
			writeAppError(w, errors.InvalidParam(fmt.Sprintf("query parameter %s is required", name)))
			return
		}
		vals[i] = v
	}
	writeJSON(w, http.StatusOK, layout.PlaceBond(vals[0], vals[1], vals[2], vals[3], vals[4]))
}

// ─────────────────────────────────────────────────────────────────────────────
// Readiness
// ─────────────────────────────────────────────────────────────────────────────

// TickChecker reports unhealthy when the simulation loop has not ticked
// within MaxStale.
type TickChecker struct {
	Service  SimulationService
	MaxStale time.Duration
}

// Name implements HealthChecker.
func (c TickChecker) Name() string { return "simulation" }

// Check implements HealthChecker.
func (c TickChecker) Check(_ context.Context) error {
	last := c.Service.LastTickAt()
	if last.IsZero() {
		return errors.New(errors.ErrCodeTimeout, "simulation has not ticked yet")
	}
	if age := time.Since(last); age > c.MaxStale {
		return errors.Newf(errors.ErrCodeTimeout, "last tick was %s ago", age.Truncate(time.Millisecond))
	}
	return nil
}

// Details implements DetailedChecker.  tick_lag is absent before the first
// tick.
func (c TickChecker) Details() map[string]interface{} {
	d := map[string]interface{}{
		"ticks":     c.Service.Ticks(),
		"suspended": c.Service.Rotating(),
		"max_stale": c.MaxStale.String(),
	}
	if last := c.Service.LastTickAt(); !last.IsZero() {
		d["tick_lag"] = time.Since(last).Truncate(time.Millisecond).String()
	}
	return d
}

//Personal.AI order the ending
