package layout

import (
	"math"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

// axisEpsilon is the squared cross-product length below which two domain
// directions are treated as collinear.
const axisEpsilon = 1e-12

// domainImbalance is the length of a center's summed unit domain directions
// above which balance forces engage.  Every VSEPR arrangement in the angle
// table stays well below it.
const domainImbalance = 0.5

// Control carries the per-frame inputs owned by the interaction layer.
type Control struct {
	// Dt is the frame delta in seconds, clamped to Params.MaxDt.
	Dt float64
	// Dragged is the atom currently held by the pointer, or "".
	Dragged molecule.AtomID
	// Rotating suspends the whole step while the camera is being orbited.
	Rotating bool
}

// StepReport summarises one call to Step.
type StepReport struct {
	Suspended     bool    `json:"suspended"`
	Dt            float64 `json:"dt"`
	Atoms         int     `json:"atoms"`
	KineticEnergy float64 `json:"kinetic_energy"`
	// Degenerate counts the random or fixed directions substituted for
	// undefined ones during the step.
	Degenerate int `json:"degenerate"`
}

type body struct {
	id  molecule.AtomID
	pos geometry.Vec3
}

type domain struct {
	kind DomainKind
	atom molecule.AtomID
	lp   int
}

// Relaxer advances a Store by one frame.  It owns the reusable force
// accumulator and adjacency so steady-state steps allocate little.
type Relaxer struct {
	params Params
	rng    geometry.Source

	forces     *Forces
	adj        map[molecule.AtomID][]molecule.AtomID
	bodies     []body
	domains    []domain
	dirs       []geometry.Vec3
	degenerate int
}

// NewRelaxer returns a Relaxer using p and drawing fallback directions from
// src.
func NewRelaxer(p Params, src geometry.Source) *Relaxer {
	return &Relaxer{
		params: p,
		rng:    src,
		forces: NewForces(),
		adj:    make(map[molecule.AtomID][]molecule.AtomID),
	}
}

// Params returns the current constants.
func (r *Relaxer) Params() Params { return r.params }

// SetParams replaces the constants; it takes effect on the next step.
func (r *Relaxer) SetParams(p Params) { r.params = p }

// Force returns the force accumulated on id during the last step.
func (r *Relaxer) Force(id molecule.AtomID) geometry.Vec3 { return r.forces.Get(id) }

// Forces exposes the accumulator of the last step.
func (r *Relaxer) Forces() *Forces { return r.forces }

// Step runs one relaxation frame over the atoms of snap that have a
// position in store.  It does nothing when ctl.Rotating is set or the delta
// is not positive.  The dragged atom contributes forces to others but its
// position is left to the caller and its velocity is held at zero.
func (r *Relaxer) Step(snap *molecule.Snapshot, store *Store, ctl Control) StepReport {
	if ctl.Rotating {
		return StepReport{Suspended: true}
	}
	dt := ctl.Dt
	if !(dt > 0) {
		return StepReport{}
	}
	if dt > r.params.MaxDt {
		dt = r.params.MaxDt
	}

	r.bodies = r.bodies[:0]
	ids := make([]molecule.AtomID, 0, len(snap.Atoms))
	for _, a := range snap.Atoms {
		p, ok := store.positions[a.ID]
		if !ok {
			continue
		}
		r.bodies = append(r.bodies, body{id: a.ID, pos: p})
		ids = append(ids, a.ID)
	}
	r.forces.Reset(ids)
	for k := range r.adj {
		delete(r.adj, k)
	}
	r.degenerate = 0

	r.repel()
	r.springs(snap, store)
	r.shape(snap, store, dt)
	r.center()
	r.integrate(store, ctl.Dragged, dt)
	store.notifyPositions()

	return StepReport{
		Dt:            dt,
		Atoms:         len(r.bodies),
		KineticEnergy: store.KineticEnergy(),
		Degenerate:    r.degenerate,
	}
}

// direction normalises v, substituting a random unit vector when v is too
// short to have a meaningful direction.
func (r *Relaxer) direction(v geometry.Vec3) geometry.Vec3 {
	if v.LengthSq() < r.params.minDistanceSq() {
		r.degenerate++
		return geometry.RandomUnit(r.rng)
	}
	return v.Normalize()
}

func (r *Relaxer) repel() {
	p := r.params
	minSq := p.minDistanceSq()
	for i := 0; i < len(r.bodies); i++ {
		for j := i + 1; j < len(r.bodies); j++ {
			delta := r.bodies[i].pos.Sub(r.bodies[j].pos)
			d2 := delta.LengthSq()
			var dir geometry.Vec3
			if d2 < minSq {
				r.degenerate++
				dir = geometry.RandomUnit(r.rng)
				d2 = minSq
			} else {
				dir = delta.Scale(1 / math.Sqrt(d2))
			}
			f := dir.Scale(p.Repulsion / d2)
			r.forces.Add(r.bodies[i].id, f)
			r.forces.Add(r.bodies[j].id, f.Neg())
		}
	}
}

// springs applies Hooke's law along every bond and records adjacency for
// the shaping pass.
func (r *Relaxer) springs(snap *molecule.Snapshot, store *Store) {
	p := r.params
	for _, b := range snap.Bonds {
		ps, okS := store.positions[b.Source]
		pt, okT := store.positions[b.Target]
		if !okS || !okT || !snap.Has(b.Source) || !snap.Has(b.Target) {
			continue
		}
		r.adj[b.Source] = append(r.adj[b.Source], b.Target)
		r.adj[b.Target] = append(r.adj[b.Target], b.Source)

		delta := pt.Sub(ps)
		d := delta.Length()
		if d < p.MinDistance {
			continue
		}
		f := delta.Scale(p.BondStiffness * (d - p.BondLength) / d)
		r.forces.Add(b.Source, f)
		r.forces.Add(b.Target, f.Neg())
	}
}

// shape keeps each atom's lone-pair count in line with its element, tethers
// the lone pairs, pushes every pair of electron domains towards its VSEPR
// angle and spreads centers whose domains have bunched up.  Lone pairs are massless and move in place; bonded
// neighbours receive forces.
func (r *Relaxer) shape(snap *molecule.Snapshot, store *Store, dt float64) {
	p := r.params
	for _, b := range r.bodies {
		sym, _ := snap.Element(b.id)
		lps := store.resizeLonePairs(b.id, b.pos, element.LonePairs(sym), p.LonePairDistance)

		neighbors := r.adj[b.id]
		total := len(neighbors) + len(lps)
		if total >= 2 {
			r.domains = r.domains[:0]
			for _, nb := range neighbors {
				r.domains = append(r.domains, domain{kind: BondedDomain, atom: nb})
			}
			for k := range lps {
				r.domains = append(r.domains, domain{kind: LonePairDomain, lp: k})
			}

			pos := func(d domain) geometry.Vec3 {
				if d.kind == LonePairDomain {
					return lps[d.lp]
				}
				return store.positions[d.atom]
			}
			push := func(d domain, f geometry.Vec3) {
				if d.kind == LonePairDomain {
					lps[d.lp] = lps[d.lp].Add(f.Scale(dt))
					return
				}
				r.forces.Add(d.atom, f)
			}

			for i := 0; i < len(r.domains); i++ {
				for j := i + 1; j < len(r.domains); j++ {
					di, dj := r.domains[i], r.domains[j]
					rule := IdealAngle(total, di.kind, dj.kind, len(lps))
					fi, fj, fc := r.pairForces(b.pos, pos(di), pos(dj), rule)
					push(di, fi)
					push(dj, fj)
					r.forces.Add(b.id, fc)
				}
			}
			r.balance(b.id, b.pos, pos, push)
		}

		for k := range lps {
			delta := lps[k].Sub(b.pos)
			d := delta.Length()
			dir := r.direction(delta)
			f := dir.Scale(-p.LonePairStiffness * (d - p.LonePairDistance))
			lps[k] = lps[k].Add(f.Scale(dt))
			r.forces.Add(b.id, f.Neg())
		}
	}
}

// pairForces returns the tangential forces that rotate domains a and b
// about center towards rule.Ideal, plus the reaction on the center, which
// makes the three sum to zero.
func (r *Relaxer) pairForces(center, a, b geometry.Vec3, rule AngleRule) (fa, fb, fc geometry.Vec3) {
	da := r.direction(a.Sub(center))
	db := r.direction(b.Sub(center))
	current := math.Acos(geometry.Clamp(da.Dot(db), -1, 1))
	diff := rule.Ideal - current

	axis := da.Cross(db)
	if axis.LengthSq() < axisEpsilon {
		r.degenerate++
		axis = da.Cross(geometry.RandomUnit(r.rng))
		if axis.LengthSq() < axisEpsilon {
			axis = da.Cross(geometry.UnitX)
		}
		if axis.LengthSq() < axisEpsilon {
			axis = da.Cross(geometry.UnitY)
		}
	}
	axis = axis.Normalize()

	mag := diff * r.params.AngleStiffness * rule.Stiffness
	fa = da.Cross(axis).Scale(mag)
	fb = axis.Cross(db).Scale(mag)
	fc = fa.Add(fb).Neg()
	return fa, fb, fc
}

// balance spreads the domains of a center whose summed unit direction is
// longer than domainImbalance, pushing each one against the tangential part
// of that sum with the reaction on the center.  The pairwise rules alone
// have stable states with every domain in one hemisphere (water settles near
// 134° that way); the push grows with the excess and vanishes below it.
func (r *Relaxer) balance(id molecule.AtomID, center geometry.Vec3, pos func(domain) geometry.Vec3, push func(domain, geometry.Vec3)) {
	r.dirs = r.dirs[:0]
	sum := geometry.Zero
	for _, d := range r.domains {
		u := r.direction(pos(d).Sub(center))
		r.dirs = append(r.dirs, u)
		sum = sum.Add(u)
	}
	n := sum.Length()
	if n <= domainImbalance {
		return
	}
	g := r.params.AngleStiffness * (n - domainImbalance) / n
	for i, d := range r.domains {
		u := r.dirs[i]
		f := sum.Sub(u.Scale(sum.Dot(u))).Scale(-g)
		push(d, f)
		r.forces.Add(id, f.Neg())
	}
}

func (r *Relaxer) center() {
	p := r.params
	for _, b := range r.bodies {
		if b.pos.Length() > p.CenteringDeadzone {
			r.forces.Add(b.id, b.pos.Scale(-p.CenteringStrength))
		}
	}
}

// integrate is damped semi-implicit Euler with unit mass.
func (r *Relaxer) integrate(store *Store, dragged molecule.AtomID, dt float64) {
	p := r.params
	for _, b := range r.bodies {
		if b.id == dragged {
			store.velocities[b.id] = geometry.Zero
			continue
		}
		v := store.velocities[b.id].Add(r.forces.Get(b.id).Scale(dt)).Scale(p.Damping)
		next := b.pos.Add(v.Scale(dt))
		if !v.IsFinite() || !next.IsFinite() {
			store.velocities[b.id] = geometry.Zero
			continue
		}
		store.velocities[b.id] = v
		store.positions[b.id] = next
	}
}

//Personal.AI order the ending
