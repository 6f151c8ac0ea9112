package layout

import (
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

// Forces is the per-step accumulator, keyed by atom.  It is reused across
// steps; Reset zeroes it for the current atom set and purges ids that are
// gone.
type Forces struct {
	m map[molecule.AtomID]geometry.Vec3
}

// NewForces returns an empty accumulator.
func NewForces() *Forces {
	return &Forces{m: make(map[molecule.AtomID]geometry.Vec3)}
}

// Reset makes the key set exactly ids, each with a zero force.
func (f *Forces) Reset(ids []molecule.AtomID) {
	keep := make(map[molecule.AtomID]struct{}, len(ids))
	for _, id := range ids {
		keep[id] = struct{}{}
		f.m[id] = geometry.Zero
	}
	for id := range f.m {
		if _, ok := keep[id]; !ok {
			delete(f.m, id)
		}
	}
}

// Add accumulates v onto id.  Ids outside the current key set are ignored.
func (f *Forces) Add(id molecule.AtomID, v geometry.Vec3) {
	cur, ok := f.m[id]
	if !ok {
		return
	}
	f.m[id] = cur.Add(v)
}

// Get returns the accumulated force on id.
func (f *Forces) Get(id molecule.AtomID) geometry.Vec3 { return f.m[id] }

// Len returns the size of the key set.
func (f *Forces) Len() int { return len(f.m) }

// Net returns the vector sum over all atoms.
func (f *Forces) Net() geometry.Vec3 {
	sum := geometry.Zero
	for _, v := range f.m {
		sum = sum.Add(v)
	}
	return sum
}

//Personal.AI order the ending
