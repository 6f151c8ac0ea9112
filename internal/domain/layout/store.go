package layout

import (
	"sort"

	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

// Store is the cross-frame physics state: one position and velocity per
// atom plus the atom's lone-pair points.  It is never rebuilt wholesale;
// Sync creates and deletes entries as atoms appear and disappear.
type Store struct {
	positions  map[molecule.AtomID]geometry.Vec3
	velocities map[molecule.AtomID]geometry.Vec3
	lonePairs  map[molecule.AtomID][]geometry.Vec3

	rng       geometry.Source
	spawnHalf float64
	observer  Observer
}

// NewStore returns an empty store drawing initial positions from src inside
// a cube of the given half extent.
func NewStore(src geometry.Source, spawnHalfExtent float64) *Store {
	return &Store{
		positions:  make(map[molecule.AtomID]geometry.Vec3),
		velocities: make(map[molecule.AtomID]geometry.Vec3),
		lonePairs:  make(map[molecule.AtomID][]geometry.Vec3),
		rng:        src,
		spawnHalf:  spawnHalfExtent,
	}
}

// SetSpawnHalfExtent changes the cube that atoms added from now on are
// dropped into.  Placed atoms keep their positions.
func (s *Store) SetSpawnHalfExtent(half float64) { s.spawnHalf = half }

// SpawnHalfExtent returns the current spawn cube half extent.
func (s *Store) SpawnHalfExtent() float64 { return s.spawnHalf }

// SetObserver installs (or with nil, removes) the change observer.
func (s *Store) SetObserver(o Observer) { s.observer = o }

// Sync reconciles the store with the snapshot's atom set.  New atoms get a
// random position in the spawn cube and zero velocity, in snapshot order.
// Atoms no longer present lose their position, velocity and lone pairs.
// The ids added and removed are returned, removed ids sorted.
func (s *Store) Sync(snap *molecule.Snapshot) (added, removed []molecule.AtomID) {
	for _, a := range snap.Atoms {
		if _, ok := s.positions[a.ID]; ok {
			continue
		}
		s.positions[a.ID] = geometry.RandomInCube(s.rng, s.spawnHalf)
		s.velocities[a.ID] = geometry.Zero
		added = append(added, a.ID)
	}
	for id := range s.positions {
		if snap.Has(id) {
			continue
		}
		removed = append(removed, id)
	}
	sort.Slice(removed, func(i, j int) bool { return removed[i] < removed[j] })
	for _, id := range removed {
		delete(s.positions, id)
		delete(s.velocities, id)
		delete(s.lonePairs, id)
		if s.observer != nil {
			s.observer.AtomRemoved(id)
		}
	}
	return added, removed
}

// Position returns the atom's position, or false if it has none yet.
func (s *Store) Position(id molecule.AtomID) (geometry.Vec3, bool) {
	p, ok := s.positions[id]
	return p, ok
}

// SetPosition overwrites the position of a known atom.  It is the drag
// handler's write path and reports false for unknown ids.
func (s *Store) SetPosition(id molecule.AtomID, p geometry.Vec3) bool {
	if _, ok := s.positions[id]; !ok {
		return false
	}
	s.positions[id] = p
	return true
}

// Velocity returns the atom's velocity, or false if it has none yet.
func (s *Store) Velocity(id molecule.AtomID) (geometry.Vec3, bool) {
	v, ok := s.velocities[id]
	return v, ok
}

// ResetVelocity zeroes the atom's velocity.
func (s *Store) ResetVelocity(id molecule.AtomID) {
	if _, ok := s.velocities[id]; ok {
		s.velocities[id] = geometry.Zero
	}
}

// LonePairs returns a copy of the atom's lone-pair points.
func (s *Store) LonePairs(id molecule.AtomID) []geometry.Vec3 {
	lp := s.lonePairs[id]
	if len(lp) == 0 {
		return nil
	}
	return append([]geometry.Vec3(nil), lp...)
}

// Translate moves an atom and its lone pairs rigidly by delta.
func (s *Store) Translate(id molecule.AtomID, delta geometry.Vec3) {
	s.Transform(id, func(p geometry.Vec3) geometry.Vec3 { return p.Add(delta) })
}

// Transform maps an atom's position and each of its lone pairs through fn.
// It reports false for unknown ids.
func (s *Store) Transform(id molecule.AtomID, fn func(geometry.Vec3) geometry.Vec3) bool {
	p, ok := s.positions[id]
	if !ok {
		return false
	}
	s.positions[id] = fn(p)
	for i, lp := range s.lonePairs[id] {
		s.lonePairs[id][i] = fn(lp)
	}
	return true
}

// Len returns the number of atoms with a position.
func (s *Store) Len() int { return len(s.positions) }

// IDs returns the ids with a position, sorted.
func (s *Store) IDs() []molecule.AtomID {
	out := make([]molecule.AtomID, 0, len(s.positions))
	for id := range s.positions {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// KineticEnergy is Σ ½|v|² over all atoms (unit mass).
func (s *Store) KineticEnergy() float64 {
	ke := 0.0
	for _, v := range s.velocities {
		ke += 0.5 * v.LengthSq()
	}
	return ke
}

// resizeLonePairs grows or trims the atom's lone pairs to want.  New points
// are spawned at dist from center in a random direction; excess points are
// dropped from the end.
func (s *Store) resizeLonePairs(id molecule.AtomID, center geometry.Vec3, want int, dist float64) []geometry.Vec3 {
	lp := s.lonePairs[id]
	if len(lp) > want {
		lp = lp[:want]
	}
	for len(lp) < want {
		lp = append(lp, center.Add(geometry.RandomUnit(s.rng).Scale(dist)))
	}
	if want == 0 {
		delete(s.lonePairs, id)
		return nil
	}
	s.lonePairs[id] = lp
	return lp
}

func (s *Store) notifyPositions() {
	if s.observer == nil {
		return
	}
	for id, p := range s.positions {
		s.observer.PositionUpdated(id, p)
	}
}

//Personal.AI order the ending
