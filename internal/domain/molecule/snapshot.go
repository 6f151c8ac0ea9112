package molecule

import "github.com/mingzhangyang/bond-lab/internal/domain/element"

// Snapshot is a read-only view of the graph taken at the start of a step.
// It copies the slices it is built from, so later graph edits do not leak
// into a step in progress.
type Snapshot struct {
	Atoms []Atom
	Bonds []Bond

	index map[AtomID]int
}

// NewSnapshot copies atoms and bonds into a new Snapshot.
func NewSnapshot(atoms []Atom, bonds []Bond) *Snapshot {
	s := &Snapshot{
		Atoms: append([]Atom(nil), atoms...),
		Bonds: append([]Bond(nil), bonds...),
		index: make(map[AtomID]int, len(atoms)),
	}
	for i, a := range s.Atoms {
		s.index[a.ID] = i
	}
	return s
}

// Has reports whether id is part of the snapshot.
func (s *Snapshot) Has(id AtomID) bool {
	_, ok := s.index[id]
	return ok
}

// Element returns the element of atom id.
func (s *Snapshot) Element(id AtomID) (element.Symbol, bool) {
	i, ok := s.index[id]
	if !ok {
		return "", false
	}
	return s.Atoms[i].Element, true
}

// IDs returns the atom ids in snapshot order.
func (s *Snapshot) IDs() []AtomID {
	out := make([]AtomID, len(s.Atoms))
	for i, a := range s.Atoms {
		out[i] = a.ID
	}
	return out
}

// Adjacency maps every atom to the atoms directly bonded to it, in bond
// order.  Bonds whose endpoints are not in the snapshot are skipped.
func (s *Snapshot) Adjacency() map[AtomID][]AtomID {
	adj := make(map[AtomID][]AtomID, len(s.Atoms))
	for _, a := range s.Atoms {
		adj[a.ID] = nil
	}
	for _, b := range s.Bonds {
		if !s.Has(b.Source) || !s.Has(b.Target) {
			continue
		}
		adj[b.Source] = append(adj[b.Source], b.Target)
		adj[b.Target] = append(adj[b.Target], b.Source)
	}
	return adj
}

// SideOf returns the atoms reachable from start without crossing the bond
// between start and exclude.  It is used to rotate one half of a molecule
// about a bond axis.
func (s *Snapshot) SideOf(start, exclude AtomID) []AtomID {
	adj := s.Adjacency()
	seen := map[AtomID]bool{start: true, exclude: true}
	queue := []AtomID{start}
	var out []AtomID
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)
		for _, n := range adj[cur] {
			if seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return out
}

//Personal.AI order the ending
