package simulation

import (
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// BeginDrag pins an atom.  From now until EndDrag the relaxation step
// leaves its position to DragTo.
func (s *Session) BeginDrag(id molecule.AtomID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.graph.Atom(id); !ok {
		return errors.New(errors.ErrCodeAtomNotFound, "atom not found").WithDetail(string(id))
	}
	if _, ok := s.store.Position(id); !ok {
		s.store.Sync(s.graph.Snapshot())
	}
	s.dragged = id
	s.store.ResetVelocity(id)
	s.logger.Debug("drag started", logging.String("atom_id", string(id)))
	return nil
}

// DragTo moves the pinned atom.
func (s *Session) DragTo(pos geometry.Vec3) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragged == "" {
		return errors.New(errors.ErrCodeNoDragTarget, "no atom is being dragged")
	}
	if !pos.IsFinite() {
		return errors.InvalidParam("drag position must be finite")
	}
	s.store.SetPosition(s.dragged, pos)
	return nil
}

// Dragged returns the pinned atom, or "".
func (s *Session) Dragged() molecule.AtomID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dragged
}

// EndDrag releases the pinned atom.  If it was dropped within the snap
// distance of an atom it is not yet bonded to, and both have free valence,
// a single bond is formed and returned.
func (s *Session) EndDrag() (*molecule.Bond, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dragged == "" {
		return nil, errors.New(errors.ErrCodeNoDragTarget, "no atom is being dragged")
	}
	released := s.dragged
	s.dragged = ""
	s.logger.Debug("drag ended", logging.String("atom_id", string(released)))

	partner, ok := s.nearestUnbonded(released)
	if !ok {
		return nil, nil
	}
	b, err := s.graph.AddBondWithinValence(released, partner, 1)
	if errors.IsCode(err, errors.ErrCodeValenceExceeded) {
		s.logger.Debug("proximity bond skipped",
			logging.String("atom_id", string(released)),
			logging.String("partner_id", string(partner)),
			logging.String("code", string(errors.ErrCodeValenceExceeded)))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.mutated("proximity_bond")
	s.metrics.RecordBondFormed()
	s.logger.Info("proximity bond formed",
		logging.String("bond_id", string(b.ID)),
		logging.String("source", string(released)),
		logging.String("target", string(partner)))
	return &b, nil
}

// nearestUnbonded finds the closest atom within the snap distance that is
// not already bonded to id and still has free valence.
func (s *Session) nearestUnbonded(id molecule.AtomID) (molecule.AtomID, bool) {
	p, ok := s.store.Position(id)
	if !ok {
		return "", false
	}
	var best molecule.AtomID
	bestDist := s.cfg.BondSnapDistance
	for _, a := range s.graph.Atoms() {
		if a.ID == id {
			continue
		}
		if _, bonded := s.graph.BondBetween(id, a.ID); bonded {
			continue
		}
		if s.graph.FreeValence(a.ID) == 0 {
			continue
		}
		q, ok := s.store.Position(a.ID)
		if !ok {
			continue
		}
		if d := p.DistanceTo(q); d <= bestDist {
			best, bestDist = a.ID, d
		}
	}
	return best, best != ""
}

// SetRotating raises or lowers the suspend flag.  While it is set ticks
// still sync the store but physics is frozen.
func (s *Session) SetRotating(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rotating != on {
		s.logger.Debug("rotation flag changed", logging.Bool("rotating", on))
	}
	s.rotating = on
}

// Rotating reports the suspend flag.
func (s *Session) Rotating() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rotating
}

// RotateBond turns the target side of a bond about the bond axis by angle
// radians, carrying lone pairs along and zeroing the moved atoms'
// velocities.  It returns the ids that moved.
func (s *Session) RotateBond(id molecule.BondID, angle float64) ([]molecule.AtomID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.graph.Bond(id)
	if !ok {
		return nil, errors.New(errors.ErrCodeBondNotFound, "bond not found").WithDetail(string(id))
	}
	origin, okS := s.store.Position(b.Source)
	tip, okT := s.store.Position(b.Target)
	if !okS || !okT {
		return nil, nil
	}
	axis := tip.Sub(origin)
	if axis.LengthSq() == 0 {
		return nil, nil
	}
	axis = axis.Normalize()

	side := s.graph.Snapshot().SideOf(b.Target, b.Source)
	for _, atom := range side {
		s.store.Transform(atom, func(p geometry.Vec3) geometry.Vec3 {
			return origin.Add(geometry.RotateAbout(p.Sub(origin), axis, angle))
		})
		s.store.ResetVelocity(atom)
	}
	s.logger.Debug("bond rotated",
		logging.String("bond_id", string(id)),
		logging.Float64("angle", angle),
		logging.Int("moved", len(side)))
	return side, nil
}

//Personal.AI order the ending
