package simulation

import (
	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

// AtomFrame is one atom as a renderer needs it.  Position is nil until the
// first tick after the atom was added.
type AtomFrame struct {
	ID        molecule.AtomID `json:"id"`
	Element   element.Symbol  `json:"element"`
	Radius    float64         `json:"radius"`
	Color     string          `json:"color"`
	Position  *geometry.Vec3  `json:"position,omitempty"`
	Velocity  *geometry.Vec3  `json:"velocity,omitempty"`
	LonePairs []geometry.Vec3 `json:"lone_pairs,omitempty"`
}

// BondFrame is one bond with its visual segment.  Placement and Direction
// are nil while either end lacks a position.
type BondFrame struct {
	ID        molecule.BondID   `json:"id"`
	Source    molecule.AtomID   `json:"source"`
	Target    molecule.AtomID   `json:"target"`
	Order     int               `json:"order"`
	Placement *layout.Placement `json:"placement,omitempty"`
	Direction *geometry.Vec3    `json:"direction,omitempty"`
}

// Frame is a deep copy of the session taken after a completed step.
type Frame struct {
	Tick     uint64            `json:"tick"`
	Atoms    []AtomFrame       `json:"atoms"`
	Bonds    []BondFrame       `json:"bonds"`
	Dragged  molecule.AtomID   `json:"dragged,omitempty"`
	Rotating bool              `json:"rotating"`
	Last     layout.StepReport `json:"last_step"`
}

// Frame returns a consistent copy of the current state.
func (s *Session) Frame() Frame {
	s.mu.RLock()
	defer s.mu.RUnlock()

	f := Frame{
		Tick:     s.ticks,
		Atoms:    make([]AtomFrame, 0, s.graph.Len()),
		Dragged:  s.dragged,
		Rotating: s.rotating,
		Last:     s.last,
	}
	for _, a := range s.graph.Atoms() {
		af := AtomFrame{ID: a.ID, Element: a.Element, Radius: element.VisualRadius(a.Element)}
		if info, ok := element.Lookup(a.Element); ok {
			af.Color = info.Color
		}
		if p, ok := s.store.Position(a.ID); ok {
			af.Position = &p
		}
		if v, ok := s.store.Velocity(a.ID); ok {
			af.Velocity = &v
		}
		af.LonePairs = s.store.LonePairs(a.ID)
		f.Atoms = append(f.Atoms, af)
	}

	bonds := s.graph.Bonds()
	f.Bonds = make([]BondFrame, 0, len(bonds))
	for _, b := range bonds {
		bf := BondFrame{ID: b.ID, Source: b.Source, Target: b.Target, Order: b.Order}
		src, okS := s.store.Position(b.Source)
		tgt, okT := s.store.Position(b.Target)
		if okS && okT {
			srcAtom, _ := s.graph.Atom(b.Source)
			tgtAtom, _ := s.graph.Atom(b.Target)
			delta := tgt.Sub(src)
			pl := layout.PlaceBond(delta.Length(),
				element.VisualRadius(srcAtom.Element), element.VisualRadius(tgtAtom.Element),
				s.cfg.BondOverlap, s.cfg.MinBondLength)
			dir := delta.Normalize()
			bf.Placement = &pl
			bf.Direction = &dir
		}
		f.Bonds = append(f.Bonds, bf)
	}
	return f
}

//Personal.AI order the ending
