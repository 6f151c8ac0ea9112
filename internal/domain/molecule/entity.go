// Package molecule owns the editable molecule graph: atoms, bonds and the
// invariants between them (distinct endpoints, one bond per atom pair, bond
// order 1–3).  The layout engine never mutates the graph; it consumes a
// read-only Snapshot once per step.
package molecule

import (
	"github.com/mingzhangyang/bond-lab/internal/domain/element"
)

// AtomID is an opaque, unique atom identifier.
type AtomID string

// BondID is an opaque, unique bond identifier.
type BondID string

// Atom is a vertex of the molecule graph.
type Atom struct {
	ID      AtomID         `json:"id"`
	Element element.Symbol `json:"element"`
}

// Bond connects two distinct atoms.  Source and Target are interchangeable
// for physics but keep their orientation for visual placement.
type Bond struct {
	ID     BondID `json:"id"`
	Source AtomID `json:"source"`
	Target AtomID `json:"target"`
	Order  int    `json:"order"`
}

const (
	MinBondOrder = 1
	MaxBondOrder = 3
)

// Other returns the endpoint of b opposite to id.
func (b Bond) Other(id AtomID) AtomID {
	if b.Source == id {
		return b.Target
	}
	return b.Source
}

// Touches reports whether id is an endpoint of b.
func (b Bond) Touches(id AtomID) bool {
	return b.Source == id || b.Target == id
}

// connects reports whether b joins a and b in either orientation.
func (b Bond) connects(x, y AtomID) bool {
	return (b.Source == x && b.Target == y) || (b.Source == y && b.Target == x)
}

//Personal.AI order the ending
