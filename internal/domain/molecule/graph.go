package molecule

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// Graph is the mutable atom/bond collection.  Atoms and bonds keep insertion
// order so that iteration, and therefore force application, is deterministic.
// Graph is not safe for concurrent use; the simulation session serialises
// access.
type Graph struct {
	atoms []Atom
	bonds []Bond
	newID func() string
}

// GraphOption configures a Graph.
type GraphOption func(*Graph)

// WithIDGenerator replaces the uuid generator, mainly for tests that want
// readable ids.
func WithIDGenerator(fn func() string) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.newID = fn
		}
	}
}

// SequentialIDs returns a generator yielding prefix1, prefix2, ...
func SequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

// NewGraph returns an empty graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{newID: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddAtom appends a new atom of the given element.
func (g *Graph) AddAtom(sym element.Symbol) (Atom, error) {
	if _, ok := element.Lookup(sym); !ok {
		return Atom{}, errors.New(errors.ErrCodeUnknownElement, "unknown element symbol").
			WithDetail(string(sym))
	}
	a := Atom{ID: AtomID(g.newID()), Element: sym}
	g.atoms = append(g.atoms, a)
	return a, nil
}

// RemoveAtom deletes the atom and every bond touching it.  The ids of the
// removed bonds are returned.
func (g *Graph) RemoveAtom(id AtomID) ([]BondID, error) {
	idx := g.atomIndex(id)
	if idx < 0 {
		return nil, errors.New(errors.ErrCodeAtomNotFound, "atom not found").WithDetail(string(id))
	}
	g.atoms = append(g.atoms[:idx], g.atoms[idx+1:]...)

	var removed []BondID
	kept := g.bonds[:0]
	for _, b := range g.bonds {
		if b.Touches(id) {
			removed = append(removed, b.ID)
			continue
		}
		kept = append(kept, b)
	}
	g.bonds = kept
	return removed, nil
}

// AddBond connects source and target.  Self bonds, duplicate pairs, unknown
// atoms and orders outside 1–3 are rejected.
func (g *Graph) AddBond(source, target AtomID, order int) (Bond, error) {
	if source == target {
		return Bond{}, errors.New(errors.ErrCodeSelfBond, "cannot bond an atom to itself").
			WithDetail(string(source))
	}
	if err := validateOrder(order); err != nil {
		return Bond{}, err
	}
	for _, id := range []AtomID{source, target} {
		if g.atomIndex(id) < 0 {
			return Bond{}, errors.New(errors.ErrCodeAtomNotFound, "atom not found").WithDetail(string(id))
		}
	}
	if existing, ok := g.BondBetween(source, target); ok {
		return Bond{}, errors.New(errors.ErrCodeDuplicateBond, "atoms are already bonded").
			WithDetail(string(existing.ID))
	}
	b := Bond{ID: BondID(g.newID()), Source: source, Target: target, Order: order}
	g.bonds = append(g.bonds, b)
	return b, nil
}

// AddBondWithinValence is AddBond that additionally refuses to push either
// atom past its element valence.
func (g *Graph) AddBondWithinValence(source, target AtomID, order int) (Bond, error) {
	if err := validateOrder(order); err != nil {
		return Bond{}, err
	}
	if source != target {
		for _, id := range []AtomID{source, target} {
			if g.atomIndex(id) >= 0 && g.FreeValence(id) < order {
				return Bond{}, errors.New(errors.ErrCodeValenceExceeded, "bond would exceed valence").
					WithDetail(string(id))
			}
		}
	}
	return g.AddBond(source, target, order)
}

// RemoveBond deletes a bond by id.
func (g *Graph) RemoveBond(id BondID) error {
	idx := g.bondIndex(id)
	if idx < 0 {
		return errors.New(errors.ErrCodeBondNotFound, "bond not found").WithDetail(string(id))
	}
	g.bonds = append(g.bonds[:idx], g.bonds[idx+1:]...)
	return nil
}

// SetBondOrder changes the multiplicity of an existing bond.
func (g *Graph) SetBondOrder(id BondID, order int) error {
	if err := validateOrder(order); err != nil {
		return err
	}
	idx := g.bondIndex(id)
	if idx < 0 {
		return errors.New(errors.ErrCodeBondNotFound, "bond not found").WithDetail(string(id))
	}
	g.bonds[idx].Order = order
	return nil
}

func validateOrder(order int) error {
	if order < MinBondOrder || order > MaxBondOrder {
		return errors.New(errors.ErrCodeInvalidBondOrder, "bond order must be 1, 2 or 3").
			WithDetail(fmt.Sprintf("order=%d", order))
	}
	return nil
}

// Atom returns the atom with the given id.
func (g *Graph) Atom(id AtomID) (Atom, bool) {
	if idx := g.atomIndex(id); idx >= 0 {
		return g.atoms[idx], true
	}
	return Atom{}, false
}

// Bond returns the bond with the given id.
func (g *Graph) Bond(id BondID) (Bond, bool) {
	if idx := g.bondIndex(id); idx >= 0 {
		return g.bonds[idx], true
	}
	return Bond{}, false
}

// BondBetween returns the bond joining a and b in either orientation.
func (g *Graph) BondBetween(a, b AtomID) (Bond, bool) {
	for _, bond := range g.bonds {
		if bond.connects(a, b) {
			return bond, true
		}
	}
	return Bond{}, false
}

// Atoms returns a copy of the atoms in insertion order.
func (g *Graph) Atoms() []Atom {
	return append([]Atom(nil), g.atoms...)
}

// Bonds returns a copy of the bonds in insertion order.
func (g *Graph) Bonds() []Bond {
	return append([]Bond(nil), g.bonds...)
}

// Len returns the number of atoms.
func (g *Graph) Len() int { return len(g.atoms) }

// BondOrderSum is the total bond order of the atom's bonds.
func (g *Graph) BondOrderSum(id AtomID) int {
	sum := 0
	for _, b := range g.bonds {
		if b.Touches(id) {
			sum += b.Order
		}
	}
	return sum
}

// FreeValence is the element valence minus the bond order already used.
// Unknown atoms report zero.
func (g *Graph) FreeValence(id AtomID) int {
	a, ok := g.Atom(id)
	if !ok {
		return 0
	}
	info, _ := element.Lookup(a.Element)
	free := info.Valence - g.BondOrderSum(id)
	if free < 0 {
		return 0
	}
	return free
}

// Clear removes every atom and bond.
func (g *Graph) Clear() {
	g.atoms = nil
	g.bonds = nil
}

// Snapshot captures the current atoms and bonds for one simulation step.
func (g *Graph) Snapshot() *Snapshot {
	return NewSnapshot(g.atoms, g.bonds)
}

func (g *Graph) atomIndex(id AtomID) int {
	for i, a := range g.atoms {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func (g *Graph) bondIndex(id BondID) int {
	for i, b := range g.bonds {
		if b.ID == id {
			return i
		}
	}
	return -1
}

//Personal.AI order the ending
