package layout

import (
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

// Placement describes the visible segment of a bond: its length and the
// offset of its midpoint from the source atom along the bond direction.
type Placement struct {
	Length       float64 `json:"length"`
	CenterOffset float64 `json:"center_offset"`
}

// PlaceBond trims a bond of the given center distance so that it starts
// and ends just inside each atom's visual sphere.  Each end is inset by
// that atom's radius minus overlap, floored at zero.  When atoms are
// nearly touching the full distance is shown instead; below minLength the
// segment keeps minLength and sits at the midpoint.
func PlaceBond(distance, sourceRadius, targetRadius, overlap, minLength float64) Placement {
	if distance <= minLength {
		return Placement{Length: minLength, CenterOffset: distance * 0.5}
	}
	insetS := sourceRadius - overlap
	if insetS < 0 {
		insetS = 0
	}
	insetT := targetRadius - overlap
	if insetT < 0 {
		insetT = 0
	}
	visible := distance - insetS - insetT
	if visible <= minLength {
		return Placement{Length: distance, CenterOffset: distance * 0.5}
	}
	return Placement{Length: visible, CenterOffset: insetS + visible*0.5}
}

// BondAngle returns the angle a-center-b in radians.  It is false when any
// of the three atoms has no position.
func BondAngle(store *Store, a, center, b molecule.AtomID) (float64, bool) {
	pa, okA := store.Position(a)
	pc, okC := store.Position(center)
	pb, okB := store.Position(b)
	if !okA || !okC || !okB {
		return 0, false
	}
	return geometry.AngleBetween(pa.Sub(pc), pb.Sub(pc)), true
}

// BondLength returns the distance between two positioned atoms.
func BondLength(store *Store, a, b molecule.AtomID) (float64, bool) {
	pa, okA := store.Position(a)
	pb, okB := store.Position(b)
	if !okA || !okB {
		return 0, false
	}
	return pa.DistanceTo(pb), true
}

//Personal.AI order the ending
