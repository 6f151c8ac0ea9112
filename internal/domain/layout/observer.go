package layout

import (
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

// Observer is an optional capability notified of store changes, typically a
// renderer keeping mesh handles in sync.  Headless runs leave it nil.
type Observer interface {
	// PositionUpdated is called for every atom after each completed step,
	// in no particular order.
	PositionUpdated(id molecule.AtomID, pos geometry.Vec3)
	// AtomRemoved is called when Sync drops an atom that left the graph.
	AtomRemoved(id molecule.AtomID)
}

//Personal.AI order the ending
