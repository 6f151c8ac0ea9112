package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
	"github.com/mingzhangyang/bond-lab/internal/domain/molecule"
)

func TestForces_ResetPurgesStaleKeys(t *testing.T) {
	f := NewForces()
	f.Reset([]molecule.AtomID{"a", "b", "c"})
	f.Add("a", geometry.V(1, 0, 0))
	f.Add("c", geometry.V(0, 1, 0))

	f.Reset([]molecule.AtomID{"a", "b"})
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, geometry.Zero, f.Get("a"))
	assert.Equal(t, geometry.Zero, f.Get("c"))
}

func TestForces_AddIgnoresUnknownIDs(t *testing.T) {
	f := NewForces()
	f.Reset([]molecule.AtomID{"a"})
	f.Add("ghost", geometry.V(5, 5, 5))
	f.Add("a", geometry.V(1, 2, 3))
	f.Add("a", geometry.V(1, 0, 0))

	assert.Equal(t, 1, f.Len())
	assert.Equal(t, geometry.V(2, 2, 3), f.Get("a"))
	assert.Equal(t, geometry.V(2, 2, 3), f.Net())
}

//Personal.AI order the ending
