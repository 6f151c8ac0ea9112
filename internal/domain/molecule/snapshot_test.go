package molecule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
)

func TestSnapshot_IsolatedFromLaterEdits(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, LoadPreset(g, "water"))
	snap := g.Snapshot()

	_, err := g.AddAtom(element.C)
	require.NoError(t, err)

	assert.Len(t, snap.Atoms, 3)
	assert.Len(t, snap.IDs(), 3)
}

func TestSnapshot_Adjacency(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, LoadPreset(g, "ammonia"))
	snap := g.Snapshot()
	n := snap.Atoms[0].ID

	adj := snap.Adjacency()
	assert.Len(t, adj[n], 3)
	for _, h := range snap.Atoms[1:] {
		assert.Equal(t, []AtomID{n}, adj[h.ID])
	}

	sym, ok := snap.Element(n)
	require.True(t, ok)
	assert.Equal(t, element.N, sym)
	_, ok = snap.Element("ghost")
	assert.False(t, ok)
}

func TestSnapshot_AdjacencySkipsDanglingBonds(t *testing.T) {
	snap := NewSnapshot(
		[]Atom{{ID: "a", Element: element.C}},
		[]Bond{{ID: "b1", Source: "a", Target: "gone", Order: 1}},
	)
	assert.Empty(t, snap.Adjacency()["a"])
	assert.False(t, snap.Has("gone"))
}

func TestSnapshot_SideOf(t *testing.T) {
	g := newTestGraph()
	require.NoError(t, LoadPreset(g, "ethylene"))
	snap := g.Snapshot()
	c1, c2 := snap.Atoms[0].ID, snap.Atoms[1].ID

	side := snap.SideOf(c2, c1)
	assert.Len(t, side, 3, "second carbon and its two hydrogens")
	assert.Equal(t, c2, side[0])
	assert.NotContains(t, side, c1)
}

//Personal.AI order the ending
