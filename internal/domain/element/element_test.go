package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLonePairs_ModelledSubset(t *testing.T) {
	assert.Equal(t, 0, LonePairs(H))
	assert.Equal(t, 0, LonePairs(C))
	assert.Equal(t, 1, LonePairs(N))
	assert.Equal(t, 2, LonePairs(O))
	assert.Equal(t, 0, LonePairs(Symbol("Xx")))
}

func TestLookup(t *testing.T) {
	info, ok := Lookup(O)
	require.True(t, ok)
	assert.Equal(t, "Oxygen", info.Name)
	assert.Equal(t, 2, info.Valence)
	assert.InDelta(t, 0.38, info.VisualRadius(), 1e-9)

	_, ok = Lookup(Symbol("Xx"))
	assert.False(t, ok)
}

func TestParse(t *testing.T) {
	sym, ok := Parse(" cl ")
	require.True(t, ok)
	assert.Equal(t, Cl, sym)

	_, ok = Parse("Zz")
	assert.False(t, ok)
}

func TestVisualRadius_UnknownFallsBackToCarbon(t *testing.T) {
	assert.Equal(t, VisualRadius(C), VisualRadius(Symbol("??")))
	assert.Greater(t, VisualRadius(C), VisualRadius(H))
}

func TestAll_OrderedByAtomicNumber(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	assert.Equal(t, H, all[0].Symbol)
	assert.Equal(t, Cl, all[len(all)-1].Symbol)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Number, all[i].Number)
	}
}

//Personal.AI order the ending
