package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/internal/domain/element"
	"github.com/mingzhangyang/bond-lab/internal/domain/geometry"
)

func TestPlaceBond(t *testing.T) {
	cases := []struct {
		name     string
		distance float64
		rs, rt   float64
		want     Placement
	}{
		{"atoms overlapping insets fall back to full span", 1, 1, 1, Placement{Length: 1, CenterOffset: 0.5}},
		{"inset from both surfaces", 4, 1, 1, Placement{Length: 2.2, CenterOffset: 2.0}},
		{"asymmetric radii", 4, 0.5, 1.1, Placement{Length: 2.6, CenterOffset: 1.7}},
		{"radii below overlap give no inset", 2, 0.05, 0.05, Placement{Length: 2, CenterOffset: 1}},
		{"zero distance", 0, 1, 1, Placement{Length: 0.001, CenterOffset: 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := PlaceBond(tc.distance, tc.rs, tc.rt, 0.1, 0.001)
			assert.InDelta(t, tc.want.Length, got.Length, 1e-9)
			assert.InDelta(t, tc.want.CenterOffset, got.CenterOffset, 1e-9)
		})
	}
}

func TestPlaceBond_ContinuousAtMinLength(t *testing.T) {
	const minLen = 0.2
	at := PlaceBond(minLen, 1, 1, 0.1, minLen)
	assert.Equal(t, Placement{Length: minLen, CenterOffset: minLen / 2}, at)

	above := PlaceBond(minLen+1e-9, 1, 1, 0.1, minLen)
	assert.InDelta(t, at.Length, above.Length, 1e-6)
	assert.InDelta(t, at.CenterOffset, above.CenterOffset, 1e-6)
}

func TestPlaceBond_NeverNegative(t *testing.T) {
	for d := 0.0; d < 6; d += 0.05 {
		p := PlaceBond(d, element.VisualRadius(element.Cl), element.VisualRadius(element.H), 0.1, 0.001)
		assert.Greater(t, p.Length, 0.0)
		assert.GreaterOrEqual(t, p.CenterOffset, 0.0)
		assert.LessOrEqual(t, p.CenterOffset, d+1e-9)
	}
}

func TestBondAngleAndLength(t *testing.T) {
	s := NewStore(constSource(0.5), 1)
	s.positions["c"] = geometry.Zero
	s.positions["a"] = geometry.V(2, 0, 0)
	s.positions["b"] = geometry.V(0, 3, 0)

	angle, ok := BondAngle(s, "a", "c", "b")
	require.True(t, ok)
	assert.InDelta(t, 90, angle/deg, 1e-9)

	l, ok := BondLength(s, "a", "b")
	require.True(t, ok)
	assert.InDelta(t, 3.605551275, l, 1e-9)

	_, ok = BondAngle(s, "a", "c", "ghost")
	assert.False(t, ok)
	_, ok = BondLength(s, "ghost", "a")
	assert.False(t, ok)
}

//Personal.AI order the ending
