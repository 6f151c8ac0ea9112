package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func TestVec3_Arithmetic(t *testing.T) {
	a := V(1, 2, 3)
	b := V(-4, 0.5, 2)

	assert.Equal(t, V(-3, 2.5, 5), a.Add(b))
	assert.Equal(t, V(5, 1.5, 1), a.Sub(b))
	assert.Equal(t, V(2, 4, 6), a.Scale(2))
	assert.Equal(t, V(-1, -2, -3), a.Neg())
	assert.InDelta(t, -4+1+6, a.Dot(b), eps)
	assert.InDelta(t, 14, a.LengthSq(), eps)
	assert.InDelta(t, math.Sqrt(14), a.Length(), eps)
}

func TestVec3_Cross(t *testing.T) {
	assert.Equal(t, UnitZ, UnitX.Cross(UnitY))
	assert.Equal(t, UnitX, UnitY.Cross(UnitZ))
	assert.Equal(t, UnitZ.Neg(), UnitY.Cross(UnitX))

	a, b := V(1, 2, 3), V(4, 5, 6)
	c := a.Cross(b)
	assert.InDelta(t, 0, c.Dot(a), eps)
	assert.InDelta(t, 0, c.Dot(b), eps)
}

func TestVec3_Normalize(t *testing.T) {
	n := V(3, 0, 4).Normalize()
	assert.InDelta(t, 1, n.Length(), eps)
	assert.InDelta(t, 0.6, n.X, eps)
	assert.Equal(t, Zero, Zero.Normalize())
}

func TestVec3_IsFinite(t *testing.T) {
	assert.True(t, V(1, 2, 3).IsFinite())
	assert.False(t, V(math.NaN(), 0, 0).IsFinite())
	assert.False(t, V(0, math.Inf(1), 0).IsFinite())
}

func TestAngleBetween_NeverNaN(t *testing.T) {
	cases := []struct {
		name string
		a, b Vec3
		want float64
	}{
		{"identical", V(1, 1, 0), V(1, 1, 0), 0},
		{"opposite", V(0.3, -0.2, 0.9), V(-0.3, 0.2, -0.9), math.Pi},
		{"orthogonal", UnitX, UnitY, math.Pi / 2},
		{"scaled identical", V(1e-3, 2e-3, 0), V(7, 14, 0), 0},
		{"zero input", Zero, UnitX, math.Pi / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := AngleBetween(tc.a, tc.b)
			assert.False(t, math.IsNaN(got))
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, math.Pi)
			assert.InDelta(t, tc.want, got, 1e-6)
		})
	}
}

func TestAngleBetween_RandomPairsStayInRange(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a := RandomUnit(src)
		b := a
		if i%2 == 0 {
			b = a.Neg()
		}
		got := AngleBetween(a, b)
		assert.False(t, math.IsNaN(got))
		assert.True(t, got >= 0 && got <= math.Pi)
	}
}

func TestRotateAbout(t *testing.T) {
	r := RotateAbout(UnitX, UnitZ, math.Pi/2)
	assert.InDelta(t, 0, r.X, eps)
	assert.InDelta(t, 1, r.Y, eps)
	assert.InDelta(t, 0, r.Z, eps)

	// Components along the axis are preserved.
	r = RotateAbout(V(1, 0, 2), UnitZ, math.Pi)
	assert.InDelta(t, -1, r.X, eps)
	assert.InDelta(t, 2, r.Z, eps)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(1.0000001, -1, 1))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
	assert.Equal(t, 0.5, Clamp(0.5, -1, 1))
}

//Personal.AI order the ending
