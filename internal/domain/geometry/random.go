package geometry

// Source is the randomness consumed by the layout engine.  *math/rand.Rand
// satisfies it; tests inject seeded or scripted sources.
type Source interface {
	// Float64 returns a pseudo-random number in [0, 1).
	Float64() float64
}

const maxUnitTries = 16

// RandomInCube returns a point with each axis drawn independently from
// [-half, half).
func RandomInCube(src Source, half float64) Vec3 {
	return Vec3{
		X: (src.Float64()*2 - 1) * half,
		Y: (src.Float64()*2 - 1) * half,
		Z: (src.Float64()*2 - 1) * half,
	}
}

// RandomUnit returns a random unit vector.  Samples are drawn from the unit
// cube and rejected outside the unit ball or near the origin; if every try is
// rejected UnitX is returned so callers always get a usable direction.
func RandomUnit(src Source) Vec3 {
	for i := 0; i < maxUnitTries; i++ {
		v := RandomInCube(src, 1)
		l2 := v.LengthSq()
		if l2 > 1e-6 && l2 <= 1 {
			return v.Normalize()
		}
	}
	return UnitX
}

//Personal.AI order the ending
