// Package layout is the real-time relaxation engine that places atoms and
// lone pairs in 3D so that a molecule approximates its VSEPR geometry.
//
// Each frame the caller runs Store.Sync against the current molecule
// snapshot, then Relaxer.Step, which accumulates pairwise repulsion, bond
// springs, VSEPR domain-angle forces and a weak centering pull, and
// integrates with damped semi-implicit Euler.  The package is single
// threaded and allocation-light; callers that share a Store across
// goroutines must serialise access themselves.
package layout

// Params holds the tuning constants of the relaxation step.  Lengths are in
// scene units; the shared ideal bond length defines the scale.
type Params struct {
	// MaxDt caps the frame delta so long frames cannot destabilise the
	// integrator.
	MaxDt float64 `json:"max_dt"`
	// MinDistance is the separation below which directions are considered
	// undefined and replaced by a random unit vector.
	MinDistance float64 `json:"min_distance"`
	// Repulsion is the coefficient of the all-pairs inverse-square push.
	Repulsion float64 `json:"repulsion"`
	// BondLength is the single ideal length shared by every bond.
	BondLength    float64 `json:"bond_length"`
	BondStiffness float64 `json:"bond_stiffness"`
	// AngleStiffness scales the tangential VSEPR force per radian of error.
	AngleStiffness float64 `json:"angle_stiffness"`
	// LonePairDistance is both the spawn distance and the rest length of the
	// lone-pair tether.
	LonePairDistance  float64 `json:"lone_pair_distance"`
	LonePairStiffness float64 `json:"lone_pair_stiffness"`
	CenteringStrength float64 `json:"centering_strength"`
	CenteringDeadzone float64 `json:"centering_deadzone"`
	// Damping multiplies every velocity once per step; must be in (0, 1).
	Damping float64 `json:"damping"`
	// SpawnHalfExtent bounds the cube new atoms are dropped into.
	SpawnHalfExtent float64 `json:"spawn_half_extent"`
}

// DefaultParams returns the constants the editor ships with.
func DefaultParams() Params {
	return Params{
		MaxDt:             0.05,
		MinDistance:       0.01,
		Repulsion:         0.5,
		BondLength:        1.5,
		BondStiffness:     20,
		AngleStiffness:    5,
		LonePairDistance:  0.8,
		LonePairStiffness: 10,
		CenteringStrength: 0.05,
		CenteringDeadzone: 0.5,
		Damping:           0.9,
		SpawnHalfExtent:   1,
	}
}

func (p Params) minDistanceSq() float64 { return p.MinDistance * p.MinDistance }

//Personal.AI order the ending
