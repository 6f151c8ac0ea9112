package layout

import "math"

// DomainKind distinguishes the two kinds of electron domain around a center.
type DomainKind int

const (
	// BondedDomain points at a neighbouring atom.
	BondedDomain DomainKind = iota
	// LonePairDomain is one of the center's own lone pairs.
	LonePairDomain
)

func (k DomainKind) String() string {
	if k == LonePairDomain {
		return "lone_pair"
	}
	return "bonded"
}

// AngleRule is the target of one domain pair: the ideal angle in radians
// and a stiffness multiplier on Params.AngleStiffness.
type AngleRule struct {
	Ideal     float64
	Stiffness float64
}

const deg = math.Pi / 180

// Tetrahedral is the ideal angle between four equivalent domains.
var Tetrahedral = math.Acos(-1.0 / 3.0)

var (
	linear      = AngleRule{Ideal: math.Pi, Stiffness: 1}
	trigonal    = AngleRule{Ideal: 120 * deg, Stiffness: 1}
	tetrahedral = AngleRule{Ideal: Tetrahedral, Stiffness: 1}
)

// IdealAngle returns the rule for a pair of domains of kinds a and b around
// a center with the given total domain count and lone-pair count.  Lone
// pairs take more room than bonds, so pairs involving them open slightly
// and are held more stiffly.  The table is symmetric in a and b.
func IdealAngle(domains int, a, b DomainKind, lonePairs int) AngleRule {
	lp := 0
	if a == LonePairDomain {
		lp++
	}
	if b == LonePairDomain {
		lp++
	}

	switch {
	case domains <= 2:
		return linear
	case domains == 3:
		switch lonePairs {
		case 0:
			return trigonal
		case 1:
			if lp == 0 {
				return AngleRule{Ideal: 118 * deg, Stiffness: 1}
			}
			return AngleRule{Ideal: 121 * deg, Stiffness: 1.2}
		default:
			switch lp {
			case 2:
				return AngleRule{Ideal: 125 * deg, Stiffness: 1.5}
			case 1:
				return AngleRule{Ideal: 117.5 * deg, Stiffness: 1.2}
			}
			return trigonal
		}
	default:
		switch lonePairs {
		case 0:
			return tetrahedral
		case 1:
			if lp == 0 {
				return AngleRule{Ideal: 107 * deg, Stiffness: 1}
			}
			return AngleRule{Ideal: 111.8 * deg, Stiffness: 1.2}
		case 2:
			switch lp {
			case 0:
				return AngleRule{Ideal: 104.5 * deg, Stiffness: 1}
			case 1:
				return AngleRule{Ideal: 109.5 * deg, Stiffness: 1.2}
			}
			return AngleRule{Ideal: 114 * deg, Stiffness: 1.5}
		default:
			switch lp {
			case 0:
				return tetrahedral
			case 1:
				return AngleRule{Ideal: Tetrahedral, Stiffness: 1.2}
			}
			return AngleRule{Ideal: Tetrahedral, Stiffness: 1.5}
		}
	}
}

//Personal.AI order the ending
