package cli

import (
	"github.com/mingzhangyang/bond-lab/internal/application/simulation"
	"github.com/mingzhangyang/bond-lab/internal/config"
	"github.com/mingzhangyang/bond-lab/internal/domain/layout"
)

// PhysicsParams maps the physics section onto the relaxation constants.
func PhysicsParams(p config.PhysicsConfig) layout.Params {
	return layout.Params{
		MaxDt:             p.MaxDt,
		MinDistance:       p.MinDistance,
		Repulsion:         p.Repulsion,
		BondLength:        p.BondLength,
		BondStiffness:     p.BondStiffness,
		AngleStiffness:    p.AngleStiffness,
		LonePairDistance:  p.LonePairDistance,
		LonePairStiffness: p.LonePairStiffness,
		CenteringStrength: p.CenteringStrength,
		CenteringDeadzone: p.CenteringDeadzone,
		Damping:           p.Damping,
		SpawnHalfExtent:   p.SpawnHalfExtent,
	}
}

// SessionConfig builds the session settings from a loaded Config.
func SessionConfig(cfg *config.Config) simulation.Config {
	return simulation.Config{
		Params:           PhysicsParams(cfg.Physics),
		Seed:             cfg.Simulation.Seed,
		BondSnapDistance: cfg.Simulation.BondSnapDistance,
		BondOverlap:      cfg.Simulation.BondOverlap,
		MinBondLength:    cfg.Simulation.MinBondLength,
	}
}

//Personal.AI order the ending
