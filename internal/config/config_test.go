package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	require.NoError(t, NewDefaultConfig().Validate())
}

func TestValidate_Failures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero max dt", func(c *Config) { c.Physics.MaxDt = 0 }, "max_dt"},
		{"zero min distance", func(c *Config) { c.Physics.MinDistance = 0 }, "min_distance"},
		{"bond shorter than min distance", func(c *Config) { c.Physics.BondLength = 0.001 }, "bond_length"},
		{"damping of one", func(c *Config) { c.Physics.Damping = 1 }, "damping"},
		{"negative repulsion", func(c *Config) { c.Physics.Repulsion = -1 }, "repulsion"},
		{"negative deadzone", func(c *Config) { c.Physics.CenteringDeadzone = -0.1 }, "centering_deadzone"},
		{"zero tick", func(c *Config) { c.Simulation.TickInterval = 0 }, "tick_interval"},
		{"negative snap", func(c *Config) { c.Simulation.BondSnapDistance = -1 }, "bond_snap_distance"},
		{"zero min bond", func(c *Config) { c.Simulation.MinBondLength = 0 }, "min_bond_length"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"bad level", func(c *Config) { c.Log.Level = "verbose" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
		{"empty namespace", func(c *Config) { c.Metrics.Namespace = "" }, "metrics.namespace"},
		{"broadcast without addr", func(c *Config) {
			c.Broadcast.Enabled = true
			c.Broadcast.Addr = ""
		}, "broadcast.addr"},
		{"broadcast zero interval", func(c *Config) {
			c.Broadcast.Enabled = true
			c.Broadcast.Interval = 0
		}, "broadcast.interval"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewDefaultConfig()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidate_NamespaceOptionalWhenMetricsDisabled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Metrics.Enabled = false
	cfg.Metrics.Namespace = ""
	assert.NoError(t, cfg.Validate())
}

func TestValidate_ZeroCouplingsAllowed(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Physics.Repulsion = 0
	cfg.Physics.AngleStiffness = 0
	cfg.Physics.CenteringStrength = 0
	assert.NoError(t, cfg.Validate())
}

//Personal.AI order the ending
