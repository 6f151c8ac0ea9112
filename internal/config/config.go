// Package config defines the configuration structures of bond-lab.  No I/O
// or parsing lives in this file, only plain data types and validation.
package config

import (
	"time"

	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// PhysicsConfig mirrors the relaxation constants.  Every field may be
// hot-reloaded into a running session.
type PhysicsConfig struct {
	MaxDt             float64 `mapstructure:"max_dt"`
	MinDistance       float64 `mapstructure:"min_distance"`
	Repulsion         float64 `mapstructure:"repulsion"`
	BondLength        float64 `mapstructure:"bond_length"`
	BondStiffness     float64 `mapstructure:"bond_stiffness"`
	AngleStiffness    float64 `mapstructure:"angle_stiffness"`
	LonePairDistance  float64 `mapstructure:"lone_pair_distance"`
	LonePairStiffness float64 `mapstructure:"lone_pair_stiffness"`
	CenteringStrength float64 `mapstructure:"centering_strength"`
	CenteringDeadzone float64 `mapstructure:"centering_deadzone"`
	Damping           float64 `mapstructure:"damping"`
	SpawnHalfExtent   float64 `mapstructure:"spawn_half_extent"`
}

// SimulationConfig holds session settings outside the relaxation step.
type SimulationConfig struct {
	TickInterval     time.Duration `mapstructure:"tick_interval"`
	Seed             int64         `mapstructure:"seed"` // 0 = time-based
	Preset           string        `mapstructure:"preset"`
	BondSnapDistance float64       `mapstructure:"bond_snap_distance"`
	BondOverlap      float64       `mapstructure:"bond_overlap"`
	MinBondLength    float64       `mapstructure:"min_bond_length"`
}

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level       string   `mapstructure:"level"`
	Format      string   `mapstructure:"format"`
	OutputPaths []string `mapstructure:"output_paths"`
}

// MetricsConfig holds prometheus exposition settings.
type MetricsConfig struct {
	Enabled              bool   `mapstructure:"enabled"`
	Namespace            string `mapstructure:"namespace"`
	Path                 string `mapstructure:"path"`
	EnableGoMetrics      bool   `mapstructure:"enable_go_metrics"`
	EnableProcessMetrics bool   `mapstructure:"enable_process_metrics"`
}

// BroadcastConfig controls frame fan-out over Redis pub/sub.  Nothing is
// stored; subscribers only see frames published while they listen.
type BroadcastConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Addr     string        `mapstructure:"addr"`
	Username string        `mapstructure:"username"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Channel  string        `mapstructure:"channel"`
	Interval time.Duration `mapstructure:"interval"`
}

// Config is the root configuration.
type Config struct {
	Physics    PhysicsConfig    `mapstructure:"physics"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Server     ServerConfig     `mapstructure:"server"`
	Log        LogConfig        `mapstructure:"log"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Broadcast  BroadcastConfig  `mapstructure:"broadcast"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

func invalid(format string, args ...interface{}) error {
	return errors.Newf(errors.ErrCodeConfigInvalid, format, args...)
}

// Validate performs semantic validation of a fully-populated Config and
// returns the first problem found.
func (c *Config) Validate() error {
	// Physics
	p := c.Physics
	if p.MaxDt <= 0 {
		return invalid("physics.max_dt must be > 0, got %g", p.MaxDt)
	}
	if p.MinDistance <= 0 {
		return invalid("physics.min_distance must be > 0, got %g", p.MinDistance)
	}
	if p.BondLength <= p.MinDistance {
		return invalid("physics.bond_length %g must exceed min_distance %g", p.BondLength, p.MinDistance)
	}
	if p.Damping <= 0 || p.Damping >= 1 {
		return invalid("physics.damping must be in (0, 1), got %g", p.Damping)
	}
	for name, v := range map[string]float64{
		"repulsion":           p.Repulsion,
		"bond_stiffness":      p.BondStiffness,
		"angle_stiffness":     p.AngleStiffness,
		"lone_pair_distance":  p.LonePairDistance,
		"lone_pair_stiffness": p.LonePairStiffness,
		"centering_strength":  p.CenteringStrength,
		"centering_deadzone":  p.CenteringDeadzone,
		"spawn_half_extent":   p.SpawnHalfExtent,
	} {
		if v < 0 {
			return invalid("physics.%s must be ≥ 0, got %g", name, v)
		}
	}

	// Simulation
	if c.Simulation.TickInterval <= 0 {
		return invalid("simulation.tick_interval must be positive, got %s", c.Simulation.TickInterval)
	}
	if c.Simulation.BondSnapDistance < 0 {
		return invalid("simulation.bond_snap_distance must be ≥ 0, got %g", c.Simulation.BondSnapDistance)
	}
	if c.Simulation.MinBondLength <= 0 {
		return invalid("simulation.min_bond_length must be > 0, got %g", c.Simulation.MinBondLength)
	}

	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return invalid("server.port %d is out of range [1, 65535]", c.Server.Port)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return invalid("log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return invalid("log.format %q is invalid; expected json|console", c.Log.Format)
	}

	// Metrics
	if c.Metrics.Enabled && c.Metrics.Namespace == "" {
		return invalid("metrics.namespace is required when metrics are enabled")
	}

	// Broadcast
	if c.Broadcast.Enabled {
		if c.Broadcast.Addr == "" {
			return invalid("broadcast.addr is required when broadcast is enabled")
		}
		if c.Broadcast.Channel == "" {
			return invalid("broadcast.channel must not be empty")
		}
		if c.Broadcast.Interval <= 0 {
			return invalid("broadcast.interval must be positive, got %s", c.Broadcast.Interval)
		}
	}

	return nil
}

//Personal.AI order the ending
