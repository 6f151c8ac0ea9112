package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultMaxDt             = 0.05
	DefaultMinDistance       = 0.01
	DefaultRepulsion         = 0.5
	DefaultBondLength        = 1.5
	DefaultBondStiffness     = 20.0
	DefaultAngleStiffness    = 5.0
	DefaultLonePairDistance  = 0.8
	DefaultLonePairStiffness = 10.0
	DefaultCenteringStrength = 0.05
	DefaultCenteringDeadzone = 0.5
	DefaultDamping           = 0.9
	DefaultSpawnHalfExtent   = 1.0

	DefaultTickInterval     = 16 * time.Millisecond
	DefaultBondSnapDistance = 1.2
	DefaultBondOverlap      = 0.1
	DefaultMinBondLength    = 0.05

	DefaultServerHost      = "0.0.0.0"
	DefaultServerPort      = 8080
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultShutdownTimeout = 10 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"

	DefaultMetricsNamespace = "bondlab"
	DefaultMetricsPath      = "/metrics"

	DefaultBroadcastAddr     = "localhost:6379"
	DefaultBroadcastChannel  = "bondlab:frames"
	DefaultBroadcastInterval = 50 * time.Millisecond
)

// NewDefaultConfig returns a Config with every field at its default,
// metrics enabled.
func NewDefaultConfig() *Config {
	cfg := &Config{Metrics: MetricsConfig{Enabled: true}}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every zero-value field in cfg with its default.
// Fields already set are left unchanged so that explicit configuration
// always wins.  Booleans cannot be told apart from "unset" and are left
// alone.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Physics ───────────────────────────────────────────────────────────────
	p := &cfg.Physics
	setFloat(&p.MaxDt, DefaultMaxDt)
	setFloat(&p.MinDistance, DefaultMinDistance)
	setFloat(&p.Repulsion, DefaultRepulsion)
	setFloat(&p.BondLength, DefaultBondLength)
	setFloat(&p.BondStiffness, DefaultBondStiffness)
	setFloat(&p.AngleStiffness, DefaultAngleStiffness)
	setFloat(&p.LonePairDistance, DefaultLonePairDistance)
	setFloat(&p.LonePairStiffness, DefaultLonePairStiffness)
	setFloat(&p.CenteringStrength, DefaultCenteringStrength)
	setFloat(&p.CenteringDeadzone, DefaultCenteringDeadzone)
	setFloat(&p.Damping, DefaultDamping)
	setFloat(&p.SpawnHalfExtent, DefaultSpawnHalfExtent)

	// ── Simulation ────────────────────────────────────────────────────────────
	if cfg.Simulation.TickInterval == 0 {
		cfg.Simulation.TickInterval = DefaultTickInterval
	}
	setFloat(&cfg.Simulation.BondSnapDistance, DefaultBondSnapDistance)
	setFloat(&cfg.Simulation.BondOverlap, DefaultBondOverlap)
	setFloat(&cfg.Simulation.MinBondLength, DefaultMinBondLength)

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Host == "" {
		cfg.Server.Host = DefaultServerHost
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = DefaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = DefaultWriteTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if len(cfg.Log.OutputPaths) == 0 {
		cfg.Log.OutputPaths = []string{"stderr"}
	}

	// ── Metrics ───────────────────────────────────────────────────────────────
	if cfg.Metrics.Namespace == "" {
		cfg.Metrics.Namespace = DefaultMetricsNamespace
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}

	// ── Broadcast ─────────────────────────────────────────────────────────────
	if cfg.Broadcast.Addr == "" {
		cfg.Broadcast.Addr = DefaultBroadcastAddr
	}
	if cfg.Broadcast.Channel == "" {
		cfg.Broadcast.Channel = DefaultBroadcastChannel
	}
	if cfg.Broadcast.Interval == 0 {
		cfg.Broadcast.Interval = DefaultBroadcastInterval
	}
}

func setFloat(dst *float64, def float64) {
	if *dst == 0 {
		*dst = def
	}
}

//Personal.AI order the ending
