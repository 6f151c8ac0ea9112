// Package config provides configuration loading, defaults, and validation
// for bond-lab.
package config

import (
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mingzhangyang/bond-lab/pkg/errors"
)

// envPrefix is the environment variable prefix used by every setting.
const envPrefix = "BONDLAB"

// newViper builds a Viper instance with the standard settings: YAML file
// type, BONDLAB_ env prefix, automatic env binding and a "." → "_" key
// replacer so that "physics.damping" resolves to BONDLAB_PHYSICS_DAMPING.
// Every key gets a default so env overrides reach Unmarshal even without a
// config file.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setViperDefaults(v)
	return v
}

func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("physics.max_dt", d.Physics.MaxDt)
	v.SetDefault("physics.min_distance", d.Physics.MinDistance)
	v.SetDefault("physics.repulsion", d.Physics.Repulsion)
	v.SetDefault("physics.bond_length", d.Physics.BondLength)
	v.SetDefault("physics.bond_stiffness", d.Physics.BondStiffness)
	v.SetDefault("physics.angle_stiffness", d.Physics.AngleStiffness)
	v.SetDefault("physics.lone_pair_distance", d.Physics.LonePairDistance)
	v.SetDefault("physics.lone_pair_stiffness", d.Physics.LonePairStiffness)
	v.SetDefault("physics.centering_strength", d.Physics.CenteringStrength)
	v.SetDefault("physics.centering_deadzone", d.Physics.CenteringDeadzone)
	v.SetDefault("physics.damping", d.Physics.Damping)
	v.SetDefault("physics.spawn_half_extent", d.Physics.SpawnHalfExtent)

	v.SetDefault("simulation.tick_interval", d.Simulation.TickInterval)
	v.SetDefault("simulation.seed", d.Simulation.Seed)
	v.SetDefault("simulation.preset", d.Simulation.Preset)
	v.SetDefault("simulation.bond_snap_distance", d.Simulation.BondSnapDistance)
	v.SetDefault("simulation.bond_overlap", d.Simulation.BondOverlap)
	v.SetDefault("simulation.min_bond_length", d.Simulation.MinBondLength)

	v.SetDefault("server.host", d.Server.Host)
	v.SetDefault("server.port", d.Server.Port)
	v.SetDefault("server.read_timeout", d.Server.ReadTimeout)
	v.SetDefault("server.write_timeout", d.Server.WriteTimeout)
	v.SetDefault("server.shutdown_timeout", d.Server.ShutdownTimeout)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output_paths", d.Log.OutputPaths)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.namespace", d.Metrics.Namespace)
	v.SetDefault("metrics.path", d.Metrics.Path)
	v.SetDefault("metrics.enable_go_metrics", d.Metrics.EnableGoMetrics)
	v.SetDefault("metrics.enable_process_metrics", d.Metrics.EnableProcessMetrics)

	v.SetDefault("broadcast.enabled", d.Broadcast.Enabled)
	v.SetDefault("broadcast.addr", d.Broadcast.Addr)
	v.SetDefault("broadcast.username", d.Broadcast.Username)
	v.SetDefault("broadcast.password", d.Broadcast.Password)
	v.SetDefault("broadcast.db", d.Broadcast.DB)
	v.SetDefault("broadcast.channel", d.Broadcast.Channel)
	v.SetDefault("broadcast.interval", d.Broadcast.Interval)
}

// Load reads the YAML file at configPath, merges BONDLAB_* environment
// overrides, applies defaults and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").WithDetail(configPath)
	}
	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from BONDLAB_* environment variables and
// defaults alone.
//
//	BONDLAB_<SECTION>_<FIELD>   e.g.  BONDLAB_PHYSICS_DAMPING, BONDLAB_SERVER_PORT
func LoadFromEnv() (*Config, error) {
	return unmarshalAndFinalize(newViper())
}

// LoadOrDefault loads configPath when it is non-empty and falls back to
// LoadFromEnv otherwise.
func LoadOrDefault(configPath string) (*Config, error) {
	if configPath == "" {
		return LoadFromEnv()
	}
	return Load(configPath)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to unmarshal configuration")
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Watch monitors configPath and invokes onChange with the newly parsed
// Config whenever the file changes on disk.  Changes that fail to parse or
// validate are reported to onError (if non-nil) and onChange is skipped.
// Watch is non-blocking; viper runs the fsnotify watcher in the background.
func Watch(configPath string, onChange func(*Config), onError func(error)) error {
	v := newViper()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return errors.Wrap(err, errors.ErrCodeConfigInvalid, "failed to read config file").WithDetail(configPath)
	}

	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}

// MustLoad is Load that panics on error, for main() only.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic("config: MustLoad failed: " + err.Error())
	}
	return cfg
}

//Personal.AI order the ending
