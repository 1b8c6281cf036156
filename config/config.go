// Package config loads and validates the toolkit configuration. The config
// file describes the physical drivetrain and the constraint parameters; the
// core packages trust these values, so all physics validation happens here.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/frcutil/drivekit/core/metrics"
)

type Config struct {
	Drivetrain  DrivetrainConfig  `json:"drivetrain"`
	Feedforward FeedforwardConfig `json:"feedforward"`
	Constraint  VoltageConfig     `json:"constraint"`
	Metrics     metrics.Config    `json:"metrics"`
}

// DrivetrainConfig describes the drive geometry.
type DrivetrainConfig struct {
	// TrackWidthMeters is the lateral distance between the wheel contact points.
	TrackWidthMeters float64 `json:"track_width_m"`
}

// Validate checks mandatory fields.
func (c DrivetrainConfig) Validate() error {
	if c.TrackWidthMeters <= 0 {
		return fmt.Errorf("drivetrain: track_width_m must be positive, got %v", c.TrackWidthMeters)
	}
	return nil
}

// FeedforwardConfig holds the motor characterization gains.
type FeedforwardConfig struct {
	KS float64 `json:"ks"` // static gain, volts
	KV float64 `json:"kv"` // velocity gain, V*s/m
	KA float64 `json:"ka"` // acceleration gain, V*s^2/m
}

// Validate checks the gains are usable for achievable-acceleration math.
func (c FeedforwardConfig) Validate() error {
	if c.KV < 0 {
		return fmt.Errorf("feedforward: kv must be non-negative, got %v", c.KV)
	}
	if c.KA <= 0 {
		return fmt.Errorf("feedforward: ka must be positive, got %v", c.KA)
	}
	return nil
}

// VoltageConfig parameterizes the voltage constraint.
type VoltageConfig struct {
	// MaxVoltage is the wheel voltage budget in volts. Keep it below the
	// nominal battery voltage to absorb voltage sag under load. It is not
	// validated; a degenerate budget yields degenerate bounds.
	MaxVoltage float64 `json:"max_voltage"`
}

// SetDefaults applies sane defaults.
func (c *VoltageConfig) SetDefaults() {
	if c.MaxVoltage == 0 {
		c.MaxVoltage = 10
	}
}

// Load reads the configuration from path, applying environment overrides
// with the DK_ prefix (DK_CONSTRAINT__MAX_VOLTAGE=9 overrides
// constraint.max_voltage).
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("DK_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "dk_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Constraint.SetDefaults()
	cfg.Metrics.SetDefaults()
	if err := cfg.Drivetrain.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Feedforward.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
