// Package config loads streams record cache configuration: a struct tree of
// pointer sub-configs where a nil pointer means "disabled", loaded from
// YAML, with a post-load adjustment pass that derives fields not supplied
// in the file.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config groups the cache's tunables.
type Config struct {
	// MaxRecordsByteSize bounds the sum of upstream byte sizes of all cached
	// records. When exceeded, FIFO eviction runs until satisfied.
	MaxRecordsByteSize uint64 `yaml:"max_records_byte_size"`

	// Locks configures the shard lock table. If nil, the built-in default
	// stripe count is used.
	Locks *LocksConfig `yaml:"locks"`

	// Telemetry configures the background stats reporter. If nil, it does
	// not run.
	Telemetry *TelemetryConfig `yaml:"telemetry"`
}

// LocksConfig configures the striped shard lock table.
type LocksConfig struct {
	// StripeCount is the number of lock stripes. Non-positive means "use the
	// built-in default" (1000).
	StripeCount int `yaml:"stripe_count"`
}

// Enabled reports whether cfg is present; used for the nil-means-default
// pattern throughout this package.
func (cfg *LocksConfig) Enabled() bool { return cfg != nil }

// TelemetryConfig configures the periodic background stats reporter.
type TelemetryConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
}

// LoadConfig reads and parses a YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.adjust()

	return &cfg, nil
}

// adjust derives computed fields and applies defaults not read from YAML.
func (cfg *Config) adjust() {
	if cfg.Telemetry != nil && cfg.Telemetry.Interval <= 0 {
		cfg.Telemetry.Interval = 5 * time.Second
	}
}
