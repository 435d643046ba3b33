package config

import (
	"fmt"
	"os"
	"strconv"

	"go.opentelemetry.io/otel"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/lineage/store"
	"github.com/randalmurphal/lineage/store/memstore"
	"github.com/randalmurphal/lineage/store/sqlstore"
	"github.com/randalmurphal/lineage/telemetry"
)

// Store driver names.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// EnvPrefix is prepended to key names for environment variable lookup.
const EnvPrefix = "LINEAGE_"

// Config holds the full access layer configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// StoreConfig selects and configures the metadata store backend.
type StoreConfig struct {
	// Driver is the store backend: "memory" or "sqlite".
	Driver string `yaml:"driver"`

	// Path is the database file path for the sqlite driver.
	Path string `yaml:"path"`
}

// TelemetryConfig configures the latency observer.
type TelemetryConfig struct {
	// Enabled turns tracing on. When false the no-op observer is used.
	Enabled bool `yaml:"enabled"`

	// ServiceName identifies this process in emitted traces.
	ServiceName string `yaml:"service_name"`
}

// Default returns the built-in defaults: in-memory store, telemetry off.
func Default() Config {
	return Config{
		Store: StoreConfig{
			Driver: DriverMemory,
			Path:   ".lineage/metadata.db",
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "lineage",
		},
	}
}

// Load reads the config file at path, applies environment overrides, and
// validates the result. An empty path skips the file and resolves from
// defaults and environment only. A missing file at an explicit path is
// an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Store.Path == "" {
			return fmt.Errorf("config: store.path is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
	return nil
}

// OpenStore opens the store described by c. The returned close function
// releases any underlying handle and is never nil.
func OpenStore(c Config) (store.Store, func() error, error) {
	switch c.Store.Driver {
	case DriverMemory:
		return memstore.New(), func() error { return nil }, nil
	case DriverSQLite:
		s, err := sqlstore.Open(c.Store.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("config: unknown store driver %q", c.Store.Driver)
	}
}

// NewObserver returns the telemetry observer described by c: a tracer
// observer on the global OpenTelemetry provider when enabled, the no-op
// observer otherwise.
func NewObserver(c Config) telemetry.Observer {
	if !c.Telemetry.Enabled {
		return telemetry.Noop()
	}
	return telemetry.Tracer(otel.Tracer(c.Telemetry.ServiceName))
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvPrefix + "STORE_DRIVER"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv(EnvPrefix + "STORE_PATH"); v != "" {
		cfg.Store.Path = v
	}
	if v := os.Getenv(EnvPrefix + "TELEMETRY_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Telemetry.Enabled = b
		}
	}
	if v := os.Getenv(EnvPrefix + "TELEMETRY_SERVICE_NAME"); v != "" {
		cfg.Telemetry.ServiceName = v
	}
}
