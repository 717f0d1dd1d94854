// Package config defines the configuration structures for geodash.  No I/O
// or parsing logic lives here, only plain data types and validation; loading
// is in loader.go.
package config

import (
	"fmt"
	"time"

	"github.com/reachlab/geodash/internal/infrastructure/monitoring/logging"
)

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DataConfig describes where the three campaign datasets and the boundary
// files come from.
type DataConfig struct {
	// Source selects the dataset source implementation: "local" reads from
	// Dir, "object" reads from the configured object store bucket.
	Source string `mapstructure:"source"`

	// Dir is the local dataset directory (Source = "local").
	Dir string `mapstructure:"dir"`

	PrintFile   string `mapstructure:"print_file"`
	VisitorFile string `mapstructure:"visitor_file"`
	StoreFile   string `mapstructure:"store_file"`

	// BoundaryFiles lists the GeoJSON boundary files, one per state, merged
	// in order at ingest.
	BoundaryFiles []string `mapstructure:"boundary_files"`

	// Watch enables the filesystem watcher that rebuilds the snapshot when
	// a dataset file changes.  Only meaningful with Source = "local".
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`
}

// ObjectStoreConfig holds S3-compatible object-storage parameters for the
// "object" dataset source.
type ObjectStoreConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// CacheConfig holds Redis response-cache parameters.  The cache is optional;
// when disabled every style lookup computes from the in-memory snapshot.
type CacheConfig struct {
	Enabled     bool          `mapstructure:"enabled"`
	Addr        string        `mapstructure:"addr"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	KeyPrefix   string        `mapstructure:"key_prefix"`
	TTL         time.Duration `mapstructure:"ttl"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
}

// MapConfig carries the initial viewport the renderer starts from.
type MapConfig struct {
	CenterLat float64 `mapstructure:"center_lat"`
	CenterLng float64 `mapstructure:"center_lng"`
	Zoom      int     `mapstructure:"zoom"`
}

// Config is the root configuration object.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         logging.Config    `mapstructure:"log"`
	Data        DataConfig        `mapstructure:"data"`
	ObjectStore ObjectStoreConfig `mapstructure:"object_store"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Map         MapConfig         `mapstructure:"map"`
}

// Validate checks cross-field consistency after defaults have been applied.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in (0, 65535], got %d", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("server.mode must be debug, release, or test, got %q", c.Server.Mode)
	}

	switch c.Data.Source {
	case "local":
		if c.Data.Dir == "" {
			return fmt.Errorf("data.dir is required when data.source is local")
		}
	case "object":
		if c.ObjectStore.Endpoint == "" || c.ObjectStore.Bucket == "" {
			return fmt.Errorf("object_store.endpoint and object_store.bucket are required when data.source is object")
		}
	default:
		return fmt.Errorf("data.source must be local or object, got %q", c.Data.Source)
	}

	if c.Data.PrintFile == "" || c.Data.VisitorFile == "" || c.Data.StoreFile == "" {
		return fmt.Errorf("data.print_file, data.visitor_file, and data.store_file must all be set")
	}

	if c.Cache.Enabled && c.Cache.Addr == "" {
		return fmt.Errorf("cache.addr is required when cache.enabled is true")
	}

	return nil
}
