package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// envPrefix is the environment variable prefix for all geodash settings.
const envPrefix = "GEODASH"

// newViper builds a pre-configured Viper instance: YAML file type, GEODASH_
// env prefix, automatic env binding, and a key replacer mapping "." to "_"
// so "server.port" resolves to "GEODASH_SERVER_PORT".
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	registerKeys(v)
	return v
}

// registerKeys declares every config key to viper with a zero default so that
// AutomaticEnv resolves environment-only values during Unmarshal.  Effective
// defaults are applied afterwards by ApplyDefaults.
func registerKeys(v *viper.Viper) {
	for _, key := range []string{
		"server.port", "server.mode", "server.read_timeout",
		"server.write_timeout", "server.shutdown_timeout",
		"log.level", "log.format", "log.output_paths",
		"data.source", "data.dir", "data.print_file", "data.visitor_file",
		"data.store_file", "data.boundary_files", "data.watch",
		"data.watch_debounce",
		"object_store.endpoint", "object_store.access_key",
		"object_store.secret_key", "object_store.bucket", "object_store.use_ssl",
		"cache.enabled", "cache.addr", "cache.password", "cache.db",
		"cache.key_prefix", "cache.ttl", "cache.dial_timeout",
		"map.center_lat", "map.center_lng", "map.zoom",
	} {
		v.SetDefault(key, nil)
	}
}

// Load reads the YAML file at configPath, merges GEODASH_* environment
// overrides, applies defaults, and validates the result.
func Load(configPath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: failed to read config file %q: %w", configPath, err)
	}

	return unmarshalAndFinalize(v)
}

// LoadFromEnv builds a Config from GEODASH_* environment variables alone,
// the preferred strategy for containerized deployments.
func LoadFromEnv() (*Config, error) {
	v := newViper()
	return unmarshalAndFinalize(v)
}

func unmarshalAndFinalize(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to unmarshal configuration: %w", err)
	}

	ApplyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}

// Watch monitors configPath and invokes onChange with each newly parsed
// Config.  Changes that fail to parse or validate are dropped silently so a
// bad edit cannot push the process into a broken state; callers should pair
// Watch with an initial Load.
func Watch(configPath string, onChange func(*Config)) {
	v := newViper()
	v.SetConfigFile(configPath)
	_ = v.ReadInConfig()

	v.WatchConfig()
	v.OnConfigChange(func(_ fsnotify.Event) {
		cfg, err := unmarshalAndFinalize(v)
		if err != nil {
			return
		}
		onChange(cfg)
	})
}

// MustLoad wraps Load and panics on any error.  Intended for main(), where a
// config-load failure is always fatal.
func MustLoad(configPath string) *Config {
	cfg, err := Load(configPath)
	if err != nil {
		panic(fmt.Sprintf("config: MustLoad failed: %v", err))
	}
	return cfg
}
