package config

import "time"

// Default viewport: centered on upstate New York at a zoom that frames the
// NY/VT distribution footprint.  These mirror the shipped dashboard.
const (
	DefaultMapCenterLat = 43.0481
	DefaultMapCenterLng = -75.1735
	DefaultMapZoom      = 7
)

// NewDefaultConfig returns a Config populated entirely from defaults,
// suitable for local development without a config file.
func NewDefaultConfig() *Config {
	cfg := &Config{}
	ApplyDefaults(cfg)
	return cfg
}

// ApplyDefaults fills every unset field with its platform default.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = "release"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 30 * time.Second
	}

	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "json"
	}

	if cfg.Data.Source == "" {
		cfg.Data.Source = "local"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./input"
	}
	if cfg.Data.PrintFile == "" {
		cfg.Data.PrintFile = "print_distribution.csv"
	}
	if cfg.Data.VisitorFile == "" {
		cfg.Data.VisitorFile = "visitor_data.csv"
	}
	if cfg.Data.StoreFile == "" {
		cfg.Data.StoreFile = "store_locations.csv"
	}
	if len(cfg.Data.BoundaryFiles) == 0 {
		cfg.Data.BoundaryFiles = []string{
			"NY_ZIP_compressed.geojson",
			"VT_ZIP_compressed.geojson",
		}
	}
	if cfg.Data.WatchDebounce == 0 {
		cfg.Data.WatchDebounce = 500 * time.Millisecond
	}

	if cfg.Cache.KeyPrefix == "" {
		cfg.Cache.KeyPrefix = "geodash:"
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 15 * time.Minute
	}
	if cfg.Cache.DialTimeout == 0 {
		cfg.Cache.DialTimeout = 5 * time.Second
	}

	if cfg.Map.CenterLat == 0 {
		cfg.Map.CenterLat = DefaultMapCenterLat
	}
	if cfg.Map.CenterLng == 0 {
		cfg.Map.CenterLng = DefaultMapCenterLng
	}
	if cfg.Map.Zoom == 0 {
		cfg.Map.Zoom = DefaultMapZoom
	}
}
