package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
	Catalog CatalogConfig `mapstructure:"catalog" validate:"required"`
}

// LoggingConfig contains all logging-related configuration settings.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// StorageConfig contains the snapshot persistence settings.
type StorageConfig struct {
	// Dir is the directory the snapshot cache is written to.
	Dir string `mapstructure:"dir" validate:"required"`

	// CacheName is the snapshot file name without extension; the legacy
	// default is "neurodata_cache".
	CacheName string `mapstructure:"cache_name" validate:"required"`
}

// CatalogConfig contains the bundled seed catalog settings.
type CatalogConfig struct {
	// SeedPath is the JSON file imported on first run, when no snapshot
	// exists yet.
	SeedPath string `mapstructure:"seed_path" validate:"required"`
}
