package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Maps      MapsConfig      `yaml:"maps" mapstructure:"maps"`
	Postal    PostalConfig    `yaml:"postal" mapstructure:"postal"`
	Search    SearchConfig    `yaml:"search" mapstructure:"search"`
	Cache     CacheConfig     `yaml:"cache" mapstructure:"cache"`
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Upload    UploadConfig    `yaml:"upload" mapstructure:"upload"`
	Gazetteer GazetteerConfig `yaml:"gazetteer" mapstructure:"gazetteer"`
	Pricing   PricingConfig   `yaml:"pricing" mapstructure:"pricing"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// MapsConfig holds Google Maps web-services settings.
type MapsConfig struct {
	Key     string  `yaml:"key" mapstructure:"key"`
	BaseURL string  `yaml:"base_url" mapstructure:"base_url"`
	QPS     float64 `yaml:"qps" mapstructure:"qps"`
	// BillingConfigured marks that real billing is attached to the key, so
	// cost snapshots report estimates instead of not_configured.
	BillingConfigured bool `yaml:"billing_configured" mapstructure:"billing_configured"`
}

// PostalConfig holds the postal ZIP lookup provider settings.
type PostalConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// SearchConfig configures retailer store searches.
type SearchConfig struct {
	Radius      int    `yaml:"radius" mapstructure:"radius"`
	MaxAPICalls int    `yaml:"max_api_calls" mapstructure:"max_api_calls"`
	Workers     int    `yaml:"workers" mapstructure:"workers"`
	PlaceType   string `yaml:"place_type" mapstructure:"place_type"`
}

// CacheConfig configures the in-memory result cache.
type CacheConfig struct {
	TTLMinutes int `yaml:"ttl_minutes" mapstructure:"ttl_minutes"`
}

// DataConfig configures flat-file persistence.
type DataConfig struct {
	Dir string `yaml:"dir" mapstructure:"dir"`
}

// UploadConfig bounds spreadsheet uploads.
type UploadConfig struct {
	MaxBytes int64 `yaml:"max_bytes" mapstructure:"max_bytes"`
}

// GazetteerConfig points at the offline city/ZIP reference dataset.
type GazetteerConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// PricingConfig holds Maps pricing rates (USD per call).
type PricingConfig struct {
	PlacesSearch float64 `yaml:"places_search" mapstructure:"places_search"`
	Geocode      float64 `yaml:"geocode" mapstructure:"geocode"`
	PlaceDetails float64 `yaml:"place_details" mapstructure:"place_details"`
	FreeTier     int     `yaml:"free_tier" mapstructure:"free_tier"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("STORESCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("maps.key", "")
	v.SetDefault("maps.base_url", "https://maps.googleapis.com/maps/api")
	v.SetDefault("maps.qps", 10.0)
	v.SetDefault("maps.billing_configured", false)
	v.SetDefault("postal.base_url", "https://api.zippopotam.us")
	v.SetDefault("search.radius", 50000)
	v.SetDefault("search.max_api_calls", 200)
	v.SetDefault("search.workers", 1)
	v.SetDefault("search.place_type", "store")
	v.SetDefault("cache.ttl_minutes", 30)
	v.SetDefault("data.dir", "data")
	v.SetDefault("upload.max_bytes", 16*1024*1024)
	v.SetDefault("gazetteer.path", "")
	v.SetDefault("pricing.places_search", 0.032)
	v.SetDefault("pricing.geocode", 0.005)
	v.SetDefault("pricing.place_details", 0.017)
	v.SetDefault("pricing.free_tier", 200)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
