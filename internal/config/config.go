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
	Store  StoreConfig  `yaml:"store" mapstructure:"store"`
	Notion NotionConfig `yaml:"notion" mapstructure:"notion"`
	Rules  RulesConfig  `yaml:"rules" mapstructure:"rules"`
	Engine EngineConfig `yaml:"engine" mapstructure:"engine"`
	Server ServerConfig `yaml:"server" mapstructure:"server"`
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the snapshot database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
	SQLitePath  string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
}

// NotionConfig holds Notion API credentials and database IDs for the
// curated rule tables.
type NotionConfig struct {
	Token    string `yaml:"token" mapstructure:"token"`
	DriverDB string `yaml:"driver_db" mapstructure:"driver_db"`
	MarkerDB string `yaml:"marker_db" mapstructure:"marker_db"`
}

// RulesConfig configures rule loading and caching.
type RulesConfig struct {
	ModuleFile   string `yaml:"module_file" mapstructure:"module_file"`
	CacheTTLSecs int    `yaml:"cache_ttl_secs" mapstructure:"cache_ttl_secs"`
}

// EngineConfig configures the research pipeline.
type EngineConfig struct {
	BatchConcurrency int `yaml:"batch_concurrency" mapstructure:"batch_concurrency"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Port          int     `yaml:"port" mapstructure:"port"`
	RatePerSecond float64 `yaml:"rate_per_second" mapstructure:"rate_per_second"`
	RateBurst     int     `yaml:"rate_burst" mapstructure:"rate_burst"`
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
	v.SetEnvPrefix("RESALE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", "resale-intel.db")
	v.SetDefault("rules.cache_ttl_secs", 300)
	v.SetDefault("engine.batch_concurrency", 4)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.rate_per_second", 20)
	v.SetDefault("server.rate_burst", 40)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

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

// Validate checks that the configuration required by the given scope is
// present. Scopes are command names; decode and appraise run entirely
// offline so they validate nothing.
func (c *Config) Validate(scope string) error {
	switch scope {
	case "snapshots", "research-save":
		switch c.Store.Driver {
		case "sqlite":
			if c.Store.SQLitePath == "" {
				return eris.New("config: store.sqlite_path is required for sqlite driver")
			}
		case "postgres":
			if c.Store.DatabaseURL == "" {
				return eris.New("config: store.database_url is required for postgres driver")
			}
		default:
			return eris.Errorf("config: unknown store driver %q", c.Store.Driver)
		}
	case "rules-notion":
		if c.Notion.Token == "" {
			return eris.New("config: notion.token is required")
		}
		if c.Notion.DriverDB == "" && c.Notion.MarkerDB == "" {
			return eris.New("config: at least one of notion.driver_db, notion.marker_db is required")
		}
	}
	return nil
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
