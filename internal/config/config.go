// Package config loads service configuration from an optional YAML file and
// SCADAADMIN_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// EnvPrefix is the prefix of environment overrides, e.g. SCADAADMIN_DATABASE_URL.
const EnvPrefix = "SCADAADMIN"

// Config holds application configuration.
type Config struct {
	App      AppConfig
	Log      LogConfig
	Database DatabaseConfig
	Display  DisplayConfig

	// Headers lists translated column headers. viper lower-cases map keys,
	// while table ids and field names are case-sensitive, hence a list.
	Headers []HeaderPhrase
}

// HeaderPhrase is one translated column header.
type HeaderPhrase struct {
	Table string
	Field string
	Text  string
}

// AppConfig holds HTTP server settings.
type AppConfig struct {
	Port string
	Env  string
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string
}

// DatabaseConfig holds PostgreSQL settings. An empty URL runs without a database.
type DatabaseConfig struct {
	URL      string
	MaxConns int32 `mapstructure:"max_conns"`
}

// DisplayConfig holds presentation settings.
type DisplayConfig struct {
	Locale string
}

// IsDevelopment reports whether the service runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// HeaderTables groups Headers by table id. Later entries win on duplicates.
func (c Config) HeaderTables() map[string]map[string]string {
	tables := make(map[string]map[string]string)
	for _, h := range c.Headers {
		if h.Table == "" || h.Field == "" {
			continue
		}
		if tables[h.Table] == nil {
			tables[h.Table] = make(map[string]string)
		}
		tables[h.Table][h.Field] = h.Text
	}
	return tables
}

// Language parses the display locale.
func (c Config) Language() (language.Tag, error) {
	tag, err := language.Parse(c.Display.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("parse display locale %q: %w", c.Display.Locale, err)
	}
	return tag, nil
}

// Load reads configuration. The file named by SCADAADMIN_CONFIG is used when
// set, otherwise config.yaml in the working directory if present.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("log.level", "info")
	v.SetDefault("database.url", "")
	v.SetDefault("database.max_conns", 4)
	v.SetDefault("display.locale", "ru")

	v.SetConfigType("yaml")
	if cfgPath := os.Getenv(EnvPrefix + "_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
