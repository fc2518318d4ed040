package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// SMTPConfig holds outgoing-mail settings for share invitations.
// When Username is empty the mailer logs and skips sends.
type SMTPConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Username string `mapstructure:"username" yaml:"username"`
	Password string `mapstructure:"password" yaml:"password"`
	From     string `mapstructure:"from" yaml:"from"`
}

// Config is the top-level application configuration.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string `mapstructure:"addr" yaml:"addr"`

	// DBPath is the location of the embedded SQLite database file.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// AppURL is the public base URL used in invitation links.
	AppURL string `mapstructure:"app_url" yaml:"app_url"`

	SMTP SMTPConfig `mapstructure:"smtp" yaml:"smtp"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located next to the data directory in the working directory.
func DefaultConfigPath() string {
	return filepath.Join(".", "config.yaml")
}

func defaultConfig() *Config {
	return &Config{
		Addr:   ":8080",
		DBPath: filepath.Join("data", "projects.db"),
		AppURL: "http://localhost:8080",
		SMTP: SMTPConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns the default configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", filepath.Join("data", "projects.db"))
	v.SetDefault("app_url", "http://localhost:8080")
	v.SetDefault("smtp.host", "smtp.gmail.com")
	v.SetDefault("smtp.port", 587)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
