package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const ConfigFileName = "stockforge.config.json"

type Config struct {
	Version    string   `json:"version" mapstructure:"version"`
	SchemaPath string   `json:"schema_path" mapstructure:"schema_path"`
	ExportPath string   `json:"export_path" mapstructure:"export_path"`
	Database   Database `json:"database" mapstructure:"database"`
	Generate   Generate `json:"generate" mapstructure:"generate"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
}

// Generate holds the dataset defaults applied when the command line does not
// override them. Zero counts defer to the preset.
type Generate struct {
	Preset    string `json:"preset" mapstructure:"preset"`
	Products  int    `json:"products,omitempty" mapstructure:"products"`
	Vendors   int    `json:"vendors,omitempty" mapstructure:"vendors"`
	Customers int    `json:"customers,omitempty" mapstructure:"customers"`
	Locations int    `json:"locations,omitempty" mapstructure:"locations"`
	Seed      int64  `json:"seed,omitempty" mapstructure:"seed"`
	Format    string `json:"format" mapstructure:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Version:    "1",
		SchemaPath: "db/schema.sql",
		ExportPath: "db/export",
		Database: Database{
			Provider: "postgresql",
			URLEnv:   "DATABASE_URL",
		},
		Generate: Generate{
			Preset: "small",
			Format: "json",
		},
	}
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Set defaults
	defaults := DefaultConfig()
	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}
	if cfg.SchemaPath == "" {
		cfg.SchemaPath = defaults.SchemaPath
	}
	if cfg.ExportPath == "" {
		cfg.ExportPath = defaults.ExportPath
	}
	if cfg.Database.Provider == "" {
		cfg.Database.Provider = defaults.Database.Provider
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = defaults.Database.URLEnv
	}
	if cfg.Generate.Preset == "" {
		cfg.Generate.Preset = defaults.Generate.Preset
	}
	if cfg.Generate.Format == "" {
		cfg.Generate.Format = defaults.Generate.Format
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	switch c.Generate.Format {
	case "json", "yaml":
	default:
		return fmt.Errorf("unsupported export format: %s. Supported formats: [json yaml]", c.Generate.Format)
	}

	if c.ExportPath == "" {
		return fmt.Errorf("export_path cannot be empty")
	}

	return nil
}

func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.ExportPath,
		filepath.Dir(c.SchemaPath),
	}

	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// InitializeProject writes the default config file into the current
// directory and creates the directories it points at. It refuses to
// overwrite an existing config.
func InitializeProject() error {
	if _, err := os.Stat(ConfigFileName); err == nil {
		return fmt.Errorf("%s already exists", ConfigFileName)
	}

	cfg := DefaultConfig()
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(ConfigFileName, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ConfigFileName, err)
	}

	return cfg.EnsureDirectories()
}
