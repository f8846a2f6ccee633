// Package config handles site configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vilab/labsite/internal/publication"
)

// Config is the site configuration stored in labsite.yml.
type Config struct {
	LabName        string        `yaml:"lab_name,omitempty" json:"lab_name"`
	DataDir        string        `yaml:"data_dir,omitempty" json:"data_dir,omitempty"`
	DataURL        string        `yaml:"data_url,omitempty" json:"data_url,omitempty"`
	AssetsURL      string        `yaml:"assets_url,omitempty" json:"assets_url"`
	AssetsDir      string        `yaml:"assets_dir,omitempty" json:"assets_dir,omitempty"`
	PeopleImageDir string        `yaml:"people_image_dir,omitempty" json:"people_image_dir"`
	Addr           string        `yaml:"addr,omitempty" json:"addr"`
	LogLevel       string        `yaml:"log_level,omitempty" json:"log_level"`
	YearButtons    []string      `yaml:"year_buttons,omitempty" json:"year_buttons"`
	FetchRate      float64       `yaml:"fetch_rate,omitempty" json:"fetch_rate"`
	FetchTimeout   time.Duration `yaml:"fetch_timeout,omitempty" json:"fetch_timeout"`

	// Path is the file the configuration was read from, if any.
	Path string `yaml:"-" json:"path,omitempty"`
}

const (
	// ConfigFile is the configuration file name looked up from the working
	// directory upwards.
	ConfigFile = "labsite.yml"
	// EnvFile is loaded next to the configuration file and in the working
	// directory.
	EnvFile = ".env"
)

// Defaults for unset fields.
const (
	DefaultLabName        = "VILAB"
	DefaultAssetsURL      = "/assets"
	DefaultPeopleImageDir = "images/people"
	DefaultAddr           = ":8080"
	DefaultLogLevel       = "info"
	DefaultFetchRate      = 5.0
	DefaultFetchTimeout   = 10 * time.Second
)

// Environment variables that override the file.
const (
	EnvDataDir   = "LABSITE_DATA_DIR"
	EnvDataURL   = "LABSITE_DATA_URL"
	EnvAssetsURL = "LABSITE_ASSETS_URL"
	EnvAddr      = "LABSITE_ADDR"
	EnvLogLevel  = "LABSITE_LOG_LEVEL"
)

// ValidLogLevels lists the accepted log_level values.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// ErrNoDataSource is returned when neither data_dir nor data_url is set.
var ErrNoDataSource = errors.New("no data source configured (set data_dir or data_url)")

// ErrConfigNotFound is returned by Find when no configuration file exists.
var ErrConfigNotFound = errors.New("no " + ConfigFile + " found")

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.LabName == "" {
		c.LabName = DefaultLabName
	}
	if c.AssetsURL == "" {
		c.AssetsURL = DefaultAssetsURL
	}
	if c.PeopleImageDir == "" {
		c.PeopleImageDir = DefaultPeopleImageDir
	}
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if len(c.YearButtons) == 0 {
		c.YearButtons = append([]string(nil), publication.DefaultYearButtons...)
	}
	if c.FetchRate == 0 {
		c.FetchRate = DefaultFetchRate
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}
}

// Find walks up from start looking for labsite.yml and falls back to the
// global configuration file. Returns ErrConfigNotFound when neither exists.
func Find(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		candidate := filepath.Join(abs, ConfigFile)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}

	if global := GlobalConfigPath(); global != "" {
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}
	return "", ErrConfigNotFound
}

// Load reads the configuration at path, loads .env files and applies
// environment overrides and defaults. An empty path means no file: only the
// environment and defaults apply. Relative directories in the file are
// resolved against the file's directory.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
		cfg.Path = path

		base := filepath.Dir(path)
		cfg.DataDir = resolveDir(base, cfg.DataDir)
		cfg.AssetsDir = resolveDir(base, cfg.AssetsDir)

		// Errors ignored: .env is optional
		_ = godotenv.Load(filepath.Join(base, EnvFile))
	}
	_ = godotenv.Load()

	cfg.applyEnv()
	cfg.applyDefaults()
	return &cfg, nil
}

func resolveDir(base, dir string) string {
	if dir == "" {
		return ""
	}
	dir = ExpandPath(dir)
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvDataDir); v != "" {
		c.DataDir = ExpandPath(v)
	}
	if v := os.Getenv(EnvDataURL); v != "" {
		c.DataURL = v
	}
	if v := os.Getenv(EnvAssetsURL); v != "" {
		c.AssetsURL = v
	}
	if v := os.Getenv(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DataDir == "" && c.DataURL == "" {
		return ErrNoDataSource
	}
	if err := ValidateLogLevel(c.LogLevel); err != nil {
		return err
	}
	if err := publication.ValidateYearButtons(c.YearButtons); err != nil {
		return fmt.Errorf("invalid year_buttons: %w", err)
	}
	if c.FetchRate < 0 {
		return fmt.Errorf("invalid fetch_rate: %v (must not be negative)", c.FetchRate)
	}
	if c.FetchTimeout < 0 {
		return fmt.Errorf("invalid fetch_timeout: %v (must not be negative)", c.FetchTimeout)
	}
	if c.DataDir != "" && c.DataURL == "" {
		if err := validateDir(c.DataDir); err != nil {
			return fmt.Errorf("invalid data_dir: %w", err)
		}
	}
	if c.AssetsDir != "" {
		if err := validateDir(c.AssetsDir); err != nil {
			return fmt.Errorf("invalid assets_dir: %w", err)
		}
	}
	return nil
}

// ValidateLogLevel checks that the level is one of ValidLogLevels.
func ValidateLogLevel(level string) error {
	for _, valid := range ValidLogLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid log_level: %s (valid: %v)", level, ValidLogLevels)
}

func validateDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}

// UsesRemoteData reports whether documents are fetched over HTTP.
func (c *Config) UsesRemoteData() bool {
	return c.DataURL != ""
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	return filepath.Join(home, path[1:])
}
