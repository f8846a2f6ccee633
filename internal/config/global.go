package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
const GlobalConfigDir = "labsite"

// GlobalConfigPath returns the path of the per-user configuration file used
// when no labsite.yml is found. Respects XDG_CONFIG_HOME, defaults to
// ~/.config/labsite/labsite.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, ConfigFile)
}

// HelpfulConfigMessage explains how to configure a data source.
func HelpfulConfigMessage() string {
	return fmt.Sprintf(`No data source configured.

Tip: create %s next to your site:
  data_dir: data          # directory holding publications.json, news.json, ...
  assets_dir: assets

or set %s / %s in the environment or a %s file.`,
		ConfigFile, EnvDataDir, EnvDataURL, EnvFile)
}
